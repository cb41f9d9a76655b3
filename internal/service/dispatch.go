package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/mq"
	"go.uber.org/zap"
)

// ArtifactGenerator produces the ticket artifact and its embedded
// verification payload.
type ArtifactGenerator interface {
	VerificationPayload(transactionID int64, email string, issuedAt time.Time) string
	GenerateTicket(eventName, buyerName string, finalAmount int64, payload string) ([]byte, error)
}

// Mailer delivers transactional email. Implementations must not be
// assumed reliable; dispatch treats every send as best effort.
type Mailer interface {
	SendTicketEmail(to, buyerName, eventName string, finalAmount int64, artifact []byte) error
	SendEmail(to, subject, body string) error
}

// DispatchService consumes notification jobs: one in-app notification
// row plus one email per job, with the ticket artifact attached on
// issuance. Failures never reach the transaction state machine; the
// transaction row is authoritative regardless of delivery.
type DispatchService interface {
	Deliver(ctx context.Context, job NotificationJob) error
}

type dispatch struct {
	notificationRepo repository.NotificationRepository
	outboxRepo       repository.OutboxRepository
	artifacts        ArtifactGenerator
	mailer           Mailer
	logger           *zap.Logger
}

func NewDispatchService(notificationRepo repository.NotificationRepository,
	outboxRepo repository.OutboxRepository, artifacts ArtifactGenerator, mailer Mailer,
	logger *zap.Logger) DispatchService {

	return &dispatch{
		notificationRepo: notificationRepo,
		outboxRepo:       outboxRepo,
		artifacts:        artifacts,
		mailer:           mailer,
		logger:           logger,
	}
}

func (d *dispatch) Deliver(ctx context.Context, job NotificationJob) error {
	title, message := composeNotification(job)

	notification := &model.Notification{
		OutboxID:  job.OutboxID,
		UserID:    job.UserID,
		Type:      model.NotificationType(job.Kind),
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := d.notificationRepo.Create(ctx, notification); err != nil {
		d.logger.Error("Failed to write in-app notification",
			zap.Int64("outboxID", job.OutboxID),
			zap.Int64("userID", job.UserID),
			zap.Error(err))
		return mq.Temporary(err)
	}

	if err := d.sendEmail(job, title, message); err != nil {
		d.logger.Warn("Email delivery failed",
			zap.Int64("outboxID", job.OutboxID),
			zap.String("to", job.Email),
			zap.Error(err))

		if err := d.outboxRepo.MarkFailed(ctx, job.OutboxID, err.Error()); err != nil {
			return mq.Temporary(err)
		}

		return nil
	}

	if err := d.outboxRepo.MarkSent(ctx, job.OutboxID); err != nil {
		d.logger.Error("Failed to mark outbox row as sent",
			zap.Int64("outboxID", job.OutboxID), zap.Error(err))
		return mq.Temporary(err)
	}

	d.logger.Info("Notification delivered",
		zap.Int64("outboxID", job.OutboxID),
		zap.Int64("transactionID", job.TransactionID),
		zap.String("kind", job.Kind))

	return nil
}

func (d *dispatch) sendEmail(job NotificationJob, title, message string) error {
	if job.Kind != string(model.NotificationTypeTicketIssued) {
		return d.mailer.SendEmail(job.Email, title, message)
	}

	payload := d.artifacts.VerificationPayload(job.TransactionID, job.Email, time.Now())

	artifact, err := d.artifacts.GenerateTicket(job.EventName, job.BuyerName, job.FinalAmount, payload)
	if err != nil {
		// The confirmation stands; send the email without the ticket
		// and leave regeneration to support tooling.
		d.logger.Warn("Ticket artifact generation failed",
			zap.Int64("transactionID", job.TransactionID),
			zap.Error(err))
		artifact = nil
	}

	return d.mailer.SendTicketEmail(job.Email, job.BuyerName, job.EventName, job.FinalAmount, artifact)
}

func composeNotification(job NotificationJob) (string, string) {
	switch job.Kind {
	case string(model.NotificationTypeTicketIssued):
		return "Payment confirmed",
			fmt.Sprintf("Your payment for %s was confirmed. Your ticket is attached to the confirmation email.", job.EventName)
	case string(model.NotificationTypePaymentRejected):
		return "Payment rejected",
			fmt.Sprintf("Your payment for %s was rejected by the organizer. Seats, points and coupon have been returned.", job.EventName)
	case string(model.NotificationTypePaymentExpired):
		return "Payment window expired",
			fmt.Sprintf("Your reservation for %s expired before payment was received. Seats, points and coupon have been returned.", job.EventName)
	default:
		return "EventHub update", fmt.Sprintf("Update for your transaction on %s.", job.EventName)
	}
}
