package service

import (
	"context"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FulfillmentService writes the immutable attendance records for a
// confirmed transaction. One row per line item, created in the same
// database transaction as the DONE flip so a failed confirmation
// never leaves attendees behind.
type FulfillmentService interface {
	CreateAttendees(ctx context.Context, txn *model.Transaction) error
}

type fulfillment struct {
	attendeeRepo repository.AttendeeRepository
	logger       *zap.Logger
}

func NewFulfillmentService(attendeeRepo repository.AttendeeRepository, logger *zap.Logger) FulfillmentService {
	return &fulfillment{attendeeRepo: attendeeRepo, logger: logger}
}

func (f *fulfillment) CreateAttendees(ctx context.Context, txn *model.Transaction) error {
	for _, line := range txn.Lines {
		attendee := &model.Attendee{
			TransactionID: txn.ID,
			EventID:       txn.EventID,
			UserID:        txn.UserID,
			TicketCode:    uuid.NewString(),
			TicketType:    line.Ticket.Name,
			Quantity:      line.Quantity,
			TotalPaid:     line.Price * int64(line.Quantity),
			CreatedAt:     time.Now(),
		}

		if err := f.attendeeRepo.Create(ctx, attendee); err != nil {
			f.logger.Error("Failed to create attendee",
				zap.Int64("transactionID", txn.ID),
				zap.Int64("ticketID", line.TicketID),
				zap.Error(err))
			return NewServiceError(constants.ErrCodeDatabase, err)
		}
	}

	f.logger.Info("Attendees recorded",
		zap.Int64("transactionID", txn.ID),
		zap.Int("lines", len(txn.Lines)))

	return nil
}
