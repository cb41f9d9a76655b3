package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/mocks"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func isTemporaryError(err error) bool {
	var temp interface{ Temporary() bool }
	return errors.As(err, &temp) && temp.Temporary()
}

func ticketIssuedJob() service.NotificationJob {
	return service.NotificationJob{
		OutboxID:      3,
		TransactionID: 42,
		Kind:          string(model.NotificationTypeTicketIssued),
		UserID:        7,
		Email:         "ayu@example.com",
		BuyerName:     "Ayu",
		EventName:     "Go Conference",
		FinalAmount:   130000,
	}
}

func TestDispatch_Deliver(t *testing.T) {
	logger := zap.NewNop()

	t.Run("delivers ticket with artifact attached", func(t *testing.T) {
		mockNotificationRepo := &mocks.NotificationRepository{}
		mockOutboxRepo := &mocks.OutboxRepository{}
		mockArtifacts := &mocks.ArtifactGenerator{}
		mockMailer := &mocks.Mailer{}

		svc := service.NewDispatchService(mockNotificationRepo, mockOutboxRepo,
			mockArtifacts, mockMailer, logger)

		job := ticketIssuedJob()
		artifact := []byte("%PDF-1.4 ticket")

		mockNotificationRepo.On("Create", context.Background(),
			mock.MatchedBy(func(n *model.Notification) bool {
				// OutboxID keys the row so a redelivered job cannot
				// insert it twice.
				return n.OutboxID == 3 &&
					n.UserID == 7 &&
					n.Type == model.NotificationTypeTicketIssued &&
					!n.IsRead
			})).Return(nil)
		mockArtifacts.On("VerificationPayload", int64(42), "ayu@example.com",
			mock.AnythingOfType("time.Time")).Return("42|ayu@example.com|1|sig")
		mockArtifacts.On("GenerateTicket", "Go Conference", "Ayu", int64(130000),
			"42|ayu@example.com|1|sig").Return(artifact, nil)
		mockMailer.On("SendTicketEmail", "ayu@example.com", "Ayu", "Go Conference",
			int64(130000), artifact).Return(nil)
		mockOutboxRepo.On("MarkSent", context.Background(), int64(3)).Return(nil)

		err := svc.Deliver(context.Background(), job)

		assert.NoError(t, err)
		mockNotificationRepo.AssertExpectations(t)
		mockMailer.AssertExpectations(t)
		mockOutboxRepo.AssertExpectations(t)
	})

	t.Run("artifact failure still sends the email", func(t *testing.T) {
		mockNotificationRepo := &mocks.NotificationRepository{}
		mockOutboxRepo := &mocks.OutboxRepository{}
		mockArtifacts := &mocks.ArtifactGenerator{}
		mockMailer := &mocks.Mailer{}

		svc := service.NewDispatchService(mockNotificationRepo, mockOutboxRepo,
			mockArtifacts, mockMailer, logger)

		mockNotificationRepo.On("Create", context.Background(),
			mock.AnythingOfType("*model.Notification")).Return(nil)
		mockArtifacts.On("VerificationPayload", int64(42), "ayu@example.com",
			mock.AnythingOfType("time.Time")).Return("payload")
		mockArtifacts.On("GenerateTicket", "Go Conference", "Ayu", int64(130000), "payload").
			Return(nil, errors.New("pdf render failed"))
		mockMailer.On("SendTicketEmail", "ayu@example.com", "Ayu", "Go Conference",
			int64(130000), []byte(nil)).Return(nil)
		mockOutboxRepo.On("MarkSent", context.Background(), int64(3)).Return(nil)

		err := svc.Deliver(context.Background(), ticketIssuedJob())

		assert.NoError(t, err)
		mockMailer.AssertExpectations(t)
	})

	t.Run("rejection notice goes out as plain email", func(t *testing.T) {
		mockNotificationRepo := &mocks.NotificationRepository{}
		mockOutboxRepo := &mocks.OutboxRepository{}
		mockArtifacts := &mocks.ArtifactGenerator{}
		mockMailer := &mocks.Mailer{}

		svc := service.NewDispatchService(mockNotificationRepo, mockOutboxRepo,
			mockArtifacts, mockMailer, logger)

		job := ticketIssuedJob()
		job.Kind = string(model.NotificationTypePaymentRejected)

		mockNotificationRepo.On("Create", context.Background(),
			mock.AnythingOfType("*model.Notification")).Return(nil)
		mockMailer.On("SendEmail", "ayu@example.com", "Payment rejected",
			mock.AnythingOfType("string")).Return(nil)
		mockOutboxRepo.On("MarkSent", context.Background(), int64(3)).Return(nil)

		err := svc.Deliver(context.Background(), job)

		assert.NoError(t, err)
		mockArtifacts.AssertNotCalled(t, "GenerateTicket")
	})

	t.Run("mail failure parks the row as failed", func(t *testing.T) {
		mockNotificationRepo := &mocks.NotificationRepository{}
		mockOutboxRepo := &mocks.OutboxRepository{}
		mockArtifacts := &mocks.ArtifactGenerator{}
		mockMailer := &mocks.Mailer{}

		svc := service.NewDispatchService(mockNotificationRepo, mockOutboxRepo,
			mockArtifacts, mockMailer, logger)

		mockNotificationRepo.On("Create", context.Background(),
			mock.AnythingOfType("*model.Notification")).Return(nil)
		mockArtifacts.On("VerificationPayload", int64(42), "ayu@example.com",
			mock.AnythingOfType("time.Time")).Return("payload")
		mockArtifacts.On("GenerateTicket", "Go Conference", "Ayu", int64(130000), "payload").
			Return([]byte("pdf"), nil)
		mockMailer.On("SendTicketEmail", "ayu@example.com", "Ayu", "Go Conference",
			int64(130000), []byte("pdf")).Return(errors.New("smtp timeout"))
		mockOutboxRepo.On("MarkFailed", context.Background(), int64(3), "smtp timeout").Return(nil)

		err := svc.Deliver(context.Background(), ticketIssuedJob())

		assert.NoError(t, err)
		mockOutboxRepo.AssertNotCalled(t, "MarkSent")
		mockOutboxRepo.AssertExpectations(t)
	})

	t.Run("requeue when notification write fails", func(t *testing.T) {
		mockNotificationRepo := &mocks.NotificationRepository{}
		mockOutboxRepo := &mocks.OutboxRepository{}
		mockArtifacts := &mocks.ArtifactGenerator{}
		mockMailer := &mocks.Mailer{}

		svc := service.NewDispatchService(mockNotificationRepo, mockOutboxRepo,
			mockArtifacts, mockMailer, logger)

		mockNotificationRepo.On("Create", context.Background(),
			mock.AnythingOfType("*model.Notification")).Return(errors.New("deadlock"))

		err := svc.Deliver(context.Background(), ticketIssuedJob())

		assert.Error(t, err)
		assert.True(t, isTemporaryError(err))
		mockMailer.AssertNotCalled(t, "SendTicketEmail")
	})
}
