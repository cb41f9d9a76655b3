package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/mocks"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestFulfillment_CreateAttendees(t *testing.T) {
	logger := zap.NewNop()

	txn := &model.Transaction{
		ID:      42,
		UserID:  7,
		EventID: 1,
		Lines: []model.TransactionTicket{
			{TicketID: 10, Quantity: 2, Price: 100000, Ticket: model.Ticket{ID: 10, Name: "Regular"}},
			{TicketID: 11, Quantity: 1, Price: 250000, Ticket: model.Ticket{ID: 11, Name: "VIP"}},
		},
	}

	t.Run("one attendee row per line", func(t *testing.T) {
		mockAttendeeRepo := &mocks.AttendeeRepository{}
		svc := service.NewFulfillmentService(mockAttendeeRepo, logger)

		mockAttendeeRepo.On("Create", context.Background(),
			mock.MatchedBy(func(a *model.Attendee) bool {
				return a.TransactionID == 42 && a.TicketType == "Regular" &&
					a.Quantity == 2 && a.TotalPaid == 200000 && a.TicketCode != ""
			})).Return(nil).Once()
		mockAttendeeRepo.On("Create", context.Background(),
			mock.MatchedBy(func(a *model.Attendee) bool {
				return a.TransactionID == 42 && a.TicketType == "VIP" &&
					a.Quantity == 1 && a.TotalPaid == 250000
			})).Return(nil).Once()

		err := svc.CreateAttendees(context.Background(), txn)

		assert.NoError(t, err)
		mockAttendeeRepo.AssertExpectations(t)
	})

	t.Run("insert failure surfaces as database error", func(t *testing.T) {
		mockAttendeeRepo := &mocks.AttendeeRepository{}
		svc := service.NewFulfillmentService(mockAttendeeRepo, logger)

		mockAttendeeRepo.On("Create", context.Background(),
			mock.AnythingOfType("*model.Attendee")).Return(errors.New("duplicate entry"))

		err := svc.CreateAttendees(context.Background(), txn)

		assert.Equal(t, constants.ErrCodeDatabase, service.CodeOf(err))
	})
}
