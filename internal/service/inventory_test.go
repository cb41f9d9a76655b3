package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/mocks"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInventory_Reserve(t *testing.T) {
	logger := zap.NewNop()

	t.Run("reserves seats", func(t *testing.T) {
		mockTicketRepo := &mocks.TicketRepository{}
		svc := service.NewInventoryService(mockTicketRepo, logger)

		mockTicketRepo.On("Reserve", context.Background(), int64(10), 2).Return(nil)

		err := svc.Reserve(context.Background(), 10, 2)

		assert.NoError(t, err)
		mockTicketRepo.AssertExpectations(t)
	})

	t.Run("not enough seats", func(t *testing.T) {
		mockTicketRepo := &mocks.TicketRepository{}
		svc := service.NewInventoryService(mockTicketRepo, logger)

		mockTicketRepo.On("Reserve", context.Background(), int64(10), 2).
			Return(repository.ErrNoRowsAffected)

		err := svc.Reserve(context.Background(), 10, 2)

		assert.Equal(t, constants.ErrCodeInsufficientInventory, service.CodeOf(err))
	})

	t.Run("database failure", func(t *testing.T) {
		mockTicketRepo := &mocks.TicketRepository{}
		svc := service.NewInventoryService(mockTicketRepo, logger)

		mockTicketRepo.On("Reserve", context.Background(), int64(10), 2).
			Return(errors.New("connection reset"))

		err := svc.Reserve(context.Background(), 10, 2)

		assert.Equal(t, constants.ErrCodeDatabase, service.CodeOf(err))
	})
}

func TestInventory_Release(t *testing.T) {
	logger := zap.NewNop()

	t.Run("releases seats", func(t *testing.T) {
		mockTicketRepo := &mocks.TicketRepository{}
		svc := service.NewInventoryService(mockTicketRepo, logger)

		mockTicketRepo.On("Release", context.Background(), int64(10), 2).Return(nil)

		err := svc.Release(context.Background(), 10, 2)

		assert.NoError(t, err)
	})

	t.Run("database failure", func(t *testing.T) {
		mockTicketRepo := &mocks.TicketRepository{}
		svc := service.NewInventoryService(mockTicketRepo, logger)

		mockTicketRepo.On("Release", context.Background(), int64(10), 2).
			Return(errors.New("connection reset"))

		err := svc.Release(context.Background(), 10, 2)

		assert.Equal(t, constants.ErrCodeDatabase, service.CodeOf(err))
	})
}
