package service

import (
	"context"
	"errors"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"go.uber.org/zap"
)

// InventoryService guards the per-ticket seat pool. Reserve and
// Release run against the caller's transaction context, so a failed
// multi-line purchase rolls its reservations back with everything
// else.
type InventoryService interface {
	Reserve(ctx context.Context, ticketID int64, quantity int) error
	Release(ctx context.Context, ticketID int64, quantity int) error
}

type inventory struct {
	ticketRepo repository.TicketRepository
	logger     *zap.Logger
}

func NewInventoryService(ticketRepo repository.TicketRepository, logger *zap.Logger) InventoryService {
	return &inventory{ticketRepo: ticketRepo, logger: logger}
}

func (i *inventory) Reserve(ctx context.Context, ticketID int64, quantity int) error {
	err := i.ticketRepo.Reserve(ctx, ticketID, quantity)
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNoRowsAffected) {
		i.logger.Info("Reservation refused, not enough seats",
			zap.Int64("ticketID", ticketID),
			zap.Int("quantity", quantity))
		return NewServiceError(constants.ErrCodeInsufficientInventory, err)
	}

	i.logger.Error("Failed to reserve seats",
		zap.Int64("ticketID", ticketID),
		zap.Int("quantity", quantity),
		zap.Error(err))

	return NewServiceError(constants.ErrCodeDatabase, err)
}

func (i *inventory) Release(ctx context.Context, ticketID int64, quantity int) error {
	if err := i.ticketRepo.Release(ctx, ticketID, quantity); err != nil {
		i.logger.Error("Failed to release seats",
			zap.Int64("ticketID", ticketID),
			zap.Int("quantity", quantity),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	return nil
}
