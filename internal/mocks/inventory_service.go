package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type InventoryService struct {
	mock.Mock
}

func (m *InventoryService) Reserve(ctx context.Context, ticketID int64, quantity int) error {
	args := m.Called(ctx, ticketID, quantity)
	return args.Error(0)
}

func (m *InventoryService) Release(ctx context.Context, ticketID int64, quantity int) error {
	args := m.Called(ctx, ticketID, quantity)
	return args.Error(0)
}
