package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) Reserve(ctx context.Context, ticketID int64, quantity int) error {
	args := m.Called(ctx, ticketID, quantity)
	return args.Error(0)
}

func (m *TicketRepository) Release(ctx context.Context, ticketID int64, quantity int) error {
	args := m.Called(ctx, ticketID, quantity)
	return args.Error(0)
}
