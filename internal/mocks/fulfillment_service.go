package mocks

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type FulfillmentService struct {
	mock.Mock
}

func (m *FulfillmentService) CreateAttendees(ctx context.Context, txn *model.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}
