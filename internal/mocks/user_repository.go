package mocks

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) DebitPoints(ctx context.Context, userID int64, points int64) error {
	args := m.Called(ctx, userID, points)
	return args.Error(0)
}

func (m *UserRepository) CreditPoints(ctx context.Context, userID int64, points int64) error {
	args := m.Called(ctx, userID, points)
	return args.Error(0)
}

func (m *UserRepository) AppendHistory(ctx context.Context, entry *model.PointHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
