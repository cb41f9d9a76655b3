package mocks

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *NotificationRepository) ListByUser(userID int64, limit, offset int) ([]model.Notification, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *NotificationRepository) CountByUser(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
