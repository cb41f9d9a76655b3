package mocks

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type OutboxRepository struct {
	mock.Mock
}

func (m *OutboxRepository) Create(ctx context.Context, row *model.Outbox) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *OutboxRepository) FindUnpublished(limit int) ([]model.Outbox, error) {
	args := m.Called(limit)
	return args.Get(0).([]model.Outbox), args.Error(1)
}

func (m *OutboxRepository) MarkPublished(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OutboxRepository) MarkSent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OutboxRepository) MarkFailed(ctx context.Context, id int64, lastError string) error {
	args := m.Called(ctx, id, lastError)
	return args.Error(0)
}
