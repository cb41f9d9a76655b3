package mocks

import (
	"context"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *TransactionRepository) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepository) UpdateProof(ctx context.Context, id int64, proof string, from, to model.TransactionStatus) error {
	args := m.Called(ctx, id, proof, from, to)
	return args.Error(0)
}

func (m *TransactionRepository) UpdateStatus(ctx context.Context, id int64, from, to model.TransactionStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *TransactionRepository) ListByUser(userID int64, limit, offset int) ([]model.Transaction, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) CountByUser(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *TransactionRepository) ListByEvent(eventID int64, limit, offset int) ([]model.Transaction, error) {
	args := m.Called(eventID, limit, offset)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) CountByEvent(eventID int64) (int, error) {
	args := m.Called(eventID)
	return args.Int(0), args.Error(1)
}

func (m *TransactionRepository) FindOverdue(before time.Time, limit int) ([]model.Transaction, error) {
	args := m.Called(before, limit)
	return args.Get(0).([]model.Transaction), args.Error(1)
}
