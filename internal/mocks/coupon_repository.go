package mocks

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type CouponRepository struct {
	mock.Mock
}

func (m *CouponRepository) FindUsable(ctx context.Context, code string, userID int64) (*model.Coupon, error) {
	args := m.Called(ctx, code, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func (m *CouponRepository) MarkUsed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CouponRepository) Release(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
