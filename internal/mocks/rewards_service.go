package mocks

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type RewardsService struct {
	mock.Mock
}

func (m *RewardsService) ApplyCoupon(ctx context.Context, code string, userID, eventID int64, amount int64) (*model.Coupon, int64, error) {
	args := m.Called(ctx, code, userID, eventID, amount)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*model.Coupon), args.Get(1).(int64), args.Error(2)
}

func (m *RewardsService) ConsumePoints(ctx context.Context, userID, requested, ceiling int64) (int64, error) {
	args := m.Called(ctx, userID, requested, ceiling)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RewardsService) Refund(ctx context.Context, userID, points int64, description string) error {
	args := m.Called(ctx, userID, points, description)
	return args.Error(0)
}

func (m *RewardsService) ReleaseCoupon(ctx context.Context, couponID int64) error {
	args := m.Called(ctx, couponID)
	return args.Error(0)
}
