package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/mocks"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRewards_ApplyCoupon(t *testing.T) {
	logger := zap.NewNop()

	t.Run("percentage coupon rounds down", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		coupon := &model.Coupon{
			ID: 5, Code: "TEN", UserID: 7, Discount: 10, IsPercentage: true,
			ExpiresAt: time.Now().Add(time.Hour),
		}

		mockCouponRepo.On("FindUsable", context.Background(), "TEN", int64(7)).Return(coupon, nil)
		mockCouponRepo.On("MarkUsed", context.Background(), int64(5)).Return(nil)

		applied, discount, err := svc.ApplyCoupon(context.Background(), "TEN", 7, 1, 10050)

		assert.NoError(t, err)
		assert.Equal(t, int64(5), applied.ID)
		assert.Equal(t, int64(1005), discount)
		mockCouponRepo.AssertExpectations(t)
	})

	t.Run("fixed coupon capped at the total", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		coupon := &model.Coupon{ID: 6, Discount: 50000}

		mockCouponRepo.On("FindUsable", context.Background(), "FLAT", int64(7)).Return(coupon, nil)
		mockCouponRepo.On("MarkUsed", context.Background(), int64(6)).Return(nil)

		_, discount, err := svc.ApplyCoupon(context.Background(), "FLAT", 7, 1, 30000)

		assert.NoError(t, err)
		assert.Equal(t, int64(30000), discount)
	})

	t.Run("coupon not usable", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		mockCouponRepo.On("FindUsable", context.Background(), "GONE", int64(7)).
			Return(nil, repository.ErrCouponNotFound)

		_, _, err := svc.ApplyCoupon(context.Background(), "GONE", 7, 1, 10000)

		assert.Equal(t, constants.ErrCodeCouponNotFound, service.CodeOf(err))
		mockCouponRepo.AssertNotCalled(t, "MarkUsed")
	})

	t.Run("coupon bound to another event", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		otherEvent := int64(2)
		coupon := &model.Coupon{ID: 5, EventID: &otherEvent, Discount: 10, IsPercentage: true}

		mockCouponRepo.On("FindUsable", context.Background(), "BOUND", int64(7)).Return(coupon, nil)

		_, _, err := svc.ApplyCoupon(context.Background(), "BOUND", 7, 1, 10000)

		assert.Equal(t, constants.ErrCodeCouponEventMismatch, service.CodeOf(err))
		mockCouponRepo.AssertNotCalled(t, "MarkUsed")
	})

	t.Run("coupon consumed by a racing transaction", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		coupon := &model.Coupon{ID: 5, Discount: 10, IsPercentage: true}

		mockCouponRepo.On("FindUsable", context.Background(), "RACE", int64(7)).Return(coupon, nil)
		mockCouponRepo.On("MarkUsed", context.Background(), int64(5)).
			Return(repository.ErrNoRowsAffected)

		_, _, err := svc.ApplyCoupon(context.Background(), "RACE", 7, 1, 10000)

		assert.Equal(t, constants.ErrCodeCouponNotFound, service.CodeOf(err))
	})
}

func TestRewards_ConsumePoints(t *testing.T) {
	logger := zap.NewNop()

	t.Run("clamps to balance and records the debit", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		user := &model.User{ID: 7, PointBalance: 50000}

		mockUserRepo.On("GetByID", context.Background(), int64(7)).Return(user, nil)
		mockUserRepo.On("DebitPoints", context.Background(), int64(7), int64(50000)).Return(nil)
		mockUserRepo.On("AppendHistory", context.Background(),
			mock.MatchedBy(func(entry *model.PointHistory) bool {
				return entry.UserID == 7 && entry.Points == -50000
			})).Return(nil)

		points, err := svc.ConsumePoints(context.Background(), 7, 200000, 180000)

		assert.NoError(t, err)
		assert.Equal(t, int64(50000), points)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("clamps to the remaining total", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		user := &model.User{ID: 7, PointBalance: 500000}

		mockUserRepo.On("GetByID", context.Background(), int64(7)).Return(user, nil)
		mockUserRepo.On("DebitPoints", context.Background(), int64(7), int64(180000)).Return(nil)
		mockUserRepo.On("AppendHistory", context.Background(),
			mock.AnythingOfType("*model.PointHistory")).Return(nil)

		points, err := svc.ConsumePoints(context.Background(), 7, 200000, 180000)

		assert.NoError(t, err)
		assert.Equal(t, int64(180000), points)
	})

	t.Run("zero requested debits nothing", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		points, err := svc.ConsumePoints(context.Background(), 7, 0, 180000)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), points)
		mockUserRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("zero balance debits nothing", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		user := &model.User{ID: 7, PointBalance: 0}
		mockUserRepo.On("GetByID", context.Background(), int64(7)).Return(user, nil)

		points, err := svc.ConsumePoints(context.Background(), 7, 1000, 180000)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), points)
		mockUserRepo.AssertNotCalled(t, "DebitPoints")
	})

	t.Run("balance changed between read and debit", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		user := &model.User{ID: 7, PointBalance: 50000}

		mockUserRepo.On("GetByID", context.Background(), int64(7)).Return(user, nil)
		mockUserRepo.On("DebitPoints", context.Background(), int64(7), int64(50000)).
			Return(repository.ErrNoRowsAffected)

		_, err := svc.ConsumePoints(context.Background(), 7, 50000, 180000)

		assert.Equal(t, constants.ErrCodeValidation, service.CodeOf(err))
		mockUserRepo.AssertNotCalled(t, "AppendHistory")
	})
}

func TestRewards_Refund(t *testing.T) {
	logger := zap.NewNop()

	t.Run("credits points with a ledger entry", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		mockUserRepo.On("CreditPoints", context.Background(), int64(7), int64(5000)).Return(nil)
		mockUserRepo.On("AppendHistory", context.Background(),
			mock.MatchedBy(func(entry *model.PointHistory) bool {
				return entry.UserID == 7 && entry.Points == 5000 &&
					entry.Description == "Points refunded for rejected transaction"
			})).Return(nil)

		err := svc.Refund(context.Background(), 7, 5000, "Points refunded for rejected transaction")

		assert.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("nothing to refund", func(t *testing.T) {
		mockCouponRepo := &mocks.CouponRepository{}
		mockUserRepo := &mocks.UserRepository{}
		svc := service.NewRewardsService(mockCouponRepo, mockUserRepo, logger)

		err := svc.Refund(context.Background(), 7, 0, "noop")

		assert.NoError(t, err)
		mockUserRepo.AssertNotCalled(t, "CreditPoints")
	})
}
