package service

import (
	"context"
	"errors"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"go.uber.org/zap"
)

// RewardsService owns coupon consumption and the points ledger. Every
// balance mutation appends a PointHistory row in the same transaction.
type RewardsService interface {
	ApplyCoupon(ctx context.Context, code string, userID, eventID int64, amount int64) (*model.Coupon, int64, error)
	ConsumePoints(ctx context.Context, userID, requested, ceiling int64) (int64, error)
	Refund(ctx context.Context, userID, points int64, description string) error
	ReleaseCoupon(ctx context.Context, couponID int64) error
}

type rewards struct {
	couponRepo repository.CouponRepository
	userRepo   repository.UserRepository
	logger     *zap.Logger
}

func NewRewardsService(couponRepo repository.CouponRepository, userRepo repository.UserRepository,
	logger *zap.Logger) RewardsService {
	return &rewards{couponRepo: couponRepo, userRepo: userRepo, logger: logger}
}

// ApplyCoupon validates and consumes the coupon, returning the
// computed discount. A coupon bound to another event is refused; a
// coupon without an event binding works anywhere.
func (r *rewards) ApplyCoupon(ctx context.Context, code string, userID, eventID int64,
	amount int64) (*model.Coupon, int64, error) {

	coupon, err := r.couponRepo.FindUsable(ctx, code, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			r.logger.Info("Coupon not usable",
				zap.String("code", code),
				zap.Int64("userID", userID))
			return nil, 0, NewServiceError(constants.ErrCodeCouponNotFound, err)
		}

		r.logger.Error("Failed to look up coupon", zap.String("code", code), zap.Error(err))
		return nil, 0, NewServiceError(constants.ErrCodeDatabase, err)
	}

	if coupon.EventID != nil && *coupon.EventID != eventID {
		r.logger.Info("Coupon bound to a different event",
			zap.String("code", code),
			zap.Int64("couponEventID", *coupon.EventID),
			zap.Int64("eventID", eventID))
		return nil, 0, NewServiceError(constants.ErrCodeCouponEventMismatch,
			errors.New("coupon event mismatch"))
	}

	if err := r.couponRepo.MarkUsed(ctx, coupon.ID); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			// Consumed by a racing transaction between lookup and update.
			return nil, 0, NewServiceError(constants.ErrCodeCouponNotFound, err)
		}

		r.logger.Error("Failed to mark coupon used", zap.Int64("couponID", coupon.ID), zap.Error(err))
		return nil, 0, NewServiceError(constants.ErrCodeDatabase, err)
	}

	return coupon, coupon.DiscountFor(amount), nil
}

// ConsumePoints debits min(requested, balance, ceiling) and records
// the ledger entry. Clamping is silent; a zero result debits nothing.
func (r *rewards) ConsumePoints(ctx context.Context, userID, requested, ceiling int64) (int64, error) {
	if requested <= 0 || ceiling <= 0 {
		return 0, nil
	}

	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}

	points := requested
	if user.PointBalance < points {
		points = user.PointBalance
	}
	if ceiling < points {
		points = ceiling
	}

	if points <= 0 {
		return 0, nil
	}

	if err := r.userRepo.DebitPoints(ctx, userID, points); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			// Balance dropped below the clamp since the read. The whole
			// purchase rolls back rather than guessing a new clamp.
			r.logger.Warn("Point balance changed during purchase", zap.Int64("userID", userID))
			return 0, NewServiceError(constants.ErrCodeValidation,
				errors.New("point balance changed, retry the purchase"))
		}

		r.logger.Error("Failed to debit points", zap.Int64("userID", userID), zap.Error(err))
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}

	entry := &model.PointHistory{
		UserID:      userID,
		Points:      -points,
		Description: "Points used for ticket purchase",
		CreatedAt:   time.Now(),
	}
	if err := r.userRepo.AppendHistory(ctx, entry); err != nil {
		r.logger.Error("Failed to append point history", zap.Int64("userID", userID), zap.Error(err))
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}

	return points, nil
}

func (r *rewards) Refund(ctx context.Context, userID, points int64, description string) error {
	if points <= 0 {
		return nil
	}

	if err := r.userRepo.CreditPoints(ctx, userID, points); err != nil {
		r.logger.Error("Failed to credit points", zap.Int64("userID", userID), zap.Error(err))
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	entry := &model.PointHistory{
		UserID:      userID,
		Points:      points,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := r.userRepo.AppendHistory(ctx, entry); err != nil {
		r.logger.Error("Failed to append point history", zap.Int64("userID", userID), zap.Error(err))
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	return nil
}

func (r *rewards) ReleaseCoupon(ctx context.Context, couponID int64) error {
	if err := r.couponRepo.Release(ctx, couponID); err != nil {
		r.logger.Error("Failed to release coupon", zap.Int64("couponID", couponID), zap.Error(err))
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	return nil
}
