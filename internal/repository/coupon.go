package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"gorm.io/gorm"
)

var ErrCouponNotFound = errors.New("COUPON_NOT_FOUND")

type CouponRepository interface {
	FindUsable(ctx context.Context, code string, userID int64) (*model.Coupon, error)
	MarkUsed(ctx context.Context, id int64) error
	Release(ctx context.Context, id int64) error
}

type Coupon struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &Coupon{db: db}
}

// FindUsable looks up an unused, unexpired coupon owned by the user.
func (c *Coupon) FindUsable(ctx context.Context, code string, userID int64) (*model.Coupon, error) {
	db := GetTx(ctx, c.db)

	var coupon model.Coupon
	err := db.Where("code = ? AND user_id = ? AND is_used = ? AND expires_at > ?",
		code, userID, false, time.Now()).
		First(&coupon).Error
	if err == nil {
		return &coupon, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCouponNotFound
	}

	return nil, err
}

// MarkUsed consumes the coupon with an is_used guard so a coupon can
// never back two pending transactions at once.
func (c *Coupon) MarkUsed(ctx context.Context, id int64) error {
	db := GetTx(ctx, c.db)

	result := db.Model(&model.Coupon{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]interface{}{
			"is_used":    true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (c *Coupon) Release(ctx context.Context, id int64) error {
	db := GetTx(ctx, c.db)

	return db.Model(&model.Coupon{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_used":    false,
			"updated_at": time.Now(),
		}).Error
}
