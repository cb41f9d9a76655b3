package model

import "time"

// Coupon is a single-use discount code owned by one user. EventID nil
// means the coupon is valid for any event. Coupons are marked used and
// released again on rejection, never deleted.
type Coupon struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Code         string    `gorm:"column:code;index:idx_coupon_code_user,unique"`
	UserID       int64     `gorm:"column:user_id;index:idx_coupon_code_user,unique"`
	EventID      *int64    `gorm:"column:event_id"`
	Discount     int64     `gorm:"column:discount"`
	IsPercentage bool      `gorm:"column:is_percentage"`
	IsUsed       bool      `gorm:"column:is_used"`
	ExpiresAt    time.Time `gorm:"column:expires_at"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// DiscountFor computes the discount in minor units for the given
// amount. Percentage discounts round down (integer division); no
// discount ever exceeds the amount itself.
func (c Coupon) DiscountFor(amount int64) int64 {
	discount := c.Discount
	if c.IsPercentage {
		discount = amount * c.Discount / 100
	}
	if discount > amount {
		return amount
	}
	return discount
}
