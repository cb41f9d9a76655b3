package model_test

import (
	"testing"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCoupon_DiscountFor(t *testing.T) {
	t.Run("percentage rounds down", func(t *testing.T) {
		coupon := model.Coupon{Discount: 10, IsPercentage: true}

		assert.Equal(t, int64(1005), coupon.DiscountFor(10050))
		assert.Equal(t, int64(0), coupon.DiscountFor(9))
		assert.Equal(t, int64(10000), coupon.DiscountFor(100000))
	})

	t.Run("fixed never exceeds the amount", func(t *testing.T) {
		coupon := model.Coupon{Discount: 50000}

		assert.Equal(t, int64(50000), coupon.DiscountFor(200000))
		assert.Equal(t, int64(30000), coupon.DiscountFor(30000))
	})

	t.Run("percentage over one hundred caps at the amount", func(t *testing.T) {
		coupon := model.Coupon{Discount: 150, IsPercentage: true}

		assert.Equal(t, int64(10000), coupon.DiscountFor(10000))
	})
}

func TestTransactionStatus_Terminal(t *testing.T) {
	terminal := []model.TransactionStatus{
		model.TransactionStatusDone,
		model.TransactionStatusRejected,
		model.TransactionStatusExpired,
	}
	for _, status := range terminal {
		assert.True(t, status.Terminal(), string(status))
	}

	assert.False(t, model.TransactionStatusWaitingPayment.Terminal())
	assert.False(t, model.TransactionStatusWaitingConfirmation.Terminal())
}

func TestPromotion_ActiveAt(t *testing.T) {
	promo := model.Promotion{
		StartsAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, promo.ActiveAt(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, promo.ActiveAt(promo.StartsAt))
	assert.True(t, promo.ActiveAt(promo.EndsAt))
	assert.False(t, promo.ActiveAt(promo.StartsAt.Add(-time.Second)))
	assert.False(t, promo.ActiveAt(promo.EndsAt.Add(time.Second)))
}
