package coupon_test

import (
	"testing"

	"rental/internal/core/domain/model/coupon"

	"github.com/stretchr/testify/assert"
)

func TestFixedBenefit(t *testing.T) {
	b := coupon.FixedBenefit{Amount: 3000}

	t.Run("should discount the fixed amount regardless of total", func(t *testing.T) {
		assert.Equal(t, -3000, b.Discount(30000))
		assert.Equal(t, -3000, b.Discount(1000))
		assert.Equal(t, -3000, b.Discount(0))
	})

	t.Run("should label the discount line with the amount", func(t *testing.T) {
		assert.Equal(t, "3000원 할인쿠폰", b.Label())
	})

	t.Run("should tag the line as partial coupon payment", func(t *testing.T) {
		assert.Equal(t, "쿠폰+", b.PayWithTag())
	})
}

func TestRateBenefit(t *testing.T) {
	b := coupon.RateBenefit{Percent: 30}

	t.Run("should discount a percentage of the total", func(t *testing.T) {
		assert.Equal(t, -9000, b.Discount(30000))
		assert.Equal(t, 0, b.Discount(0))
	})

	t.Run("should truncate fractional amounts toward zero", func(t *testing.T) {
		// 30% of 1001 is 300.3, truncated to 300.
		assert.Equal(t, -300, b.Discount(1001))
		assert.Equal(t, 0, b.Discount(3))
	})

	t.Run("should label the discount line with the percentage", func(t *testing.T) {
		assert.Equal(t, "30% 할인쿠폰", b.Label())
	})

	t.Run("should tag the line as partial coupon payment", func(t *testing.T) {
		assert.Equal(t, "쿠폰+", b.PayWithTag())
	})
}

func TestSuitBenefit(t *testing.T) {
	b := coupon.SuitBenefit{}

	t.Run("should make the whole rental free", func(t *testing.T) {
		assert.Equal(t, -30000, b.Discount(30000))
		assert.Equal(t, 0, b.Discount(0))
	})

	t.Run("should label the discount line", func(t *testing.T) {
		assert.Equal(t, "단벌 할인쿠폰", b.Label())
	})

	t.Run("should tag the line as full coupon payment", func(t *testing.T) {
		assert.Equal(t, "쿠폰", b.PayWithTag())
	})
}
