package ports

import (
	"context"

	"rental/internal/core/domain/model/coupon"
)

// CouponRepository persists coupons.
type CouponRepository interface {
	// Add saves a new coupon and assigns its identity.
	Add(ctx context.Context, c *coupon.Coupon) error

	// Update saves an existing coupon.
	Update(ctx context.Context, c *coupon.Coupon) error

	// Get retrieves a coupon by identity.
	Get(ctx context.Context, id int64) (*coupon.Coupon, error)

	// CountUsedByEvent returns how many coupons of the given campaign event
	// are already used, for the per-campaign usage cap.
	CountUsedByEvent(ctx context.Context, event string) (int, error)
}
