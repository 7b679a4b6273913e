package ports

import (
	"context"

	"rental/internal/core/domain/model/order"
)

// OrderRepository persists the order aggregate including its line items.
type OrderRepository interface {
	// Add saves a new order and assigns its identity.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves an existing order, replacing its line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes a cancelled reservation and its line items.
	Delete(ctx context.Context, id int64) error

	// CountRentalsByUser returns how many of the user's orders have reached
	// Rental status or beyond, i.e. completed visits. The current order is
	// not among them while it is still being packed.
	CountRentalsByUser(ctx context.Context, userID int64) (int, error)

	// FindHoldersOfCoupon returns the orders currently referencing the coupon.
	FindHoldersOfCoupon(ctx context.Context, couponID int64) ([]*order.Order, error)
}
