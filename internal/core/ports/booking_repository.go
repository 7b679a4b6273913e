package ports

import (
	"context"

	"rental/internal/core/domain/model/booking"
	"rental/internal/core/domain/model/user"
)

// BookingRepository persists visit slot pools. GetForUpdate must lock the row
// for the remainder of the transaction so two concurrent reservations cannot
// both take the last slot or both borrow from the same pool.
type BookingRepository interface {
	// GetForUpdate retrieves and row-locks the pool for a visit datetime and
	// gender.
	GetForUpdate(ctx context.Context, at string, gender user.Gender) (*booking.Slot, error)

	// Update saves a pool's capacity and reservation count.
	Update(ctx context.Context, slot *booking.Slot) error
}
