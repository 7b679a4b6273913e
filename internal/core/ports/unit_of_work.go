package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each transition.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one transition's transaction boundary: every entity
// mutation of a transition commits together or not at all. Client code must
// explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ClothesRepository returns a ClothesRepository bound to the current transaction.
	ClothesRepository() ClothesRepository

	// CouponRepository returns a CouponRepository bound to the current transaction.
	CouponRepository() CouponRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// BookingRepository returns a BookingRepository bound to the current transaction.
	BookingRepository() BookingRepository
}
