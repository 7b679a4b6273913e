// Package commands contains the write operations of the rental lifecycle.
// Every lifecycle transition is a command plus a handler; handlers open one
// unit of work per transition so every entity touched by the transition
// commits together or not at all. Outbound notifications and messages run
// after the commit and never affect the transition outcome.
package commands

import (
	"context"

	"rental/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination it needs.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ClothesRepoFactory provides access to the clothes repository within a transaction.
	ClothesRepoFactory interface {
		ClothesRepository() ports.ClothesRepository
	}

	// CouponRepoFactory provides access to the coupon repository within a transaction.
	CouponRepoFactory interface {
		CouponRepository() ports.CouponRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// OrderUoW manages transactions for order-only transitions
	// (check-in, packing confirmation, extension).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReservationUoW manages transactions for the booking flow: the order,
	// the visit slot pools, the coupon being attached and the renter profile.
	ReservationUoW interface {
		TxManager
		OrderRepoFactory
		BookingRepoFactory
		CouponRepoFactory
		UserRepoFactory
	}

	// ReservationUoWFactory creates new reservation unit of work instances.
	ReservationUoWFactory interface {
		Create() ReservationUoW
	}

	// FulfillmentUoW manages transactions for the in-store flow from packing
	// through return and payback: the order, the clothing items mirrored onto
	// it, the coupon and the renter profile.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		ClothesRepoFactory
		CouponRepoFactory
		UserRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
