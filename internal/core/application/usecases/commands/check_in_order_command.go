package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrCheckInOrderCommandIsNotConstructed = errors.New(
	"CheckInOrderCommand must be created via NewCheckInOrderCommand constructor",
)

// CheckInOrderCommand represents the renter arriving for the fitting:
// Reservated moves to Box and staff start picking items.
type CheckInOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCheckInOrderCommand creates a command to check the renter in.
func NewCheckInOrderCommand(orderID int64) (CheckInOrderCommand, error) {
	if orderID <= 0 {
		return CheckInOrderCommand{}, ErrOrderIDIsRequired
	}

	return CheckInOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckInOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckInOrderCommandIsNotConstructed)
}

// OrderID returns the arriving order.
func (c CheckInOrderCommand) OrderID() int64 { return c.orderID }
