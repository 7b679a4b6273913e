package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrReboxOrderCommandIsNotConstructed = errors.New(
	"ReboxOrderCommand must be created via NewReboxOrderCommand constructor",
)

// ReboxOrderCommand represents the renter rejecting the packed box before
// payment: Payment moves back to Box, the priced lines are dropped and the
// items go back to the racks for a fresh pick.
type ReboxOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewReboxOrderCommand creates a command to send the order back to packing.
func NewReboxOrderCommand(orderID int64) (ReboxOrderCommand, error) {
	if orderID <= 0 {
		return ReboxOrderCommand{}, ErrOrderIDIsRequired
	}

	return ReboxOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReboxOrderCommand) Validate() error {
	return c.guard.Validate(ErrReboxOrderCommandIsNotConstructed)
}

// OrderID returns the order going back to packing.
func (c ReboxOrderCommand) OrderID() int64 { return c.orderID }
