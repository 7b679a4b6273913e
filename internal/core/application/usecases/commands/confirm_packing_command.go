package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrConfirmPackingCommandIsNotConstructed = errors.New(
	"ConfirmPackingCommand must be created via NewConfirmPackingCommand constructor",
)

// ConfirmPackingCommand represents the renter accepting the packed box:
// Boxed moves to Payment and the return deadline is fixed.
type ConfirmPackingCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewConfirmPackingCommand creates a command to confirm the packed box.
func NewConfirmPackingCommand(orderID int64) (ConfirmPackingCommand, error) {
	if orderID <= 0 {
		return ConfirmPackingCommand{}, ErrOrderIDIsRequired
	}

	return ConfirmPackingCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPackingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPackingCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmPackingCommand) OrderID() int64 { return c.orderID }
