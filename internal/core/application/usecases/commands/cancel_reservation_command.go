package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrCancelReservationCommandIsNotConstructed = errors.New(
	"CancelReservationCommand must be created via NewCancelReservationCommand constructor",
)

// CancelReservationCommand represents a request to cancel a booked visit.
// Cancellation deletes the order outright and is only legal while the order
// is still Reservated; later stages must use rebox or payback instead.
type CancelReservationCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCancelReservationCommand creates a command to cancel the reservation.
func NewCancelReservationCommand(orderID int64) (CancelReservationCommand, error) {
	if orderID <= 0 {
		return CancelReservationCommand{}, ErrOrderIDIsRequired
	}

	return CancelReservationCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelReservationCommand) Validate() error {
	return c.guard.Validate(ErrCancelReservationCommandIsNotConstructed)
}

// OrderID returns the reservation to cancel.
func (c CancelReservationCommand) OrderID() int64 { return c.orderID }
