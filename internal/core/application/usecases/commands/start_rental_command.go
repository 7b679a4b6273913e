package commands

import (
	"errors"

	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/guard"
)

var (
	ErrStartRentalCommandIsNotConstructed = errors.New(
		"StartRentalCommand must be created via NewStartRentalCommand constructor",
	)
	ErrPayWithIsRequired = errors.New("payment method is required")
)

// StartRentalCommand represents the handover at the counter: payment is
// settled with the given method, the renter's measurements are snapshotted
// and the order moves from Payment to Rental.
type StartRentalCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	payWith string
	body    *order.BodySnapshot

	guard guard.ConstructorGuard
}

// NewStartRentalCommand creates a command to hand the box over. body carries
// the measurements taken at the fitting and may be nil; it is discarded for
// agent orders either way.
func NewStartRentalCommand(orderID int64, payWith string, body *order.BodySnapshot) (StartRentalCommand, error) {
	cmd := StartRentalCommand{
		body:  body,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPayWith(payWith),
	); err != nil {
		return StartRentalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRentalCommand) Validate() error {
	return c.guard.Validate(ErrStartRentalCommandIsNotConstructed)
}

// OrderID returns the order being handed over.
func (c StartRentalCommand) OrderID() int64 { return c.orderID }

// PayWith returns the payment method.
func (c StartRentalCommand) PayWith() string { return c.payWith }

// Body returns the measurement snapshot, or nil.
func (c StartRentalCommand) Body() *order.BodySnapshot { return c.body }

func (c *StartRentalCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *StartRentalCommand) setPayWith(payWith string) error {
	if payWith == "" {
		return ErrPayWithIsRequired
	}

	c.payWith = payWith
	return nil
}
