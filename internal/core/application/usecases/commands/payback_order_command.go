package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var (
	ErrPaybackOrderCommandIsNotConstructed = errors.New(
		"PaybackOrderCommand must be created via NewPaybackOrderCommand constructor",
	)
	ErrRefundChargeIsNegative = errors.New("refund charge must not be negative")
)

// PaybackOrderCommand represents a full refund of a running rental: the
// renter brings everything back and the paid amount flows back, minus an
// optional charge withheld by staff.
type PaybackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	refundCharge int
	payWith      string

	guard guard.ConstructorGuard
}

// NewPaybackOrderCommand creates a command to pay the rental back.
// refundCharge is the won amount withheld from the refund, zero for a full
// one. payWith names how the refund is issued.
func NewPaybackOrderCommand(orderID int64, refundCharge int, payWith string) (PaybackOrderCommand, error) {
	cmd := PaybackOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRefundCharge(refundCharge),
		cmd.setPayWith(payWith),
	); err != nil {
		return PaybackOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PaybackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPaybackOrderCommandIsNotConstructed)
}

// OrderID returns the order being paid back.
func (c PaybackOrderCommand) OrderID() int64 { return c.orderID }

// RefundCharge returns the amount withheld from the refund (>= 0).
func (c PaybackOrderCommand) RefundCharge() int { return c.refundCharge }

// PayWith returns how the refund is issued.
func (c PaybackOrderCommand) PayWith() string { return c.payWith }

func (c *PaybackOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *PaybackOrderCommand) setRefundCharge(charge int) error {
	if charge < 0 {
		return ErrRefundChargeIsNegative
	}

	c.refundCharge = charge
	return nil
}

func (c *PaybackOrderCommand) setPayWith(payWith string) error {
	if payWith == "" {
		return ErrPayWithIsRequired
	}

	c.payWith = payWith
	return nil
}
