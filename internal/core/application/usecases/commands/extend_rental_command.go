package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var (
	ErrExtendRentalCommandIsNotConstructed = errors.New(
		"ExtendRentalCommand must be created via NewExtendRentalCommand constructor",
	)
	ErrAdditionalDaysAreInvalid = errors.New("additional days must not be negative")
)

// ExtendRentalCommand represents a request for extra rental days while the
// order is still in Payment. The return deadline and the clothing line prices
// are recomputed from the extension rate.
type ExtendRentalCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	days    int

	guard guard.ConstructorGuard
}

// NewExtendRentalCommand creates a command for the given number of extra days.
// Zero days resets a previously granted extension.
func NewExtendRentalCommand(orderID int64, days int) (ExtendRentalCommand, error) {
	cmd := ExtendRentalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDays(days),
	); err != nil {
		return ExtendRentalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExtendRentalCommand) Validate() error {
	return c.guard.Validate(ErrExtendRentalCommandIsNotConstructed)
}

// OrderID returns the order being extended.
func (c ExtendRentalCommand) OrderID() int64 { return c.orderID }

// Days returns the number of additional rental days.
func (c ExtendRentalCommand) Days() int { return c.days }

func (c *ExtendRentalCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *ExtendRentalCommand) setDays(days int) error {
	if days < 0 {
		return ErrAdditionalDaysAreInvalid
	}

	c.days = days
	return nil
}
