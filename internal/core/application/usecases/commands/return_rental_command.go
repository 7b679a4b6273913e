package commands

import (
	"errors"
	"time"

	"rental/internal/pkg/guard"
)

var (
	ErrReturnRentalCommandIsNotConstructed = errors.New(
		"ReturnRentalCommand must be created via NewReturnRentalCommand constructor",
	)
	ErrReturnedAtIsRequired    = errors.New("return datetime is required")
	ErrChargeMustNotBeNegative = errors.New("charges and waivers must not be negative")
)

// ReturnRentalCommand represents the renter bringing (or mailing) the box
// back. Late fees follow from the return datetime; staff may add a damage
// compensation charge and waive parts of either.
type ReturnRentalCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	returnedAt time.Time
	byMail     bool

	lateFeeWaiver  int
	lateFeePayWith string

	compensation        int
	compensationName    string
	compensationWaiver  int
	compensationPayWith string

	guard guard.ConstructorGuard
}

// NewReturnRentalCommand creates a command to close the rental at returnedAt.
// Waivers and the compensation charge are absolute won amounts, zero when
// unused. The pay-with fields may stay empty unless the matching charge ends
// up positive.
func NewReturnRentalCommand(
	orderID int64, returnedAt time.Time, byMail bool,
	lateFeeWaiver int, lateFeePayWith string,
	compensation int, compensationName string,
	compensationWaiver int, compensationPayWith string,
) (ReturnRentalCommand, error) {
	cmd := ReturnRentalCommand{
		byMail:              byMail,
		lateFeePayWith:      lateFeePayWith,
		compensationName:    compensationName,
		compensationPayWith: compensationPayWith,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReturnedAt(returnedAt),
		cmd.setCharges(lateFeeWaiver, compensation, compensationWaiver),
	); err != nil {
		return ReturnRentalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnRentalCommand) Validate() error {
	return c.guard.Validate(ErrReturnRentalCommandIsNotConstructed)
}

// OrderID returns the order being returned.
func (c ReturnRentalCommand) OrderID() int64 { return c.orderID }

// ReturnedAt returns the actual return datetime.
func (c ReturnRentalCommand) ReturnedAt() time.Time { return c.returnedAt }

// ByMail reports whether the box came back by mail rather than in person.
func (c ReturnRentalCommand) ByMail() bool { return c.byMail }

// LateFeeWaiver returns the waived late-fee amount (>= 0).
func (c ReturnRentalCommand) LateFeeWaiver() int { return c.lateFeeWaiver }

// LateFeePayWith returns the late-fee payment method.
func (c ReturnRentalCommand) LateFeePayWith() string { return c.lateFeePayWith }

// Compensation returns the damage compensation charge (>= 0).
func (c ReturnRentalCommand) Compensation() int { return c.compensation }

// CompensationName returns the display name of the compensation charge.
func (c ReturnRentalCommand) CompensationName() string { return c.compensationName }

// CompensationWaiver returns the waived compensation amount (>= 0).
func (c ReturnRentalCommand) CompensationWaiver() int { return c.compensationWaiver }

// CompensationPayWith returns the compensation payment method.
func (c ReturnRentalCommand) CompensationPayWith() string { return c.compensationPayWith }

func (c *ReturnRentalCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *ReturnRentalCommand) setReturnedAt(returnedAt time.Time) error {
	if returnedAt.IsZero() {
		return ErrReturnedAtIsRequired
	}

	c.returnedAt = returnedAt
	return nil
}

func (c *ReturnRentalCommand) setCharges(lateFeeWaiver, compensation, compensationWaiver int) error {
	if lateFeeWaiver < 0 || compensation < 0 || compensationWaiver < 0 {
		return ErrChargeMustNotBeNegative
	}

	c.lateFeeWaiver = lateFeeWaiver
	c.compensation = compensation
	c.compensationWaiver = compensationWaiver
	return nil
}
