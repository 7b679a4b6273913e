package commands

import (
	"errors"
	"time"

	"rental/internal/pkg/guard"
)

var (
	ErrPartialReturnCommandIsNotConstructed = errors.New(
		"PartialReturnCommand must be created via NewPartialReturnCommand constructor",
	)
	ErrReturnedClothesAreRequired = errors.New("at least one returned clothes id is required")
)

// PartialReturnCommand represents the renter bringing back only part of the
// box. The parent order closes over the returned items and a child order is
// spawned to keep tracking the rest.
type PartialReturnCommand struct { //nolint:recvcheck //using for validation
	orderID            int64
	returnedAt         time.Time
	returnedClothesIDs []int64

	lateFeeWaiver  int
	lateFeePayWith string

	compensation        int
	compensationName    string
	compensationWaiver  int
	compensationPayWith string

	guard guard.ConstructorGuard
}

// NewPartialReturnCommand creates a command returning the listed clothing
// items at returnedAt. Charge semantics match NewReturnRentalCommand.
func NewPartialReturnCommand(
	orderID int64, returnedAt time.Time, returnedClothesIDs []int64,
	lateFeeWaiver int, lateFeePayWith string,
	compensation int, compensationName string,
	compensationWaiver int, compensationPayWith string,
) (PartialReturnCommand, error) {
	cmd := PartialReturnCommand{
		lateFeePayWith:      lateFeePayWith,
		compensationName:    compensationName,
		compensationPayWith: compensationPayWith,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReturnedAt(returnedAt),
		cmd.setReturnedClothesIDs(returnedClothesIDs),
		cmd.setCharges(lateFeeWaiver, compensation, compensationWaiver),
	); err != nil {
		return PartialReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PartialReturnCommand) Validate() error {
	return c.guard.Validate(ErrPartialReturnCommandIsNotConstructed)
}

// OrderID returns the order being partially returned.
func (c PartialReturnCommand) OrderID() int64 { return c.orderID }

// ReturnedAt returns the actual return datetime.
func (c PartialReturnCommand) ReturnedAt() time.Time { return c.returnedAt }

// ReturnedClothesIDs returns the clothing items coming back now.
func (c PartialReturnCommand) ReturnedClothesIDs() []int64 { return c.returnedClothesIDs }

func (c PartialReturnCommand) charges() returnCharges {
	return returnCharges{
		returnedAt:          c.returnedAt,
		lateFeeWaiver:       c.lateFeeWaiver,
		lateFeePayWith:      c.lateFeePayWith,
		compensation:        c.compensation,
		compensationName:    c.compensationName,
		compensationWaiver:  c.compensationWaiver,
		compensationPayWith: c.compensationPayWith,
	}
}

func (c *PartialReturnCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *PartialReturnCommand) setReturnedAt(returnedAt time.Time) error {
	if returnedAt.IsZero() {
		return ErrReturnedAtIsRequired
	}

	c.returnedAt = returnedAt
	return nil
}

func (c *PartialReturnCommand) setReturnedClothesIDs(ids []int64) error {
	if len(ids) == 0 {
		return ErrReturnedClothesAreRequired
	}

	c.returnedClothesIDs = ids
	return nil
}

func (c *PartialReturnCommand) setCharges(lateFeeWaiver, compensation, compensationWaiver int) error {
	if lateFeeWaiver < 0 || compensation < 0 || compensationWaiver < 0 {
		return ErrChargeMustNotBeNegative
	}

	c.lateFeeWaiver = lateFeeWaiver
	c.compensation = compensation
	c.compensationWaiver = compensationWaiver
	return nil
}
