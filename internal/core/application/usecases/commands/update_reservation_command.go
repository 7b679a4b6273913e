package commands

import (
	"errors"
	"time"

	"rental/internal/pkg/guard"
)

var (
	ErrUpdateReservationCommandIsNotConstructed = errors.New(
		"UpdateReservationCommand must be created via NewUpdateReservationCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id must be greater than 0")
)

// UpdateReservationCommand represents a request to reschedule a booked visit.
// Legal while the order is Reservated or in Payment.
type UpdateReservationCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	visitAt  time.Time
	couponID *int64

	guard guard.ConstructorGuard
}

// NewUpdateReservationCommand creates a command to move the visit to visitAt.
// couponID optionally names a coupon to re-transfer onto the order.
func NewUpdateReservationCommand(orderID int64, visitAt time.Time, couponID *int64) (UpdateReservationCommand, error) {
	cmd := UpdateReservationCommand{
		couponID: couponID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVisitAt(visitAt),
	); err != nil {
		return UpdateReservationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReservationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReservationCommandIsNotConstructed)
}

// OrderID returns the order whose visit moves.
func (c UpdateReservationCommand) OrderID() int64 { return c.orderID }

// VisitAt returns the new visit datetime.
func (c UpdateReservationCommand) VisitAt() time.Time { return c.visitAt }

// CouponID returns the coupon to re-transfer, or nil.
func (c UpdateReservationCommand) CouponID() *int64 { return c.couponID }

func (c *UpdateReservationCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateReservationCommand) setVisitAt(visitAt time.Time) error {
	if visitAt.IsZero() {
		return ErrVisitAtIsRequired
	}

	c.visitAt = visitAt
	return nil
}
