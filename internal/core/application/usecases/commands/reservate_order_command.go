package commands

import (
	"errors"
	"time"

	"rental/internal/pkg/guard"
)

var (
	ErrReservateOrderCommandIsNotConstructed = errors.New(
		"ReservateOrderCommand must be created via NewReservateOrderCommand constructor",
	)
	ErrUserIDIsRequired  = errors.New("user id must be greater than 0")
	ErrVisitAtIsRequired = errors.New("visit datetime is required")
)

// ReservateOrderCommand represents a request to book a visit: a new order is
// created and moved to Reservated, and a slot is taken from the visit pool.
//
// Example:
//
//	cmd, err := NewReservateOrderCommand(userID, visitAt, true, false, "면접", nil)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("reservation failed: %w", err)
//	}
type ReservateOrderCommand struct { //nolint:recvcheck //using for validation
	userID   int64
	visitAt  time.Time
	online   bool
	agent    bool
	purpose  string
	couponID *int64

	guard guard.ConstructorGuard
}

// NewReservateOrderCommand creates a command to book a visit.
// couponID optionally names a coupon to attach to the new order.
func NewReservateOrderCommand(
	userID int64, visitAt time.Time, online, agent bool, purpose string, couponID *int64,
) (ReservateOrderCommand, error) {
	cmd := ReservateOrderCommand{
		online:   online,
		agent:    agent,
		purpose:  purpose,
		couponID: couponID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setVisitAt(visitAt),
	); err != nil {
		return ReservateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReservateOrderCommand) Validate() error {
	return c.guard.Validate(ErrReservateOrderCommandIsNotConstructed)
}

// UserID returns the renter booking the visit.
func (c ReservateOrderCommand) UserID() int64 { return c.userID }

// VisitAt returns the requested visit datetime.
func (c ReservateOrderCommand) VisitAt() time.Time { return c.visitAt }

// Online reports whether the reservation came in online.
func (c ReservateOrderCommand) Online() bool { return c.online }

// Agent reports whether staff books on the renter's behalf.
func (c ReservateOrderCommand) Agent() bool { return c.agent }

// Purpose returns the renter's stated purpose.
func (c ReservateOrderCommand) Purpose() string { return c.purpose }

// CouponID returns the coupon to attach, or nil.
func (c ReservateOrderCommand) CouponID() *int64 { return c.couponID }

func (c *ReservateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *ReservateOrderCommand) setVisitAt(visitAt time.Time) error {
	if visitAt.IsZero() {
		return ErrVisitAtIsRequired
	}

	c.visitAt = visitAt
	return nil
}
