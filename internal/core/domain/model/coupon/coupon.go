// Package coupon contains the coupon aggregate: a closed benefit sum type
// (fixed amount, rate, single-item) and the status transitions a coupon moves
// through from being handed out to being spent.
package coupon

import (
	"errors"
	"fmt"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// ErrCouponIsNotConstructed is returned when a Coupon instance was not
// created through NewCoupon or RestoreCoupon.
var ErrCouponIsNotConstructed = errors.New("Coupon must be created via NewCoupon constructor")

// Status represents the coupon lifecycle.
//
//	Provided ──> Reserved ──> Used
//	                 ▲          │
//	                 └──────────┘ (payback reversal)
//
// Discarded and Expired are terminal administrative states.
type Status int

const (
	// Provided means the coupon was handed out but not yet tied to an order.
	Provided Status = iota

	// Reserved means an order holds the coupon.
	Reserved

	// Used means the coupon paid for a rental.
	Used

	// Discarded means staff voided the coupon.
	Discarded

	// Expired means the linked campaign window closed.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Provided:  "Provided",
		Reserved:  "Reserved",
		Used:      "Used",
		Discarded: "Discarded",
		Expired:   "Expired",
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the coupon can no longer move between orders.
func (s Status) IsTerminal() bool {
	return s == Used || s == Discarded || s == Expired
}

// Coupon is issued to a renter, optionally linked to a campaign event whose
// usage may be capped. At most one non-terminal order references a coupon at
// a time; moving it is the ledger's job and always forcibly clears the
// previous holder.
type Coupon struct {
	id      int64
	benefit Benefit
	status  Status
	event   string
	memo    string

	guard guard.ConstructorGuard
}

// NewCoupon issues a coupon carrying the given benefit. Event names the
// campaign the coupon belongs to and may be empty.
func NewCoupon(benefit Benefit, event string) (*Coupon, error) {
	if benefit == nil {
		return nil, errs.NewValueIsRequiredError("coupon benefit")
	}
	return &Coupon{
		benefit: benefit,
		status:  Provided,
		event:   event,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreCoupon reconstructs a coupon from persistence.
func RestoreCoupon(id int64, benefit Benefit, status Status, event, memo string) (*Coupon, error) {
	c, err := NewCoupon(benefit, event)
	if err != nil {
		return nil, err
	}
	c.id = id
	c.status = status
	c.memo = memo
	return c, nil
}

// Validate ensures the coupon was created through a constructor.
func (c *Coupon) Validate() error {
	if c == nil {
		return ErrCouponIsNotConstructed
	}
	return c.guard.Validate(ErrCouponIsNotConstructed)
}

// ID returns the coupon identifier (zero before first save).
func (c *Coupon) ID() int64 { return c.id }

// SetID is called by persistence after the first insert.
func (c *Coupon) SetID(id int64) { c.id = id }

// Benefit returns the coupon's benefit case.
func (c *Coupon) Benefit() Benefit { return c.benefit }

// Status returns the coupon lifecycle status.
func (c *Coupon) Status() Status { return c.status }

// Event returns the linked campaign event name, or empty.
func (c *Coupon) Event() string { return c.event }

// Memo returns the audit notes accumulated on the coupon.
func (c *Coupon) Memo() string { return c.memo }

// AppendMemo records an audit note on the coupon.
func (c *Coupon) AppendMemo(note string) {
	if note == "" {
		return
	}
	if c.memo != "" {
		c.memo += "\n"
	}
	c.memo += note
}

// Reserve promotes a provided coupon to reserved.
func (c *Coupon) Reserve() error {
	if c.status.IsTerminal() {
		return c.invalidTransition("reserve")
	}
	c.status = Reserved
	return nil
}

// MarkUsed spends a reserved coupon.
func (c *Coupon) MarkUsed() error {
	if c.status != Reserved {
		return c.invalidTransition("use")
	}
	c.status = Used
	return nil
}

// RevertToReserved is the single backwards transition: a coupon spent on a
// rental that was paid back becomes reserved again.
func (c *Coupon) RevertToReserved() error {
	if c.status != Used {
		return c.invalidTransition("revert")
	}
	c.status = Reserved
	return nil
}

// Discard voids the coupon.
func (c *Coupon) Discard() error {
	if c.status.IsTerminal() {
		return c.invalidTransition("discard")
	}
	c.status = Discarded
	return nil
}

func (c *Coupon) invalidTransition(op string) error {
	return errs.NewValueIsInvalidErrorWithCause("coupon status is invalid",
		fmt.Errorf("%s is not a valid status to %s", c.status.String(), op))
}
