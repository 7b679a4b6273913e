package order

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental order.
// It implements a state machine with defined transitions so orders follow
// the rental workflow exactly.
//
// State transitions:
//
//	None ──> Reservated ──> Box ──> Boxed ──> Payment ──> Rental ──> Returned
//	              │          ▲                   │           │
//	           (delete)      └───────────────────┘           └──────> Payback
//	                              (re-box)
//
// Reservated orders may additionally be deleted (cancellation). CancelBox is
// never a valid order status; it exists for clothing items detached by a re-box.
type Status int

const (
	// None is the zero state before a reservation exists.
	None Status = iota

	// Reservated means a visit slot has been booked for the renter.
	Reservated

	// Box means the renter has checked in and a box is being prepared.
	Box

	// Boxed means the box contents are fixed and the order lines are priced.
	Boxed

	// Payment means the order is awaiting payment; target dates are set.
	Payment

	// Rental means the clothes are out with the renter.
	Rental

	// Returned means the rental has been closed, possibly with late fees.
	Returned

	// Payback means the rental was refunded before normal completion.
	Payback

	// CancelBox marks clothing items released by a re-boxed order.
	// It is an item-only status and never valid on an order.
	CancelBox
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		None:       "None",
		Reservated: "Reservated",
		Box:        "Box",
		Boxed:      "Boxed",
		Payment:    "Payment",
		Rental:     "Rental",
		Returned:   "Returned",
		Payback:    "Payback",
		CancelBox:  "CancelBox",
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the value is one of the defined order statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == CancelBox {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

func (s Status) invalidTransition(op string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), op))
}

// Reservate transitions None -> Reservated.
func (s Status) Reservate() (Status, error) {
	if s != None {
		return 0, s.invalidTransition("reservate")
	}
	return Reservated, nil
}

// ValidateUpdateReservation checks that the reservation may be rescheduled.
// Rescheduling is allowed while Reservated and, for renters who postponed
// after packing, while Payment.
func (s Status) ValidateUpdateReservation() error {
	if s != Reservated && s != Payment {
		return s.invalidTransition("update reservation")
	}
	return nil
}

// ValidateCancel checks that the order may be cancelled (deleted).
// Only Reservated orders can be cancelled.
func (s Status) ValidateCancel() error {
	if s != Reservated {
		return s.invalidTransition("cancel")
	}
	return nil
}

// CheckIn transitions Reservated -> Box.
func (s Status) CheckIn() (Status, error) {
	if s != Reservated {
		return 0, s.invalidTransition("check in")
	}
	return Box, nil
}

// Pack transitions Box -> Boxed.
func (s Status) Pack() (Status, error) {
	if s != Box {
		return 0, s.invalidTransition("pack")
	}
	return Boxed, nil
}

// BeginPayment transitions Boxed -> Payment.
func (s Status) BeginPayment() (Status, error) {
	if s != Boxed {
		return 0, s.invalidTransition("begin payment")
	}
	return Payment, nil
}

// StartRental transitions Payment -> Rental.
func (s Status) StartRental() (Status, error) {
	if s != Payment {
		return 0, s.invalidTransition("start rental")
	}
	return Rental, nil
}

// Return transitions Rental -> Returned.
func (s Status) Return() (Status, error) {
	if s != Rental {
		return 0, s.invalidTransition("return")
	}
	return Returned, nil
}

// Payback transitions Rental -> Payback.
func (s Status) Payback() (Status, error) {
	if s != Rental {
		return 0, s.invalidTransition("payback")
	}
	return Payback, nil
}

// Rebox transitions Payment -> Box, sending the order back for re-packing.
func (s Status) Rebox() (Status, error) {
	if s != Payment {
		return 0, s.invalidTransition("rebox")
	}
	return Box, nil
}

// ValidateExtend checks that additional rental days may be applied.
// The extension is only legal while the order awaits payment.
func (s Status) ValidateExtend() error {
	if s != Payment {
		return s.invalidTransition("extend")
	}
	return nil
}
