package services

import "time"

// Default policy values. They are starting points for configuration, not
// constants the engines read directly.
const (
	DefaultExtensionRatePercent = 20
	DefaultOverdueRatePercent   = 30
	DefaultRentalDays           = 3
	DefaultTiePrice             = 2000
	DefaultCouponEventLimit     = -1
	DefaultFrequentRenterVisit  = 3
)

// Policy carries the business knobs of the rental core. It is built from
// configuration by the composition root and passed into the engines at
// construction; nothing in the core reads package-level mutable state.
type Policy struct {
	// ExtensionRatePercent is the per-day fee percentage for returns within
	// the renter's own extended window.
	ExtensionRatePercent int

	// OverdueRatePercent is the per-day fee percentage past the target date.
	OverdueRatePercent int

	// RentalDays is the default rental period set at payment time.
	RentalDays int

	// TiePrice is the forced tie price when the selection is not a suit set.
	TiePrice int

	// CouponEventLimit caps how many coupons of one campaign event may be
	// used in total; -1 means unlimited.
	CouponEventLimit int

	// FrequentRenterVisit is the visit number from which the automatic
	// frequent-renter discount applies.
	FrequentRenterVisit int

	// Location is the time zone order dates are recorded in.
	Location *time.Location
}

// DefaultPolicy returns the production defaults in Korean local time.
func DefaultPolicy() Policy {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}
	return Policy{
		ExtensionRatePercent: DefaultExtensionRatePercent,
		OverdueRatePercent:   DefaultOverdueRatePercent,
		RentalDays:           DefaultRentalDays,
		TiePrice:             DefaultTiePrice,
		CouponEventLimit:     DefaultCouponEventLimit,
		FrequentRenterVisit:  DefaultFrequentRenterVisit,
		Location:             loc,
	}
}
