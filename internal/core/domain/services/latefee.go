package services

import (
	"time"

	"rental/internal/core/domain/model/coupon"
	"rental/internal/core/domain/model/order"
)

// LateFeeCalculator computes prices, discounts and late fees over an order's
// line items. It is pure: every method reads the aggregate and a reference
// time and returns integers; nothing is mutated.
//
// Money is integer won. Fee math uses integer percent rates so fractional
// results truncate toward zero, matching the store's integer division.
type LateFeeCalculator struct {
	policy Policy
}

// NewLateFeeCalculator creates a calculator with the given policy.
func NewLateFeeCalculator(policy Policy) LateFeeCalculator {
	return LateFeeCalculator{policy: policy}
}

// Price returns the full nominal price: the sum of stage-0 clothing-linked
// line prices before any discount.
func (c LateFeeCalculator) Price(o *order.Order) int {
	total := 0
	for _, li := range o.LineItems() {
		if li.Stage() == order.StageRental && li.IsClothes() {
			total += li.Price()
		}
	}
	return total
}

// DiscountPrice returns the total discount on the rental stage, always <= 0:
// the stage-0 non-clothing lines (coupon and staff adjustments) plus the
// frequent-renter sale delta recorded on the order.
func (c LateFeeCalculator) DiscountPrice(o *order.Order) int {
	total := o.SaleDiscount()
	for _, li := range o.LineItems() {
		if li.Stage() == order.StageRental && !li.IsClothes() {
			total += li.Price()
		}
	}
	return total
}

// RentalPrice returns what the renter actually pays for the rental stage.
func (c LateFeeCalculator) RentalPrice(o *order.Order) int {
	return c.Price(o) + c.DiscountPrice(o)
}

// ExtensionDays returns the whole days between the renter's own requested
// return date and the actual return, when the return is late against the
// renter's date but still at or before the original target. Zero otherwise.
// For a given return exactly one of ExtensionDays and OverdueDays is
// non-zero, or both are zero.
func (c LateFeeCalculator) ExtensionDays(o *order.Order, returnedAt time.Time) int {
	userTarget := o.UserTargetDate()
	target := o.TargetDate()
	if userTarget == nil || target == nil {
		return 0
	}
	if !returnedAt.After(*userTarget) || returnedAt.After(*target) {
		return 0
	}
	return ceilDays(returnedAt.Sub(*userTarget))
}

// OverdueDays returns the whole days the return runs past the original
// target date, zero when the return is on time.
func (c LateFeeCalculator) OverdueDays(o *order.Order, returnedAt time.Time) int {
	target := o.TargetDate()
	if target == nil || !returnedAt.After(*target) {
		return 0
	}
	return ceilDays(returnedAt.Sub(*target))
}

// EffectivePrice returns the fee basis: the nominal price adjusted by the
// discount total, except when the attached coupon is the single-item kind,
// whose discount does not soften late fees.
func (c LateFeeCalculator) EffectivePrice(o *order.Order, attached *coupon.Coupon) int {
	if attached != nil {
		if _, ok := attached.Benefit().(coupon.SuitBenefit); ok {
			return c.Price(o)
		}
	}
	return c.Price(o) + c.DiscountPrice(o)
}

// ExtensionFee returns the per-day extension fee, the billed total and the
// day count for a return at returnedAt.
func (c LateFeeCalculator) ExtensionFee(o *order.Order, attached *coupon.Coupon, returnedAt time.Time) (unit, total, days int) {
	days = c.ExtensionDays(o, returnedAt)
	if days == 0 {
		return 0, 0, 0
	}
	unit = c.EffectivePrice(o, attached) * c.policy.ExtensionRatePercent / 100
	return unit, unit * days, days
}

// OverdueFee returns the per-day overdue fee, the billed total and the day
// count for a return at returnedAt.
func (c LateFeeCalculator) OverdueFee(o *order.Order, attached *coupon.Coupon, returnedAt time.Time) (unit, total, days int) {
	days = c.OverdueDays(o, returnedAt)
	if days == 0 {
		return 0, 0, 0
	}
	unit = c.EffectivePrice(o, attached) * c.policy.OverdueRatePercent / 100
	return unit, unit * days, days
}

// ceilDays converts a positive duration to whole days, counting any part of
// a day as a full one.
func ceilDays(d time.Duration) int {
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}
