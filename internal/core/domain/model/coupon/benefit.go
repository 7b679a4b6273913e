package coupon

import "fmt"

// Benefit is the closed set of coupon kinds. Each case carries its own
// numeric parameter and knows how to turn an order total into a (negative)
// discount amount, the display label of the discount line, and the payment
// tag written on it. The interface is sealed; the three implementations in
// this package are the only coupon kinds that exist.
type Benefit interface {
	// Discount returns the discount amount (<= 0) for the given sum of
	// stage-0 line prices before any discount.
	Discount(total int) int

	// Label returns the display name of the discount line.
	Label() string

	// PayWithTag returns the payment-method tag written on the discount line.
	PayWithTag() string

	sealed()
}

// FixedBenefit discounts a fixed amount of won regardless of order total.
type FixedBenefit struct {
	Amount int
}

// Discount returns -Amount.
func (b FixedBenefit) Discount(int) int { return -b.Amount }

// Label returns e.g. "3000원 할인쿠폰".
func (b FixedBenefit) Label() string { return fmt.Sprintf("%d원 할인쿠폰", b.Amount) }

// PayWithTag returns "쿠폰+": a fixed coupon can cover part of the price.
func (b FixedBenefit) PayWithTag() string { return "쿠폰+" }

func (FixedBenefit) sealed() {}

// RateBenefit discounts a percentage of the pre-discount total.
// The division truncates toward zero.
type RateBenefit struct {
	Percent int
}

// Discount returns -(total*Percent/100) with integer truncation.
func (b RateBenefit) Discount(total int) int { return -(total * b.Percent / 100) }

// Label returns e.g. "30% 할인쿠폰".
func (b RateBenefit) Label() string { return fmt.Sprintf("%d%% 할인쿠폰", b.Percent) }

// PayWithTag returns "쿠폰+".
func (b RateBenefit) PayWithTag() string { return "쿠폰+" }

func (RateBenefit) sealed() {}

// SuitBenefit makes the whole rental free (single-item coupon).
type SuitBenefit struct{}

// Discount returns -total: the rental costs nothing.
func (SuitBenefit) Discount(total int) int { return -total }

// Label returns "단벌 할인쿠폰".
func (SuitBenefit) Label() string { return "단벌 할인쿠폰" }

// PayWithTag returns "쿠폰" without the trailing plus: nothing is left to pay.
func (SuitBenefit) PayWithTag() string { return "쿠폰" }

func (SuitBenefit) sealed() {}
