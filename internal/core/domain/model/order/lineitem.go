package order

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Stage classifies an order line item by billing phase.
type Stage int

const (
	// StageRental covers rental items, shipping and packing-time discounts.
	StageRental Stage = 0

	// StageLateFee covers extension and overdue fees plus their waivers.
	StageLateFee Stage = 1

	// StageCompensation covers damage compensation charges and discounts.
	StageCompensation Stage = 2

	// StageRefund covers payback refund lines.
	StageRefund Stage = 3
)

// Names of the staff-editable adjustment lines appended at packing time.
const (
	LineNameShipping   = "배송비"
	LineNameAdjustment = "에누리"
)

// LineItem is a priced entry on an order. Discount lines carry negative
// amounts. Lines linked to a clothing item mirror the order status; fee and
// refund lines keep the status the order had when they were appended.
//
// A line is never mutated after creation except for the final price recompute
// on an additional-day extension and the explicit price override API.
type LineItem struct {
	id         int64
	clothesID  *int64
	name       string
	price      int
	finalPrice int
	stage      Stage
	status     Status
	payWith    string
	desc       string
}

// NewClothesLineItem builds a stage-0 line for a single clothing item.
// The item is priced at the catalog (or rule-adjusted) price and starts in
// Payment status, mirroring the clothing item it references.
func NewClothesLineItem(clothesID int64, name string, price int) (*LineItem, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("line item name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("line item price",
			fmt.Errorf("%d is negative for a clothing line", price))
	}
	id := clothesID
	return &LineItem{
		clothesID:  &id,
		name:       name,
		price:      price,
		finalPrice: price,
		stage:      StageRental,
		status:     Payment,
	}, nil
}

// NewDiscountLineItem builds a stage-0 discount line (coupon or packing-time
// discount). The amount must not be positive.
func NewDiscountLineItem(name string, amount int, payWith string) (*LineItem, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("line item name")
	}
	if amount > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("discount amount",
			fmt.Errorf("%d is positive", amount))
	}
	return &LineItem{
		name:       name,
		price:      amount,
		finalPrice: amount,
		stage:      StageRental,
		status:     Payment,
		payWith:    payWith,
	}, nil
}

// NewAdjustmentLineItem builds a zero-value stage-0 slot line ("배송비",
// "에누리") reserved for staff-entered amounts.
func NewAdjustmentLineItem(name string) (*LineItem, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("line item name")
	}
	return &LineItem{
		name:   name,
		stage:  StageRental,
		status: Payment,
	}, nil
}

// NewFeeLineItem builds a stage-1 or stage-2 charge line. The per-day unit
// amount is stored as price for auditability and the billed total as final
// price.
func NewFeeLineItem(stage Stage, name string, unit, total int, payWith string) (*LineItem, error) {
	if stage != StageLateFee && stage != StageCompensation {
		return nil, errs.NewValueIsInvalidErrorWithCause("line item stage",
			fmt.Errorf("%d is not a fee stage", stage))
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("line item name")
	}
	return &LineItem{
		name:       name,
		price:      unit,
		finalPrice: total,
		stage:      stage,
		status:     Returned,
		payWith:    payWith,
	}, nil
}

// NewWaiverLineItem builds a negative stage-1 or stage-2 discount line.
// The sign of amount is forced negative regardless of the caller's input.
func NewWaiverLineItem(stage Stage, name string, amount int, payWith string) (*LineItem, error) {
	if stage != StageLateFee && stage != StageCompensation {
		return nil, errs.NewValueIsInvalidErrorWithCause("line item stage",
			fmt.Errorf("%d is not a fee stage", stage))
	}
	if amount > 0 {
		amount = -amount
	}
	return &LineItem{
		name:       name,
		price:      amount,
		finalPrice: amount,
		stage:      stage,
		status:     Returned,
		payWith:    payWith,
	}, nil
}

// NewRefundLineItem builds the single stage-3 line of a payback.
func NewRefundLineItem(name string, amount int, payWith string) (*LineItem, error) {
	if amount > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("refund amount",
			fmt.Errorf("%d is positive", amount))
	}
	return &LineItem{
		name:       name,
		price:      amount,
		finalPrice: amount,
		stage:      StageRefund,
		status:     Payback,
		payWith:    payWith,
	}, nil
}

// RestoreLineItem reconstructs a line item from persistence.
func RestoreLineItem(
	id int64, clothesID *int64, name string,
	price, finalPrice int, stage Stage, status Status, payWith, desc string,
) *LineItem {
	return &LineItem{
		id:         id,
		clothesID:  clothesID,
		name:       name,
		price:      price,
		finalPrice: finalPrice,
		stage:      stage,
		status:     status,
		payWith:    payWith,
		desc:       desc,
	}
}

// ID returns the line's persistence identifier (zero before first save).
func (li *LineItem) ID() int64 { return li.id }

// ClothesID returns the referenced clothing item ID, or nil for
// shipping/discount/fee lines.
func (li *LineItem) ClothesID() *int64 { return li.clothesID }

// Name returns the display name of the line.
func (li *LineItem) Name() string { return li.name }

// Price returns the nominal (per-unit for fee lines) amount.
func (li *LineItem) Price() int { return li.price }

// FinalPrice returns the billed amount.
func (li *LineItem) FinalPrice() int { return li.finalPrice }

// Stage returns the billing phase of the line.
func (li *LineItem) Stage() Stage { return li.stage }

// Status returns the line status.
func (li *LineItem) Status() Status { return li.status }

// PayWith returns the payment-method tag attached to this line, if any.
func (li *LineItem) PayWith() string { return li.payWith }

// Desc returns the free-text description.
func (li *LineItem) Desc() string { return li.desc }

// IsClothes reports whether the line references a clothing item.
func (li *LineItem) IsClothes() bool { return li.clothesID != nil }

// OverridePrice is the line-item pricing API: staff may adjust the amounts of
// a line (e.g. fill in the shipping or adjustment slots) before payment.
func (li *LineItem) OverridePrice(price, finalPrice int, desc string) {
	li.price = price
	li.finalPrice = finalPrice
	if desc != "" {
		li.desc = desc
	}
}

// ReduceFinalPrice applies an in-place sale reduction, used by the
// frequent-renter discount which lowers existing lines instead of adding one.
func (li *LineItem) ReduceFinalPrice(to int) {
	li.finalPrice = to
}

func (li *LineItem) markStatus(s Status) {
	li.status = s
}

// SetID is called by persistence after the first insert.
func (li *LineItem) SetID(id int64) { li.id = id }
