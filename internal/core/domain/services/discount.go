package services

import (
	"rental/internal/core/domain/model/clothes"
	"rental/internal/core/domain/model/coupon"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/user"
)

// SaleComputer is the external collaborator that applies the frequent-renter
// sale by mutating existing line prices in place. It returns the sums of
// final prices before and after the adjustment; a difference means a sale was
// applied and must be recorded on the order.
type SaleComputer interface {
	Apply(lines []*order.LineItem, visitCount int) (before, after int)
}

// DiscountEngine builds the priced line items at packing time and applies
// the discount rules. Coupon and frequent-renter discounts are mutually
// exclusive: a coupon always wins. The coupon appends a negative line while
// the frequent-renter sale lowers existing line prices in place, and
// downstream fee computation depends on that difference.
type DiscountEngine struct {
	policy Policy
}

// NewDiscountEngine creates an engine with the given policy.
func NewDiscountEngine(policy Policy) DiscountEngine {
	return DiscountEngine{policy: policy}
}

// BuildRentalLines prices the selected items into stage-0 lines.
//
// Two fitting rules run here:
//   - a tie only keeps its catalog price inside a suit set (jacket and pants
//     both selected); otherwise its price is forced to the policy fallback;
//   - for shoes whose length differs from the renter's stored foot size
//     (both non-zero), the profile foot size is overwritten with the fitted
//     length.
func (e DiscountEngine) BuildRentalLines(items []*clothes.Clothes, renter *user.UserInfo) ([]*order.LineItem, error) {
	var hasJacket, hasPants bool
	for _, item := range items {
		switch item.Category() {
		case clothes.Jacket:
			hasJacket = true
		case clothes.Pants:
			hasPants = true
		}
	}
	suitSet := hasJacket && hasPants

	lines := make([]*order.LineItem, 0, len(items))
	for _, item := range items {
		price := item.Price()
		if item.Category() == clothes.Tie && !suitSet {
			price = e.policy.TiePrice
		}
		li, err := order.NewClothesLineItem(item.ID(), item.Code(), price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, li)

		if item.Category() == clothes.Shoes && renter != nil {
			if item.Length() != 0 && renter.Foot() != 0 && renter.Foot() != item.Length() {
				renter.SetFoot(item.Length())
			}
		}
	}
	return lines, nil
}

// Apply runs the discount decision over freshly priced lines and returns the
// final line list plus the recorded sale delta (<= 0).
//
// Branches, mutually exclusive:
//  1. attached coupon: append one discount line from the coupon's benefit;
//  2. no coupon but the renter is on their 3rd+ visit: let the sale
//     collaborator lower existing lines, record the delta.
//
// Regardless of branch, the two zero-value adjustment slots ("배송비",
// "에누리") are appended last so staff can fill them in.
func (e DiscountEngine) Apply(
	lines []*order.LineItem,
	attached *coupon.Coupon,
	visitCount int,
	sale SaleComputer,
) ([]*order.LineItem, int, error) {
	saleDelta := 0

	switch {
	case attached != nil:
		total := 0
		for _, li := range lines {
			total += li.Price()
		}
		benefit := attached.Benefit()
		discount, err := order.NewDiscountLineItem(benefit.Label(), benefit.Discount(total), benefit.PayWithTag())
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, discount)

	case visitCount >= e.policy.FrequentRenterVisit && sale != nil:
		before, after := sale.Apply(lines, visitCount)
		if after != before {
			saleDelta = after - before
		}
	}

	shipping, err := order.NewAdjustmentLineItem(order.LineNameShipping)
	if err != nil {
		return nil, 0, err
	}
	adjustment, err := order.NewAdjustmentLineItem(order.LineNameAdjustment)
	if err != nil {
		return nil, 0, err
	}
	lines = append(lines, shipping, adjustment)

	return lines, saleDelta, nil
}
