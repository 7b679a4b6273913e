// Package sale implements the frequent-renter sale rule plugged into the
// discount engine.
package sale

import (
	"rental/internal/core/domain/model/order"
)

// FreeHighestItemSale makes the single most expensive clothing line free.
// The engine only calls it once the renter's visit count clears the
// threshold, so the computer itself stays unconditional.
type FreeHighestItemSale struct{}

// NewFreeHighestItemSale creates the sale computer.
func NewFreeHighestItemSale() FreeHighestItemSale {
	return FreeHighestItemSale{}
}

// Apply lowers the top-priced stage-0 clothing line's final price to zero
// and returns the line totals before and after.
func (FreeHighestItemSale) Apply(lines []*order.LineItem, _ int) (before, after int) {
	for _, li := range lines {
		before += li.FinalPrice()
	}

	var top *order.LineItem
	for _, li := range lines {
		if li.Stage() != order.StageRental || !li.IsClothes() {
			continue
		}
		if top == nil || li.Price() > top.Price() {
			top = li
		}
	}
	if top != nil {
		top.ReduceFinalPrice(0)
	}

	for _, li := range lines {
		after += li.FinalPrice()
	}
	return before, after
}
