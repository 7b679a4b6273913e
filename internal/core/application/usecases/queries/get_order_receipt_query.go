package queries

import (
	"errors"

	"rental/internal/pkg/guard"
)

var (
	ErrGetOrderReceiptQueryIsNotConstructed = errors.New(
		"GetOrderReceiptQuery must be created via NewGetOrderReceiptQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id must be greater than 0")
)

// GetOrderReceiptQuery retrieves the billing breakdown of one order: every
// line item grouped by stage plus the per-stage totals staff read back to
// the renter at the counter.
type GetOrderReceiptQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderReceiptQuery creates a receipt query for the order.
func NewGetOrderReceiptQuery(orderID int64) (GetOrderReceiptQuery, error) {
	if orderID <= 0 {
		return GetOrderReceiptQuery{}, ErrOrderIDIsRequired
	}

	return GetOrderReceiptQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderReceiptQueryIsNotConstructed)
}

// OrderID returns the order whose receipt is requested.
func (q GetOrderReceiptQuery) OrderID() int64 { return q.orderID }

// ReceiptLine is one row of the receipt.
type ReceiptLine struct {
	Name       string
	Price      int
	FinalPrice int
	Stage      int
	PayWith    string
}

// GetOrderReceiptQueryResponse is the rendered receipt: the raw lines plus
// the per-stage totals over final prices.
type GetOrderReceiptQueryResponse struct {
	OrderID           int64
	Lines             []ReceiptLine
	RentalTotal       int
	LateFeeTotal      int
	CompensationTotal int
	RefundTotal       int
}
