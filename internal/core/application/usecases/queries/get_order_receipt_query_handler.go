package queries

import (
	"context"

	"gorm.io/gorm"

	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"
)

// GetOrderReceiptQueryHandler reads an order's line items and sums them per
// billing stage. The frequent-renter sale is already baked into the final
// prices, so the totals need no extra adjustment.
type GetOrderReceiptQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderReceiptQueryHandler creates a handler for receipt queries.
func NewGetOrderReceiptQueryHandler(db *gorm.DB) GetOrderReceiptQueryHandler {
	return GetOrderReceiptQueryHandler{db: db}
}

// Handle executes the receipt query. Lines come back in insertion order so
// the receipt reads the way the lifecycle wrote it.
func (h GetOrderReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetOrderReceiptQuery,
) (GetOrderReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}

	resp := GetOrderReceiptQueryResponse{
		OrderID: query.OrderID(),
		Lines:   make([]ReceiptLine, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			price,
			final_price,
			stage,
			pay_with
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line ReceiptLine
		if err = rows.Scan(&line.Name, &line.Price, &line.FinalPrice, &line.Stage, &line.PayWith); err != nil {
			return GetOrderReceiptQueryResponse{}, err
		}
		resp.Lines = append(resp.Lines, line)

		switch order.Stage(line.Stage) {
		case order.StageRental:
			resp.RentalTotal += line.FinalPrice
		case order.StageLateFee:
			resp.LateFeeTotal += line.FinalPrice
		case order.StageCompensation:
			resp.CompensationTotal += line.FinalPrice
		case order.StageRefund:
			resp.RefundTotal += line.FinalPrice
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}

	if len(resp.Lines) == 0 {
		return GetOrderReceiptQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return resp, nil
}
