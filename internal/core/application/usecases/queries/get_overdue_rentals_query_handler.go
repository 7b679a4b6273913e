package queries

import (
	"context"

	"gorm.io/gorm"

	"rental/internal/core/domain/model/order"
)

// GetOverdueRentalsQueryHandler finds orders still in Rental status whose
// return deadline lies before the query instant. Orders flagged ignore are
// skipped so test rentals never get reminder messages.
type GetOverdueRentalsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueRentalsQueryHandler creates a handler for overdue rental queries.
func NewGetOverdueRentalsQueryHandler(db *gorm.DB) GetOverdueRentalsQueryHandler {
	return GetOverdueRentalsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by deadline, oldest first.
func (h GetOverdueRentalsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueRentalsQuery,
) ([]GetOverdueRentalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueRentalsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			u.name,
			u.phone,
			o.target_date
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.status = ?
		  AND o.ignore = FALSE
		  AND o.target_date < ?
		ORDER BY o.target_date
	`, order.Rental, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueRentalsQueryResponse
		if err = rows.Scan(&resp.OrderID, &resp.UserName, &resp.Phone, &resp.TargetDate); err != nil {
			return nil, err
		}
		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
