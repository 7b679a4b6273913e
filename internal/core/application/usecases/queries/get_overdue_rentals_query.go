// Package queries contains the read operations of the rental lifecycle.
// Query handlers read straight from the database and return plain response
// structs; they never touch the aggregates.
package queries

import (
	"errors"
	"time"

	"rental/internal/pkg/guard"
)

var (
	ErrGetOverdueRentalsQueryIsNotConstructed = errors.New(
		"GetOverdueRentalsQuery must be created via NewGetOverdueRentalsQuery constructor",
	)
	ErrAsOfIsRequired = errors.New("as-of datetime is required")
)

// GetOverdueRentalsQuery retrieves the rentals still out past their return
// deadline at a given instant. The overdue reminder job runs it daily.
type GetOverdueRentalsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueRentalsQuery creates a query for rentals overdue at asOf.
func NewGetOverdueRentalsQuery(asOf time.Time) (GetOverdueRentalsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueRentalsQuery{}, ErrAsOfIsRequired
	}

	return GetOverdueRentalsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueRentalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueRentalsQueryIsNotConstructed)
}

// AsOf returns the reference instant.
func (q GetOverdueRentalsQuery) AsOf() time.Time { return q.asOf }

// GetOverdueRentalsQueryResponse carries one overdue rental with the renter
// contact needed for the reminder message.
type GetOverdueRentalsQueryResponse struct {
	OrderID    int64
	UserName   string
	Phone      string
	TargetDate time.Time
}
