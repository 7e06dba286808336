package queries

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the staff board: every order not yet
// delivered, optionally narrowed to one customer's name.
type GetActiveOrdersQuery struct {
	customerName string

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for undelivered orders. An empty
// customerName means no filter; matching is case-insensitive.
func NewGetActiveOrdersQuery(customerName string) GetActiveOrdersQuery {
	return GetActiveOrdersQuery{
		customerName: strings.TrimSpace(customerName),
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// CustomerName returns the optional customer filter, empty when unset.
func (q GetActiveOrdersQuery) CustomerName() string {
	return q.customerName
}
