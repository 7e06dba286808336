package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves a driver's active load: the orders they
// claimed and have not delivered yet.
type GetPendingOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the given driver's in-transit orders.
func NewGetPendingOrdersQuery(driverID kernel.UUID) (GetPendingOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetPendingOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}

	return GetPendingOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose load is requested.
func (q GetPendingOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}
