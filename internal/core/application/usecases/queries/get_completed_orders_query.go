package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetCompletedOrdersQueryIsNotConstructed = errors.New(
	"GetCompletedOrdersQuery must be created via NewGetCompletedOrdersQuery constructor",
)

// GetCompletedOrdersQuery retrieves a driver's delivery history.
type GetCompletedOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompletedOrdersQuery creates a query for the given driver's delivered orders.
func NewGetCompletedOrdersQuery(driverID kernel.UUID) (GetCompletedOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetCompletedOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}

	return GetCompletedOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCompletedOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose history is requested.
func (q GetCompletedOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}
