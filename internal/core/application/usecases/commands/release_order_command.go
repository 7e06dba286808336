package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrReleaseOrderCommandIsNotConstructed = errors.New(
	"ReleaseOrderCommand must be created via NewReleaseOrderCommand constructor",
)

// ReleaseOrderCommand represents a restaurant staff decision that an order is
// cooked, packed, and ready to be picked up. Releasing is the only way an
// order becomes visible to drivers.
type ReleaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseOrderCommand creates a release command for the given order.
func NewReleaseOrderCommand(orderID kernel.UUID) (ReleaseOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReleaseOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return ReleaseOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to release.
func (c ReleaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
