// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the photo sink, and the
// password hasher. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Orders are never deleted; they are retained as history. All lifecycle
// mutations go through Update, which is a conditional (compare-and-swap) write:
// there is no unconditional way to persist a status change. This is what makes
// concurrent driver claims safe; see Update.
type OrderRepository interface {
	// Add persists a new order aggregate. The confirmation number column is
	// unique; a duplicate surfaces as a ValueIsInvalid error wrapping the
	// database cause, letting the checkout service regenerate and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate's current state only if the stored row is
	// still in expectedStatus. When expectedStatus is ReadyForDelivery the
	// predicate additionally requires that no driver is bound, making the
	// claim write a single atomic check-and-set. If the predicate does not
	// hold, nothing is written and errs.ErrConcurrencyConflict is returned;
	// the caller re-reads to classify what happened.
	//
	// The expected status and the write must travel in one statement. A
	// separate read followed by an unconditional write would let two drivers
	// both observe ReadyForDelivery and both "win".
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByConfirmationNumber retrieves an order by its customer-facing code.
	GetByConfirmationNumber(ctx context.Context, code kernel.ConfirmationNumber) (*order.Order, error)
}
