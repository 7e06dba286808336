package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ClaimOrderCommandHandler arbitrates driver claims. When several drivers race
// for the same order, exactly one wins: the aggregate enforces the transition
// rules in memory and the repository enforces them again at write time with a
// conditional update, so a stale in-memory view can never overwrite a
// concurrent winner.
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory UoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim and returns the order as the winning driver now
// sees it. A repeat claim by the driver who already holds the order succeeds
// without writing anything.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	statusBefore := o.Status()

	if err = o.Claim(d.ID(), d.Vehicle().LicensePlate()); err != nil {
		return nil, err
	}

	// The aggregate accepted a repeat claim without changing anything, so
	// there is nothing to persist.
	if statusBefore == order.InTransit {
		return o, nil
	}

	if err = orderRepo.Update(ctx, o, order.ReadyForDelivery); err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			return h.classifyConflict(ctx, cmd)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// classifyConflict resolves a lost conditional write into the outcome the
// caller should see. The in-memory view that lost the race is discarded and
// the row is re-read:
//
//   - the claiming driver already holds the order (a concurrent request of
//     their own won): success
//   - a different driver holds it: ErrAlreadyClaimed
//   - the order moved somewhere else entirely: invalid transition
func (h ClaimOrderCommandHandler) classifyConflict(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if current.Status() == order.InTransit && current.SelectedByDriver() != nil {
		if current.SelectedByDriver().IsEqual(cmd.DriverID()) {
			return current, nil
		}
		return nil, order.ErrAlreadyClaimed
	}

	return nil, order.NewInvalidTransitionError(current.Status(), order.InTransit)
}
