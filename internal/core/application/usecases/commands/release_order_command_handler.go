package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ReleaseOrderCommandHandler moves an order from Received to ReadyForDelivery,
// publishing it to the driver pool.
type ReleaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReleaseOrderCommandHandler creates a handler for release operations.
func NewReleaseOrderCommandHandler(uowFactory OrderUoWFactory) ReleaseOrderCommandHandler {
	return ReleaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release. The write is conditional on the row still
// being in Received status, so a release racing with anything else loses
// cleanly instead of overwriting.
func (h ReleaseOrderCommandHandler) Handle(ctx context.Context, cmd ReleaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Release(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o, order.Received); err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			return h.classifyConflict(ctx, cmd)
		}
		return err
	}

	return uow.Commit(ctx)
}

// classifyConflict re-reads the order after a lost conditional write and
// reports the transition that is actually impossible now.
func (h ReleaseOrderCommandHandler) classifyConflict(ctx context.Context, cmd ReleaseOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	return order.NewInvalidTransitionError(current.Status(), order.ReadyForDelivery)
}
