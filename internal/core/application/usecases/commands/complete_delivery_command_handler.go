package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler closes out a delivery: it verifies the caller
// is the driver bound to the order, stores the proof photo, and moves the
// order to Delivered.
//
// The aggregate rules are checked before the photo is written so a rejected
// completion leaves nothing behind in storage. A photo that was stored just
// before a lost write does become an orphan file; the order itself stays
// consistent because the status write is conditional.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	photoStore ports.PhotoStore
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	photoStore ports.PhotoStore,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		photoStore: photoStore,
	}
}

// Handle processes the completion and returns the delivered order.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Dry-run the transition on a restored copy before touching photo
	// storage. The real mutation happens below, with the stored reference.
	if err = h.rehearse(o, cmd); err != nil {
		return nil, err
	}

	photoRef, err := h.photoStore.Store(ctx, cmd.PhotoFilename(), cmd.PhotoContent())
	if err != nil {
		return nil, err
	}

	if err = o.Complete(cmd.DriverID(), photoRef, time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o, order.InTransit); err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			return nil, h.classifyConflict(ctx, cmd)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// rehearse applies the completion to a throwaway copy of the aggregate so
// validation failures surface before any side effects.
func (h CompleteDeliveryCommandHandler) rehearse(o *order.Order, cmd CompleteDeliveryCommand) error {
	copyOf, err := order.RestoreOrder(
		o.ID(),
		o.ConfirmationNumber(),
		o.CustomerName(),
		o.DeliveryAddress(),
		o.Items(),
		o.TotalAmount(),
		o.CreatedAt(),
		o.Status(),
		o.SelectedByDriver(),
		o.DriverLicensePlate(),
		o.DeliveryPhoto(),
		o.DeliveredAt(),
	)
	if err != nil {
		return err
	}

	return copyOf.Complete(cmd.DriverID(), "pending", time.Now())
}

// classifyConflict re-reads after a lost conditional write. A completion only
// races with another completion of the same order, so the answer is always an
// invalid transition from whatever state the row reached.
func (h CompleteDeliveryCommandHandler) classifyConflict(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	return order.NewInvalidTransitionError(current.Status(), order.Delivered)
}
