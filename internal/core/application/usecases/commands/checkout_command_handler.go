package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// maxConfirmationAttempts bounds the generate-verify-retry loop for
// confirmation numbers. With a 36^9 code space, more than one retry is
// already extraordinary.
const maxConfirmationAttempts = 5

// ErrConfirmationNumbersExhausted is returned when every generation attempt
// collided with an existing order.
var ErrConfirmationNumbersExhausted = errors.New(
	"could not generate a unique confirmation number",
)

// CheckoutCommandHandler converts a cart snapshot into a persisted order in
// Received status. The confirmation number is generated here and verified
// against the store before use, regenerating on collision; a unique index on
// the column backstops the check.
type CheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory OrderUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout. On success the new order (with its
// confirmation number and the total computed from the snapshot) is returned;
// the caller is responsible for discarding its cart.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, cartItem := range cmd.Items() {
		item, err := order.NewItem(cartItem.Name, cartItem.Quantity, cartItem.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	confirmationNumber, err := h.uniqueConfirmationNumber(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		confirmationNumber,
		cmd.CustomerName(),
		cmd.DeliveryAddress(),
		items,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// uniqueConfirmationNumber generates a code and verifies no existing order
// carries it, retrying a bounded number of times.
func (h CheckoutCommandHandler) uniqueConfirmationNumber(
	ctx context.Context,
	orderRepo ports.OrderRepository,
) (kernel.ConfirmationNumber, error) {
	for attempt := 0; attempt < maxConfirmationAttempts; attempt++ {
		code := kernel.GenerateConfirmationNumber()

		_, err := orderRepo.GetByConfirmationNumber(ctx, code)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return code, nil
		}
		if err != nil {
			return kernel.ConfirmationNumber{}, err
		}
		// Collision: an order already holds this code, draw again.
	}

	return kernel.ConfirmationNumber{}, ErrConfirmationNumbersExhausted
}
