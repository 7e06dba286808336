package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)

	// ErrCartIsEmpty rejects a checkout with no line items.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// CartItem is one line of the cart snapshot handed to checkout: the menu
// item's name, the chosen quantity, and the unit price at the moment of
// purchase. The snapshot is an explicit value owned by the request; checkout
// never reaches into shared session state.
type CartItem struct {
	Name     string
	Quantity int
	Price    float64
}

// CheckoutCommand represents a request to convert a cart snapshot into an
// immutable order.
//
// Example:
//
//	cmd, err := NewCheckoutCommand("Alice Wong", "123 Main St", cartItems)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order confirmed: %s", placed.ConfirmationNumber())
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerName    string
	deliveryAddress string
	items           []CartItem

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command from the request data and the
// cart snapshot. Customer name and delivery address are required; an empty
// cart is rejected here, before any handler work happens.
func NewCheckoutCommand(customerName, deliveryAddress string, items []CartItem) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerName returns the name entered at checkout.
func (c CheckoutCommand) CustomerName() string {
	return c.customerName
}

// DeliveryAddress returns the destination address.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns a copy of the cart snapshot.
func (c CheckoutCommand) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CheckoutCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = customerName
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CheckoutCommand) setItems(items []CartItem) error {
	if len(items) == 0 {
		return ErrCartIsEmpty
	}
	c.items = make([]CartItem, len(items))
	copy(c.items, items)
	return nil
}
