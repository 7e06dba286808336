package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Item is an immutable snapshot of one ordered line: the menu item's name,
// quantity, and unit price as they were at checkout time. Later menu edits
// never affect a persisted item.
type Item struct {
	name     string
	quantity int
	price    float64
}

// NewItem creates a line item snapshot with validation.
// Name must be non-empty, quantity positive, and unit price non-negative.
func NewItem(name string, quantity int, price float64) (Item, error) {
	item := Item{
		name:     name,
		quantity: quantity,
		price:    price,
	}
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Name returns the menu item name captured at checkout.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured at checkout.
func (i Item) Price() float64 {
	return i.price
}

// LineTotal returns quantity times unit price.
func (i Item) LineTotal() float64 {
	return float64(i.quantity) * i.price
}

// Validate checks the item snapshot invariants.
func (i Item) Validate() error {
	if i.name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", i.quantity))
	}
	if i.price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%.2f is negative", i.price))
	}
	return nil
}
