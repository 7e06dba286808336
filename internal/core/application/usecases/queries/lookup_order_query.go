package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrLookupOrderQueryIsNotConstructed = errors.New(
	"LookupOrderQuery must be created via NewLookupOrderQuery constructor",
)

// LookupOrderQuery resolves an order by the confirmation number the customer
// was handed at checkout. This is the only customer-facing read; it requires
// no account.
type LookupOrderQuery struct {
	confirmationNumber kernel.ConfirmationNumber

	guard guard.ConstructorGuard
}

// NewLookupOrderQuery creates a lookup for the given confirmation number.
func NewLookupOrderQuery(confirmationNumber kernel.ConfirmationNumber) (LookupOrderQuery, error) {
	if err := confirmationNumber.Validate(); err != nil {
		return LookupOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderConfirmationNumber", err)
	}

	return LookupOrderQuery{
		confirmationNumber: confirmationNumber,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LookupOrderQuery) Validate() error {
	return q.guard.Validate(ErrLookupOrderQueryIsNotConstructed)
}

// ConfirmationNumber returns the code to look up.
func (q LookupOrderQuery) ConfirmationNumber() kernel.ConfirmationNumber {
	return q.confirmationNumber
}
