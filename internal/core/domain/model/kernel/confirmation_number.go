package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"marketplace/internal/pkg/errs"
)

const (
	// ConfirmationNumberLength is the fixed length of customer-facing order codes.
	ConfirmationNumberLength = 9

	// confirmationAlphabet is the 36-symbol alphabet codes are drawn from.
	confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrConfirmationNumberIsNotConstructed indicates a zero-value ConfirmationNumber.
var ErrConfirmationNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"ConfirmationNumber must be created via GenerateConfirmationNumber or ConfirmationNumberFromString",
)

// ConfirmationNumber is the human-facing order lookup code: a fixed-length
// uppercase alphanumeric string, independent of the internal order identifier.
// It is a lookup convenience, not a security token; uniqueness across orders is
// enforced at checkout time, not by the generator itself.
//
// The zero value is invalid; use GenerateConfirmationNumber or
// ConfirmationNumberFromString.
type ConfirmationNumber struct {
	code string
}

// GenerateConfirmationNumber produces a new code drawn uniformly from the
// 36-symbol alphanumeric alphabet. Collisions are possible and must be handled
// by the caller (verify against the store and regenerate).
func GenerateConfirmationNumber() ConfirmationNumber {
	var b strings.Builder
	b.Grow(ConfirmationNumberLength)
	for i := 0; i < ConfirmationNumberLength; i++ {
		b.WriteByte(confirmationAlphabet[rand.IntN(len(confirmationAlphabet))])
	}
	return ConfirmationNumber{code: b.String()}
}

// ConfirmationNumberFromString parses and validates a code supplied by a
// customer or restored from persistence. Lowercase input is accepted and
// normalized to uppercase.
func ConfirmationNumberFromString(s string) (ConfirmationNumber, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ConfirmationNumber{}, errs.NewValueIsRequiredError("confirmationNumber")
	}
	if len(s) != ConfirmationNumberLength {
		return ConfirmationNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"confirmationNumber",
			fmt.Errorf("%q is not %d characters long", s, ConfirmationNumberLength),
		)
	}
	for _, r := range s {
		if !strings.ContainsRune(confirmationAlphabet, r) {
			return ConfirmationNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"confirmationNumber",
				fmt.Errorf("%q contains character %q outside the A-Z0-9 alphabet", s, r),
			)
		}
	}
	return ConfirmationNumber{code: s}, nil
}

// String returns the code as shown to customers.
func (c ConfirmationNumber) String() string {
	return c.code
}

// IsEqual compares two confirmation numbers.
func (c ConfirmationNumber) IsEqual(other ConfirmationNumber) bool {
	return c.code == other.code
}

// Validate returns ErrConfirmationNumberIsNotConstructed for the zero value.
func (c ConfirmationNumber) Validate() error {
	if c.code == "" {
		return ErrConfirmationNumberIsNotConstructed
	}
	return nil
}
