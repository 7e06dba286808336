package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
// Callers classify lifecycle violations with errors.Is against this value.
var ErrInvalidTransition = errors.New("invalid order status transition")

// InvalidTransitionError indicates a requested state change that violates the
// order lifecycle ordering.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected move.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order. It implements a state
// machine with a single legal path to ensure the externally observable status
// sequence never skips, repeats, or reverts:
//
//	Received ──> ReadyForDelivery ──> InTransit ──> Delivered
//
// The machine is pure: each transition method returns the next status or an
// InvalidTransitionError; it holds no state of its own.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status set at checkout. The kitchen is working
	// on the order; it is not yet visible to drivers.
	Received

	// ReadyForDelivery means staff released the order and any driver may claim it.
	ReadyForDelivery

	// InTransit means exactly one driver has claimed the order and is delivering it.
	InTransit

	// Delivered is the terminal status, set when the claiming driver attaches
	// delivery evidence. No further transitions are allowed.
	Delivered
)

// getStatusStrings returns the persisted/displayed representation of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Received:         "RECEIVED",
		ReadyForDelivery: "READY FOR DELIVERY",
		InTransit:        "IN TRANSIT",
		Delivered:        "DELIVERED",
	}
}

// getValidStatusStrings returns only the statuses an order may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:         "RECEIVED",
		ReadyForDelivery: "READY FOR DELIVERY",
		InTransit:        "IN TRANSIT",
		Delivered:        "DELIVERED",
	}
}

// StatusFromString parses the persisted string representation of a status.
// Returns an error for anything outside the closed enumeration; free-form
// status strings are never accepted.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the four legal lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted/displayed name of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Release transitions the status to ReadyForDelivery.
//
// The only valid prior status is Received: releasing an order twice, or
// releasing one that is already out for delivery, is rejected.
func (s Status) Release() (Status, error) {
	if s != Received {
		return Unknown, NewInvalidTransitionError(s, ReadyForDelivery)
	}
	return ReadyForDelivery, nil
}

// Claim transitions the status to InTransit.
//
// The only valid prior status is ReadyForDelivery: an order still in the
// kitchen cannot be claimed, and a claimed or delivered order cannot be
// claimed again through the state machine. Idempotent re-claims by the holding
// driver are resolved above the machine, on the aggregate.
func (s Status) Claim() (Status, error) {
	if s != ReadyForDelivery {
		return Unknown, NewInvalidTransitionError(s, InTransit)
	}
	return InTransit, nil
}

// Complete transitions the status to Delivered, the terminal state.
//
// The only valid prior status is InTransit.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return Unknown, NewInvalidTransitionError(s, Delivered)
	}
	return Delivered, nil
}

// ValidateCanHaveDriver enforces the invariant that a driver is bound if and
// only if the order is in transit or delivered. Used when restoring aggregates
// from persistence.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != InTransit && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !hasDriver && (s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// ValidateCanHaveDeliveryEvidence enforces the invariant that the delivery
// photo and timestamp are present if and only if the order is delivered.
func (s Status) ValidateCanHaveDeliveryEvidence(hasEvidence bool) error {
	if hasEvidence && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have delivery evidence", s.String()),
		)
	}

	if !hasEvidence && s == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no delivery evidence", s.String()),
		)
	}

	return nil
}
