package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a driver closing out a delivery with
// photo proof. The photo travels as raw bytes plus the name the driver's
// device gave the file; storage assigns its own reference.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	driverID      kernel.UUID
	photoFilename string
	photoContent  []byte

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a completion command with the proof photo.
func NewCompleteDeliveryCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	photoFilename string,
	photoContent []byte,
) (CompleteDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := driverID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}
	if photoFilename == "" {
		return CompleteDeliveryCommand{}, errs.NewValueIsRequiredError("photoFilename")
	}
	if len(photoContent) == 0 {
		return CompleteDeliveryCommand{}, errs.NewValueIsRequiredError("photoContent")
	}

	return CompleteDeliveryCommand{
		orderID:       orderID,
		driverID:      driverID,
		photoFilename: photoFilename,
		photoContent:  photoContent,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the completing driver.
func (c CompleteDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

// PhotoFilename returns the original upload filename.
func (c CompleteDeliveryCommand) PhotoFilename() string {
	return c.photoFilename
}

// PhotoContent returns the photo bytes.
func (c CompleteDeliveryCommand) PhotoContent() []byte {
	return c.photoContent
}
