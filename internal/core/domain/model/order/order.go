package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNoItems is returned when an order is created from an empty cart snapshot.
	ErrNoItems = errors.New("order must contain at least one item")

	// ErrAlreadyClaimed is returned when a driver attempts to claim an order that
	// another driver already holds. Callers should re-fetch the list of available
	// orders rather than retry blindly.
	ErrAlreadyClaimed = errors.New("order is already claimed by another driver")

	// ErrDriverMismatch is returned when a driver acts on an order bound to a
	// different driver.
	ErrDriverMismatch = errors.New("order is assigned to a different driver")
)

// Order is the aggregate root for a customer food order. It owns the lifecycle
// state machine and the driver binding, and is the only write path for both.
//
// Invariants:
//   - status only advances Received -> ReadyForDelivery -> InTransit -> Delivered
//   - the line item snapshots and totalAmount are fixed at creation
//   - selectedByDriver is set exactly once, at claim, and never reassigned
//   - delivery evidence (photo, timestamp) is set exactly once, at completion
//
// All fields are private; mutation happens only through Release, Claim, and
// Complete, each of which delegates the status move to the Status machine.
type Order struct {
	id                 kernel.UUID
	confirmationNumber kernel.ConfirmationNumber
	customerName       string
	deliveryAddress    string
	items              []Item
	totalAmount        float64
	createdAt          time.Time
	status             Status
	selectedByDriver   *kernel.UUID
	driverLicensePlate string
	deliveryPhoto      string
	deliveredAt        *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order from a checkout snapshot. The order starts in
// Received status with no driver bound. The total amount is computed here, once,
// as the sum of line totals, and is never recomputed afterwards.
//
// Validation failures are aggregated: an invalid ID, a missing customer name or
// address, an empty cart, or an invalid line item each contribute an error.
func NewOrder(
	id kernel.UUID,
	confirmationNumber kernel.ConfirmationNumber,
	customerName string,
	deliveryAddress string,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Received,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setConfirmationNumber(confirmationNumber),
		o.setCustomerName(customerName),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.totalAmount += item.LineTotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence. The recorded
// total amount is trusted as-is (it was computed once, at checkout). The stored
// status must be consistent with the driver binding and delivery evidence.
func RestoreOrder(
	id kernel.UUID,
	confirmationNumber kernel.ConfirmationNumber,
	customerName string,
	deliveryAddress string,
	items []Item,
	totalAmount float64,
	createdAt time.Time,
	status Status,
	selectedByDriver *kernel.UUID,
	driverLicensePlate string,
	deliveryPhoto string,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setConfirmationNumber(confirmationNumber),
		o.setCustomerName(customerName),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setCreatedAt(createdAt),
		status.Validate(),
		status.ValidateCanHaveDriver(selectedByDriver != nil),
		status.ValidateCanHaveDeliveryEvidence(deliveryPhoto != "" && deliveredAt != nil),
	); err != nil {
		return nil, err
	}

	if selectedByDriver != nil {
		if err := selectedByDriver.Validate(); err != nil {
			return nil, err
		}
		driverID := *selectedByDriver
		o.selectedByDriver = &driverID
	}

	o.totalAmount = totalAmount
	o.status = status
	o.driverLicensePlate = driverLicensePlate
	o.deliveryPhoto = deliveryPhoto
	if deliveredAt != nil {
		at := *deliveredAt
		o.deliveredAt = &at
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ConfirmationNumber returns the customer-facing lookup code.
func (o *Order) ConfirmationNumber() kernel.ConfirmationNumber {
	return o.confirmationNumber
}

// CustomerName returns the name recorded at checkout.
func (o *Order) CustomerName() string {
	return o.customerName
}

// DeliveryAddress returns the address recorded at checkout.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns a copy of the line item snapshots.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the total computed at checkout.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// SelectedByDriver returns the claiming driver's ID, or nil before any claim.
func (o *Order) SelectedByDriver() *kernel.UUID {
	return o.selectedByDriver
}

// DriverLicensePlate returns the plate snapshot captured at claim time.
func (o *Order) DriverLicensePlate() string {
	return o.driverLicensePlate
}

// DeliveryPhoto returns the photo reference attached at completion, or "" before.
func (o *Order) DeliveryPhoto() string {
	return o.deliveryPhoto
}

// DeliveredAt returns the delivery timestamp, or nil before completion.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// IsAssigned reports whether the order has passed the staff release point.
// It is derived from status; it is not independent state.
func (o *Order) IsAssigned() bool {
	return o.status == ReadyForDelivery || o.status == InTransit || o.status == Delivered
}

// Release moves the order from Received to ReadyForDelivery, making it visible
// to drivers. This is a staff action; drivers never trigger it.
func (o *Order) Release() error {
	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Claim binds a driver to the order and moves it to InTransit, snapshotting the
// driver's license plate.
//
// Business rules:
//   - succeeds only from ReadyForDelivery with no driver bound
//   - a repeat claim by the driver who already holds the order is a no-op
//     success, so client retries are harmless
//   - a claim on an order held by a different driver fails with ErrAlreadyClaimed
//
// The aggregate-level check is not sufficient on its own under concurrency:
// the persistence write must be conditional on the same prior state (see
// ports.OrderRepository.Update).
func (o *Order) Claim(driverID kernel.UUID, licensePlate string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}

	if o.selectedByDriver != nil {
		if o.selectedByDriver.IsEqual(driverID) && o.status == InTransit {
			return nil
		}
		return ErrAlreadyClaimed
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.selectedByDriver = &driverID
	o.driverLicensePlate = licensePlate
	return nil
}

// Complete moves the order to Delivered, attaching the photo reference and the
// delivery timestamp. Only the driver bound at claim time may complete the
// order; anyone else gets ErrDriverMismatch regardless of order state.
func (o *Order) Complete(driverID kernel.UUID, photoRef string, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.selectedByDriver == nil || !o.selectedByDriver.IsEqual(driverID) {
		return ErrDriverMismatch
	}

	if photoRef == "" {
		return errs.NewValueIsRequiredError("deliveryPhoto")
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPhoto = photoRef
	deliveredAt := at
	o.deliveredAt = &deliveredAt
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setConfirmationNumber(confirmationNumber kernel.ConfirmationNumber) error {
	if err := confirmationNumber.Validate(); err != nil {
		return err
	}
	o.confirmationNumber = confirmationNumber
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	copied := make([]Item, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		copied[i] = item
	}

	o.items = copied
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
