// Package driver contains the Driver aggregate: the identity, hashed
// credential, and vehicle descriptor of an independent delivery driver.
// The order lifecycle only reads a driver's identity and vehicle snapshot at
// claim time; credential verification happens at the registry boundary and the
// plaintext password never reaches this package.
package driver

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MinUsernameLength is the shortest accepted driver username.
const MinUsernameLength = 4

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

// Driver is the aggregate root for a registered delivery driver.
//
// The credential is stored only as a hash produced by the registry's password
// hasher; this type rejects anything that looks like it could be a raw
// password slot being misused (an empty hash).
type Driver struct {
	id           kernel.UUID
	username     string
	passwordHash string
	fullName     string
	vehicle      Vehicle

	guard guard.ConstructorGuard
}

// NewDriver creates a driver with validation. The passwordHash must already be
// hashed by the caller; plaintext validation (minimum length) happens before
// hashing, in the registration use case.
func NewDriver(id kernel.UUID, username, passwordHash, fullName string, vehicle Vehicle) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setUsername(username),
		d.setPasswordHash(passwordHash),
		d.setFullName(fullName),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver aggregate from persistence.
func RestoreDriver(id kernel.UUID, username, passwordHash, fullName string, vehicle Vehicle) (*Driver, error) {
	return NewDriver(id, username, passwordHash, fullName, vehicle)
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Username returns the login name.
func (d *Driver) Username() string {
	return d.username
}

// PasswordHash returns the hashed credential for verification at the registry boundary.
func (d *Driver) PasswordHash() string {
	return d.passwordHash
}

// FullName returns the driver's display name.
func (d *Driver) FullName() string {
	return d.fullName
}

// Vehicle returns the vehicle descriptor.
func (d *Driver) Vehicle() Vehicle {
	return d.vehicle
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if len(username) < MinUsernameLength {
		return errs.NewValueIsInvalidErrorWithCause("username",
			fmt.Errorf("%q is shorter than %d characters", username, MinUsernameLength))
	}
	d.username = username
	return nil
}

func (d *Driver) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	d.passwordHash = passwordHash
	return nil
}

func (d *Driver) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	d.fullName = fullName
	return nil
}

func (d *Driver) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	d.vehicle = vehicle
	return nil
}
