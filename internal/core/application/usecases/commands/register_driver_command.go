package commands

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a driver signup: credentials, display name,
// and the vehicle the driver will deliver with.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	username     string
	password     string
	fullName     string
	vehicleModel string
	vehicleColor string
	licensePlate string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a registration command. The password is
// validated here but carried in plain form; hashing happens in the handler.
func NewRegisterDriverCommand(
	username, password, fullName string,
	vehicleModel, vehicleColor, licensePlate string,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setFullName(fullName),
		cmd.setVehicle(vehicleModel, vehicleColor, licensePlate),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// Username returns the login name, trimmed.
func (c RegisterDriverCommand) Username() string {
	return c.username
}

// Password returns the plain password for hashing.
func (c RegisterDriverCommand) Password() string {
	return c.password
}

// FullName returns the driver's display name.
func (c RegisterDriverCommand) FullName() string {
	return c.fullName
}

// VehicleModel returns the vehicle model.
func (c RegisterDriverCommand) VehicleModel() string {
	return c.vehicleModel
}

// VehicleColor returns the vehicle color.
func (c RegisterDriverCommand) VehicleColor() string {
	return c.vehicleColor
}

// LicensePlate returns the vehicle license plate.
func (c RegisterDriverCommand) LicensePlate() string {
	return c.licensePlate
}

func (c *RegisterDriverCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if len(username) < driver.MinUsernameLength {
		return errs.NewValueIsInvalidErrorWithCause("username",
			fmt.Errorf("%q is shorter than %d characters", username, driver.MinUsernameLength))
	}
	c.username = username
	return nil
}

func (c *RegisterDriverCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("password is shorter than %d characters", MinPasswordLength))
	}
	c.password = password
	return nil
}

func (c *RegisterDriverCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *RegisterDriverCommand) setVehicle(model, color, licensePlate string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("vehicleModel")
	}
	if color == "" {
		return errs.NewValueIsRequiredError("vehicleColor")
	}
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	c.vehicleModel = model
	c.vehicleColor = color
	c.licensePlate = licensePlate
	return nil
}
