package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ErrUsernameTaken is returned when the requested login name already exists.
var ErrUsernameTaken = errors.New("username is already taken")

// RegisterDriverCommandHandler creates driver accounts. Passwords are hashed
// before anything touches the store; the plain password never leaves the
// command.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(
	uowFactory DriverUoWFactory,
	hasher ports.PasswordHasher,
) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration and returns the new driver.
//
// The username check here is advisory: two concurrent registrations of the
// same name can both pass it, and the unique index on the column decides the
// loser at insert time.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	_, err := driverRepo.GetByUsername(ctx, cmd.Username())
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	vehicle, err := driver.NewVehicle(cmd.VehicleModel(), cmd.VehicleColor(), cmd.LicensePlate())
	if err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(kernel.NewUUID(), cmd.Username(), passwordHash, cmd.FullName(), vehicle)
	if err != nil {
		return nil, err
	}

	if err = driverRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
