package driver

import (
	"marketplace/internal/pkg/errs"
)

// Vehicle is an immutable descriptor of the car a driver delivers with.
// The license plate is what gets snapshotted onto an order at claim time.
type Vehicle struct {
	model        string
	color        string
	licensePlate string
}

// NewVehicle creates a vehicle descriptor with validation.
// All three fields are required.
func NewVehicle(model, color, licensePlate string) (Vehicle, error) {
	if model == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("vehicleModel")
	}
	if color == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("vehicleColor")
	}
	if licensePlate == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("licensePlate")
	}

	return Vehicle{
		model:        model,
		color:        color,
		licensePlate: licensePlate,
	}, nil
}

// Model returns the vehicle model.
func (v Vehicle) Model() string {
	return v.model
}

// Color returns the vehicle color.
func (v Vehicle) Color() string {
	return v.color
}

// LicensePlate returns the license plate.
func (v Vehicle) LicensePlate() string {
	return v.licensePlate
}

// Validate checks the vehicle was built through NewVehicle with all fields set.
func (v Vehicle) Validate() error {
	if v.model == "" || v.color == "" || v.licensePlate == "" {
		return errs.NewValueIsRequiredError("vehicle must be created via NewVehicle")
	}
	return nil
}
