// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence. It implements the repository pattern for the driver
// aggregate, converting between domain entities and database rows.
package driverrepo

import (
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database row for a driver aggregate. The username
// carries a unique index; the vehicle is embedded since it is a value object
// owned by the driver.
type DriverDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username     string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FullName     string     `gorm:"type:varchar(255);not null"`
	Vehicle      VehicleDTO `gorm:"embedded;embeddedPrefix:vehicle_"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// VehicleDTO represents the embedded vehicle columns within the driver table.
type VehicleDTO struct {
	Model        string `gorm:"type:varchar(255);not null"`
	Color        string `gorm:"type:varchar(255);not null"`
	LicensePlate string `gorm:"type:varchar(255);not null"`
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		FullName:     aggregate.FullName(),
		Vehicle: VehicleDTO{
			Model:        aggregate.Vehicle().Model(),
			Color:        aggregate.Vehicle().Color(),
			LicensePlate: aggregate.Vehicle().LicensePlate(),
		},
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := driver.NewVehicle(dto.Vehicle.Model, dto.Vehicle.Color, dto.Vehicle.LicensePlate)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Username, dto.PasswordHash, dto.FullName, vehicle)
}
