package ports

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// The core reads drivers at claim time (identity + vehicle snapshot) and at
// the registry boundary (credential verification).
type DriverRepository interface {
	// Add persists a new driver. Usernames are unique; a duplicate surfaces
	// as a ValueIsInvalid error wrapping the database cause.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByUsername retrieves a driver by login name.
	GetByUsername(ctx context.Context, username string) (*driver.Driver, error)
}
