// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID) and customer-facing order confirmation numbers.
// Value objects in this package are immutable; their zero values are invalid
// and must be created through the provided constructor functions.
package kernel
