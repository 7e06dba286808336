// Package order contains the Order aggregate root and its lifecycle state
// machine. An order moves through the strict sequence
// RECEIVED -> READY FOR DELIVERY -> IN TRANSIT -> DELIVERED; no state may be
// skipped, repeated, or reverted. The aggregate also guards the driver binding:
// a driver is attached exactly once, at the claim transition, and delivery
// evidence is attached exactly once, at completion.
package order
