// Package order provides the value objects describing pizza orders in the
// pizzeria system.
//
// The package includes:
//   - Number: The order number assigned by the order source
//   - HouseNumber: The identifier of a house in the town's location table
//   - Order: An immutable value object pairing an order number with its house
//
// An Order carries no location or deadline of its own: the world owns the
// house location table and each house's remaining patience, keyed by
// HouseNumber. The package follows Domain-Driven Design principles, using
// constructor validation to keep order values well-formed.
package order
