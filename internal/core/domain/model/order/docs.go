// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root that owns a mutable list
// of line items and a derived total price.
//
// The package includes:
//   - Order: the aggregate root managing identity, line items, total, and status
//   - Item: a named, priced line entry within an order
//   - Status: the order lifecycle state with guarded transitions
//
// Key business rules:
//   - Orders are created with at least one item; every item price is non-negative
//   - The total price always equals the sum of item prices after any mutation
//     and is never accepted from callers
//   - Items are addressed by name; when names collide, mutations affect the
//     first match in list order
//   - The only exposed status transition is cancellation, which is rejected
//     when the order is already canceled
//
// The package follows Domain-Driven Design principles, using private fields and
// validated constructors so aggregates cannot enter an invalid state.
package order
