// Package kernel provides core domain primitives shared by the order, product,
// and user models. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - Price: a value object for non-negative monetary amounts backed by
//     arbitrary-precision decimals
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
