// Package product provides domain entities and business logic for the product
// catalog. It implements the Product aggregate root with merchant ownership,
// pricing, stock quantity, and availability status.
//
// Key business rules:
//   - Products must have a valid identifier, merchant reference, and non-empty name
//   - Prices are non-negative decimals; quantities are non-negative integers
//   - Availability status is one of available, unavailable, or limited
//
// Catalog search and filtering semantics live in the query layer; this package
// only guards the aggregate's own invariants.
package product
