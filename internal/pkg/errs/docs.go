// Package errs provides standardized error types for the e-commerce backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: an entity (order, product, user) cannot be found
//   - ValueIsInvalidError: a value fails a business rule
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ValueIsRequiredError: a required value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter classifies domain failures by matching these sentinels with
// errors.Is, which is how not-found conditions become 404 responses and
// validation failures become 400 responses.
package errs
