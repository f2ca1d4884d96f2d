package order

import (
	"errors"
	"fmt"

	"ecommerce/internal/pkg/errs"
)

// ErrOrderAlreadyCanceled is returned when cancellation is requested for an
// order that is already in the Canceled status.
var ErrOrderAlreadyCanceled = errors.New("order is already canceled")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ────────────┐
//	Processing ─────────┼──> Canceled
//	Completed ──────────┘
//
// Cancellation is the only transition exposed by the aggregate. Processing and
// Completed are reachable solely by restoring persisted rows written by
// fulfilment tooling outside this service; no API operation moves an order
// into them.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created.
	Pending

	// Processing indicates the order has been picked up by fulfilment.
	Processing

	// Completed indicates the order has been fulfilled.
	Completed

	// Canceled indicates the order was canceled by the customer.
	// Canceled orders cannot be canceled again.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Canceled:   "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Canceled:   "canceled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Processing, Completed, and Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status ("pending", "processing",
// "completed", "canceled") or "Unknown" for invalid values. Implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a wire-format status name into a Status value.
// Returns a validation error for names outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Pending -> Canceled
//   - Processing -> Canceled
//   - Completed -> Canceled
//
// Invalid transitions:
//   - Canceled -> Canceled (returns ErrOrderAlreadyCanceled)
//   - Unknown -> Canceled (invalid initial state)
//
// Returns:
//   - (Canceled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s == Canceled {
		return 0, ErrOrderAlreadyCanceled
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Canceled, nil
}
