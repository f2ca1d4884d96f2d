package product

import (
	"fmt"

	"ecommerce/internal/pkg/errs"
)

// Status represents the catalog availability of a product.
// Unlike the order lifecycle there are no transition rules here: merchants may
// switch a product between any of the declared statuses at any time.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the product can be sold without restriction.
	Available

	// Unavailable means the product is hidden from sale.
	Unavailable

	// Limited means the product is sold while limited stock lasts.
	Limited
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Available:     "available",
		Unavailable:   "unavailable",
		Limited:       "limited",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "available",
		Unavailable: "unavailable",
		Limited:     "limited",
	}
}

// Validate checks if the Status value is one of the declared availabilities.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid product status", s))
	}
	return nil
}

// String returns the wire-format name of the status, or "Unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a wire-format status name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid product status", s))
}
