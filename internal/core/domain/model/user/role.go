package user

import (
	"fmt"

	"ecommerce/internal/pkg/errs"
)

// Role represents the account type of a user.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Buyer is the default role for registered customers.
	Buyer

	// Merchant marks accounts that own catalog products.
	Merchant

	// Admin marks operator accounts.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		Buyer:       "buyer",
		Merchant:    "merchant",
		Admin:       "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Buyer:    "buyer",
		Merchant: "merchant",
		Admin:    "admin",
	}
}

// Validate checks if the Role value is one of the declared roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire-format name of the role, or "Unknown" for invalid
// values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a wire-format role name.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
