package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrUpdateUserProfileCommandIsNotConstructed = errors.New(
	"UpdateUserProfileCommand must be created via NewUpdateUserProfileCommand constructor",
)

// UpdateUserProfileCommand represents a request to change an account's name
// and phone number. Email, password and role are not touched by this
// operation.
type UpdateUserProfileCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	firstName string
	lastName  string
	phone     string

	guard guard.ConstructorGuard
}

// NewUpdateUserProfileCommand creates a command to update profile fields.
// Name validation happens on the aggregate; the command only checks the
// identifier.
func NewUpdateUserProfileCommand(
	userID kernel.UUID,
	firstName string,
	lastName string,
	phone string,
) (UpdateUserProfileCommand, error) {
	command := UpdateUserProfileCommand{
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return UpdateUserProfileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserProfileCommandIsNotConstructed)
}

// UserID returns the identifier of the account to update.
func (c UpdateUserProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// FirstName returns the new first name.
func (c UpdateUserProfileCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new last name.
func (c UpdateUserProfileCommand) LastName() string {
	return c.lastName
}

// Phone returns the new phone number; empty clears the stored value.
func (c UpdateUserProfileCommand) Phone() string {
	return c.phone
}

func (c *UpdateUserProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
