package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsRequired = errors.New("password is required")
	ErrEmailIsRequired    = errors.New("email is required")
)

// RegisterUserCommand represents a request to register a new account.
// The password travels in plaintext only as far as the handler, which hashes
// it before anything is persisted.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	firstName string
	lastName  string
	email     string
	password  string
	phone     string
	role      user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register an account. The role
// is given by its wire name; an empty role defaults to "buyer".
func NewRegisterUserCommand(
	userID kernel.UUID,
	firstName string,
	lastName string,
	email string,
	password string,
	phone string,
	role string,
) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setEmail(email),
		command.setPassword(password),
		command.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// FirstName returns the account holder's first name.
func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the account holder's last name.
func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

// Email returns the sign-in email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Phone returns the optional contact phone number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role string) error {
	if role == "" {
		c.role = user.Buyer
		return nil
	}

	validRole, err := user.RoleFromString(role)
	if err != nil {
		return err
	}

	c.role = validRole
	return nil
}
