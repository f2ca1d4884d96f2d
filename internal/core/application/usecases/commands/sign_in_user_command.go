package commands

import (
	"errors"

	"ecommerce/internal/pkg/guard"
)

var (
	ErrSignInUserCommandIsNotConstructed = errors.New(
		"SignInUserCommand must be created via NewSignInUserCommand constructor",
	)

	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// SignInUserCommand represents a sign-in attempt with email and password.
type SignInUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewSignInUserCommand creates a command for a sign-in attempt.
func NewSignInUserCommand(email, password string) (SignInUserCommand, error) {
	command := SignInUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return SignInUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInUserCommand) Validate() error {
	return c.guard.Validate(ErrSignInUserCommandIsNotConstructed)
}

// Email returns the sign-in email address.
func (c SignInUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to verify.
func (c SignInUserCommand) Password() string {
	return c.password
}

func (c *SignInUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *SignInUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
