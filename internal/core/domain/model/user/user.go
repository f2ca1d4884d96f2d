package user

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrFirstNameIsRequired is returned when the first name is empty.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("firstName")
	// ErrLastNameIsRequired is returned when the last name is empty.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("lastName")
	// ErrEmailIsRequired is returned when the email is empty.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when no password hash is supplied.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// User represents a registered account. It is the aggregate root for profile
// management.
//
// The aggregate never sees plain-text passwords: registration hashes the
// password through the PasswordHasher port and hands the resulting PHC string
// to the constructor. Email uniqueness is a storage concern enforced by a
// unique index, not by this aggregate.
type User struct {
	// id uniquely identifies the user
	id kernel.UUID
	// firstName and lastName form the display name
	firstName string
	lastName  string
	// email is the unique sign-in address
	email string
	// passwordHash is the argon2id PHC-format hash
	passwordHash string
	// phone is an optional contact number
	phone string
	// role is the account type
	role Role
	// isConstructed ensures the user was created via a constructor
	isConstructed bool
}

// NewUser creates a new account. Role defaults to Buyer when RoleUnknown is
// passed. Returns a validation error if any required field is missing;
// multiple violations are aggregated.
func NewUser(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	passwordHash string,
	phone string,
	role Role,
) (*User, error) {
	if role == RoleUnknown {
		role = Buyer
	}

	user := &User{
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setFirstName(firstName),
		user.setLastName(lastName),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	passwordHash string,
	phone string,
	role Role,
) (*User, error) {
	return NewUser(id, firstName, lastName, email, passwordHash, phone, role)
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// Email returns the sign-in address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored argon2id hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Phone returns the optional contact number.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the account type.
func (u *User) Role() Role {
	return u.role
}

// ChangeName updates the display name. Both parts must be non-empty.
func (u *User) ChangeName(firstName, lastName string) error {
	if err := errors.Join(
		u.validateFirstName(firstName),
		u.validateLastName(lastName),
	); err != nil {
		return err
	}

	u.firstName = firstName
	u.lastName = lastName
	return nil
}

// ChangePhone updates the contact number. An empty value clears it.
func (u *User) ChangePhone(phone string) {
	u.phone = phone
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setFirstName(firstName string) error {
	if err := u.validateFirstName(firstName); err != nil {
		return err
	}
	u.firstName = firstName
	return nil
}

func (u *User) setLastName(lastName string) error {
	if err := u.validateLastName(lastName); err != nil {
		return err
	}
	u.lastName = lastName
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) validateFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}
	return nil
}

func (u *User) validateLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}
	return nil
}
