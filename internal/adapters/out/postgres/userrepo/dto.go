// Package userrepo provides data transfer objects and mapping functions for
// account persistence. Email uniqueness is enforced with a database unique
// index so concurrent registrations cannot race past an application check.
package userrepo

import (
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string
	LastName     string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Phone        string
	Role         string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Phone:        aggregate.Phone(),
		Role:         aggregate.Role().String(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.PasswordHash,
		dto.Phone,
		role,
	)
}
