// Package sessionrepo provides data transfer objects and mapping functions
// for sign-in session persistence.
package sessionrepo

import (
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting sign-in
// sessions. The expiry is indexed so the cleanup job can purge efficiently.
type SessionDTO struct {
	Token     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	ExpiresAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for session entities.
// Overrides GORM's default naming convention to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}

// fromDomain converts a session value object to its database representation.
func fromDomain(session user.Session) SessionDTO {
	return SessionDTO{
		Token:     session.Token().Bytes(),
		UserID:    session.UserID().Bytes(),
		ExpiresAt: session.ExpiresAt(),
	}
}

// toDomain converts a database DTO to a session value object.
func toDomain(dto SessionDTO) (user.Session, error) {
	token, err := kernel.UUIDFromBytes(dto.Token[:])
	if err != nil {
		return user.Session{}, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return user.Session{}, err
	}

	return user.NewSession(token, userID, dto.ExpiresAt)
}
