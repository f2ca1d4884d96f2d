package user

import (
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

// ErrSessionIsNotConstructed is returned when a Session was not created
// through the NewSession constructor.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is an opaque sign-in token reference. The token value itself is a
// random UUID; no claims are encoded in it, so holding the token row is the
// only way to resolve it back to a user. Expired rows are purged by the
// session cleanup job.
type Session struct { //nolint:recvcheck //using for validation
	token     kernel.UUID
	userID    kernel.UUID
	expiresAt time.Time

	guard guard.ConstructorGuard
}

// NewSession creates a session binding token to userID until expiresAt.
func NewSession(token kernel.UUID, userID kernel.UUID, expiresAt time.Time) (Session, error) {
	session := Session{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		session.setToken(token),
		session.setUserID(userID),
		session.setExpiresAt(expiresAt),
	); err != nil {
		return Session{}, err
	}

	return session, nil
}

// Token returns the opaque token value.
func (s Session) Token() kernel.UUID {
	return s.token
}

// UserID returns the signed-in user's identifier.
func (s Session) UserID() kernel.UUID {
	return s.userID
}

// ExpiresAt returns the expiry instant.
func (s Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// IsExpired reports whether the session has expired as of now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// Validate ensures the Session was created through NewSession.
func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) setToken(token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("token", err)
	}
	s.token = token
	return nil
}

func (s *Session) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	s.userID = userID
	return nil
}

func (s *Session) setExpiresAt(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return errs.NewValueIsRequiredError("expiresAt")
	}
	s.expiresAt = expiresAt
	return nil
}
