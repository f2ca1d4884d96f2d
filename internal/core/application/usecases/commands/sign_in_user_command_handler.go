package commands

import (
	"context"
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/pkg/errs"
)

// SessionTTL is how long a sign-in session stays valid. Expired sessions are
// rejected on use and purged by the cleanup job.
const SessionTTL = 24 * time.Hour

// SignInResult carries the session issued by a successful sign-in.
type SignInResult struct {
	Token     kernel.UUID
	UserID    kernel.UUID
	ExpiresAt time.Time
}

// SignInUserCommandHandler verifies credentials and issues an opaque session
// token. Unknown emails and wrong passwords both map to
// ErrInvalidCredentials so the response does not leak which accounts exist.
type SignInUserCommandHandler struct {
	uowFactory AuthUoWFactory
	hasher     ports.PasswordHasher
}

// NewSignInUserCommandHandler creates a handler for sign-in attempts.
func NewSignInUserCommandHandler(
	uowFactory AuthUoWFactory,
	hasher ports.PasswordHasher,
) SignInUserCommandHandler {
	return SignInUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle verifies the password against the stored hash and, on success,
// persists and returns a fresh session.
func (h *SignInUserCommandHandler) Handle(
	ctx context.Context,
	cmd SignInUserCommand,
) (SignInResult, error) {
	if err := cmd.Validate(); err != nil {
		return SignInResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SignInResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	account, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return SignInResult{}, ErrInvalidCredentials
		}
		return SignInResult{}, err
	}

	matches, err := h.hasher.Verify(cmd.Password(), account.PasswordHash())
	if err != nil {
		return SignInResult{}, err
	}
	if !matches {
		return SignInResult{}, ErrInvalidCredentials
	}

	session, err := user.NewSession(kernel.NewUUID(), account.ID(), time.Now().Add(SessionTTL))
	if err != nil {
		return SignInResult{}, err
	}

	sessionRepo := uow.SessionRepository()
	if err = sessionRepo.Add(ctx, session); err != nil {
		return SignInResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SignInResult{}, err
	}

	return SignInResult{
		Token:     session.Token(),
		UserID:    session.UserID(),
		ExpiresAt: session.ExpiresAt(),
	}, nil
}
