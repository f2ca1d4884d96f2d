package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/core/ports"
)

// RegisterUserCommandHandler registers a new account. The password is hashed
// before the user is persisted; the plaintext never reaches storage.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle hashes the password, builds the user aggregate and persists it.
// The repository reports a conflict error when the email is already
// registered.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := user.NewUser(
		cmd.UserID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		passwordHash,
		cmd.Phone(),
		cmd.Role(),
	)
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
