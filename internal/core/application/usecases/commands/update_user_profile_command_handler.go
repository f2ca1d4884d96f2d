package commands

import (
	"context"
)

// UpdateUserProfileCommandHandler changes an account's name and phone number.
type UpdateUserProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserProfileCommandHandler creates a handler for profile updates.
func NewUpdateUserProfileCommandHandler(uowFactory UserUoWFactory) UpdateUserProfileCommandHandler {
	return UpdateUserProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the account, applies the new profile fields and saves the
// updated aggregate inside one transaction.
func (h *UpdateUserProfileCommandHandler) Handle(ctx context.Context, cmd UpdateUserProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeName(cmd.FirstName(), cmd.LastName()); err != nil {
		return err
	}
	aggregate.ChangePhone(cmd.Phone())

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
