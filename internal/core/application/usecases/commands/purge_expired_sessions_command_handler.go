package commands

import (
	"context"
)

// PurgeExpiredSessionsCommandHandler removes expired sign-in sessions from
// storage. Returns the number of sessions removed so callers can report it.
type PurgeExpiredSessionsCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewPurgeExpiredSessionsCommandHandler creates a handler for session cleanup.
func NewPurgeExpiredSessionsCommandHandler(uowFactory SessionUoWFactory) PurgeExpiredSessionsCommandHandler {
	return PurgeExpiredSessionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes every session past its expiry inside one transaction and
// reports how many rows were removed.
func (h *PurgeExpiredSessionsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeExpiredSessionsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	removed, err := sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
