package commands

import (
	"errors"

	"ecommerce/internal/pkg/guard"
)

var ErrPurgeExpiredSessionsCommandIsNotConstructed = errors.New(
	"PurgeExpiredSessionsCommand must be created via NewPurgeExpiredSessionsCommand constructor",
)

// PurgeExpiredSessionsCommand triggers removal of all expired sign-in
// sessions. This batch operation is run periodically by a scheduler.
//
// Example:
//
//	cmd := NewPurgeExpiredSessionsCommand()
//	handler := NewPurgeExpiredSessionsCommandHandler(uowFactory)
//
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("session cleanup failed: %v", err)
//	}
type PurgeExpiredSessionsCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeExpiredSessionsCommand creates a command to purge expired sessions.
// This is a parameterless command that removes every session past its expiry.
func NewPurgeExpiredSessionsCommand() PurgeExpiredSessionsCommand {
	command := PurgeExpiredSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeExpiredSessionsCommandIsNotConstructed if validation fails.
func (c *PurgeExpiredSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredSessionsCommandIsNotConstructed)
}
