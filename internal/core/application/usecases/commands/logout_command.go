package commands

import (
	"errors"

	"shipper/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand discards the stored session. Issued on explicit logout and
// when the remote service reports the session invalid.
type LogoutCommand struct {
	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a parameterless logout command.
func NewLogoutCommand() LogoutCommand {
	return LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogoutCommandIsNotConstructed if validation fails.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}
