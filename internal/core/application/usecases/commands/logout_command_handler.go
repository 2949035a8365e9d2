package commands

import (
	"context"
)

// LogoutCommandHandler clears the stored session. Authentication itself is
// owned by an external collaborator; this client only forgets what it was
// given.
type LogoutCommandHandler struct {
	sessions SessionCleaner
}

// NewLogoutCommandHandler creates a handler for logout operations.
func NewLogoutCommandHandler(sessions SessionCleaner) LogoutCommandHandler {
	return LogoutCommandHandler{
		sessions: sessions,
	}
}

// Handle processes the logout command. Clearing an already empty session
// store is not an error.
func (h LogoutCommandHandler) Handle(ctx context.Context, command LogoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.sessions.Clear(ctx)
}
