package queries

import (
	"errors"

	"shipper/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves the authenticated shipper's profile from the
// session store.
type GetProfileQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a parameterless profile query.
func NewGetProfileQuery() GetProfileQuery {
	return GetProfileQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProfileQueryIsNotConstructed if validation fails.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// GetProfileQueryResponse is the session-context projection of the shipper.
type GetProfileQueryResponse struct {
	ID       string
	Email    string
	FullName string
	Phone    string
	Avatar   string
	IsActive bool
}
