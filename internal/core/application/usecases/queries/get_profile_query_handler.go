package queries

import (
	"context"
)

// GetProfileQueryHandler projects the stored session into a profile view.
// An absent session surfaces as an ObjectNotFoundError, which callers treat
// as "not authenticated".
type GetProfileQueryHandler struct {
	sessions SessionLoader
}

// NewGetProfileQueryHandler creates a handler for profile queries.
func NewGetProfileQueryHandler(sessions SessionLoader) GetProfileQueryHandler {
	return GetProfileQueryHandler{sessions: sessions}
}

// Handle executes the profile query.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	sh, err := h.sessions.Load(ctx)
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	return GetProfileQueryResponse{
		ID:       sh.ID().String(),
		Email:    sh.Email(),
		FullName: sh.FullName(),
		Phone:    sh.Phone(),
		Avatar:   sh.Avatar(),
		IsActive: sh.IsActive(),
	}, nil
}
