package ports

import (
	"context"

	"shipper/internal/core/domain/model/shipper"
)

// SessionStore is the contract with the local opaque key-value store holding
// the authenticated shipper's profile blob. The blob is written by the
// external auth collaborator at login; this client only loads and clears it.
type SessionStore interface {
	// Load reads and decodes the stored shipper profile.
	// Returns an ObjectNotFoundError when no profile is stored, which the
	// caller treats as "not authenticated".
	Load(ctx context.Context) (*shipper.Shipper, error)

	// Save encodes and stores the shipper profile.
	Save(ctx context.Context, s *shipper.Shipper) error

	// Clear removes the stored profile. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
