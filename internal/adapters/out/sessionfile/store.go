// Package sessionfile persists the authenticated shipper's profile as a JSON
// blob on the local filesystem. The blob is written at login and removed at
// logout or when the remote service reports the session invalid; its absence
// means "not authenticated".
package sessionfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/shipper"
	"shipper/internal/pkg/errs"
)

// profileDTO is the stored shape of the shipper profile. Field names follow
// the auth service's payload, so a blob written by it decodes directly.
type profileDTO struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	IsActive bool   `json:"isActive"`
}

// Store implements ports.SessionStore over a single JSON file.
// Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a session store backed by the file at path.
// The parent directory is created on first save.
func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	return &Store{path: path}, nil
}

// Load reads and decodes the stored shipper profile. Returns an
// ObjectNotFoundError when no profile is stored or the blob is unreadable;
// a corrupt session is treated the same as a missing one.
func (s *Store) Load(_ context.Context) (*shipper.Shipper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundError("session", s.path)
		}
		return nil, err
	}

	var dto profileDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("session", s.path, err)
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("session", s.path, err)
	}

	return shipper.RestoreShipper(id, dto.Email, dto.FullName, dto.Phone, dto.Avatar, dto.IsActive)
}

// Save encodes and stores the shipper profile, replacing any existing one.
func (s *Store) Save(_ context.Context, sh *shipper.Shipper) error {
	if err := sh.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(profileDTO{
		ID:       sh.ID().String(),
		Email:    sh.Email(),
		FullName: sh.FullName(),
		Phone:    sh.Phone(),
		Avatar:   sh.Avatar(),
		IsActive: sh.IsActive(),
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear removes the stored profile. Clearing an empty store is not an error.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
