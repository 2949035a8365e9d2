package shipper

import (
	"errors"
	"strings"

	"shipper/internal/core/domain/model/kernel"
)

// ErrShipperIsNotConstructed is returned when a Shipper instance was not
// created through the RestoreShipper factory method.
var ErrShipperIsNotConstructed = errors.New("Shipper must be created via RestoreShipper constructor")

// Shipper is the read-only projection of the authenticated delivery agent.
// It is loaded once from the session store at startup and cleared on logout;
// the lifecycle core never mutates it. Profile management belongs to the
// external auth collaborator.
type Shipper struct {
	id       kernel.ID
	email    string
	fullName string
	phone    string
	avatar   string
	isActive bool

	isConstructed bool
}

// RestoreShipper reconstructs a Shipper from the session profile blob.
//
// Parameters:
//   - id: the shipper's identifier issued by the remote service (must be valid)
//   - email, fullName, phone, avatar: profile fields, carried as received
//   - isActive: whether the account is active
func RestoreShipper(id kernel.ID, email, fullName, phone, avatar string, isActive bool) (*Shipper, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Shipper{
		id:            id,
		email:         strings.TrimSpace(email),
		fullName:      strings.TrimSpace(fullName),
		phone:         strings.TrimSpace(phone),
		avatar:        strings.TrimSpace(avatar),
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shipper instance was properly constructed through
// RestoreShipper.
func (s *Shipper) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipperIsNotConstructed
	}
	return nil
}

// ID returns the shipper's identifier.
func (s *Shipper) ID() kernel.ID {
	return s.id
}

// Email returns the shipper's login email.
func (s *Shipper) Email() string {
	return s.email
}

// FullName returns the shipper's display name.
func (s *Shipper) FullName() string {
	return s.fullName
}

// Phone returns the shipper's contact phone.
func (s *Shipper) Phone() string {
	return s.phone
}

// Avatar returns the shipper's avatar reference, if any.
func (s *Shipper) Avatar() string {
	return s.avatar
}

// IsActive reports whether the account is active.
func (s *Shipper) IsActive() bool {
	return s.isActive
}
