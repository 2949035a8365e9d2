package kernel

import (
	"strings"

	"shipper/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized
// through the NewID constructor. This error is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object wrapping an identifier issued by the remote order
// service. The service uses opaque string identifiers (for orders, shippers,
// and products alike), so the client never generates or interprets them; it
// only carries them between calls.
//
// The zero value of ID is invalid and must be constructed via NewID.
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewID("665f1c2ab1a0d3c4e8a91f02")
//	if err != nil {
//	    // handle error
//	}
//
//	type Order struct {
//	    ID kernel.ID
//	    // other fields...
//	}
type ID struct {
	value string
}

// NewID creates an ID from its string representation as received from the
// remote service. The value must be non-blank; no further shape is assumed.
//
// Example:
//
//	orderID, err := kernel.NewID("o1")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func NewID(value string) (ID, error) {
	if strings.TrimSpace(value) == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: value}, nil
}

// String returns the identifier exactly as issued by the remote service.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two IDs for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed for a zero-value ID.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
