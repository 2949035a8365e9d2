package order

import (
	"fmt"
	"strings"

	"shipper/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as seen by the shipper.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	New ──┬──> Claimed ──┬──> Completed
//	      │              │
//	      └──────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no further transition is legal from
// either. Unknown is a display-only state used for upstream status strings
// the client does not recognize; no transition is legal from Unknown.
//
// Status is a value object that validates state transitions and provides
// string representations for display.
type Status int

const (
	// Unknown represents an upstream status string the client does not
	// recognize. Orders in this state are surfaced but cannot transition.
	// This value (0) also helps catch uninitialized Status values.
	Unknown Status = iota

	// New is an unclaimed order, visible to all shippers.
	New

	// Claimed indicates the order is assigned to exactly one shipper and is
	// awaiting a delivery outcome.
	Claimed

	// Completed indicates the order was delivered. Terminal.
	Completed

	// Cancelled indicates the order was rejected or failed. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Claimed:   "Claimed",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Claimed:   "Claimed",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// StatusFromUpstream normalizes an upstream status string into the canonical
// enumeration. The remote service uses divergent vocabularies across its
// endpoints ("pending" and "resolved" both mean an unclaimed order), so all
// ingestion goes through this single mapping:
//
//	"pending", "resolved"  -> New
//	"processing"           -> Claimed
//	"delivered"            -> Completed
//	"cancelled"            -> Cancelled
//	anything else          -> Unknown
//
// The mapping is case-insensitive and idempotent over canonical names, so
// normalizing an already-normalized value yields the same Status.
func StatusFromUpstream(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "resolved", "new":
		return New
	case "processing", "claimed":
		return Claimed
	case "delivered", "completed":
		return Completed
	case "cancelled":
		return Cancelled
	default:
		return Unknown
	}
}

// Validate checks if the Status value is valid for transition logic.
//
// Valid statuses are: New, Claimed, Completed, Cancelled.
// Unknown (0) and any other values are invalid; they are representable for
// display but carry no transition rights.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateClaim checks if the status allows claiming without performing the
// transition. Only New orders may be claimed; a Claimed order already belongs
// to a shipper, and terminal orders are immutable.
func (s Status) ValidateClaim() error {
	if s != New {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to claim", s.String()),
		)
	}
	return nil
}

// ValidateCancel checks if the status allows cancellation without performing
// the transition. New and Claimed orders may be cancelled; terminal orders
// are immutable.
func (s Status) ValidateCancel() error {
	if s != New && s != Claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveShipper validates the consistency between order status and
// shipper assignment.
//
// Business rule: a New order must not carry an assignment. The reverse is not
// enforced because some upstream payloads (order detail, unrecognized status
// entries) omit the assignee, and those orders must still be surfaced.
func (s Status) ValidateCanHaveShipper(assigned bool) error {
	if assigned && s == New {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a shipper", s.String()),
		)
	}

	return nil
}

// Claim transitions the status to Claimed.
//
// Valid transitions:
//   - New -> Claimed
//
// Returns:
//   - (Claimed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Claim() (Status, error) {
	if err := s.ValidateClaim(); err != nil {
		return 0, err
	}

	return Claimed, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Claimed -> Completed
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Complete() (Status, error) {
	if s != Claimed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - New -> Cancelled (rejection before any claim)
//   - Claimed -> Cancelled (delivery failed or refused)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
