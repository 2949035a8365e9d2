package ports

import (
	"errors"

	"github.com/google/uuid"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
)

// Partition names one of the four order groupings shown to a shipper.
type Partition string

const (
	PartitionNew       Partition = "new"
	PartitionMine      Partition = "mine"
	PartitionDone      Partition = "done"
	PartitionCancelled Partition = "cancelled"
)

// Partitions lists all partitions in display order.
func Partitions() []Partition {
	return []Partition{PartitionNew, PartitionMine, PartitionDone, PartitionCancelled}
}

// Validate reports whether the partition is one of the four known groupings.
func (p Partition) Validate() error {
	switch p {
	case PartitionNew, PartitionMine, PartitionDone, PartitionCancelled:
		return nil
	default:
		return errors.New("unknown partition: " + string(p))
	}
}

// ErrOrderBusy is returned by Stage when the order already has a mutating
// operation in flight. The view disables the triggering control for the
// duration of a request; this is the backstop for that rule.
var ErrOrderBusy = errors.New("order has an operation in flight")

// StagedUpdate represents a tentative, optimistically applied lifecycle
// transition on one order. Exactly one of Commit or Rollback must be called
// on every exit path; both release the order's busy flag.
type StagedUpdate interface {
	// Token identifies this staged update.
	Token() uuid.UUID

	// Order returns the optimistically mutated order.
	Order() *order.Order

	// Commit keeps the tentative state, moving the order to the given
	// partition. Called after the remote service confirmed the transition.
	Commit(to Partition) error

	// Rollback restores the pre-call snapshot and leaves the order in its
	// original partition. Called when the remote service rejected the
	// transition or could not be reached.
	Rollback() error
}

// OrderBoard holds the client's in-memory view of the four order partitions.
// It is the shared resource of the application core: mutated only by command
// handlers, either through a completed refresh (Replace) or through a staged
// optimistic update, never directly by a view.
type OrderBoard interface {
	// Get returns the order with the given ID from any partition.
	Get(id kernel.ID) (*order.Order, bool)

	// Partition reports which partition currently holds the order.
	Partition(id kernel.ID) (Partition, bool)

	// List returns a snapshot of one partition, sorted by order date
	// descending.
	List(p Partition) []*order.Order

	// Sizes returns the current size of each partition.
	Sizes() map[Partition]int

	// Replace swaps the content of one partition with freshly fetched
	// orders. Orders with a staged update in flight are preserved as-is,
	// and an order never appears in two partitions at once.
	Replace(p Partition, orders []*order.Order) error

	// Stage applies a tentative transition to the order with the given ID.
	// It snapshots the order, applies fn, and acquires the order's busy
	// flag. Returns ErrOrderBusy when an operation is already in flight,
	// or an ObjectNotFoundError when the board does not hold the order.
	// If fn fails the board is left untouched.
	Stage(id kernel.ID, fn func(*order.Order) error) (StagedUpdate, error)
}
