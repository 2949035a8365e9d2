// Package memboard provides the in-memory implementation of the order board.
// The board is the client-side working set of orders, split into the four
// partitions a shipper sees. It coordinates two kinds of mutation and keeps
// them from trampling each other:
//
//   - Replace: a completed refresh swaps a partition's content wholesale.
//   - Stage/Commit/Rollback: a lifecycle action is applied optimistically,
//     then either kept (the remote service confirmed) or reverted (it
//     rejected the call or was unreachable).
//
// While a staged update is in flight the order is busy: further staging
// fails with ErrOrderBusy and refreshes leave the order untouched, so a
// stale fetch can never clobber an optimistic transition.
package memboard

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/ports"
	"shipper/internal/pkg/errs"
)

// Board implements ports.OrderBoard. Safe for concurrent use; a single
// mutex guards all partitions since the working set is small.
type Board struct {
	mu sync.RWMutex

	orders   map[string]*order.Order
	location map[string]ports.Partition
	staged   map[string]uuid.UUID
}

// NewBoard creates an empty order board.
func NewBoard() *Board {
	return &Board{
		orders:   make(map[string]*order.Order),
		location: make(map[string]ports.Partition),
		staged:   make(map[string]uuid.UUID),
	}
}

// Get returns the order with the given ID from any partition.
func (b *Board) Get(id kernel.ID) (*order.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	o, ok := b.orders[id.String()]
	return o, ok
}

// Partition reports which partition currently holds the order.
func (b *Board) Partition(id kernel.ID) (ports.Partition, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.location[id.String()]
	return p, ok
}

// List returns a snapshot of one partition, newest order date first.
func (b *Board) List(p ports.Partition) []*order.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for key, loc := range b.location {
		if loc == p {
			orders = append(orders, b.orders[key])
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		left, right := orders[i].Timestamps(), orders[j].Timestamps()
		if !left.OrderDate.Equal(right.OrderDate) {
			return left.OrderDate.After(right.OrderDate)
		}
		if !left.CreatedAt.Equal(right.CreatedAt) {
			return left.CreatedAt.After(right.CreatedAt)
		}
		return orders[i].ID().String() < orders[j].ID().String()
	})
	return orders
}

// Sizes returns the current size of each partition.
func (b *Board) Sizes() map[ports.Partition]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sizes := make(map[ports.Partition]int, len(ports.Partitions()))
	for _, p := range ports.Partitions() {
		sizes[p] = 0
	}
	for _, loc := range b.location {
		sizes[loc]++
	}
	return sizes
}

// Replace swaps the content of one partition with freshly fetched orders.
// Orders with a staged update in flight keep their current state and
// location, and an incoming order is removed from any other partition it
// was in, so it never appears twice.
func (b *Board) Replace(p ports.Partition, orders []*order.Order) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for key, loc := range b.location {
		if loc != p {
			continue
		}
		if _, busy := b.staged[key]; busy {
			continue
		}
		delete(b.orders, key)
		delete(b.location, key)
	}

	for _, o := range orders {
		key := o.ID().String()
		if _, busy := b.staged[key]; busy {
			continue
		}
		b.orders[key] = o
		b.location[key] = p
	}
	return nil
}

// Stage applies a tentative transition to the order with the given ID and
// acquires its busy flag. If fn fails the order is restored and nothing is
// staged.
func (b *Board) Stage(id kernel.ID, fn func(*order.Order) error) (ports.StagedUpdate, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := id.String()
	o, ok := b.orders[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", key)
	}
	if _, busy := b.staged[key]; busy {
		return nil, ports.ErrOrderBusy
	}

	snapshot := o.Snapshot()
	if err := fn(o); err != nil {
		o.Restore(snapshot)
		return nil, err
	}

	token := uuid.New()
	b.staged[key] = token

	return &stagedUpdate{
		board:    b,
		token:    token,
		key:      key,
		order:    o,
		snapshot: snapshot,
	}, nil
}

// stagedUpdate implements ports.StagedUpdate. Settling twice is an error;
// both outcomes release the busy flag.
type stagedUpdate struct {
	board    *Board
	token    uuid.UUID
	key      string
	order    *order.Order
	snapshot *order.Order
	settled  bool
}

func (s *stagedUpdate) Token() uuid.UUID {
	return s.token
}

func (s *stagedUpdate) Order() *order.Order {
	return s.order
}

func (s *stagedUpdate) Commit(to ports.Partition) error {
	if err := to.Validate(); err != nil {
		return err
	}

	s.board.mu.Lock()
	defer s.board.mu.Unlock()

	if s.settled {
		return errs.NewValueIsInvalidError("staged update is already settled")
	}
	s.settled = true

	s.board.location[s.key] = to
	delete(s.board.staged, s.key)
	return nil
}

func (s *stagedUpdate) Rollback() error {
	s.board.mu.Lock()
	defer s.board.mu.Unlock()

	if s.settled {
		return errs.NewValueIsInvalidError("staged update is already settled")
	}
	s.settled = true

	s.order.Restore(s.snapshot)
	delete(s.board.staged, s.key)
	return nil
}
