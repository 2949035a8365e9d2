package queries

import (
	"errors"
	"time"

	"shipper/internal/core/ports"
	"shipper/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves one partition of the order board for display.
//
// Example:
//
//	query, err := NewListOrdersQuery(ports.PartitionMine)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := NewListOrdersQueryHandler(board).Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	partition ports.Partition

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the given partition.
// The partition must be one of the four known groupings.
func NewListOrdersQuery(partition ports.Partition) (ListOrdersQuery, error) {
	if err := partition.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		partition: partition,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Partition returns the requested partition.
func (q ListOrdersQuery) Partition() ports.Partition {
	return q.partition
}

// ListOrdersQueryResponse is the list-row projection of one order:
// everything a partition screen shows without opening the detail.
type ListOrdersQueryResponse struct {
	ID            string
	Code          string
	Status        string
	RecipientName string
	Address       string
	Phone         string
	PaymentMethod string
	DeliveryFee   int64
	TotalPrice    int64
	OrderDate     time.Time
}
