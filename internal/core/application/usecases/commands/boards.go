// Package commands contains business operations that modify client state.
// Implements the Command pattern for write operations in the CQRS
// architecture. Lifecycle commands follow a consistent two-phase pattern:
// stage the transition optimistically on the board, confirm it with the
// remote service, then commit or roll back.
package commands

import (
	"context"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/ports"
)

// Narrow views of the outbound ports, scoped to what command handlers
// actually touch. Handlers depend on these rather than the full port
// interfaces.
type (
	// Stager stages optimistic lifecycle transitions on the order board.
	Stager interface {
		Stage(id kernel.ID, fn func(*order.Order) error) (ports.StagedUpdate, error)
	}

	// Refresher swaps board partitions with freshly fetched orders.
	Refresher interface {
		Replace(p ports.Partition, orders []*order.Order) error
	}

	// LifecycleGateway confirms staged transitions with the remote service.
	LifecycleGateway interface {
		Claim(ctx context.Context, orderID, shipperID kernel.ID) error
		Complete(ctx context.Context, orderID, shipperID kernel.ID) error
		Cancel(ctx context.Context, orderID, shipperID kernel.ID) error
	}

	// FetchGateway retrieves the board's source data from the remote service.
	FetchGateway interface {
		FetchNew(ctx context.Context) ([]*order.Order, error)
		FetchAssigned(ctx context.Context, shipperID kernel.ID) (ports.AssignedOrders, error)
	}

	// SessionCleaner discards the stored session.
	SessionCleaner interface {
		Clear(ctx context.Context) error
	}
)
