// Package queries contains the read side of the CQRS architecture: board
// snapshots, order detail projections, dashboard counters, and the session
// profile. Handlers never mutate state; a query observing a staged optimistic
// update simply reports the board as it currently stands.
package queries

import (
	"context"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/domain/model/shipper"
	"shipper/internal/core/ports"
)

// Narrow views of the outbound ports, scoped to what query handlers read.
type (
	// BoardReader exposes the read side of the order board.
	BoardReader interface {
		Get(id kernel.ID) (*order.Order, bool)
		Partition(id kernel.ID) (ports.Partition, bool)
		List(p ports.Partition) []*order.Order
		Sizes() map[ports.Partition]int
	}

	// DetailGateway retrieves one order's full detail from the remote service.
	DetailGateway interface {
		FetchDetail(ctx context.Context, orderID kernel.ID) (*order.Order, error)
	}

	// SessionLoader reads the stored shipper profile.
	SessionLoader interface {
		Load(ctx context.Context) (*shipper.Shipper, error)
	}
)
