// Package ports defines the contracts between the application core and the
// outside world: the remote order service, the local in-memory order board,
// and the session store. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
)

// AssignedOrders is the result of a single assigned-orders fetch, already
// split into the three shipper-owned partitions.
type AssignedOrders struct {
	Mine      []*order.Order
	Done      []*order.Order
	Cancelled []*order.Order
}

// OrderGateway is the contract with the remote order service. It is the only
// component permitted to perform network I/O for orders.
//
// Implementations translate lifecycle operations into requests, normalize the
// differently shaped per-partition payloads into the Order aggregate, and map
// transport and upstream failures into the errs taxonomy (ObjectNotFound,
// Conflict, Unauthorized, NetworkUnavailable, ServerFailure). They perform no
// business-rule validation; that is the state machine's job.
type OrderGateway interface {
	// FetchNew retrieves all unclaimed orders, visible to every shipper.
	FetchNew(ctx context.Context) ([]*order.Order, error)

	// FetchAssigned retrieves every order owned by the shipper, split into
	// the mine/done/cancelled partitions in one round trip.
	FetchAssigned(ctx context.Context, shipperID kernel.ID) (AssignedOrders, error)

	// FetchMine retrieves the shipper's in-progress orders.
	FetchMine(ctx context.Context, shipperID kernel.ID) ([]*order.Order, error)

	// FetchDone retrieves the shipper's delivered orders.
	FetchDone(ctx context.Context, shipperID kernel.ID) ([]*order.Order, error)

	// FetchCancelled retrieves the shipper's cancelled orders.
	FetchCancelled(ctx context.Context, shipperID kernel.ID) ([]*order.Order, error)

	// FetchDetail retrieves one order by ID. A missing or invalid products
	// array in the payload is normalized to an empty slice.
	FetchDetail(ctx context.Context, orderID kernel.ID) (*order.Order, error)

	// Claim asks the service to assign the order to the shipper.
	// Returns a Conflict error when another shipper already holds it.
	Claim(ctx context.Context, orderID, shipperID kernel.ID) error

	// Complete reports the order as delivered.
	Complete(ctx context.Context, orderID, shipperID kernel.ID) error

	// Cancel reports the order as rejected or failed.
	Cancel(ctx context.Context, orderID, shipperID kernel.ID) error
}
