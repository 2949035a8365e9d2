package commands

import (
	"context"
	"errors"

	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/ports"
)

// CompleteOrderCommandHandler orchestrates the optimistic completion of a
// claimed order. Only the assigned shipper can complete an order; the state
// machine enforces that before any network call is made.
type CompleteOrderCommandHandler struct {
	board   Stager
	gateway LifecycleGateway
}

// NewCompleteOrderCommandHandler creates a handler for complete operations.
func NewCompleteOrderCommandHandler(board Stager, gateway LifecycleGateway) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		board:   board,
		gateway: gateway,
	}
}

// Handle processes the complete command. On success the order lands in the
// delivered partition; on rejection or network failure the board reverts to
// the pre-call state.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	staged, err := h.board.Stage(command.OrderID(), func(o *order.Order) error {
		return o.Complete(command.ShipperID())
	})
	if err != nil {
		return err
	}

	if err := h.gateway.Complete(ctx, command.OrderID(), command.ShipperID()); err != nil {
		return errors.Join(err, staged.Rollback())
	}

	return staged.Commit(ports.PartitionDone)
}
