package commands

import (
	"context"
	"errors"

	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/ports"
)

// CancelOrderCommandHandler orchestrates the optimistic cancellation of an
// order. A New order can be rejected by any shipper; a Claimed one only by
// its assignee. The assignment is kept on the cancelled order so the record
// shows who abandoned it.
type CancelOrderCommandHandler struct {
	board   Stager
	gateway LifecycleGateway
}

// NewCancelOrderCommandHandler creates a handler for cancel operations.
func NewCancelOrderCommandHandler(board Stager, gateway LifecycleGateway) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		board:   board,
		gateway: gateway,
	}
}

// Handle processes the cancel command. On success the order lands in the
// cancelled partition; on rejection or network failure the board reverts to
// the pre-call state.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	staged, err := h.board.Stage(command.OrderID(), func(o *order.Order) error {
		return o.Cancel(command.ShipperID())
	})
	if err != nil {
		return err
	}

	if err := h.gateway.Cancel(ctx, command.OrderID(), command.ShipperID()); err != nil {
		return errors.Join(err, staged.Rollback())
	}

	return staged.Commit(ports.PartitionCancelled)
}
