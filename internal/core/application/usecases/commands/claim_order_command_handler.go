package commands

import (
	"context"
	"errors"

	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/ports"
)

// ClaimOrderCommandHandler orchestrates the optimistic claim of an order.
// Stages the transition on the board, asks the remote service to confirm it,
// then commits the order into the in-progress partition or rolls the board
// back to its pre-claim state.
//
// A Conflict from the service means another shipper won the race; the
// rollback makes the order reappear as unclaimed until the next refresh
// removes it.
type ClaimOrderCommandHandler struct {
	board   Stager
	gateway LifecycleGateway
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(board Stager, gateway LifecycleGateway) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		board:   board,
		gateway: gateway,
	}
}

// Handle processes the claim command. The board transition runs first, so an
// order that is already claimed, busy, or unknown fails fast without a
// network call.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	staged, err := h.board.Stage(command.OrderID(), func(o *order.Order) error {
		return o.Claim(command.ShipperID())
	})
	if err != nil {
		return err
	}

	if err := h.gateway.Claim(ctx, command.OrderID(), command.ShipperID()); err != nil {
		return errors.Join(err, staged.Rollback())
	}

	return staged.Commit(ports.PartitionMine)
}
