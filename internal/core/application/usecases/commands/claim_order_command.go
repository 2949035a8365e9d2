package commands

import (
	"errors"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a shipper's request to take an unclaimed order.
// The claim is applied optimistically: the order moves to the shipper's
// in-progress list immediately and is reverted if the remote service refuses.
//
// Example:
//
//	cmd, err := NewClaimOrderCommand(orderID, shipperID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewClaimOrderCommandHandler(board, gateway)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("claim rejected: %v", err)
//	}
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	shipperID kernel.ID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim the given order for the
// given shipper. Both identifiers must be valid.
func NewClaimOrderCommand(orderID, shipperID kernel.ID) (ClaimOrderCommand, error) {
	claimCommand := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setOrderID(orderID),
		claimCommand.setShipperID(shipperID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClaimOrderCommandIsNotConstructed if validation fails.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// ShipperID returns the identifier of the claiming shipper.
func (c ClaimOrderCommand) ShipperID() kernel.ID {
	return c.shipperID
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setShipperID(shipperID kernel.ID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
