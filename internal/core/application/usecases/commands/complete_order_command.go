package commands

import (
	"errors"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a shipper reporting one of their claimed
// orders as delivered. Applied optimistically like a claim.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	shipperID kernel.ID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the given order on
// behalf of the given shipper. Both identifiers must be valid.
func NewCompleteOrderCommand(orderID, shipperID kernel.ID) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setShipperID(shipperID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// ShipperID returns the identifier of the reporting shipper.
func (c CompleteOrderCommand) ShipperID() kernel.ID {
	return c.shipperID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setShipperID(shipperID kernel.ID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
