package commands

import (
	"errors"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a shipper rejecting an unclaimed order or
// abandoning one of their claimed orders. Applied optimistically.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	shipperID kernel.ID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the given order on behalf
// of the given shipper. Both identifiers must be valid.
func NewCancelOrderCommand(orderID, shipperID kernel.ID) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setShipperID(shipperID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// ShipperID returns the identifier of the cancelling shipper.
func (c CancelOrderCommand) ShipperID() kernel.ID {
	return c.shipperID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setShipperID(shipperID kernel.ID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
