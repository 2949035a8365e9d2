package commands

import (
	"errors"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/pkg/guard"
)

var ErrRefreshBoardCommandIsNotConstructed = errors.New(
	"RefreshBoardCommand must be created via NewRefreshBoardCommand constructor",
)

// RefreshBoardCommand triggers a full reload of the order board from the
// remote service: the shared unclaimed list plus the shipper's own three
// partitions.
type RefreshBoardCommand struct { //nolint:recvcheck //using for validation
	shipperID kernel.ID

	guard guard.ConstructorGuard
}

// NewRefreshBoardCommand creates a command to refresh the board for the
// given shipper.
func NewRefreshBoardCommand(shipperID kernel.ID) (RefreshBoardCommand, error) {
	refreshCommand := RefreshBoardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := refreshCommand.setShipperID(shipperID); err != nil {
		return RefreshBoardCommand{}, err
	}

	return refreshCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshBoardCommandIsNotConstructed if validation fails.
func (c RefreshBoardCommand) Validate() error {
	return c.guard.Validate(ErrRefreshBoardCommandIsNotConstructed)
}

// ShipperID returns the identifier of the shipper whose board to refresh.
func (c RefreshBoardCommand) ShipperID() kernel.ID {
	return c.shipperID
}

func (c *RefreshBoardCommand) setShipperID(shipperID kernel.ID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
