package commands

import (
	"context"
	"errors"
	"sync"

	"shipper/internal/core/ports"
)

// RefreshBoardCommandHandler reloads the order board from the remote service.
// The unclaimed list and the shipper's assigned orders are fetched
// concurrently; each fetch that succeeds is applied even when the other
// fails, so one slow or broken endpoint cannot blank the whole board.
// Orders with an optimistic update in flight are left untouched by the
// board itself.
type RefreshBoardCommandHandler struct {
	board   Refresher
	gateway FetchGateway
}

// NewRefreshBoardCommandHandler creates a handler for board refreshes.
func NewRefreshBoardCommandHandler(board Refresher, gateway FetchGateway) RefreshBoardCommandHandler {
	return RefreshBoardCommandHandler{
		board:   board,
		gateway: gateway,
	}
}

// Handle processes the refresh command. Returns the joined errors of
// whichever fetches or partition swaps failed; a nil return means the whole
// board is fresh.
func (h RefreshBoardCommandHandler) Handle(ctx context.Context, command RefreshBoardCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		newErr   error
		ownedErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()

		unclaimed, err := h.gateway.FetchNew(ctx)
		if err != nil {
			newErr = err
			return
		}
		newErr = h.board.Replace(ports.PartitionNew, unclaimed)
	}()
	go func() {
		defer wg.Done()

		assigned, err := h.gateway.FetchAssigned(ctx, command.ShipperID())
		if err != nil {
			ownedErr = err
			return
		}
		ownedErr = errors.Join(
			h.board.Replace(ports.PartitionMine, assigned.Mine),
			h.board.Replace(ports.PartitionDone, assigned.Done),
			h.board.Replace(ports.PartitionCancelled, assigned.Cancelled),
		)
	}()
	wg.Wait()

	return errors.Join(newErr, ownedErr)
}
