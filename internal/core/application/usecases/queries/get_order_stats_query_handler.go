package queries

import (
	"context"

	"shipper/internal/core/domain/services"
	"shipper/internal/core/ports"
)

// GetOrderStatsQueryHandler computes the dashboard counters from the current
// board sizes.
type GetOrderStatsQueryHandler struct {
	board      BoardReader
	calculator services.StatsCalculator
}

// NewGetOrderStatsQueryHandler creates a handler for dashboard stats.
func NewGetOrderStatsQueryHandler(board BoardReader) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{
		board:      board,
		calculator: services.NewStatsCalculator(),
	}
}

// Handle executes the stats query against the board as it currently stands.
func (h GetOrderStatsQueryHandler) Handle(
	_ context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	sizes := h.board.Sizes()
	stats := h.calculator.Calculate(
		sizes[ports.PartitionNew],
		sizes[ports.PartitionMine],
		sizes[ports.PartitionDone],
		sizes[ports.PartitionCancelled],
	)

	return GetOrderStatsQueryResponse{
		NewOrders:       stats.NewOrders,
		ClaimedOrders:   stats.ClaimedOrders,
		CompletedOrders: stats.CompletedOrders,
		CancelledOrders: stats.CancelledOrders,
		Total:           stats.Total(),
		CompletionRate:  stats.CompletionRate(),
	}, nil
}
