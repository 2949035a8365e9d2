package queries

import (
	"errors"

	"shipper/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves the dashboard counters: per-partition sizes
// and the completion rate over settled orders.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a parameterless stats query.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse carries the dashboard counters.
// CompletionRate is completed over completed plus cancelled; zero when
// nothing has settled yet.
type GetOrderStatsQueryResponse struct {
	NewOrders       int
	ClaimedOrders   int
	CompletedOrders int
	CancelledOrders int
	Total           int
	CompletionRate  float64
}
