package services

// OrderStats is a derived aggregate of partition sizes, recomputed on every
// successful fetch cycle. It has no identity and is never persisted; it
// exists only as a snapshot for dashboard display.
type OrderStats struct {
	NewOrders       int
	ClaimedOrders   int
	CompletedOrders int
	CancelledOrders int
}

// Total returns the number of orders across all partitions.
func (s OrderStats) Total() int {
	return s.NewOrders + s.ClaimedOrders + s.CompletedOrders + s.CancelledOrders
}

// CompletionRate returns the percentage of settled orders that were
// delivered, in the range [0, 100]. When no order has settled yet
// (no completed and no cancelled orders) the rate is defined as 0 rather
// than performing an undefined division.
func (s OrderStats) CompletionRate() float64 {
	settled := s.CompletedOrders + s.CancelledOrders
	if settled == 0 {
		return 0
	}
	return float64(s.CompletedOrders) / float64(settled) * 100
}

// StatsCalculator is a domain service that derives OrderStats from partition
// sizes. It carries no state; it exists so the derivation rules (including
// the zero-denominator guard in CompletionRate) live in one place.
type StatsCalculator struct{}

// NewStatsCalculator creates a new StatsCalculator instance.
func NewStatsCalculator() StatsCalculator {
	return StatsCalculator{}
}

// Calculate builds an OrderStats snapshot from the current partition sizes.
func (c StatsCalculator) Calculate(newCount, claimedCount, completedCount, cancelledCount int) OrderStats {
	return OrderStats{
		NewOrders:       newCount,
		ClaimedOrders:   claimedCount,
		CompletedOrders: completedCount,
		CancelledOrders: cancelledCount,
	}
}
