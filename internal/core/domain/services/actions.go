package services

import (
	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
)

// Action names a lifecycle transition a shipper may trigger on an order.
type Action string

const (
	ActionClaim    Action = "claim"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// ActionPlanner is a domain service that computes the set of transitions
// legal for a given (order status, assignment, shipper) triple. The view
// layer must never offer an action the state machine would reject, so this
// is the single source of that legality check on the client. The remote
// service re-validates every action regardless.
type ActionPlanner struct{}

// NewActionPlanner creates a new ActionPlanner instance.
func NewActionPlanner() ActionPlanner {
	return ActionPlanner{}
}

// AllowedActions returns the transitions the given shipper may trigger on
// the order, in a stable order. Terminal and Unknown orders allow none.
func (p ActionPlanner) AllowedActions(o *order.Order, shipperID kernel.ID) []Action {
	actions := make([]Action, 0, 2)

	if o == nil || o.Validate() != nil || shipperID.Validate() != nil {
		return actions
	}

	switch o.Status() {
	case order.New:
		actions = append(actions, ActionClaim, ActionCancel)
	case order.Claimed:
		if o.IsAssignedTo(shipperID) {
			actions = append(actions, ActionComplete, ActionCancel)
		}
	}

	return actions
}
