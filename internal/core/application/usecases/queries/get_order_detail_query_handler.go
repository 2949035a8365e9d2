package queries

import (
	"context"

	"shipper/internal/core/domain/model/order"
	"shipper/internal/core/domain/services"
)

// GetOrderDetailQueryHandler fetches an order's detail from the remote
// service and projects it for display. The detail payload carries no
// assignee, so the handler overlays the assignment the board knows about
// before computing the allowed actions; without the overlay a claimed order
// would offer no actions to its own shipper.
type GetOrderDetailQueryHandler struct {
	board   BoardReader
	gateway DetailGateway
	planner services.ActionPlanner
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailQueryHandler(board BoardReader, gateway DetailGateway) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{
		board:   board,
		gateway: gateway,
		planner: services.NewActionPlanner(),
	}
}

// Handle executes the query. Returns an ObjectNotFoundError when the remote
// service does not know the order.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	fetched, err := h.gateway.FetchDetail(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	projected, err := h.overlayAssignment(fetched)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	products := projected.Products()
	lines := make([]ProductLineResponse, 0, len(products))
	for _, p := range products {
		lines = append(lines, ProductLineResponse{
			ProductID: p.ProductID().String(),
			Name:      p.Name(),
			UnitPrice: p.UnitPrice(),
			Quantity:  p.Quantity(),
			LinePrice: p.LinePrice(),
		})
	}

	return GetOrderDetailQueryResponse{
		ID:             projected.ID().String(),
		Code:           projected.Code(),
		Status:         projected.Status().String(),
		RecipientName:  projected.Recipient().FullName(),
		Address:        projected.Recipient().Address(),
		Phone:          projected.Recipient().Phone(),
		PaymentMethod:  projected.Payment().Method(),
		DeliveryFee:    projected.Payment().DeliveryFee(),
		TotalPrice:     projected.Payment().TotalPrice(),
		Products:       lines,
		AssignedToMe:   projected.IsAssignedTo(query.ShipperID()),
		CreatedAt:      projected.Timestamps().CreatedAt,
		UpdatedAt:      projected.Timestamps().UpdatedAt,
		OrderDate:      projected.Timestamps().OrderDate,
		AllowedActions: h.planner.AllowedActions(projected, query.ShipperID()),
	}, nil
}

// overlayAssignment restores the fetched order with the assignment the board
// holds for it, when the payload itself carries none.
func (h GetOrderDetailQueryHandler) overlayAssignment(fetched *order.Order) (*order.Order, error) {
	if fetched.Shipper() != nil || fetched.Status() == order.New {
		return fetched, nil
	}

	known, ok := h.board.Get(fetched.ID())
	if !ok || known.Shipper() == nil {
		return fetched, nil
	}

	return order.RestoreOrder(
		fetched.ID(),
		fetched.Code(),
		fetched.Recipient(),
		fetched.Payment(),
		fetched.Products(),
		fetched.Timestamps(),
		fetched.Status(),
		known.Shipper(),
	)
}
