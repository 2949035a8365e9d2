package queries

import (
	"context"

	"shipper/internal/core/domain/model/order"
)

// ListOrdersQueryHandler projects one board partition into list rows.
// Reads the board as-is: an optimistic transition in flight is visible
// immediately, before the remote service has confirmed it.
type ListOrdersQueryHandler struct {
	board BoardReader
}

// NewListOrdersQueryHandler creates a handler for partition listings.
func NewListOrdersQueryHandler(board BoardReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{board: board}
}

// Handle executes the query. Rows come back newest order date first, the
// order the board maintains.
func (h ListOrdersQueryHandler) Handle(
	_ context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := h.board.List(query.Partition())
	rows := make([]ListOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, toListRow(o))
	}
	return rows, nil
}

func toListRow(o *order.Order) ListOrdersQueryResponse {
	return ListOrdersQueryResponse{
		ID:            o.ID().String(),
		Code:          o.Code(),
		Status:        o.Status().String(),
		RecipientName: o.Recipient().FullName(),
		Address:       o.Recipient().Address(),
		Phone:         o.Recipient().Phone(),
		PaymentMethod: o.Payment().Method(),
		DeliveryFee:   o.Payment().DeliveryFee(),
		TotalPrice:    o.Payment().TotalPrice(),
		OrderDate:     o.Timestamps().OrderDate,
	}
}
