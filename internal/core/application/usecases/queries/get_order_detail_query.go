package queries

import (
	"errors"
	"time"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/services"
	"shipper/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery retrieves the full detail of one order, including the
// product lines and the set of lifecycle actions the requesting shipper may
// take on it.
type GetOrderDetailQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	shipperID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a detail query for the given order on
// behalf of the given shipper.
func NewGetOrderDetailQuery(orderID, shipperID kernel.ID) (GetOrderDetailQuery, error) {
	detailQuery := GetOrderDetailQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		detailQuery.setOrderID(orderID),
		detailQuery.setShipperID(shipperID),
	); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return detailQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailQueryIsNotConstructed if validation fails.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderDetailQuery) OrderID() kernel.ID {
	return q.orderID
}

// ShipperID returns the identifier of the requesting shipper.
func (q GetOrderDetailQuery) ShipperID() kernel.ID {
	return q.shipperID
}

func (q *GetOrderDetailQuery) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderDetailQuery) setShipperID(shipperID kernel.ID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	q.shipperID = shipperID
	return nil
}

// ProductLineResponse is one ordered line item in the detail projection.
type ProductLineResponse struct {
	ProductID string
	Name      string
	UnitPrice int64
	Quantity  int
	LinePrice int64
}

// GetOrderDetailQueryResponse is the full order projection: list-row fields
// plus product lines, the assignment as the client knows it, and the legal
// actions for the requesting shipper. AllowedActions never offers an action
// the state machine would reject.
type GetOrderDetailQueryResponse struct {
	ID            string
	Code          string
	Status        string
	RecipientName string
	Address       string
	Phone         string
	PaymentMethod string
	DeliveryFee   int64
	TotalPrice    int64
	Products      []ProductLineResponse
	AssignedToMe  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	OrderDate     time.Time

	AllowedActions []services.Action
}
