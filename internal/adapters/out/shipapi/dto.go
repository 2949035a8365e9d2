// Package shipapi provides the HTTP client for the remote order service and
// the mapping between its wire payloads and the order domain aggregate. The
// service returns differently shaped payloads per endpoint; all of them are
// normalized here, at the boundary, so the core only ever sees restored
// aggregates.
package shipapi

import (
	"encoding/json"
	"time"

	"shipper/internal/core/domain/model/kernel"
	"shipper/internal/core/domain/model/order"
)

// orderDTO is the flat order object returned by the unclaimed-orders list and
// the order detail endpoint. Field names follow the service's mixed
// snake/camel convention.
type orderDTO struct {
	ID            string          `json:"_id"`
	OrderCode     string          `json:"orderCode"`
	FullName      string          `json:"full_name"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	PaymentMethod string          `json:"paymentMethod"`
	Fee           int64           `json:"fee"`
	TotalPrice    int64           `json:"total_price"`
	Status        string          `json:"status"`
	Products      json.RawMessage `json:"products"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
	DateOrder     string          `json:"dateOrder"`
}

// wrappedOrderDTO is one entry of the assigned-orders endpoint. The order
// itself sits under "sellers"; the authoritative lifecycle status and
// timestamps sit on the wrapper.
type wrappedOrderDTO struct {
	Sellers   orderDTO `json:"sellers"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// assignedOrdersDTO is the full assigned-orders response, grouped by
// lifecycle stage.
type assignedOrdersDTO struct {
	Processing []wrappedOrderDTO `json:"processing"`
	Delivered  []wrappedOrderDTO `json:"delivered"`
	Cancelled  []wrappedOrderDTO `json:"cancelled"`
}

// productLineDTO is one ordered line item. The line price sits on the line,
// the catalog data under "product".
type productLineDTO struct {
	ID       string        `json:"_id"`
	Price    int64         `json:"price"`
	Quantity int           `json:"quantity"`
	Product  productRefDTO `json:"product"`
}

type productRefDTO struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// claimBodyDTO is the claim request body. The service spells the order key
// "orderID" here and "orderId" on complete and cancel; both spellings are
// part of its contract.
type claimBodyDTO struct {
	ID      string `json:"id"`
	OrderID string `json:"orderID"`
}

type settleBodyDTO struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
}

// messageDTO is the error envelope the service uses for rejected operations.
type messageDTO struct {
	Message string `json:"message"`
}

// parseTime decodes a service timestamp. The service emits RFC 3339 with
// fractional seconds; anything unparseable becomes the zero time, since
// timestamps are display-only.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseProducts decodes the raw products array. A missing, null or malformed
// array degrades to an empty slice, and line items the domain rejects are
// dropped; a broken product list must not hide the order itself.
func parseProducts(raw json.RawMessage) []order.Product {
	products := []order.Product{}
	if len(raw) == 0 {
		return products
	}

	var lines []productLineDTO
	if err := json.Unmarshal(raw, &lines); err != nil {
		return products
	}

	for _, line := range lines {
		productID, err := kernel.NewID(line.Product.ID)
		if err != nil {
			continue
		}
		p, err := order.NewProduct(productID, line.Product.Name, line.Price, line.Quantity, line.Price*int64(line.Quantity))
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	return products
}

// toDomain converts a flat order payload to an order domain aggregate.
// The status vocabulary is normalized here; unrecognized values restore as
// Unknown rather than being dropped. shipperID carries the assignment when
// the endpoint implies one (assigned-orders fetches), nil otherwise.
func toDomain(dto orderDTO, shipperID *kernel.ID) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(dto.PaymentMethod, dto.Fee, dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	status := order.StatusFromUpstream(dto.Status)
	if status == order.New {
		// The unclaimed list can momentarily still carry an order the
		// requester owns elsewhere; a New order never has an assignee.
		shipperID = nil
	}

	return order.RestoreOrder(
		id,
		dto.OrderCode,
		order.NewRecipient(dto.FullName, dto.Address, dto.Phone),
		payment,
		parseProducts(dto.Products),
		order.Timestamps{
			CreatedAt: parseTime(dto.CreatedAt),
			UpdatedAt: parseTime(dto.UpdatedAt),
			OrderDate: parseTime(dto.DateOrder),
		},
		status,
		shipperID,
	)
}

// toDomainWrapped converts an assigned-orders entry. The wrapper's status and
// timestamps take precedence over whatever the inner order carries, matching
// how the service versions them.
func toDomainWrapped(dto wrappedOrderDTO, shipperID kernel.ID) (*order.Order, error) {
	flat := dto.Sellers
	if dto.Status != "" {
		flat.Status = dto.Status
	}
	if dto.CreatedAt != "" {
		flat.CreatedAt = dto.CreatedAt
	}
	if dto.UpdatedAt != "" {
		flat.UpdatedAt = dto.UpdatedAt
	}
	return toDomain(flat, &shipperID)
}
