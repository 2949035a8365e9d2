package http

import (
	"time"

	"shipper/internal/core/application/usecases/queries"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderRow is the list projection of one order.
type OrderRow struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Status        string    `json:"status"`
	RecipientName string    `json:"recipientName"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	PaymentMethod string    `json:"paymentMethod"`
	DeliveryFee   int64     `json:"deliveryFee"`
	TotalPrice    int64     `json:"totalPrice"`
	OrderDate     time.Time `json:"orderDate"`
}

// ProductLine is one ordered line item in the detail projection.
type ProductLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LinePrice int64  `json:"linePrice"`
}

// OrderDetail is the full projection of one order, including the actions the
// requesting shipper may take on it.
type OrderDetail struct {
	OrderRow
	Products       []ProductLine `json:"products"`
	AssignedToMe   bool          `json:"assignedToMe"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	AllowedActions []string      `json:"allowedActions"`
}

// Stats carries the dashboard counters.
type Stats struct {
	NewOrders       int     `json:"newOrders"`
	ClaimedOrders   int     `json:"claimedOrders"`
	CompletedOrders int     `json:"completedOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
	Total           int     `json:"total"`
	CompletionRate  float64 `json:"completionRate"`
}

// Profile is the authenticated shipper's projection.
type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	IsActive bool   `json:"isActive"`
}

// Dashboard is the home screen payload: who is logged in plus the counters.
type Dashboard struct {
	Shipper Profile `json:"shipper"`
	Stats   Stats   `json:"stats"`
}

func toOrderRow(row queries.ListOrdersQueryResponse) OrderRow {
	return OrderRow{
		ID:            row.ID,
		Code:          row.Code,
		Status:        row.Status,
		RecipientName: row.RecipientName,
		Address:       row.Address,
		Phone:         row.Phone,
		PaymentMethod: row.PaymentMethod,
		DeliveryFee:   row.DeliveryFee,
		TotalPrice:    row.TotalPrice,
		OrderDate:     row.OrderDate,
	}
}

func toOrderDetail(detail queries.GetOrderDetailQueryResponse) OrderDetail {
	products := make([]ProductLine, 0, len(detail.Products))
	for _, p := range detail.Products {
		products = append(products, ProductLine{
			ProductID: p.ProductID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  p.Quantity,
			LinePrice: p.LinePrice,
		})
	}

	actions := make([]string, 0, len(detail.AllowedActions))
	for _, a := range detail.AllowedActions {
		actions = append(actions, string(a))
	}

	return OrderDetail{
		OrderRow: OrderRow{
			ID:            detail.ID,
			Code:          detail.Code,
			Status:        detail.Status,
			RecipientName: detail.RecipientName,
			Address:       detail.Address,
			Phone:         detail.Phone,
			PaymentMethod: detail.PaymentMethod,
			DeliveryFee:   detail.DeliveryFee,
			TotalPrice:    detail.TotalPrice,
			OrderDate:     detail.OrderDate,
		},
		Products:       products,
		AssignedToMe:   detail.AssignedToMe,
		CreatedAt:      detail.CreatedAt,
		UpdatedAt:      detail.UpdatedAt,
		AllowedActions: actions,
	}
}

func toStats(stats queries.GetOrderStatsQueryResponse) Stats {
	return Stats{
		NewOrders:       stats.NewOrders,
		ClaimedOrders:   stats.ClaimedOrders,
		CompletedOrders: stats.CompletedOrders,
		CancelledOrders: stats.CancelledOrders,
		Total:           stats.Total,
		CompletionRate:  stats.CompletionRate,
	}
}

func toProfile(profile queries.GetProfileQueryResponse) Profile {
	return Profile{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Phone:    profile.Phone,
		Avatar:   profile.Avatar,
		IsActive: profile.IsActive,
	}
}
