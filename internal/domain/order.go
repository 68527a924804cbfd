package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is expected out of s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// OrderItem snapshots a cart line at checkout. Total is the line price
// in the chosen unit times quantity, rounded to the nearest rupee.
type OrderItem struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Price        float64 `json:"price"`
	Quantity     float64 `json:"quantity"`
	QuantityUnit Unit    `json:"quantityUnit"`
	Total        int64   `json:"total"`
}

// Order is immutable after checkout except for its status. Purchaser
// fields are denormalized copies; later profile edits do not touch
// past orders.
type Order struct {
	ID          string      `json:"id"`
	UserName    string      `json:"userName"`
	UserPhone   string      `json:"userPhone"`
	UserAddress string      `json:"userAddress"`
	Items       []OrderItem `json:"items"`
	TotalAmount int64       `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Analytics is recomputed on demand from the order and user buckets.
type Analytics struct {
	TotalOrders   int   `json:"totalOrders"`
	TotalUsers    int   `json:"totalUsers"`
	TotalRevenue  int64 `json:"totalRevenue"`
	PendingOrders int   `json:"pendingOrders"`
}
