package domain

import "time"

// OrderItem is a single line item: a product reference plus quantity.
type OrderItem struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}

// Order is a placed purchase. Immutable after creation. The total price
// is supplied by the client and stored as-is; it is not recomputed from
// catalog prices.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user"`
	Items      []OrderItem `json:"products"`
	TotalPrice float64     `json:"totalPrice"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// OrderItemDetail is a line item with the product reference resolved to
// its display name.
type OrderItemDetail struct {
	ProductID   string `json:"product"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// OrderDetail is the admin list view of an order with user and product
// references resolved to display fields.
type OrderDetail struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user"`
	UserEmail  string            `json:"userEmail"`
	Items      []OrderItemDetail `json:"products"`
	TotalPrice float64           `json:"totalPrice"`
	CreatedAt  time.Time         `json:"createdAt"`
}
