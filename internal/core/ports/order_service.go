package ports

import (
	"context"

	"github.com/sahyog/medical-store/internal/core/domain"
)

// OrderItemInput is a single requested line item.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// PlaceOrderInput carries all data needed to place an order. TotalPrice
// is trusted from the caller and stored without recomputation.
type PlaceOrderInput struct {
	UserID     string
	Items      []OrderItemInput
	TotalPrice float64
	// IdempotencyKey, when non-empty, makes a replayed request return
	// the originally created order instead of inserting a second one.
	IdempotencyKey string
}

// PlaceOrderResult is returned by the service after placing an order.
type PlaceOrderResult struct {
	Order *domain.Order
	// Replayed is true when the Idempotency-Key matched a previous order.
	Replayed bool
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Place(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error)
	ListAll(ctx context.Context) ([]*domain.OrderDetail, error)
}
