package ports

import (
	"context"

	"github.com/sahyog/medical-store/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// ListWithRefs returns all orders with the owning user's email and
	// each line item's product name resolved for display.
	ListWithRefs(ctx context.Context) ([]*domain.OrderDetail, error)
}
