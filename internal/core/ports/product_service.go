package ports

import (
	"context"

	"github.com/sahyog/medical-store/internal/core/domain"
)

// CreateProductInput carries the fields an admin supplies for a new or
// updated catalog entry.
type CreateProductInput struct {
	Name     string
	Price    float64
	ImageURL string
}

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
