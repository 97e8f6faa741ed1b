package ports

import (
	"context"

	"github.com/sahyog/medical-store/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog entries.
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Update replaces name, price and image URL and returns the updated
	// document. Returns domain.ErrProductNotFound for an unknown id.
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
