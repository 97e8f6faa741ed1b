package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

// ProductService implements catalog use cases. Reads are public; writes
// reach this service only after the admin gate has passed.
type ProductService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewProductService(products ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	created, err := s.products.Create(ctx, &domain.Product{
		Name:     in.Name,
		Price:    in.Price,
		ImageURL: in.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.CreateProductInput) (*domain.Product, error) {
	return s.products.Update(ctx, &domain.Product{
		ID:       id,
		Name:     in.Name,
		Price:    in.Price,
		ImageURL: in.ImageURL,
	})
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
