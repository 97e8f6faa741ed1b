package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := *p
	created.ID = fmt.Sprintf("prod_%d", r.nextID)
	r.products[created.ID] = &created
	return &created, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[p.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return p, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func TestProductService_CreateAndList(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Aspirin", Price: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Aspirin" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestProductService_UpdateUnknownID(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", ports.CreateProductInput{Name: "X", Price: 1})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Aspirin", Price: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}
}
