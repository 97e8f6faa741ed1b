package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

// IdempotencyStore abstracts the replay guard (Redis) for order placement.
type IdempotencyStore interface {
	Lookup(ctx context.Context, userID, key string) (orderID string, ok bool, err error)
	Remember(ctx context.Context, userID, key, orderID string) error
}

// OrderService implements order placement and the admin list view.
type OrderService struct {
	orders ports.OrderRepository
	idem   IdempotencyStore
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, idem IdempotencyStore, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, idem: idem, log: log}
}

// Place validates and persists a new order for the authenticated user.
// The total price is stored as supplied by the client; it is not checked
// against catalog prices. When an idempotency key is provided and already
// seen for this user, the previously created order is returned instead.
func (s *OrderService) Place(ctx context.Context, in ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		items = append(items, domain.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		orderID, seen, err := s.idem.Lookup(ctx, in.UserID, in.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("idempotency lookup failed, placing anyway")
		} else if seen {
			existing, err := s.orders.FindByID(ctx, orderID)
			if err == nil {
				s.log.Info().Str("order_id", orderID).Str("user_id", in.UserID).Msg("idempotent replay")
				return &ports.PlaceOrderResult{Order: existing, Replayed: true}, nil
			}
			s.log.Warn().Err(err).Str("order_id", orderID).Msg("remembered order missing, placing anyway")
		}
	}

	order := &domain.Order{
		UserID:     in.UserID,
		Items:      items,
		TotalPrice: in.TotalPrice,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to place order")
		return nil, err
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, in.UserID, in.IdempotencyKey, created.ID); err != nil {
			s.log.Warn().Err(err).Str("order_id", created.ID).Msg("failed to record idempotency key")
		}
	}

	// The total is a client claim, not a catalog fact.
	s.log.Info().
		Str("order_id", created.ID).
		Str("user_id", in.UserID).
		Float64("total_price", created.TotalPrice).
		Int("items", len(created.Items)).
		Msg("order placed")

	return &ports.PlaceOrderResult{Order: created}, nil
}

// ListAll returns every order with user email and product names resolved.
func (s *OrderService) ListAll(ctx context.Context) ([]*domain.OrderDetail, error) {
	return s.orders.ListWithRefs(ctx)
}
