package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// OrderIdempotency remembers which Idempotency-Key values a user has
// already used to place an order, so a retried POST returns the original
// order instead of creating a second one.
// Keys have the form orders:idem:<user_id>:<key> and store the order id.
type OrderIdempotency struct {
	client *redis.Client
}

// NewOrderIdempotency creates an OrderIdempotency wrapping the given client.
func NewOrderIdempotency(client *redis.Client) *OrderIdempotency {
	return &OrderIdempotency{client: client}
}

// Lookup returns the order id previously recorded for (userID, key), if any.
func (o *OrderIdempotency) Lookup(ctx context.Context, userID, key string) (string, bool, error) {
	orderID, err := o.client.Get(ctx, o.key(userID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return orderID, true, nil
}

// Remember records the order created for (userID, key). Entries expire
// after idempotencyTTL.
func (o *OrderIdempotency) Remember(ctx context.Context, userID, key, orderID string) error {
	return o.client.Set(ctx, o.key(userID, key), orderID, idempotencyTTL).Err()
}

func (o *OrderIdempotency) key(userID, key string) string {
	return fmt.Sprintf("orders:idem:%s:%s", userID, key)
}
