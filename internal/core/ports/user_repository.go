package ports

import (
	"context"

	"github.com/sahyog/medical-store/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// unique email index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateAddress mutates the address field only and returns the
	// updated user. Role and email are immutable through the public API.
	UpdateAddress(ctx context.Context, id, address string) (*domain.User, error)
	// ClaimFirstAdmin atomically claims the one-time first-admin slot.
	// Exactly one caller ever receives true.
	ClaimFirstAdmin(ctx context.Context) (bool, error)
	// ReleaseFirstAdmin returns the slot after a claim whose user insert
	// subsequently failed, so the next registration can claim it.
	ReleaseFirstAdmin(ctx context.Context) error
}

// RoleReader is the narrow read interface the admin gate needs to
// re-check a user's current role on every admin-gated request.
type RoleReader interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
