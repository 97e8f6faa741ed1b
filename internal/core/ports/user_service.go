package ports

import (
	"context"

	"github.com/sahyog/medical-store/internal/core/domain"
)

// UserService exposes profile operations for the authenticated user.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateAddress(ctx context.Context, userID, address string) (*domain.User, error)
}
