package ports

import (
	"context"

	"github.com/sahyog/medical-store/internal/core/domain"
)

// AuthService implements registration and login, issuing a signed
// bearer token on success.
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
