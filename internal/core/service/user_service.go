package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

// UserService implements profile operations for authenticated users.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateAddress mutates the address field only. Email and role stay as
// they are regardless of what the caller sends.
func (s *UserService) UpdateAddress(ctx context.Context, userID, address string) (*domain.User, error) {
	user, err := s.users.UpdateAddress(ctx, userID, address)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("user_id", userID).Msg("profile address updated")
	return user, nil
}
