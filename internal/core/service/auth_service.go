package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

// passwordCost is the bcrypt work factor applied to every stored password.
const passwordCost = 12

// AuthService implements registration and login.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a new account and returns a signed token for it.
// The very first account ever created is promoted to admin; the slot is
// claimed atomically so concurrent first registrations cannot both win.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", nil, err
	}

	claimed, err := s.users.ClaimFirstAdmin(ctx)
	if err != nil {
		return "", nil, err
	}
	role := domain.RoleUser
	if claimed {
		role = domain.RoleAdmin
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if claimed {
			// Give the slot back so the next registration can become admin.
			if relErr := s.users.ReleaseFirstAdmin(ctx); relErr != nil {
				s.log.Warn().Err(relErr).Msg("failed to release first-admin claim")
			}
		}
		return "", nil, err
	}

	token, err := s.issueToken(created)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return token, created, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password collapse into the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
