package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahyog/medical-store/internal/core/domain"
)

type stubUserRepo struct {
	users        map[string]*domain.User // keyed by email
	nextID       int
	adminClaimed bool
	released     bool
	createErr    error
	claimErr     error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateAddress(_ context.Context, id, address string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u.Address = address
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ClaimFirstAdmin(_ context.Context) (bool, error) {
	if r.claimErr != nil {
		return false, r.claimErr
	}
	if r.adminClaimed {
		return false, nil
	}
	r.adminClaimed = true
	return true, nil
}

func (r *stubUserRepo) ReleaseFirstAdmin(_ context.Context) error {
	r.adminClaimed = false
	r.released = true
	return nil
}

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_FirstUserIsAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, first, err := svc.Register(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("register first: %v", err)
	}
	if first.Role != domain.RoleAdmin {
		t.Fatalf("expected first user to be admin, got %q", first.Role)
	}

	_, second, err := svc.Register(context.Background(), "b@x.com", "pw2")
	if err != nil {
		t.Fatalf("register second: %v", err)
	}
	if second.Role != domain.RoleUser {
		t.Fatalf("expected second user to be %q, got %q", domain.RoleUser, second.Role)
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, user, err := svc.Register(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := repo.users[user.Email]
	if stored.PasswordHash == "s3cret" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), "", "pw"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "a@x.com", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "Bob@X.com", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob@x.com", "pw2"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Register_ReleasesAdminClaimOnInsertFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New("insert failed")
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "a@x.com", "pw"); err == nil {
		t.Fatalf("expected error from failed insert")
	}
	if !repo.released {
		t.Fatalf("first-admin claim not released after failed insert")
	}

	// Next registration should still become admin.
	repo.createErr = nil
	_, user, err := svc.Register(context.Background(), "b@x.com", "pw")
	if err != nil {
		t.Fatalf("register after release: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin after released claim, got %q", user.Role)
	}
}

func TestAuthService_Login_TokenRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "carol@x.com", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != user.ID {
		t.Fatalf("expected user_id %q in claims, got %v", user.ID, claims["user_id"])
	}
	if claims["role"] != user.Role {
		t.Fatalf("expected role %q in claims, got %v", user.Role, claims["role"])
	}
}

func TestAuthService_ExpiredTokenFailsVerification(t *testing.T) {
	repo := newStubUserRepo()
	// A service with a TTL in the past issues already-expired tokens.
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
	svc.tokenTTL = -time.Minute

	if _, _, err := svc.Register(context.Background(), "dave@x.com", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "dave@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err == nil && parsed.Valid {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestAuthService_Login_IdenticalErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "erin@x.com", "goodpass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "erin@x.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@x.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("error shapes differ: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}
