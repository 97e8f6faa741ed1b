package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sahyog/medical-store/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@x.com" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: "u1", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", `{"email":"a@x.com","password":"pw1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "u1" || user["email"] != "a@x.com" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password must never be serialized")
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", `{"email":"a@x.com","password":"pw"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrMissingCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", `{"email":"a@x.com"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/register", "not-json")
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "token456", &domain.User{ID: "u2", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth/login", `{"email":"b@x.com","password":"pw2"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token456" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

// Wrong password and unknown email must be indistinguishable on the wire.
func TestAuthHandler_Login_InvalidCredentialsShape(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c1, rec1 := postJSON(e, "/api/auth/login", `{"email":"b@x.com","password":"wrong"}`)
	_ = h.Login(c1)
	c2, rec2 := postJSON(e, "/api/auth/login", `{"email":"ghost@x.com","password":"pw"}`)
	_ = h.Login(c2)

	if rec1.Code != http.StatusBadRequest || rec2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", rec1.Code, rec2.Code)
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("error shapes differ: %s vs %s", rec1.Body.String(), rec2.Body.String())
	}
}
