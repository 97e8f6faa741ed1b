package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahyog/medical-store/internal/api/metrics"
	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  publicUser `json:"user"`
}

// Register creates a new user account and returns a bearer token for it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials), errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error during registration"})
		}
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: toPublicUser(user)})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials), errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error during login"})
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: toPublicUser(user)})
}
