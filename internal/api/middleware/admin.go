package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahyog/medical-store/internal/api/metrics"
	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

// RequireAdmin enforces the admin role with a fresh store read. The role
// embedded in the token is deliberately not trusted here: a token issued
// before a role change would otherwise keep its stale privileges until
// expiry. Must run after Auth.
func RequireAdmin(users ports.RoleReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				metrics.AuthDeniedTotal.WithLabelValues("bad_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication token required")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthDeniedTotal.WithLabelValues("not_admin").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "admin access required")
				}
				metrics.AuthDeniedTotal.WithLabelValues("role_check_failed").Inc()
				return echo.NewHTTPError(http.StatusInternalServerError, "error checking admin status")
			}

			if !user.IsAdmin() {
				metrics.AuthDeniedTotal.WithLabelValues("not_admin").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}

			return next(c)
		}
	}
}
