package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. A missing id means the middleware never ran on this route,
// which is a wiring bug surfaced to the client as 401 rather than a panic.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
