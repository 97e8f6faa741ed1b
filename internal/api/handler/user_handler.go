package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahyog/medical-store/internal/core/domain"
	"github.com/sahyog/medical-store/internal/core/ports"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type profileResponse struct {
	User publicUser `json:"user"`
}

type updateProfileRequest struct {
	Address string `json:"address"`
}

type updateProfileResponse struct {
	Message string     `json:"message"`
	User    publicUser `json:"user"`
}

// Profile returns the caller's own account.
//
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Profile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error fetching profile"})
	}

	return c.JSON(http.StatusOK, profileResponse{User: toPublicUser(user)})
}

// UpdateProfile mutates the caller's address. Email and role cannot be
// changed through this endpoint.
//
// @Summary      Update the authenticated user's address
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "New address"
// @Success      200   {object}  updateProfileResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	user, err := h.userService.UpdateAddress(c.Request().Context(), userID, req.Address)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "server error updating profile"})
	}

	return c.JSON(http.StatusOK, updateProfileResponse{
		Message: "Profile updated!",
		User:    toPublicUser(user),
	})
}
