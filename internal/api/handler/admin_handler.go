package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corebank/banking-system/internal/core/domain"
	"github.com/corebank/banking-system/internal/core/ports"
)

// AdminHandler handles the administrator user-management routes.
type AdminHandler struct {
	userService ports.UserService
}

func NewAdminHandler(userService ports.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers returns every account. Password hashes never leave the domain
// type (json:"-").
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  messageResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUserStatus toggles an account active or inactive.
//
// @Summary      Activate or deactivate a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      userStatusRequest  true  "New status"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /admin/users/{id}/status [put]
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	var req userStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, err := h.userService.UpdateStatus(c.Request().Context(), c.Param("id"), *req.Active)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
	return c.JSON(http.StatusOK, user)
}
