package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"paytrack/internal/application/dto"
	"paytrack/internal/application/service"
	"paytrack/internal/pkg/logger"
)

// UserHandler handles user account endpoints.
type UserHandler struct {
	userService service.UserService
	log         logger.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, log logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// Register creates the user if it does not exist yet and returns it.
func (h *UserHandler) Register(c echo.Context) error {
	var req dto.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	user, err := h.userService.GetOrCreateUser(c.Request().Context(), req)
	if err != nil {
		h.log.Error("Failed to register user", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Get returns a user by ID.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// LinkLine attaches a LINE account for push delivery.
func (h *UserHandler) LinkLine(c echo.Context) error {
	var req dto.LinkLineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if req.UserID == "" || req.LineUserID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id and line_user_id are required"})
	}

	if err := h.userService.LinkLine(c.Request().Context(), req); err != nil {
		h.log.Error("Failed to link LINE account", err)
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateNotifyTime changes the user's default delivery time.
func (h *UserHandler) UpdateNotifyTime(c echo.Context) error {
	var req dto.UpdateNotifyTimeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	req.UserID = c.Param("id")

	if err := h.userService.UpdateNotifyTime(c.Request().Context(), req); err != nil {
		h.log.Error("Failed to update notify time", err)
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user together with their reminders and notifications.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		h.log.Error("Failed to delete user", err)
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
