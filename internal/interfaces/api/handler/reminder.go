package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"paytrack/internal/application/dto"
	"paytrack/internal/application/service"
	"paytrack/internal/pkg/logger"
)

// ReminderHandler handles payment reminder endpoints.
type ReminderHandler struct {
	reminderService service.ReminderService
	log             logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService, log: log}
}

// Create stores a new reminder and schedules its notification when enabled.
func (h *ReminderHandler) Create(c echo.Context) error {
	var req dto.CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	reminder, err := h.reminderService.CreateReminder(c.Request().Context(), req)
	if err != nil {
		h.log.Error("Failed to create reminder", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, reminder)
}

// Update replaces a reminder's fields and re-schedules or cancels its notification.
func (h *ReminderHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid reminder id"})
	}
	var req dto.UpdateReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	reminder, err := h.reminderService.UpdateReminder(c.Request().Context(), id, req)
	if err != nil {
		h.log.Error("Failed to update reminder", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminder)
}

// Toggle flips the enabled flag, scheduling or cancelling accordingly.
func (h *ReminderHandler) Toggle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid reminder id"})
	}
	var req dto.ToggleReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	reminder, err := h.reminderService.ToggleReminder(c.Request().Context(), id, req.UserID)
	if err != nil {
		h.log.Error("Failed to toggle reminder", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminder)
}

// Delete removes a reminder and cancels its notification.
func (h *ReminderHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid reminder id"})
	}

	if err := h.reminderService.DeleteReminder(c.Request().Context(), id, c.QueryParam("user_id")); err != nil {
		h.log.Error("Failed to delete reminder", err)
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns all reminders for a user.
func (h *ReminderHandler) List(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	reminders, err := h.reminderService.ListReminders(c.Request().Context(), userID)
	if err != nil {
		h.log.Error("Failed to list reminders", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminders)
}
