package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"paytrack/internal/application/service"
	"paytrack/internal/pkg/logger"
)

// NotificationHandler exposes the notification schedule for inspection and
// test delivery. The reminder endpoints manage the schedule indirectly; this
// handler is the operational window into it.
type NotificationHandler struct {
	notificationService service.NotificationService
	log                 logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, log: log}
}

type permissionsResponse struct {
	Granted bool `json:"granted"`
}

type testNotificationRequest struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

type scheduledIdentifierResponse struct {
	Identifier string `json:"identifier"`
}

// Permissions reports whether notification delivery is available.
func (h *NotificationHandler) Permissions(c echo.Context) error {
	granted := h.notificationService.HasNotificationPermissions(c.Request().Context())
	return c.JSON(http.StatusOK, permissionsResponse{Granted: granted})
}

// ListScheduled returns every scheduled notification.
func (h *NotificationHandler) ListScheduled(c echo.Context) error {
	scheduled := h.notificationService.GetAllScheduledNotifications(c.Request().Context())
	return c.JSON(http.StatusOK, scheduled)
}

// SendTest fires a one-off notification immediately.
func (h *NotificationHandler) SendTest(c echo.Context) error {
	var req testNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "title is required"})
	}

	id := h.notificationService.SendImmediateNotification(c.Request().Context(), req.Title, req.Body, req.Data)
	if id == "" {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "notification delivery unavailable"})
	}
	return c.JSON(http.StatusAccepted, scheduledIdentifierResponse{Identifier: id})
}

// CancelAll clears the entire notification schedule.
func (h *NotificationHandler) CancelAll(c echo.Context) error {
	h.notificationService.CancelAllNotifications(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
