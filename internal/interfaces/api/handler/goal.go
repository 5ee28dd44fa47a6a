package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"paytrack/internal/application/dto"
	"paytrack/internal/application/service"
	"paytrack/internal/pkg/logger"
)

// GoalHandler handles savings goal endpoints.
type GoalHandler struct {
	goalService service.GoalService
	log         logger.Logger
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService service.GoalService, log logger.Logger) *GoalHandler {
	return &GoalHandler{goalService: goalService, log: log}
}

// Create stores a new savings goal.
func (h *GoalHandler) Create(c echo.Context) error {
	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	goal, err := h.goalService.CreateGoal(c.Request().Context(), req)
	if err != nil {
		h.log.Error("Failed to create goal", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, goal)
}

// Contribute adds to a goal's saved amount.
func (h *GoalHandler) Contribute(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid goal id"})
	}
	var req dto.ContributeGoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	goal, err := h.goalService.Contribute(c.Request().Context(), id, req)
	if err != nil {
		h.log.Error("Failed to contribute to goal", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, goal)
}

// Delete removes a goal.
func (h *GoalHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid goal id"})
	}

	if err := h.goalService.DeleteGoal(c.Request().Context(), id, c.QueryParam("user_id")); err != nil {
		h.log.Error("Failed to delete goal", err)
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns all goals for a user.
func (h *GoalHandler) List(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	goals, err := h.goalService.ListGoals(c.Request().Context(), userID)
	if err != nil {
		h.log.Error("Failed to list goals", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, goals)
}
