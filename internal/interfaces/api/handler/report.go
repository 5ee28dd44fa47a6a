package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"paytrack/internal/application/service"
	"paytrack/internal/pkg/logger"
)

// ReportHandler handles financial summary endpoints.
type ReportHandler struct {
	reportService service.ReportService
	log           logger.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, log logger.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, log: log}
}

// Monthly returns one calendar month's summary. Year and month default to
// the current month when omitted.
func (h *ReportHandler) Monthly(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if err := echo.QueryParamsBinder(c).
		Int("year", &year).
		Int("month", &month).
		BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid year or month"})
	}

	report, err := h.reportService.MonthlySummary(c.Request().Context(), userID, year, month)
	if err != nil {
		h.log.Error("Failed to build monthly report", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
