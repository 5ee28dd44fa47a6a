package service

import (
	"context"

	"paytrack/internal/application/dto"
)

// ReportService produces financial summaries.
type ReportService interface {
	// MonthlySummary aggregates one calendar month of a user's finances.
	MonthlySummary(ctx context.Context, userID string, year, month int) (*dto.MonthlyReport, error)
}
