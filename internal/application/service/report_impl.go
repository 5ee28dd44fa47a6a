package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/application/dto"
	"paytrack/internal/domain/constant"
	"paytrack/internal/domain/repository"
	appErrors "paytrack/internal/pkg/errors"
	"paytrack/internal/pkg/logger"
)

type reportService struct {
	txRepo       repository.TransactionRepository
	reminderRepo repository.ReminderRepository
	assetRepo    repository.AssetRepository
	log          logger.Logger
}

// NewReportService creates a new instance of ReportService implementation.
func NewReportService(
	txRepo repository.TransactionRepository,
	reminderRepo repository.ReminderRepository,
	assetRepo repository.AssetRepository,
	log logger.Logger,
) ReportService {
	return &reportService{
		txRepo:       txRepo,
		reminderRepo: reminderRepo,
		assetRepo:    assetRepo,
		log:          log,
	}
}

// MonthlySummary aggregates one calendar month of a user's finances:
// income/expense totals, spending by category (largest first), the sum of
// enabled reminders (upcoming bills), and total asset balance.
func (s *reportService) MonthlySummary(ctx context.Context, userID string, year, month int) (*dto.MonthlyReport, error) {
	if month < 1 || month > 12 || year < 1970 {
		return nil, appErrors.ErrInvalidPeriod
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	txs, err := s.txRepo.FindByUserIDAndRange(ctx, userID, from, to)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load transactions for report, user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	income := decimal.Zero
	expense := decimal.Zero
	byCategory := make(map[constant.Category]decimal.Decimal)
	for _, tx := range txs {
		switch tx.Type {
		case constant.TransactionIncome:
			income = income.Add(tx.Amount)
		case constant.TransactionExpense:
			expense = expense.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}

	categories := make([]dto.CategoryTotal, 0, len(byCategory))
	for c, total := range byCategory {
		categories = append(categories, dto.CategoryTotal{
			Category: c.String(),
			Icon:     c.Icon(),
			Total:    total,
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Total.Equal(categories[j].Total) {
			return categories[i].Category < categories[j].Category
		}
		return categories[i].Total.GreaterThan(categories[j].Total)
	})

	upcoming := decimal.Zero
	reminders, err := s.reminderRepo.FindEnabledByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load reminders for report, user %s", userID), err)
	} else {
		for _, r := range reminders {
			upcoming = upcoming.Add(r.Amount)
		}
	}

	totalAssets := decimal.Zero
	assets, err := s.assetRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load assets for report, user %s", userID), err)
	} else {
		for _, a := range assets {
			totalAssets = totalAssets.Add(a.Balance)
		}
	}

	return &dto.MonthlyReport{
		Year:          year,
		Month:         month,
		TotalIncome:   income,
		TotalExpense:  expense,
		Net:           income.Sub(expense),
		ByCategory:    categories,
		UpcomingBills: upcoming,
		TotalAssets:   totalAssets,
	}, nil
}
