package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/constant"
	"paytrack/internal/domain/entity"
	appErrors "paytrack/internal/pkg/errors"
	"paytrack/internal/pkg/logger"
)

// fakeTransactionRepo is an in-memory TransactionRepository.
type fakeTransactionRepo struct {
	txs     []*entity.Transaction
	findErr error
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uint) (*entity.Transaction, error) {
	for _, tx := range f.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeTransactionRepo) FindByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.Transaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*entity.Transaction
	for _, tx := range f.txs {
		if tx.UserID == userID && !tx.Date.Before(from) && tx.Date.Before(to) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) (uint, error) {
	tx.ID = uint(len(f.txs) + 1)
	f.txs = append(f.txs, tx)
	return tx.ID, nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id uint) error {
	for i, tx := range f.txs {
		if tx.ID == id {
			f.txs = append(f.txs[:i], f.txs[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

// fakeAssetRepo is an in-memory AssetRepository.
type fakeAssetRepo struct {
	assets []*entity.Asset
}

func (f *fakeAssetRepo) FindByID(ctx context.Context, id uint) (*entity.Asset, error) {
	for _, a := range f.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeAssetRepo) FindByUserID(ctx context.Context, userID string) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range f.assets {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) Create(ctx context.Context, asset *entity.Asset) (uint, error) {
	asset.ID = uint(len(f.assets) + 1)
	f.assets = append(f.assets, asset)
	return asset.ID, nil
}

func (f *fakeAssetRepo) Update(ctx context.Context, asset *entity.Asset) error { return nil }
func (f *fakeAssetRepo) Delete(ctx context.Context, id uint) error             { return nil }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestMonthlySummary(t *testing.T) {
	txRepo := &fakeTransactionRepo{txs: []*entity.Transaction{
		{ID: 1, UserID: "u1", Type: constant.TransactionIncome, Category: constant.CategoryOther, Amount: decimal.NewFromInt(3000), Date: date(2026, time.March, 1)},
		{ID: 2, UserID: "u1", Type: constant.TransactionExpense, Category: constant.CategoryFood, Amount: decimal.NewFromInt(450), Date: date(2026, time.March, 10)},
		{ID: 3, UserID: "u1", Type: constant.TransactionExpense, Category: constant.CategoryBills, Amount: decimal.NewFromInt(900), Date: date(2026, time.March, 12)},
		{ID: 4, UserID: "u1", Type: constant.TransactionExpense, Category: constant.CategoryFood, Amount: decimal.NewFromInt(50), Date: date(2026, time.March, 20)},
		// Outside the month, must be excluded.
		{ID: 5, UserID: "u1", Type: constant.TransactionExpense, Category: constant.CategoryFood, Amount: decimal.NewFromInt(999), Date: date(2026, time.April, 1)},
		// Another user, must be excluded.
		{ID: 6, UserID: "u2", Type: constant.TransactionExpense, Category: constant.CategoryFood, Amount: decimal.NewFromInt(10), Date: date(2026, time.March, 5)},
	}}
	reminderRepo := newFakeReminderRepo()
	reminderRepo.reminders[1] = &entity.Reminder{ID: 1, UserID: "u1", Title: "Rent", Amount: decimal.NewFromInt(800), DueDay: 1, IsEnabled: true}
	reminderRepo.reminders[2] = &entity.Reminder{ID: 2, UserID: "u1", Title: "Gym", Amount: decimal.NewFromInt(50), DueDay: 5, IsEnabled: false}
	assetRepo := &fakeAssetRepo{assets: []*entity.Asset{
		{ID: 1, UserID: "u1", Name: "Savings", Type: constant.AssetBank, Balance: decimal.NewFromInt(5000)},
		{ID: 2, UserID: "u1", Name: "Wallet", Type: constant.AssetCash, Balance: decimal.NewFromInt(120)},
	}}

	svc := NewReportService(txRepo, reminderRepo, assetRepo, logger.New("error", "test"))

	report, err := svc.MonthlySummary(context.Background(), "u1", 2026, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.TotalIncome.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("want income 3000, got %s", report.TotalIncome)
	}
	if !report.TotalExpense.Equal(decimal.NewFromInt(1400)) {
		t.Errorf("want expense 1400, got %s", report.TotalExpense)
	}
	if !report.Net.Equal(decimal.NewFromInt(1600)) {
		t.Errorf("want net 1600, got %s", report.Net)
	}
	if !report.UpcomingBills.Equal(decimal.NewFromInt(800)) {
		t.Errorf("disabled reminders must not count, want 800, got %s", report.UpcomingBills)
	}
	if !report.TotalAssets.Equal(decimal.NewFromInt(5120)) {
		t.Errorf("want assets 5120, got %s", report.TotalAssets)
	}

	if len(report.ByCategory) != 2 {
		t.Fatalf("want 2 expense categories, got %d", len(report.ByCategory))
	}
	if report.ByCategory[0].Category != "bills" || !report.ByCategory[0].Total.Equal(decimal.NewFromInt(900)) {
		t.Errorf("largest category first, got %+v", report.ByCategory[0])
	}
	if report.ByCategory[1].Category != "food" || !report.ByCategory[1].Total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("want food 500 second, got %+v", report.ByCategory[1])
	}
}

func TestMonthlySummary_InvalidPeriod(t *testing.T) {
	svc := NewReportService(&fakeTransactionRepo{}, newFakeReminderRepo(), &fakeAssetRepo{}, logger.New("error", "test"))

	for _, tc := range []struct{ year, month int }{{2026, 0}, {2026, 13}, {1800, 6}} {
		if _, err := svc.MonthlySummary(context.Background(), "u1", tc.year, tc.month); !errors.Is(err, appErrors.ErrInvalidPeriod) {
			t.Errorf("year=%d month=%d: want ErrInvalidPeriod, got %v", tc.year, tc.month, err)
		}
	}
}

func TestMonthlySummary_TransactionLoadFailureIsFatal(t *testing.T) {
	txRepo := &fakeTransactionRepo{findErr: errors.New("disk error")}
	svc := NewReportService(txRepo, newFakeReminderRepo(), &fakeAssetRepo{}, logger.New("error", "test"))

	if _, err := svc.MonthlySummary(context.Background(), "u1", 2026, 3); !errors.Is(err, appErrors.ErrDatabaseOperation) {
		t.Fatalf("want ErrDatabaseOperation, got %v", err)
	}
}
