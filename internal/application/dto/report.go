package dto

import "github.com/shopspring/decimal"

// CategoryTotal is one category's spending within a report period.
type CategoryTotal struct {
	Category string          `json:"category"`
	Icon     string          `json:"icon"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyReport summarizes a user's finances for one calendar month.
// Rendering to PDF/CSV is delegated to external tooling; this is the data.
type MonthlyReport struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpense  decimal.Decimal `json:"total_expense"`
	Net           decimal.Decimal `json:"net"`
	ByCategory    []CategoryTotal `json:"by_category"`
	UpcomingBills decimal.Decimal `json:"upcoming_bills"` // Sum of enabled reminder amounts
	TotalAssets   decimal.Decimal `json:"total_assets"`
}
