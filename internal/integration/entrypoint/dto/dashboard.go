package dto

import (
	"github.com/mintmind/backend/internal/application/usecase/dashboard"
	"github.com/mintmind/backend/internal/domain/finance"
)

// CategoryBreakdownItemResponse is one category slice of a breakdown.
type CategoryBreakdownItemResponse struct {
	Category   string  `json:"category"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// BudgetStatusResponse compares window spend against the profile limits.
type BudgetStatusResponse struct {
	DailyLimit       string `json:"daily_limit"`
	WeeklyLimit      string `json:"weekly_limit"`
	MonthlyLimit     string `json:"monthly_limit"`
	DailyRemaining   string `json:"daily_remaining"`
	WeeklyRemaining  string `json:"weekly_remaining"`
	MonthlyRemaining string `json:"monthly_remaining"`
}

// SummaryResponse represents the monthly dashboard summary.
type SummaryResponse struct {
	Month              string                          `json:"month"`
	TrueIncome         string                          `json:"true_income"`
	TotalRefunds       string                          `json:"total_refunds"`
	RawExpenses        string                          `json:"raw_expenses"`
	NetExpenses        string                          `json:"net_expenses"`
	RemainingBudget    string                          `json:"remaining_budget"`
	BurnRate           string                          `json:"burn_rate"`
	MonthEndProjection string                          `json:"month_end_projection"`
	DailySpent         string                          `json:"daily_spent"`
	WeeklySpent        string                          `json:"weekly_spent"`
	CategoryBreakdown  []CategoryBreakdownItemResponse `json:"category_breakdown"`
	BudgetStatus       *BudgetStatusResponse           `json:"budget_status,omitempty"`
}

// DailySeriesPointResponse is one day of the daily expense series.
type DailySeriesPointResponse struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// DailySeriesResponse represents the zero-filled per-day expense series.
type DailySeriesResponse struct {
	StartDate string                     `json:"start_date"`
	EndDate   string                     `json:"end_date"`
	Series    []DailySeriesPointResponse `json:"series"`
}

// CategoryBreakdownResponse represents per-category totals for a period.
type CategoryBreakdownResponse struct {
	StartDate  string                          `json:"start_date"`
	EndDate    string                          `json:"end_date"`
	Total      string                          `json:"total"`
	Categories []CategoryBreakdownItemResponse `json:"categories"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		Month:              output.Month,
		TrueIncome:         output.TrueIncome.String(),
		TotalRefunds:       output.TotalRefunds.String(),
		RawExpenses:        output.RawExpenses.String(),
		NetExpenses:        output.NetExpenses.String(),
		RemainingBudget:    output.RemainingBudget.String(),
		BurnRate:           output.BurnRate.String(),
		MonthEndProjection: output.MonthEndProjection.String(),
		DailySpent:         output.DailySpent.String(),
		WeeklySpent:        output.WeeklySpent.String(),
		CategoryBreakdown:  toBreakdownItems(output.CategoryBreakdown),
	}

	if output.BudgetStatus != nil {
		response.BudgetStatus = &BudgetStatusResponse{
			DailyLimit:       output.BudgetStatus.DailyLimit.String(),
			WeeklyLimit:      output.BudgetStatus.WeeklyLimit.String(),
			MonthlyLimit:     output.BudgetStatus.MonthlyLimit.String(),
			DailyRemaining:   output.BudgetStatus.DailyRemaining.String(),
			WeeklyRemaining:  output.BudgetStatus.WeeklyRemaining.String(),
			MonthlyRemaining: output.BudgetStatus.MonthlyRemaining.String(),
		}
	}

	return response
}

// ToDailySeriesResponse converts a GetDailySeriesOutput to a DailySeriesResponse DTO.
func ToDailySeriesResponse(output *dashboard.GetDailySeriesOutput) DailySeriesResponse {
	series := make([]DailySeriesPointResponse, len(output.Series))
	for i, point := range output.Series {
		series[i] = DailySeriesPointResponse{
			Date:   point.Date,
			Amount: point.Amount.String(),
		}
	}

	return DailySeriesResponse{
		StartDate: output.StartDate,
		EndDate:   output.EndDate,
		Series:    series,
	}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to a
// CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	return CategoryBreakdownResponse{
		StartDate:  output.StartDate,
		EndDate:    output.EndDate,
		Total:      output.Total.String(),
		Categories: toBreakdownItems(output.Categories),
	}
}

func toBreakdownItems(breakdown []finance.CategoryBreakdown) []CategoryBreakdownItemResponse {
	items := make([]CategoryBreakdownItemResponse, len(breakdown))
	for i, b := range breakdown {
		items[i] = CategoryBreakdownItemResponse{
			Category:   string(b.Category),
			Amount:     b.Amount.String(),
			Percentage: b.Percentage,
		}
	}
	return items
}
