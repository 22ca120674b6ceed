package dto

import (
	"github.com/mintmind/backend/internal/application/usecase/insight"
	"github.com/mintmind/backend/internal/application/usecase/pattern"
)

// TransactionInsightResponse represents all advisory signals for one transaction.
type TransactionInsightResponse struct {
	TransactionID    string  `json:"transaction_id"`
	AccurateBurnRate string  `json:"accurate_burn_rate"`
	BurnRateDrift    string  `json:"burn_rate_drift"`
	MonthEndImpact   string  `json:"month_end_impact"`
	CategoryHealth   string  `json:"category_health"`
	ShouldSkip       bool    `json:"should_skip"`
	SavingsIndex     float64 `json:"savings_index"`
	MomentAnalysis   string  `json:"moment_analysis"`
	PredictiveAlert  string  `json:"predictive_alert,omitempty"`
}

// CategoryScoreResponse is one category's consumed share of its allocation.
type CategoryScoreResponse struct {
	Category    string  `json:"category"`
	Spent       string  `json:"spent"`
	Allocated   string  `json:"allocated"`
	PercentUsed float64 `json:"percent_used"`
	Health      string  `json:"health"`
}

// InsightSummaryResponse represents the current-month insight roll-up.
type InsightSummaryResponse struct {
	CategoryScores     []CategoryScoreResponse `json:"category_scores"`
	OverThreshold      []string                `json:"over_threshold"`
	SavingsPotential   string                  `json:"savings_potential"`
	Confidence         int                     `json:"confidence"`
	RecommendedActions []string                `json:"recommended_actions"`
}

// PatternAnalysisResponse represents the trailing three month pattern for a
// single expense category.
type PatternAnalysisResponse struct {
	Category          string   `json:"category"`
	MonthlyTotals     []string `json:"monthly_totals"`
	CurrentMonthTotal string   `json:"current_month_total"`
	ThreeMonthAverage string   `json:"three_month_average"`
	Trend             string   `json:"trend"`
	Volatility        string   `json:"volatility"`
	RecurringExpenses int      `json:"recurring_expenses"`
}

// ToTransactionInsightResponse converts a GetTransactionInsightOutput to a
// TransactionInsightResponse DTO.
func ToTransactionInsightResponse(output *insight.GetTransactionInsightOutput) TransactionInsightResponse {
	return TransactionInsightResponse{
		TransactionID:    output.TransactionID.String(),
		AccurateBurnRate: output.AccurateBurnRate.String(),
		BurnRateDrift:    output.BurnRateDrift.String(),
		MonthEndImpact:   output.MonthEndImpact.String(),
		CategoryHealth:   string(output.CategoryHealth),
		ShouldSkip:       output.ShouldSkip,
		SavingsIndex:     output.SavingsIndex,
		MomentAnalysis:   output.MomentAnalysis,
		PredictiveAlert:  output.PredictiveAlert,
	}
}

// ToInsightSummaryResponse converts a GetInsightSummaryOutput to an
// InsightSummaryResponse DTO.
func ToInsightSummaryResponse(output *insight.GetInsightSummaryOutput) InsightSummaryResponse {
	scores := make([]CategoryScoreResponse, len(output.CategoryScores))
	for i, score := range output.CategoryScores {
		scores[i] = CategoryScoreResponse{
			Category:    string(score.Category),
			Spent:       score.Spent.String(),
			Allocated:   score.Allocated.String(),
			PercentUsed: score.PercentUsed,
			Health:      string(score.Health),
		}
	}

	over := make([]string, len(output.OverThreshold))
	for i, category := range output.OverThreshold {
		over[i] = string(category)
	}

	return InsightSummaryResponse{
		CategoryScores:     scores,
		OverThreshold:      over,
		SavingsPotential:   output.SavingsPotential.String(),
		Confidence:         output.Confidence,
		RecommendedActions: output.RecommendedActions,
	}
}

// ToPatternAnalysisResponse converts an AnalyzeCategoryOutput to a
// PatternAnalysisResponse DTO.
func ToPatternAnalysisResponse(output *pattern.AnalyzeCategoryOutput) PatternAnalysisResponse {
	totals := make([]string, len(output.MonthlyTotals))
	for i, total := range output.MonthlyTotals {
		totals[i] = total.String()
	}

	return PatternAnalysisResponse{
		Category:          string(output.Category),
		MonthlyTotals:     totals,
		CurrentMonthTotal: output.CurrentMonthTotal.String(),
		ThreeMonthAverage: output.ThreeMonthAverage.String(),
		Trend:             string(output.Trend),
		Volatility:        output.Volatility.String(),
		RecurringExpenses: output.RecurringExpenses,
	}
}
