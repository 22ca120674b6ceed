package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintmind/backend/internal/domain/entity"
)

// CategoryScore is one category's consumed share of its assumed allocation.
type CategoryScore struct {
	Category    entity.Category
	Spent       decimal.Decimal
	Allocated   decimal.Decimal
	PercentUsed float64
	Health      CategoryHealth
}

// InsightSummary rolls per-category signals up into a ranked action list for
// the dashboard's advice panel.
type InsightSummary struct {
	CategoryScores []CategoryScore
	OverThreshold  []entity.Category
	// SavingsPotential sums, across categories, the amount by which current
	// spend exceeds the trailing three-month average.
	SavingsPotential decimal.Decimal
	// Confidence is a bounded 0-100 score for the projections: more recent
	// transactions and more stable trends raise it.
	Confidence int
	// RecommendedActions is deduplicated and capped at three entries, ordered
	// category cuts first, then the aggregate savings note, then the daily-pace
	// note.
	RecommendedActions []string
}

const maxRecommendedActions = 3

// BuildInsightSummary derives the roll-up from the full transaction collection
// and the user's configured monthly limit.
func BuildInsightSummary(txs []*entity.Transaction, monthlyLimit decimal.Decimal, now time.Time) InsightSummary {
	monthStart, monthEnd := MonthWindow(now)
	monthTxs := FilterByDateRange(txs, monthStart, monthEnd)

	allocation := monthlyLimit.Mul(categoryAllocationShare)

	spentByCategory := make(map[entity.Category]decimal.Decimal)
	for _, t := range monthTxs {
		if t.Type == entity.TransactionTypeExpense {
			spentByCategory[t.Category] = spentByCategory[t.Category].Add(t.Amount)
		}
	}

	scores := make([]CategoryScore, 0, len(spentByCategory))
	var overThreshold []entity.Category
	savings := decimal.Zero
	stableTrends := 0

	for category, spent := range spentByCategory {
		percentUsed := 0.0
		if allocation.IsPositive() {
			percentUsed, _ = spent.Div(allocation).Mul(decimal.NewFromInt(100)).Float64()
		}

		scores = append(scores, CategoryScore{
			Category:    category,
			Spent:       spent,
			Allocated:   allocation,
			PercentUsed: percentUsed,
			Health:      classifyCategoryHealth(spent, monthlyLimit),
		})

		pattern := AnalyzePattern(txs, category, now)
		if pattern.Trend == TrendStable {
			stableTrends++
		}
		if over := spent.Sub(pattern.ThreeMonthAverage); over.IsPositive() {
			savings = savings.Add(over)
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Spent.Equal(scores[j].Spent) {
			return scores[i].Category < scores[j].Category
		}
		return scores[i].Spent.GreaterThan(scores[j].Spent)
	})

	for _, s := range scores {
		if s.Health != CategoryHealthy {
			overThreshold = append(overThreshold, s.Category)
		}
	}

	return InsightSummary{
		CategoryScores:     scores,
		OverThreshold:      overThreshold,
		SavingsPotential:   savings.Round(0),
		Confidence:         confidenceScore(len(monthTxs), stableTrends),
		RecommendedActions: recommendedActions(scores, savings, monthTxs, now),
	}
}

// confidenceScore starts from a base of 50, adds up to 30 for recent
// transaction volume and up to 20 for trend stability, capped at 100.
func confidenceScore(monthTxCount, stableTrends int) int {
	score := 50

	volume := monthTxCount * 2
	if volume > 30 {
		volume = 30
	}
	score += volume

	stability := stableTrends * 10
	if stability > 20 {
		stability = 20
	}
	score += stability

	if score > 100 {
		score = 100
	}
	return score
}

// recommendedActions builds the ranked action list: category cuts first, then
// the aggregate savings note, then the daily-pace note. Duplicates are dropped
// and the list is capped.
func recommendedActions(scores []CategoryScore, savings decimal.Decimal, monthTxs []*entity.Transaction, now time.Time) []string {
	seen := make(map[string]bool)
	actions := make([]string, 0, maxRecommendedActions)

	add := func(action string) {
		if len(actions) >= maxRecommendedActions || seen[action] {
			return
		}
		seen[action] = true
		actions = append(actions, action)
	}

	for _, s := range scores {
		if s.Health == CategoryCritical {
			add(fmt.Sprintf("Cut back on %s: %.0f%% of its share is used", s.Category, s.PercentUsed))
		}
	}

	if savings.IsPositive() {
		add(fmt.Sprintf("Trimming to your 3-month averages would free up %s this month", savings.Round(0).StringFixed(0)))
	}

	net := netExpenses(monthTxs)
	if net.IsPositive() {
		rate := net.Div(decimal.NewFromInt(int64(maxInt(1, now.Day()))))
		projected := rate.Mul(decimal.NewFromInt(int64(daysInMonth(now))))
		add(fmt.Sprintf("Daily pace of %s/day projects to %s by month end",
			rate.Round(2).String(), projected.Round(0).StringFixed(0)))
	}

	return actions
}
