package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
	"github.com/mintmind/backend/internal/domain/finance"
)

// BreachNotifier enqueues a budget breach alert email at most once per user
// and month. The queued alert is delivered asynchronously by the email worker.
type BreachNotifier struct {
	alertQueue adapter.AlertQueueRepository
}

// NewBreachNotifier creates a new BreachNotifier instance.
func NewBreachNotifier(alertQueue adapter.AlertQueueRepository) *BreachNotifier {
	return &BreachNotifier{alertQueue: alertQueue}
}

// Notify enqueues a breach alert unless one is already queued or sent for the
// month. Queue failures are logged, never propagated: alerting is best-effort
// and must not break insight reads.
func (n *BreachNotifier) Notify(
	ctx context.Context,
	user *entity.User,
	evalAt time.Time,
	alertText string,
	summary finance.MonthSummary,
) {
	monthKey := evalAt.Format("2006-01")

	exists, err := n.alertQueue.ExistsPendingForUserMonth(ctx, user.ID, monthKey)
	if err != nil {
		slog.Warn("Failed to check for existing breach alert", "userID", user.ID, "error", err)
		return
	}
	if exists {
		return
	}

	alert := entity.NewAlertEmail(
		user.ID,
		user.Email,
		user.Name,
		fmt.Sprintf("Budget alert for %s", evalAt.Format("January 2006")),
		[]string{
			alertText,
			fmt.Sprintf("Spent so far this month: %s", summary.NetExpenses.Round(0).StringFixed(0)),
			fmt.Sprintf("Current burn rate: %s/day", summary.BurnRate.String()),
			fmt.Sprintf("Projected month-end balance: %s", summary.MonthEndProjection.Round(0).StringFixed(0)),
		},
		monthKey,
	)

	if err := n.alertQueue.Enqueue(ctx, alert); err != nil {
		slog.Warn("Failed to enqueue breach alert", "userID", user.ID, "error", err)
		return
	}

	slog.Info("Queued budget breach alert", "userID", user.ID, "month", monthKey)
}
