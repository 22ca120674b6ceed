package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mintmind/backend/internal/application/adapter"
	"github.com/mintmind/backend/internal/domain/entity"
	domainerror "github.com/mintmind/backend/internal/domain/error"
	"github.com/mintmind/backend/internal/integration/email/templates"
)

// Worker drains the budget alert queue and sends the alert emails.
type Worker struct {
	queue        adapter.AlertQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the alert worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new alert worker.
func NewWorker(queue adapter.AlertQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Alert worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Alert worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending alerts.
func (w *Worker) processBatch(ctx context.Context) {
	alerts, err := w.queue.DequeuePending(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to dequeue pending alerts", "error", err)
		return
	}

	if len(alerts) == 0 {
		return
	}

	slog.Debug("Processing alert batch", "count", len(alerts))

	for _, alert := range alerts {
		select {
		case <-ctx.Done():
			return
		default:
			w.processAlert(ctx, alert)
		}
	}
}

// processAlert renders and sends a single alert.
func (w *Worker) processAlert(ctx context.Context, alert *entity.AlertEmail) {
	logger := slog.With(
		"alert_id", alert.ID,
		"recipient", alert.RecipientEmail,
		"month", alert.MonthKey,
	)

	html, text, err := w.renderer.Render("budget_alert", templates.BudgetAlertData{
		UserName: alert.RecipientName,
		Subject:  alert.Subject,
		Lines:    alert.Lines,
	})
	if err != nil {
		logger.Error("Failed to render alert template", "error", err)
		w.handleFailure(ctx, alert, err, true)
		return
	}

	resendID, err := w.sender.Send(ctx, adapter.EmailMessage{
		To:      []string{alert.RecipientEmail},
		Subject: alert.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send alert email", "error", err)
		w.handleFailure(ctx, alert, err, errors.Is(err, domainerror.ErrAlertPermanentFailure))
		return
	}

	alert.MarkSent(resendID)
	if err := w.queue.Update(ctx, alert); err != nil {
		logger.Error("Failed to mark alert as sent", "error", err)
		return
	}

	logger.Info("Alert email sent", "resend_id", resendID)
}

// handleFailure records a failed attempt and schedules a retry if any remain.
func (w *Worker) handleFailure(ctx context.Context, alert *entity.AlertEmail, err error, permanent bool) {
	alert.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, alert); updateErr != nil {
		slog.Error("Failed to update alert after failure",
			"alert_id", alert.ID,
			"error", updateErr,
		)
	}

	if alert.Status == entity.AlertStatusFailed {
		slog.Warn("Alert email permanently failed",
			"alert_id", alert.ID,
			"attempts", alert.Attempts,
			"last_error", alert.LastError,
		)
	} else {
		slog.Info("Alert email scheduled for retry",
			"alert_id", alert.ID,
			"attempts", alert.Attempts,
			"scheduled_at", alert.ScheduledAt,
		)
	}
}

// ProcessNow processes all pending alerts immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
