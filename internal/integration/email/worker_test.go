package email

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mintmind/backend/internal/domain/entity"
	"github.com/mintmind/backend/internal/integration/email/templates"
)

// fakeAlertQueue is an in-memory queue for worker tests.
type fakeAlertQueue struct {
	alerts []*entity.AlertEmail
}

func (q *fakeAlertQueue) Enqueue(ctx context.Context, alert *entity.AlertEmail) error {
	q.alerts = append(q.alerts, alert)
	return nil
}

func (q *fakeAlertQueue) DequeuePending(ctx context.Context, limit int) ([]*entity.AlertEmail, error) {
	var pending []*entity.AlertEmail
	for _, a := range q.alerts {
		if a.Status == entity.AlertStatusPending && len(pending) < limit {
			a.MarkProcessing()
			pending = append(pending, a)
		}
	}
	return pending, nil
}

func (q *fakeAlertQueue) Update(ctx context.Context, alert *entity.AlertEmail) error {
	for i, a := range q.alerts {
		if a.ID == alert.ID {
			q.alerts[i] = alert
		}
	}
	return nil
}

func (q *fakeAlertQueue) ExistsPendingForUserMonth(ctx context.Context, userID uuid.UUID, monthKey string) (bool, error) {
	for _, a := range q.alerts {
		if a.UserID == userID && a.MonthKey == monthKey && a.Status != entity.AlertStatusFailed {
			return true, nil
		}
	}
	return false, nil
}

func newTestWorker(t *testing.T, queue *fakeAlertQueue, sender *MockEmailSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func newTestAlert() *entity.AlertEmail {
	return entity.NewAlertEmail(
		uuid.New(),
		"user@example.com",
		"Asha",
		"Budget alert for 2025-03",
		[]string{"Spent so far: 45000", "Projected month-end overshoot: 5000"},
		"2025-03",
	)
}

func TestWorker_SendsPendingAlert(t *testing.T) {
	queue := &fakeAlertQueue{}
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	alert := newTestAlert()
	queue.alerts = append(queue.alerts, alert)

	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}

	sent := sender.SentEmails[0]
	if sent.To[0] != "user@example.com" {
		t.Errorf("unexpected recipient: %s", sent.To[0])
	}
	if sent.Subject != "Budget alert for 2025-03" {
		t.Errorf("unexpected subject: %s", sent.Subject)
	}

	if alert.Status != entity.AlertStatusSent {
		t.Errorf("expected alert marked sent, got %s", alert.Status)
	}
	if alert.ResendID == "" {
		t.Error("expected resend ID recorded on alert")
	}
}

func TestWorker_RetriesTemporaryFailure(t *testing.T) {
	queue := &fakeAlertQueue{}
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("503 service unavailable"), false)
	worker := newTestWorker(t, queue, sender)

	alert := newTestAlert()
	queue.alerts = append(queue.alerts, alert)

	worker.ProcessNow(context.Background())

	if alert.Status != entity.AlertStatusPending {
		t.Errorf("expected alert rescheduled as pending, got %s", alert.Status)
	}
	if alert.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", alert.Attempts)
	}
	if alert.LastError == "" {
		t.Error("expected last error recorded")
	}
}

func TestWorker_PermanentFailureDoesNotRetry(t *testing.T) {
	queue := &fakeAlertQueue{}
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("422 validation failed"), true)
	worker := newTestWorker(t, queue, sender)

	alert := newTestAlert()
	queue.alerts = append(queue.alerts, alert)

	worker.ProcessNow(context.Background())

	if alert.Status != entity.AlertStatusFailed {
		t.Errorf("expected alert marked failed, got %s", alert.Status)
	}
	if alert.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", alert.Attempts)
	}
}

func TestWorker_GivesUpAfterMaxAttempts(t *testing.T) {
	queue := &fakeAlertQueue{}
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("503 service unavailable"), false)
	worker := newTestWorker(t, queue, sender)

	alert := newTestAlert()
	queue.alerts = append(queue.alerts, alert)

	ctx := context.Background()
	for i := 0; i < alert.MaxAttempts; i++ {
		// Pull the retry forward so the next batch picks it up again.
		alert.ScheduledAt = alert.CreatedAt
		worker.ProcessNow(ctx)
	}

	if alert.Status != entity.AlertStatusFailed {
		t.Errorf("expected alert failed after %d attempts, got %s", alert.MaxAttempts, alert.Status)
	}
	if alert.Attempts != alert.MaxAttempts {
		t.Errorf("expected %d attempts, got %d", alert.MaxAttempts, alert.Attempts)
	}
}
