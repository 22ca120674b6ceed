package advisor

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestInMemoryProcessingTracker_ErrorTracking(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	userID := uuid.New()

	t.Run("HasError returns false when no error exists", func(t *testing.T) {
		if tracker.HasError(userID) {
			t.Error("expected HasError to return false for non-existent error")
		}
	})

	t.Run("GetError returns nil when no error exists", func(t *testing.T) {
		if tracker.GetError(userID) != nil {
			t.Error("expected GetError to return nil for non-existent error")
		}
	})

	t.Run("SetError stores the error", func(t *testing.T) {
		testError := &ProcessingError{
			Code:      ErrCodeAdviceRateLimited,
			Message:   errorMessages[ErrCodeAdviceRateLimited],
			Retryable: true,
			Timestamp: time.Now(),
		}

		tracker.SetError(userID, testError)

		if !tracker.HasError(userID) {
			t.Error("expected HasError to return true after SetError")
		}

		retrieved := tracker.GetError(userID)
		if retrieved == nil {
			t.Fatal("expected GetError to return non-nil error")
		}

		if retrieved.Code != testError.Code {
			t.Errorf("expected code %s, got %s", testError.Code, retrieved.Code)
		}

		if retrieved.Retryable != testError.Retryable {
			t.Errorf("expected retryable %v, got %v", testError.Retryable, retrieved.Retryable)
		}
	})

	t.Run("SetError overwrites existing error", func(t *testing.T) {
		tracker.SetError(userID, &ProcessingError{
			Code:      ErrCodeAdviceServiceUnavailable,
			Message:   errorMessages[ErrCodeAdviceServiceUnavailable],
			Retryable: true,
			Timestamp: time.Now(),
		})

		retrieved := tracker.GetError(userID)
		if retrieved == nil {
			t.Fatal("expected GetError to return non-nil error")
		}

		if retrieved.Code != ErrCodeAdviceServiceUnavailable {
			t.Errorf("expected code %s, got %s", ErrCodeAdviceServiceUnavailable, retrieved.Code)
		}
	})

	t.Run("ClearError removes the error", func(t *testing.T) {
		tracker.ClearError(userID)

		if tracker.HasError(userID) {
			t.Error("expected HasError to return false after ClearError")
		}
	})

	t.Run("error tracking is user-specific", func(t *testing.T) {
		user1 := uuid.New()
		user2 := uuid.New()

		tracker.SetError(user1, &ProcessingError{Code: ErrCodeAdviceRateLimited, Retryable: true, Timestamp: time.Now()})
		tracker.SetError(user2, &ProcessingError{Code: ErrCodeAdviceAuthError, Retryable: false, Timestamp: time.Now()})

		tracker.ClearError(user1)

		if tracker.HasError(user1) {
			t.Error("user1: expected HasError to return false after ClearError")
		}

		if !tracker.HasError(user2) {
			t.Error("user2: expected HasError to still return true")
		}
	})
}

func TestInMemoryProcessingTracker_ProcessingMethods(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	userID := uuid.New()

	t.Run("IsProcessing returns false when not processing", func(t *testing.T) {
		if tracker.IsProcessing(userID) {
			t.Error("expected IsProcessing to return false")
		}
	})

	t.Run("SetProcessing sets the processing state", func(t *testing.T) {
		tracker.SetProcessing(userID)

		if !tracker.IsProcessing(userID) {
			t.Error("expected IsProcessing to return true after SetProcessing")
		}
	})

	t.Run("ClearProcessing clears the processing state", func(t *testing.T) {
		tracker.ClearProcessing(userID)

		if tracker.IsProcessing(userID) {
			t.Error("expected IsProcessing to return false after ClearProcessing")
		}
	})
}

func TestInMemoryProcessingTracker_ThreadSafety(t *testing.T) {
	tracker := NewInMemoryProcessingTracker()
	userIDs := make([]uuid.UUID, 10)
	for i := range userIDs {
		userIDs[i] = uuid.New()
	}

	const goroutines = 100
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()

			userID := userIDs[id%len(userIDs)]

			for j := 0; j < iterations; j++ {
				switch j % 7 {
				case 0:
					tracker.SetProcessing(userID)
				case 1:
					tracker.IsProcessing(userID)
				case 2:
					tracker.ClearProcessing(userID)
				case 3:
					tracker.SetError(userID, &ProcessingError{
						Code:      ErrCodeAdviceRateLimited,
						Retryable: true,
						Timestamp: time.Now(),
					})
				case 4:
					tracker.GetError(userID)
				case 5:
					tracker.HasError(userID)
				case 6:
					tracker.ClearError(userID)
				}
			}
		}(i)
	}

	wg.Wait()
}
