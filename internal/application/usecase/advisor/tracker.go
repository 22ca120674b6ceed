package advisor

import (
	"sync"

	"github.com/google/uuid"
)

// ProcessingTracker tracks in-flight advice requests and the last generation
// error per user.
type ProcessingTracker interface {
	IsProcessing(userID uuid.UUID) bool
	SetProcessing(userID uuid.UUID)
	ClearProcessing(userID uuid.UUID)

	SetError(userID uuid.UUID, err *ProcessingError)
	GetError(userID uuid.UUID) *ProcessingError
	ClearError(userID uuid.UUID)
	HasError(userID uuid.UUID) bool
}

// InMemoryProcessingTracker is a simple in-memory implementation of ProcessingTracker.
type InMemoryProcessingTracker struct {
	mu         sync.RWMutex
	processing map[uuid.UUID]bool
	errors     map[uuid.UUID]*ProcessingError
}

// NewInMemoryProcessingTracker creates a new in-memory processing tracker.
func NewInMemoryProcessingTracker() *InMemoryProcessingTracker {
	return &InMemoryProcessingTracker{
		processing: make(map[uuid.UUID]bool),
		errors:     make(map[uuid.UUID]*ProcessingError),
	}
}

// IsProcessing checks if a user has an advice request in flight.
func (t *InMemoryProcessingTracker) IsProcessing(userID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.processing[userID]
}

// SetProcessing marks a user as having an advice request in flight.
func (t *InMemoryProcessingTracker) SetProcessing(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.processing[userID] = true
}

// ClearProcessing clears the in-flight marker for a user.
func (t *InMemoryProcessingTracker) ClearProcessing(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.processing, userID)
}

// SetError stores an error for a user.
func (t *InMemoryProcessingTracker) SetError(userID uuid.UUID, err *ProcessingError) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errors[userID] = err
}

// GetError retrieves the error for a user.
func (t *InMemoryProcessingTracker) GetError(userID uuid.UUID) *ProcessingError {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.errors[userID]
}

// ClearError removes the error for a user.
func (t *InMemoryProcessingTracker) ClearError(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.errors, userID)
}

// HasError checks if a user has an error.
func (t *InMemoryProcessingTracker) HasError(userID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.errors[userID]
	return ok
}
