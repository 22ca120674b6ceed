package adapters

import (
	"time"

	"github.com/mintmind/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with the wall clock.
type systemClock struct{}

// NewSystemClock creates a clock backed by time.Now in UTC.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	return time.Now().UTC()
}
