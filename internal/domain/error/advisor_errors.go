package error

import "errors"

// Advisor domain errors.
var (
	// ErrEmptyAdvisorMessage is returned when a chat message is blank.
	ErrEmptyAdvisorMessage = errors.New("advisor message must not be empty")

	// ErrAdvisorMessageTooLong is returned when a chat message exceeds the limit.
	ErrAdvisorMessageTooLong = errors.New("advisor message too long")
)
