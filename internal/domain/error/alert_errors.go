package error

import "errors"

// Alert email domain errors.
var (
	// ErrAlertSendFailed is returned when the email provider rejects an alert.
	ErrAlertSendFailed = errors.New("failed to send alert email")

	// ErrAlertPermanentFailure is returned for alerts that must not be retried.
	ErrAlertPermanentFailure = errors.New("permanent alert email failure")

	// ErrAlertQueueUnavailable is returned when the alert queue cannot be reached.
	ErrAlertQueueUnavailable = errors.New("alert queue unavailable")
)
