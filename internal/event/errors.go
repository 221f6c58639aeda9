package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrEmptyText             = errors.New("text is empty")
	ErrTextTooLong           = errors.New("text is too long")
	ErrLLMFailed             = errors.New("language model request failed")
	ErrUnreadableResponse    = errors.New("could not understand the response")
	ErrNeedStartDate         = errors.New("event has no valid start date")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
)
