package event

import "errors"

// Error kinds for event commands. Callers wrap them with %w and match with errors.Is.
var (
	// ErrValidation is returned for bad input before anything is sent to a provider.
	ErrValidation = errors.New("invalid input")
	// ErrProvider is returned when the calendar rejects or fails a call.
	ErrProvider = errors.New("calendar provider error")
	// ErrNotFound is returned when the calendar has no event with the given id.
	ErrNotFound = errors.New("event not found")
	// ErrTransientIO is returned when the mapping store or the chat platform fails.
	ErrTransientIO = errors.New("announcement unavailable")
)
