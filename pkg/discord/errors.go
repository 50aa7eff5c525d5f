package discord

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches API errors for resources that no longer exist.
	ErrNotFound = errors.New("discord: not found")

	ErrInvalidSignature = errors.New("discord: invalid request signature")
)

// APIError is a non-2xx response from the Discord API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discord API error %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound || e.Code == codeUnknownMessage {
		return ErrNotFound
	}
	return nil
}
