package announcement

import "errors"

var (
	// ErrMessageGone is returned by Chat when the target message no longer exists.
	ErrMessageGone = errors.New("announcement message no longer exists")

	// ErrChatRejected is returned by Chat when the platform answered a request
	// with a non-success status (as opposed to a transport failure).
	ErrChatRejected = errors.New("chat platform rejected the request")

	ErrStore = errors.New("announcement store failure")
	ErrChat  = errors.New("chat platform failure")
)
