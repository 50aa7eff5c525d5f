package discord

import (
	"errors"
	"fmt"

	"event-announcer/internal/event"
)

var (
	errUnknownCommand = errors.New(replyUnknownCommand)
	errMissingID      = fmt.Errorf("%w: id is required", event.ErrValidation)
)
