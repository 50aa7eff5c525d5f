package usecase

import (
	"time"

	"event-announcer/internal/announcement"
	"event-announcer/internal/announcement/repository"
	pkgLog "event-announcer/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	chat      announcement.Chat
	channelID string
	loc       *time.Location
}

// Dependencies is everything the announcer needs, built once at startup.
type Dependencies struct {
	Repo      repository.Repository
	Chat      announcement.Chat
	ChannelID string         // announcement channel for new messages
	Location  *time.Location // organization timezone used for formatting
}

// New creates a new announcement UseCase.
func New(l pkgLog.Logger, deps Dependencies) announcement.UseCase {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:         l,
		repo:      deps.Repo,
		chat:      deps.Chat,
		channelID: deps.ChannelID,
		loc:       loc,
	}
}
