package repository

import (
	"context"

	"event-announcer/internal/model"
)

// Repository persists event id -> announcement message mappings.
// Operations are atomic per key.
type Repository interface {
	Get(ctx context.Context, eventID string) (model.Announcement, bool, error)
	Set(ctx context.Context, eventID string, a model.Announcement) error
	Delete(ctx context.Context, eventID string) error
}
