package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"event-announcer/internal/model"
)

func (r *implRepository) Get(ctx context.Context, eventID string) (model.Announcement, bool, error) {
	var row announcement
	err := r.db.GetContext(ctx, &row, `
		SELECT event_id, channel_id, message_id
		FROM announcements
		WHERE event_id = ?
	`, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Announcement{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "announcement/repository/sqlite.Get: %v", err)
		return model.Announcement{}, false, fmt.Errorf("sqlite get %s: %w", eventID, err)
	}
	return row.Convert(), true, nil
}

func (r *implRepository) Set(ctx context.Context, eventID string, a model.Announcement) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO announcements (event_id, channel_id, message_id)
		VALUES (?, ?, ?)
		ON CONFLICT(event_id) DO UPDATE
			SET channel_id = excluded.channel_id, message_id = excluded.message_id;
	`, eventID, a.ChannelID, a.MessageID)
	if err != nil {
		r.l.Errorf(ctx, "announcement/repository/sqlite.Set: %v", err)
		return fmt.Errorf("sqlite set %s: %w", eventID, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, eventID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE event_id = ?`, eventID)
	if err != nil {
		r.l.Errorf(ctx, "announcement/repository/sqlite.Delete: %v", err)
		return fmt.Errorf("sqlite delete %s: %w", eventID, err)
	}
	return nil
}
