package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"event-announcer/internal/announcement/repository"
	"event-announcer/internal/model"
)

func (r *implRepository) Get(ctx context.Context, eventID string) (model.Announcement, bool, error) {
	raw, err := r.client.Get(ctx, repository.Key(eventID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.Announcement{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "announcement/repository/redis.Get: %v", err)
		return model.Announcement{}, false, fmt.Errorf("redis get %s: %w", eventID, err)
	}

	var a model.Announcement
	if err := json.Unmarshal(raw, &a); err != nil {
		return model.Announcement{}, false, fmt.Errorf("redis decode %s: %w", eventID, err)
	}
	if a.MessageID == "" {
		return model.Announcement{}, false, nil
	}
	return a, true, nil
}

func (r *implRepository) Set(ctx context.Context, eventID string, a model.Announcement) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", eventID, err)
	}
	if err := r.client.Set(ctx, repository.Key(eventID), raw, 0).Err(); err != nil {
		r.l.Errorf(ctx, "announcement/repository/redis.Set: %v", err)
		return fmt.Errorf("redis set %s: %w", eventID, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, eventID string) error {
	if err := r.client.Del(ctx, repository.Key(eventID)).Err(); err != nil {
		r.l.Errorf(ctx, "announcement/repository/redis.Delete: %v", err)
		return fmt.Errorf("redis del %s: %w", eventID, err)
	}
	return nil
}
