package redis

import (
	goredis "github.com/redis/go-redis/v9"

	"event-announcer/internal/announcement/repository"
	pkgLog "event-announcer/pkg/log"
)

type implRepository struct {
	client goredis.UniversalClient
	l      pkgLog.Logger
}

// New creates a Redis-backed mapping repository. Values are stored under
// "cal:<eventId>" as {"channelId","messageId"} JSON.
func New(client goredis.UniversalClient, l pkgLog.Logger) repository.Repository {
	if client == nil {
		panic("announcement/repository/redis: client is required")
	}
	return &implRepository{client: client, l: l}
}

// NewClient builds a client from a redis:// or rediss:// URL.
func NewClient(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(opts), nil
}
