package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stefanreuther/c2ng-sub017/util"
)

// Key prefixes of the entries kept in Redis.
const (
	RenderPrefix = "render:"
)

var ErrCacheMiss = errors.New("render cache miss")

// RenderedEntry is the cached result of one render call.
type RenderedEntry struct {
	Output     string    `json:"output"`
	Format     string    `json:"format"`
	RenderedAt time.Time `json:"rendered_at"`
}

type Store interface {
	SaveRendered(ctx context.Context, key string, entry RenderedEntry, ttl time.Duration) error
	GetRendered(ctx context.Context, key string) (*RenderedEntry, error)
	DeleteRendered(ctx context.Context, key string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",
		DB:       0,
	})

	return &RedisStore{client: rdb}
}

// SaveRendered stores a render result under key, replacing any previous entry.
func (store *RedisStore) SaveRendered(
	ctx context.Context,
	key string,
	entry RenderedEntry,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to serialize rendered entry: %w", err)
	}

	return store.client.Set(ctx, RenderPrefix+key, jsonData, ttl).Err()
}

// GetRendered returns the entry stored under key, or ErrCacheMiss if there is none.
func (store *RedisStore) GetRendered(ctx context.Context, key string) (*RenderedEntry, error) {
	jsonData, err := store.client.Get(ctx, RenderPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get rendered entry: %w", err)
	}

	var entry RenderedEntry
	if err := json.Unmarshal([]byte(jsonData), &entry); err != nil {
		return nil, fmt.Errorf("failed to parse rendered entry json: %w", err)
	}

	return &entry, nil
}

func (store *RedisStore) DeleteRendered(ctx context.Context, key string) error {
	return store.client.Del(ctx, RenderPrefix+key).Err()
}
