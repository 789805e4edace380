package examples

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// RedisBackend keeps entries as JSON values in one list, oldest first.
type RedisBackend struct {
	rdb *goredis.Client
	key string
}

func NewRedisBackend(cfg RedisConfig) (*RedisBackend, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = "reelcraft:examples"
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisBackend{rdb: rdb, key: key}, nil
}

func (b *RedisBackend) Name() string { return "redis" }

func (b *RedisBackend) Load(ctx context.Context) (Collection, error) {
	raw, err := b.rdb.LRange(ctx, b.key, 0, -1).Result()
	if err != nil {
		return NewCollection(), fmt.Errorf("lrange %s: %w", b.key, err)
	}
	entries := make([]Entry, 0, len(raw))
	for i, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return NewCollection(), fmt.Errorf("decode example %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return fromEntries(entries), nil
}

func (b *RedisBackend) Append(ctx context.Context, e Entry, _ Collection) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode example: %w", err)
	}
	return b.rdb.RPush(ctx, b.key, raw).Err()
}

func (b *RedisBackend) Close() error { return b.rdb.Close() }
