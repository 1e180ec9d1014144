package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"launchsim/internal/config"
)

type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// New picks the backend named in cfg. Redis is used only when an address is
// configured.
func New(cfg config.CacheConfig) Store {
	if strings.EqualFold(strings.TrimSpace(cfg.Backend), "redis") && strings.TrimSpace(cfg.RedisAddr) != "" {
		return NewRedisStore(&redis.Options{
			Addr:     strings.TrimSpace(cfg.RedisAddr),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	return NewMemoryStore()
}

func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var out T
	if s == nil {
		return out, false, nil
	}
	raw, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, err
	}
	return out, true, nil
}

func SetJSON(ctx context.Context, s Store, key string, value any, ttl time.Duration) error {
	if s == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw, ttl)
}
