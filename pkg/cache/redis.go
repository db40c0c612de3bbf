package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hazyhaar/corrector-es/pkg/corrector"
)

// RedisConfig holds the connection settings of the Redis cache.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// Redis stores results as JSON strings with an expiry.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis. The connection is lazy; use Ping to check it.
func NewRedis(cfg RedisConfig) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{client: client, ttl: cfg.TTL}
}

// Ping checks that the server is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string) (corrector.Result, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return corrector.Result{}, false, nil
	}
	if err != nil {
		return corrector.Result{}, false, fmt.Errorf("redis get: %w", err)
	}
	var res corrector.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return corrector.Result{}, false, fmt.Errorf("decode cached result: %w", err)
	}
	return res, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, res corrector.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
