package asset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

// RedisCache shares logo probe outcomes between service instances
type RedisCache struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisCache creates a cache storing probes under keyPrefix
func NewRedisCache(client redis.UniversalClient, keyPrefix string) *RedisCache {
	return &RedisCache{client: client, keyPrefix: keyPrefix}
}

// ConnectRedis creates a client and checks the server answers
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

func (c *RedisCache) key(abbreviation string) string {
	return c.keyPrefix + abbreviation
}

// Get returns the cached probe, treating a missing key as a miss
func (c *RedisCache) Get(ctx context.Context, abbreviation string) (*entity.LogoProbe, bool, error) {
	raw, err := c.client.Get(ctx, c.key(abbreviation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get logo %s: %w", abbreviation, err)
	}

	var probe entity.LogoProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, false, fmt.Errorf("decode cached logo %s: %w", abbreviation, err)
	}
	return &probe, true, nil
}

// Set stores probe for ttl
func (c *RedisCache) Set(ctx context.Context, abbreviation string, probe *entity.LogoProbe, ttl time.Duration) error {
	if probe == nil || ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(probe)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key(abbreviation), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set logo %s: %w", abbreviation, err)
	}
	return nil
}
