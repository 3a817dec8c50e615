package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist records revoked access-token IDs until they would have
// expired anyway. Logout writes here; the auth middleware checks here.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}

type tokenBlacklistRedis struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) TokenBlacklist {
	return &tokenBlacklistRedis{client: client}
}

func (t *tokenBlacklistRedis) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to record
		return nil
	}
	key := fmt.Sprintf("revoked:access:%s", jti)
	return t.client.Set(ctx, key, 1, ttl).Err()
}

func (t *tokenBlacklistRedis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	key := fmt.Sprintf("revoked:access:%s", jti)
	n, err := t.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
