// Package revocation keeps the JWT ids of signed-out sessions until the tokens
// would have expired anyway.
package revocation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// List records revoked token ids.
type List interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Redis key prefix for revoked tokens
const keyPrefix = "jobz:revoked:"

// RedisList is a List shared by every server instance.
type RedisList struct {
	client *redis.Client
}

// NewRedisList wraps an existing client. The caller owns the client.
func NewRedisList(client *redis.Client) *RedisList {
	return &RedisList{client: client}
}

// Dial parses a redis:// URL and checks the server answers.
func Dial(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Revoke marks jti revoked for ttl. Expired tokens need no entry.
func (l *RedisList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, keyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether jti has been revoked and not yet expired.
func (l *RedisList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	_, err := l.client.Get(ctx, keyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return true, nil
}

// MemoryList is a single-process List.
type MemoryList struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryList creates an empty list.
func NewMemoryList() *MemoryList {
	return &MemoryList{expires: make(map[string]time.Time), now: time.Now}
}

// Revoke marks jti revoked for ttl.
func (l *MemoryList) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	l.sweep(now)
	l.expires[jti] = now.Add(ttl)
	return nil
}

// IsRevoked reports whether jti has been revoked and not yet expired.
func (l *MemoryList) IsRevoked(_ context.Context, jti string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	exp, ok := l.expires[jti]
	if !ok {
		return false, nil
	}
	if !l.now().Before(exp) {
		delete(l.expires, jti)
		return false, nil
	}
	return true, nil
}

// sweep drops expired entries. Callers hold mu.
func (l *MemoryList) sweep(now time.Time) {
	for jti, exp := range l.expires {
		if !now.Before(exp) {
			delete(l.expires, jti)
		}
	}
}
