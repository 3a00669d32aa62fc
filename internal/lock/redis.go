// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extendScript refreshes the TTL only when the key still holds our token.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker implements Locker on top of redis SET NX PX.
//
// Every acquisition stores a random token as the value; release and extend
// only touch keys still holding the caller's token, so an expired lock taken
// over by another holder is never released or prolonged.
type RedisLocker struct {
	client redis.UniversalClient
}

// NewRedisLocker creates a new RedisLocker using client.
func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

// Acquire attempts to acquire a lock.
// Returns the token and true if the lock was acquired, false if it's held by
// another process.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("error acquiring redis lock %s: %w", key, err)
	}
	if !acquired {
		return "", false, nil
	}

	return token, true, nil
}

// AcquireWithRetry attempts to acquire a lock with retries.
func (l *RedisLocker) AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (string, bool, error) {
	return acquireWithRetry(ctx, l.Acquire, key, ttl, maxRetries, retryDelay)
}

// Release releases a lock owned by token.
func (l *RedisLocker) Release(ctx context.Context, key, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int64()
	if err != nil {
		return false, fmt.Errorf("error releasing redis lock %s: %w", key, err)
	}

	return deleted == 1, nil
}

// Extend extends the TTL of a lock owned by token.
func (l *RedisLocker) Extend(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	if token == "" {
		return false, nil
	}

	extended, err := extendScript.Run(ctx, l.client, []string{key}, token, ttl.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("error extending redis lock %s: %w", key, err)
	}

	return extended == 1, nil
}

// IsHeld checks if the key is currently held by any process.
func (l *RedisLocker) IsHeld(ctx context.Context, key string) (bool, error) {
	_, err := l.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking redis lock %s: %w", key, err)
	}
	return true, nil
}

// Close closes the underlying redis client.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}

var _ Locker = (*RedisLocker)(nil)
