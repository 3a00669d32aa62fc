// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultCleanupInterval = 30 * time.Second

type memoryLock struct {
	token     string
	expiresAt time.Time
}

func (l memoryLock) expired(now time.Time) bool {
	return now.After(l.expiresAt)
}

// MemoryLocker implements Locker using in-memory locks.
// The locks are NOT shared across process restarts or multiple instances.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]memoryLock

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryLocker creates a new in-memory locker and starts the loop that
// drops expired entries. Call Close to stop it.
func NewMemoryLocker() *MemoryLocker {
	return newMemoryLocker(defaultCleanupInterval)
}

func newMemoryLocker(cleanupInterval time.Duration) *MemoryLocker {
	ml := &MemoryLocker{
		locks: make(map[string]memoryLock),
		stop:  make(chan struct{}),
	}

	go ml.cleanupLoop(cleanupInterval)

	return ml
}

// Close stops the cleanup loop. It is safe to call more than once.
func (m *MemoryLocker) Close() error {
	m.stopOnce.Do(func() { close(m.stop) })
	return nil
}

func (m *MemoryLocker) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

func (m *MemoryLocker) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, l := range m.locks {
		if l.expired(now) {
			delete(m.locks, key)
		}
	}
}

// Acquire attempts to acquire a lock. An expired holder is replaced.
func (m *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if ctx.Err() != nil {
		return "", false, ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if l, exists := m.locks[key]; exists && !l.expired(now) {
		return "", false, nil
	}

	token := uuid.NewString()
	m.locks[key] = memoryLock{token: token, expiresAt: now.Add(ttl)}
	return token, true, nil
}

// AcquireWithRetry attempts to acquire a lock with retries.
func (m *MemoryLocker) AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (string, bool, error) {
	return acquireWithRetry(ctx, m.Acquire, key, ttl, maxRetries, retryDelay)
}

// Release releases a lock owned by token.
func (m *MemoryLocker) Release(ctx context.Context, key, token string) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l, exists := m.ownedLocked(key, token)
	if !exists {
		return false, nil
	}

	delete(m.locks, key)
	return !l.expired(time.Now()), nil
}

// Extend extends the TTL of a lock owned by token. An expired lock cannot be
// extended even when nobody took it over yet.
func (m *MemoryLocker) Extend(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l, exists := m.ownedLocked(key, token)
	if !exists {
		return false, nil
	}

	now := time.Now()
	if l.expired(now) {
		delete(m.locks, key)
		return false, nil
	}

	m.locks[key] = memoryLock{token: token, expiresAt: now.Add(ttl)}
	return true, nil
}

// IsHeld checks if a lock is currently held.
func (m *MemoryLocker) IsHeld(ctx context.Context, key string) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l, exists := m.locks[key]
	if !exists {
		return false, nil
	}
	if l.expired(time.Now()) {
		delete(m.locks, key)
		return false, nil
	}
	return true, nil
}

// ownedLocked must be called with m.mu held.
func (m *MemoryLocker) ownedLocked(key, token string) (memoryLock, bool) {
	l, exists := m.locks[key]
	if !exists || token == "" || l.token != token {
		return memoryLock{}, false
	}
	return l, true
}

// acquireWithRetry calls acquire up to maxRetries+1 times, sleeping
// retryDelay between attempts.
func acquireWithRetry(
	ctx context.Context,
	acquire func(context.Context, string, time.Duration) (string, bool, error),
	key string,
	ttl time.Duration,
	maxRetries int,
	retryDelay time.Duration,
) (string, bool, error) {
	for i := 0; i <= maxRetries; i++ {
		token, acquired, err := acquire(ctx, key, ttl)
		if err != nil {
			return "", false, err
		}
		if acquired {
			return token, true, nil
		}

		// Don't sleep on the last attempt.
		if i < maxRetries {
			select {
			case <-ctx.Done():
				return "", false, ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}
	return "", false, nil
}

var _ Locker = (*MemoryLocker)(nil)
