// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lock provides local and distributed locking abstractions.
// Single-node deployments use the in-memory locker; several server
// instances sharing one database coordinate through redis.
package lock

import (
	"context"
	"errors"
	"strconv"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/locker_mock.go -package=mock

var (
	// ErrNotAcquired is returned by [Lock.Acquire] when every attempt found
	// the lock held by someone else.
	ErrNotAcquired = errors.New("lock not acquired")

	// ErrLockLost is returned by [Lock.Extend] and [Lock.Release] when the
	// lock expired and is no longer owned by this holder.
	ErrLockLost = errors.New("lock lost")
)

// Locker defines the interface for distributed/local locking.
//
// Every successful acquisition yields an ownership token. Release and Extend
// only act when the key still carries that token, so a holder whose lock
// expired can never free or prolong the lock of the next owner.
type Locker interface {
	// Acquire attempts to acquire a lock.
	// Returns the ownership token and true if the lock was acquired, false if
	// it's held by another process. The lock expires after ttl.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error)

	// AcquireWithRetry attempts to acquire a lock with retries.
	// Will retry up to maxRetries times with retryDelay between attempts.
	AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (string, bool, error)

	// Release releases a lock owned by token.
	// Returns false if the key is free or owned by another token.
	Release(ctx context.Context, key, token string) (bool, error)

	// Extend resets the TTL of a lock owned by token.
	// Returns false if the key is free or owned by another token.
	Extend(ctx context.Context, key, token string, ttl time.Duration) (bool, error)

	// IsHeld checks if the lock is currently held by anyone.
	IsHeld(ctx context.Context, key string) (bool, error)
}

// Options tune how a [Lock] is acquired.
type Options struct {
	TTL        time.Duration
	Retries    int
	RetryDelay time.Duration
}

// Lock is a convenience wrapper for a specific lock instance. It keeps the
// ownership token between Acquire and Release.
type Lock struct {
	locker Locker
	key    string
	opts   Options
	token  string
}

// NewLock creates a new Lock instance.
func NewLock(locker Locker, key string, opts Options) *Lock {
	return &Lock{
		locker: locker,
		key:    key,
		opts:   opts,
	}
}

// Acquire takes the lock with the configured retries. It returns
// [ErrNotAcquired] when the lock stayed busy.
func (l *Lock) Acquire(ctx context.Context) error {
	token, acquired, err := l.locker.AcquireWithRetry(ctx, l.key, l.opts.TTL, l.opts.Retries, l.opts.RetryDelay)
	if err != nil {
		return err
	}
	if !acquired {
		return ErrNotAcquired
	}
	l.token = token
	return nil
}

// Extend resets the TTL to the configured value. It returns [ErrLockLost]
// when the lock expired and may already belong to someone else.
func (l *Lock) Extend(ctx context.Context) error {
	if l.token == "" {
		return ErrLockLost
	}
	extended, err := l.locker.Extend(ctx, l.key, l.token, l.opts.TTL)
	if err != nil {
		return err
	}
	if !extended {
		return ErrLockLost
	}
	return nil
}

// Release releases the lock. Releasing a lock that was never acquired is a
// no-op; a lock that expired in the meantime yields [ErrLockLost] and the
// current owner keeps it.
func (l *Lock) Release(ctx context.Context) error {
	if l.token == "" {
		return nil
	}
	released, err := l.locker.Release(ctx, l.key, l.token)
	l.token = ""
	if err != nil {
		return err
	}
	if !released {
		return ErrLockLost
	}
	return nil
}

// IsHeld returns whether this holder acquired the lock and has not released
// it yet. It does not check expiry.
func (l *Lock) IsHeld() bool {
	return l.token != ""
}

// Key returns the lock key.
func (l *Lock) Key() string {
	return l.key
}

// Keys provides lock key generation for common scenarios.
var Keys = lockKeys{}

type lockKeys struct{}

// UserCharacters returns the key serializing changes to the character links
// of one user. Different users never share a key.
func (lockKeys) UserCharacters(userID int64) string {
	return "lock:user:characters:" + strconv.FormatInt(userID, 10)
}
