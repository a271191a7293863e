package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ErrLockHeld is returned when another holder owns the lock.
var ErrLockHeld = fmt.Errorf("lock is held by another run")

// Release gives the lock back. It is safe to call after the TTL expired.
type Release func(ctx context.Context) error

// Locker hands out a non-blocking, time-bounded mutual exclusion.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}

// LocalLocker is an in-process Locker for single-instance deployments.
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]time.Time // key -> expiry
	clock func() time.Time
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]time.Time), clock: time.Now}
}

func (l *LocalLocker) Acquire(_ context.Context, key string, ttl time.Duration) (Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if expiry, ok := l.held[key]; ok && now.Before(expiry) {
		return nil, ErrLockHeld
	}
	expiry := now.Add(ttl)
	l.held[key] = expiry

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		// Only drop our own grant; a later holder may have taken over after expiry.
		if cur, ok := l.held[key]; ok && cur.Equal(expiry) {
			delete(l.held, key)
		}
		return nil
	}, nil
}
