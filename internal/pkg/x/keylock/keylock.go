// Package keylock provides mutual exclusion scoped to a string key. Holders of
// different keys never contend; holders of the same key are serialized.
// Acquisition respects context cancellation.
package keylock

import (
	"context"
	"sync"
)

// entry is a one-slot semaphore shared by every holder and waiter of a key.
type entry struct {
	sem  chan struct{}
	refs int
}

// Locker hands out per-key locks. The zero value is ready to use.
// Entries are dropped once no goroutine holds or waits on them.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New returns an empty Locker.
func New() *Locker {
	return &Locker{}
}

// Lock blocks until the lock for key is acquired or ctx is done. On success
// it returns the function that releases the lock; it must be called exactly
// once. On cancellation it returns ctx.Err().
func (l *Locker) Lock(ctx context.Context, key string) (unlock func(), err error) {
	e := l.acquire(key)

	select {
	case <-ctx.Done():
		l.release(key, e)
		return nil, ctx.Err()
	case e.sem <- struct{}{}:
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			l.release(key, e)
		})
	}, nil
}

// Len returns the number of keys currently held or waited on.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

func (l *Locker) acquire(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.entries == nil {
		l.entries = make(map[string]*entry)
	}

	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *Locker) release(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
