package service

import "sync"

// keyedLocks serializes load-mutate-save sequences per key so concurrent
// updates to the same task (or the same reference) cannot silently drop a
// mutation. Locks are kept for the life of the process; the key space is
// bounded by the number of tasks and references seen.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedLocks) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
