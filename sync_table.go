package containers

import "sync"

// SyncTable guards a Table with a read/write mutex so one instance can be
// shared between goroutines. Lookups share the read lock; every mutation takes
// the write lock.
type SyncTable[K, V any] struct {
	mu sync.RWMutex
	t  *Table[K, V]
}

// NewSyncTable wraps t. The caller must not use t directly afterwards.
func NewSyncTable[K, V any](t *Table[K, V]) *SyncTable[K, V] {
	return &SyncTable[K, V]{t: t}
}

// Insert stores value under key.
func (s *SyncTable[K, V]) Insert(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.t.Insert(key, value)
}

// InsertWithHash stores value under key using a precomputed hash.
func (s *SyncTable[K, V]) InsertWithHash(key K, value V, hash uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.t.InsertWithHash(key, value, hash)
}

// Get returns the value stored under key. Values are returned by copy, since
// a reference would escape the lock.
func (s *SyncTable[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Get(key)
}

// Contains reports whether key is present.
func (s *SyncTable[K, V]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Contains(key)
}

// Delete removes key and reports whether it was present.
func (s *SyncTable[K, V]) Delete(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.t.Delete(key)
}

// Update runs fn on the value stored under key while holding the write lock.
// It reports whether key was present.
func (s *SyncTable[K, V]) Update(key K, fn func(*V)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.t.GetRef(key)
	if ok {
		fn(v)
	}
	return ok
}

// Len returns the number of entries.
func (s *SyncTable[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Len()
}

// Each calls fn for every entry under the read lock. fn must not call back
// into s for writing.
func (s *SyncTable[K, V]) Each(fn func(K, V)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.t.Each(fn)
}

// Free drops every entry.
func (s *SyncTable[K, V]) Free() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.t.Free()
}
