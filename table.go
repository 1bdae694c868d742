package containers

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
)

// DefaultLoadFactor is the load factor of tables built without an explicit one.
const DefaultLoadFactor = 0.8

// Funcs are the callbacks a Table is built with.
//
// Hash and Equal are required, and keys that are Equal must hash the same.
// DropKey and DropValue are optional; the table calls them when it lets go of
// a key or value, on overwrite, Delete and Free, but never on resize.
type Funcs[K, V any] struct {
	Hash      func(K) uint64
	Equal     func(a, b K) bool
	DropKey   func(K)
	DropValue func(V)
}

func (f Funcs[K, V]) validate() error {
	if f.Hash == nil {
		return fmt.Errorf("%w: hash", ErrMissingFunc)
	}
	if f.Equal == nil {
		return fmt.Errorf("%w: equal", ErrMissingFunc)
	}
	return nil
}

func (f Funcs[K, V]) drop(e *entry[K, V]) {
	if f.DropKey != nil {
		f.DropKey(e.key)
	}
	if f.DropValue != nil {
		f.DropValue(e.value)
	}
}

// entry keeps the key's hash so resizing never calls Hash again.
type entry[K, V any] struct {
	hash  uint64
	key   K
	value V
}

// Table is a hash table that resolves collisions by separate chaining.
//
// Buckets are Arrays of entries; the bucket directory is itself an Array.
// Before every insert the table checks whether one more entry would push
// Len/Cap over the load factor and, if so, grows the directory by one
// NextCapacity step, rebuilding it from the stored hashes. Iteration order is
// bucket by bucket, insertion order within a bucket, and changes on resize.
//
// A Table is not safe for concurrent use; see SyncTable.
type Table[K, V any] struct {
	buckets    Array[Array[entry[K, V]]]
	length     int
	loadFactor float64
	funcs      Funcs[K, V]
	logger     *slog.Logger
	gen        *generation
}

// NewTable returns an empty table. The bucket directory is allocated on the
// first insert.
func NewTable[K, V any](funcs Funcs[K, V], opts ...Option) (*Table[K, V], error) {
	return NewTableWithCapacityAndLoadFactor(funcs, 0, DefaultLoadFactor, opts...)
}

// NewTableWithCapacity returns an empty table with capacity buckets.
func NewTableWithCapacity[K, V any](funcs Funcs[K, V], capacity int, opts ...Option) (*Table[K, V], error) {
	return NewTableWithCapacityAndLoadFactor(funcs, capacity, DefaultLoadFactor, opts...)
}

// NewTableWithCapacityAndLoadFactor returns an empty table with capacity
// buckets that grows once Len/Cap would exceed loadFactor.
func NewTableWithCapacityAndLoadFactor[K, V any](funcs Funcs[K, V], capacity int, loadFactor float64, opts ...Option) (*Table[K, V], error) {
	if err := funcs.validate(); err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, capacityError(capacity, 0)
	}
	if math.IsNaN(loadFactor) || math.IsInf(loadFactor, 0) || loadFactor <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLoadFactor, loadFactor)
	}
	o := applyOptions(opts)
	return newTable(funcs, capacity, loadFactor, o.logger), nil
}

func newTable[K, V any](funcs Funcs[K, V], capacity int, loadFactor float64, logger *slog.Logger) *Table[K, V] {
	t := &Table[K, V]{
		loadFactor: loadFactor,
		funcs:      funcs,
		logger:     logger,
	}
	if capacity > 0 {
		t.buckets.data = make([]Array[entry[K, V]], capacity)
		t.buckets.n = capacity
	}
	return t
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int { return t.length }

// Cap returns the number of buckets.
func (t *Table[K, V]) Cap() int { return t.buckets.Len() }

// LoadFactor returns the threshold that triggers growth.
func (t *Table[K, V]) LoadFactor() float64 { return t.loadFactor }

func (t *Table[K, V]) needsGrow() bool {
	c := t.Cap()
	return c == 0 || float64(t.length+1)/float64(c) > t.loadFactor
}

// Resize rebuilds the table with capacity buckets. A capacity of zero means
// the minimum; shrinking below Cap is rejected. Keys and values move to the
// new buckets without being dropped.
func (t *Table[K, V]) Resize(capacity int) error {
	capacity = normalizeCapacity(capacity)
	if capacity < t.Cap() {
		return capacityError(capacity, t.Cap())
	}

	from := t.Cap()
	fresh := newTable(t.funcs, capacity, t.loadFactor, t.logger)
	for i := 0; i < t.buckets.n; i++ {
		b := t.buckets.refUnchecked(i)
		for j := 0; j < b.n; j++ {
			fresh.place(*b.refUnchecked(j))
		}
	}
	t.buckets.Free(nil)
	t.buckets = fresh.buckets
	t.gen.bump()

	t.logger.Debug("table resized",
		"from", from,
		"to", t.Cap(),
		"len", t.length,
	)
	return nil
}

// bucket returns the bucket for hash. The directory must not be empty.
func (t *Table[K, V]) bucket(hash uint64) *Array[entry[K, V]] {
	return t.buckets.refUnchecked(int(hash % uint64(t.buckets.n)))
}

// Insert stores value under key. If an Equal key is already present, the old
// key and value are dropped and replaced in place and Len is unchanged.
func (t *Table[K, V]) Insert(key K, value V) {
	t.InsertWithHash(key, value, t.funcs.Hash(key))
}

// InsertWithHash is Insert with a hash the caller already computed. The hash
// must equal what the table's Hash function returns for key.
func (t *Table[K, V]) InsertWithHash(key K, value V, hash uint64) {
	t.insert(hash, key, value)
}

func (t *Table[K, V]) insert(hash uint64, key K, value V) {
	for t.needsGrow() {
		// Cannot fail: NextCapacity never shrinks.
		_ = t.Resize(NextCapacity(t.Cap()))
	}
	b := t.bucket(hash)
	for i := 0; i < b.n; i++ {
		e := b.refUnchecked(i)
		if t.funcs.Equal(key, e.key) {
			t.funcs.drop(e)
			e.key = key
			e.value = value
			t.gen.bump()
			return
		}
	}
	t.place(entry[K, V]{hash: hash, key: key, value: value})
	t.gen.bump()
}

// place appends e to its bucket without checking for growth or duplicates.
func (t *Table[K, V]) place(e entry[K, V]) {
	b := t.bucket(e.hash)
	if b.Cap() == 0 {
		_ = b.Resize(1)
	}
	b.Push(e)
	t.length++
}

func (t *Table[K, V]) find(key K) (*Array[entry[K, V]], int) {
	if t.buckets.n == 0 {
		return nil, -1
	}
	b := t.bucket(t.funcs.Hash(key))
	for i := 0; i < b.n; i++ {
		if t.funcs.Equal(key, b.refUnchecked(i).key) {
			return b, i
		}
	}
	return b, -1
}

// Get returns the value stored under key and whether it was found.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if b, i := t.find(key); i >= 0 {
		return b.refUnchecked(i).value, true
	}
	var zero V
	return zero, false
}

// GetRef returns a pointer to the value stored under key. The pointer is
// valid until the next insert or delete.
func (t *Table[K, V]) GetRef(key K) (*V, bool) {
	if b, i := t.find(key); i >= 0 {
		return &b.refUnchecked(i).value, true
	}
	return nil, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, i := t.find(key)
	return i >= 0
}

// Delete removes key, dropping its key and value, and reports whether it was
// present.
func (t *Table[K, V]) Delete(key K) bool {
	b, i := t.find(key)
	if i < 0 {
		return false
	}
	_ = b.RemoveFunc(i, func(e entry[K, V]) { t.funcs.drop(&e) })
	t.length--
	t.gen.bump()
	return true
}

// Each calls fn for every entry in iteration order.
func (t *Table[K, V]) Each(fn func(K, V)) {
	for k, v := range t.All() {
		fn(k, v)
	}
}

// All returns an iterator over the entries in iteration order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < t.buckets.n; i++ {
			b := t.buckets.refUnchecked(i)
			for j := 0; j < b.n; j++ {
				e := b.refUnchecked(j)
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Free drops every key and value and releases the buckets. The table can be
// reused afterwards and starts empty.
func (t *Table[K, V]) Free() {
	for i := 0; i < t.buckets.n; i++ {
		b := t.buckets.refUnchecked(i)
		b.Free(func(e entry[K, V]) { t.funcs.drop(&e) })
	}
	t.buckets.Free(nil)
	t.length = 0
	t.gen.bump()
}
