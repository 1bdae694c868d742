package containers

import "iter"

// Array is a growable array that owns its storage.
//
// Capacity grows lazily through NextCapacity, one step per Push or Insert.
// Length never exceeds capacity and the backing storage is nil exactly when
// capacity is zero. The zero value is an empty Array ready to use.
//
// An Array is not safe for concurrent use.
type Array[T any] struct {
	data []T // len(data) is the capacity
	n    int
	gen  *generation
}

// NewArray returns an empty Array. No storage is allocated until the first push.
func NewArray[T any]() *Array[T] {
	return &Array[T]{}
}

// NewArrayWithCapacity returns an empty Array with room for capacity elements.
func NewArrayWithCapacity[T any](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, capacityError(capacity, 0)
	}
	a := &Array[T]{}
	if capacity > 0 {
		a.data = make([]T, capacity)
	}
	return a, nil
}

// Clone returns a copy of a whose capacity equals its length.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{n: a.n}
	if a.n > 0 {
		c.data = make([]T, a.n)
		copy(c.data, a.data[:a.n])
	}
	return c
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.n }

// Cap returns the number of elements the current storage can hold.
func (a *Array[T]) Cap() int { return len(a.data) }

// Resize reallocates the storage to hold exactly capacity elements.
// A capacity of zero allocates the minimum; shrinking below Len is rejected.
func (a *Array[T]) Resize(capacity int) error {
	capacity = normalizeCapacity(capacity)
	if capacity < a.n {
		return capacityError(capacity, a.n)
	}
	data := make([]T, capacity)
	copy(data, a.data[:a.n])
	a.data = data
	a.gen.bump()
	return nil
}

func (a *Array[T]) grow() {
	if a.n < len(a.data) {
		return
	}
	// Cannot fail: the next capacity is always above the current length.
	_ = a.Resize(NextCapacity(len(a.data)))
}

// Push appends v.
func (a *Array[T]) Push(v T) {
	a.grow()
	a.data[a.n] = v
	a.n++
	a.gen.bump()
}

// Insert places v at index and shifts the trailing elements right by one.
// Index may equal Len, which appends.
func (a *Array[T]) Insert(v T, index int) error {
	if index < 0 || index > a.n {
		return indexError(index, a.n)
	}
	a.grow()
	copy(a.data[index+1:a.n+1], a.data[index:a.n])
	a.data[index] = v
	a.n++
	a.gen.bump()
	return nil
}

// Remove deletes the element at index and shifts the trailing elements left.
// Storage is never reallocated.
func (a *Array[T]) Remove(index int) error {
	return a.RemoveFunc(index, nil)
}

// RemoveFunc is Remove, running drop on the element first when drop is not nil.
func (a *Array[T]) RemoveFunc(index int, drop func(T)) error {
	if index < 0 || index >= a.n {
		return indexError(index, a.n)
	}
	if drop != nil {
		drop(a.data[index])
	}
	copy(a.data[index:a.n-1], a.data[index+1:a.n])
	var zero T
	a.data[a.n-1] = zero
	a.n--
	a.gen.bump()
	return nil
}

// At returns the element at index.
func (a *Array[T]) At(index int) (T, error) {
	if index < 0 || index >= a.n {
		var zero T
		return zero, indexError(index, a.n)
	}
	return a.data[index], nil
}

// AtUnchecked returns the element at index without a length check.
// The caller must ensure 0 <= index < Len; an index inside the spare capacity
// returns a zero value and anything beyond panics.
func (a *Array[T]) AtUnchecked(index int) T {
	return a.data[index]
}

// refUnchecked is Ref without the length check, for callers that already
// validated index.
func (a *Array[T]) refUnchecked(index int) *T {
	return &a.data[index]
}

// Ref returns a pointer to the element at index. The pointer is valid until
// the next call that grows the array.
func (a *Array[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= a.n {
		return nil, indexError(index, a.n)
	}
	return &a.data[index], nil
}

// Set replaces the element at index.
func (a *Array[T]) Set(index int, v T) error {
	if index < 0 || index >= a.n {
		return indexError(index, a.n)
	}
	a.data[index] = v
	a.gen.bump()
	return nil
}

// Each calls fn for every element in order.
func (a *Array[T]) Each(fn func(T)) {
	for i := 0; i < a.n; i++ {
		fn(a.data[i])
	}
}

// EachRef calls fn with a pointer to every element in order.
func (a *Array[T]) EachRef(fn func(*T)) {
	for i := 0; i < a.n; i++ {
		fn(&a.data[i])
	}
}

// All returns an iterator over index/element pairs.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Equal reports whether a and b have the same length and eq holds for every
// pair of elements at the same index.
func (a *Array[T]) Equal(b *Array[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// Hash folds the per-element hashes into one value, so arrays can themselves
// be used as table keys.
func (a *Array[T]) Hash(hash func(T) uint64) uint64 {
	h := uint64(17)
	for i := 0; i < a.n; i++ {
		h = h*31 + hash(a.data[i])
	}
	return h
}

// ToSlice returns a copy of the elements.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.n)
	copy(out, a.data[:a.n])
	return out
}

// Clear runs drop over every element when drop is not nil and sets the
// length to zero. The storage is kept.
func (a *Array[T]) Clear(drop func(T)) {
	if a.data == nil {
		return
	}
	if drop != nil {
		a.Each(drop)
	}
	clear(a.data[:a.n])
	a.n = 0
	a.gen.bump()
}

// Free runs drop over every element when drop is not nil and releases the
// storage. Views and cursors taken from a report ErrStaleView afterwards.
func (a *Array[T]) Free(drop func(T)) {
	if drop != nil {
		a.Each(drop)
	}
	a.data = nil
	a.n = 0
	a.gen.bump()
}

// View borrows the current elements. The view goes stale on the next mutation.
func (a *Array[T]) View() View[T] {
	return View[T]{data: a.data[:a.n:a.n], owner: lend(&a.gen)}
}

// Iter returns a cursor over the current elements.
func (a *Array[T]) Iter() *Cursor[T] {
	return a.View().Iter()
}
