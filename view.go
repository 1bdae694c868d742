package containers

// View is a read-only window onto elements owned elsewhere.
//
// A View taken from an Array remembers the Array's generation; once the Array
// is mutated or freed, At and Slice return ErrStaleView and Len panics with an
// error wrapping it. A View over a plain slice has no owner and is always
// valid. Views are small values and are passed by value.
type View[T any] struct {
	data  []T
	owner borrow
}

// ViewOf borrows s without copying it.
func ViewOf[T any](s []T) View[T] {
	return View[T]{data: s[:len(s):len(s)]}
}

// Len returns the number of elements in the view. It panics if the view is
// stale.
func (v View[T]) Len() int {
	v.owner.check("View.Len")
	return len(v.data)
}

// Valid reports whether the owner is unchanged since the view was taken.
func (v View[T]) Valid() bool { return v.owner.valid() }

// Err returns ErrStaleView if the view is no longer valid.
func (v View[T]) Err() error { return v.owner.err() }

// At returns the element at index.
func (v View[T]) At(index int) (T, error) {
	var zero T
	if err := v.owner.err(); err != nil {
		return zero, err
	}
	if index < 0 || index >= len(v.data) {
		return zero, indexError(index, len(v.data))
	}
	return v.data[index], nil
}

// AtUnchecked returns the element at index. Neither the bound nor the owner's
// generation is checked; an out-of-range index panics.
func (v View[T]) AtUnchecked(index int) T {
	return v.data[index]
}

// Slice returns the sub-view [lo, hi) sharing the same owner.
func (v View[T]) Slice(lo, hi int) (View[T], error) {
	if err := v.owner.err(); err != nil {
		return View[T]{}, err
	}
	if lo < 0 || lo > len(v.data) {
		return View[T]{}, indexError(lo, len(v.data))
	}
	if hi < lo || hi > len(v.data) {
		return View[T]{}, indexError(hi, len(v.data))
	}
	return View[T]{data: v.data[lo:hi:hi], owner: v.owner}, nil
}

// Iter returns a forward cursor over the view.
func (v View[T]) Iter() *Cursor[T] {
	return &Cursor[T]{data: v.data, owner: v.owner}
}
