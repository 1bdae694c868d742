package containers

// Records is an array of fixed-size byte records.
//
// The element size is set once at construction and every record is stored
// back to back in one byte slice, addressed by offset. Use it when the element
// type is only known at run time; Array is the better fit otherwise.
type Records struct {
	data []byte // len(data) is capacity * size
	size int
	n    int
	gen  *generation
}

// NewRecords returns an empty Records holding elements of size bytes.
func NewRecords(size int) (*Records, error) {
	return NewRecordsWithCapacity(size, 0)
}

// NewRecordsWithCapacity returns an empty Records with room for capacity
// elements of size bytes.
func NewRecordsWithCapacity(size, capacity int) (*Records, error) {
	if size <= 0 {
		return nil, ErrElementSize
	}
	if capacity < 0 {
		return nil, capacityError(capacity, 0)
	}
	r := &Records{size: size}
	if capacity > 0 {
		r.data = make([]byte, capacity*size)
	}
	return r, nil
}

// ElementSize returns the fixed byte width of one record.
func (r *Records) ElementSize() int { return r.size }

// Len returns the number of records.
func (r *Records) Len() int { return r.n }

// Cap returns how many records fit before the next reallocation.
func (r *Records) Cap() int { return len(r.data) / r.size }

func (r *Records) offset(index int) int { return index * r.size }

func (r *Records) grow() {
	if r.n < r.Cap() {
		return
	}
	data := make([]byte, NextCapacity(r.Cap())*r.size)
	copy(data, r.data[:r.offset(r.n)])
	r.data = data
}

func (r *Records) check(rec []byte) error {
	if len(rec) != r.size {
		return ErrElementSize
	}
	return nil
}

// Push copies rec to the end. rec must be exactly ElementSize bytes.
func (r *Records) Push(rec []byte) error {
	if err := r.check(rec); err != nil {
		return err
	}
	r.grow()
	copy(r.data[r.offset(r.n):], rec)
	r.n++
	r.gen.bump()
	return nil
}

// Insert copies rec to index, shifting trailing records right by one.
func (r *Records) Insert(rec []byte, index int) error {
	if err := r.check(rec); err != nil {
		return err
	}
	if index < 0 || index > r.n {
		return indexError(index, r.n)
	}
	r.grow()
	at := r.offset(index)
	copy(r.data[at+r.size:r.offset(r.n+1)], r.data[at:r.offset(r.n)])
	copy(r.data[at:], rec)
	r.n++
	r.gen.bump()
	return nil
}

// Remove deletes the record at index, shifting trailing records left.
func (r *Records) Remove(index int) error {
	if index < 0 || index >= r.n {
		return indexError(index, r.n)
	}
	at := r.offset(index)
	end := r.offset(r.n)
	copy(r.data[at:], r.data[at+r.size:end])
	clear(r.data[end-r.size : end])
	r.n--
	r.gen.bump()
	return nil
}

// At returns the record at index. The slice aliases the storage and is valid
// until the next mutation.
func (r *Records) At(index int) ([]byte, error) {
	if index < 0 || index >= r.n {
		return nil, indexError(index, r.n)
	}
	return r.AtUnchecked(index), nil
}

// AtUnchecked returns the record at index without a length check.
func (r *Records) AtUnchecked(index int) []byte {
	at := r.offset(index)
	return r.data[at : at+r.size : at+r.size]
}

// Each calls fn with every record in order.
func (r *Records) Each(fn func([]byte)) {
	for i := 0; i < r.n; i++ {
		fn(r.AtUnchecked(i))
	}
}

// View borrows the records as a view of byte slices.
func (r *Records) View() View[[]byte] {
	recs := make([][]byte, r.n)
	for i := range recs {
		recs[i] = r.AtUnchecked(i)
	}
	return View[[]byte]{data: recs, owner: lend(&r.gen)}
}

// Free releases the storage.
func (r *Records) Free() {
	r.data = nil
	r.n = 0
	r.gen.bump()
}
