package containers

import (
	"bytes"
	"unsafe"
)

// TextView is a read-only window onto bytes owned elsewhere, usually a Text.
//
// Views derived from a view (Slice, TrimWhitespace, the Split functions) share
// its owner, so they all go stale together when the Text changes. At and Slice
// report a stale view as ErrStaleView; every other accessor except Valid, Err
// and AtUnchecked panics with an error wrapping ErrStaleView, so a stale key
// can never hash or compare silently.
type TextView struct {
	data  []byte
	owner borrow
}

// ViewOfBytes borrows b without copying it.
func ViewOfBytes(b []byte) TextView {
	return TextView{data: b[:len(b):len(b)]}
}

// ViewOfString borrows the bytes of s without copying them.
func ViewOfString(s string) TextView {
	if s == "" {
		return TextView{}
	}
	return TextView{data: unsafe.Slice(unsafe.StringData(s), len(s))} //nolint:gosec // views never write
}

// Len returns the number of bytes in the view.
func (v TextView) Len() int {
	v.owner.check("TextView.Len")
	return len(v.data)
}

// Valid reports whether the owner is unchanged since the view was taken.
func (v TextView) Valid() bool { return v.owner.valid() }

// Err returns ErrStaleView if the view is no longer valid.
func (v TextView) Err() error { return v.owner.err() }

// At returns the byte at index.
func (v TextView) At(index int) (byte, error) {
	if err := v.owner.err(); err != nil {
		return 0, err
	}
	if index < 0 || index >= len(v.data) {
		return 0, indexError(index, len(v.data))
	}
	return v.data[index], nil
}

// AtUnchecked returns the byte at index without checking the bound or the
// owner.
func (v TextView) AtUnchecked(index int) byte {
	return v.data[index]
}

// Bytes returns the viewed bytes. The slice must not be modified.
func (v TextView) Bytes() []byte {
	v.owner.check("TextView.Bytes")
	return v.data
}

// String returns a copy of the viewed bytes.
func (v TextView) String() string {
	v.owner.check("TextView.String")
	return string(v.data)
}

// Slice returns the sub-view [lo, hi).
func (v TextView) Slice(lo, hi int) (TextView, error) {
	if err := v.owner.err(); err != nil {
		return TextView{}, err
	}
	if lo < 0 || lo > len(v.data) {
		return TextView{}, indexError(lo, len(v.data))
	}
	if hi < lo || hi > len(v.data) {
		return TextView{}, indexError(hi, len(v.data))
	}
	return v.sub(lo, hi), nil
}

// sub is Slice for bounds the caller has already validated.
func (v TextView) sub(lo, hi int) TextView {
	return TextView{data: v.data[lo:hi:hi], owner: v.owner}
}

// Equal reports whether v and o hold the same bytes.
func (v TextView) Equal(o TextView) bool {
	return bytes.Equal(v.Bytes(), o.Bytes())
}

// Hash returns the FNV-1a hash of the viewed bytes.
func (v TextView) Hash() uint64 {
	return fnv64(v.Bytes())
}

// Clone copies the viewed bytes into a new Text.
func (v TextView) Clone() *Text {
	return TextFromView(v)
}

// Iter returns a forward cursor over the viewed bytes.
func (v TextView) Iter() *Cursor[byte] {
	return &Cursor[byte]{data: v.data, owner: v.owner}
}

// HashView hashes a TextView table key.
func HashView(v TextView) uint64 { return v.Hash() }

// EqualView compares two TextView table keys.
func EqualView(a, b TextView) bool { return a.Equal(b) }

// TextFuncs returns the hash and equality functions for a table keyed by
// TextView.
func TextFuncs[V any]() Funcs[TextView, V] {
	return Funcs[TextView, V]{Hash: HashView, Equal: EqualView}
}
