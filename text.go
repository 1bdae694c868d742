package containers

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Text is an owned, growable byte string.
//
// The storage always holds one zero byte past Len, so CString can hand the
// bytes to consumers that expect NUL termination. Capacity grows through
// NextCapacity; PushBytes grows once, far enough for the whole span.
// The zero value is an empty Text ready to use.
//
// A Text is not safe for concurrent use.
type Text struct {
	data []byte // len(data) is capacity+1 once allocated
	n    int
	gen  *generation
}

// NewText returns an empty Text with no storage.
func NewText() *Text {
	return &Text{}
}

// NewTextWithCapacity returns an empty Text with capacity zeroed bytes.
func NewTextWithCapacity(capacity int) (*Text, error) {
	if capacity < 0 {
		return nil, capacityError(capacity, 0)
	}
	return &Text{data: make([]byte, capacity+1)}, nil
}

// TextFromString copies s into a new Text whose capacity equals its length.
func TextFromString(s string) *Text {
	t := &Text{data: make([]byte, len(s)+1), n: len(s)}
	copy(t.data, s)
	return t
}

// TextFromCString copies b up to its first zero byte, or all of b when it has
// none.
func TextFromCString(b []byte) *Text {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	t := &Text{data: make([]byte, len(b)+1), n: len(b)}
	copy(t.data, b)
	return t
}

// TextFromView copies the bytes of v into a new Text. It panics if v is stale.
func TextFromView(v TextView) *Text {
	b := v.Bytes()
	t := &Text{data: make([]byte, len(b)+1), n: len(b)}
	copy(t.data, b)
	return t
}

// ReadText reads the whole file at path into a new Text.
func ReadText(path string) (*Text, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}
	return textFromOwned(b), nil
}

// ReadTextFrom reads r until EOF into a new Text.
func ReadTextFrom(r io.Reader) (*Text, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}
	return textFromOwned(b), nil
}

// textFromOwned adopts b, appending the sentinel in place when there is room.
func textFromOwned(b []byte) *Text {
	n := len(b)
	b = append(b, 0)
	return &Text{data: b[: n+1 : n+1], n: n}
}

// Clone returns a copy of t whose capacity equals its length.
func (t *Text) Clone() *Text {
	return TextFromView(t.View())
}

// Len returns the number of bytes, excluding the sentinel.
func (t *Text) Len() int { return t.n }

// Cap returns how many bytes fit before the next reallocation.
func (t *Text) Cap() int {
	if t.data == nil {
		return 0
	}
	return len(t.data) - 1
}

// Resize reallocates the storage to hold exactly capacity bytes plus the
// sentinel. A capacity of zero allocates the minimum; shrinking below Len is
// rejected.
func (t *Text) Resize(capacity int) error {
	capacity = normalizeCapacity(capacity)
	if capacity < t.n {
		return capacityError(capacity, t.n)
	}
	data := make([]byte, capacity+1)
	copy(data, t.data[:t.n])
	t.data = data
	t.gen.bump()
	return nil
}

// PushByte appends c.
func (t *Text) PushByte(c byte) {
	if t.Cap() == t.n {
		_ = t.Resize(NextCapacity(t.Cap()))
	}
	t.data[t.n] = c
	t.n++
	t.gen.bump()
}

// PushBytes appends b, growing at most once.
func (t *Text) PushBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	if avail := t.Cap() - t.n; len(b) > avail {
		capacity := NextCapacity(t.Cap())
		if need := t.n + len(b); capacity < need {
			capacity = need
		}
		_ = t.Resize(capacity)
	}
	copy(t.data[t.n:], b)
	t.n += len(b)
	t.gen.bump()
}

// PushString appends s.
func (t *Text) PushString(s string) {
	t.PushBytes(ViewOfString(s).data)
}

// PushCString appends b up to its first zero byte.
func (t *Text) PushCString(b []byte) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	t.PushBytes(b)
}

// PushView appends the bytes of v. A stale v is rejected.
func (t *Text) PushView(v TextView) error {
	if err := v.Err(); err != nil {
		return err
	}
	t.PushBytes(v.data)
	return nil
}

// At returns the byte at index.
func (t *Text) At(index int) (byte, error) {
	if index < 0 || index >= t.n {
		return 0, indexError(index, t.n)
	}
	return t.data[index], nil
}

// Bytes returns the contents without the sentinel. The slice aliases t and is
// valid until the next mutation.
func (t *Text) Bytes() []byte {
	if t.data == nil {
		return nil
	}
	return t.data[:t.n:t.n]
}

// CString returns the contents followed by the zero sentinel.
func (t *Text) CString() []byte {
	if t.data == nil {
		return []byte{0}
	}
	return t.data[: t.n+1 : t.n+1]
}

// String returns a copy of the contents.
func (t *Text) String() string {
	return string(t.Bytes())
}

// Equal reports whether t and o hold the same bytes.
func (t *Text) Equal(o *Text) bool {
	return t == o || bytes.Equal(t.Bytes(), o.Bytes())
}

// Hash returns the FNV-1a hash of the contents.
func (t *Text) Hash() uint64 {
	return fnv64(t.Bytes())
}

// View borrows the current contents. The view goes stale on the next mutation.
func (t *Text) View() TextView {
	return TextView{data: t.Bytes(), owner: lend(&t.gen)}
}

// TrimWhitespace returns a view of t without leading and trailing ASCII
// whitespace.
func (t *Text) TrimWhitespace() TextView { return t.View().TrimWhitespace() }

// SplitWhitespace returns views of the whitespace-separated fields of t.
func (t *Text) SplitWhitespace() *Array[TextView] { return t.View().SplitWhitespace() }

// SplitLines returns views of the lines of t.
func (t *Text) SplitLines() *Array[TextView] { return t.View().SplitLines() }

// SplitBy returns views of t split around each occurrence of pattern.
func (t *Text) SplitBy(pattern TextView) *Array[TextView] { return t.View().SplitBy(pattern) }

// SplitByString is SplitBy with a string pattern.
func (t *Text) SplitByString(pattern string) *Array[TextView] {
	return t.View().SplitByString(pattern)
}

// Clear zeroes the used bytes and sets the length to zero. Capacity is kept.
func (t *Text) Clear() {
	if t.data == nil {
		return
	}
	clear(t.data[:t.n])
	t.n = 0
	t.gen.bump()
}

// Free releases the storage. Views taken from t report ErrStaleView afterwards.
func (t *Text) Free() {
	t.data = nil
	t.n = 0
	t.gen.bump()
}
