package containers

// Cursor walks a View or Array once, front to back. It cannot be rewound;
// take a fresh cursor to iterate again.
//
//	c := arr.Iter()
//	for !c.Done() {
//		v := c.Next()
//		...
//	}
//	if err := c.Err(); err != nil { ... }
type Cursor[T any] struct {
	data  []T
	pos   int
	owner borrow
}

// Done reports whether every element has been produced. It also reports true
// once the owner has changed, in which case Err returns ErrStaleView.
func (c *Cursor[T]) Done() bool {
	return c.pos >= len(c.data) || !c.owner.valid()
}

// Next returns the element at the current position and advances.
// Calling Next after Done reports true is a programming error and panics.
func (c *Cursor[T]) Next() T {
	c.owner.check("Cursor.Next")
	v := c.data[c.pos]
	c.pos++
	return v
}

// Remaining returns how many elements are left.
func (c *Cursor[T]) Remaining() int {
	return len(c.data) - c.pos
}

// Err returns ErrStaleView if the owner changed during the walk.
func (c *Cursor[T]) Err() error {
	return c.owner.err()
}
