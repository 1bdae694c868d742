package containers

// TableCursor walks every entry of a Table once, bucket by bucket.
type TableCursor[K, V any] struct {
	t      *Table[K, V]
	count  int
	bucket int
	inner  int
	owner  borrow
}

// Iter returns a cursor over the table's entries. Any insert, delete, resize
// or Free invalidates it.
func (t *Table[K, V]) Iter() *TableCursor[K, V] {
	return &TableCursor[K, V]{t: t, owner: lend(&t.gen)}
}

// Done reports whether every entry has been produced, or the table changed.
func (c *TableCursor[K, V]) Done() bool {
	return c.count >= c.t.length || !c.owner.valid()
}

// Next returns the next key and value. Calling it after Done reports true
// panics.
func (c *TableCursor[K, V]) Next() (K, V) {
	if !c.owner.valid() {
		panic("containers: TableCursor.Next on a stale cursor")
	}
	for c.inner >= c.t.buckets.refUnchecked(c.bucket).n {
		c.bucket++
		c.inner = 0
	}
	e := c.t.buckets.refUnchecked(c.bucket).refUnchecked(c.inner)
	c.inner++
	c.count++
	return e.key, e.value
}

// Err returns ErrStaleView if the table changed during the walk.
func (c *TableCursor[K, V]) Err() error {
	return c.owner.err()
}
