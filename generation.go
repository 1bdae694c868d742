package containers

import "fmt"

// generation counts the mutations of an owning container. It is allocated the
// first time a view is borrowed so owners that never lend stay allocation free.
type generation struct {
	n uint64
}

// bump records a mutation. A nil receiver means nothing was ever borrowed.
func (g *generation) bump() {
	if g != nil {
		g.n++
	}
}

// borrow is the snapshot a view keeps of its owner's generation.
// The zero value belongs to views over plain slices and never goes stale.
type borrow struct {
	src *generation
	at  uint64
}

// lend returns a borrow tied to *g, allocating the counter on first use.
func lend(g **generation) borrow {
	if *g == nil {
		*g = &generation{}
	}
	return borrow{src: *g, at: (*g).n}
}

func (b borrow) valid() bool {
	return b.src == nil || b.src.n == b.at
}

func (b borrow) err() error {
	if b.valid() {
		return nil
	}
	return ErrStaleView
}

// check panics with an error wrapping ErrStaleView if the owner has changed.
// Accessors that have no error result call it before touching the data.
func (b borrow) check(op string) {
	if !b.valid() {
		panic(fmt.Errorf("containers: %s: %w", op, ErrStaleView))
	}
}
