/*
Package containers provides growable arrays, owned and borrowed text, and a
chaining hash table that all share one capacity growth policy.

Array is a generic growable array. Text is a growable byte string that keeps a
zero byte past its end for NUL-terminated consumers. View and TextView borrow
the storage of an Array or Text without copying it, and Cursor walks a view
once from front to back. Table is a hash table whose buckets are Arrays of
entries, built with caller-supplied hash, equality and drop functions.

Basic usage:

	import "github.com/theflywheel/containers"

	text, err := containers.ReadText("words.txt")
	if err != nil {
		log.Fatal(err)
	}

	counts, err := containers.NewTable(containers.TextFuncs[int]())
	if err != nil {
		log.Fatal(err)
	}

	for _, word := range text.SplitWhitespace().All() {
		if n, ok := counts.GetRef(word); ok {
			*n++
			continue
		}
		counts.Insert(word, 1)
	}

Features:

  - One growth policy for every container: double up to 8192 elements, then
    add 8192 at a time; an empty container starts at 16
  - Trimming and splitting return views into the original bytes, never copies
  - Views and cursors detect use after their owner was mutated or freed and
    report ErrStaleView
  - Table grows before an insert would push its load factor over the
    threshold (0.8 unless configured) and reuses stored hashes when it does
  - FNV-1a hashing for text, with xxHash64 helpers for long keys
  - Records for fixed-size byte elements whose type is only known at run time

Concurrency:

None of the containers are safe for concurrent use. SyncTable wraps a Table
with a read/write mutex for callers that need to share one.

Errors:

Out-of-range indexes return an *IndexError that matches ErrIndexOutOfRange.
Invalid capacities and load factors return ErrInvalidCapacity and
ErrInvalidLoadFactor. Running out of memory is left to the Go runtime, which
aborts the process.
*/
package containers
