package containers

import "unsafe"

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// fnv64 computes the 64-bit FNV-1a hash of b.
func fnv64(b []byte) uint64 {
	hash := uint64(offset64)
	for _, c := range b {
		hash ^= uint64(c)
		hash *= prime64
	}
	return hash
}

// HashBytes returns the FNV-1a hash of b. Text and TextView hash the same way.
func HashBytes(b []byte) uint64 { return fnv64(b) }

// HashString returns the FNV-1a hash of s.
func HashString(s string) uint64 {
	return fnv64(unsafe.Slice(unsafe.StringData(s), len(s))) //nolint:gosec // read only
}

// Equal is an equality function for comparable keys.
func Equal[K comparable](a, b K) bool { return a == b }
