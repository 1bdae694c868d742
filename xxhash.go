package containers

import "github.com/cespare/xxhash/v2"

// XXHashBytes hashes b with xxHash64. It is a faster alternative to
// HashBytes for tables keyed by long byte strings.
func XXHashBytes(b []byte) uint64 { return xxhash.Sum64(b) }

// XXHashString hashes s with xxHash64.
func XXHashString(s string) uint64 { return xxhash.Sum64String(s) }

// XXHashView hashes the bytes of v with xxHash64.
func XXHashView(v TextView) uint64 { return xxhash.Sum64(v.Bytes()) }
