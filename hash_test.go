package containers_test

import (
	"hash/fnv"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"

	"github.com/theflywheel/containers"
)

func TestHashFNV1a(t *testing.T) {
	assert.Equal(t, uint64(14695981039346656037), containers.HashString(""))
	assert.Equal(t, uint64(0xaf63dc4c8601ec8c), containers.HashString("a"))

	for _, s := range []string{"", "a", "foobar", "hello, world", "\x00\xff\x80"} {
		h := fnv.New64a()
		_, _ = h.Write([]byte(s))
		want := h.Sum64()

		assert.Equal(t, want, containers.HashString(s), "string %q", s)
		assert.Equal(t, want, containers.HashBytes([]byte(s)), "bytes %q", s)
		assert.Equal(t, want, containers.ViewOfString(s).Hash(), "view %q", s)
		assert.Equal(t, want, containers.TextFromString(s).Hash(), "text %q", s)
	}
}

func TestHashIgnoresSpareCapacity(t *testing.T) {
	a, err := containers.NewTextWithCapacity(64)
	if err != nil {
		t.Fatalf("Failed to create text: %v", err)
	}
	a.PushString("abc")

	assert.Equal(t, containers.HashString("abc"), a.Hash())
}

func TestXXHash(t *testing.T) {
	for _, s := range []string{"", "a", "the quick brown fox"} {
		want := xxhash.Sum64String(s)
		assert.Equal(t, want, containers.XXHashString(s))
		assert.Equal(t, want, containers.XXHashBytes([]byte(s)))
		assert.Equal(t, want, containers.XXHashView(containers.ViewOfString(s)))
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, containers.Equal("a", "a"))
	assert.False(t, containers.Equal(1, 2))
}
