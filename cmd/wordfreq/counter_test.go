package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/containers"
)

func TestCounterTop(t *testing.T) {
	for _, name := range []string{"fnv", "xxhash"} {
		t.Run(name, func(t *testing.T) {
			hash, err := hashFunc(name)
			require.NoError(t, err)
			c, err := newCounter(hash, "")
			require.NoError(t, err)
			defer c.Free()

			c.Add(containers.TextFromString("b a c\na b\n\nb"))
			c.Add(containers.TextFromString("  c  "))

			assert.Equal(t, 3, c.Distinct())
			assert.Equal(t, []WordCount{{"b", 3}, {"a", 2}, {"c", 2}}, c.Top(0))
			assert.Equal(t, []WordCount{{"b", 3}}, c.Top(1))
		})
	}
}

func TestCounterSeparator(t *testing.T) {
	c, err := newCounter(containers.HashView, ";")
	require.NoError(t, err)
	defer c.Free()

	c.Add(containers.TextFromString("x y;x;z x;"))
	assert.Equal(t, []WordCount{{"x", 3}, {"y", 1}, {"z", 1}}, c.Top(10))
}

func TestHashFuncUnknown(t *testing.T) {
	_, err := hashFunc("md5")
	assert.ErrorContains(t, err, "unknown hash")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("go go gopher\n"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--top", "1", good, missing})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.True(t, strings.Contains(out.String(), "      2 go"), out.String())
}

func TestRunStdin(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("one two two"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--top", "0", "--hash", "xxhash"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "      2 two\n      1 one\n", out.String())
}
