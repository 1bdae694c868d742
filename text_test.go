package containers_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/containers"
)

func TestTextNew(t *testing.T) {
	text := containers.NewText()
	assert.Equal(t, 0, text.Len())
	assert.Equal(t, 0, text.Cap())
	assert.Equal(t, "", text.String())
	assert.Equal(t, []byte{0}, text.CString())
}

func TestTextWithCapacity(t *testing.T) {
	text, err := containers.NewTextWithCapacity(4)
	require.NoError(t, err)
	assert.Equal(t, 0, text.Len())
	assert.Equal(t, 4, text.Cap())
	assert.Equal(t, []byte{0}, text.CString())

	text.PushString("abcd")
	assert.Equal(t, 4, text.Cap())
	assert.Equal(t, []byte("abcd\x00"), text.CString())

	_, err = containers.NewTextWithCapacity(-1)
	assert.ErrorIs(t, err, containers.ErrInvalidCapacity)
}

func TestTextPushByte(t *testing.T) {
	text := containers.NewText()
	for i := 0; i < 20; i++ {
		text.PushByte(byte('a' + i))
		cs := text.CString()
		require.Len(t, cs, i+2)
		require.Equal(t, byte(0), cs[i+1], "sentinel missing after %d pushes", i+1)
	}
	assert.Equal(t, "abcdefghijklmnopqrst", text.String())
	assert.Equal(t, 32, text.Cap())
}

func TestTextPushBytesGrowsOnce(t *testing.T) {
	testCases := []struct {
		name    string
		initial string
		push    int
		wantCap int
	}{
		{"SmallIntoEmpty", "", 3, 16},
		{"LargeIntoEmpty", "", 40, 40},
		{"FitsAfterDoubling", strings.Repeat("x", 10), 10, 20},
		{"ExceedsDoubling", strings.Repeat("x", 10), 100, 110},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text := containers.TextFromString(tc.initial)
			text.PushBytes([]byte(strings.Repeat("y", tc.push)))

			assert.Equal(t, len(tc.initial)+tc.push, text.Len())
			assert.Equal(t, tc.wantCap, text.Cap())
			assert.Equal(t, tc.initial+strings.Repeat("y", tc.push), text.String())
			assert.Equal(t, byte(0), text.CString()[text.Len()])
		})
	}
}

func TestTextPushVariants(t *testing.T) {
	text := containers.NewText()
	text.PushString("ab")
	text.PushCString([]byte("cd\x00ef"))
	text.PushCString([]byte("gh"))
	require.NoError(t, text.PushView(containers.ViewOfString("ij")))
	text.PushBytes(nil)

	assert.Equal(t, "abcdghij", text.String())
}

func TestTextPushOwnView(t *testing.T) {
	text := containers.TextFromString("abc")
	require.NoError(t, text.PushView(text.View()))
	assert.Equal(t, "abcabc", text.String())

	stale := text.View()
	text.PushByte('!')
	assert.ErrorIs(t, text.PushView(stale), containers.ErrStaleView)
	assert.Equal(t, "abcabc!", text.String())
}

func TestTextConstructors(t *testing.T) {
	fromString := containers.TextFromString("hello")
	assert.Equal(t, 5, fromString.Cap())
	assert.Equal(t, []byte("hello\x00"), fromString.CString())

	fromC := containers.TextFromCString([]byte("hi\x00there"))
	assert.Equal(t, "hi", fromC.String())
	assert.Equal(t, 2, fromC.Cap())

	noNul := containers.TextFromCString([]byte("plain"))
	assert.Equal(t, "plain", noNul.String())

	fromView := containers.TextFromView(containers.ViewOfString("view"))
	assert.Equal(t, "view", fromView.String())
	assert.Equal(t, 4, fromView.Cap())

	clone := fromString.Clone()
	assert.True(t, clone.Equal(fromString))
	clone.PushByte('!')
	assert.Equal(t, "hello", fromString.String())
	assert.False(t, clone.Equal(fromString))
}

func TestTextAt(t *testing.T) {
	text := containers.TextFromString("xyz")

	c, err := text.At(1)
	require.NoError(t, err)
	assert.Equal(t, byte('y'), c)

	_, err = text.At(3)
	assert.ErrorIs(t, err, containers.ErrIndexOutOfRange)
	_, err = text.At(-1)
	assert.ErrorIs(t, err, containers.ErrIndexOutOfRange)
}

func TestTextEqual(t *testing.T) {
	a := containers.TextFromString("same")
	b, err := containers.NewTextWithCapacity(100)
	require.NoError(t, err)
	b.PushString("same")

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(containers.TextFromString("sam")))
	assert.True(t, containers.NewText().Equal(containers.TextFromString("")))
}

func TestTextResize(t *testing.T) {
	text := containers.TextFromString("hello")
	assert.ErrorIs(t, text.Resize(4), containers.ErrInvalidCapacity)

	require.NoError(t, text.Resize(50))
	assert.Equal(t, 50, text.Cap())
	assert.Equal(t, []byte("hello\x00"), text.CString())

	empty := containers.NewText()
	require.NoError(t, empty.Resize(0))
	assert.Equal(t, 16, empty.Cap())
}

func TestTextClearAndFree(t *testing.T) {
	text := containers.TextFromString("secret")
	raw := text.Bytes()

	text.Clear()
	assert.Equal(t, 0, text.Len())
	assert.Equal(t, 6, text.Cap())
	assert.Equal(t, make([]byte, 6), raw, "clear zeroes the used bytes")
	assert.Equal(t, []byte{0}, text.CString())

	v := text.View()
	text.Free()
	assert.Equal(t, 0, text.Cap())
	assert.False(t, v.Valid())

	text.PushString("again")
	assert.Equal(t, "again", text.String())
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o644))

	text, err := containers.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", text.String())
	assert.Equal(t, text.Len(), text.Cap())
	assert.Equal(t, byte(0), text.CString()[text.Len()])

	_, err = containers.ReadText(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadTextFrom(t *testing.T) {
	text, err := containers.ReadTextFrom(strings.NewReader("streamed"))
	require.NoError(t, err)
	assert.Equal(t, "streamed", text.String())

	empty, err := containers.ReadTextFrom(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, []byte{0}, empty.CString())
}

func TestTextViewAccess(t *testing.T) {
	text := containers.TextFromString("borrowed")
	v := text.View()

	assert.Equal(t, 8, v.Len())
	c, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, byte('b'), c)
	assert.Equal(t, byte('d'), v.AtUnchecked(7))

	sub, err := v.Slice(2, 6)
	require.NoError(t, err)
	assert.Equal(t, "rrow", sub.String())

	owned := sub.Clone()
	assert.Equal(t, "rrow", owned.String())

	var got []byte
	cur := sub.Iter()
	for !cur.Done() {
		got = append(got, cur.Next())
	}
	assert.Equal(t, []byte("rrow"), got)

	text.PushByte('!')
	_, err = v.At(0)
	assert.ErrorIs(t, err, containers.ErrStaleView)
	assert.False(t, sub.Valid())
	assert.True(t, owned.View().Valid(), "a clone does not depend on its source")
}

func TestTextViewEqual(t *testing.T) {
	a := containers.ViewOfString("abc")
	b := containers.ViewOfBytes([]byte("abc"))

	assert.True(t, a.Equal(b))
	assert.True(t, containers.EqualView(a, b))
	assert.Equal(t, containers.HashView(a), containers.HashView(b))
	assert.False(t, a.Equal(containers.ViewOfString("abd")))
	assert.True(t, containers.ViewOfString("").Equal(containers.TextView{}))
}
