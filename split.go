package containers

// isSpace matches the ASCII whitespace set: space, \t, \n, \v, \f and \r.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimWhitespace returns v without leading and trailing ASCII whitespace.
// An all-whitespace view yields an empty view.
func (v TextView) TrimWhitespace() TextView {
	v.owner.check("TextView.TrimWhitespace")
	start, end := 0, len(v.data)
	for start < end && isSpace(v.data[start]) {
		start++
	}
	for end > start && isSpace(v.data[end-1]) {
		end--
	}
	return v.sub(start, end)
}

// SplitWhitespace returns the maximal runs of non-whitespace bytes in v.
// Leading, trailing and repeated whitespace produce no empty views.
func (v TextView) SplitWhitespace() *Array[TextView] {
	v.owner.check("TextView.SplitWhitespace")
	out := NewArray[TextView]()
	n := len(v.data)
	for start := 0; start < n; {
		for start < n && isSpace(v.data[start]) {
			start++
		}
		if start >= n {
			break
		}
		end := start
		for end < n && !isSpace(v.data[end]) {
			end++
		}
		out.Push(v.sub(start, end))
		start = end
	}
	return out
}

// SplitLines returns the lines of v, split on '\n' with the newline excluded.
// A final unterminated line is included, and a trailing newline yields a
// final empty line, so "a\n" splits into "a" and "".
func (v TextView) SplitLines() *Array[TextView] {
	v.owner.check("TextView.SplitLines")
	out := NewArray[TextView]()
	n := len(v.data)
	start := 0
	for i := 0; i < n; i++ {
		if v.data[i] == '\n' {
			out.Push(v.sub(start, i))
			start = i + 1
		}
	}
	out.Push(v.sub(start, n))
	return out
}

// SplitBy returns the pieces of v around each non-overlapping occurrence of
// pattern, scanning left to right. Text before the first match and between
// matches is always returned, even when empty; the remainder after the last
// match is returned only when it is not empty, so an empty v yields no views
// for any non-empty pattern. An empty pattern splits v into single bytes.
func (v TextView) SplitBy(pattern TextView) *Array[TextView] {
	v.owner.check("TextView.SplitBy")
	pattern.owner.check("TextView.SplitBy")
	n, m := len(v.data), len(pattern.data)
	if m == 0 {
		// Cannot fail: n is not negative.
		out, _ := NewArrayWithCapacity[TextView](n)
		for i := 0; i < n; i++ {
			out.Push(v.sub(i, i+1))
		}
		return out
	}

	out := NewArray[TextView]()
	first := pattern.data[0]
	start := 0
	for at := 0; at+m <= n; {
		if v.data[at] != first || !hasPrefixAt(v.data, pattern.data, at) {
			at++
			continue
		}
		out.Push(v.sub(start, at))
		at += m
		start = at
	}
	if start < n {
		out.Push(v.sub(start, n))
	}
	return out
}

// SplitByString is SplitBy with a string pattern.
func (v TextView) SplitByString(pattern string) *Array[TextView] {
	return v.SplitBy(ViewOfString(pattern))
}

func hasPrefixAt(s, prefix []byte, at int) bool {
	for i := 1; i < len(prefix); i++ {
		if s[at+i] != prefix[i] {
			return false
		}
	}
	return true
}
