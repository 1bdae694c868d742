package main

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/theflywheel/containers"
)

// WordCount is one ranked result.
type WordCount struct {
	Word  string
	Count int
}

// counter tallies words across texts. The texts are kept alive because the
// table keys are views into them.
type counter struct {
	sep    string
	texts  []*containers.Text
	counts *containers.Table[containers.TextView, int]
}

func hashFunc(name string) (func(containers.TextView) uint64, error) {
	switch name {
	case "fnv":
		return containers.HashView, nil
	case "xxhash":
		return containers.XXHashView, nil
	default:
		return nil, fmt.Errorf("unknown hash %q: want fnv or xxhash", name)
	}
}

func newCounter(hash func(containers.TextView) uint64, sep string, opts ...containers.Option) (*counter, error) {
	counts, err := containers.NewTable(containers.Funcs[containers.TextView, int]{
		Hash:  hash,
		Equal: containers.EqualView,
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &counter{sep: sep, counts: counts}, nil
}

// Add counts the words of text. text must not be mutated afterwards.
func (c *counter) Add(text *containers.Text) {
	c.texts = append(c.texts, text)

	records := text.SplitLines()
	if c.sep != "" {
		records = text.SplitByString(c.sep)
	}
	for _, record := range records.All() {
		for _, word := range record.SplitWhitespace().All() {
			if n, ok := c.counts.GetRef(word); ok {
				*n++
				continue
			}
			c.counts.Insert(word, 1)
		}
	}
}

// Distinct returns the number of distinct words seen.
func (c *counter) Distinct() int { return c.counts.Len() }

// Top returns the n most frequent words, most frequent first and ties in byte
// order. n <= 0 returns every word.
func (c *counter) Top(n int) []WordCount {
	type ranked struct {
		word  containers.TextView
		count int
	}
	all := make([]ranked, 0, c.counts.Len())
	for w, k := range c.counts.All() {
		all = append(all, ranked{word: w, count: k})
	}
	slices.SortFunc(all, func(a, b ranked) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return bytes.Compare(a.word.Bytes(), b.word.Bytes())
	})
	if n > 0 && n < len(all) {
		all = all[:n]
	}

	out := make([]WordCount, len(all))
	for i, r := range all {
		out[i] = WordCount{Word: r.word.String(), Count: r.count}
	}
	return out
}

// Free releases the table and the texts.
func (c *counter) Free() {
	c.counts.Free()
	for _, t := range c.texts {
		t.Free()
	}
	c.texts = nil
}
