package handler

import "github.com/jsonsieve/jsonsieve/path"

// An Indexer records where each matched value lies in the input stream
// without keeping any of its bytes, so a caller can seek back into the
// original input later.
type Indexer struct {
	entries []IndexEntry
	open    []int
}

// An IndexEntry locates one matched value: input[Start:End] holds its raw
// bytes.
type IndexEntry struct {
	Path  string
	Start int
	End   int
}

var _ Handler = &Indexer{}

func (x *Indexer) Start(p path.Path, matcherIdx int, off int) error {
	x.open = append(x.open, len(x.entries))
	x.entries = append(x.entries, IndexEntry{Path: p.String(), Start: off})
	return nil
}

func (x *Indexer) Feed(data []byte, matcherIdx int) error {
	return nil
}

func (x *Indexer) End(p path.Path, matcherIdx int, off int) error {
	i := x.open[len(x.open)-1]
	x.open = x.open[:len(x.open)-1]
	x.entries[i].End = off
	return nil
}

// Entries returns the recorded locations in order of their starting offset.
func (x *Indexer) Entries() []IndexEntry {
	return x.entries
}
