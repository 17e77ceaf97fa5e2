package handler

import (
	"errors"

	"github.com/jsonsieve/jsonsieve/path"
)

// ErrTooManyStored is returned by a Buffer when more values arrive than its
// limit allows before they are popped.
var ErrTooManyStored = errors.New("handler: too many stored values")

// A Buffer accumulates matched values so they can be popped later, in the
// order they closed.  The zero value is ready to use and stores without
// limit; set MaxStored to bound memory.
type Buffer struct {
	// MaxStored caps the number of values held at once.  Zero means no
	// limit.
	MaxStored int

	stored  []Buffered
	current []byte
}

// A Buffered is one matched value held by a Buffer.
type Buffered struct {
	Path  path.Path
	Bytes []byte
}

var _ Handler = &Buffer{}

func (b *Buffer) Start(p path.Path, matcherIdx int, off int) error {
	if b.MaxStored > 0 && len(b.stored) >= b.MaxStored {
		return ErrTooManyStored
	}
	b.current = nil
	return nil
}

func (b *Buffer) Feed(data []byte, matcherIdx int) error {
	b.current = append(b.current, data...)
	return nil
}

func (b *Buffer) End(p path.Path, matcherIdx int, off int) error {
	b.stored = append(b.stored, Buffered{Path: p, Bytes: b.current})
	b.current = nil
	return nil
}

// Pop returns the oldest stored value, or ok false if none is held.
func (b *Buffer) Pop() (v Buffered, ok bool) {
	if len(b.stored) == 0 {
		return Buffered{}, false
	}
	v = b.stored[0]
	b.stored = b.stored[1:]
	return v, true
}

// Len returns the number of values currently held.
func (b *Buffer) Len() int {
	return len(b.stored)
}
