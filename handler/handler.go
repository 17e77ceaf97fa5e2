// Package handler provides ways to consume matched sub-documents as they
// are extracted from a stream.
//
// A Handler receives, for every matched value, a Start call, the raw bytes
// of the value via one or more Feed calls, and an End call.  The calls for
// one value are delivered together, after the value has closed; values are
// delivered in order of their closing byte.
package handler

import "github.com/jsonsieve/jsonsieve/path"

// A Handler consumes matched values.  The matcher index identifies which
// matcher of the extractor selected the value.  An error returned from any
// method aborts the extraction.
type Handler interface {
	// Start is called when delivery of a matched value begins.  off is the
	// offset of its first byte in the input stream.
	Start(p path.Path, matcherIdx int, off int) error

	// Feed delivers raw bytes of the matched value.  The slice is only
	// valid until the call returns.
	Feed(data []byte, matcherIdx int) error

	// End is called when the value is complete.  off is one past its last
	// byte in the input stream.
	End(p path.Path, matcherIdx int, off int) error
}

// Group runs several handlers as one, calling each in turn and stopping at
// the first error.
func Group(hs ...Handler) Handler {
	return group(hs)
}

type group []Handler

func (g group) Start(p path.Path, matcherIdx int, off int) error {
	for _, h := range g {
		if err := h.Start(p, matcherIdx, off); err != nil {
			return err
		}
	}
	return nil
}

func (g group) Feed(data []byte, matcherIdx int) error {
	for _, h := range g {
		if err := h.Feed(data, matcherIdx); err != nil {
			return err
		}
	}
	return nil
}

func (g group) End(p path.Path, matcherIdx int, off int) error {
	for _, h := range g {
		if err := h.End(p, matcherIdx, off); err != nil {
			return err
		}
	}
	return nil
}
