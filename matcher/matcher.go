// Package matcher selects locations in a JSON document tree by their path.
//
// A Matcher is an immutable description of which paths are of interest; the
// per-stream runtime lives in the State values it creates.  A State is
// advanced incrementally: Push and Pop mirror the values the stream enters
// and leaves, and Matched reports whether the current path is selected.
// This makes a match decision O(alive pattern positions) per event instead
// of re-scanning the whole path every time.
package matcher

import "github.com/jsonsieve/jsonsieve/path"

// A Matcher selects paths in a JSON document.  A single Matcher may be used
// on several streams at once.
type Matcher interface {
	// NewState returns a fresh runtime state positioned at the document
	// root.
	NewState() State
}

// State tracks one Matcher against the current path of one stream.  Push
// and Pop calls must mirror the path elements of the values entered and
// left; Matched refers to the path formed by the pushes not yet popped (the
// empty path, i.e. a top-level value, before any push).
type State interface {
	Push(el path.Element)
	Pop()
	Matched() bool
}

// All matches every value at every path.
type All struct{}

func (All) NewState() State {
	return allState{}
}

type allState struct{}

func (allState) Push(path.Element) {}
func (allState) Pop()              {}
func (allState) Matched() bool     { return true }

// A Set runs the states of several matchers in lockstep against one
// stream's path.  The zero value is not usable; use NewSet.
type Set struct {
	states []State
}

func NewSet(matchers ...Matcher) *Set {
	s := &Set{}
	for _, m := range matchers {
		s.Add(m)
	}
	return s
}

// Add registers a matcher and returns its index within the set.  The
// state starts at the document root, so matchers must be added before the
// set is pushed to.
func (s *Set) Add(m Matcher) int {
	s.states = append(s.states, m.NewState())
	return len(s.states) - 1
}

func (s *Set) Len() int {
	return len(s.states)
}

func (s *Set) Push(el path.Element) {
	for _, st := range s.states {
		st.Push(el)
	}
}

func (s *Set) Pop() {
	for _, st := range s.states {
		st.Pop()
	}
}

// AppendMatched appends the indices of the matchers whose state matches the
// current path and returns the extended slice.
func (s *Set) AppendMatched(dst []int) []int {
	for i, st := range s.states {
		if st.Matched() {
			dst = append(dst, i)
		}
	}
	return dst
}
