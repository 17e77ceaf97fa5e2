package matcher

import "github.com/jsonsieve/jsonsieve/path"

// And matches the paths matched by all the given matchers.
func And(ms ...Matcher) Matcher {
	return combinator{ms: ms, all: true}
}

// Or matches the paths matched by at least one of the given matchers.
func Or(ms ...Matcher) Matcher {
	return combinator{ms: ms}
}

// Not matches the paths not matched by the given matcher.
func Not(m Matcher) Matcher {
	return not{m: m}
}

type combinator struct {
	ms  []Matcher
	all bool
}

func (c combinator) NewState() State {
	sts := make([]State, len(c.ms))
	for i, m := range c.ms {
		sts[i] = m.NewState()
	}
	return &combinatorState{sts: sts, all: c.all}
}

type combinatorState struct {
	sts []State
	all bool
}

func (st *combinatorState) Push(el path.Element) {
	for _, s := range st.sts {
		s.Push(el)
	}
}

func (st *combinatorState) Pop() {
	for _, s := range st.sts {
		s.Pop()
	}
}

func (st *combinatorState) Matched() bool {
	for _, s := range st.sts {
		if s.Matched() != st.all {
			return !st.all
		}
	}
	return st.all
}

type not struct {
	m Matcher
}

func (n not) NewState() State {
	return notState{st: n.m.NewState()}
}

type notState struct {
	st State
}

func (n notState) Push(el path.Element) {
	n.st.Push(el)
}

func (n notState) Pop() {
	n.st.Pop()
}

func (n notState) Matched() bool {
	return !n.st.Matched()
}
