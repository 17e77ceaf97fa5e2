package matcher

import (
	"testing"

	"github.com/jsonsieve/jsonsieve/path"
)

func TestAnd(t *testing.T) {
	m := And(Must(ParseSimple(`**{"id"}`)), NewDepth(2, 2))
	assertMatches(t, m, `{"a"}{"id"}`, true)
	assertMatches(t, m, `{"id"}`, false)
	assertMatches(t, m, `{"a"}{"b"}{"id"}`, false)
	assertMatches(t, m, `{"a"}{"b"}`, false)
}

func TestOr(t *testing.T) {
	m := Or(Must(ParseSimple(`{"a"}`)), Must(ParseSimple(`{"b"}`)))
	assertMatches(t, m, `{"a"}`, true)
	assertMatches(t, m, `{"b"}`, true)
	assertMatches(t, m, `{"c"}`, false)
}

func TestNot(t *testing.T) {
	m := Not(Must(ParseSimple(`**{"secret"}`)))
	assertMatches(t, m, `{"a"}`, true)
	assertMatches(t, m, `{"secret"}`, false)
	assertMatches(t, m, `{"a"}{"secret"}`, false)
}

func TestCombinatorEmpty(t *testing.T) {
	// An empty And matches everything, an empty Or nothing.
	assertMatches(t, And(), `{"a"}`, true)
	assertMatches(t, Or(), `{"a"}`, false)
}

func TestSet(t *testing.T) {
	s := NewSet()
	a := s.Add(Must(ParseSimple(`{"a"}`)))
	b := s.Add(Must(ParseSimple(`{}`)))
	if s.Len() != 2 {
		t.Fatalf("Len: expected 2, got %d", s.Len())
	}
	s.Push(path.Key("a"))
	got := s.AppendMatched(nil)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("expected both matchers to match, got %v", got)
	}
	s.Push(path.Index(0))
	if got := s.AppendMatched(nil); len(got) != 0 {
		t.Errorf("expected no match, got %v", got)
	}
	s.Pop()
	s.Pop()
	s.Push(path.Key("b"))
	got = s.AppendMatched(nil)
	if len(got) != 1 || got[0] != b {
		t.Errorf("expected only the wildcard matcher, got %v", got)
	}
}

func TestAllMatchesEverything(t *testing.T) {
	assertMatches(t, All{}, ``, true)
	assertMatches(t, All{}, `{"a"}[0]`, true)
}
