package matcher

import (
	"testing"

	"github.com/jsonsieve/jsonsieve/path"
)

// matchPath runs a matcher state down the given path and reports whether it
// matches at the bottom.
func matchPath(t *testing.T, m Matcher, pathExpr string) bool {
	t.Helper()
	p, err := path.Parse(pathExpr)
	if err != nil {
		t.Fatalf("Parse(%q): %s", pathExpr, err)
	}
	st := m.NewState()
	for _, el := range p {
		st.Push(el)
	}
	return st.Matched()
}

func assertMatches(t *testing.T, m Matcher, pathExpr string, want bool) {
	t.Helper()
	if got := matchPath(t, m, pathExpr); got != want {
		t.Errorf("%v on %q: expected %v, got %v", m, pathExpr, want, got)
	}
}

func TestPatternExact(t *testing.T) {
	m := Must(ParseSimple(`{"users"}[0]{"name"}`))
	assertMatches(t, m, `{"users"}[0]{"name"}`, true)
	assertMatches(t, m, `{"users"}[1]{"name"}`, false)
	assertMatches(t, m, `{"users"}[0]{"age"}`, false)
	assertMatches(t, m, `{"users"}[0]`, false)
	assertMatches(t, m, `{"users"}[0]{"name"}[0]`, false)
	assertMatches(t, m, ``, false)
}

func TestPatternWildcards(t *testing.T) {
	m := Must(ParseSimple(`{"users"}[]{"name"}`))
	assertMatches(t, m, `{"users"}[0]{"name"}`, true)
	assertMatches(t, m, `{"users"}[7]{"name"}`, true)
	assertMatches(t, m, `{"users"}{"x"}{"name"}`, false)

	m = Must(ParseSimple(`{}[2]`))
	assertMatches(t, m, `{"xs"}[2]`, true)
	assertMatches(t, m, `[0][2]`, false)

	m = Must(ParseSimple(`*{"id"}`))
	assertMatches(t, m, `{"a"}{"id"}`, true)
	assertMatches(t, m, `[4]{"id"}`, true)
	assertMatches(t, m, `{"id"}`, false)
}

func TestPatternDeepWildcard(t *testing.T) {
	m := Must(ParseSimple(`**{"id"}`))
	assertMatches(t, m, `{"id"}`, true)
	assertMatches(t, m, `{"a"}[3]{"id"}`, true)
	assertMatches(t, m, `{"id"}{"id"}`, true)
	assertMatches(t, m, `{"a"}`, false)
	assertMatches(t, m, ``, false)

	m = Must(ParseSimple(`{"a"}**`))
	assertMatches(t, m, `{"a"}`, true)
	assertMatches(t, m, `{"a"}[0]{"x"}`, true)
	assertMatches(t, m, `{"b"}[0]`, false)

	m = Must(ParseSimple(`{"a"}**{"b"}`))
	assertMatches(t, m, `{"a"}{"b"}`, true)
	assertMatches(t, m, `{"a"}[0][1]{"b"}`, true)
	assertMatches(t, m, `{"a"}{"b"}{"c"}`, false)
}

func TestPatternEmptyMatchesRoot(t *testing.T) {
	m := Must(ParseSimple(``))
	assertMatches(t, m, ``, true)
	assertMatches(t, m, `{"a"}`, false)
}

// A state must recover the enclosing position set when the path pops back
// up.
func TestPatternPushPop(t *testing.T) {
	m := Must(ParseSimple(`{"a"}{"b"}`))
	st := m.NewState()
	st.Push(path.Key("a"))
	st.Push(path.Key("x"))
	if st.Matched() {
		t.Fatalf(`{"a"}{"x"} should not match`)
	}
	st.Pop()
	st.Push(path.Key("b"))
	if !st.Matched() {
		t.Fatalf(`{"a"}{"b"} should match after popping {"x"}`)
	}
	st.Pop()
	st.Pop()
	st.Push(path.Key("b"))
	if st.Matched() {
		t.Fatalf(`{"b"} should not match`)
	}
}

func TestPatternString(t *testing.T) {
	for _, expr := range []string{
		`{"users"}[]{"name"}`,
		`{}[3]*`,
		`**{"id"}`,
		``,
	} {
		m := Must(ParseSimple(expr))
		if got := m.String(); got != expr {
			t.Errorf("String: expected %q, got %q", expr, got)
		}
	}
}

func TestParseSimpleErrors(t *testing.T) {
	for _, expr := range []string{
		`{`,
		`{"a"`,
		`{"a"]`,
		`{x}`,
		`[`,
		`[x]`,
		`[-1]`,
		`foo`,
		`{"a"}#`,
	} {
		if _, err := ParseSimple(expr); err == nil {
			t.Errorf("ParseSimple(%q): expected error, got none", expr)
		}
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	Must(ParseSimple(`{`))
}
