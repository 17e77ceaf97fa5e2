package matcher

import "testing"

func TestDepthExact(t *testing.T) {
	m := NewDepth(2, 2)
	assertMatches(t, m, ``, false)
	assertMatches(t, m, `{"a"}`, false)
	assertMatches(t, m, `{"a"}[0]`, true)
	assertMatches(t, m, `{"a"}[0]{"b"}`, false)
}

func TestDepthRange(t *testing.T) {
	m := NewDepth(1, 2)
	assertMatches(t, m, ``, false)
	assertMatches(t, m, `{"a"}`, true)
	assertMatches(t, m, `{"a"}[0]`, true)
	assertMatches(t, m, `{"a"}[0]{"b"}`, false)
}

func TestDepthUnbounded(t *testing.T) {
	m := NewDepth(2, -1)
	assertMatches(t, m, `{"a"}`, false)
	assertMatches(t, m, `{"a"}[0]`, true)
	assertMatches(t, m, `{"a"}[0]{"b"}[1]`, true)
}

func TestParseDepth(t *testing.T) {
	tests := []struct {
		expr     string
		min, max int
	}{
		{"2", 2, 2},
		{"0", 0, 0},
		{"2-", 2, -1},
		{"1-3", 1, 3},
		{"0-0", 0, 0},
	}
	for _, test := range tests {
		d, err := ParseDepth(test.expr)
		if err != nil {
			t.Fatalf("ParseDepth(%q): unexpected error %s", test.expr, err)
		}
		if d.Min != test.min || d.Max != test.max {
			t.Errorf("ParseDepth(%q): expected (%d, %d), got (%d, %d)", test.expr, test.min, test.max, d.Min, d.Max)
		}
	}
}

func TestParseDepthErrors(t *testing.T) {
	for _, expr := range []string{"", "-", "x", "-1", "3-1", "1-x", "1--2"} {
		if _, err := ParseDepth(expr); err == nil {
			t.Errorf("ParseDepth(%q): expected error, got none", expr)
		}
	}
}
