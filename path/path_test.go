package path

import "testing"

func TestElementString(t *testing.T) {
	tests := []struct {
		el   Element
		want string
	}{
		{Key("name"), `{"name"}`},
		{Key(""), `{""}`},
		{Key(`a\"b`), `{"a\"b"}`},
		{Index(0), "[0]"},
		{Index(42), "[42]"},
	}
	for _, test := range tests {
		if got := test.el.String(); got != test.want {
			t.Errorf("String: expected %s, got %s", test.want, got)
		}
	}
}

func TestPathString(t *testing.T) {
	p := Path{Key("users"), Index(3), Key("name")}
	const want = `{"users"}[3]{"name"}`
	if got := p.String(); got != want {
		t.Errorf("String: expected %s, got %s", want, got)
	}
	if Path(nil).String() != "" {
		t.Errorf("empty path should render as empty string")
	}
}

func TestParseRoundTrip(t *testing.T) {
	exprs := []string{
		"",
		`{"a"}`,
		`[0]`,
		`{"users"}[3]{"name"}`,
		`{"a\"b"}[1]`,
		`{"é"}`,
	}
	for _, expr := range exprs {
		p, err := Parse(expr)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %s", expr, err)
		}
		if got := p.String(); got != expr {
			t.Errorf("round trip of %q gave %q", expr, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	exprs := []string{
		`{`,
		`{"a"`,
		`{"a"]`,
		`{a}`,
		`[`,
		`[x]`,
		`[-1]`,
		`foo`,
		`{"a"}x`,
	}
	for _, expr := range exprs {
		if _, err := Parse(expr); err == nil {
			t.Errorf("Parse(%q): expected error, got none", expr)
		}
	}
}

func TestPathEqual(t *testing.T) {
	a := Path{Key("x"), Index(1)}
	b := Path{Key("x"), Index(1)}
	c := Path{Key("x"), Index(2)}
	if !a.Equal(b) {
		t.Errorf("expected %s == %s", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %s != %s", a, c)
	}
	if a.Equal(a[:1]) {
		t.Errorf("expected %s != %s", a, a[:1])
	}
}

func TestPathDepth(t *testing.T) {
	if d := (Path{}).Depth(); d != 0 {
		t.Errorf("empty path depth: expected 0, got %d", d)
	}
	if d := (Path{Key("a"), Index(0)}).Depth(); d != 2 {
		t.Errorf("depth: expected 2, got %d", d)
	}
}
