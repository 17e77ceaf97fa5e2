package scanner

import "testing"

func assertPeek(t *testing.T, b *Buffer, xc byte, xok bool) {
	t.Helper()
	c, ok := b.Peek()
	if c != xc || ok != xok {
		t.Fatalf("Peek: expected (%q, %v), got (%q, %v)", xc, xok, c, ok)
	}
}

func assertPos(t *testing.T, b *Buffer, want int) {
	t.Helper()
	if pos := b.Pos(); pos != want {
		t.Fatalf("Pos: expected %d, got %d", want, pos)
	}
}

func TestBufferSimple(t *testing.T) {
	b := NewBuffer()
	assertPeek(t, b, 0, false)
	b.Feed([]byte("bon"))
	assertPeek(t, b, 'b', true)
	assertPos(t, b, 0)
	b.Advance()
	assertPeek(t, b, 'o', true)
	assertPos(t, b, 1)
	b.Advance()
	b.Advance()
	assertPeek(t, b, 0, false)
	// Advancing past the end does not move the cursor.
	b.Advance()
	assertPos(t, b, 3)
	b.Feed([]byte("jour"))
	assertPeek(t, b, 'j', true)
	assertPos(t, b, 3)
}

func TestBufferPosSurvivesReclaim(t *testing.T) {
	b := NewBuffer()
	b.Feed([]byte("abc"))
	b.Advance()
	b.Advance()
	// Feeding reclaims the consumed prefix; absolute positions must not
	// move.
	b.Feed([]byte("def"))
	assertPos(t, b, 2)
	assertPeek(t, b, 'c', true)
	for i := 0; i < 4; i++ {
		b.Advance()
	}
	assertPos(t, b, 6)
	assertPeek(t, b, 0, false)
}

func TestBufferSkipSpace(t *testing.T) {
	b := NewBuffer()
	b.Feed([]byte("  \t\n\r x"))
	c, ok := b.SkipSpaceAndPeek()
	if !ok || c != 'x' {
		t.Fatalf("SkipSpaceAndPeek: expected 'x', got (%q, %v)", c, ok)
	}
	assertPos(t, b, 6)
	b.Advance()
	if _, ok := b.SkipSpaceAndPeek(); ok {
		t.Fatalf("SkipSpaceAndPeek: expected exhaustion")
	}
}

func TestBufferTokenAcrossFeeds(t *testing.T) {
	b := NewBuffer()
	b.Feed([]byte("xhel"))
	b.Advance()
	b.StartToken()
	for i := 0; i < 3; i++ {
		b.Advance()
	}
	// The recorded bytes must survive the reclaim done by Feed.
	b.Feed([]byte("lo!"))
	b.Advance()
	b.Advance()
	tok := b.EndToken()
	if string(tok) != "hello" {
		t.Fatalf("EndToken: expected %q, got %q", "hello", tok)
	}
	assertPeek(t, b, '!', true)
	assertPos(t, b, 6)
}

func TestBufferTokenMisuse(t *testing.T) {
	b := NewBuffer()
	b.Feed([]byte("a"))
	assertPanic(t, func() { b.EndToken() })
	b.StartToken()
	assertPanic(t, func() { b.StartToken() })
}

func assertPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	f()
}

func TestCharClasses(t *testing.T) {
	if !IsDigit('0') || !IsDigit('9') || IsDigit('a') {
		t.Errorf("IsDigit misclassifies")
	}
	if !IsHex('a') || !IsHex('F') || !IsHex('5') || IsHex('g') {
		t.Errorf("IsHex misclassifies")
	}
	if !IsSpace(' ') || !IsSpace('\t') || IsSpace('x') {
		t.Errorf("IsSpace misclassifies")
	}
	if !IsCtrl(0) || !IsCtrl('\n') || IsCtrl(' ') {
		t.Errorf("IsCtrl misclassifies")
	}
}
