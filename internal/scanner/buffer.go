package scanner

// A Buffer is a byte cursor over input that arrives in chunks pushed by the
// caller.  It keeps track of the absolute offset of the cursor from the
// first byte ever fed, and can record a token spanning several chunks.
//
// Consumed bytes are reclaimed on the next Feed, except that bytes of a
// token being recorded are always retained.
type Buffer struct {
	data []byte

	// Absolute offset of data[0] from the start of the input.
	base int

	// Current position in data.
	// 0 <= pos <= len(data)
	pos int

	// Position in data of the currently recorded token.
	// -1 means not recording a token.
	// tokenStart <= pos
	tokenStart int
}

func NewBuffer() *Buffer {
	return &Buffer{tokenStart: -1}
}

// Feed appends a chunk of input, reclaiming the consumed prefix first.
func (b *Buffer) Feed(chunk []byte) {
	keep := b.pos
	if b.tokenStart >= 0 && b.tokenStart < keep {
		keep = b.tokenStart
	}
	if keep > 0 {
		n := copy(b.data, b.data[keep:])
		b.data = b.data[:n]
		b.base += keep
		b.pos -= keep
		if b.tokenStart >= 0 {
			b.tokenStart -= keep
		}
	}
	b.data = append(b.data, chunk...)
}

// Peek returns the byte at the cursor, or false if more input is needed.
func (b *Buffer) Peek() (byte, bool) {
	if b.pos < len(b.data) {
		return b.data[b.pos], true
	}
	return 0, false
}

// Advance moves the cursor past the current byte.
func (b *Buffer) Advance() {
	if b.pos < len(b.data) {
		b.pos++
	}
}

// Pos is the absolute offset of the cursor from the first byte fed.
func (b *Buffer) Pos() int {
	return b.base + b.pos
}

// SkipSpaceAndPeek consumes JSON whitespace and returns the first byte after
// it, or false if the available input is exhausted.
func (b *Buffer) SkipSpaceAndPeek() (byte, bool) {
	for b.pos < len(b.data) {
		c := b.data[b.pos]
		if !IsSpace(c) {
			return c, true
		}
		b.pos++
	}
	return 0, false
}

func (b *Buffer) StartToken() {
	if b.tokenStart >= 0 {
		panic("already recording a token")
	}
	b.tokenStart = b.pos
}

func (b *Buffer) EndToken() []byte {
	if b.tokenStart < 0 {
		panic("not recording a token")
	}
	tok := make([]byte, b.pos-b.tokenStart)
	copy(tok, b.data[b.tokenStart:b.pos])
	b.tokenStart = -1
	return tok
}
