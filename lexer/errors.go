package lexer

import "fmt"

// UnexpectedByteError reports a byte that cannot appear at its position in
// valid JSON. Offset is the absolute byte offset from the start of the
// input.
type UnexpectedByteError struct {
	Offset int
	Byte   byte
	What   string
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("unexpected byte %q at offset %d: %s", e.Byte, e.Offset, e.What)
}

// InvalidEscapeError reports an invalid escape sequence inside a string.
type InvalidEscapeError struct {
	Offset int
	Byte   byte
}

func (e *InvalidEscapeError) Error() string {
	return fmt.Sprintf("invalid escape character %q at offset %d", e.Byte, e.Offset)
}

// UnterminatedTokenError reports that the input ended in the middle of a
// scalar token (string, number or literal).
type UnterminatedTokenError struct {
	Offset int
}

func (e *UnterminatedTokenError) Error() string {
	return fmt.Sprintf("unterminated token: input ended at offset %d inside a value", e.Offset)
}

// UnbalancedStructureError reports that the input ended with open objects or
// arrays, or with a value still expected.
type UnbalancedStructureError struct {
	Offset int
}

func (e *UnbalancedStructureError) Error() string {
	return fmt.Sprintf("unbalanced structure: input ended at offset %d with an incomplete document", e.Offset)
}
