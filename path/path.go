// Package path models locations in a JSON document tree as sequences of
// object keys and array indices, rendered in the compact form
//
//	{"users"}[0]{"name"}
//
// Object keys keep their literal JSON representation (escape sequences are
// not resolved), so two keys are the same element exactly when their source
// bytes between the quotes are the same.
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// An Element is one step in a Path: either an object member key or an array
// index.
type Element struct {
	key   string
	index int
	isKey bool
}

// Key returns an element selecting the object member with the given key.
// The key is the literal representation as it appears in the JSON source,
// without the surrounding quotes.
func Key(key string) Element {
	return Element{key: key, isKey: true}
}

// Index returns an element selecting the array item at the given position.
func Index(index int) Element {
	return Element{index: index}
}

// IsKey reports whether the element is an object member key.
func (e Element) IsKey() bool {
	return e.isKey
}

// Key returns the member key. It is only meaningful when IsKey is true.
func (e Element) Key() string {
	return e.key
}

// Index returns the array position. It is only meaningful when IsKey is
// false.
func (e Element) Index() int {
	return e.index
}

func (e Element) String() string {
	if e.isKey {
		return `{"` + e.key + `"}`
	}
	return "[" + strconv.Itoa(e.index) + "]"
}

// A Path is the location of a value in a JSON document, from the root down.
// The root value itself has the empty Path.
type Path []Element

// Depth is the number of elements in the path (0 for the root).
func (p Path) Depth() int {
	return len(p)
}

func (p Path) String() string {
	var b strings.Builder
	for _, e := range p {
		b.WriteString(e.String())
	}
	return b.String()
}

// Equal reports whether two paths select the same location.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i, e := range p {
		if e != q[i] {
			return false
		}
	}
	return true
}

// Parse converts the display form of a path (e.g. `{"users"}[0]`) back into
// a Path. It is the inverse of String.
func Parse(s string) (Path, error) {
	var p Path
	for len(s) > 0 {
		switch s[0] {
		case '[':
			end := strings.IndexByte(s, ']')
			if end < 0 {
				return nil, fmt.Errorf("invalid path %q: missing ']'", s)
			}
			idx, err := strconv.Atoi(s[1:end])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("invalid path index %q", s[1:end])
			}
			p = append(p, Index(idx))
			s = s[end+1:]
		case '{':
			if len(s) < 2 || s[1] != '"' {
				return nil, fmt.Errorf("invalid path %q: expected '\"' after '{'", s)
			}
			end := keyEnd(s[2:])
			if end < 0 {
				return nil, fmt.Errorf("invalid path %q: unterminated key", s)
			}
			p = append(p, Key(s[2:2+end]))
			s = s[2+end+1:]
			if len(s) == 0 || s[0] != '}' {
				return nil, fmt.Errorf("invalid path %q: expected '}' after key", s)
			}
			s = s[1:]
		default:
			return nil, fmt.Errorf("invalid path element starting at %q", s)
		}
	}
	return p, nil
}

// keyEnd returns the offset of the closing quote of a key literal, honouring
// backslash escapes, or -1 if there is none.
func keyEnd(s string) int {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == '"':
			return i
		}
	}
	return -1
}
