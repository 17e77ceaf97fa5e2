package matcher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsonsieve/jsonsieve/path"
)

type segKind uint8

const (
	segKey segKind = iota
	segAnyKey
	segIndex
	segAnyIndex
	segAny
	segDeep
)

// A Segment matches one element of a path (or, for Deep, any number of
// them).
type Segment struct {
	kind  segKind
	key   string
	index int
}

// Key matches the object member with the given key.  The key is compared by
// its literal JSON representation, escapes intact.
func Key(key string) Segment {
	return Segment{kind: segKey, key: key}
}

// AnyKey matches any object member ({} in the simple syntax).
func AnyKey() Segment {
	return Segment{kind: segAnyKey}
}

// Index matches the array item at the given position.
func Index(index int) Segment {
	return Segment{kind: segIndex, index: index}
}

// AnyIndex matches any array item ([] in the simple syntax).
func AnyIndex() Segment {
	return Segment{kind: segAnyIndex}
}

// Any matches any single path element, key or index.
func Any() Segment {
	return Segment{kind: segAny}
}

// Deep matches zero or more path elements of any value.
func Deep() Segment {
	return Segment{kind: segDeep}
}

func (s Segment) matches(el path.Element) bool {
	switch s.kind {
	case segKey:
		return el.IsKey() && el.Key() == s.key
	case segAnyKey:
		return el.IsKey()
	case segIndex:
		return !el.IsKey() && el.Index() == s.index
	case segAnyIndex:
		return !el.IsKey()
	default:
		// segAny, segDeep
		return true
	}
}

func (s Segment) String() string {
	switch s.kind {
	case segKey:
		return `{"` + s.key + `"}`
	case segAnyKey:
		return "{}"
	case segIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	case segAnyIndex:
		return "[]"
	case segAny:
		return "*"
	default:
		return "**"
	}
}

// A Pattern matches paths against a fixed sequence of segments.  The empty
// Pattern matches each top-level value.  Patterns are immutable once built.
type Pattern struct {
	segs []Segment
}

var _ Matcher = &Pattern{}

// NewPattern builds a pattern from segments, e.g.
//
//	NewPattern(Key("users"), AnyIndex(), Key("name"))
//
// matches the name of every user.
func NewPattern(segs ...Segment) *Pattern {
	return &Pattern{segs: segs}
}

func (p *Pattern) String() string {
	var b strings.Builder
	for _, s := range p.segs {
		b.WriteString(s.String())
	}
	return b.String()
}

func (p *Pattern) NewState() State {
	st := &patternState{segs: p.segs}
	st.stack = append(st.stack, st.closure(nil, []uint16{0}))
	return st
}

// patternState advances a pattern over path pushes and pops.  It is a small
// NFA: stack[d] holds the set of pattern positions still alive after the
// d'th path element, so deciding a push costs only the alive positions at
// the top, never a walk over the whole path.  The per-depth sets are pushed
// and popped in lockstep with the path stack itself.
type patternState struct {
	segs  []Segment
	stack [][]uint16
}

// closure extends a position set with the positions reachable by letting
// deep wildcards match zero elements, appending to dst.
func (st *patternState) closure(dst []uint16, set []uint16) []uint16 {
	for _, p := range set {
		dst = appendPos(dst, p)
		// Consecutive deep wildcards are all skippable.
		for int(p) < len(st.segs) && st.segs[p].kind == segDeep {
			p++
			dst = appendPos(dst, p)
		}
	}
	return dst
}

func appendPos(set []uint16, p uint16) []uint16 {
	for _, q := range set {
		if q == p {
			return set
		}
	}
	return append(set, p)
}

func (st *patternState) Push(el path.Element) {
	var next []uint16
	for _, p := range st.stack[len(st.stack)-1] {
		if int(p) == len(st.segs) {
			continue
		}
		seg := st.segs[p]
		if seg.kind == segDeep {
			// A deep wildcard consumes the element and stays alive.
			next = appendPos(next, p)
		} else if seg.matches(el) {
			next = appendPos(next, p+1)
		}
	}
	st.stack = append(st.stack, st.closure(next[:0:0], next))
}

func (st *patternState) Pop() {
	st.stack = st.stack[:len(st.stack)-1]
}

func (st *patternState) Matched() bool {
	for _, p := range st.stack[len(st.stack)-1] {
		if int(p) == len(st.segs) {
			return true
		}
	}
	return false
}

// ParseSimple compiles the compact pattern syntax:
//
//	{"name"}  literal object key
//	{}        any object key
//	[3]       literal array index
//	[]        any array index
//	*         any single element
//	**        zero or more elements
//
// For example `{"users"}[]{"name"}` matches the name of every user and
// `**{"id"}` matches every member called "id" at any depth.  The empty
// string matches each top-level value.
func ParseSimple(expr string) (*Pattern, error) {
	var segs []Segment
	s := expr
	for len(s) > 0 {
		switch s[0] {
		case '{':
			if len(s) >= 2 && s[1] == '}' {
				segs = append(segs, AnyKey())
				s = s[2:]
				continue
			}
			if len(s) < 2 || s[1] != '"' {
				return nil, fmt.Errorf("invalid pattern %q: expected '\"' or '}' after '{'", expr)
			}
			end := keyEnd(s[2:])
			if end < 0 {
				return nil, fmt.Errorf("invalid pattern %q: unterminated key", expr)
			}
			key := s[2 : 2+end]
			s = s[2+end+1:]
			if len(s) == 0 || s[0] != '}' {
				return nil, fmt.Errorf("invalid pattern %q: expected '}' after key", expr)
			}
			segs = append(segs, Key(key))
			s = s[1:]
		case '[':
			end := strings.IndexByte(s, ']')
			if end < 0 {
				return nil, fmt.Errorf("invalid pattern %q: missing ']'", expr)
			}
			if end == 1 {
				segs = append(segs, AnyIndex())
			} else {
				idx, err := strconv.Atoi(s[1:end])
				if err != nil || idx < 0 {
					return nil, fmt.Errorf("invalid pattern %q: bad index %q", expr, s[1:end])
				}
				segs = append(segs, Index(idx))
			}
			s = s[end+1:]
		case '*':
			if len(s) >= 2 && s[1] == '*' {
				segs = append(segs, Deep())
				s = s[2:]
			} else {
				segs = append(segs, Any())
				s = s[1:]
			}
		default:
			return nil, fmt.Errorf("invalid pattern %q: unexpected %q", expr, s[0])
		}
	}
	return NewPattern(segs...), nil
}

// Must panics on a non-nil error.  It lets a parsed pattern be used in a
// single expression:
//
//	m := matcher.Must(matcher.ParseSimple(`{"users"}[]`))
func Must(p *Pattern, err error) *Pattern {
	if err != nil {
		panic(err)
	}
	return p
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
