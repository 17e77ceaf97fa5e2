// Package lexer implements an incremental JSON lexer.  Input arrives in
// chunks of arbitrary size pushed by the caller; the lexer suspends in the
// middle of any token when it runs out of bytes and resumes on the next
// Feed, so the events it emits do not depend on how the input is split.
//
// The lexer emits a Start and an End event for every value in the input and
// maintains the path of the value the events refer to, e.g. reading
//
//	{"People": [{"Height": 180, "Age": 33}]}
//
// emits (offset and path)
//
//	Start( 0)  ""
//	Start(11)  {"People"}
//	Start(12)  {"People"}[0]
//	Start(23)  {"People"}[0]{"Height"}
//	End(  26)  {"People"}[0]{"Height"}
//	Start(35)  {"People"}[0]{"Age"}
//	End(  37)  {"People"}[0]{"Age"}
//	End(  38)  {"People"}[0]
//	End(  39)  {"People"}
//	End(  40)  ""
//
// The input may hold any number of concatenated top-level values (JSON
// Lines); each one is a fresh root with the empty path.
package lexer

import (
	"github.com/jsonsieve/jsonsieve/internal/scanner"
	"github.com/jsonsieve/jsonsieve/path"
)

// Kind identifies the JSON type of the value an event refers to.
type Kind uint8

const (
	Object Kind = iota
	Array
	String
	Number
	Bool
	Null
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Null:
		return "null"
	}
	return "invalid"
}

// EventType discriminates the events returned by Next and Finish.
type EventType uint8

const (
	// Pending means the available input is exhausted; feed more and call
	// Next again.
	Pending EventType = iota
	// Start marks the first byte of a value.
	Start
	// End marks the position one past the last byte of a value.
	End
	// Finished is returned by Finish when the input ends cleanly between
	// top-level values.
	Finished
)

// An Event is a structural notification emitted by the lexer.
type Event struct {
	Type   EventType
	Kind   Kind
	Offset int

	// HasElem is set on Start events of values that occupy a path element
	// (i.e. all values except top-level ones).
	HasElem bool
}

type stateKind uint8

const (
	sValue stateKind = iota
	sString
	sNumber
	sLiteral
	sArray
	sObject
	sObjectKey
	sColon
)

// String and key phases.
const (
	strNormal uint8 = iota
	strEscape
	strUnicode
	keyInit
)

// Number phases.
const (
	numStart uint8 = iota
	numIntFirst
	numIntZero
	numInt
	numFracFirst
	numFrac
	numExpFirst
	numExpSign
	numExp
)

func numPhaseTerminal(phase uint8) bool {
	switch phase {
	case numIntZero, numInt, numFrac, numExp:
		return true
	}
	return false
}

// A frame is one suspended parsing state on the lexer's stack.
type frame struct {
	kind stateKind

	// sValue: path element the value will occupy.
	elem path.Element

	// Top-level value: no path element is pushed for it.
	root bool

	// sValue: placeholder before the first array item (so ']' is allowed).
	// sObjectKey: before the first member (so '}' is allowed).
	first bool

	// String/number phase, or progress through a literal.
	phase uint8

	// Remaining hex digits of a \u escape.
	hex int

	// sArray: index of the last started item.
	index int

	// sLiteral: the expected literal text.
	lit string

	// Value kind reported on the End event.
	vkind Kind
}

// A Lexer turns chunks of JSON input into structural events.  It is a plain
// state object: feeding and reading never block, and a Lexer must not be
// shared between goroutines without external synchronization.
type Lexer struct {
	buf     *scanner.Buffer
	stack   []frame
	path    path.Path
	popPath bool
}

func New() *Lexer {
	return &Lexer{buf: scanner.NewBuffer()}
}

// Feed appends a chunk of input.
func (l *Lexer) Feed(chunk []byte) {
	l.buf.Feed(chunk)
}

// Path is the path of the value the last Start or End event referred to.
// After an End event the ended value's element is still present; it is
// removed on the next call to Next or Finish.
func (l *Lexer) Path() path.Path {
	return l.path
}

// Next returns the next structural event, or an event of type Pending when
// the available input is exhausted.  A returned error is fatal: the input
// is not valid JSON and the lexer must not be used further.
func (l *Lexer) Next() (Event, error) {
	l.applyPendingPop()
	for {
		if len(l.stack) == 0 {
			// Between top-level values.
			if _, ok := l.buf.SkipSpaceAndPeek(); !ok {
				return Event{Type: Pending}, nil
			}
			l.stack = append(l.stack, frame{kind: sValue, root: true})
		}
		var (
			ev   Event
			done bool
			err  error
		)
		switch l.stack[len(l.stack)-1].kind {
		case sValue:
			ev, done, err = l.stepValue()
		case sString:
			ev, done, err = l.stepString()
		case sNumber:
			ev, done, err = l.stepNumber()
		case sLiteral:
			ev, done, err = l.stepLiteral()
		case sArray:
			ev, done, err = l.stepArray()
		case sObject:
			ev, done, err = l.stepObject()
		case sObjectKey:
			ev, done, err = l.stepObjectKey()
		case sColon:
			ev, done, err = l.stepColon()
		}
		if err != nil {
			return Event{}, err
		}
		if done {
			return ev, nil
		}
	}
}

// Finish ends the input.  It completes a trailing number if one is pending,
// then reports Finished if the input stopped cleanly between top-level
// values, and an error otherwise.  Call it repeatedly until it returns
// Finished or an error.
func (l *Lexer) Finish() (Event, error) {
	l.applyPendingPop()
	if len(l.stack) == 0 {
		if c, ok := l.buf.SkipSpaceAndPeek(); ok {
			return Event{}, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "input left after close"}
		}
		return Event{Type: Finished}, nil
	}
	top := len(l.stack) - 1
	f := l.stack[top]
	switch f.kind {
	case sNumber:
		// A number can only be terminated by the byte after it; at end of
		// input a complete one is closed here.
		if numPhaseTerminal(f.phase) {
			l.stack = l.stack[:top]
			return l.endEvent(f.root, Number), nil
		}
		return Event{}, &UnterminatedTokenError{Offset: l.buf.Pos()}
	case sObjectKey:
		if f.phase == keyInit {
			// No key started; the enclosing object is simply unclosed.
			return Event{}, &UnbalancedStructureError{Offset: l.buf.Pos()}
		}
		return Event{}, &UnterminatedTokenError{Offset: l.buf.Pos()}
	case sString, sLiteral:
		return Event{}, &UnterminatedTokenError{Offset: l.buf.Pos()}
	default:
		return Event{}, &UnbalancedStructureError{Offset: l.buf.Pos()}
	}
}

// The ended value's path element is kept until the caller has had a chance
// to observe it, then removed here.
func (l *Lexer) applyPendingPop() {
	if l.popPath {
		l.path = l.path[:len(l.path)-1]
		l.popPath = false
	}
}

func (l *Lexer) startEvent(f frame, kind Kind, off int) Event {
	hasElem := !f.root
	if hasElem {
		l.path = append(l.path, f.elem)
	}
	return Event{Type: Start, Kind: kind, Offset: off, HasElem: hasElem}
}

func (l *Lexer) endEvent(root bool, kind Kind) Event {
	l.popPath = !root
	return Event{Type: End, Kind: kind, Offset: l.buf.Pos()}
}

var pending = Event{Type: Pending}

func (l *Lexer) stepValue() (Event, bool, error) {
	top := len(l.stack) - 1
	f := l.stack[top]
	c, ok := l.buf.SkipSpaceAndPeek()
	if !ok {
		return pending, true, nil
	}
	off := l.buf.Pos()
	switch {
	case c == '"':
		l.buf.Advance()
		l.stack[top] = frame{kind: sString, root: f.root}
		return l.startEvent(f, String, off), true, nil
	case c == '{':
		l.buf.Advance()
		l.stack[top] = frame{kind: sObject, root: f.root}
		l.stack = append(l.stack, frame{kind: sObjectKey, phase: keyInit, first: true})
		return l.startEvent(f, Object, off), true, nil
	case c == '[':
		l.buf.Advance()
		l.stack[top] = frame{kind: sArray, root: f.root}
		l.stack = append(l.stack, frame{kind: sValue, elem: path.Index(0), first: true})
		return l.startEvent(f, Array, off), true, nil
	case c == '-' || scanner.IsDigit(c):
		l.stack[top] = frame{kind: sNumber, root: f.root, phase: numStart}
		return l.startEvent(f, Number, off), true, nil
	case c == 't':
		l.stack[top] = frame{kind: sLiteral, root: f.root, lit: "true", vkind: Bool}
		return l.startEvent(f, Bool, off), true, nil
	case c == 'f':
		l.stack[top] = frame{kind: sLiteral, root: f.root, lit: "false", vkind: Bool}
		return l.startEvent(f, Bool, off), true, nil
	case c == 'n':
		l.stack[top] = frame{kind: sLiteral, root: f.root, lit: "null", vkind: Null}
		return l.startEvent(f, Null, off), true, nil
	case c == ']' && f.first:
		// Empty array: drop the placeholder and let the array frame close.
		l.stack = l.stack[:top]
		return Event{}, false, nil
	default:
		return Event{}, false, &UnexpectedByteError{Offset: off, Byte: c, What: "expected a value"}
	}
}

func (l *Lexer) stepString() (Event, bool, error) {
	top := len(l.stack) - 1
	for {
		c, ok := l.buf.Peek()
		if !ok {
			return pending, true, nil
		}
		f := &l.stack[top]
		switch f.phase {
		case strNormal:
			switch {
			case c == '"':
				l.buf.Advance()
				root := f.root
				l.stack = l.stack[:top]
				return l.endEvent(root, String), true, nil
			case c == '\\':
				l.buf.Advance()
				f.phase = strEscape
			case scanner.IsCtrl(c):
				return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "control character in string"}
			default:
				l.buf.Advance()
			}
		default:
			if err := l.stepEscape(f, c); err != nil {
				return Event{}, false, err
			}
		}
	}
}

// stepEscape handles the strEscape and strUnicode phases, shared between
// string values and member keys.
func (l *Lexer) stepEscape(f *frame, c byte) error {
	if f.phase == strEscape {
		switch c {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			l.buf.Advance()
			f.phase = strNormal
		case 'u':
			l.buf.Advance()
			f.phase = strUnicode
			f.hex = 4
		default:
			return &InvalidEscapeError{Offset: l.buf.Pos(), Byte: c}
		}
		return nil
	}
	// strUnicode
	if !scanner.IsHex(c) {
		return &InvalidEscapeError{Offset: l.buf.Pos(), Byte: c}
	}
	l.buf.Advance()
	f.hex--
	if f.hex == 0 {
		f.phase = strNormal
	}
	return nil
}

func (l *Lexer) stepNumber() (Event, bool, error) {
	top := len(l.stack) - 1
	for {
		c, ok := l.buf.Peek()
		if !ok {
			return pending, true, nil
		}
		f := &l.stack[top]
		switch f.phase {
		case numStart:
			if c == '-' {
				l.buf.Advance()
			}
			f.phase = numIntFirst
		case numIntFirst:
			switch {
			case c == '0':
				l.buf.Advance()
				f.phase = numIntZero
			case scanner.IsDigit(c):
				l.buf.Advance()
				f.phase = numInt
			default:
				return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "expected digit"}
			}
		case numIntZero:
			switch {
			case c == '.':
				l.buf.Advance()
				f.phase = numFracFirst
			case c == 'e' || c == 'E':
				l.buf.Advance()
				f.phase = numExpFirst
			default:
				return l.endNumber(top), true, nil
			}
		case numInt:
			switch {
			case scanner.IsDigit(c):
				l.buf.Advance()
			case c == '.':
				l.buf.Advance()
				f.phase = numFracFirst
			case c == 'e' || c == 'E':
				l.buf.Advance()
				f.phase = numExpFirst
			default:
				return l.endNumber(top), true, nil
			}
		case numFracFirst:
			if !scanner.IsDigit(c) {
				return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "expected digit"}
			}
			l.buf.Advance()
			f.phase = numFrac
		case numFrac:
			switch {
			case scanner.IsDigit(c):
				l.buf.Advance()
			case c == 'e' || c == 'E':
				l.buf.Advance()
				f.phase = numExpFirst
			default:
				return l.endNumber(top), true, nil
			}
		case numExpFirst:
			switch {
			case c == '+' || c == '-':
				l.buf.Advance()
				f.phase = numExpSign
			case scanner.IsDigit(c):
				l.buf.Advance()
				f.phase = numExp
			default:
				return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "expected digit"}
			}
		case numExpSign:
			if !scanner.IsDigit(c) {
				return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "expected digit"}
			}
			l.buf.Advance()
			f.phase = numExp
		case numExp:
			if scanner.IsDigit(c) {
				l.buf.Advance()
			} else {
				return l.endNumber(top), true, nil
			}
		}
	}
}

// endNumber closes the number frame at the given stack position.  The
// cursor sits on the byte after the number, which is exactly the End
// offset.
func (l *Lexer) endNumber(top int) Event {
	root := l.stack[top].root
	l.stack = l.stack[:top]
	return l.endEvent(root, Number)
}

func (l *Lexer) stepLiteral() (Event, bool, error) {
	top := len(l.stack) - 1
	for {
		f := &l.stack[top]
		if int(f.phase) == len(f.lit) {
			root, vkind := f.root, f.vkind
			l.stack = l.stack[:top]
			return l.endEvent(root, vkind), true, nil
		}
		c, ok := l.buf.Peek()
		if !ok {
			return pending, true, nil
		}
		if c != f.lit[f.phase] {
			return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "in literal " + f.lit}
		}
		l.buf.Advance()
		f.phase++
	}
}

func (l *Lexer) stepArray() (Event, bool, error) {
	top := len(l.stack) - 1
	c, ok := l.buf.SkipSpaceAndPeek()
	if !ok {
		return pending, true, nil
	}
	switch c {
	case ']':
		l.buf.Advance()
		root := l.stack[top].root
		l.stack = l.stack[:top]
		return l.endEvent(root, Array), true, nil
	case ',':
		l.buf.Advance()
		l.stack[top].index++
		l.stack = append(l.stack, frame{kind: sValue, elem: path.Index(l.stack[top].index)})
		return Event{}, false, nil
	default:
		return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "expected ',' or ']'"}
	}
}

func (l *Lexer) stepObject() (Event, bool, error) {
	top := len(l.stack) - 1
	c, ok := l.buf.SkipSpaceAndPeek()
	if !ok {
		return pending, true, nil
	}
	switch c {
	case '}':
		l.buf.Advance()
		root := l.stack[top].root
		l.stack = l.stack[:top]
		return l.endEvent(root, Object), true, nil
	case ',':
		l.buf.Advance()
		l.stack = append(l.stack, frame{kind: sObjectKey, phase: keyInit})
		return Event{}, false, nil
	default:
		return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "expected ',' or '}'"}
	}
}

func (l *Lexer) stepObjectKey() (Event, bool, error) {
	top := len(l.stack) - 1
	for {
		f := &l.stack[top]
		if f.phase == keyInit {
			c, ok := l.buf.SkipSpaceAndPeek()
			if !ok {
				return pending, true, nil
			}
			if c == '}' && f.first {
				// Empty object: let the object frame close.
				l.stack = l.stack[:top]
				return Event{}, false, nil
			}
			if c != '"' {
				return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "expected member key"}
			}
			l.buf.Advance()
			l.buf.StartToken()
			f.phase = strNormal
			continue
		}
		c, ok := l.buf.Peek()
		if !ok {
			return pending, true, nil
		}
		switch f.phase {
		case strNormal:
			switch {
			case c == '"':
				// The recorded token is the raw key, escapes intact.
				key := string(l.buf.EndToken())
				l.buf.Advance()
				l.stack[top] = frame{kind: sValue, elem: path.Key(key)}
				l.stack = append(l.stack, frame{kind: sColon})
				return Event{}, false, nil
			case c == '\\':
				l.buf.Advance()
				f.phase = strEscape
			case scanner.IsCtrl(c):
				return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "control character in string"}
			default:
				l.buf.Advance()
			}
		default:
			if err := l.stepEscape(f, c); err != nil {
				return Event{}, false, err
			}
		}
	}
}

func (l *Lexer) stepColon() (Event, bool, error) {
	c, ok := l.buf.SkipSpaceAndPeek()
	if !ok {
		return pending, true, nil
	}
	if c != ':' {
		return Event{}, false, &UnexpectedByteError{Offset: l.buf.Pos(), Byte: c, What: "expected ':'"}
	}
	l.buf.Advance()
	l.stack = l.stack[:len(l.stack)-1]
	return Event{}, false, nil
}
