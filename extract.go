package jsonsieve

import (
	"encoding/json"

	"github.com/jsonsieve/jsonsieve/handler"
	"github.com/jsonsieve/jsonsieve/lexer"
	"github.com/jsonsieve/jsonsieve/matcher"
	"github.com/jsonsieve/jsonsieve/path"
)

// A Match is one extracted sub-document.
type Match struct {
	// Path locates the value in the input document.
	Path path.Path

	// Bytes holds the raw input bytes of the value, byte for byte.
	Bytes []byte

	// Matcher is the index of the matcher that selected the value.
	Matcher int
}

// Decode unmarshals the matched bytes into v.
func (m Match) Decode(v any) error {
	return json.Unmarshal(m.Bytes, v)
}

// A capture is a matched value whose closing byte has not arrived yet.
// Observer captures keep no bytes; their handler already got its Start call.
type capture struct {
	start   int
	depth   int
	matcher int
	observe bool
	p       path.Path
}

// An Extractor feeds chunks of a JSON stream through a lexer and collects
// the sub-documents matched by its matchers.  Matches whose matcher has a
// handler are delivered to it; the rest are queued for Pop.  Values are
// emitted in order of their closing byte, so a nested match comes out
// before the match enclosing it.
//
// An Extractor retains input bytes only while a matched value is open, so
// feeding a document much larger than its matched parts stays cheap.
type Extractor struct {
	lex      *lexer.Lexer
	set      *matcher.Set
	handlers []handler.Handler
	observe  []bool

	// window holds the retained input bytes; winBase is the stream offset
	// of window[0].
	window  []byte
	winBase int
	fed     int

	// elems records, per open value, whether it occupies a path element.
	elems    []bool
	captures []capture
	scratch  []int

	queue   []Match
	started bool
	closed  bool
	err     error
}

func NewExtractor() *Extractor {
	return &Extractor{
		lex: lexer.New(),
		set: matcher.NewSet(),
	}
}

// AddMatcher registers a matcher whose matches are queued for Pop.  It
// returns the matcher's index, reported in each Match.  Matchers must be
// registered before the first Feed; adding one later panics.
func (e *Extractor) AddMatcher(m matcher.Matcher) int {
	return e.AddMatcherHandler(m, nil)
}

// AddMatcherHandler registers a matcher whose matches are delivered to h
// instead of the queue.  The handler receives the calls for each value
// together, once the value has closed.
func (e *Extractor) AddMatcherHandler(m matcher.Matcher, h handler.Handler) int {
	return e.add(m, h, false)
}

// AddMatcherObserver registers a matcher whose handler only needs paths and
// offsets: Start is called as soon as the matched value opens, End as soon
// as it closes, and Feed never.  No input bytes are retained for it, so
// observing every value of a large input stays cheap.
func (e *Extractor) AddMatcherObserver(m matcher.Matcher, h handler.Handler) int {
	return e.add(m, h, true)
}

func (e *Extractor) add(m matcher.Matcher, h handler.Handler, observe bool) int {
	if e.started {
		panic("jsonsieve: matcher added after input was fed")
	}
	idx := e.set.Add(m)
	e.handlers = append(e.handlers, h)
	e.observe = append(e.observe, observe)
	return idx
}

// Feed pushes a chunk of input and processes it to the end.  Matches that
// close within the chunk become available to Pop (or are delivered to their
// handler) before Feed returns.  A returned error is fatal; further calls
// return the same error, but matches queued before it remain poppable.
func (e *Extractor) Feed(chunk []byte) error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		panic("jsonsieve: Feed after Close")
	}
	e.started = true
	e.lex.Feed(chunk)
	e.window = append(e.window, chunk...)
	e.fed += len(chunk)
	for {
		ev, err := e.lex.Next()
		if err != nil {
			e.err = err
			return err
		}
		if ev.Type == lexer.Pending {
			break
		}
		if err := e.apply(ev); err != nil {
			e.err = err
			return err
		}
	}
	e.compact()
	return nil
}

// Close ends the input.  A value that only the end of input can terminate
// (a top-level number) is emitted here; an input that stops inside a token
// or an unclosed object or array is an error.
func (e *Extractor) Close() error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return nil
	}
	e.started = true
	for {
		ev, err := e.lex.Finish()
		if err != nil {
			e.err = err
			return err
		}
		if ev.Type == lexer.Finished {
			e.closed = true
			return nil
		}
		if err := e.apply(ev); err != nil {
			e.err = err
			return err
		}
	}
}

// Pop returns the oldest queued match, or ok false if none is available.
func (e *Extractor) Pop() (m Match, ok bool) {
	if len(e.queue) == 0 {
		return Match{}, false
	}
	m = e.queue[0]
	e.queue = e.queue[1:]
	return m, true
}

func (e *Extractor) apply(ev lexer.Event) error {
	switch ev.Type {
	case lexer.Start:
		if ev.HasElem {
			p := e.lex.Path()
			e.set.Push(p[len(p)-1])
		}
		e.elems = append(e.elems, ev.HasElem)
		e.scratch = e.set.AppendMatched(e.scratch[:0])
		if len(e.scratch) > 0 {
			p := append(path.Path(nil), e.lex.Path()...)
			for _, idx := range e.scratch {
				if e.observe[idx] {
					if err := e.handlers[idx].Start(p, idx, ev.Offset); err != nil {
						return err
					}
				}
				e.captures = append(e.captures, capture{
					start:   ev.Offset,
					depth:   len(e.elems) - 1,
					matcher: idx,
					observe: e.observe[idx],
					p:       p,
				})
			}
		}
	case lexer.End:
		d := len(e.elems) - 1
		// Captures of the ending value sit at the tail of the stack, in
		// matcher order.
		j := len(e.captures)
		for j > 0 && e.captures[j-1].depth == d {
			j--
		}
		for _, c := range e.captures[j:] {
			if err := e.deliver(c, ev.Offset); err != nil {
				return err
			}
		}
		e.captures = e.captures[:j]
		hasElem := e.elems[d]
		e.elems = e.elems[:d]
		if hasElem {
			e.set.Pop()
		}
	}
	return nil
}

func (e *Extractor) deliver(c capture, end int) error {
	if c.observe {
		return e.handlers[c.matcher].End(c.p, c.matcher, end)
	}
	data := e.window[c.start-e.winBase : end-e.winBase]
	if h := e.handlers[c.matcher]; h != nil {
		if err := h.Start(c.p, c.matcher, c.start); err != nil {
			return err
		}
		if err := h.Feed(data, c.matcher); err != nil {
			return err
		}
		return h.End(c.p, c.matcher, end)
	}
	// The window is reused, so queued matches get their own copy.
	e.queue = append(e.queue, Match{
		Path:    c.p,
		Bytes:   append([]byte(nil), data...),
		Matcher: c.matcher,
	})
	return nil
}

// compact drops window bytes no open capture can reach.  After a drain the
// lexer has consumed every fed byte, so with nothing capturing bytes the
// whole window can go.  Observer captures do not pin the window.
func (e *Extractor) compact() {
	keep := -1
	for _, c := range e.captures {
		if !c.observe {
			keep = c.start
			break
		}
	}
	if keep < 0 {
		e.window = e.window[:0]
		e.winBase = e.fed
		return
	}
	cut := keep - e.winBase
	if cut > 0 {
		copy(e.window, e.window[cut:])
		e.window = e.window[:len(e.window)-cut]
		e.winBase += cut
	}
}

// Extract runs the whole of data through an Extractor with one matcher per
// pattern and returns the matches in order of their closing byte.
func Extract(data []byte, patterns ...string) ([]Match, error) {
	e := NewExtractor()
	for _, expr := range patterns {
		pat, err := matcher.ParseSimple(expr)
		if err != nil {
			return nil, err
		}
		e.AddMatcher(pat)
	}
	if err := e.Feed(data); err != nil {
		return nil, err
	}
	if err := e.Close(); err != nil {
		return nil, err
	}
	var ms []Match
	for {
		m, ok := e.Pop()
		if !ok {
			return ms, nil
		}
		ms = append(ms, m)
	}
}
