package matcher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsonsieve/jsonsieve/path"
)

// Depth matches every path whose depth lies between Min and Max inclusive.
// A negative Max means no upper bound.  The document root has depth 0.
type Depth struct {
	Min, Max int
}

var _ Matcher = Depth{}

// NewDepth returns a depth matcher.  Pass a negative max for no upper
// bound.
func NewDepth(min, max int) Depth {
	return Depth{Min: min, Max: max}
}

// ParseDepth parses a depth expression: "2" (exactly 2), "2-" (2 or more),
// "2-4" (between 2 and 4).
func ParseDepth(expr string) (Depth, error) {
	min, rest, dash := strings.Cut(expr, "-")
	lo, err := strconv.Atoi(min)
	if err != nil || lo < 0 {
		return Depth{}, fmt.Errorf("invalid depth expression %q", expr)
	}
	if !dash {
		return Depth{Min: lo, Max: lo}, nil
	}
	if rest == "" {
		return Depth{Min: lo, Max: -1}, nil
	}
	hi, err := strconv.Atoi(rest)
	if err != nil || hi < lo {
		return Depth{}, fmt.Errorf("invalid depth expression %q", expr)
	}
	return Depth{Min: lo, Max: hi}, nil
}

func (d Depth) NewState() State {
	return &depthState{m: d}
}

type depthState struct {
	m     Depth
	depth int
}

func (st *depthState) Push(path.Element) {
	st.depth++
}

func (st *depthState) Pop() {
	st.depth--
}

func (st *depthState) Matched() bool {
	return st.depth >= st.m.Min && (st.m.Max < 0 || st.depth <= st.m.Max)
}
