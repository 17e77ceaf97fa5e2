package handler

import (
	"sort"
	"strings"

	"github.com/jsonsieve/jsonsieve/path"
)

// An Analyser counts the occurrences of each path shape in a stream.  Array
// indices are folded into "[]" so that e.g. {"users"}[0]{"name"} and
// {"users"}[1]{"name"} count as the same shape.  Pair it with the All
// matcher to survey the structure of an unknown document.
type Analyser struct {
	// GroupKeys folds object keys into "{}" as well, counting pure nesting
	// shapes.
	GroupKeys bool

	counts map[string]int
}

// A PathCount is one entry of an Analyser's results.
type PathCount struct {
	Path  string
	Count int
}

var _ Handler = &Analyser{}

func (a *Analyser) Start(p path.Path, matcherIdx int, off int) error {
	if a.counts == nil {
		a.counts = make(map[string]int)
	}
	a.counts[a.groupKey(p)]++
	return nil
}

func (a *Analyser) Feed(data []byte, matcherIdx int) error {
	return nil
}

func (a *Analyser) End(p path.Path, matcherIdx int, off int) error {
	return nil
}

func (a *Analyser) groupKey(p path.Path) string {
	var b strings.Builder
	for _, el := range p {
		switch {
		case !el.IsKey():
			b.WriteString("[]")
		case a.GroupKeys:
			b.WriteString("{}")
		default:
			b.WriteString(el.String())
		}
	}
	return b.String()
}

// Results returns the accumulated counts sorted by path.
func (a *Analyser) Results() []PathCount {
	res := make([]PathCount, 0, len(a.counts))
	for p, n := range a.counts {
		res = append(res, PathCount{Path: p, Count: n})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Path < res[j].Path })
	return res
}
