package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Collector keeps every diagnostic pushed to it. Exact repeats, which happen
// when the same macro body is reached from cached and uncached paths, are
// kept once.
type Collector struct {
	mu    sync.Mutex
	min   Severity
	diags []Diagnostic
	seen  map[string]struct{}
}

// NewCollector returns a Collector that drops diagnostics below min.
func NewCollector(min Severity) *Collector {
	return &Collector{min: min, seen: make(map[string]struct{})}
}

func (c *Collector) Push(d Diagnostic) {
	if d.Severity < c.min {
		return
	}
	k := fingerprint(d)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	if _, dup := c.seen[k]; dup {
		return
	}
	c.seen[k] = struct{}{}
	c.diags = append(c.diags, d)
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// All returns the diagnostics in arrival order.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.diags)
}

// Sorted returns the diagnostics ordered by location, then message.
func (c *Collector) Sorted() []Diagnostic {
	out := c.All()
	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		la, lb := a.Loc(), b.Loc()
		return cmp.Or(
			strings.Compare(la.File, lb.File),
			cmp.Compare(la.Line, lb.Line),
			cmp.Compare(la.Column, lb.Column),
			strings.Compare(a.Msg, b.Msg),
		)
	})
	return out
}

// Reset drops everything collected so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = nil
	c.seen = make(map[string]struct{})
}

func fingerprint(d Diagnostic) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d|%d|%s|%s", d.Severity, d.Key, d.Msg, d.Info)
	for _, l := range d.Locs {
		fmt.Fprintf(&sb, "|%s:%d:%d:%d:%s", l.Loc.File, l.Loc.Line, l.Loc.Column, l.Loc.Link, l.Msg)
	}
	return sb.String()
}

// Summary counts diagnostics per severity.
type Summary [Fatal + 1]int

func Summarize(diags []Diagnostic) Summary {
	var s Summary
	for _, d := range diags {
		if d.Severity >= Tips && d.Severity <= Fatal {
			s[d.Severity]++
		}
	}
	return s
}

// AtLeast counts diagnostics at or above sev.
func (s Summary) AtLeast(sev Severity) int {
	n := 0
	for i := sev; i <= Fatal; i++ {
		n += s[i]
	}
	return n
}

func (s Summary) String() string {
	var parts []string
	for i := Fatal; i >= Tips; i-- {
		if s[i] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", s[i], i))
		}
	}
	if len(parts) == 0 {
		return "no problems found"
	}
	return strings.Join(parts, ", ")
}
