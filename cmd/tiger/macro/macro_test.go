package macro

import (
	"sync"
	"sync/atomic"
	"testing"

	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
)

func at(line int, link uint32) script.Loc {
	return script.Loc{File: "common/scripted_triggers/x.txt", Line: line, Column: 5, Link: link}
}

func arg(name, value string) script.MacroArg {
	return script.MacroArg{Name: name, Value: script.NewToken(value, at(1, 0))}
}

func TestNewKey(t *testing.T) {
	a := NewKey(at(3, 7), []script.MacroArg{arg("B", "2"), arg("A", "1")}, tooltip.Yes, false)
	b := NewKey(at(3, 0), []script.MacroArg{arg("A", "1"), arg("B", "2")}, tooltip.Yes, false)
	if a != b {
		t.Fatalf("keys differ: %v vs %v", a, b)
	}
	if a == NewKey(at(3, 0), nil, tooltip.Yes, false) {
		t.Fatal("arguments ignored")
	}
	if a == NewKey(at(3, 0), []script.MacroArg{arg("A", "1"), arg("B", "2")}, tooltip.No, false) {
		t.Fatal("tooltip mode ignored")
	}
	if a == NewKey(at(3, 0), []script.MacroArg{arg("A", "1"), arg("B", "2")}, tooltip.Yes, true) {
		t.Fatal("negation ignored")
	}
}

func TestPerformAndInsert(t *testing.T) {
	c := NewCache[string]()
	key := script.NewToken("my_trigger", at(4, 0))
	if c.Perform(key, nil, tooltip.No, false, func(string) { t.Fatal("unexpected hit") }) {
		t.Fatal("empty cache hit")
	}
	c.Insert(key, nil, tooltip.No, false, "ctx")

	// The same call site reached through a different macro link is the same key.
	linked := script.NewToken("my_trigger", at(4, 9))
	var got string
	if !c.Perform(linked, nil, tooltip.No, false, func(v string) { got = v }) || got != "ctx" {
		t.Fatalf("hit = %q", got)
	}
	if c.Perform(key, nil, tooltip.Yes, false, func(string) {}) {
		t.Fatal("different tooltip mode should miss")
	}
}

func TestExpandRecursionSeesPlaceholder(t *testing.T) {
	c := NewCache[string]()
	key := script.NewToken("recursive", at(5, 0))
	calls := 0
	var inner string
	var innerOutcome Outcome
	var compute func(*Expansion) string
	compute = func(path *Expansion) string {
		calls++
		inner, innerOutcome = c.Expand(path, key, nil, tooltip.No, false, "placeholder", compute)
		return "done"
	}
	v, o := c.Expand(nil, key, nil, tooltip.No, false, "placeholder", compute)
	if v != "done" || o != Computed {
		t.Fatalf("outer = %q %v", v, o)
	}
	if inner != "placeholder" || innerOutcome != Recursive {
		t.Fatalf("inner = %q %v", inner, innerOutcome)
	}
	if calls != 1 {
		t.Fatalf("compute ran %d times", calls)
	}
	v, o = c.Expand(nil, key, nil, tooltip.No, false, "placeholder", compute)
	if v != "done" || o != Cached {
		t.Fatalf("after = %q %v", v, o)
	}
}

func TestExpandOtherPathDoesNotSeePlaceholder(t *testing.T) {
	c := NewCache[string]()
	key := script.NewToken("shared", at(6, 0))
	entered := make(chan struct{})
	release := make(chan struct{})
	first := make(chan string)
	go func() {
		v, _ := c.Expand(nil, key, nil, tooltip.No, false, "placeholder", func(*Expansion) string {
			close(entered)
			<-release
			return "done"
		})
		first <- v
	}()
	<-entered

	v, o := c.Expand(nil, key, nil, tooltip.No, false, "placeholder", func(*Expansion) string { return "done" })
	if v != "done" || o != Computed {
		t.Fatalf("caller on another path got %q %v while the first computation ran", v, o)
	}
	close(release)
	if v := <-first; v != "done" {
		t.Fatalf("first caller got %q", v)
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestExpandConcurrent(t *testing.T) {
	c := NewCache[string]()
	key := script.NewToken("shared", at(6, 0))
	var runs atomic.Int32
	var wg sync.WaitGroup
	results := make([]string, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Expand(nil, key, nil, tooltip.No, false, "placeholder", func(*Expansion) string {
				runs.Add(1)
				return "done"
			})
		}(i)
	}
	wg.Wait()
	if n := runs.Load(); n < 1 || int(n) > len(results) {
		t.Fatalf("compute ran %d times", n)
	}
	for i, r := range results {
		if r != "done" {
			t.Fatalf("result %d = %q", i, r)
		}
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestExpandDepthLimit(t *testing.T) {
	c := NewCache[string]()
	var outcomes []Outcome
	var descend func(n int) func(*Expansion) string
	descend = func(n int) func(*Expansion) string {
		return func(path *Expansion) string {
			key := script.NewToken("deep", at(n+1, 0))
			_, o := c.Expand(path, key, nil, tooltip.No, false, "placeholder", descend(n+1))
			if o != Computed {
				outcomes = append(outcomes, o)
			}
			return "done"
		}
	}
	descend(0)(nil)
	if len(outcomes) != 1 || outcomes[0] != TooDeep {
		t.Fatalf("outcomes = %v", outcomes)
	}
	if c.Len() != MaxExpansionDepth {
		t.Fatalf("len = %d, want %d", c.Len(), MaxExpansionDepth)
	}
}

func TestExpandBudget(t *testing.T) {
	c := NewCache[string]()
	limits := map[Outcome]int{}
	var branch func(args string) func(*Expansion) string
	branch = func(args string) func(*Expansion) string {
		return func(path *Expansion) string {
			for _, next := range []string{args + "1", args + "2"} {
				_, o := c.Expand(path, script.NewToken("fork", at(7, 0)), []script.MacroArg{arg("N", next)},
					tooltip.No, false, "placeholder", branch(next))
				if o != Computed && o != Cached {
					limits[o]++
				}
			}
			return "done"
		}
	}
	c.Expand(nil, script.NewToken("start", at(8, 0)), nil, tooltip.No, false, "placeholder", branch("1"))
	if n := limits[TooDeep] + limits[TooMany]; n != 1 {
		t.Fatalf("limit reported %d times: %v", n, limits)
	}
	if limits[Skipped] == 0 {
		t.Fatalf("no calls skipped: %v", limits)
	}
	if c.Len() > MaxExpansions {
		t.Fatalf("len = %d, want at most %d", c.Len(), MaxExpansions)
	}
}

func TestLinkMap(t *testing.T) {
	m := NewLinkMap()
	if _, ok := m.Get(0); ok {
		t.Fatal("index 0 must be unused")
	}
	a := m.GetOrInsert(at(10, 0))
	b := m.GetOrInsert(at(11, 0))
	if a == 0 || b == 0 || a == b {
		t.Fatalf("indices %d %d", a, b)
	}
	if again := m.GetOrInsert(at(10, 0)); again != a {
		t.Fatalf("not a bijection: %d vs %d", again, a)
	}
	if loc, ok := m.Get(b); !ok || loc.Line != 11 {
		t.Fatalf("Get(%d) = %v, %v", b, loc, ok)
	}
	if m.Len() != 2 {
		t.Fatalf("len = %d", m.Len())
	}
	m.Reset()
	if _, ok := m.Get(a); ok || m.Len() != 0 {
		t.Fatal("reset kept entries")
	}
}

func TestLinkMapConcurrent(t *testing.T) {
	m := NewLinkMap()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.GetOrInsert(at(i%5, 0))
		}(i)
	}
	wg.Wait()
	if m.Len() != 5 {
		t.Fatalf("len = %d", m.Len())
	}
}
