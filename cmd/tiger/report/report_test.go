package report

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"tiger-tools/cmd/tiger/script"
)

func mustContain(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("expected %q to contain %q", s, substr)
	}
}

func at(file string, line, col int) script.Loc {
	return script.Loc{File: file, Line: line, Column: col}
}

func TestMaxSeverity(t *testing.T) {
	d := Err(Scopes).Msg("x").MaxSeverity(Warning).Build()
	if d.Severity != Warning {
		t.Fatalf("severity = %v, want warning", d.Severity)
	}
	d = New(Fatal, Macro).Msg("x").MaxSeverity(Warning).Build()
	if d.Severity != Fatal {
		t.Fatalf("fatal must not be capped, got %v", d.Severity)
	}
	d = New(Tips, Logic).MaxSeverity(Warning).Build()
	if d.Severity != Tips {
		t.Fatalf("cap must not raise, got %v", d.Severity)
	}
}

func TestLocMsgSkipsBuiltin(t *testing.T) {
	d := Warn(Scopes).Loc(at("a.txt", 1, 1)).LocMsg(script.Loc{}, "scope was supplied by the game engine").Build()
	if len(d.Locs) != 1 {
		t.Fatalf("expected builtin location to be dropped, got %+v", d.Locs)
	}
}

func TestCollectorDedupAndSort(t *testing.T) {
	c := NewCollector(Tips)
	Warn(Scopes).Msg("b").Loc(at("z.txt", 1, 1)).Push(c)
	Warn(Scopes).Msg("a").Loc(at("a.txt", 5, 2)).Push(c)
	Warn(Scopes).Msg("a").Loc(at("a.txt", 5, 2)).Push(c)
	Warn(Scopes).Msg("c").Loc(at("a.txt", 2, 9)).Push(c)

	got := c.Sorted()
	if len(got) != 3 {
		t.Fatalf("expected 3 unique diagnostics, got %d", len(got))
	}
	if got[0].Msg != "c" || got[1].Msg != "a" || got[2].Msg != "b" {
		t.Fatalf("unexpected order: %s %s %s", got[0].Msg, got[1].Msg, got[2].Msg)
	}
}

func TestCollectorMinSeverity(t *testing.T) {
	c := NewCollector(Warning)
	New(Tips, Logic).Msg("tip").Push(c)
	Err(Logic).Msg("err").Push(c)
	if c.Len() != 1 {
		t.Fatalf("expected tip to be filtered, got %d", c.Len())
	}
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector(Tips)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Warn(Scopes).Msgf("m%d", i%10).Loc(at("a.txt", i%10, 1)).Push(c)
		}(i)
	}
	wg.Wait()
	if c.Len() != 10 {
		t.Fatalf("expected 10 unique diagnostics, got %d", c.Len())
	}
}

func TestSummary(t *testing.T) {
	s := Summarize([]Diagnostic{
		{Severity: Error}, {Severity: Warning}, {Severity: Warning}, {Severity: Tips},
	})
	if s.AtLeast(Warning) != 3 || s.AtLeast(Error) != 1 {
		t.Fatalf("AtLeast = %d/%d", s.AtLeast(Warning), s.AtLeast(Error))
	}
	if got := s.String(); got != "1 error, 2 warning, 1 tips" {
		t.Fatalf("String = %q", got)
	}
	if Summarize(nil).String() != "no problems found" {
		t.Fatal("empty summary")
	}
}

type links map[uint32]script.Loc

func (l links) Get(idx uint32) (script.Loc, bool) {
	loc, ok := l[idx]
	return loc, ok
}

func TestRenderPlain(t *testing.T) {
	inner := at("common/scripted_triggers/t.txt", 3, 5)
	inner.Link = 1
	d := Warn(Scopes).
		Msg("`liege` is for character but scope seems to be landed title").
		Info("check the caller").
		Loc(inner).
		LocMsg(at("events/e.txt", 1, 1), "scope was deduced from `root` here").
		Build()

	var buf bytes.Buffer
	err := Render(&buf, []Diagnostic{d}, RenderOptions{Links: links{1: at("events/e.txt", 10, 3)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	mustContain(t, out, "warning(scopes): `liege` is for character")
	mustContain(t, out, "--> [common/scripted_triggers/t.txt:3:5]")
	mustContain(t, out, "--> [events/e.txt:10:3] from here")
	mustContain(t, out, "--> [events/e.txt:1:1] scope was deduced")
	mustContain(t, out, "= info: check the caller")
}

func TestParseSeverity(t *testing.T) {
	if s, err := ParseSeverity("Error"); err != nil || s != Error {
		t.Fatalf("ParseSeverity(Error) = %v, %v", s, err)
	}
	if _, err := ParseSeverity("loud"); !errors.Is(err, ErrUnknownSeverity) {
		t.Fatalf("expected ErrUnknownSeverity, got %v", err)
	}
	if _, err := ParseColorMode("sometimes"); !errors.Is(err, ErrUnknownColorMode) {
		t.Fatalf("expected ErrUnknownColorMode, got %v", err)
	}
}
