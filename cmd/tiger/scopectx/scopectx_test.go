package scopectx

import (
	"errors"
	"strings"
	"testing"

	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
)

func tok(text string, line int) script.Token {
	return script.NewToken(text, script.Loc{File: "test.txt", Line: line, Column: 1})
}

func mustHaveDiag(t *testing.T, c *report.Collector, key report.ErrorKey, substr string) report.Diagnostic {
	t.Helper()
	for _, d := range c.All() {
		if d.Key == key && strings.Contains(d.Msg, substr) {
			return d
		}
	}
	t.Fatalf("no %s diagnostic containing %q in %+v", key, substr, c.All())
	return report.Diagnostic{}
}

func mustNoDiags(t *testing.T, c *report.Collector) {
	t.Helper()
	if c.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.All())
	}
}

func newCtx(root scopes.Set) (*Context, *report.Collector) {
	sink := report.NewCollector(report.Tips)
	return New(root, tok("item", 1), WithSink(sink)), sink
}

func TestExpectNarrows(t *testing.T) {
	sc, sink := newCtx(scopes.Character | scopes.LandedTitle)
	if !sc.Expect(scopes.Character, TokenReason(tok("is_adult", 2))) {
		t.Fatal("compatible expectation failed")
	}
	if got := sc.Scopes(); got != scopes.Character {
		t.Fatalf("scopes = %v", got)
	}
	_, r := sc.ScopesReason()
	if r.Token.Text != "is_adult" {
		t.Fatalf("reason = %+v", r)
	}
	mustNoDiags(t, sink)
}

func TestExpectMismatchDegradesToAll(t *testing.T) {
	sc, sink := newCtx(scopes.Character)
	if sc.Expect(scopes.Faith, TokenReason(tok("religion_tag", 3))) {
		t.Fatal("disjoint expectation passed")
	}
	d := mustHaveDiag(t, sink, report.Scopes, "`religion_tag` is for faith but scope seems to be character")
	if d.Loc().Line != 3 {
		t.Fatalf("diagnostic at %v", d.Loc())
	}
	if got := sc.Scopes(); got != scopes.All() {
		t.Fatalf("scopes after mismatch = %v", got)
	}
	if got := sc.RootScopes(); got != scopes.All() {
		t.Fatalf("root after mismatch = %v", got)
	}
}

func TestExpectNoneAndNoWarn(t *testing.T) {
	sc, sink := newCtx(scopes.Character)
	if !sc.Expect(scopes.None, TokenReason(tok("always", 2))) {
		t.Fatal("None must always pass")
	}
	sc.SetNoWarn(true)
	if !sc.Expect(scopes.Faith, TokenReason(tok("religion_tag", 3))) {
		t.Fatal("silenced context should not fail")
	}
	mustNoDiags(t, sink)
	if sc.Scopes() != scopes.Character {
		t.Fatal("silenced context should not narrow")
	}
}

func TestBuilderLevels(t *testing.T) {
	sc, _ := newCtx(scopes.Character)
	sc.OpenBuilder()
	sc.Replace(scopes.LandedTitle, tok("primary_title", 2))
	if sc.Scopes() != scopes.LandedTitle {
		t.Fatalf("builder scopes = %v", sc.Scopes())
	}
	if sc.Depth() != 1 || !sc.IsBuilder() {
		t.Fatalf("depth = %d builder = %v", sc.Depth(), sc.IsBuilder())
	}
	sc.Close()
	if sc.Scopes() != scopes.Character || sc.Depth() != 0 {
		t.Fatalf("after close: %v depth %d", sc.Scopes(), sc.Depth())
	}
	if err := sc.AssertUnwound(); err != nil {
		t.Fatal(err)
	}
}

func TestPrevAndRoot(t *testing.T) {
	sc, _ := newCtx(scopes.Character)
	closeScope := sc.EnterScope(scopes.Faith, tok("faith", 2))
	sc.OpenBuilder()
	sc.ReplacePrev()
	if sc.Scopes() != scopes.Character {
		t.Fatalf("prev = %v", sc.Scopes())
	}
	sc.ReplaceThis()
	if sc.Scopes() != scopes.Faith {
		t.Fatalf("this = %v", sc.Scopes())
	}
	sc.ReplaceRoot()
	if sc.Scopes() != scopes.Character {
		t.Fatalf("root = %v", sc.Scopes())
	}
	// Narrowing through a root reference narrows root itself.
	sc.ChangeRoot(scopes.Character|scopes.Province, tok("item", 1))
	sc.Expect(scopes.Province, TokenReason(tok("has_holding", 3)))
	sc.Close()
	closeScope()
	if sc.RootScopes() != scopes.Province {
		t.Fatalf("root = %v", sc.RootScopes())
	}
}

func TestNarrowingPrevThroughBackref(t *testing.T) {
	sc, _ := newCtx(scopes.All())
	sc.OpenScope(scopes.Character|scopes.Faith, tok("every_thing", 2))
	sc.OpenBuilder()
	sc.ReplaceThis()
	sc.FinalizeBuilder()
	sc.Expect(scopes.Faith, TokenReason(tok("religion_tag", 3)))
	sc.Close()
	if sc.Scopes() != scopes.Faith {
		t.Fatalf("backref did not narrow its origin: %v", sc.Scopes())
	}
	sc.Close()
}

func TestDefineNameRoundTrip(t *testing.T) {
	sc, _ := newCtx(scopes.Character)
	sc.DefineName("actor", scopes.Character, tok("actor", 1))
	if s, ok := sc.IsNameDefined("actor"); !ok || s != scopes.Character {
		t.Fatalf("actor = %v, %v", s, ok)
	}
	sc.DefineNameToken("actor", scopes.Faith, tok("save_scope_as", 4))
	if s, _ := sc.IsNameDefined("actor"); s != scopes.Faith {
		t.Fatalf("redefined actor = %v", s)
	}
	if _, ok := sc.IsNameDefined("recipient"); ok {
		t.Fatal("recipient should be unknown")
	}
}

func TestSaveCurrentScope(t *testing.T) {
	sc, _ := newCtx(scopes.Character)
	sc.DefineName("foo", scopes.Character, tok("foo", 1))

	sc.OpenBuilder()
	sc.ReplaceNamedScope("foo", tok("scope:foo", 2))
	sc.FinalizeBuilder()
	sc.SaveCurrentScope("foo")
	if s, _ := sc.IsNameDefined("foo"); s != scopes.Character {
		t.Fatalf("self reference changed foo: %v", s)
	}
	sc.Close()

	sc.OpenScope(scopes.LandedTitle, tok("primary_title", 3))
	sc.SaveCurrentScope("bar")
	sc.Close()
	if s, _ := sc.IsNameDefined("bar"); s != scopes.LandedTitle {
		t.Fatalf("bar = %v", s)
	}
}

func TestRedefiningBreaksChains(t *testing.T) {
	sc, _ := newCtx(scopes.Character)
	sc.DefineName("a", scopes.Character, tok("a", 1))
	sc.OpenBuilder()
	sc.ReplaceNamedScope("a", tok("scope:a", 2))
	sc.FinalizeBuilder()
	sc.SaveCurrentScope("b")
	sc.Close()

	sc.DefineName("a", scopes.Faith, tok("a", 3))
	if s, _ := sc.IsNameDefined("b"); s != scopes.Character {
		t.Fatalf("b followed the redefinition: %v", s)
	}
}

func TestStrictUnknownName(t *testing.T) {
	sc, sink := newCtx(scopes.Character)
	sc.DefineName("actor", scopes.Character, tok("actor", 1))
	sc.DefineName("recipient", scopes.Character, tok("recipient", 1))
	sc.OpenBuilder()
	sc.ReplaceNamedScope("target", tok("scope:target", 5))
	sc.Close()

	d := mustHaveDiag(t, sink, report.StrictScopes, "scope:target might not be available here")
	if d.Info != "available names are actor and recipient" {
		t.Fatalf("info = %q", d.Info)
	}
	if d.Confidence != report.Weak {
		t.Fatalf("confidence = %v", d.Confidence)
	}
}

func TestNonStrictUnknownNameIsInput(t *testing.T) {
	sc, sink := newCtx(scopes.Character)
	sc.SetStrictScopes(false)
	sc.OpenBuilder()
	sc.ReplaceNamedScope("county", tok("scope:county", 2))
	if sc.Scopes() != scopes.LandedTitle {
		t.Fatalf("type not deduced from name: %v", sc.Scopes())
	}
	sc.Close()
	mustNoDiags(t, sink)
	idx := sc.names["county"]
	if sc.isInput[idx] == nil {
		t.Fatal("unknown name in non-strict context should be an input")
	}
}

func TestExistsScope(t *testing.T) {
	sc, sink := newCtx(scopes.Character)
	sc.ExistsScope("actor", tok("scope:actor", 2))
	if s, ok := sc.IsNameDefined("actor"); !ok || s != scopes.Character {
		t.Fatalf("actor = %v, %v", s, ok)
	}
	sc.ExistsScope("mystery", tok("scope:mystery", 3))
	if s, _ := sc.IsNameDefined("mystery"); s != scopes.All() {
		t.Fatalf("mystery = %v", s)
	}
	mustNoDiags(t, sink)
}

func TestLists(t *testing.T) {
	sc, sink := newCtx(scopes.Character)
	sc.ExpectList(tok("missing_list", 2))
	mustHaveDiag(t, sink, report.UnknownList, "unknown list")

	sc.DefineOrExpectList(tok("friends", 3))
	sc.OpenBuilder()
	sc.ReplaceListEntry("friends", tok("friends", 4))
	if sc.Scopes() != scopes.Character {
		t.Fatalf("list entry = %v", sc.Scopes())
	}
	sc.Close()

	sc.DefineList("titles", scopes.LandedTitle, tok("titles", 5))
	sink.Reset()
	sc.ExpectList(tok("titles", 6))
	mustHaveDiag(t, sink, report.Scopes, "`titles` expects scope to be landed title but scope seems to be character")
}

func TestExpectCompatibility(t *testing.T) {
	callee := NewUnrooted(scopes.Character, tok("my_trigger", 10))
	callee.SetStrictScopes(false)
	callee.OpenBuilder()
	callee.ReplaceNamedScope("target", tok("scope:target", 11))
	callee.Expect(scopes.Faith, TokenReason(tok("religion_tag", 11)))
	callee.Close()
	if err := callee.AssertUnwound(); err != nil {
		t.Fatal(err)
	}

	t.Run("missing input", func(t *testing.T) {
		caller, sink := newCtx(scopes.Character)
		caller.ExpectCompatibility(callee, tok("my_trigger", 20))
		d := mustHaveDiag(t, sink, report.StrictScopes, "`my_trigger` expects scope:target to be set")
		if len(d.Locs) != 2 || d.Locs[1].Loc.Line != 11 {
			t.Fatalf("locs = %+v", d.Locs)
		}
	})

	t.Run("wrong input type", func(t *testing.T) {
		caller, sink := newCtx(scopes.Character)
		caller.DefineName("target", scopes.Character, tok("target", 1))
		caller.ExpectCompatibility(callee, tok("my_trigger", 20))
		mustHaveDiag(t, sink, report.Scopes,
			"`my_trigger` expects scope:target to be faith but scope:target seems to be character")
	})

	t.Run("wrong this", func(t *testing.T) {
		caller, sink := newCtx(scopes.Faith)
		caller.SetStrictScopes(false)
		caller.ExpectCompatibility(callee, tok("my_trigger", 20))
		mustHaveDiag(t, sink, report.Scopes,
			"`my_trigger` expects scope to be character but scope seems to be faith")
	})

	t.Run("non-strict adopts names", func(t *testing.T) {
		caller, sink := newCtx(scopes.Character)
		caller.SetStrictScopes(false)
		caller.ExpectCompatibility(callee, tok("my_trigger", 20))
		mustNoDiags(t, sink)
		if s, ok := caller.IsNameDefined("target"); !ok || s != scopes.Faith {
			t.Fatalf("target = %v, %v", s, ok)
		}
	})
}

func TestCalleeOutputsBecomeCallerScopes(t *testing.T) {
	callee := NewUnrooted(scopes.Character, tok("my_effect", 10))
	callee.OpenScope(scopes.LandedTitle, tok("primary_title", 11))
	callee.SaveCurrentScope("title")
	callee.Close()

	caller, sink := newCtx(scopes.Character)
	caller.DefineName("title", scopes.All(), tok("title", 1))
	caller.ExpectCompatibility(callee, tok("my_effect", 20))
	mustNoDiags(t, sink)
	if s, _ := caller.IsNameDefined("title"); s != scopes.LandedTitle {
		t.Fatalf("title = %v", s)
	}
}

func TestAssertUnwound(t *testing.T) {
	sc, _ := newCtx(scopes.Character)
	sc.OpenScope(scopes.Faith, tok("faith", 2))
	if err := sc.AssertUnwound(); !errors.Is(err, ErrNotUnwound) {
		t.Fatalf("got %v", err)
	}
	sc.Close()
	if err := NewUnrooted(scopes.Character, tok("x", 1)).AssertUnwound(); err != nil {
		t.Fatalf("fresh unrooted context: %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	sc, _ := newCtx(scopes.Character)
	sc.OpenScope(scopes.Character|scopes.Faith, tok("x", 2))
	cp := sc.Clone()
	cp.DefineName("only_in_clone", scopes.Faith, tok("y", 3))
	cp.Expect(scopes.Faith, TokenReason(tok("z", 4)))
	cp.Close()

	if _, ok := sc.IsNameDefined("only_in_clone"); ok {
		t.Fatal("clone shares names")
	}
	if sc.Scopes() != scopes.Character|scopes.Faith {
		t.Fatalf("clone shares levels: %v", sc.Scopes())
	}
	if sc.Depth() != 1 {
		t.Fatal("clone shares prev chain")
	}
	sc.Close()
}
