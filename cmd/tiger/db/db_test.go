package db

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"tiger-tools/cmd/tiger/datatype"
	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/macro"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
)

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, text := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(text)}
	}
	return fsys
}

func newDB(t *testing.T, files map[string]string, opts ...Option) (*Database, *report.Collector) {
	t.Helper()
	sink := report.NewCollector(report.Tips)
	opts = append([]Option{WithSink(sink), WithLogger(slog.New(slog.DiscardHandler))}, opts...)
	d := New(opts...)
	if err := d.Load(mapFS(files)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return d, sink
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

func countDiags(c *report.Collector, substr string) int {
	n := 0
	for _, d := range c.All() {
		if strings.Contains(d.Msg, substr) {
			n++
		}
	}
	return n
}

func site(name string, line int) script.Token {
	return script.NewToken(name, script.Loc{File: "events/calls.txt", Line: line, Column: 5})
}

const adultLiegeMod = `
adult_liege = {
	liege = { is_adult = yes }
}
`

const testEvents = `
namespace = test

test.1 = {
	type = character_event
	hidden = yes
	trigger = { adult_liege = yes }
}

test.2 = {
	type = character_event
	scope = landed_title
	hidden = yes
}
`

func TestLoadAndValidate(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"common/scripted_triggers/triggers.txt": adultLiegeMod,
		"events/test.txt":                       testEvents,
	})
	if st := d.Stats(); st.Triggers != 1 || st.Events != 2 {
		t.Fatalf("Stats = %+v", st)
	}
	if _, ok := d.ScriptedTrigger("adult_liege"); !ok {
		t.Fatal("adult_liege not loaded")
	}
	if _, ok := d.Event("test.1"); !ok {
		t.Fatal("test.1 not loaded")
	}
	if !d.ItemExists(item.Event, "test.2") || d.ItemExists(item.Event, "test.3") {
		t.Error("event items not recorded")
	}

	if err := d.Validate(context.Background(), 4); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	mustNoDiags(t, sink)
	// The definition itself plus the call from test.1.
	if n := d.triggers["adult_liege"].CacheLen(); n != 2 {
		t.Errorf("CacheLen = %d, want 2", n)
	}
}

func TestLoadTwice(t *testing.T) {
	d, _ := newDB(t, nil)
	if err := d.Load(mapFS(nil)); !errors.Is(err, ErrLoaded) {
		t.Fatalf("second Load = %v, want ErrLoaded", err)
	}
}

func TestValidateBeforeLoad(t *testing.T) {
	d := New(WithLogger(slog.New(slog.DiscardHandler)))
	if err := d.Validate(context.Background(), 1); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Validate = %v, want ErrNotLoaded", err)
	}
}

func TestValidateCancelled(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"common/scripted_triggers/triggers.txt": "broken = { primary_title = { is_adult = yes } }",
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Validate(ctx, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Validate = %v, want context.Canceled", err)
	}
	if !strings.Contains(err.Error(), "phase=validate") {
		t.Errorf("error %q does not name the phase", err)
	}
	mustNoDiags(t, sink)
}

func TestDuplicates(t *testing.T) {
	t.Run("within the mod", func(t *testing.T) {
		_, sink := newDB(t, map[string]string{
			"common/scripted_triggers/a.txt": "dup_trigger = { is_adult = yes }",
			"common/scripted_triggers/b.txt": "dup_trigger = { is_adult = no }",
		})
		d := mustHaveDiag(t, sink, report.Duplicate, "duplicate scripted trigger")
		if len(d.Locs) != 2 || d.Locs[1].Msg != "the other one is here" {
			t.Errorf("locations = %+v", d.Locs)
		}
	})
	t.Run("mod replaces game", func(t *testing.T) {
		game := mapFS(map[string]string{
			"common/scripted_triggers/game.txt": "shared_trigger = { is_adult = yes }",
		})
		d, sink := newDB(t, map[string]string{
			"common/scripted_triggers/mod.txt": "shared_trigger = { is_adult = no }",
		}, WithGame(game))
		mustNoDiags(t, sink)
		st := d.triggers["shared_trigger"]
		if st.Key.Loc.File != "common/scripted_triggers/mod.txt" {
			t.Errorf("kept definition from %s", st.Key.Loc.File)
		}
	})
}

func TestSelfRecursiveTrigger(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"common/scripted_triggers/rec.txt": `
recursive_trigger = {
	is_adult = yes
	recursive_trigger = yes
}
`,
	})
	if err := d.Validate(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	mustNoDiags(t, sink)
	// Definition site and the one call inside the body; the inner call
	// hits its own placeholder.
	if n := d.triggers["recursive_trigger"].CacheLen(); n != 2 {
		t.Errorf("CacheLen = %d, want 2", n)
	}
}

func TestRecursionWithChangingArguments(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"common/scripted_triggers/count.txt": `
count_down = {
	count_down = { N = $N$1 }
}
start_count = {
	count_down = { N = 1 }
}
`,
	})
	if err := d.Validate(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	mustHaveDiag(t, sink, report.Macro, "macro expansion exceeds depth 64")
}

func TestBranchingRecursionStops(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"common/scripted_triggers/fork.txt": `
fork = {
	fork = { N = $N$1 }
	fork = { N = $N$2 }
}
start_fork = {
	fork = { N = 1 }
}
`,
	})
	if err := d.Validate(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if n := countDiags(sink, "macro expansion exceeds"); n != 1 {
		t.Fatalf("%d expansion limit diagnostics, want 1: %+v", n, sink.All())
	}
	mustHaveDiag(t, sink, report.Macro, "macro expansion exceeds")
	if n := d.triggers["fork"].CacheLen(); n > macro.MaxExpansions {
		t.Errorf("CacheLen = %d, want at most %d", n, macro.MaxExpansions)
	}
}

func TestTooltipModesCachedSeparately(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"common/scripted_triggers/title.txt": "title_adult = { primary_title = { is_adult = yes } }",
	})
	st := d.triggers["title_adult"]
	call := func(at script.Token, tt tooltip.Mode) {
		sc := scopectx.New(scopes.Character, at, scopectx.WithSink(sink))
		st.ValidateCall(at, d, sc, tt, false)
	}

	call(site("title_adult", 3), tooltip.Yes)
	call(site("title_adult", 9), tooltip.No)
	if n := st.CacheLen(); n != 2 {
		t.Fatalf("CacheLen = %d, want 2", n)
	}
	call(site("title_adult", 3), tooltip.Yes)
	if n := st.CacheLen(); n != 2 {
		t.Fatalf("repeat call grew the cache to %d", n)
	}
	if n := countDiags(sink, "`is_adult` is for character but scope seems to be landed title"); n != 1 {
		t.Errorf("body diagnostic reported %d times, want 1: %+v", n, sink.All())
	}
}

func TestItems(t *testing.T) {
	d, _ := newDB(t, map[string]string{
		"common/traits/00_traits.txt": "brave = { }\ncraven = { }\n@cost = 10\n",
		"common/religion/religions/christianity.txt": `
christianity_religion = {
	faiths = {
		catholic = { }
		orthodox = { }
	}
}
`,
		"localization/english/test_l_english.yml": "\xef\xbb\xbfl_english:\n test_title:0 \"A title\"\n # comment\n test_desc: \"Text\"\n",
	})
	tests := []struct {
		kind item.Kind
		name string
		want bool
	}{
		{item.Trait, "brave", true},
		{item.Trait, "lazy", false},
		{item.Trait, "@cost", false},
		{item.Religion, "christianity_religion", true},
		{item.Faith, "orthodox", true},
		{item.Faith, "sunni", false},
		{item.Localization, "test_title", true},
		{item.Localization, "test_desc", true},
		{item.Localization, "l_english", false},
		// Never loaded, so not checked.
		{item.Culture, "anything", true},
	}
	for _, tt := range tests {
		if got := d.ItemExists(tt.kind, tt.name); got != tt.want {
			t.Errorf("ItemExists(%s, %q) = %v, want %v", tt.kind, tt.name, got, tt.want)
		}
	}
	if got := strings.Join(d.ItemNames(item.Trait), ","); got != "brave,craven" {
		t.Errorf("ItemNames = %s", got)
	}
}

func TestScopeOverride(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"common/script_values/values.txt": "title_value = { value = 1 }\n",
	}, WithScopeOverride(map[string]scopes.Set{"title_value": scopes.LandedTitle}))

	sv, ok := d.ScriptValue("title_value")
	if !ok {
		t.Fatal("title_value not loaded")
	}
	at := site("title_value", 2)
	sv.ValidateCall(at, d, scopectx.New(scopes.LandedTitle, at, scopectx.WithSink(sink)))
	mustNoDiags(t, sink)

	at = site("title_value", 4)
	sv.ValidateCall(at, d, scopectx.New(scopes.Character, at, scopectx.WithSink(sink)))
	mustHaveDiag(t, sink, report.Scopes, "`title_value` expects scope to be landed title")
}

func TestCheckEventScope(t *testing.T) {
	d, sink := newDB(t, map[string]string{"events/test.txt": testEvents})

	id := site("test.2", 1)
	sc := scopectx.New(scopes.LandedTitle, id, scopectx.WithSink(sink))
	d.CheckEventScope(id, sc)
	mustNoDiags(t, sink)

	sc = scopectx.New(scopes.Character, id, scopectx.WithSink(sink))
	d.CheckEventScope(id, sc)
	mustHaveDiag(t, sink, report.Scopes, "`test.2` expects scope to be landed title but scope seems to be character")

	// Unknown ids are the item check's job.
	sink.Reset()
	d.CheckEventScope(site("test.99", 1), sc)
	mustNoDiags(t, sink)
}

func TestEventFiles(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"events/misc.txt": `
namespace = misc
stray_setting = yes

scripted_trigger local_trigger = { is_adult = yes }
scripted_effect = { }

misc.1 = {
	type = letter_event
	option = { name = misc.1.a }
}

bad_name = {
	hidden = yes
}
`,
	})
	if _, ok := d.ScriptedTrigger("local_trigger"); !ok {
		t.Error("event-local scripted trigger not loaded")
	}
	mustHaveDiag(t, sink, report.UnknownField, "unknown setting in event files")
	mustHaveDiag(t, sink, report.ParseError, "`scripted_effect` should be used without `=`")
	mustHaveDiag(t, sink, report.Validation, "Event names should be in the form NAMESPACE.NUMBER")

	if err := d.Validate(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	mustHaveDiag(t, sink, report.FieldMissing, "required field `sender` missing")
}

func TestParseErrorSkipsFile(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"common/scripted_triggers/bad.txt":  "broken = { is_adult = yes",
		"common/scripted_triggers/good.txt": "fine = { is_adult = yes }",
	})
	mustHaveDiag(t, sink, report.ParseError, "could not parse file")
	if _, ok := d.ScriptedTrigger("fine"); !ok {
		t.Error("good file not loaded after a bad one")
	}
}

func TestDatatypesFromMod(t *testing.T) {
	d, sink := newDB(t, map[string]string{
		"data_binding/bindings.txt": `
FirstNameOf = {
	definition = "FirstNameOf(Who)"
	replace_with = "Who.GetFirstName"
}
Broken = {
	definition = "Broken(A"
	replace_with = "A"
}
`,
		"localization/english/test_l_english.yml": "l_english:\n greeting:0 \"Hello\"\n",
		"localization/french/test_l_french.yml":   "l_french:\n other:0 \"Salut\"\n",
	})
	mustHaveDiag(t, sink, report.Datafunctions, "could not parse data binding")
	sink.Reset()

	if !d.LocalizationExists("english", "greeting") || d.LocalizationExists("french", "greeting") {
		t.Error("localization languages not kept apart")
	}
	if !d.LocalizationExists("", "other") || !d.LocalizationExists("german", "greeting") {
		t.Error("language fallback does not match any definition")
	}

	chain, err := datatype.ParseChain(site("FirstNameOf(ROOT.Char)", 1))
	if err != nil {
		t.Fatal(err)
	}
	sc := scopectx.New(scopes.Character, site("root", 1), scopectx.WithSink(sink))
	datatype.ValidateDatatypes(chain, d, sc, datatype.CString, "english", nil, false)
	mustNoDiags(t, sink)
}
