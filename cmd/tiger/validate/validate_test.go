package validate

import (
	"strings"
	"testing"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/macro"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tables"
	"tiger-tools/cmd/tiger/tooltip"
)

type call struct {
	key     string
	negated bool
	args    []script.MacroArg
}

type fakeTrigger struct {
	parms []string
	calls []call
}

func (f *fakeTrigger) MacroParms() []string { return f.parms }

func (f *fakeTrigger) ValidateCall(key script.Token, _ Data, _ *scopectx.Context, _ Tooltipped, negated bool) {
	f.calls = append(f.calls, call{key: key.Text, negated: negated})
}

func (f *fakeTrigger) ValidateMacroExpansion(key script.Token, args []script.MacroArg, _ Data, _ *scopectx.Context, _ Tooltipped, negated bool) {
	f.calls = append(f.calls, call{key: key.Text, negated: negated, args: args})
}

type fakeEffect struct {
	parms []string
	calls []call
}

func (f *fakeEffect) MacroParms() []string { return f.parms }

func (f *fakeEffect) ValidateCall(key script.Token, _ Data, _ *scopectx.Context, _ Tooltipped) {
	f.calls = append(f.calls, call{key: key.Text})
}

func (f *fakeEffect) ValidateMacroExpansion(key script.Token, args []script.MacroArg, _ Data, _ *scopectx.Context, _ Tooltipped) {
	f.calls = append(f.calls, call{key: key.Text, args: args})
}

type fakeValue struct{ calls int }

func (f *fakeValue) ValidateCall(script.Token, Data, *scopectx.Context) { f.calls++ }
func (f *fakeValue) ValidateNonDynamicCall(script.Token, Data)         { f.calls++ }

type fakeData struct {
	tables   *tables.Tables
	sink     *report.Collector
	items    map[item.Kind]map[string]bool
	triggers map[string]*fakeTrigger
	effects  map[string]*fakeEffect
	values   map[string]*fakeValue
	links    *macro.LinkMap
}

func newData() *fakeData {
	return &fakeData{
		tables: tables.CK3(),
		sink:   report.NewCollector(report.Tips),
		items: map[item.Kind]map[string]bool{
			item.Trait: {"brave": true, "craven": true},
		},
		triggers: map[string]*fakeTrigger{},
		effects:  map[string]*fakeEffect{},
		values:   map[string]*fakeValue{},
		links:    macro.NewLinkMap(),
	}
}

func (d *fakeData) Tables() *tables.Tables { return d.tables }
func (d *fakeData) Sink() report.Sink      { return d.sink }

func (d *fakeData) ItemExists(kind item.Kind, name string) bool {
	known, ok := d.items[kind]
	if !ok {
		return true
	}
	return known[name]
}

func (d *fakeData) ScriptedTrigger(name string) (ScriptedTrigger, bool) {
	st, ok := d.triggers[name]
	return st, ok
}

func (d *fakeData) ScriptedEffect(name string) (ScriptedEffect, bool) {
	se, ok := d.effects[name]
	return se, ok
}

func (d *fakeData) ScriptValue(name string) (ScriptValue, bool) {
	sv, ok := d.values[name]
	return sv, ok
}

func (d *fakeData) ScriptedModifier(string) (ScriptedModifier, bool) { return nil, false }
func (d *fakeData) CheckEventScope(script.Token, *scopectx.Context)  {}
func (d *fakeData) LinkMap() *macro.LinkMap                           { return d.links }

func tok(text string) script.Token {
	return script.NewToken(text, script.Loc{File: "test.txt", Line: 1, Column: 1})
}

func mustParse(t *testing.T, text string) *script.Block {
	t.Helper()
	b, err := script.Parse("test.txt", text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return b
}

func newCtx(data *fakeData, root scopes.Set) *scopectx.Context {
	return scopectx.New(root, tok("test"), scopectx.WithSink(data.sink))
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

func TestPartition(t *testing.T) {
	tests := []struct {
		chain string
		parts []string
		err   string
	}{
		{"liege.primary_title", []string{"liege", "primary_title"}, ""},
		{"opinion(liege)", []string{"opinion(liege)"}, ""},
		{"root.opinion( scope:x ).y", []string{"root", "opinion(scope:x)", "y"}, ""},
		{"a..b", []string{"a", "b"}, "empty part"},
		{"a.", []string{"a"}, "trailing dot `.`"},
		{"a(b", nil, "opening without closing parenthesis `)`"},
		{"a)", []string{"a)"}, "closing without opening parenthesis `(`"},
		{"a(b)c", []string{"a(b)"}, "argument can only be the last part or followed by dot `.`"},
		{"a(b(c))", nil, "cannot have nested parentheses"},
	}
	for _, tt := range tests {
		t.Run(tt.chain, func(t *testing.T) {
			sink := report.NewCollector(report.Tips)
			parts := Partition(tok(tt.chain), sink)
			if tt.err == "" {
				mustNoDiags(t, sink)
			} else {
				mustHaveDiag(t, sink, report.Validation, tt.err)
			}
			if tt.parts == nil {
				return
			}
			var got []string
			for _, p := range parts {
				got = append(got, p.String())
			}
			if strings.Join(got, "|") != strings.Join(tt.parts, "|") {
				t.Fatalf("parts = %q, want %q", got, tt.parts)
			}
		})
	}
}

func TestTriggerChain(t *testing.T) {
	t.Run("matching scopes", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		ValidateTrigger(mustParse(t, "liege = { is_adult = yes }"), data, sc, tooltip.No)
		mustNoDiags(t, data.sink)
	})
	t.Run("title has no is_adult", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		ValidateTrigger(mustParse(t, "liege.primary_title = { is_adult = yes }"), data, sc, tooltip.No)
		mustHaveDiag(t, data.sink, report.Scopes, "`is_adult` is for character but scope seems to be landed title")
	})
	t.Run("chain leaves outer scope alone", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		ValidateTrigger(mustParse(t, "liege.primary_title = { }\nis_adult = yes"), data, sc, tooltip.No)
		mustNoDiags(t, data.sink)
		if got := sc.Scopes(); got != scopes.Character {
			t.Fatalf("scopes after chain = %v", got)
		}
	})
}

func TestUnknownTriggerReportedOnce(t *testing.T) {
	data := newData()
	sc := newCtx(data, scopes.Character)
	ValidateTrigger(mustParse(t, "is_adlt = yes"), data, sc, tooltip.No)
	if data.sink.Len() != 1 {
		t.Fatalf("got %d diagnostics: %+v", data.sink.Len(), data.sink.All())
	}
	mustHaveDiag(t, data.sink, report.UnknownField, "unknown token `is_adlt`")
}

func TestFilterOnlyInLists(t *testing.T) {
	data := newData()
	sc := newCtx(data, scopes.Character)
	ValidateTrigger(mustParse(t, "filter = { is_adult = yes }"), data, sc, tooltip.No)
	mustHaveDiag(t, data.sink, report.Validation, "`filter` can only be used in lists")
}

func TestScriptedTriggerCall(t *testing.T) {
	data := newData()
	st := &fakeTrigger{}
	data.triggers["my_trigger"] = st
	sc := newCtx(data, scopes.Character)

	ValidateTrigger(mustParse(t, "my_trigger = yes\nmy_trigger = no"), data, sc, tooltip.No)
	mustNoDiags(t, data.sink)
	if len(st.calls) != 2 || st.calls[0].negated || !st.calls[1].negated {
		t.Fatalf("calls = %+v", st.calls)
	}

	ValidateTrigger(mustParse(t, "my_trigger = maybe"), data, sc, tooltip.No)
	mustHaveDiag(t, data.sink, report.Validation, "expected yes or no")

	ValidateTrigger(mustParse(t, "my_trigger = { X = 1 }"), data, sc, tooltip.No)
	d := mustHaveDiag(t, data.sink, report.Macro, "this scripted trigger does not need macro arguments")
	if d.Severity != report.Fatal {
		t.Fatalf("severity = %v", d.Severity)
	}
}

func TestScriptedTriggerMacroArgs(t *testing.T) {
	data := newData()
	st := &fakeTrigger{parms: []string{"LEVEL"}}
	data.triggers["my_trigger"] = st
	sc := newCtx(data, scopes.Character)

	ValidateTrigger(mustParse(t, "my_trigger = { LEVEL = 3 }"), data, sc, tooltip.No)
	mustNoDiags(t, data.sink)
	if len(st.calls) != 1 || len(st.calls[0].args) != 1 || st.calls[0].args[0].Value.Text != "3" {
		t.Fatalf("calls = %+v", st.calls)
	}

	ValidateTrigger(mustParse(t, "my_trigger = { OTHER = 3 }"), data, sc, tooltip.No)
	mustHaveDiag(t, data.sink, report.Macro, "this scripted trigger needs parameter LEVEL")

	ValidateTrigger(mustParse(t, "my_trigger = yes"), data, sc, tooltip.No)
	mustHaveDiag(t, data.sink, report.Macro, "expected macro arguments")
}

func TestEffectScopes(t *testing.T) {
	t.Run("chain into wrong scope", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		ValidateEffect(mustParse(t, "liege.primary_title = { add_gold = 5 }"), data, sc, tooltip.Yes)
		mustHaveDiag(t, data.sink, report.Scopes, "`add_gold` is for character but scope seems to be landed title")
	})
	t.Run("any list in effect", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		ValidateEffect(mustParse(t, "any_vassal = { add_gold = 1 }"), data, sc, tooltip.Yes)
		mustHaveDiag(t, data.sink, report.Validation, "cannot use `any_` lists in an effect")
	})
	t.Run("limit outside if", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		ValidateEffect(mustParse(t, "limit = { is_adult = yes }"), data, sc, tooltip.Yes)
		mustHaveDiag(t, data.sink, report.Validation, "`limit` can only be used in if/else_if or lists")
	})
}

func TestScriptedEffectCall(t *testing.T) {
	data := newData()
	se := &fakeEffect{}
	data.effects["my_effect"] = se
	sc := newCtx(data, scopes.Character)

	ValidateEffect(mustParse(t, "my_effect = yes"), data, sc, tooltip.Yes)
	mustNoDiags(t, data.sink)
	if len(se.calls) != 1 {
		t.Fatalf("calls = %+v", se.calls)
	}

	ValidateEffect(mustParse(t, "my_effect = no"), data, sc, tooltip.Yes)
	mustHaveDiag(t, data.sink, report.Validation, "expected just effect = yes")
	if len(se.calls) != 2 {
		t.Fatalf("call skipped after warning: %+v", se.calls)
	}
}

func TestSwitchEffect(t *testing.T) {
	t.Run("no branches", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		ValidateEffect(mustParse(t, "switch = { trigger = has_trait }"), data, sc, tooltip.Yes)
		mustHaveDiag(t, data.sink, report.Logic, "switch with no branches")
	})
	t.Run("branches checked as trigger values", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		ValidateEffect(mustParse(t, `switch = {
			trigger = has_trait
			brave = { add_gold = 1 }
			fallback = { add_gold = 2 }
		}`), data, sc, tooltip.Yes)
		mustNoDiags(t, data.sink)
	})
	t.Run("unknown branch", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		ValidateEffect(mustParse(t, "switch = { trigger = has_trait bravee = { add_gold = 1 } }"), data, sc, tooltip.Yes)
		mustHaveDiag(t, data.sink, report.UnknownField, "bravee")
	})
}

func TestRandomListWeights(t *testing.T) {
	data := newData()
	sc := newCtx(data, scopes.Character)
	ValidateEffect(mustParse(t, `random_list = {
		10 = { add_gold = 1 }
		-5 = { add_gold = 1 }
		0.5 = { add_gold = 1 }
		2.5 = { add_gold = 1 }
	}`), data, sc, tooltip.Yes)
	mustHaveDiag(t, data.sink, report.Range, "negative weights make the whole `random_list` fail")
	mustHaveDiag(t, data.sink, report.Range, "fractional weights are treated as just 0")
	mustHaveDiag(t, data.sink, report.Range, "fractions are discarded")
}

func TestSetVariable(t *testing.T) {
	data := newData()
	sc := newCtx(data, scopes.Character)
	ValidateEffect(mustParse(t, "set_variable = { name = x value = 5 days = 3 }\nset_variable = flagged"), data, sc, tooltip.Yes)
	mustNoDiags(t, data.sink)

	ValidateEffect(mustParse(t, "set_variable = { value = 5 }"), data, sc, tooltip.Yes)
	mustHaveDiag(t, data.sink, report.FieldMissing, "required field `name` missing")
}

func TestScriptValue(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  report.ErrorKey
		msg  string
	}{
		{"multiply first", "v = { multiply = 2 }", report.Logic, "nothing to multiply yet"},
		{"overwrite", "v = { add = 1 value = 2 }", report.Logic, "setting value here will overwrite the previous calculations"},
		{"bad range", "v = { 1 2 3 }", report.Validation, "invalid script value range"},
		{"any iterator", "v = { value = 1 any_vassal = { add = 1 } }", report.Validation, "cannot use `any_` iterators in a script value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := newData()
			sc := newCtx(data, scopes.Character)
			bv, _ := mustParse(t, tt.text).GetField("v")
			ValidateScriptValue(bv, data, sc)
			mustHaveDiag(t, data.sink, tt.key, tt.msg)
		})
	}

	t.Run("clean", func(t *testing.T) {
		data := newData()
		sc := newCtx(data, scopes.Character)
		bv, _ := mustParse(t, "v = { value = 1 multiply = 2 }").GetField("v")
		ValidateScriptValue(bv, data, sc)
		mustNoDiags(t, data.sink)
	})
}

func TestDescTriggerOutsideTriggeredDesc(t *testing.T) {
	data := newData()
	sc := newCtx(data, scopes.Character)
	bv, _ := mustParse(t, "d = { desc = my_loc trigger = { is_adult = yes } }").GetField("d")
	ValidateDesc(bv, data, sc)
	mustHaveDiag(t, data.sink, report.Validation, "`trigger` is only for `triggered_desc`")
}

func TestClosestName(t *testing.T) {
	names := []string{"is_adult", "is_female", "primary_title"}
	if got := closestName("is_adlt", names); got != "is_adult" {
		t.Fatalf("closestName = %q", got)
	}
	if got := closestName("zz", names); got != "" {
		t.Fatalf("short name matched %q", got)
	}
}

func TestFieldFromDisjointScope(t *testing.T) {
	tbl := tables.CK3()
	from := map[string]scopes.Set{}
	first := map[string]tables.Transition{}
	var names []string
	ignoresInput := map[string]bool{}
	for _, tr := range tbl.Fields() {
		if _, seen := first[tr.Name]; !seen {
			first[tr.Name] = tr
			names = append(names, tr.Name)
		}
		from[tr.Name] |= tr.From
		if tr.From == scopes.None {
			ignoresInput[tr.Name] = true
		}
	}

	checked := 0
	for _, name := range names {
		tr := first[name]
		root := scopes.All() &^ from[name]
		switch lower := strings.ToLower(name); {
		case ignoresInput[name], root == scopes.None, tr.To == scopes.All(),
			lower == "root", lower == "prev", lower == "this":
			continue
		}
		checked++
		t.Run(name, func(t *testing.T) {
			data := newData()
			sc := newCtx(data, root)
			ValidateTargetOkThis(tok(name), data, sc, scopes.All())
			diags := data.sink.All()
			if len(diags) != 1 || diags[0].Key != report.Scopes {
				t.Fatalf("from %s: want one scopes diagnostic, got %+v", root, diags)
			}
			if got := sc.Scopes(); got == tr.To {
				t.Fatalf("outer scope narrowed to %s", got)
			}
		})
	}
	if checked == 0 {
		t.Fatal("no fields checked")
	}
}

func TestUnknownFieldReportedOnce(t *testing.T) {
	data := newData()
	sc := newCtx(data, scopes.Character)
	ValidateTarget(tok("liege.not_a_real_field"), data, sc, scopes.All())
	diags := data.sink.All()
	if len(diags) != 1 {
		t.Fatalf("want one diagnostic, got %+v", diags)
	}
	d := diags[0]
	if d.Key != report.UnknownField || !strings.Contains(d.Msg, "`not_a_real_field`") {
		t.Fatalf("diagnostic = %+v", d)
	}
	if d.Loc().Column != 7 {
		t.Fatalf("column = %d, want 7", d.Loc().Column)
	}
}
