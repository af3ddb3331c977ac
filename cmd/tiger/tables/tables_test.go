package tables

import (
	"testing"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/scopes"
)

type fakeItems map[item.Kind][]string

func (f fakeItems) ItemExists(k item.Kind, name string) bool {
	for _, n := range f[k] {
		if n == name {
			return true
		}
	}
	return false
}

func TestCK3Transitions(t *testing.T) {
	tb := CK3()
	tests := []struct {
		name     string
		current  scopes.Set
		wantFrom scopes.Set
		wantTo   scopes.Set
	}{
		{"liege", scopes.Character, scopes.Character, scopes.Character},
		{"primary_title", scopes.Character, scopes.Character, scopes.LandedTitle},
		{"holder", scopes.LandedTitle, scopes.LandedTitle, scopes.Character},
		{"barony", scopes.Province, scopes.LandedTitle | scopes.Province, scopes.LandedTitle},
		{"Liege", scopes.Character, scopes.Character, scopes.Character},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := tb.PickOverload(tt.name, tt.current)
			if !ok {
				t.Fatalf("%s not found", tt.name)
			}
			if tr.From != tt.wantFrom || tr.To != tt.wantTo {
				t.Fatalf("%s: got %v -> %v", tt.name, tr.From, tr.To)
			}
		})
	}
}

func TestPickOverloadFallsBackToFirst(t *testing.T) {
	tb := New()
	tb.AddField(scopes.Character, "thing", scopes.Faith)
	tb.AddField(scopes.Culture, "thing", scopes.Religion)

	tr, _ := tb.PickOverload("thing", scopes.Culture)
	if tr.To != scopes.Religion {
		t.Fatalf("expected culture overload, got %v", tr.To)
	}
	tr, ok := tb.PickOverload("thing", scopes.Army)
	if !ok || tr.From != scopes.Character {
		t.Fatalf("expected first overload on mismatch, got %v", tr.From)
	}
	if _, ok := tb.PickOverload("nothing", scopes.Army); ok {
		t.Fatal("expected unknown name to report not found")
	}
}

func TestKeyedAndIterators(t *testing.T) {
	tb := CK3()
	k, ok := tb.KeyedTransition("faith")
	if !ok || k.To != scopes.Faith || k.Arg.Kind != ArgItem || k.Arg.Item != item.Faith {
		t.Fatalf("faith: = %+v", k)
	}
	if k, _ := tb.KeyedTransition("scope"); k.To != scopes.All() {
		t.Fatalf("scope: should produce all scopes, got %v", k.To)
	}
	it, ok := tb.Iterator("vassal")
	if !ok || it.From != scopes.Character || it.To != scopes.Character {
		t.Fatalf("vassal iterator = %+v", it)
	}
	if r, ok := tb.RemovedField("scheme_target"); !ok || r.Version != "1.13" {
		t.Fatalf("scheme_target removal = %+v", r)
	}
}

func TestTriggerFamilies(t *testing.T) {
	tb := CK3()
	e, ok := tb.Trigger("has_relation_friend")
	if !ok || e.Implied == nil || e.Implied.Kind != item.Relation || e.Implied.Name != "friend" {
		t.Fatalf("has_relation_friend = %+v", e)
	}
	e, ok = tb.Trigger("martial_lifestyle_perk_points")
	if !ok || e.Implied.Name != "martial_lifestyle" {
		t.Fatalf("perk points = %+v", e)
	}
	if _, ok := tb.Trigger("_xp"); ok {
		t.Fatal("bare suffix should not match")
	}
	if in, ok := tb.CompareValueTrigger("age"); !ok || in != scopes.Character {
		t.Fatalf("age as value = %v, %v", in, ok)
	}
	if _, ok := tb.CompareValueTrigger("is_adult"); ok {
		t.Fatal("is_adult does not produce a value")
	}
}

func TestNeedsPrefix(t *testing.T) {
	tb := CK3()
	items := fakeItems{item.Faith: {"catholic"}}
	if got := tb.NeedsPrefix("catholic", items, scopes.Faith); got != "faith" {
		t.Fatalf("got %q", got)
	}
	if got := tb.NeedsPrefix("catholic", items, scopes.Culture); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := tb.NeedsPrefix("anything", items, scopes.Flag); got != "flag" {
		t.Fatalf("got %q", got)
	}
}

func TestCK3IsFresh(t *testing.T) {
	a := CK3()
	a.AddField(scopes.Character, "best_friend", scopes.Character)
	if trs := CK3().FieldTransition("best_friend"); len(trs) != 0 {
		t.Fatal("overlay leaked into a new table set")
	}
}
