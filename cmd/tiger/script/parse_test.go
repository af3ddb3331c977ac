package script

import (
	"errors"
	"slices"
	"testing"
)

func TestParseFields(t *testing.T) {
	b, err := Parse("test.txt", `
# a scripted trigger
is_grown_up = {
	age >= 16
	NOT = { has_trait = "child of destiny" }
	scope:target ?= { exists = yes }
	values = { 1 5 }
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defs := b.Definitions()
	if len(defs) != 1 || !defs[0].Key.Is("is_grown_up") {
		t.Fatalf("expected one definition, got %+v", defs)
	}
	body := defs[0].BV.Block
	fields := body.Fields()
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fields))
	}
	if fields[0].Cmp != GreaterOrEqual {
		t.Fatalf("age comparator = %v", fields[0].Cmp)
	}
	if v, ok := fields[0].BV.GetValue(); !ok || !v.Is("16") {
		t.Fatalf("age value = %v", v)
	}
	if fields[2].Cmp != QuestionEquals {
		t.Fatalf("scope:target comparator = %v", fields[2].Cmp)
	}
	inner, _ := body.GetFieldBlock("not")
	if v, _ := inner.GetFieldValue("has_trait"); v.Text != "child of destiny" {
		t.Fatalf("quoted value = %q", v.Text)
	}
	rng, _ := body.GetFieldBlock("values")
	if got := rng.Values(); len(got) != 2 || !rng.FirstItemIsBare() {
		t.Fatalf("range values = %+v", got)
	}
}

func TestParseLocations(t *testing.T) {
	b, err := Parse("loc.txt", "a = b\n  c = { d = e }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := b.Fields()
	if f[1].Key.Loc.Line != 2 || f[1].Key.Loc.Column != 3 {
		t.Fatalf("c at %v", f[1].Key.Loc)
	}
	d := f[1].BV.Block.Fields()[0]
	if d.Key.Loc.Column != 9 {
		t.Fatalf("d at %v", d.Key.Loc)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"unclosed", "a = {", ErrUnexpectedEOF},
		{"extra close", "a = b }", ErrUnbalancedBrace},
		{"missing value", "a =", ErrUnexpectedEOF},
		{"bare comparator", "= b", ErrUnexpectedToken},
		{"value is comparator", "a = = b", ErrUnexpectedToken},
		{"unterminated string", `a = "hello`, ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.txt", tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMacroExpansion(t *testing.T) {
	b, err := Parse("m.txt", "has_level = { has_$KIND$_level >= $LEVEL$ $KIND$_ok = yes }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := b.Definitions()[0].BV.Block
	if got := body.MacroParms(); !slices.Equal(got, []string{"KIND", "LEVEL"}) {
		t.Fatalf("MacroParms = %v", got)
	}

	out, err := body.ExpandMacro([]MacroArg{
		{Name: "KIND", Value: NewToken("martial", Loc{})},
		{Name: "LEVEL", Value: NewToken("10", Loc{})},
	}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := out.Fields()
	if len(fields) != 2 || !fields[0].Key.Is("has_martial_level") || !fields[1].Key.Is("martial_ok") {
		t.Fatalf("expanded fields = %+v", fields)
	}
	if fields[0].Key.Loc.Link != 7 || fields[1].BV.Value.Loc.Link != 7 {
		t.Fatal("expansion should carry the link index")
	}
	if fields[0].Key.Loc.Line != 1 {
		t.Fatalf("expanded line = %d", fields[0].Key.Loc.Line)
	}
}

func TestNonMacroBlockHasNoParms(t *testing.T) {
	b, _ := Parse("m.txt", "x = { a = b }")
	if b.Definitions()[0].BV.Block.MacroParms() != nil {
		t.Fatal("plain block should have no parameters")
	}
}

func TestTokenHelpers(t *testing.T) {
	tok := NewToken("scope:actor", Loc{File: "f", Line: 1, Column: 5})
	pre, arg, ok := tok.SplitOnce(':')
	if !ok || !pre.Is("scope") || !arg.Is("actor") || arg.Loc.Column != 11 {
		t.Fatalf("SplitOnce = %v %v %v", pre, arg, arg.Loc)
	}
	if !NewToken("-0.5", Loc{}).IsNumber() || NewToken("abc", Loc{}).IsNumber() {
		t.Fatal("IsNumber")
	}
	if !NewToken("1066.9.15", Loc{}).IsDate() || NewToken("1066.13.1", Loc{}).IsDate() {
		t.Fatal("IsDate")
	}
}
