package tablesyaml

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/tables"
)

type recordedItems map[item.Kind][]string

func (r recordedItems) AddItem(k item.Kind, name string) { r[k] = append(r[k], name) }

const overlay = `
fields:
  - {from: character, name: best_friend, to: character}
keyed:
  - {from: none, prefix: my_item, to: flag, item: unchecked}
  - {from: none, prefix: my_faith, to: faith, item: faith}
  - {from: none, prefix: anyone, to: character, scope: character|landed_title}
iterators:
  - {from: character, name: best_friend, to: character}
items:
  character: ["100", "200"]
  faith: [catholic]
`

func TestParseAndApply(t *testing.T) {
	doc, err := Parse("tiger/extra.yml", []byte(overlay))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tb := tables.New()
	items := recordedItems{}
	Apply(doc, tb, items)

	tr, ok := tb.PickOverload("best_friend", scopes.Character)
	if !ok || tr.To != scopes.Character {
		t.Fatalf("best_friend field = %+v, %v", tr, ok)
	}
	if _, ok := tb.Iterator("best_friend"); !ok {
		t.Fatal("best_friend iterator missing")
	}
	k, ok := tb.KeyedTransition("my_faith")
	if !ok || k.Arg.Kind != tables.ArgItem || k.Arg.Item != item.Faith {
		t.Fatalf("my_faith = %+v", k)
	}
	k, _ = tb.KeyedTransition("my_item")
	if k.Arg.Kind != tables.ArgUnchecked || k.To != scopes.Flag {
		t.Fatalf("my_item = %+v", k)
	}
	k, _ = tb.KeyedTransition("anyone")
	if k.Arg.Kind != tables.ArgScope || k.Arg.Scopes != scopes.Character|scopes.LandedTitle {
		t.Fatalf("anyone = %+v", k)
	}
	if got := strings.Join(items[item.Character], ","); got != "100,200" {
		t.Fatalf("character items = %q", got)
	}
	if len(items[item.Faith]) != 1 {
		t.Fatalf("faith items = %v", items[item.Faith])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrInvalidDocument},
		{"not a mapping", "- a\n- b\n", ErrInvalidDocument},
		{"unknown top key", "records: []\n", ErrInvalidDocument},
		{"missing to", "fields:\n  - {from: character, name: x}\n", ErrInvalidDocument},
		{"numeric item", "items:\n  character: [100]\n", ErrInvalidDocument},
		{"unknown scope", "fields:\n  - {from: charactr, name: x, to: character}\n", ErrUnknownScope},
		{"unknown item kind", "items:\n  widget: [a]\n", ErrUnknownItemKind},
		{"unknown keyed item", "keyed:\n  - {from: none, prefix: p, to: flag, item: widget}\n", ErrUnknownItemKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.yml", []byte(tt.in))
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), "path=bad.yml") {
				t.Fatalf("error should name the file: %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"tiger/extra.yml": {Data: []byte(overlay)},
	}
	doc, err := LoadFile(fsys, "tiger/extra.yml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(doc.Fields) != 1 || len(doc.Keyed) != 3 {
		t.Fatalf("doc = %+v", doc)
	}
	if _, err := LoadFile(fsys, "tiger/missing.yml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
