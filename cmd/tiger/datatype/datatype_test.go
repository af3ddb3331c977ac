package datatype

import (
	"errors"
	"strings"
	"testing"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
)

type fakeData struct {
	tables   *Tables
	sink     *report.Collector
	items    map[item.Kind]map[string]bool
	loc      map[string]map[string]bool
	bindings map[string]*Binding
}

func newData() *fakeData {
	return &fakeData{
		tables: CK3(),
		sink:   report.NewCollector(report.Tips),
		items: map[item.Kind]map[string]bool{
			item.Trait:              {"brave": true},
			item.GameConcept:        {"faith": true, "gold_i": true},
			item.CustomLocalization: {"GetTitleTier": true},
		},
		loc: map[string]map[string]bool{
			"english": {"greeting": true},
			"french":  {},
		},
		bindings: map[string]*Binding{},
	}
}

func (d *fakeData) Sink() report.Sink  { return d.sink }
func (d *fakeData) Datatypes() *Tables { return d.tables }

func (d *fakeData) ItemExists(kind item.Kind, name string) bool {
	m, ok := d.items[kind]
	return !ok || m[name]
}

func (d *fakeData) ItemDefined(kind item.Kind, name string) bool { return d.items[kind][name] }

func (d *fakeData) LocalizationExists(lang, key string) bool {
	if lang == "" {
		for _, m := range d.loc {
			if m[key] {
				return true
			}
		}
		return false
	}
	return d.loc[lang][key]
}

func (d *fakeData) DataBinding(name string) (*Binding, bool) {
	b, ok := d.bindings[name]
	return b, ok
}

func tok(text string) script.Token {
	return script.NewToken(text, script.Loc{File: "localization/test_l_english.yml", Line: 3, Column: 10})
}

func mustChain(t *testing.T, text string) *Chain {
	t.Helper()
	c, err := ParseChain(tok(text))
	if err != nil {
		t.Fatalf("ParseChain(%q): %v", text, err)
	}
	return c
}

func mustHaveDiag(t *testing.T, c *report.Collector, key report.ErrorKey, substr string) report.Diagnostic {
	t.Helper()
	for _, d := range c.All() {
		if d.Key == key && (strings.Contains(d.Msg, substr) || strings.Contains(d.Info, substr)) {
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

func strictCtx(d *fakeData) *scopectx.Context {
	return scopectx.New(scopes.Character, tok("root"), scopectx.WithSink(d.sink))
}

func TestParseChain(t *testing.T) {
	c := mustChain(t, "ROOT.Char.Custom2('RelationToMe', SCOPE.sC('actor'))")
	if got := c.String(); got != "ROOT.Char.Custom2('RelationToMe',SCOPE.sC('actor'))" {
		t.Errorf("String() = %s", got)
	}
	if len(c.Codes) != 3 || len(c.Codes[2].Args) != 2 {
		t.Fatalf("codes = %+v", c.Codes)
	}
	if lit := c.Codes[2].Args[0].Literal; lit == nil || lit.Text != "RelationToMe" {
		t.Errorf("first argument = %+v", c.Codes[2].Args[0])
	}
	if c.Codes[1].Name.Loc.Column != 15 {
		t.Errorf("Char column = %d, want 15", c.Codes[1].Name.Loc.Column)
	}

	for _, bad := range []string{"A(B", "A('x", "A(B;C)", "A.B)"} {
		if _, err := ParseChain(tok(bad)); !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseChain(%q) = %v, want ErrSyntax", bad, err)
		}
	}
}

func TestParseCode(t *testing.T) {
	c, format, err := ParseCode(tok("[ROOT.Char.GetName|U]"))
	if err != nil {
		t.Fatal(err)
	}
	if format == nil || format.Text != "U" {
		t.Errorf("format = %v", format)
	}
	if c.String() != "ROOT.Char.GetName" {
		t.Errorf("chain = %s", c)
	}
}

func TestValidateDatatypes(t *testing.T) {
	tests := []struct {
		name   string
		chain  string
		expect Datatype
		key    report.ErrorKey
		msg    string // empty means clean
	}{
		{"clean chain", "ROOT.Char.GetFirstName", CString, 0, ""},
		{"datatype as promote", "Character.GetLiege.GetName", Unknown, 0, ""},
		{"global function", "GetCurrentYear", Int32, 0, ""},
		{"arity", "ROOT.Char.GetName('x')", Unknown, report.Datafunctions, "GetName takes 0 arguments but was given 1 here"},
		{"wrong input type", "ROOT.Char.GetAdherentName", Unknown, report.Datafunctions, "GetAdherentName cannot follow a Character promote"},
		{"promote at the end", "ROOT.Faith.GetReligion", Unknown, report.Datafunctions, "GetReligion cannot be last in a chain"},
		{"return type", "ROOT.Char.GetAge", CString, report.Datafunctions, "GetAge returns int32 but a CString is needed here"},
		{"not a scope", "ROOT.Char.GetName", AnyScope, report.Datafunctions, "GetName returns CString but a scope type is needed here"},
		{"function first", "GetName", Unknown, report.Datafunctions, "GetName cannot be the first in a chain"},
		{"promote last", "ROOT.Char", Unknown, report.Datafunctions, "Char cannot be last in a chain"},
		{"global later", "ROOT.Char.GetPlayer.GetName", Unknown, report.Datafunctions, "GetPlayer must be the first in a chain"},
		{"function in middle", "ROOT.Char.GetName.GetName", Unknown, report.Datafunctions, "GetName must be last in the chain"},
		{"unknown", "ROOT.Char.GetFrstName", Unknown, report.Datafunctions, "unknown datafunction GetFrstName"},
		{"wrong case hint", "root.Char.GetName", Unknown, report.Datafunctions, "did you mean ROOT?"},
		{"literal type", "GreaterThan_int32('(int32)3', '(hex)ff')", Unknown, 0, ""},
		{"literal mismatch", "GreaterThan_int32('(CString)3', '4')", Unknown, report.Datafunctions, "expected int32, got CString"},
		{"bad literal type", "GreaterThan_int32('(nonsense)3', '(int32)4')", Unknown, report.Datafunctions, "unrecognized datatype nonsense"},
		{"nested chain argument", "EqualTo_int32(ROOT.Char.GetAge, GetCurrentYear)", Bool, 0, ""},
		{"nested chain mismatch", "EqualTo_int32(ROOT.Char.GetName, GetCurrentYear)", Unknown, report.Datafunctions, "GetName returns CString but a int32 is needed here"},
		{"item argument", "ROOT.Char.HasTrait('lazy')", Unknown, report.Missing, "`lazy` not defined as trait"},
		{"known item argument", "ROOT.Char.HasTrait('brave')", Bool, 0, ""},
		{"game concept", "faith", CString, 0, ""},
		{"custom localization", "ROOT.Char.Custom('GetTitleTier')", CString, 0, ""},
		{"missing custom localization", "ROOT.Char.Custom('NoSuchCustom')", CString, report.Missing, "not defined as custom_localization"},
		{"faith customs unchecked", "ROOT.Faith.Custom('NoSuchCustom')", CString, 0, ""},
		{"empty fragment", "ROOT..GetName", Unknown, report.Datafunctions, "empty fragment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newData()
			ValidateDatatypes(mustChain(t, tt.chain), d, strictCtx(d), tt.expect, "", nil, false)
			if tt.msg == "" {
				mustNoDiags(t, d.sink)
				return
			}
			mustHaveDiag(t, d.sink, tt.key, tt.msg)
		})
	}
}

func TestNamedScopes(t *testing.T) {
	t.Run("defined name", func(t *testing.T) {
		d := newData()
		sc := strictCtx(d)
		sc.DefineName("actor", scopes.Character, tok("actor"))
		ValidateDatatypes(mustChain(t, "actor.GetFirstName"), d, sc, CString, "", nil, false)
		mustNoDiags(t, d.sink)
	})
	t.Run("defined name with wrong function", func(t *testing.T) {
		d := newData()
		sc := strictCtx(d)
		sc.DefineName("county", scopes.LandedTitle, tok("county"))
		ValidateDatatypes(mustChain(t, "county.GetFirstName"), d, sc, Unknown, "", nil, false)
		mustHaveDiag(t, d.sink, report.Datafunctions, "GetFirstName cannot follow a Title promote")
	})
	t.Run("strict rejects unknown lowercase", func(t *testing.T) {
		d := newData()
		ValidateDatatypes(mustChain(t, "actor.GetFirstName"), d, strictCtx(d), Unknown, "", nil, false)
		mustHaveDiag(t, d.sink, report.Datafunctions, "unknown datafunction actor")
	})
	t.Run("non-strict accepts unknown lowercase", func(t *testing.T) {
		d := newData()
		sc := scopectx.NewUnrooted(scopes.All(), tok("x"), scopectx.WithSink(d.sink))
		sc.SetStrictScopes(false)
		ValidateDatatypes(mustChain(t, "actor.GetFirstName"), d, sc, CString, "", nil, false)
		mustNoDiags(t, d.sink)
	})
	t.Run("name shadows game concept", func(t *testing.T) {
		d := newData()
		sc := strictCtx(d)
		sc.DefineName("faith", scopes.Faith, tok("faith"))
		ValidateDatatypes(mustChain(t, "faith"), d, sc, Unknown, "", nil, false)
		mustHaveDiag(t, d.sink, report.Datafunctions, "`faith` is both a named scope and a game concept here")

		d.sink.Reset()
		format := tok("E")
		ValidateDatatypes(mustChain(t, "faith"), d, sc, Unknown, "", &format, false)
		mustNoDiags(t, d.sink)
	})
}

func TestExpectPromote(t *testing.T) {
	d := newData()
	ValidateDatatypes(mustChain(t, "ROOT.Char"), d, strictCtx(d), Character, "", nil, true)
	mustNoDiags(t, d.sink)

	ValidateDatatypes(mustChain(t, "ROOT.Char.GetName"), d, strictCtx(d), Unknown, "", nil, true)
	mustHaveDiag(t, d.sink, report.Datafunctions, "GetName cannot be used in this field")
}

func TestLocalize(t *testing.T) {
	d := newData()
	ValidateDatatypes(mustChain(t, "Localize('greeting')"), d, strictCtx(d), CString, "english", nil, false)
	mustNoDiags(t, d.sink)

	ValidateDatatypes(mustChain(t, "Localize('greeting')"), d, strictCtx(d), CString, "french", nil, false)
	mustHaveDiag(t, d.sink, report.Missing, "missing in french")
}

func TestDataBindings(t *testing.T) {
	b, err := NewBinding(tok("FirstNameOf"), tok("FirstNameOf(Who)"), tok("Who.GetFirstName"))
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Parms) != 1 || b.Parms[0] != "Who" {
		t.Fatalf("Parms = %v", b.Parms)
	}

	t.Run("expands", func(t *testing.T) {
		d := newData()
		d.bindings["FirstNameOf"] = b
		ValidateDatatypes(mustChain(t, "FirstNameOf(ROOT.Char)"), d, strictCtx(d), CString, "", nil, false)
		mustNoDiags(t, d.sink)
	})
	t.Run("wrong arity", func(t *testing.T) {
		d := newData()
		d.bindings["FirstNameOf"] = b
		ValidateDatatypes(mustChain(t, "FirstNameOf"), d, strictCtx(d), CString, "", nil, false)
		mustHaveDiag(t, d.sink, report.Datafunctions, "data binding FirstNameOf takes 1 arguments")
	})
	t.Run("literal for a code", func(t *testing.T) {
		d := newData()
		d.bindings["FirstNameOf"] = b
		ValidateDatatypes(mustChain(t, "FirstNameOf('x')"), d, strictCtx(d), CString, "", nil, false)
		mustHaveDiag(t, d.sink, report.Datafunctions, "data binding FirstNameOf needs a code for Who, not a literal")
		if strings.Contains(d.sink.All()[0].Msg, "arguments") {
			t.Errorf("reported as an arity problem: %+v", d.sink.All())
		}
	})
	t.Run("empty expansion", func(t *testing.T) {
		d := newData()
		d.bindings["Nothing"] = &Binding{Key: tok("Nothing"), Name: "Nothing", Replace: &Chain{}}
		ValidateDatatypes(mustChain(t, "Nothing.GetFirstName"), d, strictCtx(d), CString, "", nil, false)
		mustHaveDiag(t, d.sink, report.Datafunctions, "data binding Nothing expands to nothing")
	})
	t.Run("self reference gives up", func(t *testing.T) {
		d := newData()
		loop, err := NewBinding(tok("Loop"), tok("Loop"), tok("Loop"))
		if err != nil {
			t.Fatal(err)
		}
		d.bindings["Loop"] = loop
		ValidateDatatypes(mustChain(t, "Loop"), d, strictCtx(d), Unknown, "", nil, false)
		mustHaveDiag(t, d.sink, report.Macro, "substituted data bindings 256 times, giving up")
	})
	t.Run("bad definition", func(t *testing.T) {
		if _, err := NewBinding(tok("X"), tok("A.B"), tok("C")); !errors.Is(err, ErrSyntax) {
			t.Errorf("NewBinding = %v, want ErrSyntax", err)
		}
	})
}
