package datatype

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/script"
)

// Data is what the validator needs from the mod database.
type Data interface {
	Sink() report.Sink
	Datatypes() *Tables
	// ItemExists is true for kinds that were never loaded.
	ItemExists(kind item.Kind, name string) bool
	// ItemDefined is true only for names that were actually loaded.
	ItemDefined(kind item.Kind, name string) bool
	// LocalizationExists checks a key in one language, or in any if lang
	// is empty.
	LocalizationExists(lang, key string) bool
	DataBinding(name string) (*Binding, bool)
}

func warn(data Data, t script.Token, format string, args ...any) {
	report.Warn(report.Datafunctions).Msgf(format, args...).Loc(t.Loc).Push(data.Sink())
}

// ValidateDatatypes checks chain against the tables. sc supplies named
// scopes; for a non-strict sc, unknown lowercase names are taken to be
// scopes passed in from elsewhere. expect is the type the chain must return,
// or Unknown. lang limits localization checks to one language and may be
// empty. format is the text after `|`, if any. expectPromote is set for the
// few fields that take a chain ending in a promote.
func ValidateDatatypes(chain *Chain, data Data, sc *scopectx.Context, expect Datatype, lang string,
	format *script.Token, expectPromote bool) {
	tbl := data.Datatypes()
	cur := Unknown
	codes := chain.Codes
	substitutions := 0

	for i := 0; i < len(codes); i++ {
		for {
			b, ok := data.DataBinding(codes[i].Name.Text)
			if !ok {
				break
			}
			repl, err := b.Apply(codes[i])
			if err != nil {
				warn(data, codes[i].Name, "%v", err)
				return
			}
			if len(repl) == 0 {
				warn(data, codes[i].Name, "data binding %s expands to nothing", b.Key.Text)
				return
			}
			substitutions++
			if substitutions > MaxBindingSubstitutions {
				report.Err(report.Macro).Msgf("substituted data bindings %d times, giving up", substitutions).
					Loc(codes[i].Name.Loc).Push(data.Sink())
				return
			}
			expanded := make([]Code, 0, len(codes)+len(repl))
			expanded = append(expanded, codes[:i]...)
			expanded = append(expanded, repl...)
			codes = append(expanded, codes[i+1:]...)
		}

		code := codes[i]
		name := code.Name.Text
		first, last := i == 0, i == len(codes)-1

		if name == "" {
			warn(data, code.Name, "empty fragment")
			return
		}

		gf, gfFound := tbl.globalFunction(name)
		gp, gpFound := tbl.globalPromote(name)
		f, fRes := tbl.function(name, cur)
		p, pRes := tbl.promote(name, cur)
		fFound, pFound := fRes != notFound, pRes != notFound

		var entry Entry
		ok := false
		switch {
		case first && last && !expectPromote:
			entry, ok = gf, gfFound
		case first:
			entry, ok = gp, gpFound
		case !last || expectPromote:
			if pRes == wrongType {
				warn(data, code.Name, "%s cannot follow a %s promote", name, cur)
				return
			}
			entry, ok = p, pRes == found
		default:
			if fRes == wrongType {
				warn(data, code.Name, "%s cannot follow a %s promote", name, cur)
				return
			}
			entry, ok = f, fRes == found
		}

		if !ok {
			if msg := misplaced(first, last, expectPromote, gpFound, gfFound, pFound, fFound); msg != "" {
				warn(data, code.Name, "%s %s", name, msg)
				return
			}
		}

		// Unadorned game concepts, like [faith], are strings.
		if !ok && first && last && data.ItemDefined(item.GameConcept, name) {
			if _, named := sc.IsNameDefined(name); named && (format == nil || !strings.ContainsAny(format.Text, "Ee")) {
				report.Warn(report.Datafunctions).Msgf("`%s` is both a named scope and a game concept here", name).
					Info(fmt.Sprintf("The game concept will take precedence. Do `%s.Self` if you want the named scope.", name)).
					Loc(code.Name.Loc).Push(data.Sink())
			}
			entry, ok = Entry{NoArgs, CString}, true
		}

		if !ok && first {
			if s, named := sc.IsNameDefined(name); named {
				entry, ok = Entry{NoArgs, tbl.FromScopes(s)}, true
			}
		}

		// Scopes passed in from script are not all known, so accept anything
		// that looks like one.
		if !ok && first && !sc.IsStrict() {
			if r := rune(name[0]); unicode.IsLower(r) || unicode.IsDigit(r) {
				entry, ok = Entry{NoArgs, Unknown}, true
			}
		}

		if !ok {
			b := report.Warn(report.Datafunctions).Msgf("unknown datafunction %s", name).Loc(code.Name.Loc)
			if alt := suggest(tbl, name); alt != "" {
				b.Info(fmt.Sprintf("did you mean %s?", alt))
			}
			b.Push(data.Sink())
			return
		}

		if !entry.Args.Unknown && len(entry.Args.List) != len(code.Args) {
			warn(data, code.Name, "%s takes %d arguments but was given %d here", name, len(entry.Args.List), len(code.Args))
			return
		}

		validateCustom(code, cur, data, lang)

		if !entry.Args.Unknown {
			for j, want := range entry.Args.List {
				if name == "SelectLocalization" && j > 0 && isGameConcept(code.Args[j], data) {
					continue
				}
				validateArgument(code.Args[j], want, data, sc, lang, format)
			}
		}

		cur = entry.Return
		if last && cur != Unknown && expect != Unknown && cur != expect {
			if expect == AnyScope {
				if _, ok := tbl.ScopeOf(cur); !ok {
					warn(data, code.Name, "%s returns %s but a scope type is needed here", name, cur)
					return
				}
			} else {
				warn(data, code.Name, "%s returns %s but a %s is needed here", name, cur, expect)
				return
			}
		}
	}
}

// misplaced explains why a name that is in some table is not usable at this
// position, or returns "" if it is in none.
func misplaced(first, last, expectPromote, gp, gf, p, f bool) string {
	switch {
	case first && (p || f) && !gp && !gf:
		return "cannot be the first in a chain"
	case last && (gp || p) && !gf && !f && !expectPromote:
		return "cannot be last in a chain"
	case expectPromote && (gf || f):
		return "cannot be used in this field"
	case !first && (gp || gf) && !p && !f:
		return "must be the first in a chain"
	case !last && (gf || f) && !gp && !p:
		return "must be last in the chain"
	case gp || gf || p || f:
		return "is improperly used here"
	}
	return ""
}

func suggest(tbl *Tables, name string) string {
	if alt, ok := tbl.alternative(name); ok {
		return alt
	}
	if len(name) < 4 {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, tbl.Names())
	sort.Sort(ranks)
	lower := strings.ToLower(name)
	best, bestDist := "", 3
	for _, r := range ranks {
		if r.Distance < bestDist {
			best, bestDist = r.Target, r.Distance
		}
	}
	for _, n := range tbl.Names() {
		if d := fuzzy.LevenshteinDistance(lower, strings.ToLower(n)); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

func isGameConcept(a CodeArg, data Data) bool {
	return a.Chain != nil && len(a.Chain.Codes) == 1 && len(a.Chain.Codes[0].Args) == 0 &&
		data.ItemDefined(item.GameConcept, a.Chain.Codes[0].Name.Text)
}

// validateCustom checks the key given to Custom, Custom2, GetCustom and
// Localize. Faith customs are built in and not checked.
func validateCustom(code Code, cur Datatype, data Data, lang string) {
	if len(code.Args) == 0 || code.Args[0].Literal == nil {
		return
	}
	key := *code.Args[0].Literal
	switch {
	case code.Name.Is("Custom") && len(code.Args) == 1 && cur != Faith,
		code.Name.Is("Custom2") && len(code.Args) == 2,
		code.Name.Is("GetCustom") && len(code.Args) == 1:
		if _, ok := data.Datatypes().ScopeOf(cur); ok || cur == Unknown || cur == AnyScope || cur == TopScope {
			if !data.ItemExists(item.CustomLocalization, key.Text) {
				report.Err(report.Missing).Msgf("`%s` not defined as %s", key.Text, item.CustomLocalization).
					Loc(key.Loc).Push(data.Sink())
			}
		}
	case code.Name.Is("Localize") && len(code.Args) == 1:
		// Some translations Localize text that is already localized.
		if isASCII(key.Text) && !data.LocalizationExists(lang, key.Text) {
			b := report.Err(report.Missing).Msgf("`%s` not defined as %s", key.Text, item.Localization).Loc(key.Loc)
			if lang != "" {
				b.Info("missing in " + lang)
			}
			b.Push(data.Sink())
		}
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func validateArgument(a CodeArg, want Arg, data Data, sc *scopectx.Context, lang string, format *script.Token) {
	if want.IsItem {
		if a.Chain != nil {
			ValidateDatatypes(a.Chain, data, sc, CString, lang, format, false)
		} else if !data.ItemExists(want.Item, a.Literal.Text) {
			report.Err(report.Missing).Msgf("`%s` not defined as %s", a.Literal.Text, want.Item).
				Loc(a.Literal.Loc).Push(data.Sink())
		}
		return
	}
	if a.Chain != nil {
		ValidateDatatypes(a.Chain, data, sc, want.DType, lang, format, false)
		return
	}
	lit := *a.Literal
	if strings.HasPrefix(lit.Text, "(") && strings.Contains(lit.Text, ")") {
		dtName, _, _ := strings.Cut(lit.Text[1:], ")")
		if dtName == "hex" {
			if want.DType != Unknown && want.DType != Int32 {
				warn(data, lit, "expected %s, got %s", want.DType, dtName)
			}
		} else if dt, ok := Parse(dtName); ok {
			if want.DType != Unknown && want.DType != dt {
				warn(data, lit, "expected %s, got %s", want.DType, dt)
			}
		} else {
			warn(data, lit, "unrecognized datatype %s", dtName)
		}
		return
	}
	if want.DType != Unknown && want.DType != CString {
		warn(data, lit, "expected %s, got CString", want.DType)
	}
}
