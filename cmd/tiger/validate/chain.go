package validate

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tables"
)

// Part is one dot-separated step of a chain like root.liege.opinion(scope:x).
type Part struct {
	Token script.Token
	// Arg is set for `func(arg)` parts.
	Arg *script.Token
	// start is the byte offset of Token in the chain.
	start int
}

func (p Part) String() string {
	if p.Arg != nil {
		return fmt.Sprintf("%s(%s)", p.Token.Text, p.Arg.Text)
	}
	return p.Token.Text
}

func (p Part) Loc() script.Loc { return p.Token.Loc }

type PartFlags uint8

const (
	First PartFlags = 1 << iota
	Last
	Question
)

func (f PartFlags) Has(o PartFlags) bool { return f&o == o }

func partFlags(i, n int, qeq bool) PartFlags {
	var f PartFlags
	if i == 0 {
		f |= First
	}
	if i+1 == n {
		f |= Last
	}
	if qeq {
		f |= Question
	}
	return f
}

// Partition splits a chain on the dots outside parentheses. It only checks
// syntax; the parts are not looked up.
func Partition(t script.Token, sink report.Sink) []Part {
	text := t.Text
	if text == "" {
		return nil
	}
	syntax := func(from, to int, msg string) {
		report.Err(report.Validation).Msg(msg).Loc(t.Sub(from, to).Loc).Push(sink)
	}

	var parts []Part
	hasArg, argErred := false, false
	depth := 0
	partIdx, firstParen, secondParen := 0, 0, 0
	for idx, ch := range text {
		switch ch {
		case '.':
			if depth != 0 {
				continue
			}
			if partIdx == idx {
				syntax(idx, idx+1, "empty part")
			} else if !hasArg {
				parts = append(parts, Part{Token: t.Sub(partIdx, idx), start: partIdx})
			}
			hasArg, argErred = false, false
			partIdx = idx + 1
		case '(':
			switch depth {
			case 0:
				firstParen = idx
			case 1:
				secondParen = idx
			}
			depth++
		case ')':
			switch depth {
			case 0:
				syntax(idx, idx+1, "closing without opening parenthesis `(`")
			case 1:
				arg := stripped(t.Sub(firstParen+1, idx))
				parts = append(parts, Part{Token: t.Sub(partIdx, firstParen), Arg: &arg, start: partIdx})
				hasArg = true
				depth--
			case 2:
				syntax(secondParen, idx+1, "cannot have nested parentheses")
				depth--
			default:
				depth--
			}
		default:
			if hasArg && !argErred {
				syntax(idx, idx+1, "argument can only be the last part or followed by dot `.`")
				argErred = true
			}
		}
	}

	if depth > 0 {
		syntax(firstParen, len(text), "opening without closing parenthesis `)`")
	}
	if partIdx == len(text) {
		syntax(partIdx, partIdx, "trailing dot `.`")
	} else if !hasArg {
		parts = append(parts, Part{Token: t.Sub(partIdx, len(text)), start: partIdx})
	}
	return parts
}

func stripped(t script.Token) script.Token {
	trimmed := strings.TrimLeftFunc(t.Text, unicode.IsSpace)
	from := len(t.Text) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	return t.Sub(from, from+len(trimmed))
}

func warnNotFirst(name script.Token, data Data) {
	report.Warn(report.Validation).Msgf("`%s:` makes no sense except as first part", name.Text).Loc(name.Loc).Push(data.Sink())
}

// validateInscopes narrows the current scope to what a step accepts. A step
// that ignores its input makes the parts before it pointless.
func validateInscopes(flags PartFlags, name script.Token, inscopes scopes.Set, data Data, sc *scopectx.Context) {
	if inscopes == scopes.None && !flags.Has(First) {
		warnNotFirst(name, data)
	}
	sc.Expect(inscopes, scopectx.TokenReason(name))
}

func validateArgumentValue(arg script.Token, a tables.Argument, data Data, sc *scopectx.Context) {
	switch a.Kind {
	case tables.ArgItem:
		verifyExists(data, a.Item, arg, report.Fatal)
	case tables.ArgScope:
		ValidateTarget(arg, data, sc, a.Scopes)
	case tables.ArgScopeOrItem:
		if !data.ItemExists(a.Item, arg.Text) {
			ValidateTarget(arg, data, sc, a.Scopes)
		}
	}
}

// validateArgumentScope handles a keyed step, written prefix:arg or prefix(arg).
func validateArgumentScope(flags PartFlags, k tables.Keyed, fn, arg script.Token, data Data, sc *scopectx.Context) {
	validateInscopes(flags, fn, k.From, data, sc)
	validateArgumentValue(arg, k.Arg, data, sc)

	out := fn.Combine(arg, ':')
	if fn.LowercaseIs("scope") {
		if flags.Has(Last | Question) {
			sc.ExistsScope(arg.Text, out)
		}
		sc.ReplaceNamedScope(arg.Text, out)
		return
	}
	sc.Replace(k.To, out)
}

// validateArgument handles a func(arg) step: a value-producing trigger such
// as opinion(liege), or a keyed prefix.
func validateArgument(flags PartFlags, fn, arg script.Token, data Data, sc *scopectx.Context) {
	t := data.Tables()
	if c, ok := t.ComplexTrigger(fn.Text); ok {
		sc.Expect(c.In, scopectx.TokenReason(fn))
		validateArgumentValue(arg, c.Arg, data, sc)
		sc.Replace(scopes.Value, fn)
		return
	}
	if k, ok := t.KeyedTransition(fn.Text); ok {
		validateArgumentScope(flags, k, fn, arg, data, sc)
		return
	}
	report.Err(report.Validation).Msgf("unknown token `%s`", fn.Text).Loc(fn.Loc).Push(data.Sink())
}

var listPrefixes = []string{"any_", "every_", "ordered_", "random_"}

// unknownPart handles a step nothing else matched. If lenient is set and the
// context is not strict, a lowercase first part is taken as a name the game
// supplies at run time, and unknownPart returns true. Otherwise the step is
// reported.
func unknownPart(part script.Token, flags PartFlags, data Data, sc *scopectx.Context, expected scopes.Set, lenient bool) bool {
	if lenient && !sc.IsStrict() && flags.Has(First) && startsLower(part.Text) {
		sc.ReplaceAll(part)
		return true
	}

	t := data.Tables()
	if r, ok := t.RemovedField(part.Text); ok {
		b := report.Err(report.Removed).Msgf("`%s` was removed in %s", part.Text, r.Version).Loc(part.Loc)
		if r.Hint != "" {
			b.Info(r.Hint)
		}
		b.Push(data.Sink())
		return false
	}
	for _, p := range listPrefixes {
		if rest, ok := strings.CutPrefix(part.Lower(), p); ok {
			if _, ok := t.Iterator(rest); ok {
				report.Err(report.Validation).Msgf("`%s` is an iterator, not a scope transition", part.Text).
					Loc(part.Loc).Push(data.Sink())
				return false
			}
		}
	}

	b := report.Err(report.UnknownField).Msgf("unknown token `%s`", part.Text).Loc(part.Loc)
	if flags.Has(First | Last) {
		if prefix := t.NeedsPrefix(part.Text, data, expected); prefix != "" {
			b.Info(fmt.Sprintf("did you mean `%s:%s` ?", prefix, part.Text))
		} else if guess := closestName(part.Text, t.Names()); guess != "" {
			b.Info(fmt.Sprintf("did you mean `%s` ?", guess))
		}
	}
	b.Push(data.Sink())
	return false
}

func startsLower(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}

// closestName returns the best fuzzy match for name, or "".
func closestName(name string, candidates []string) string {
	if len(name) < 3 {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	sort.Sort(ranks)
	if len(ranks) > 0 && ranks[0].Distance <= 3 {
		return ranks[0].Target
	}
	lower := strings.ToLower(name)
	best, bestDist := "", 3
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(lower, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// ValidateTargetOkThis checks that t evaluates to one of outscopes. t may
// be a number, a chain of scope steps, or end in a value-producing trigger.
func ValidateTargetOkThis(t script.Token, data Data, sc *scopectx.Context, outscopes scopes.Set) {
	if t.IsNumber() {
		if !outscopes.Intersects(scopes.Value | scopes.None) {
			report.Warn(report.Scopes).Msgf("expected %s", outscopes).Loc(t.Loc).Push(data.Sink())
		}
		return
	}
	parts := Partition(t, data.Sink())
	if len(parts) == 0 {
		return
	}
	sc.OpenBuilder()
	defer sc.Close()

	tbl := data.Tables()
	last := parts[len(parts)-1]
walk:
	for i, p := range parts {
		flags := partFlags(i, len(parts), false)
		if p.Arg != nil {
			validateArgument(flags, p.Token, *p.Arg, data, sc)
			continue
		}
		part := p.Token
		if prefix, arg, ok := part.SplitOnce(':'); ok {
			isEventID := prefix.LowercaseIs("event_id")
			if isEventID {
				// Event ids contain dots, so the argument is the rest of the chain.
				arg = t.Sub(p.start+len(prefix.Text)+1, len(t.Text))
			}
			k, ok := tbl.KeyedTransition(prefix.Text)
			if !ok {
				report.Err(report.Validation).Msgf("unknown prefix `%s:`", prefix.Text).Loc(prefix.Loc).Push(data.Sink())
				return
			}
			validateArgumentScope(flags, k, prefix, arg, data, sc)
			if isEventID {
				last = p
				break walk
			}
			continue
		}

		lower := part.Lower()
		switch {
		case lower == "root":
			sc.ReplaceRoot()
		case lower == "prev":
			if !flags.Has(First) {
				warnNotFirst(part, data)
			}
			sc.ReplacePrev()
		case lower == "this":
			sc.ReplaceThis()
		case isScriptValue(data, part.Text):
			sv, _ := data.ScriptValue(part.Text)
			sv.ValidateCall(part, data, sc)
			sc.Replace(scopes.Value, part)
		default:
			if tr, ok := tbl.PickOverload(part.Text, sc.Scopes()); ok {
				validateInscopes(flags, part, tr.From, data, sc)
				sc.Replace(tr.To, part)
				continue
			}
			if in, ok := tbl.CompareValueTrigger(part.Text); ok {
				if !flags.Has(Last) {
					report.Warn(report.Validation).Msgf("`%s` should be the last part", part.Text).Loc(part.Loc).Push(data.Sink())
					return
				}
				wasNone := sc.Scopes() == scopes.None
				validateInscopes(flags, part, in, data, sc)
				if wasNone && lower == "current_year" {
					report.Warn(report.Bugs).Msg("current_year does not work in empty scope").
						Info("try using current_date, or dummy_male.current_year").Loc(part.Loc).Push(data.Sink())
				}
				sc.Replace(scopes.Value, part)
				continue
			}
			if !unknownPart(part, flags, data, sc, outscopes, true) {
				return
			}
		}
	}

	final, because := sc.ScopesReason()
	if !outscopes.Intersects(final | scopes.None) {
		b := report.Warn(report.Scopes).Msgf("`%s` produces %s but expected %s", last, final, outscopes).Loc(last.Loc())
		if because.Token.Loc != last.Loc() {
			b.LocMsg(because.Token.Loc, "scope was "+because.Msg())
		}
		b.Push(data.Sink())
	}
}

// ValidateTarget is ValidateTargetOkThis, but a literal `this` is reported
// since it is usually a mistake.
func ValidateTarget(t script.Token, data Data, sc *scopectx.Context, outscopes scopes.Set) {
	ValidateTargetOkThis(t, data, sc, outscopes)
	if t.Is("this") {
		report.Warn(report.UseOfThis).Msg("target `this` makes no sense here").Loc(t.Loc).Push(data.Sink())
	}
}

// ValidateScopeChain walks a chain used as a key, like
// `liege.primary_title = { ... }`, in a builder the caller has opened. It
// returns false if the chain could not be followed; the caller still closes
// the builder.
func ValidateScopeChain(t script.Token, data Data, sc *scopectx.Context, qeq bool) bool {
	tbl := data.Tables()
	parts := Partition(t, data.Sink())
	for i, p := range parts {
		flags := partFlags(i, len(parts), qeq)
		if p.Arg != nil {
			validateArgument(flags, p.Token, *p.Arg, data, sc)
			continue
		}
		part := p.Token
		if prefix, arg, ok := part.SplitOnce(':'); ok {
			k, ok := tbl.KeyedTransition(prefix.Text)
			if !ok {
				report.Err(report.Validation).Msgf("unknown prefix `%s:`", prefix.Text).Loc(prefix.Loc).Push(data.Sink())
				return false
			}
			validateArgumentScope(flags, k, prefix, arg, data, sc)
			continue
		}
		switch lower := part.Lower(); {
		case lower == "root":
			sc.ReplaceRoot()
		case lower == "prev":
			if !flags.Has(First) {
				warnNotFirst(part, data)
			}
			sc.ReplacePrev()
		case lower == "this":
			sc.ReplaceThis()
		default:
			if tr, ok := tbl.PickOverload(part.Text, sc.Scopes()); ok {
				validateInscopes(flags, part, tr.From, data, sc)
				sc.Replace(tr.To, part)
				continue
			}
			if !unknownPart(part, flags, data, sc, scopes.All(), true) {
				return false
			}
		}
	}
	return len(parts) > 0
}
