package validate

import (
	"strings"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
)

// FieldSet is the set of keys a block walker recognized. Keys are stored
// lowercased.
type FieldSet map[string]struct{}

func (s FieldSet) Add(keys ...string) {
	for _, k := range keys {
		s[strings.ToLower(k)] = struct{}{}
	}
}

func (s FieldSet) Has(key string) bool {
	_, ok := s[strings.ToLower(key)]
	return ok
}

// ReportUnknown reports every field of b whose key is not in recognized,
// and every loose value or sub-block.
func ReportUnknown(b *script.Block, recognized FieldSet, sink report.Sink) int {
	return reportUnknown(b, recognized, sink, report.Fatal)
}

func reportUnknown(b *script.Block, recognized FieldSet, sink report.Sink, maxSev report.Severity) int {
	n := 0
	for _, it := range b.Items {
		switch {
		case it.Field != nil:
			if recognized.Has(it.Field.Key.Text) {
				continue
			}
			report.Err(report.UnknownField).Weak().Msgf("unknown field `%s`", it.Field.Key.Text).
				MaxSeverity(maxSev).Loc(it.Field.Key.Loc).Push(sink)
		case it.Value != nil:
			report.Err(report.Validation).Msgf("found loose value %s, expected only `key =`", it.Value.Text).
				MaxSeverity(maxSev).Loc(it.Value.Loc).Push(sink)
		case it.Block != nil:
			report.Err(report.Validation).Msg("found sub-block, expected only `key =`").
				MaxSeverity(maxSev).Loc(it.Block.Loc).Push(sink)
		}
		n++
	}
	return n
}

// fields walks the keys of one block. Every accessor marks its key as
// recognized; done reports the rest.
type fields struct {
	block  *script.Block
	data   Data
	seen   FieldSet
	maxSev report.Severity
	// acceptAll is set once an unknown-fields loop has claimed the remainder.
	acceptAll bool
}

func newFields(b *script.Block, data Data) *fields {
	return &fields{block: b, data: data, seen: FieldSet{}, maxSev: report.Fatal}
}

func (vd *fields) setMaxSeverity(s report.Severity) { vd.maxSev = s }

func (vd *fields) push(b *report.Builder) {
	b.MaxSeverity(vd.maxSev).Push(vd.data.Sink())
}

// Recognized returns the keys seen so far.
func (vd *fields) Recognized() FieldSet { return vd.seen }

func (vd *fields) done() {
	if vd.acceptAll {
		return
	}
	reportUnknown(vd.block, vd.seen, vd.data.Sink(), vd.maxSev)
}

func (vd *fields) all(name string) []script.Field {
	var out []script.Field
	for _, f := range vd.block.Fields() {
		if f.Key.LowercaseIs(name) {
			out = append(out, f)
		}
	}
	return out
}

func (vd *fields) req(name string) bool {
	if vd.block.HasKey(name) {
		return true
	}
	vd.push(report.Err(report.FieldMissing).Msgf("required field `%s` missing", name).Loc(vd.block.Loc))
	return false
}

func (vd *fields) reqWarn(name string) bool {
	if vd.block.HasKey(name) {
		return true
	}
	vd.push(report.Warn(report.FieldMissing).Msgf("required field `%s` missing", name).Loc(vd.block.Loc))
	return false
}

// field returns the single field name. Repeats are reported and the last
// one wins, as in the game.
func (vd *fields) field(name string) (script.Field, bool) {
	vd.seen.Add(name)
	all := vd.all(name)
	if len(all) == 0 {
		return script.Field{}, false
	}
	for _, f := range all[:len(all)-1] {
		vd.push(report.Warn(report.Duplicate).Msgf("`%s` is redefined later in this block", f.Key.Text).
			Loc(f.Key.Loc).LocMsg(all[len(all)-1].Key.Loc, "here"))
	}
	return all[len(all)-1], true
}

func (vd *fields) multi(name string) []script.Field {
	vd.seen.Add(name)
	return vd.all(name)
}

func (vd *fields) expectValue(bv script.BV) (script.Token, bool) {
	if t, ok := bv.GetValue(); ok {
		return t, true
	}
	vd.push(report.Err(report.Validation).Msg("expected value, found block").Loc(bv.Loc()))
	return script.Token{}, false
}

func (vd *fields) expectBlock(bv script.BV) (*script.Block, bool) {
	if bv.Block != nil {
		return bv.Block, true
	}
	vd.push(report.Err(report.Validation).Msg("expected block, found value").Loc(bv.Loc()))
	return nil, false
}

func (vd *fields) fieldValue(name string) (script.Token, bool) {
	f, ok := vd.field(name)
	if !ok {
		return script.Token{}, false
	}
	return vd.expectValue(f.BV)
}

func (vd *fields) fieldBlock(name string) (script.Field, bool) {
	f, ok := vd.field(name)
	if !ok {
		return script.Field{}, false
	}
	if _, ok := vd.expectBlock(f.BV); !ok {
		return script.Field{}, false
	}
	return f, true
}

// ban reports name wherever it appears.
func (vd *fields) ban(name, onlyFor string) {
	for _, f := range vd.multi(name) {
		vd.push(report.Err(report.Validation).Msgf("`%s` can only be used in %s", name, onlyFor).Loc(f.Key.Loc))
	}
}

func (vd *fields) fieldItem(name string, kind item.Kind) {
	if t, ok := vd.fieldValue(name); ok {
		verifyExists(vd.data, kind, t, vd.maxSev)
	}
}

func (vd *fields) multiItem(name string, kind item.Kind) {
	for _, f := range vd.multi(name) {
		if t, ok := vd.expectValue(f.BV); ok {
			verifyExists(vd.data, kind, t, vd.maxSev)
		}
	}
}

func (vd *fields) fieldBool(name string) {
	if t, ok := vd.fieldValue(name); ok && !t.Is("yes") && !t.Is("no") {
		vd.push(report.Warn(report.Validation).Msg("expected yes or no").Loc(t.Loc))
	}
}

func (vd *fields) fieldInteger(name string) {
	if t, ok := vd.fieldValue(name); ok && !t.IsInteger() {
		vd.push(report.Err(report.Validation).Msg("expected integer").Loc(t.Loc))
	}
}

func (vd *fields) fieldNumber(name string) {
	if t, ok := vd.fieldValue(name); ok && !t.IsNumber() {
		vd.push(report.Err(report.Validation).Msg("expected number").Loc(t.Loc))
	}
}

func (vd *fields) fieldChoice(name string, choices ...string) {
	if t, ok := vd.fieldValue(name); ok {
		vd.checkChoice(t, choices)
	}
}

func (vd *fields) checkChoice(t script.Token, choices []string) bool {
	for _, c := range choices {
		if t.Is(c) {
			return true
		}
	}
	vd.push(report.Err(report.Choice).Msgf("expected one of %s", strings.Join(choices, ", ")).Loc(t.Loc))
	return false
}

func (vd *fields) fieldTarget(name string, sc *scopectx.Context, s scopes.Set) {
	if t, ok := vd.fieldValue(name); ok {
		ValidateTarget(t, vd.data, sc, s)
	}
}

func (vd *fields) fieldTargetOkThis(name string, sc *scopectx.Context, s scopes.Set) {
	if t, ok := vd.fieldValue(name); ok {
		ValidateTargetOkThis(t, vd.data, sc, s)
	}
}

// fieldItemOrTarget accepts an item name, or else a target of type s.
func (vd *fields) fieldItemOrTarget(name string, sc *scopectx.Context, kind item.Kind, s scopes.Set) {
	if t, ok := vd.fieldValue(name); ok && !vd.data.ItemExists(kind, t.Text) {
		ValidateTarget(t, vd.data, sc, s)
	}
}

func (vd *fields) fieldScriptValue(name string, sc *scopectx.Context) bool {
	f, ok := vd.field(name)
	if ok {
		ValidateScriptValue(f.BV, vd.data, sc)
	}
	return ok
}

func (vd *fields) multiScriptValue(name string, sc *scopectx.Context) {
	for _, f := range vd.multi(name) {
		ValidateScriptValue(f.BV, vd.data, sc)
	}
}

func (vd *fields) fieldTrigger(name string, sc *scopectx.Context, tt Tooltipped) bool {
	f, ok := vd.fieldBlock(name)
	if !ok {
		return false
	}
	ValidateTrigger(f.BV.Block, vd.data, sc, tt)
	return true
}

func (vd *fields) fieldDesc(name string, sc *scopectx.Context) {
	if f, ok := vd.field(name); ok {
		ValidateDesc(f.BV, vd.data, sc)
	}
}

// optionalDuration checks at most one of days, weeks, months or years.
func (vd *fields) optionalDuration(sc *scopectx.Context) {
	count := 0
	for _, name := range []string{"days", "weeks", "months", "years"} {
		f, ok := vd.field(name)
		if !ok {
			continue
		}
		ValidateScriptValue(f.BV, vd.data, sc)
		count++
		if count > 1 {
			vd.push(report.Err(report.Validation).Msg("must have at most 1 of days, weeks, months, or years").Loc(f.Key.Loc))
		}
	}
}

// unknownFields calls fn for every field not claimed so far, in block
// order. Afterwards every field counts as recognized.
func (vd *fields) unknownFields(fn func(f script.Field)) {
	for _, f := range vd.block.Fields() {
		if !vd.seen.Has(f.Key.Text) {
			fn(f)
		}
	}
	for _, f := range vd.block.Fields() {
		vd.seen.Add(f.Key.Text)
	}
}

// unknownValueFields is like unknownFields but expects values.
func (vd *fields) unknownValueFields(fn func(key, value script.Token)) {
	vd.unknownFields(func(f script.Field) {
		if v, ok := vd.expectValue(f.BV); ok {
			fn(f.Key, v)
		}
	})
}

// unknownBlockFields is like unknownFields but expects blocks.
func (vd *fields) unknownBlockFields(fn func(key script.Token, b *script.Block)) {
	vd.unknownFields(func(f script.Field) {
		if b, ok := vd.expectBlock(f.BV); ok {
			fn(f.Key, b)
		}
	})
}

// ifElseSequence checks that every else_if and else follows an if.
func ifElseSequence(b *script.Block, data Data, keyIf, keyElseIf, keyElse string) {
	seenIf := false
	for _, f := range b.Definitions() {
		switch {
		case f.Key.Is(keyIf):
			seenIf = true
			continue
		case f.Key.Is(keyElseIf):
			if !seenIf {
				report.Warn(report.IfElse).Msgf("`%s` without preceding `%s`", keyElseIf, keyIf).Loc(f.Key.Loc).Push(data.Sink())
			}
			seenIf = true
			continue
		case f.Key.Is(keyElse):
			if !seenIf {
				report.Warn(report.IfElse).Msgf("`%s` without preceding `%s`", keyElse, keyIf).Loc(f.Key.Loc).Push(data.Sink())
			}
			// An else with a limit, followed by another else, does work.
			if f.BV.Block.HasKey("limit") {
				seenIf = true
				continue
			}
		}
		seenIf = false
	}
}
