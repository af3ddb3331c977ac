package validate

import (
	"fmt"
	"strings"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tables"
	"tiger-tools/cmd/tiger/tooltip"
)

// ValidateTrigger validates a trigger block in the current scope. It returns
// true if the trigger has side effects, like saving a temporary scope.
func ValidateTrigger(b *script.Block, data Data, sc *scopectx.Context, tt Tooltipped) bool {
	return ValidateTriggerInternal("", false, b, data, sc, tt, false, report.Fatal)
}

// ValidateTriggerMaxSev is ValidateTrigger with every diagnostic capped at
// maxSev.
func ValidateTriggerMaxSev(b *script.Block, data Data, sc *scopectx.Context, tt Tooltipped, maxSev report.Severity) bool {
	return ValidateTriggerInternal("", false, b, data, sc, tt, false, maxSev)
}

// tooComplexForFailures says whether the game cannot show the failing part
// of this control trigger.
func tooComplexForFailures(caller string, negated bool) bool {
	if negated {
		return caller == "and" || caller == "nand"
	}
	return caller == "or" || caller == "nor" || caller == "all_false"
}

// ValidateTriggerInternal validates the body of a trigger block. caller is
// the lowercased key that opened the block, or "" at top level.
func ValidateTriggerInternal(caller string, inList bool, b *script.Block, data Data, sc *scopectx.Context,
	tt Tooltipped, negated bool, maxSev report.Severity) bool {
	vd := newFields(b, data)
	vd.setMaxSeverity(maxSev)
	sideEffects := false

	if tt == tooltip.FailuresOnly && tooComplexForFailures(caller, negated) {
		prefix := ""
		if negated && (caller == "nor" || caller == "all_false" || caller == "and") {
			prefix = "negated "
		}
		vd.push(report.Warn(report.Tooltip).
			Msgf("%s%s is a too complex trigger to be tooltipped in a trigger that shows failures only.", prefix, strings.ToUpper(caller)).
			Info("Try adding a custom_description or custom_tooltip, or simplifying the trigger").Loc(b.Loc))
	}

	switch caller {
	case "trigger_if", "trigger_else_if", "trigger_else":
		if caller != "trigger_else" {
			vd.reqWarn("limit")
		}
		if f, ok := vd.fieldBlock("limit"); ok {
			if caller == "trigger_else" {
				vd.push(report.New(report.Tips, report.IfElse).
					Msg("`trigger_else` with a `limit` does work, but may indicate a mistake").
					Info("normally you would use `trigger_else_if` instead.").Loc(f.Key.Loc))
			}
			sideEffects = ValidateTrigger(f.BV.Block, data, sc, tooltip.No) || sideEffects
		}
	default:
		vd.ban("limit", "`trigger_if`, `trigger_else_if` or `trigger_else`")
	}

	if inList {
		vd.fieldTrigger("filter", sc, tooltip.No)
	} else {
		vd.ban("filter", "lists")
	}

	lt := ListNone
	if inList {
		lt = ListAny
	}
	validateIteratorFields(caller, lt, data, sc, vd, &tt)
	if inList {
		validateInsideIterator(caller, lt, b, data, sc, vd, tt)
	}

	if caller == "custom_description" || caller == "custom_tooltip" {
		vd.req("text")
		if caller == "custom_tooltip" {
			vd.fieldItem("text", item.Localization)
		} else {
			vd.fieldValue("text")
		}
		vd.fieldTargetOkThis("subject", sc, scopes.NonPrimitive())
	} else {
		vd.ban("text", "`custom_description` or `custom_tooltip`")
		vd.ban("subject", "`custom_description` or `custom_tooltip`")
	}
	if caller != "custom_description" {
		vd.ban("object", "`custom_description`")
		vd.ban("value", "`custom_description`")
	}

	var adds, factors []script.Field
	if caller == "modifier" {
		adds = vd.multi("add")
		factors = vd.multi("factor")
		vd.fieldTrigger("trigger", sc, tooltip.No)
	} else {
		vd.ban("add", "`modifier` or script values")
		vd.ban("factor", "`modifier` blocks")
		vd.ban("desc", "`modifier` or script values")
		vd.ban("trigger", "`modifier` blocks")
	}

	if caller == "calc_true_if" {
		vd.req("amount")
		vd.multi("amount")
	} else if !inList {
		vd.ban("amount", "`calc_true_if`")
	}

	ifElseSequence(b, data, "trigger_if", "trigger_else_if", "trigger_else")

	vd.unknownFields(func(f script.Field) {
		key := f.Key
		switch {
		case key.Is("value"):
			ValidateScriptValue(f.BV, data, sc)
			sideEffects = true
			return
		case key.Is("desc") || key.Is("DESC"):
			ValidateDesc(f.BV, data, sc)
			return
		case key.Is("object"):
			if t, ok := vd.expectValue(f.BV); ok {
				ValidateTargetOkThis(t, data, sc, scopes.NonPrimitive())
			}
			return
		}

		if lt, name, ok := splitIteratorKey(key, data); ok {
			if lt != ListAny {
				vd.push(report.Err(report.Validation).Msgf("cannot use `%s_` list in a trigger", lt).Loc(key.Loc))
				return
			}
			b, ok := vd.expectBlock(f.BV)
			if !ok {
				return
			}
			it, _ := data.Tables().Iterator(name)
			sc.Expect(it.From, scopectx.TokenReason(key))
			precheckIteratorFields(ListAny, name, b, data, sc)
			sc.OpenScope(it.To, key)
			sideEffects = ValidateTriggerInternal(name, true, b, data, sc, tt, negated, maxSev) || sideEffects
			sc.Close()
			return
		}

		sideEffects = ValidateTriggerKeyBV(key, f.Cmp, f.BV, data, sc, tt, negated, maxSev) || sideEffects
	})

	for _, f := range adds {
		ValidateScriptValue(f.BV, data, sc)
		sideEffects = true
	}
	for _, f := range factors {
		ValidateScriptValue(f.BV, data, sc)
		sideEffects = true
	}
	vd.done()
	return sideEffects
}

// ValidateTriggerKeyBV validates one `key cmp value` trigger line. The key
// may be a scripted trigger, a number, or a chain ending in a trigger.
func ValidateTriggerKeyBV(key script.Token, cmp script.Comparator, bv script.BV, data Data, sc *scopectx.Context,
	tt Tooltipped, negated bool, maxSev report.Severity) bool {
	push := func(b *report.Builder) { b.MaxSeverity(maxSev).Push(data.Sink()) }

	if st, ok := data.ScriptedTrigger(key.Text); ok {
		if t, ok := bv.GetValue(); ok {
			if !t.Is("yes") && !t.Is("no") && !t.Is("YES") && !t.Is("NO") {
				push(report.Warn(report.Validation).Msg("expected yes or no").Loc(t.Loc))
			}
			if len(st.MacroParms()) > 0 {
				push(report.New(report.Fatal, report.Macro).Msg("expected macro arguments").Loc(t.Loc))
				return false
			}
			if t.LowercaseIs("no") {
				negated = !negated
			}
			st.ValidateCall(key, data, sc, tt, negated)
			return false
		}
		args, ok := macroArgs("scripted trigger", report.Fatal, bv.Block, st.MacroParms(), data, maxSev)
		if !ok {
			return false
		}
		st.ValidateMacroExpansion(key, args, data, sc, tt, negated)
		return false
	}

	if key.IsNumber() {
		ValidateScriptValue(bv, data, sc)
		return false
	}

	tbl := data.Tables()
	parts := Partition(key, data.Sink())
	sc.OpenBuilder()
	qeq := cmp == script.QuestionEquals

	for i, p := range parts {
		flags := partFlags(i, len(parts), qeq)
		if p.Arg != nil {
			validateArgument(flags, p.Token, *p.Arg, data, sc)
			continue
		}
		part := p.Token
		if prefix, arg, ok := part.SplitOnce(':'); ok {
			isEventID := prefix.LowercaseIs("event_id")
			if isEventID {
				arg = key.Sub(p.start+len(prefix.Text)+1, len(key.Text))
			}
			k, ok := tbl.KeyedTransition(prefix.Text)
			if !ok {
				push(report.Err(report.Validation).Msgf("unknown prefix `%s:`", prefix.Text).Loc(prefix.Loc))
				sc.Close()
				return false
			}
			validateArgumentScope(flags, k, prefix, arg, data, sc)
			if isEventID {
				break
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
			if e, ok := tbl.Trigger(part.Text); ok {
				if !flags.Has(Last) {
					push(report.Warn(report.Validation).Msgf("`%s` should be the last part", part.Text).Loc(part.Loc))
					sc.Close()
					return false
				}
				wasNone := sc.Scopes() == scopes.None
				validateInscopes(flags, part, e.In, data, sc)
				if wasNone && lower == "current_year" {
					push(report.Warn(report.Bugs).Msg("current_year does not work in empty scope").
						Info("try using current_date, or dummy_male.current_year").Loc(part.Loc))
				}
				if e.Implied != nil {
					verifyExists(data, e.Implied.Kind, script.NewToken(e.Implied.Name, part.Loc), maxSev)
				}
				sc.Close()
				return matchTriggerBV(e.Trigger, part, cmp, bv, data, sc, tt, negated, maxSev)
			}
			if !unknownPart(part, flags, data, sc, scopes.All(), false) {
				sc.Close()
				return false
			}
		}
	}

	if !cmp.IsEquality() || cmp == script.DoubleEquals {
		if sc.CanBe(scopes.Value) {
			sc.Close()
			ValidateScriptValue(bv, data, sc)
			return false
		}
		if cmp == script.NotEquals || cmp == script.DoubleEquals {
			s := sc.Scopes()
			sc.Close()
			if t, ok := bv.GetValue(); ok {
				ValidateTargetOkThis(t, data, sc, s)
			} else {
				push(report.Err(report.Validation).Msg("expected value, found block").Loc(bv.Loc()))
			}
			return false
		}
		push(report.Warn(report.Validation).Msgf("unexpected comparator %s", cmp).Loc(key.Loc))
		sc.Close()
		return false
	}

	if t, ok := bv.GetValue(); ok {
		s := sc.Scopes()
		sc.Close()
		ValidateTargetOkThis(t, data, sc, s)
		return false
	}
	sc.FinalizeBuilder()
	sideEffects := ValidateTriggerInternal("", false, bv.Block, data, sc, tt, negated, maxSev)
	sc.Close()
	return sideEffects
}

// macroArgs collects the arguments of a scripted-construct call like
// `my_trigger = { X = 1 }`. what names the construct in messages.
func macroArgs(what string, noArgsSev report.Severity, b *script.Block, parms []string, data Data, maxSev report.Severity) ([]script.MacroArg, bool) {
	push := func(bd *report.Builder) { bd.MaxSeverity(maxSev).Push(data.Sink()) }
	if len(parms) == 0 {
		bd := report.New(noArgsSev, report.Macro).Msgf("this %s does not need macro arguments", what).Loc(b.Loc)
		if what != "scripted trigger" {
			bd.Info(fmt.Sprintf("you can just use it as %s = yes", strings.TrimPrefix(what, "scripted ")))
		}
		push(bd)
		return nil, false
	}
	vd := newFields(b, data)
	args := make([]script.MacroArg, 0, len(parms))
	for _, parm := range parms {
		t, ok := vd.fieldValue(parm)
		if !ok {
			push(report.Err(report.Macro).Msgf("this %s needs parameter %s", what, parm).Loc(b.Loc))
			return nil, false
		}
		args = append(args, script.MacroArg{Name: parm, Value: t})
	}
	vd.unknownValueFields(func(key, _ script.Token) {
		push(report.New(report.Fatal, report.Macro).Msgf("this %s does not need parameter %s", what, key.Text).
			Info("supplying an unneeded parameter often causes a crash").Loc(key.Loc))
	})
	return args, true
}

// matchTriggerFields validates the block of a TrBlock trigger against its
// field list.
func matchTriggerFields(fs []tables.BlockField, b *script.Block, data Data, sc *scopectx.Context,
	tt Tooltipped, negated bool, maxSev report.Severity) bool {
	vd := newFields(b, data)
	vd.setMaxSeverity(maxSev)
	sideEffects := false
	for _, bf := range fs {
		name := bf.Name
		switch {
		case strings.HasPrefix(name, "?"):
			name = name[1:]
		case strings.HasPrefix(name, "*"):
			name = name[1:]
		case strings.HasPrefix(name, "+"):
			name = name[1:]
			vd.req(name)
		default:
			vd.req(name)
		}
		matches := vd.multi(name)
		if len(matches) > 1 && !strings.HasPrefix(bf.Name, "*") && !strings.HasPrefix(bf.Name, "+") {
			for _, f := range matches[:len(matches)-1] {
				vd.push(report.Warn(report.Duplicate).Msgf("`%s` is redefined later in this block", f.Key.Text).
					Loc(f.Key.Loc).LocMsg(matches[len(matches)-1].Key.Loc, "here"))
			}
		}
		for _, f := range matches {
			sideEffects = matchTriggerBV(bf.Trigger, f.Key, f.Cmp, f.BV, data, sc, tt, negated, maxSev) || sideEffects
		}
	}
	vd.done()
	return sideEffects
}

// matchTriggerBV validates the right-hand side of a known trigger.
func matchTriggerBV(tr tables.Trigger, name script.Token, cmp script.Comparator, bv script.BV, data Data,
	sc *scopectx.Context, tt Tooltipped, negated bool, maxSev report.Severity) bool {
	push := func(b *report.Builder) { b.MaxSeverity(maxSev).Push(data.Sink()) }
	expectValue := func() (script.Token, bool) {
		if t, ok := bv.GetValue(); ok {
			return t, true
		}
		push(report.Err(report.Validation).Msg("expected value, found block").Loc(bv.Loc()))
		return script.Token{}, false
	}
	expectBlock := func() (*script.Block, bool) {
		if bv.Block != nil {
			return bv.Block, true
		}
		push(report.Err(report.Validation).Msg("expected block, found value").Loc(bv.Loc()))
		return nil, false
	}

	mustBeEq, warnIfEq := true, false
	sideEffects := false

	switch tr.Kind {
	case tables.TrBoolean:
		if t, ok := expectValue(); ok {
			ValidateTarget(t, data, sc, scopes.Bool)
		}
	case tables.TrCompareValue:
		mustBeEq = false
		ValidateScriptValue(bv, data, sc)
	case tables.TrCompareValueWarnEq:
		mustBeEq, warnIfEq = false, true
		ValidateScriptValue(bv, data, sc)
	case tables.TrSetValue:
		ValidateScriptValue(bv, data, sc)
	case tables.TrCompareDate:
		mustBeEq = false
		if t, ok := expectValue(); ok && !t.IsDate() {
			push(report.Warn(report.Validation).Msgf("%s expects a date value", name.Text).Loc(t.Loc))
		}
	case tables.TrScope, tables.TrScopeOkThis:
		if t, ok := bv.GetValue(); ok {
			if tr.Kind == tables.TrScope {
				ValidateTarget(t, data, sc, tr.Scopes)
			} else {
				ValidateTargetOkThis(t, data, sc, tr.Scopes)
			}
		} else if tr.Scopes.Contains(scopes.Value) {
			ValidateScriptValue(bv, data, sc)
		} else {
			expectValue()
		}
	case tables.TrItem:
		if t, ok := expectValue(); ok {
			verifyExists(data, tr.Item, t, maxSev)
		}
	case tables.TrScopeOrItem:
		if t, ok := expectValue(); ok && !data.ItemExists(tr.Item, t.Text) {
			ValidateTarget(t, data, sc, tr.Scopes)
		}
	case tables.TrChoice, tables.TrCompareChoice:
		if tr.Kind == tables.TrCompareChoice {
			mustBeEq = false
		}
		if t, ok := expectValue(); ok && !containsFold(tr.Choices, t.Text) {
			b := report.Warn(report.Choice).Loc(t.Loc)
			if tr.Kind == tables.TrChoice {
				b.Msgf("unknown value %s for %s", t.Text, name.Text).Info("valid values are: " + strings.Join(tr.Choices, ", "))
			} else {
				b.Msgf("%s expects one of %s", name.Text, strings.Join(tr.Choices, ", "))
			}
			push(b)
		}
	case tables.TrBlock:
		if b, ok := expectBlock(); ok {
			sideEffects = matchTriggerFields(tr.Fields, b, data, sc, tt, negated, maxSev)
		}
	case tables.TrScopeList:
		if b, ok := expectBlock(); ok {
			for _, t := range b.Values() {
				ValidateTarget(t, data, sc, tr.Scopes)
			}
		}
	case tables.TrScopeCompare:
		if b, ok := expectBlock(); ok {
			if len(b.Items) != 1 {
				push(report.Err(report.Validation).Msg("unexpected number of items in block").Loc(b.Loc))
			}
			for _, f := range b.Fields() {
				ValidateTarget(f.Key, data, sc, tr.Scopes)
				if t, ok := f.BV.GetValue(); ok {
					ValidateTarget(t, data, sc, tr.Scopes)
				}
			}
		}
	case tables.TrCompareToScope:
		mustBeEq = false
		if t, ok := expectValue(); ok {
			ValidateTarget(t, data, sc, tr.Scopes)
		}
	case tables.TrControl:
		if b, ok := expectBlock(); ok {
			lower := name.Lower()
			switch lower {
			case "all_false", "not", "nand", "nor":
				negated = !negated
			}
			if lower == "custom_description" {
				tt = tooltip.No
			}
			sideEffects = ValidateTriggerInternal(lower, false, b, data, sc, tt, negated, maxSev)
		}
	case tables.TrSpecial:
		sideEffects = validateSpecialTrigger(name, bv, data, sc, tt, negated, maxSev)
	case tables.TrRemoved:
		b := report.Err(report.Removed).Msgf("`%s` was removed in %s", name.Text, tr.Version).Loc(name.Loc)
		if tr.Info != "" {
			b.Info(tr.Info)
		}
		push(b)
	case tables.TrUncheckedValue:
		expectValue()
		sideEffects = true
	}

	if cmp == script.Equals && warnIfEq {
		push(report.Warn(report.Logic).
			Msgf("`%s %s` means exactly equal to that amount, which is usually not what you want", name.Text, cmp).
			Loc(name.Loc))
	} else if mustBeEq && !cmp.IsEquality() {
		push(report.Warn(report.Validation).Msgf("unexpected comparator %s", cmp).Loc(name.Loc))
	}
	return sideEffects
}

func containsFold(choices []string, s string) bool {
	for _, c := range choices {
		if strings.EqualFold(c, s) {
			return true
		}
	}
	return false
}

// validateSpecialTrigger handles the triggers whose syntax is unique to them.
func validateSpecialTrigger(name script.Token, bv script.BV, data Data, sc *scopectx.Context,
	tt Tooltipped, negated bool, maxSev report.Severity) bool {
	push := func(b *report.Builder) { b.MaxSeverity(maxSev).Push(data.Sink()) }

	switch lower := name.Lower(); lower {
	case "exists":
		t, ok := bv.GetValue()
		if !ok {
			push(report.Err(report.Validation).Msg("expected value, found block").Loc(bv.Loc()))
			return false
		}
		if t.Is("yes") || t.Is("no") {
			if sc.MustBe(scopes.None) {
				push(report.Warn(report.Scopes).Msgf("`exists = %s` does nothing in None scope", t.Text).Loc(t.Loc))
			}
			return false
		}
		if rest, ok := strings.CutPrefix(t.Text, "scope:"); ok && !strings.Contains(rest, ".") {
			if !negated {
				sc.ExistsScope(rest, t)
			}
			return false
		}
		if t.HasPrefix("flag:") {
			return false
		}
		ValidateTargetOkThis(t, data, sc, scopes.NonPrimitive())
		if tt.IsTooltipped() {
			if subject, ok := strings.CutSuffix(t.Text, ".holder"); ok {
				push(report.New(report.Tips, report.Tooltip).
					Msgf("could rewrite this as `%s = { is_title_created = yes }`", subject).
					Info("it gives a nicer tooltip").Loc(name.Loc))
			}
		}
	case "custom_tooltip":
		if t, ok := bv.GetValue(); ok {
			verifyExists(data, item.Localization, t, maxSev)
			return false
		}
		return ValidateTriggerInternal("custom_tooltip", false, bv.Block, data, sc, tooltip.No, negated, maxSev)
	case "has_gene":
		b, ok := expectBlockBV(bv, data, maxSev)
		if !ok {
			return false
		}
		vd := newFields(b, data)
		vd.setMaxSeverity(maxSev)
		vd.fieldItem("category", item.GeneCategory)
		vd.fieldValue("template")
		vd.done()
	case "save_temporary_opinion_value_as":
		b, ok := expectBlockBV(bv, data, maxSev)
		if !ok {
			return false
		}
		vd := newFields(b, data)
		vd.setMaxSeverity(maxSev)
		vd.req("name")
		vd.req("target")
		vd.fieldTarget("target", sc, scopes.Character)
		if t, ok := vd.fieldValue("name"); ok {
			sc.DefineNameToken(t.Text, scopes.Value, t)
		}
		vd.done()
		return true
	case "save_temporary_scope_value_as":
		b, ok := expectBlockBV(bv, data, maxSev)
		if !ok {
			return false
		}
		vd := newFields(b, data)
		vd.setMaxSeverity(maxSev)
		vd.req("name")
		vd.req("value")
		if f, ok := vd.field("value"); ok {
			if t, ok := f.BV.GetValue(); ok {
				ValidateTarget(t, data, sc, scopes.Primitive())
			} else {
				ValidateScriptValue(f.BV, data, sc)
			}
		}
		if t, ok := vd.fieldValue("name"); ok {
			sc.DefineNameToken(t.Text, scopes.Primitive(), t)
		}
		vd.done()
		return true
	case "save_temporary_scope_as":
		if t, ok := bv.GetValue(); ok {
			sc.SaveCurrentScope(t.Text)
		}
		return true
	case "weighted_calc_true_if":
		b, ok := expectBlockBV(bv, data, maxSev)
		if !ok {
			return false
		}
		vd := newFields(b, data)
		vd.setMaxSeverity(maxSev)
		vd.fieldNumber("amount")
		sideEffects := false
		vd.unknownFields(func(f script.Field) {
			if !f.Key.IsInteger() {
				push(report.Err(report.UnknownField).Msgf("unknown field `%s`", f.Key.Text).Loc(f.Key.Loc))
				return
			}
			if b, ok := vd.expectBlock(f.BV); ok {
				sideEffects = ValidateTriggerMaxSev(b, data, sc, tt, maxSev) || sideEffects
			}
		})
		vd.done()
		return sideEffects
	case "switch":
		b, ok := expectBlockBV(bv, data, maxSev)
		if !ok {
			return false
		}
		vd := newFields(b, data)
		vd.setMaxSeverity(maxSev)
		vd.req("trigger")
		target, hasTarget := vd.fieldValue("trigger")
		sideEffects := false
		count := 0
		vd.unknownBlockFields(func(key script.Token, branch *script.Block) {
			count++
			if hasTarget && !key.Is("fallback") {
				ValidateTriggerKeyBV(target, script.Equals, script.ValueBV(key), data, sc, tt, negated, maxSev)
			}
			sideEffects = ValidateTriggerMaxSev(branch, data, sc, tt, maxSev) || sideEffects
		})
		if count == 0 {
			push(report.Err(report.Logic).Msg("switch with no branches").Loc(b.Loc))
		}
		vd.done()
		return sideEffects
	case "add_to_temporary_list":
		if t, ok := bv.GetValue(); ok {
			sc.DefineOrExpectList(t)
		}
		return true
	case "is_in_list":
		if t, ok := bv.GetValue(); ok {
			sc.ExpectList(t)
		}
	}
	return false
}

func expectBlockBV(bv script.BV, data Data, maxSev report.Severity) (*script.Block, bool) {
	if bv.Block != nil {
		return bv.Block, true
	}
	report.Err(report.Validation).Msg("expected block, found value").MaxSeverity(maxSev).Loc(bv.Loc()).Push(data.Sink())
	return nil, false
}
