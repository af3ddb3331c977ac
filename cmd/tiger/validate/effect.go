package validate

import (
	"math"
	"strings"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tables"
	"tiger-tools/cmd/tiger/tooltip"
)

// ValidateEffect validates an effect block in the current scope.
func ValidateEffect(b *script.Block, data Data, sc *scopectx.Context, tt Tooltipped) {
	vd := newFields(b, data)
	ValidateEffectInternal("", ListNone, b, data, sc, vd, tt)
}

// ValidateEffectInternal validates the body of an effect block. caller is
// the lowercased key that opened it; lt is set when the block is the body
// of a list iterator.
func ValidateEffectInternal(caller string, lt ListType, b *script.Block, data Data, sc *scopectx.Context,
	vd *fields, tt Tooltipped) {
	switch {
	case caller == "if" || caller == "else_if" || caller == "else" || caller == "while" || lt != ListNone:
		if f, ok := vd.fieldBlock("limit"); ok {
			if caller == "else" {
				vd.push(report.New(report.Tips, report.IfElse).
					Msg("`else` with a `limit` does work, but may indicate a mistake").
					Info("normally you would use `else_if` instead.").Loc(f.Key.Loc))
			}
			ValidateTrigger(f.BV.Block, data, sc, tt)
		}
	default:
		vd.ban("limit", "if/else_if or lists")
	}

	if lt != ListNone {
		vd.fieldTrigger("filter", sc, tooltip.No)
	} else {
		vd.ban("filter", "lists")
	}

	validateIteratorFields(caller, lt, data, sc, vd, &tt)
	if lt != ListNone {
		validateInsideIterator(caller, lt, b, data, sc, vd, tt)
	}

	ifElseSequence(b, data, "if", "else_if", "else")

	vd.unknownFields(func(f script.Field) {
		ValidateEffectField(caller, f.Key, f.Cmp, f.BV, data, sc, tt)
	})
	vd.done()
}

// ValidateEffectField validates a single `key = value` effect line.
func ValidateEffectField(caller string, key script.Token, cmp script.Comparator, bv script.BV, data Data,
	sc *scopectx.Context, tt Tooltipped) {
	sink := data.Sink()

	if se, ok := data.ScriptedEffect(key.Text); ok {
		if t, ok := bv.GetValue(); ok {
			if len(se.MacroParms()) > 0 {
				report.New(report.Fatal, report.Macro).Msg("expected macro arguments").Loc(t.Loc).Push(sink)
			} else if !t.Is("yes") {
				report.Warn(report.Validation).Msg("expected just effect = yes").Loc(t.Loc).Push(sink)
			}
			se.ValidateCall(key, data, sc, tt)
			return
		}
		if args, ok := macroArgs("scripted effect", report.Error, bv.Block, se.MacroParms(), data, report.Fatal); ok {
			se.ValidateMacroExpansion(key, args, data, sc, tt)
		}
		return
	}

	if m, ok := data.ScriptedModifier(key.Text); ok {
		if caller != "random" && caller != "random_list" && caller != "duel" {
			report.Err(report.Validation).Msg("cannot use scripted modifier here").Loc(key.Loc).Push(sink)
			return
		}
		validateScriptedModifierCall(key, bv, m, data, sc)
		return
	}

	if e, ok := data.Tables().Effect(key.Text); ok {
		sc.Expect(e.In, scopectx.TokenReason(key))
		validateTableEffect(key, e.Effect, bv, data, sc, tt)
		return
	}

	if lt, name, ok := splitIteratorKey(key, data); ok {
		if lt == ListAny {
			report.Err(report.Validation).Msg("cannot use `any_` lists in an effect").Loc(key.Loc).Push(sink)
			return
		}
		it, _ := data.Tables().Iterator(name)
		sc.Expect(it.From, scopectx.TokenReason(key))
		if bv.Block == nil {
			report.Err(report.Validation).Msg("expected block, found value").Loc(bv.Loc()).Push(sink)
		} else {
			precheckIteratorFields(lt, name, bv.Block, data, sc)
		}
		sc.OpenScope(it.To, key)
		if bv.Block != nil {
			ValidateEffectInternal(name, lt, bv.Block, data, sc, newFields(bv.Block, data), tt)
		}
		sc.Close()
		return
	}

	// target = { effects }
	sc.OpenBuilder()
	if ValidateScopeChain(key, data, sc, cmp == script.QuestionEquals) {
		sc.FinalizeBuilder()
		if key.HasPrefix("flag:") {
			report.Err(report.Scopes).Msg("as of 1.9, flag literals cannot be used on the left-hand side").Loc(key.Loc).Push(sink)
		}
		if bv.Block != nil {
			ValidateEffect(bv.Block, data, sc, tt)
		} else {
			report.Err(report.Validation).Msg("expected block, found value").Loc(bv.Loc()).Push(sink)
		}
	}
	sc.Close()
}

func validateTableEffect(key script.Token, ef tables.Effect, bv script.BV, data Data, sc *scopectx.Context, tt Tooltipped) {
	sink := data.Sink()
	value := func() (script.Token, bool) {
		if t, ok := bv.GetValue(); ok {
			return t, true
		}
		report.Err(report.Validation).Msg("expected value, found block").Loc(bv.Loc()).Push(sink)
		return script.Token{}, false
	}
	block := func() (*fields, bool) {
		if bv.Block == nil {
			report.Err(report.Validation).Msg("expected block, found value").Loc(bv.Loc()).Push(sink)
			return nil, false
		}
		return newFields(bv.Block, data), true
	}

	switch ef.Kind {
	case tables.EfYes:
		if t, ok := value(); ok && !t.Is("yes") {
			report.Warn(report.Validation).Msgf("expected just `%s = yes`", key.Text).Loc(t.Loc).Push(sink)
		}
	case tables.EfBoolean:
		if t, ok := value(); ok {
			ValidateTarget(t, data, sc, scopes.Bool)
		}
	case tables.EfInteger:
		if t, ok := value(); ok && !t.IsInteger() {
			report.Err(report.Validation).Msg("expected integer").Loc(t.Loc).Push(sink)
		}
	case tables.EfScriptValue, tables.EfNonNegativeValue:
		if t, ok := bv.GetValue(); ok && ef.Kind == tables.EfNonNegativeValue {
			if n, ok := t.Number(); ok && n < 0 {
				if key.Is("add_gold") {
					report.Warn(report.Range).Msg("add_gold does not take negative numbers").
						Info("try remove_short_term_gold instead").Loc(t.Loc).Push(sink)
				} else {
					report.Warn(report.Range).Msgf("%s does not take negative numbers", key.Text).Loc(t.Loc).Push(sink)
				}
			}
		}
		ValidateScriptValue(bv, data, sc)
	case tables.EfScope:
		if t, ok := value(); ok {
			ValidateTarget(t, data, sc, ef.Scopes)
		}
	case tables.EfScopeOkThis:
		if t, ok := value(); ok {
			ValidateTargetOkThis(t, data, sc, ef.Scopes)
		}
	case tables.EfItem:
		if t, ok := value(); ok {
			verifyExists(data, ef.Item, t, report.Fatal)
		}
	case tables.EfScopeOrItem:
		if t, ok := value(); ok && !data.ItemExists(ef.Item, t.Text) {
			ValidateTarget(t, data, sc, ef.Scopes)
		}
	case tables.EfTarget:
		if vd, ok := block(); ok {
			vd.req(ef.Key)
			vd.fieldTarget(ef.Key, sc, ef.Scopes)
			vd.done()
		}
	case tables.EfTargetValue:
		if vd, ok := block(); ok {
			vd.req(ef.Key)
			vd.req(ef.ValueKey)
			vd.fieldTarget(ef.Key, sc, ef.Scopes)
			vd.fieldScriptValue(ef.ValueKey, sc)
			vd.done()
		}
	case tables.EfItemTarget:
		if vd, ok := block(); ok {
			vd.fieldItem(ef.ValueKey, ef.Item)
			vd.fieldTarget(ef.Key, sc, ef.Scopes)
			vd.done()
		}
	case tables.EfItemValue:
		if vd, ok := block(); ok {
			vd.req(ef.Key)
			vd.req("value")
			vd.fieldItem(ef.Key, ef.Item)
			vd.fieldScriptValue("value", sc)
			vd.done()
		}
	case tables.EfChoice:
		if t, ok := value(); ok {
			found := false
			for _, c := range ef.Choices {
				found = found || t.Is(c)
			}
			if !found {
				report.Err(report.Choice).Msgf("expected one of %s", strings.Join(ef.Choices, ", ")).Loc(t.Loc).Push(sink)
			}
		}
	case tables.EfDesc:
		ValidateDesc(bv, data, sc)
	case tables.EfTimespan:
		if vd, ok := block(); ok {
			validateCompareDuration(vd, bv.Block, data, sc)
		}
	case tables.EfControl:
		if vd, ok := block(); ok {
			if key.LowercaseIs("random_list") {
				validateRandomList(key, vd, data, sc, tt)
				return
			}
			validateEffectControl(key.Lower(), bv.Block, data, sc, tt)
		}
	case tables.EfControlOrLabel:
		if t, ok := bv.GetValue(); ok {
			verifyExists(data, item.Localization, t, report.Fatal)
		} else {
			validateEffectControl(key.Lower(), bv.Block, data, sc, tt)
		}
	case tables.EfRemoved:
		b := report.Warn(report.Removed).Msgf("`%s` was removed in %s", key.Text, ef.Version).Loc(key.Loc)
		if ef.Info != "" {
			b.Info(ef.Info)
		}
		b.Push(sink)
	case tables.EfUnchecked:
	case tables.EfSpecial:
		validateSpecialEffect(key, bv, data, sc, tt)
	}
}

// validateCompareDuration requires exactly one of days, weeks, months or
// years.
func validateCompareDuration(vd *fields, b *script.Block, data Data, sc *scopectx.Context) {
	count := 0
	for _, name := range []string{"days", "weeks", "months", "years"} {
		if vd.fieldScriptValue(name, sc) {
			count++
		}
	}
	if count != 1 {
		key := report.Validation
		if count == 0 {
			key = report.FieldMissing
		}
		vd.push(report.Err(key).Msg("must have 1 of days, weeks, months, or years").Loc(b.Loc))
	}
	vd.done()
}

var modifierFields = []string{"modifier", "compare_modifier", "opinion_modifier", "ai_value_modifier", "compatibility"}

// validateEffectControl validates effects that contain other effects, like
// if, hidden_effect and custom_tooltip.
func validateEffectControl(caller string, b *script.Block, data Data, sc *scopectx.Context, tt Tooltipped) {
	vd := newFields(b, data)

	if caller == "if" || caller == "else_if" {
		vd.reqWarn("limit")
	}

	switch caller {
	case "custom_description", "custom_description_no_bullet", "custom_tooltip", "custom_label":
		vd.req("text")
		if caller == "custom_tooltip" || caller == "custom_label" {
			vd.fieldItem("text", item.Localization)
		} else {
			vd.fieldValue("text")
		}
		vd.fieldTargetOkThis("subject", sc, scopes.NonPrimitive())
		tt = tooltip.No
	default:
		vd.ban("text", "`custom_description` or `custom_tooltip`")
		vd.ban("subject", "`custom_description` or `custom_tooltip`")
	}

	if caller == "custom_description" || caller == "custom_description_no_bullet" {
		vd.fieldTargetOkThis("object", sc, scopes.NonPrimitive())
		vd.fieldScriptValue("value", sc)
	} else {
		vd.ban("object", "`custom_description`")
		vd.ban("value", "`custom_description`")
	}

	switch caller {
	case "hidden_effect":
		tt = tooltip.No
	case "show_as_tooltip":
		tt = tooltip.Yes
	}

	if caller == "random" {
		vd.req("chance")
		vd.fieldScriptValue("chance", sc)
	} else {
		vd.ban("chance", "`random`")
	}

	if caller == "send_interface_message" || caller == "send_interface_toast" {
		vd.fieldValue("type")
		vd.fieldDesc("title", sc)
		vd.fieldDesc("desc", sc)
		vd.fieldDesc("tooltip", sc)
		icons := scopes.Character | scopes.LandedTitle | scopes.Artifact | scopes.Faith
		vd.fieldTargetOkThis("left_icon", sc, icons)
		vd.fieldTargetOkThis("right_icon", sc, icons)
		if t, ok := vd.fieldValue("goto"); ok {
			vd.push(report.Warn(report.Removed).Msg("`goto` was removed from interface messages in 1.9").Loc(t.Loc))
		}
		if f, ok := vd.fieldBlock("localization_values"); ok {
			lvd := newFields(f.BV.Block, data)
			lvd.unknownValueFields(func(_, value script.Token) {
				ValidateTargetOkThis(value, data, sc, scopes.All())
			})
			lvd.done()
		}
	}

	if caller == "while" {
		if !b.HasKey("limit") && !b.HasKey("count") {
			vd.push(report.Warn(report.Validation).Msg("`while` needs one of `limit` or `count`").Loc(b.Loc))
		}
		vd.fieldScriptValue("count", sc)
	} else {
		vd.ban("count", "`while` and `any_` lists")
	}

	if caller == "random" || caller == "random_list" || caller == "duel" {
		validateModifiers(vd, data, sc)
	} else {
		for _, name := range modifierFields {
			vd.ban(name, "`random`, `random_list` or `duel`")
		}
	}

	if caller == "random_list" || caller == "duel" {
		vd.fieldTrigger("trigger", sc, tooltip.No)
		vd.fieldBool("show_chance")
		vd.fieldDesc("desc", sc)
		vd.fieldScriptValue("min", sc)
		vd.fieldScriptValue("max", sc)
	} else {
		vd.ban("trigger", "`random_list` or `duel`")
		vd.ban("show_chance", "`random_list` or `duel`")
	}

	ValidateEffectInternal(caller, ListNone, b, data, sc, vd, tt)
}

// validateRandomList validates random_list and the outcome list of duel.
// Every number-keyed block is a weighted outcome.
func validateRandomList(key script.Token, vd *fields, data Data, sc *scopectx.Context, tt Tooltipped) {
	caller := key.Lower()
	vd.fieldInteger("pick")
	vd.fieldBool("unique")
	vd.fieldDesc("desc", sc)
	vd.unknownBlockFields(func(weight script.Token, b *script.Block) {
		n, ok := weight.Number()
		if !ok {
			vd.push(report.Err(report.Validation).Msg("expected number").Loc(weight.Loc))
			return
		}
		switch {
		case n < 0:
			vd.push(report.Err(report.Range).Strong().Msg("negative weights make the whole `random_list` fail").Loc(weight.Loc))
		case n > 0 && n < 1:
			vd.push(report.Err(report.Range).Strong().Msg("fractional weights are treated as just 0 in `random_list`").Loc(weight.Loc))
		case n != math.Trunc(n):
			vd.push(report.Warn(report.Range).Strong().Msg("fractions are discarded in `random_list` weights").Loc(weight.Loc))
		}
		validateEffectControl(caller, b, data, sc, tt)
	})
	vd.done()
}
