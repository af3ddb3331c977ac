package validate

import (
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
)

// ValidateModifiersWithBase validates a weight block like ai_chance: a base,
// numeric adjustments, and conditional modifier blocks.
func ValidateModifiersWithBase(b *script.Block, data Data, sc *scopectx.Context) {
	vd := newFields(b, data)
	if f, ok := vd.field("base"); ok {
		ValidateNonDynamicScriptValue(f.BV, data)
	}
	vd.multiScriptValue("add", sc)
	vd.multiScriptValue("factor", sc)
	vd.multiScriptValue("min", sc)
	vd.multiScriptValue("max", sc)
	validateModifiers(vd, data, sc)
	validateScriptedModifierCalls(vd, data, sc)
}

// ValidateAIChance accepts a plain number or a weight block.
func ValidateAIChance(bv script.BV, data Data, sc *scopectx.Context) {
	if t, ok := bv.GetValue(); ok {
		if !t.IsNumber() {
			report.Err(report.Validation).Msg("expected number").Loc(t.Loc).Push(data.Sink())
		}
		return
	}
	ValidateModifiersWithBase(bv.Block, data, sc)
}

func validateModifiers(vd *fields, data Data, sc *scopectx.Context) {
	for _, f := range vd.multi("first_valid") {
		if b, ok := vd.expectBlock(f.BV); ok {
			sub := newFields(b, data)
			validateModifiers(sub, data, sc)
			sub.done()
		}
	}
	for _, f := range vd.multi("modifier") {
		if b, ok := vd.expectBlock(f.BV); ok {
			ValidateTriggerInternal("modifier", false, b, data, sc, tooltip.No, false, report.Error)
		}
	}
	blocks := []struct {
		name string
		fn   func(*script.Block, Data, *scopectx.Context)
	}{
		{"compare_modifier", validateCompareModifier},
		{"opinion_modifier", validateOpinionModifier},
		{"ai_value_modifier", validateAIValueModifier},
		{"compatibility_modifier", validateCompatibilityModifier},
		{"scheme_modifier", validateObjectTargetModifier(scopes.Scheme)},
		{"activity_modifier", validateObjectTargetModifier(scopes.Activity)},
	}
	for _, m := range blocks {
		for _, f := range vd.multi(m.name) {
			if b, ok := vd.expectBlock(f.BV); ok {
				m.fn(b, data, sc)
			}
		}
	}
}

func validateCompareModifier(b *script.Block, data Data, sc *scopectx.Context) {
	vd := newFields(b, data)

	// value and factor are evaluated in the scope target leads to.
	sc.OpenBuilder()
	validTarget := false
	if t, ok := vd.fieldValue("target"); ok {
		validTarget = ValidateScopeChain(t, data, sc, false)
	}
	sc.FinalizeBuilder()
	if validTarget {
		vd.fieldScriptValue("value", sc)
		vd.fieldScriptValue("factor", sc)
	} else {
		vd.field("value")
		vd.field("factor")
	}
	sc.Close()

	vd.multiScriptValue("multiplier", sc)
	vd.fieldScriptValue("min", sc)
	vd.fieldScriptValue("max", sc)
	vd.fieldScriptValue("step", sc)
	vd.fieldScriptValue("offset", sc)
	vd.fieldDesc("desc", sc)
	vd.fieldTrigger("trigger", sc, tooltip.No)
	vd.done()
}

func validateOpinionModifier(b *script.Block, data Data, sc *scopectx.Context) {
	vd := newFields(b, data)
	vd.fieldTargetOkThis("who", sc, scopes.Character)
	vd.req("opinion_target")
	vd.fieldTargetOkThis("opinion_target", sc, scopes.Character)
	vd.fieldScriptValue("multiplier", sc)
	vd.fieldDesc("desc", sc)
	vd.fieldScriptValue("min", sc)
	vd.fieldScriptValue("max", sc)
	vd.fieldScriptValue("step", sc)
	vd.fieldTrigger("trigger", sc, tooltip.No)
	vd.done()
}

var aiValues = []string{
	"ai_boldness", "ai_compassion", "ai_energy", "ai_greed", "ai_honor",
	"ai_rationality", "ai_sociability", "ai_vengefulness", "ai_zeal",
}

func validateAIValueModifier(b *script.Block, data Data, sc *scopectx.Context) {
	vd := newFields(b, data)
	vd.fieldTargetOkThis("who", sc, scopes.Character)
	if f, ok := vd.fieldBlock("dread_modified_ai_boldness"); ok {
		dvd := newFields(f.BV.Block, data)
		dvd.req("dreaded_character")
		dvd.req("value")
		dvd.fieldTargetOkThis("dreaded_character", sc, scopes.Character)
		dvd.fieldScriptValue("value", sc)
		dvd.done()
	}
	for _, name := range aiValues {
		vd.fieldScriptValue(name, sc)
	}
	vd.fieldScriptValue("min", sc)
	vd.fieldScriptValue("max", sc)
	vd.fieldTrigger("trigger", sc, tooltip.No)
	vd.done()
}

func validateCompatibilityModifier(b *script.Block, data Data, sc *scopectx.Context) {
	vd := newFields(b, data)
	vd.fieldTargetOkThis("who", sc, scopes.Character)
	vd.fieldTargetOkThis("compatibility_target", sc, scopes.Character)
	vd.fieldScriptValue("multiplier", sc)
	vd.fieldScriptValue("min", sc)
	vd.fieldScriptValue("max", sc)
	vd.fieldTrigger("trigger", sc, tooltip.No)
	vd.done()
}

// validateObjectTargetModifier is for the single-use scheme_modifier and
// activity_modifier blocks.
func validateObjectTargetModifier(object scopes.Set) func(*script.Block, Data, *scopectx.Context) {
	return func(b *script.Block, data Data, sc *scopectx.Context) {
		vd := newFields(b, data)
		vd.fieldTarget("object", sc, object)
		vd.fieldTarget("target", sc, scopes.Character)
		vd.done()
	}
}

// validateScriptedModifierCall validates `my_modifier = yes` or
// `my_modifier = { PARAM = value }`.
func validateScriptedModifierCall(key script.Token, bv script.BV, m ScriptedModifier, data Data, sc *scopectx.Context) {
	if t, ok := bv.GetValue(); ok {
		if len(m.MacroParms()) > 0 {
			report.New(report.Fatal, report.Macro).Msg("expected macro arguments").Loc(t.Loc).Push(data.Sink())
		} else if !t.Is("yes") {
			report.Warn(report.Validation).Msg("expected just modifier = yes").Loc(t.Loc).Push(data.Sink())
		}
		m.ValidateCall(key, data, sc)
		return
	}
	args, ok := macroArgs("scripted modifier", report.Fatal, bv.Block, m.MacroParms(), data, report.Fatal)
	if !ok {
		return
	}
	m.ValidateMacroExpansion(key, args, data, sc)
}

// validateScriptedModifierCalls takes every remaining field of vd as a
// scripted modifier call.
func validateScriptedModifierCalls(vd *fields, data Data, sc *scopectx.Context) {
	vd.unknownFields(func(f script.Field) {
		if m, ok := data.ScriptedModifier(f.Key.Text); ok {
			validateScriptedModifierCall(f.Key, f.BV, m, data, sc)
			return
		}
		report.Warn(report.UnknownField).Msgf("unknown field `%s`", f.Key.Text).Loc(f.Key.Loc).Push(data.Sink())
	})
	vd.done()
}
