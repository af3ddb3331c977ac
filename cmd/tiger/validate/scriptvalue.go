package validate

import (
	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
)

// triBool tracks whether a script value has been given a value yet.
type triBool uint8

const (
	valueNo triBool = iota
	valueMaybe
	valueYes
)

// ValidateScriptValue validates a number, a named value, a target producing
// a value, a `{ min max }` range, or a calculation block.
func ValidateScriptValue(bv script.BV, data Data, sc *scopectx.Context) {
	validateScriptValueBV(bv, data, sc, true)
}

// ValidateScriptValueNoBreakdown is for values whose desc and format fields
// are never shown, so they are not checked as localization.
func ValidateScriptValueNoBreakdown(bv script.BV, data Data, sc *scopectx.Context) {
	validateScriptValueBV(bv, data, sc, false)
}

// ValidateNonDynamicScriptValue accepts only literals and the names of
// script values that do not depend on scope.
func ValidateNonDynamicScriptValue(bv script.BV, data Data) {
	if t, ok := bv.GetValue(); ok {
		if t.IsNumber() || t.Is("yes") || t.Is("no") {
			return
		}
		if sv, ok := data.ScriptValue(t.Text); ok {
			sv.ValidateNonDynamicCall(t, data)
			return
		}
	}
	report.Err(report.Validation).Msg("dynamic script values are not allowed here").
		Info("only literal numbers or the name of a simple script value").Loc(bv.Loc()).Push(data.Sink())
}

func validateScriptValueBV(bv script.BV, data Data, sc *scopectx.Context, checkDesc bool) {
	if t, ok := bv.GetValue(); ok {
		ValidateTargetOkThis(t, data, sc, scopes.Value|scopes.Bool)
		return
	}
	b := bv.Block
	if b.FirstItemIsBare() {
		values := b.Values()
		if len(values) != 2 || len(b.Items) != 2 {
			report.Warn(report.Validation).Msg("invalid script value range").Loc(b.Loc).Push(data.Sink())
			return
		}
		for _, t := range values {
			ValidateTargetOkThis(t, data, sc, scopes.Value|scopes.Bool)
		}
		return
	}
	vd := newFields(b, data)
	validateScriptValueInner(vd, b, data, sc, valueNo, checkDesc)
	vd.done()
}

// validateScriptValueInner validates a calculation block. have says whether
// a value was set before this block. It returns true if the block does
// anything.
func validateScriptValueInner(vd *fields, b *script.Block, data Data, sc *scopectx.Context, have triBool, checkDesc bool) bool {
	nothingYet := func(key script.Token) {
		if have == valueNo {
			vd.push(report.Warn(report.Logic).Msgf("nothing to %s yet", key.Text).Loc(key.Loc))
		}
	}

	if checkDesc {
		vd.fieldItem("desc", item.Localization)
		vd.fieldItem("format", item.Localization)
	} else {
		vd.fieldValue("desc")
		vd.fieldValue("format")
	}

	changed := false
	ifElseSequence(b, data, "if", "else_if", "else")
	vd.unknownFields(func(f script.Field) {
		key := f.Key
		switch key.Lower() {
		case "save_temporary_scope_as":
			if t, ok := vd.expectValue(f.BV); ok {
				sc.SaveCurrentScope(t.Text)
				changed = true
			}
		case "save_temporary_value_as":
			if t, ok := vd.expectValue(f.BV); ok {
				sc.DefineNameToken(t.Text, scopes.Value, t)
				changed = true
			}
		case "value":
			if have == valueYes {
				vd.push(report.Warn(report.Logic).Msg("setting value here will overwrite the previous calculations").Loc(key.Loc))
			}
			have = valueYes
			validateScriptValueBV(f.BV, data, sc, checkDesc)
			changed = true
		case "add", "subtract", "min", "max":
			have = valueYes
			validateScriptValueBV(f.BV, data, sc, checkDesc)
			changed = true
		case "multiply", "divide", "modulo":
			nothingYet(key)
			validateScriptValueBV(f.BV, data, sc, checkDesc)
			changed = true
		case "round", "ceiling", "floor", "abs":
			nothingYet(key)
			if t, ok := vd.expectValue(f.BV); ok {
				if !t.Is("yes") && !t.Is("no") {
					vd.push(report.Warn(report.Validation).Msg("expected yes or no").Loc(t.Loc))
				}
				changed = true
			}
		case "fixed_range", "integer_range":
			if have == valueYes {
				vd.push(report.Warn(report.Logic).Msg("using fixed_range here will overwrite the previous calculations").Loc(key.Loc))
			}
			if rb, ok := vd.expectBlock(f.BV); ok {
				validateMinMaxRange(rb, data, sc, checkDesc)
				changed = true
			}
			have = valueYes
		case "if", "else_if":
			if ib, ok := vd.expectBlock(f.BV); ok {
				validateScriptValueIf(key, ib, data, sc, checkDesc)
				changed = true
			}
			have = valueMaybe
		case "else":
			if eb, ok := vd.expectBlock(f.BV); ok {
				validateScriptValueElse(key, eb, data, sc, checkDesc)
				changed = true
			}
			have = valueMaybe
		default:
			if lt, name, ok := splitIteratorKey(key, data); ok {
				if lt == ListAny {
					vd.push(report.Err(report.Validation).Msg("cannot use `any_` iterators in a script value").Loc(key.Loc))
				}
				it, _ := data.Tables().Iterator(name)
				sc.Expect(it.From, scopectx.TokenReason(key))
				if ib, ok := vd.expectBlock(f.BV); ok {
					precheckIteratorFields(lt, name, ib, data, sc)
					sc.OpenScope(it.To, key)
					validateScriptValueIterator(key, name, lt, ib, data, sc, checkDesc)
					changed = true
					sc.Close()
					have = valueMaybe
				}
				return
			}

			// target = { calculation }
			sc.OpenBuilder()
			if ValidateScopeChain(key, data, sc, f.Cmp == script.QuestionEquals) {
				if sb, ok := vd.expectBlock(f.BV); ok {
					sc.FinalizeBuilder()
					svd := newFields(sb, data)
					changed = validateScriptValueInner(svd, sb, data, sc, have, checkDesc) || changed
					svd.done()
					have = valueMaybe
				}
			}
			sc.Close()
		}
	})
	return changed
}

func validateMinMaxRange(b *script.Block, data Data, sc *scopectx.Context, checkDesc bool) {
	vd := newFields(b, data)
	vd.req("min")
	vd.req("max")
	for _, f := range vd.multi("min") {
		validateScriptValueBV(f.BV, data, sc, checkDesc)
	}
	for _, f := range vd.multi("max") {
		validateScriptValueBV(f.BV, data, sc, checkDesc)
	}
	vd.done()
}

const noChangeInfo = "it should be either removed, or changed to do something useful"

func validateScriptValueIterator(key script.Token, name string, lt ListType, b *script.Block, data Data,
	sc *scopectx.Context, checkDesc bool) {
	vd := newFields(b, data)
	sideEffects := false
	if f, ok := vd.fieldBlock("limit"); ok {
		sideEffects = ValidateTrigger(f.BV.Block, data, sc, tooltip.No)
	}
	tt := tooltip.No
	validateIteratorFields("", lt, data, sc, vd, &tt)
	validateInsideIterator(name, lt, b, data, sc, vd, tooltip.No)
	sideEffects = validateScriptValueInner(vd, b, data, sc, valueMaybe, checkDesc) || sideEffects
	if !sideEffects {
		vd.push(report.Err(report.Logic).Msg("this iterator does not change the script value").
			Info(noChangeInfo).Loc(key.Loc))
	}
	vd.done()
}

func validateScriptValueIf(key script.Token, b *script.Block, data Data, sc *scopectx.Context, checkDesc bool) {
	vd := newFields(b, data)
	vd.reqWarn("limit")
	sideEffects := false
	if f, ok := vd.fieldBlock("limit"); ok {
		sideEffects = ValidateTrigger(f.BV.Block, data, sc, tooltip.No)
	}
	sideEffects = validateScriptValueInner(vd, b, data, sc, valueMaybe, checkDesc) || sideEffects
	if !sideEffects {
		// Weak: an if in a chain may do nothing on purpose.
		vd.push(report.Err(report.Logic).Weak().Msgf("this `%s` does not change the script value", key.Text).Loc(key.Loc))
	}
	vd.done()
}

func validateScriptValueElse(key script.Token, b *script.Block, data Data, sc *scopectx.Context, checkDesc bool) {
	vd := newFields(b, data)
	sideEffects := false
	if f, ok := vd.fieldBlock("limit"); ok {
		vd.push(report.New(report.Tips, report.IfElse).
			Msg("`else` with a `limit` does work, but may indicate a mistake").
			Info("normally you would use `else_if` instead.").Loc(f.Key.Loc))
		sideEffects = ValidateTrigger(f.BV.Block, data, sc, tooltip.No)
	}
	sideEffects = validateScriptValueInner(vd, b, data, sc, valueMaybe, checkDesc) || sideEffects
	if !sideEffects {
		vd.push(report.New(report.Untidy, report.Logic).Msgf("this `%s` does not change the script value", key.Text).
			Info(noChangeInfo).Loc(key.Loc))
	}
	vd.done()
}
