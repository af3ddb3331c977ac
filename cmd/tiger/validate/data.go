// Package validate walks trigger, effect, script value and modifier blocks,
// tracking scope types through a scopectx.Context and reporting what does not
// fit.
package validate

import (
	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/macro"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tables"
	"tiger-tools/cmd/tiger/tooltip"
)

// Tooltipped is the tooltip mode a block is validated under.
type Tooltipped = tooltip.Mode

// Data is what validation needs from the mod database. Implementations must
// be safe for concurrent use.
type Data interface {
	Tables() *tables.Tables
	Sink() report.Sink
	// ItemExists reports whether a named item is defined. Kinds the
	// database knows nothing about should report true.
	ItemExists(kind item.Kind, name string) bool
	ScriptedTrigger(name string) (ScriptedTrigger, bool)
	ScriptedEffect(name string) (ScriptedEffect, bool)
	ScriptValue(name string) (ScriptValue, bool)
	ScriptedModifier(name string) (ScriptedModifier, bool)
	// CheckEventScope narrows sc to the scope the event with this id expects.
	CheckEventScope(id script.Token, sc *scopectx.Context)
	LinkMap() *macro.LinkMap
}

// ScriptedTrigger is a named trigger defined in common/scripted_triggers.
type ScriptedTrigger interface {
	MacroParms() []string
	ValidateCall(key script.Token, data Data, sc *scopectx.Context, tt Tooltipped, negated bool)
	ValidateMacroExpansion(key script.Token, args []script.MacroArg, data Data, sc *scopectx.Context, tt Tooltipped, negated bool)
}

type ScriptedEffect interface {
	MacroParms() []string
	ValidateCall(key script.Token, data Data, sc *scopectx.Context, tt Tooltipped)
	ValidateMacroExpansion(key script.Token, args []script.MacroArg, data Data, sc *scopectx.Context, tt Tooltipped)
}

type ScriptValue interface {
	ValidateCall(key script.Token, data Data, sc *scopectx.Context)
	// ValidateNonDynamicCall is for places that only accept literals or
	// plain named values.
	ValidateNonDynamicCall(key script.Token, data Data)
}

type ScriptedModifier interface {
	MacroParms() []string
	ValidateCall(key script.Token, data Data, sc *scopectx.Context)
	ValidateMacroExpansion(key script.Token, args []script.MacroArg, data Data, sc *scopectx.Context)
}

// verifyExists reports a missing item.
func verifyExists(data Data, kind item.Kind, t script.Token, maxSev report.Severity) {
	if data.ItemExists(kind, t.Text) {
		return
	}
	report.Err(report.Missing).Msgf("`%s` not defined as %s", t.Text, kind).MaxSeverity(maxSev).Loc(t.Loc).Push(data.Sink())
}

func isScriptValue(data Data, name string) bool {
	_, ok := data.ScriptValue(name)
	return ok
}
