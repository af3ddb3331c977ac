package db

import (
	"tiger-tools/cmd/tiger/macro"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
	"tiger-tools/cmd/tiger/validate"
)

// calleeContext is the context a scripted construct's body is validated
// in: nothing is known about its scopes, and names it uses are taken as
// inputs.
func calleeContext(defn script.Token, sink report.Sink, at *macro.Expansion) *scopectx.Context {
	sc := scopectx.NewUnrooted(scopes.All(), defn, scopectx.WithSink(sink))
	sc.SetStrictScopes(false)
	sc.SetExpansion(at)
	return sc
}

// expand runs compute through the cache from the caller's expansion path.
// It reports the first limit hit on the path; every call past a limit gets a
// callee that expects nothing.
func expand(cache *macro.Cache[*scopectx.Context], defn, key script.Token, args []script.MacroArg,
	tt tooltip.Mode, negated bool, data validate.Data, sc *scopectx.Context,
	compute func(at *macro.Expansion) *scopectx.Context) *scopectx.Context {
	placeholder := calleeContext(defn, report.Discard, nil)
	our, outcome := cache.Expand(sc.Expansion(), key, args, tt, negated, placeholder, compute)
	switch outcome {
	case macro.TooDeep:
		report.Err(report.Macro).Msgf("macro expansion exceeds depth %d", macro.MaxExpansionDepth).
			Info("the arguments change on every call, so the recursion never ends").
			Loc(key.Loc).Push(data.Sink())
	case macro.TooMany:
		report.Err(report.Macro).Msgf("macro expansion exceeds %d bodies", macro.MaxExpansions).
			Info("recursion with changing arguments branches into too many calls").
			Loc(key.Loc).Push(data.Sink())
	}
	return our
}

// expandCached runs body validation once per call site and mode, then checks
// the caller against what the body needed. A call reached again while its
// own body is being validated gets a placeholder that expects nothing.
func expandCached(cache *macro.Cache[*scopectx.Context], defn, key script.Token, args []script.MacroArg,
	tt tooltip.Mode, negated bool, data validate.Data, sc *scopectx.Context, run func(our *scopectx.Context)) {
	our := expand(cache, defn, key, args, tt, negated, data, sc, func(at *macro.Expansion) *scopectx.Context {
		our := calleeContext(defn, data.Sink(), at)
		run(our)
		return our
	})
	sc.ExpectCompatibility(our, key)
}

// expandBody substitutes args into a macro body. Tokens in the result point
// back at key through the link map.
func expandBody(b *script.Block, key script.Token, args []script.MacroArg, data validate.Data) (*script.Block, bool) {
	body, err := b.ExpandMacro(args, data.LinkMap().GetOrInsert(key.Loc))
	if err != nil {
		report.Err(report.ParseError).Msg("macro expansion does not parse").Info(err.Error()).
			Loc(key.Loc).Push(data.Sink())
		return nil, false
	}
	return body, true
}

// ScriptedTrigger is a named trigger from common/scripted_triggers.
type ScriptedTrigger struct {
	Key   script.Token
	Block *script.Block
	parms []string
	cache *macro.Cache[*scopectx.Context]
}

func newScriptedTrigger(key script.Token, b *script.Block) *ScriptedTrigger {
	return &ScriptedTrigger{Key: key, Block: b, parms: b.MacroParms(), cache: macro.NewCache[*scopectx.Context]()}
}

func (st *ScriptedTrigger) MacroParms() []string { return st.parms }

// CacheLen is the number of distinct calls validated so far.
func (st *ScriptedTrigger) CacheLen() int { return st.cache.Len() }

func (st *ScriptedTrigger) ValidateCall(key script.Token, data validate.Data, sc *scopectx.Context, tt validate.Tooltipped, negated bool) {
	expandCached(st.cache, st.Key, key, nil, tt, negated, data, sc, func(our *scopectx.Context) {
		validate.ValidateTriggerInternal("", false, st.Block, data, our, tt, negated, report.Fatal)
	})
}

func (st *ScriptedTrigger) ValidateMacroExpansion(key script.Token, args []script.MacroArg, data validate.Data,
	sc *scopectx.Context, tt validate.Tooltipped, negated bool) {
	expandCached(st.cache, st.Key, key, args, tt, negated, data, sc, func(our *scopectx.Context) {
		if body, ok := expandBody(st.Block, key, args, data); ok {
			validate.ValidateTriggerInternal("", false, body, data, our, tt, negated, report.Fatal)
		}
	})
}

// validateDefinition checks a trigger that takes no arguments on its own.
// Macro bodies are only checked through their calls.
func (st *ScriptedTrigger) validateDefinition(data validate.Data) {
	if len(st.parms) > 0 {
		return
	}
	sc := calleeContext(st.Key, data.Sink(), nil)
	st.ValidateCall(st.Key, data, sc, tooltip.No, false)
}

// ScriptedEffect is a named effect from common/scripted_effects.
type ScriptedEffect struct {
	Key   script.Token
	Block *script.Block
	parms []string
	cache *macro.Cache[*scopectx.Context]
}

func newScriptedEffect(key script.Token, b *script.Block) *ScriptedEffect {
	return &ScriptedEffect{Key: key, Block: b, parms: b.MacroParms(), cache: macro.NewCache[*scopectx.Context]()}
}

func (se *ScriptedEffect) MacroParms() []string { return se.parms }
func (se *ScriptedEffect) CacheLen() int        { return se.cache.Len() }

func (se *ScriptedEffect) ValidateCall(key script.Token, data validate.Data, sc *scopectx.Context, tt validate.Tooltipped) {
	expandCached(se.cache, se.Key, key, nil, tt, false, data, sc, func(our *scopectx.Context) {
		validate.ValidateEffect(se.Block, data, our, tt)
	})
}

func (se *ScriptedEffect) ValidateMacroExpansion(key script.Token, args []script.MacroArg, data validate.Data,
	sc *scopectx.Context, tt validate.Tooltipped) {
	expandCached(se.cache, se.Key, key, args, tt, false, data, sc, func(our *scopectx.Context) {
		if body, ok := expandBody(se.Block, key, args, data); ok {
			validate.ValidateEffect(body, data, our, tt)
		}
	})
}

func (se *ScriptedEffect) validateDefinition(data validate.Data) {
	if len(se.parms) > 0 {
		return
	}
	sc := calleeContext(se.Key, data.Sink(), nil)
	se.ValidateCall(se.Key, data, sc, tooltip.No)
}

// ScriptedModifier is a named modifier block from common/scripted_modifiers.
type ScriptedModifier struct {
	Key   script.Token
	Block *script.Block
	parms []string
	cache *macro.Cache[*scopectx.Context]
}

func newScriptedModifier(key script.Token, b *script.Block) *ScriptedModifier {
	return &ScriptedModifier{Key: key, Block: b, parms: b.MacroParms(), cache: macro.NewCache[*scopectx.Context]()}
}

func (m *ScriptedModifier) MacroParms() []string { return m.parms }

func (m *ScriptedModifier) ValidateCall(key script.Token, data validate.Data, sc *scopectx.Context) {
	expandCached(m.cache, m.Key, key, nil, tooltip.No, false, data, sc, func(our *scopectx.Context) {
		validate.ValidateModifiersWithBase(m.Block, data, our)
	})
}

func (m *ScriptedModifier) ValidateMacroExpansion(key script.Token, args []script.MacroArg, data validate.Data, sc *scopectx.Context) {
	expandCached(m.cache, m.Key, key, args, tooltip.No, false, data, sc, func(our *scopectx.Context) {
		if body, ok := expandBody(m.Block, key, args, data); ok {
			validate.ValidateModifiersWithBase(body, data, our)
		}
	})
}

func (m *ScriptedModifier) validateDefinition(data validate.Data) {
	if len(m.parms) > 0 {
		return
	}
	m.ValidateCall(m.Key, data, calleeContext(m.Key, data.Sink(), nil))
}

// ScriptValue is a named value from common/script_values. Override, if
// set, replaces whatever the body says about its scopes.
type ScriptValue struct {
	Key      script.Token
	BV       script.BV
	Override *scopes.Set
	cache    *macro.Cache[*scopectx.Context]
}

func newScriptValue(key script.Token, bv script.BV, override *scopes.Set) *ScriptValue {
	return &ScriptValue{Key: key, BV: bv, Override: override, cache: macro.NewCache[*scopectx.Context]()}
}

func (sv *ScriptValue) ValidateCall(key script.Token, data validate.Data, sc *scopectx.Context) {
	our := expand(sv.cache, sv.Key, key, nil, tooltip.No, false, data, sc, func(at *macro.Expansion) *scopectx.Context {
		our := calleeContext(sv.Key, data.Sink(), at)
		if sv.Override != nil {
			our.SetNoWarn(true)
		}
		validate.ValidateScriptValue(sv.BV, data, our)
		if sv.Override != nil {
			our = scopectx.NewUnrooted(*sv.Override, key, scopectx.WithSink(data.Sink()))
			our.SetStrictScopes(false)
		}
		return our
	})
	sc.ExpectCompatibility(our, key)
}

func (sv *ScriptValue) ValidateNonDynamicCall(_ script.Token, data validate.Data) {
	validate.ValidateNonDynamicScriptValue(sv.BV, data)
}

func (sv *ScriptValue) validateDefinition(data validate.Data) {
	if t, ok := sv.BV.GetValue(); ok && (t.Is("yes") || t.Is("no")) {
		return
	}
	sc := calleeContext(sv.Key, data.Sink(), nil)
	if sv.Override != nil {
		sc.SetNoWarn(true)
	}
	sv.ValidateCall(sv.Key, data, sc)
}
