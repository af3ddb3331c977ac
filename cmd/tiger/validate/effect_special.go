package validate

import (
	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
)

// specialEffect validates an effect with syntax of its own. The key has
// already been checked against the effect's input scopes.
type specialEffect func(key script.Token, bv script.BV, data Data, sc *scopectx.Context, tt Tooltipped)

// blockEffect adapts a validator that only takes a block.
func blockEffect(fn func(key script.Token, vd *fields, data Data, sc *scopectx.Context, tt Tooltipped)) specialEffect {
	return func(key script.Token, bv script.BV, data Data, sc *scopectx.Context, tt Tooltipped) {
		b, ok := expectBlockBV(bv, data, report.Fatal)
		if !ok {
			return
		}
		vd := newFields(b, data)
		fn(key, vd, data, sc, tt)
		vd.done()
	}
}

// valueEffect adapts a validator that only takes a value.
func valueEffect(fn func(t script.Token, sc *scopectx.Context)) specialEffect {
	return func(_ script.Token, bv script.BV, data Data, sc *scopectx.Context, _ Tooltipped) {
		t, ok := bv.GetValue()
		if !ok {
			report.Err(report.Validation).Msg("expected value, found block").Loc(bv.Loc()).Push(data.Sink())
			return
		}
		fn(t, sc)
	}
}

var specialEffects map[string]specialEffect

func init() {
	specialEffects = map[string]specialEffect{
		"add_character_flag":            validateAddCharacterFlag,
		"add_character_modifier":        validateAddModifier,
		"add_hook":                      blockEffect(validateAddHook),
		"add_opinion":                   blockEffect(validateAddOpinion),
		"add_secret":                    blockEffect(validateAddSecret),
		"add_to_list":                   valueEffect(defineOrExpectList),
		"add_to_temporary_list":         valueEffect(defineOrExpectList),
		"add_to_variable_list":          blockEffect(validateAddToVariableList),
		"add_to_global_variable_list":   blockEffect(validateAddToVariableList),
		"add_to_local_variable_list":    blockEffect(validateAddToVariableList),
		"change_variable":               blockEffect(validateChangeVariable),
		"change_global_variable":        blockEffect(validateChangeVariable),
		"change_local_variable":         blockEffect(validateChangeVariable),
		"clamp_variable":                blockEffect(validateClampVariable),
		"clamp_global_variable":         blockEffect(validateClampVariable),
		"clamp_local_variable":          blockEffect(validateClampVariable),
		"create_character":              blockEffect(validateCreateCharacter),
		"death":                         validateDeath,
		"duel":                          blockEffect(validateDuel),
		"imprison":                      blockEffect(validateImprison),
		"remove_from_list":              valueEffect(expectList),
		"remove_opinion":                blockEffect(validateRemoveOpinion),
		"save_scope_as":                 valueEffect(saveScope),
		"save_temporary_scope_as":       valueEffect(saveScope),
		"save_scope_value_as":           blockEffect(validateSaveScopeValue),
		"save_temporary_scope_value_as": blockEffect(validateSaveScopeValue),
		"send_interface_message":        validateSendInterface,
		"send_interface_toast":          validateSendInterface,
		"set_variable":                  validateSetVariable,
		"set_global_variable":           validateSetVariable,
		"set_local_variable":            validateSetVariable,
		"start_war":                     blockEffect(validateStartWar),
		"switch":                        blockEffect(validateSwitchEffect),
		"trigger_event":                 validateTriggerEvent,
	}
}

func validateSpecialEffect(key script.Token, bv script.BV, data Data, sc *scopectx.Context, tt Tooltipped) {
	if fn, ok := specialEffects[key.Lower()]; ok {
		fn(key, bv, data, sc, tt)
	}
}

func defineOrExpectList(t script.Token, sc *scopectx.Context) { sc.DefineOrExpectList(t) }
func expectList(t script.Token, sc *scopectx.Context)         { sc.ExpectList(t) }
func saveScope(t script.Token, sc *scopectx.Context)          { sc.SaveCurrentScope(t.Text) }

func validateAddCharacterFlag(_ script.Token, bv script.BV, data Data, sc *scopectx.Context, _ Tooltipped) {
	if bv.Block == nil {
		return
	}
	vd := newFields(bv.Block, data)
	vd.req("flag")
	vd.multi("flag")
	vd.optionalDuration(sc)
	vd.done()
}

func validateAddModifier(_ script.Token, bv script.BV, data Data, sc *scopectx.Context, _ Tooltipped) {
	if t, ok := bv.GetValue(); ok {
		verifyExists(data, item.Modifier, t, report.Fatal)
		return
	}
	vd := newFields(bv.Block, data)
	vd.req("modifier")
	vd.fieldItem("modifier", item.Modifier)
	vd.fieldDesc("desc", sc)
	vd.optionalDuration(sc)
	vd.done()
}

func validateAddHook(_ script.Token, vd *fields, data Data, sc *scopectx.Context, _ Tooltipped) {
	vd.req("type")
	vd.req("target")
	vd.fieldItem("type", item.Hook)
	vd.fieldTarget("target", sc, scopes.Character)
	vd.fieldItemOrTarget("secret", sc, item.Secret, scopes.Secret)
	vd.optionalDuration(sc)
}

func validateAddOpinion(_ script.Token, vd *fields, _ Data, sc *scopectx.Context, _ Tooltipped) {
	vd.req("modifier")
	vd.req("target")
	vd.fieldItem("modifier", item.OpinionModifier)
	vd.fieldTarget("target", sc, scopes.Character)
	vd.fieldScriptValue("opinion", sc)
	vd.optionalDuration(sc)
}

func validateAddSecret(_ script.Token, vd *fields, _ Data, sc *scopectx.Context, _ Tooltipped) {
	vd.req("type")
	vd.fieldItem("type", item.Secret)
	vd.fieldTarget("target", sc, scopes.Character)
	if t, ok := vd.fieldValue("save_scope_as"); ok {
		sc.DefineNameToken(t.Text, scopes.Secret, t)
	}
}

var allButNone = scopes.All().Without(scopes.None)

func validateAddToVariableList(_ script.Token, vd *fields, _ Data, sc *scopectx.Context, _ Tooltipped) {
	vd.req("name")
	vd.req("target")
	vd.fieldValue("name")
	vd.fieldTargetOkThis("target", sc, allButNone)
	vd.optionalDuration(sc)
}

func validateChangeVariable(_ script.Token, vd *fields, _ Data, sc *scopectx.Context, _ Tooltipped) {
	vd.req("name")
	vd.fieldValue("name")
	for _, op := range []string{"add", "subtract", "multiply", "divide", "modulo", "min", "max"} {
		vd.fieldScriptValue(op, sc)
	}
}

func validateClampVariable(_ script.Token, vd *fields, _ Data, sc *scopectx.Context, _ Tooltipped) {
	vd.req("name")
	vd.fieldValue("name")
	vd.fieldScriptValue("min", sc)
	vd.fieldScriptValue("max", sc)
}

func validateSetVariable(_ script.Token, bv script.BV, data Data, sc *scopectx.Context, _ Tooltipped) {
	if bv.Block == nil {
		return
	}
	vd := newFields(bv.Block, data)
	vd.req("name")
	vd.fieldValue("name")
	if f, ok := vd.field("value"); ok {
		if t, ok := f.BV.GetValue(); ok {
			ValidateTargetOkThis(t, data, sc, allButNone)
		} else {
			ValidateScriptValue(f.BV, data, sc)
		}
	}
	vd.optionalDuration(sc)
	vd.done()
}

func validateCreateCharacter(_ script.Token, vd *fields, data Data, sc *scopectx.Context, _ Tooltipped) {
	for _, name := range []string{"save_scope_as", "save_temporary_scope_as"} {
		if t, ok := vd.fieldValue(name); ok {
			sc.DefineNameToken(t.Text, scopes.Character, t)
		}
	}
	vd.fieldDesc("name", sc)
	vd.fieldScriptValue("age", sc)
	if t, ok := vd.fieldValue("gender"); ok && !t.Is("male") && !t.Is("female") {
		ValidateTargetOkThis(t, data, sc, scopes.Character)
	}
	vd.fieldScriptValue("gender_female_chance", sc)
	vd.fieldTargetOkThis("opposite_gender", sc, scopes.Character)
	vd.multiItem("trait", item.Trait)
	vd.fieldBool("random_traits")
	vd.fieldScriptValue("health", sc)
	vd.fieldScriptValue("fertility", sc)
	for _, parent := range []string{"mother", "father", "real_father"} {
		vd.fieldTargetOkThis(parent, sc, scopes.Character)
	}
	if !vd.block.HasKey("location") && !vd.block.HasKey("employer") {
		vd.push(report.Err(report.FieldMissing).Msg("expected one of `location` or `employer`").Loc(vd.block.Loc))
	}
	vd.fieldTargetOkThis("employer", sc, scopes.Character)
	vd.fieldTargetOkThis("location", sc, scopes.Province)
	vd.fieldValue("template")
	vd.fieldTargetOkThis("template_character", sc, scopes.Character)
	vd.fieldItemOrTarget("faith", sc, item.Faith, scopes.Faith)
	vd.fieldItemOrTarget("random_faith_in_religion", sc, item.Religion, scopes.Faith)
	vd.fieldItemOrTarget("culture", sc, item.Culture, scopes.Culture)
	vd.fieldItemOrTarget("dynasty_house", sc, item.House, scopes.DynastyHouse)
	if t, ok := vd.fieldValue("dynasty"); ok && !t.Is("generate") && !t.Is("inherit") && !t.Is("none") {
		ValidateTarget(t, data, sc, scopes.Dynasty)
	}
	vd.fieldValue("ethnicity")
	for _, skill := range duelSkills {
		vd.fieldScriptValue(skill, sc)
	}
	if f, ok := vd.fieldBlock("after_creation"); ok {
		sc.OpenScope(scopes.Character, f.Key)
		ValidateEffect(f.BV.Block, data, sc, tooltip.No)
		sc.Close()
	}
}

func validateDeath(_ script.Token, bv script.BV, data Data, sc *scopectx.Context, _ Tooltipped) {
	if t, ok := bv.GetValue(); ok {
		if !t.Is("natural") {
			report.Warn(report.Validation).Msg("expected `death = natural`").Loc(t.Loc).Push(data.Sink())
		}
		return
	}
	vd := newFields(bv.Block, data)
	vd.req("death_reason")
	vd.fieldValue("death_reason")
	vd.fieldTarget("killer", sc, scopes.Character)
	vd.fieldTarget("artifact", sc, scopes.Artifact)
	vd.done()
}

var duelSkills = []string{"diplomacy", "intrigue", "martial", "learning", "prowess", "stewardship"}

func validateDuel(key script.Token, vd *fields, data Data, sc *scopectx.Context, tt Tooltipped) {
	vd.fieldChoice("skill", duelSkills...)
	if f, ok := vd.fieldBlock("skills"); ok {
		for _, t := range f.BV.Block.Values() {
			vd.checkChoice(t, duelSkills)
		}
	}
	vd.fieldTarget("target", sc, scopes.Character)
	vd.fieldScriptValue("value", sc)
	vd.fieldValue("localization")
	sc.DefineName("duel_value", scopes.Value, key)
	validateRandomList(key, vd, data, sc, tt)
}

func validateImprison(_ script.Token, vd *fields, _ Data, sc *scopectx.Context, _ Tooltipped) {
	vd.fieldTarget("target", sc, scopes.Character)
	vd.fieldValue("type")
	vd.fieldValue("reason")
}

func validateRemoveOpinion(_ script.Token, vd *fields, _ Data, sc *scopectx.Context, _ Tooltipped) {
	vd.req("target")
	vd.req("modifier")
	vd.fieldTarget("target", sc, scopes.Character)
	vd.fieldItem("modifier", item.OpinionModifier)
	vd.fieldBool("single")
}

func validateSaveScopeValue(_ script.Token, vd *fields, data Data, sc *scopectx.Context, _ Tooltipped) {
	vd.req("name")
	vd.req("value")
	if t, ok := vd.fieldValue("name"); ok {
		sc.DefineNameToken(t.Text, scopes.Primitive(), t)
	}
	if f, ok := vd.field("value"); ok {
		if t, ok := f.BV.GetValue(); ok && t.HasPrefix("flag:") {
			return
		}
		ValidateScriptValue(f.BV, data, sc)
	}
}

func validateSendInterface(key script.Token, bv script.BV, data Data, sc *scopectx.Context, tt Tooltipped) {
	b, ok := expectBlockBV(bv, data, report.Fatal)
	if !ok {
		return
	}
	validateEffectControl(key.Lower(), b, data, sc, tt)
}

func validateStartWar(_ script.Token, vd *fields, data Data, sc *scopectx.Context, _ Tooltipped) {
	vd.fieldItem("casus_belli", item.CasusBelli)
	vd.fieldItem("cb", item.CasusBelli)
	vd.fieldTarget("target", sc, scopes.Character)
	vd.fieldTargetOkThis("claimant", sc, scopes.Character)
	for _, f := range vd.multi("target_title") {
		if t, ok := vd.expectValue(f.BV); ok {
			ValidateTarget(t, data, sc, scopes.LandedTitle)
		}
	}
}

// validateSwitchEffect checks each branch as if it were written
// `trigger = branch_key`.
func validateSwitchEffect(key script.Token, vd *fields, data Data, sc *scopectx.Context, tt Tooltipped) {
	vd.req("trigger")
	target, ok := vd.fieldValue("trigger")
	if !ok {
		vd.acceptAll = true
		return
	}
	count := 0
	vd.unknownBlockFields(func(branch script.Token, b *script.Block) {
		count++
		if !branch.Is("fallback") {
			ValidateTriggerKeyBV(target, script.Equals, script.ValueBV(branch), data, sc, tt, false, report.Error)
		}
		ValidateEffect(b, data, sc, tt)
	})
	if count == 0 {
		vd.push(report.Err(report.Logic).Msg("switch with no branches").Loc(key.Loc))
	}
}

func validateTriggerEvent(_ script.Token, bv script.BV, data Data, sc *scopectx.Context, _ Tooltipped) {
	if t, ok := bv.GetValue(); ok {
		verifyExists(data, item.Event, t, report.Fatal)
		data.CheckEventScope(t, sc)
		return
	}
	vd := newFields(bv.Block, data)
	vd.fieldItem("id", item.Event)
	vd.fieldValue("on_action")
	vd.fieldTarget("saved_event_id", sc, scopes.Flag)
	if t, ok := vd.fieldValue("trigger_on_next_date"); ok && !t.IsDate() {
		vd.push(report.Warn(report.Validation).Msg("expected a date value").Loc(t.Loc))
	}
	vd.fieldBool("delayed")
	vd.optionalDuration(sc)
	if id, ok := bv.Block.GetFieldValue("id"); ok {
		data.CheckEventScope(id, sc)
	}
	vd.done()
}
