package tables

import (
	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/scopes"
)

type effectDef struct {
	in     scopes.Set
	name   string
	effect Effect
}

var (
	yes         = Effect{Kind: EfYes}
	efBoolean   = Effect{Kind: EfBoolean}
	scriptValue = Effect{Kind: EfScriptValue}
	nonNegative = Effect{Kind: EfNonNegativeValue}
	efControl   = Effect{Kind: EfControl}
	efSpecial   = Effect{Kind: EfSpecial}
	efUnchecked = Effect{Kind: EfUnchecked}
	desc        = Effect{Kind: EfDesc}
	timespan    = Effect{Kind: EfTimespan}
)

func scopeE(s scopes.Set) Effect       { return Effect{Kind: EfScope, Scopes: s} }
func scopeOkThisE(s scopes.Set) Effect { return Effect{Kind: EfScopeOkThis, Scopes: s} }
func itemE(k item.Kind) Effect         { return Effect{Kind: EfItem, Item: k} }
func scopeOrItemE(s scopes.Set, k item.Kind) Effect {
	return Effect{Kind: EfScopeOrItem, Scopes: s, Item: k}
}
func targetE(key string, s scopes.Set) Effect {
	return Effect{Kind: EfTarget, Key: key, Scopes: s}
}
func targetValueE(key string, s scopes.Set, valueKey string) Effect {
	return Effect{Kind: EfTargetValue, Key: key, Scopes: s, ValueKey: valueKey}
}
func itemTargetE(itemKey string, k item.Kind, key string, s scopes.Set) Effect {
	return Effect{Kind: EfItemTarget, ValueKey: itemKey, Item: k, Key: key, Scopes: s}
}

var ck3Effects = []effectDef{
	{scopes.Character, "add_character_flag", efSpecial},
	{scopes.Character, "add_character_modifier", efSpecial},
	{scopes.Character, "add_dread", scriptValue},
	{scopes.Character, "add_gold", scriptValue},
	{scopes.Character, "add_hook", efSpecial},
	{scopes.Character, "add_opinion", efSpecial},
	{scopes.Character, "add_perk", itemE(item.Perk)},
	{scopes.Character, "add_piety", scriptValue},
	{scopes.Character, "add_piety_experience", scriptValue},
	{scopes.Character, "add_prestige", scriptValue},
	{scopes.Character, "add_prestige_experience", scriptValue},
	{scopes.Character, "add_realm_law", itemE(item.Law)},
	{scopes.Character, "add_secret", efSpecial},
	{scopes.Character, "add_stress", scriptValue},
	{allButNone, "add_to_global_variable_list", efSpecial},
	{allButNone, "add_to_list", efSpecial},
	{allButNone, "add_to_local_variable_list", efSpecial},
	{allButNone, "add_to_temporary_list", efSpecial},
	{allButNone, "add_to_variable_list", efSpecial},
	{scopes.Character, "add_trait", scopeOrItemE(scopes.Trait, item.Trait)},
	{scopes.Character, "becomes_independent", targetE("change", scopes.TitleAndVassalChange)},
	{scopes.LandedTitle, "change_county_control", scriptValue},
	{scopes.LandedTitle, "change_de_jure_drift_progress", targetValueE("target", scopes.LandedTitle, "value")},
	{scopes.None, "change_global_variable", efSpecial},
	{scopes.None, "change_local_variable", efSpecial},
	{scopes.Character, "change_prison_type", efUnchecked},
	{allButNone, "change_variable", efSpecial},
	{scopes.None, "clamp_global_variable", efSpecial},
	{allButNone, "clamp_variable", efSpecial},
	{scopes.None, "clear_saved_scope", efUnchecked},
	{scopes.None, "create_character", efSpecial},
	{scopes.None, "custom_description", efControl},
	{scopes.None, "custom_description_no_bullet", efControl},
	{scopes.None, "custom_label", Effect{Kind: EfControlOrLabel}},
	{scopes.None, "custom_tooltip", Effect{Kind: EfControlOrLabel}},
	{scopes.Character, "death", efSpecial},
	{scopes.None, "debug_log", efUnchecked},
	{scopes.None, "debug_log_scopes", efBoolean},
	{scopes.Artifact, "destroy_artifact", scopeOkThisE(scopes.Artifact)},
	{scopes.Character, "divorce", scopeE(scopes.Character)},
	{scopes.None, "duel", efSpecial},
	{scopes.None, "else", efControl},
	{scopes.None, "else_if", efControl},
	{scopes.None, "hidden_effect", efControl},
	{scopes.None, "if", efControl},
	{scopes.Character, "imprison", efSpecial},
	{scopes.Character, "marry", scopeE(scopes.Character)},
	{scopes.Character, "move_to_pool", yes},
	{scopes.Character, "pay_long_term_gold", targetValueE("target", scopes.Character, "gold")},
	{scopes.Character, "pay_short_term_gold", targetValueE("target", scopes.Character, "gold")},
	{scopes.None, "random", efControl},
	{scopes.None, "random_list", efControl},
	{scopes.Character, "remove_character_flag", efUnchecked},
	{scopes.Character, "remove_character_modifier", itemE(item.Modifier)},
	{scopes.None, "remove_global_variable", efUnchecked},
	{scopes.Character, "remove_hook", itemTargetE("type", item.Hook, "target", scopes.Character)},
	{allButNone, "remove_from_list", efSpecial},
	{scopes.None, "remove_local_variable", efUnchecked},
	{scopes.Character, "remove_long_term_gold", nonNegative},
	{scopes.Character, "remove_opinion", efSpecial},
	{scopes.Character, "remove_short_term_gold", nonNegative},
	{scopes.Character, "remove_trait", scopeOrItemE(scopes.Trait, item.Trait)},
	{allButNone, "remove_variable", efUnchecked},
	{scopes.TravelPlan, "add_destination_progress", timespan},
	{allButNone, "save_scope_as", efSpecial},
	{scopes.None, "save_scope_value_as", efSpecial},
	{allButNone, "save_temporary_scope_as", efSpecial},
	{scopes.None, "save_temporary_scope_value_as", efSpecial},
	{scopes.Character, "send_interface_message", efSpecial},
	{scopes.Character, "send_interface_toast", efSpecial},
	{scopes.Artifact, "set_artifact_name", desc},
	{scopes.Character, "set_character_faith", scopeE(scopes.Faith)},
	{scopes.Character, "set_culture", scopeE(scopes.Culture)},
	{scopes.LandedTitle, "set_county_culture", scopeE(scopes.Culture)},
	{scopes.LandedTitle, "set_county_faith", scopeE(scopes.Faith)},
	{scopes.Character, "set_employer", scopeE(scopes.Character)},
	{scopes.None, "set_global_variable", efSpecial},
	{scopes.None, "set_local_variable", efSpecial},
	{scopes.Character, "set_nickname_effect", itemE(item.Nickname)},
	{allButNone, "set_variable", efSpecial},
	{scopes.None, "show_as_tooltip", efControl},
	{scopes.Character, "start_war", efSpecial},
	{scopes.None, "switch", efSpecial},
	{scopes.None, "trigger_event", efSpecial},
	{scopes.None, "while", efControl},
}
