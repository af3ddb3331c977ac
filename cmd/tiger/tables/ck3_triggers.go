package tables

import (
	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/scopes"
)

type triggerDef struct {
	in      scopes.Set
	name    string
	trigger Trigger
}

var (
	boolean       = Trigger{Kind: TrBoolean}
	compareValue  = Trigger{Kind: TrCompareValue}
	compareWarnEq = Trigger{Kind: TrCompareValueWarnEq}
	compareDate   = Trigger{Kind: TrCompareDate}
	setValue      = Trigger{Kind: TrSetValue}
	control       = Trigger{Kind: TrControl}
	special       = Trigger{Kind: TrSpecial}
	uncheckedT    = Trigger{Kind: TrUncheckedValue}

	allButNone = scopes.All().Without(scopes.None)
)

func scopeT(s scopes.Set) Trigger { return Trigger{Kind: TrScope, Scopes: s} }
func itemT(k item.Kind) Trigger   { return Trigger{Kind: TrItem, Item: k} }
func scopeOrItemT(s scopes.Set, k item.Kind) Trigger {
	return Trigger{Kind: TrScopeOrItem, Scopes: s, Item: k}
}
func choiceT(c ...string) Trigger    { return Trigger{Kind: TrChoice, Choices: c} }
func blockT(f ...BlockField) Trigger { return Trigger{Kind: TrBlock, Fields: f} }
func field(name string, tr Trigger) BlockField {
	return BlockField{Name: name, Trigger: tr}
}

var ck3Triggers = []triggerDef{
	{scopes.Accolade, "accolade_rank", compareValue},
	{allButNone, "add_to_temporary_list", special},
	{scopes.Character, "age", compareValue},
	{scopes.Character, "ai_boldness", compareValue},
	{scopes.Character, "ai_compassion", compareValue},
	{scopes.Character, "ai_diplomacy_stance", blockT(
		field("target", scopeT(scopes.Character)),
		field("stance", choiceT("neutral", "threat", "enemy", "friend")),
	)},
	{scopes.Character, "ai_greed", compareValue},
	{scopes.Character, "ai_honor", compareValue},
	{scopes.Character, "ai_rationality", compareValue},
	{scopes.Character, "ai_values_divergence", blockT(
		field("target", scopeT(scopes.Character)),
		field("value", compareValue),
	)},
	{scopes.Character, "ai_vengefulness", compareValue},
	{scopes.Character, "ai_zeal", compareValue},
	{scopes.None, "all_false", control},
	{scopes.None, "always", boolean},
	{scopes.None, "and", control},
	{scopes.None, "any_false", control},
	{scopes.Army, "army_is_moving", boolean},
	{scopes.Army, "army_size", compareValue},
	{scopes.Artifact, "artifact_durability", compareValue},
	{scopes.War, "attacker_war_score", compareValue},
	{scopes.Character, "attraction", compareValue},
	{scopes.Province, "available_loot", compareWarnEq},
	{scopes.LandedTitle | scopes.Province, "building_levies", compareValue},
	{scopes.None, "calc_true_if", control},
	{scopes.Character, "can_be_child_of", scopeT(scopes.Character)},
	{scopes.Character, "can_be_employed_as", itemT(item.CourtPosition)},
	{scopes.Character, "can_declare_war", blockT(
		field("defender", scopeT(scopes.Character)),
		field("casus_belli", itemT(item.CasusBelli)),
		field("?target_titles", Trigger{Kind: TrScopeList, Scopes: scopes.LandedTitle}),
		field("?claimant", scopeT(scopes.Character)),
	)},
	{scopes.Character, "can_execute_decision", scopeOrItemT(scopes.Decision, item.Decision)},
	{scopes.Character, "can_have_children", boolean},
	{scopes.Culture, "culture_age", compareWarnEq},
	{scopes.Culture, "culture_number_of_counties", compareValue},
	{scopes.None, "current_date", compareDate},
	{scopes.None, "current_day", compareValue},
	{scopes.Character, "current_military_strength", compareValue},
	{scopes.None, "current_month", compareValue},
	{scopes.None, "current_tooltip_depth", compareValue},
	{scopes.Character, "current_weight", compareValue},
	// Should be None, but the game's current_year only works with some scope set.
	{allButNone, "current_year", compareValue},
	{scopes.None, "custom_description", control},
	{scopes.None, "custom_tooltip", special},
	{scopes.Character, "debt_level", compareValue},
	{scopes.Character, "diplomacy", compareValue},
	{scopes.Character, "dread", compareValue},
	{scopes.None, "exists", special},
	{scopes.Faction, "faction_power", compareValue},
	{scopes.Faith, "faith_hostility_level", blockT(
		field("target", scopeT(scopes.Faith)),
		field("value", compareValue),
	)},
	{scopes.Faith, "faith_hostility_level_comparison", Trigger{Kind: TrScopeCompare, Scopes: scopes.Faith}},
	{scopes.Character, "fertility", compareValue},
	{scopes.Character, "gold", compareWarnEq},
	{scopes.Character, "has_any_court_position", boolean},
	{scopes.Character, "has_any_secrets", boolean},
	{scopes.Province, "has_building", itemT(item.Building)},
	{scopes.Character, "has_character_flag", uncheckedT},
	{scopes.Character, "has_character_modifier", itemT(item.Modifier)},
	{scopes.Character, "has_claim_on", scopeT(scopes.LandedTitle)},
	{scopes.LandedTitle, "has_county_modifier", itemT(item.Modifier)},
	{scopes.Character, "has_court_language", itemT(item.Language)},
	{scopes.Character, "has_court_position", itemT(item.CourtPosition)},
	{scopes.Culture, "has_cultural_pillar", itemT(item.CulturePillar)},
	{scopes.Character, "has_culture", scopeT(scopes.Culture)},
	{scopes.Faith, "has_doctrine", scopeOrItemT(scopes.Doctrine, item.Doctrine)},
	{scopes.Character, "has_dynasty", boolean},
	{scopes.Dynasty, "has_dynasty_modifier", itemT(item.Modifier)},
	{scopes.Character, "has_faith", scopeT(scopes.Faith)},
	{scopes.Character, "has_father", boolean},
	{scopes.Character, "has_gene", special},
	{scopes.None, "has_global_variable", uncheckedT},
	{scopes.None, "has_global_variable_list", uncheckedT},
	{scopes.Character, "has_government", itemT(item.GovernmentType)},
	{scopes.Province, "has_holding", boolean},
	{scopes.Character, "has_hook", scopeT(scopes.Character)},
	{scopes.Culture, "has_innovation", itemT(item.Innovation)},
	{scopes.Character, "has_lifestyle", itemT(item.Lifestyle)},
	{scopes.None, "has_local_variable", uncheckedT},
	{scopes.None, "has_local_variable_list", uncheckedT},
	{scopes.Character, "has_mother", boolean},
	{scopes.Character, "has_nickname", itemT(item.Nickname)},
	{scopes.Character, "has_opinion_modifier", blockT(
		field("target", scopeT(scopes.Character)),
		field("modifier", itemT(item.OpinionModifier)),
		field("?value", compareValue),
	)},
	{scopes.Character, "has_perk", itemT(item.Perk)},
	{scopes.Character, "has_primary_title", scopeT(scopes.LandedTitle)},
	{scopes.Character, "has_prisoners", boolean},
	{scopes.Province, "has_province_modifier", itemT(item.Modifier)},
	{scopes.Character, "has_realm_law", itemT(item.Law)},
	{scopes.Character, "has_relation_flag", blockT(
		field("target", scopeT(scopes.Character)),
		field("relation", itemT(item.Relation)),
		field("flag", uncheckedT),
	)},
	{scopes.Character, "has_relation_to", scopeT(scopes.Character)},
	{scopes.Character, "has_religion", scopeT(scopes.Religion)},
	{scopes.Character, "has_royal_court", boolean},
	{scopes.Character, "has_same_culture_as", scopeT(scopes.Character)},
	{scopes.Character, "has_title", scopeT(scopes.LandedTitle)},
	{scopes.Character, "has_trait", scopeOrItemT(scopes.Trait, item.Trait)},
	{scopes.None, "has_variable", uncheckedT},
	{scopes.None, "has_variable_list", uncheckedT},
	{scopes.Character, "health", compareValue},
	{scopes.Character, "highest_held_title_tier", compareValue},
	{scopes.Character, "intrigue", compareValue},
	{scopes.Character, "is_adult", boolean},
	{scopes.Character, "is_ai", boolean},
	{scopes.Character, "is_alive", boolean},
	{scopes.Character, "is_at_war", boolean},
	{scopes.Character, "is_at_war_with", scopeT(scopes.Character)},
	{scopes.Character, "is_child_of", scopeT(scopes.Character)},
	{scopes.Character, "is_councillor", boolean},
	{scopes.Character, "is_female", boolean},
	{scopes.LandedTitle, "is_holy_site", boolean},
	{scopes.Character, "is_imprisoned", boolean},
	{scopes.None, "is_in_list", special},
	{scopes.Character, "is_independent_ruler", boolean},
	{scopes.Character, "is_landed", boolean},
	{scopes.Character, "is_lowborn", boolean},
	{scopes.Character, "is_male", boolean},
	{scopes.Character, "is_married", boolean},
	{scopes.Character, "is_parent_of", scopeT(scopes.Character)},
	{scopes.Character, "is_pregnant", boolean},
	{scopes.Character, "is_ruler", boolean},
	{scopes.Character, "is_spouse_of", scopeT(scopes.Character)},
	{scopes.None, "is_target_in_global_variable_list", blockT(
		field("name", uncheckedT),
		field("*target", scopeT(allButNone)),
	)},
	{scopes.None, "is_target_in_local_variable_list", blockT(
		field("name", uncheckedT),
		field("*target", scopeT(allButNone)),
	)},
	{allButNone, "is_target_in_variable_list", blockT(
		field("name", uncheckedT),
		field("*target", scopeT(allButNone)),
	)},
	{scopes.LandedTitle, "is_title_created", boolean},
	{scopes.Character, "is_vassal_of", scopeT(scopes.Character)},
	{scopes.Character, "learning", compareValue},
	{scopes.None, "list_size", blockT(
		field("name", uncheckedT),
		field("value", compareValue),
	)},
	{scopes.Character, "martial", compareValue},
	{scopes.None, "nand", control},
	{scopes.None, "nor", control},
	{scopes.None, "not", control},
	{scopes.Character, "num_of_known_languages", compareValue},
	{scopes.Character, "opinion", blockT(
		field("target", scopeT(scopes.Character)),
		field("value", compareValue),
	)},
	{scopes.None, "or", control},
	{scopes.Character, "piety", compareWarnEq},
	{scopes.Character, "piety_level", compareValue},
	{scopes.Character, "prestige", compareWarnEq},
	{scopes.Character, "prestige_level", compareValue},
	{scopes.Character, "prowess", compareValue},
	{scopes.Character, "realm_size", compareValue},
	{scopes.Faith, "religion_tag", itemT(item.Religion)},
	{scopes.Character, "save_temporary_opinion_value_as", special},
	{allButNone, "save_temporary_scope_as", special},
	{scopes.None, "save_temporary_scope_value_as", special},
	{scopes.Character, "sex_opposite_of", scopeT(scopes.Character)},
	{scopes.Character, "stewardship", compareValue},
	{scopes.Character, "stress", compareValue},
	{scopes.Character, "stress_level", compareValue},
	{scopes.None, "switch", special},
	{scopes.Character, "target_is_liege_or_above", scopeT(scopes.Character)},
	{scopes.LandedTitle, "tier", compareValue},
	{scopes.LandedTitle, "title_held_years", compareWarnEq},
	{scopes.Faith, "trait_is_sin", scopeOrItemT(scopes.Trait, item.Trait)},
	{scopes.Faith, "trait_is_virtue", scopeOrItemT(scopes.Trait, item.Trait)},
	{scopes.None, "trigger_else", control},
	{scopes.None, "trigger_else_if", control},
	{scopes.None, "trigger_if", control},
	{scopes.Character, "vassal_count", compareValue},
	{scopes.Character, "vassal_stance", itemT(item.VassalStance)},
	{scopes.None, "weighted_calc_true_if", special},
	{scopes.Character, "years_as_ruler", compareValue},
}
