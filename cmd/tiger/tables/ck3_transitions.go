package tables

import "tiger-tools/cmd/tiger/scopes"

// ck3Fields are the chainable transitions, like `root.joined_faction.faction_leader`.
// Names listed more than once are overloads on different input scopes.
var ck3Fields = []Transition{
	{From: scopes.Accolade, Name: "acclaimed_knight", To: scopes.Character},
	{From: scopes.Character, Name: "accolade", To: scopes.Accolade},
	{From: scopes.Accolade, Name: "accolade_owner", To: scopes.Character},
	{From: scopes.Accolade, Name: "accolade_successor", To: scopes.Character},
	{From: scopes.Activity, Name: "activity_host", To: scopes.Character},
	{From: scopes.Activity, Name: "activity_location", To: scopes.Province},
	{From: scopes.Activity, Name: "activity_type", To: scopes.ActivityType},
	{From: scopes.Army, Name: "army_commander", To: scopes.Character},
	{From: scopes.Army, Name: "army_owner", To: scopes.Character},
	{From: scopes.Artifact, Name: "artifact_age", To: scopes.Value},
	{From: scopes.Artifact, Name: "artifact_owner", To: scopes.Character},
	{From: scopes.Character, Name: "assigned_tax_slot", To: scopes.TaxSlot},
	{From: scopes.LandedTitle | scopes.Province, Name: "barony", To: scopes.LandedTitle},
	{From: scopes.LandedTitle | scopes.Province, Name: "barony_controller", To: scopes.Character},
	{From: scopes.Character, Name: "betrothed", To: scopes.Character},
	{From: scopes.Culture, Name: "calc_culture_dominant_faith", To: scopes.Faith},
	{From: scopes.Culture, Name: "calc_culture_dominant_religion", To: scopes.Religion},
	{From: scopes.Character, Name: "capital_barony", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "capital_county", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "capital_province", To: scopes.Province},
	{From: scopes.LandedTitle, Name: "capital_vassal", To: scopes.LandedTitle},
	{From: scopes.War, Name: "casus_belli", To: scopes.CasusBelli},
	{From: scopes.War | scopes.CasusBelli, Name: "claimant", To: scopes.Character},
	{From: scopes.CombatSide, Name: "combat", To: scopes.Combat},
	{From: scopes.Combat, Name: "combat_attacker", To: scopes.CombatSide},
	{From: scopes.Combat, Name: "combat_defender", To: scopes.CombatSide},
	{From: scopes.Combat, Name: "combat_war", To: scopes.War},
	{From: scopes.Character, Name: "commanding_army", To: scopes.Army},
	{From: scopes.Value, Name: "compare_value", To: scopes.Value},
	{From: scopes.Character, Name: "concubinist", To: scopes.Character},
	{From: scopes.Character, Name: "council_task", To: scopes.CouncilTask},
	{From: scopes.CouncilTask, Name: "councillor", To: scopes.Character},
	{From: scopes.Character, Name: "councillor_task_target", To: scopes.All()},
	{From: scopes.LandedTitle | scopes.Province, Name: "county", To: scopes.LandedTitle},
	{From: scopes.LandedTitle | scopes.Province, Name: "county_controller", To: scopes.Character},
	{From: scopes.Character, Name: "court_owner", To: scopes.Character},
	{From: scopes.Artifact, Name: "creator", To: scopes.Character},
	{From: scopes.Character | scopes.LandedTitle | scopes.Province, Name: "culture", To: scopes.Culture},
	{From: scopes.Culture, Name: "culture_head", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "current_heir", To: scopes.Character},
	{From: scopes.TravelPlan, Name: "current_location", To: scopes.Province},
	{From: scopes.Legend, Name: "current_or_last_legend_owner", To: scopes.Character},
	{From: scopes.Character, Name: "current_travel_plan", To: scopes.TravelPlan},
	{From: scopes.LandedTitle, Name: "de_facto_liege", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "de_jure_liege", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "default_location", To: scopes.Province},
	{From: scopes.TravelPlan, Name: "departure_location", To: scopes.Province},
	{From: scopes.Character, Name: "designated_diarch", To: scopes.Character},
	{From: scopes.Character, Name: "designated_heir", To: scopes.Character},
	{From: scopes.Character, Name: "diarch", To: scopes.Character},
	{From: scopes.Character, Name: "diarchy_successor", To: scopes.Character},
	{From: scopes.Character, Name: "domicile", To: scopes.Domicile},
	{From: scopes.Domicile, Name: "domicile_culture", To: scopes.Culture},
	{From: scopes.Domicile, Name: "domicile_faith", To: scopes.Faith},
	{From: scopes.Domicile, Name: "domicile_location", To: scopes.Province},
	{From: scopes.LandedTitle | scopes.Province, Name: "duchy", To: scopes.LandedTitle},
	{From: scopes.Dynasty, Name: "dynasty_founder", To: scopes.Character},
	{From: scopes.None, Name: "dummy_female", To: scopes.Character},
	{From: scopes.None, Name: "dummy_male", To: scopes.Character},
	{From: scopes.Dynasty, Name: "dynast", To: scopes.Character},
	{From: scopes.Character, Name: "dynasty", To: scopes.Dynasty},
	{From: scopes.LandedTitle | scopes.Province, Name: "empire", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "employer", To: scopes.Character},
	{From: scopes.CombatSide, Name: "enemy_side", To: scopes.CombatSide},
	{From: scopes.EpidemicType, Name: "epidemic_trait", To: scopes.Trait},
	{From: scopes.Epidemic, Name: "epidemic_type", To: scopes.EpidemicType},
	{From: scopes.Faction, Name: "faction_leader", To: scopes.Character},
	{From: scopes.Faction, Name: "faction_target", To: scopes.Character},
	{From: scopes.Faction, Name: "faction_war", To: scopes.War},
	{From: scopes.Character | scopes.LandedTitle | scopes.Province | scopes.GreatHolyWar, Name: "faith", To: scopes.Faith},
	{From: scopes.Character, Name: "father", To: scopes.Character},
	{From: scopes.TravelPlan, Name: "final_destination_province", To: scopes.Province},
	{From: scopes.Faith, Name: "founder", To: scopes.Character},
	{From: scopes.Accolade, Name: "founder_culture", To: scopes.Culture},
	{From: scopes.Accolade, Name: "founder_dynasty", To: scopes.Dynasty},
	{From: scopes.Accolade, Name: "founder_faith", To: scopes.Faith},
	{From: scopes.Accolade, Name: "founder_house", To: scopes.DynastyHouse},
	{From: scopes.Character, Name: "ghw_beneficiary", To: scopes.Character},
	{From: scopes.GreatHolyWar, Name: "ghw_designated_winner", To: scopes.Character},
	{From: scopes.GreatHolyWar, Name: "ghw_target_character", To: scopes.Character},
	{From: scopes.GreatHolyWar, Name: "ghw_target_title", To: scopes.LandedTitle},
	{From: scopes.GreatHolyWar, Name: "ghw_title_recipient", To: scopes.Character},
	{From: scopes.GreatHolyWar, Name: "ghw_war", To: scopes.War},
	{From: scopes.GreatHolyWar, Name: "ghw_war_declarer", To: scopes.Character},
	{From: scopes.Character, Name: "government_type", To: scopes.GovernmentType},
	{From: scopes.Faith, Name: "great_holy_war", To: scopes.GreatHolyWar},
	{From: scopes.LandedTitle, Name: "holder", To: scopes.Character},
	{From: scopes.Character, Name: "holding_type", To: scopes.HoldingType},
	{From: scopes.HolyOrder, Name: "holy_order_patron", To: scopes.Character},
	{From: scopes.Character, Name: "home_court", To: scopes.Character},
	{From: scopes.Character, Name: "host", To: scopes.Character},
	{From: scopes.Character, Name: "house", To: scopes.DynastyHouse},
	{From: scopes.DynastyHouse, Name: "house_founder", To: scopes.Character},
	{From: scopes.DynastyHouse, Name: "house_head", To: scopes.Character},
	{From: scopes.Character, Name: "imprisoner", To: scopes.Character},
	{From: scopes.Character, Name: "inspiration", To: scopes.Inspiration},
	{From: scopes.Inspiration, Name: "inspiration_owner", To: scopes.Character},
	{From: scopes.Inspiration, Name: "inspiration_sponsor", To: scopes.Character},
	{From: scopes.Character, Name: "intent_target", To: scopes.Character},
	{From: scopes.Character, Name: "involved_activity", To: scopes.Activity},
	{From: scopes.Army, Name: "involved_combat_side", To: scopes.CombatSide},
	{From: scopes.Character, Name: "joined_faction", To: scopes.Faction},
	{From: scopes.Character, Name: "killer", To: scopes.Character},
	{From: scopes.LandedTitle | scopes.Province, Name: "kingdom", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "knight_army", To: scopes.Army},
	{From: scopes.DynastyHouse, Name: "last_house_head", To: scopes.Character},
	{From: scopes.Character, Name: "last_played_character", To: scopes.Character},
	{From: scopes.HolyOrder, Name: "leader", To: scopes.Character},
	{From: scopes.Legend, Name: "legend_owner", To: scopes.Character},
	{From: scopes.Legend, Name: "legend_protagonist", To: scopes.Character},
	{From: scopes.Legend, Name: "legend_type", To: scopes.LegendType},
	{From: scopes.LandedTitle, Name: "lessee", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "lessee_title", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "liege", To: scopes.Character},
	{From: scopes.Character, Name: "liege_or_court_owner", To: scopes.Character},
	{From: scopes.Character | scopes.Combat | scopes.Army, Name: "location", To: scopes.Province},
	{From: scopes.Character, Name: "matchmaker", To: scopes.Character},
	{From: scopes.MercenaryCompany, Name: "mercenary_company_leader", To: scopes.Character},
	{From: scopes.CharacterMemory, Name: "memory_owner", To: scopes.Character},
	{From: scopes.Character, Name: "mother", To: scopes.Character},
	{From: scopes.TravelPlan, Name: "next_destination_province", To: scopes.Province},
	{From: scopes.TravelPlan, Name: "next_location", To: scopes.Province},
	{From: scopes.None, Name: "no", To: scopes.Bool},
	{From: scopes.Character, Name: "obedience_target", To: scopes.Character},
	{From: scopes.Epidemic, Name: "outbreak_province", To: scopes.Province},
	{From: scopes.Character, Name: "overlord", To: scopes.Character},
	{From: scopes.Domicile, Name: "owner", To: scopes.Character},
	{From: scopes.Character, Name: "player_heir", To: scopes.Character},
	{From: scopes.Character, Name: "pregnancy_assumed_father", To: scopes.Character},
	{From: scopes.Character, Name: "pregnancy_real_father", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "previous_holder", To: scopes.Character},
	{From: scopes.Artifact, Name: "previous_owner", To: scopes.Character},
	{From: scopes.Artifact, Name: "previous_owner_level_2", To: scopes.Character},
	{From: scopes.Artifact, Name: "previous_owner_level_3", To: scopes.Character},
	{From: scopes.War | scopes.CasusBelli, Name: "primary_attacker", To: scopes.Character},
	{From: scopes.War | scopes.CasusBelli, Name: "primary_defender", To: scopes.Character},
	{From: scopes.Character, Name: "primary_heir", To: scopes.Character},
	{From: scopes.Character, Name: "primary_partner", To: scopes.Character},
	{From: scopes.Character, Name: "primary_spouse", To: scopes.Character},
	{From: scopes.Character, Name: "primary_title", To: scopes.LandedTitle},
	{From: scopes.Accolade, Name: "primary_type", To: scopes.AccoladeType},
	{From: scopes.Character, Name: "promoted_legend", To: scopes.Legend},
	{From: scopes.Province, Name: "province_owner", To: scopes.Character},
	{From: scopes.Character, Name: "real_father", To: scopes.Character},
	{From: scopes.Character, Name: "real_mother", To: scopes.Character},
	{From: scopes.Character, Name: "realm_priest", To: scopes.Character},
	{From: scopes.Character | scopes.LandedTitle | scopes.Province | scopes.Faith | scopes.GreatHolyWar, Name: "religion", To: scopes.Religion},
	{From: scopes.Faith, Name: "religious_head", To: scopes.Character},
	{From: scopes.Faith, Name: "religious_head_title", To: scopes.LandedTitle},
	{From: scopes.Regiment, Name: "regiment_controller", To: scopes.Character},
	{From: scopes.Regiment, Name: "regiment_controlling_title", To: scopes.LandedTitle},
	{From: scopes.Regiment, Name: "regiment_owner", To: scopes.Character},
	{From: scopes.Regiment, Name: "regiment_owning_title", To: scopes.LandedTitle},
	{From: scopes.Regiment, Name: "regiment_station", To: scopes.Province},
	{From: scopes.TaskContract, Name: "scheme", To: scopes.Scheme},
	{From: scopes.Scheme, Name: "scheme_artifact", To: scopes.Artifact},
	{From: scopes.Scheme, Name: "scheme_defender", To: scopes.Character},
	{From: scopes.Scheme, Name: "scheme_owner", To: scopes.Character},
	{From: scopes.Scheme, Name: "scheme_target_character", To: scopes.Character},
	{From: scopes.Scheme, Name: "scheme_target_culture", To: scopes.Culture},
	{From: scopes.Scheme, Name: "scheme_target_faith", To: scopes.Faith},
	{From: scopes.Scheme, Name: "scheme_target_title", To: scopes.LandedTitle},
	{From: scopes.Accolade, Name: "secondary_type", To: scopes.AccoladeType},
	{From: scopes.Character, Name: "secret_faith", To: scopes.Faith},
	{From: scopes.Secret, Name: "secret_owner", To: scopes.Character},
	{From: scopes.Secret, Name: "secret_target", To: scopes.Character},
	{From: scopes.CombatSide, Name: "side_commander", To: scopes.Character},
	{From: scopes.CombatSide, Name: "side_primary_participant", To: scopes.Character},
	{From: scopes.AgentSlot, Name: "slot_character", To: scopes.Character},
	{From: scopes.Faction, Name: "special_character", To: scopes.Character},
	{From: scopes.Faction, Name: "special_title", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "state_faith", To: scopes.Faith},
	{From: scopes.StoryCycle, Name: "story_owner", To: scopes.Character},
	{From: scopes.VassalObligationLevel, Name: "subject_contract_type", To: scopes.VassalContract},
	{From: scopes.Character, Name: "suzerain", To: scopes.Character},
	{From: scopes.Scheme, Name: "task_contract", To: scopes.TaskContract},
	{From: scopes.TaskContract, Name: "task_contract_destination", To: scopes.Province},
	{From: scopes.TaskContract, Name: "task_contract_employer", To: scopes.Character},
	{From: scopes.TaskContract, Name: "task_contract_location", To: scopes.Province},
	{From: scopes.TaskContract, Name: "task_contract_taker", To: scopes.Character},
	{From: scopes.TaskContract, Name: "task_contract_target", To: scopes.Character},
	{From: scopes.TaxSlot, Name: "tax_collector", To: scopes.Character},
	{From: scopes.Character, Name: "tax_slot", To: scopes.TaxSlot},
	{From: scopes.TaxSlot, Name: "tax_slot_liege", To: scopes.Character},
	{From: scopes.HolyOrder, Name: "title", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_capital_county", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_domicile", To: scopes.Domicile},
	{From: scopes.LandedTitle, Name: "title_province", To: scopes.Province},
	{From: scopes.TravelPlan, Name: "travel_leader", To: scopes.Character},
	{From: scopes.TravelPlan, Name: "travel_plan_activity", To: scopes.Activity},
	{From: scopes.TravelPlan, Name: "travel_plan_owner", To: scopes.Character},
	{From: scopes.Character, Name: "top_liege", To: scopes.Character},
	{From: scopes.Character, Name: "top_overlord", To: scopes.Character},
	{From: scopes.Character, Name: "top_suzerain", To: scopes.Character},
	{From: scopes.VassalObligationLevel, Name: "vassal_contract_type", To: scopes.VassalContract},
	{From: scopes.Character, Name: "vassal_tax_collector", To: scopes.Character},
	{From: scopes.CasusBelli, Name: "war", To: scopes.War},
	{From: scopes.Character, Name: "warden", To: scopes.Character},
	{From: scopes.None, Name: "yes", To: scopes.Bool},
}

// ck3Iterators each stand for the every_, any_, ordered_ and random_ forms.
var ck3Iterators = []Transition{
	{From: scopes.Character, Name: "acclaimed_knight", To: scopes.Character},
	{From: scopes.Character, Name: "accolade", To: scopes.Accolade},
	{From: scopes.None, Name: "accolade_type", To: scopes.AccoladeType},
	{From: scopes.Character, Name: "active_accolade", To: scopes.Accolade},
	{From: scopes.None, Name: "activity", To: scopes.Activity},
	{From: scopes.Activity, Name: "activity_phase_location", To: scopes.Province},
	{From: scopes.Activity, Name: "activity_phase_location_future", To: scopes.Province},
	{From: scopes.Activity, Name: "activity_phase_location_past", To: scopes.Province},
	{From: scopes.None, Name: "activity_type", To: scopes.ActivityType},
	{From: scopes.Character, Name: "alert_creatable_title", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "alert_usurpable_title", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "ally", To: scopes.Character},
	{From: scopes.Character, Name: "ancestor", To: scopes.Character},
	{From: scopes.Character, Name: "army", To: scopes.Army},
	{From: scopes.Province, Name: "army_in_location", To: scopes.Army},
	{From: scopes.None, Name: "artifact", To: scopes.Artifact},
	{From: scopes.Artifact, Name: "artifact_claimant", To: scopes.Character},
	{From: scopes.Artifact, Name: "artifact_house_claimant", To: scopes.DynastyHouse},
	{From: scopes.Activity, Name: "attending_character", To: scopes.Character},
	{From: scopes.None, Name: "barony", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "character_artifact", To: scopes.Artifact},
	{From: scopes.Character, Name: "character_epidemic", To: scopes.Epidemic},
	{From: scopes.Province, Name: "character_in_location", To: scopes.Character},
	{From: scopes.Character, Name: "character_struggle", To: scopes.Struggle},
	{From: scopes.Character, Name: "character_to_title_neighboring_and_across_water_county", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "character_to_title_neighboring_and_across_water_duchy", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "character_to_title_neighboring_and_across_water_empire", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "character_to_title_neighboring_and_across_water_kingdom", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "character_to_title_neighboring_county", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "character_to_title_neighboring_duchy", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "character_to_title_neighboring_empire", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "character_to_title_neighboring_kingdom", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "character_trait", To: scopes.Trait},
	{From: scopes.Character, Name: "character_war", To: scopes.War},
	{From: scopes.None, Name: "character_with_royal_court", To: scopes.Character},
	{From: scopes.Character, Name: "child", To: scopes.Character},
	{From: scopes.Character, Name: "claim", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "claimant", To: scopes.Character},
	{From: scopes.Character, Name: "claimed_artifact", To: scopes.Artifact},
	{From: scopes.Character, Name: "close_family_member", To: scopes.Character},
	{From: scopes.Character, Name: "close_or_extended_family_member", To: scopes.Character},
	{From: scopes.Combat, Name: "combat_side", To: scopes.CombatSide},
	{From: scopes.None, Name: "completed_legend", To: scopes.Legend},
	{From: scopes.Character, Name: "concubine", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "connected_county", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "consort", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "controlled_faith", To: scopes.Faith},
	{From: scopes.Character, Name: "councillor", To: scopes.Character},
	{From: scopes.None, Name: "county", To: scopes.LandedTitle},
	{From: scopes.None, Name: "county_in_region", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "county_province", To: scopes.Province},
	{From: scopes.LandedTitle, Name: "county_struggle", To: scopes.Struggle},
	{From: scopes.Character, Name: "court_position_employer", To: scopes.Character},
	{From: scopes.Character, Name: "court_position_holder", To: scopes.Character},
	{From: scopes.Character, Name: "courtier", To: scopes.Character},
	{From: scopes.Character, Name: "courtier_away", To: scopes.Character},
	{From: scopes.Character, Name: "courtier_or_guest", To: scopes.Character},
	{From: scopes.Culture, Name: "culture_county", To: scopes.LandedTitle},
	{From: scopes.Culture, Name: "culture_duchy", To: scopes.LandedTitle},
	{From: scopes.Culture, Name: "culture_empire", To: scopes.LandedTitle},
	{From: scopes.None, Name: "culture_global", To: scopes.Culture},
	{From: scopes.Culture, Name: "culture_kingdom", To: scopes.LandedTitle},
	{From: scopes.None, Name: "culture_pillar", To: scopes.CulturePillar},
	{From: scopes.None, Name: "culture_tradition", To: scopes.CultureTradition},
	{From: scopes.Character, Name: "de_jure_claim", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "de_jure_county", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "de_jure_county_holder", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "de_jure_top_liege", To: scopes.Character},
	{From: scopes.None, Name: "decision", To: scopes.Decision},
	{From: scopes.Faith, Name: "defensive_great_holy_wars", To: scopes.GreatHolyWar},
	{From: scopes.LandedTitle, Name: "dejure_vassal_title_holder", To: scopes.Character},
	{From: scopes.Character, Name: "diarchy_succession_character", To: scopes.Character},
	{From: scopes.Character, Name: "diplomacy_councillor", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "direct_de_facto_vassal_title", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "direct_de_jure_vassal_title", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "directly_owned_province", To: scopes.Province},
	{From: scopes.None, Name: "doctrine", To: scopes.Doctrine},
	{From: scopes.None, Name: "duchy", To: scopes.LandedTitle},
	{From: scopes.Dynasty, Name: "dynasty_member", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "election_candidate", To: scopes.Character},
	{From: scopes.Character, Name: "election_title", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "elector", To: scopes.Character},
	{From: scopes.None, Name: "empire", To: scopes.LandedTitle},
	{From: scopes.TravelPlan, Name: "entourage_character", To: scopes.Character},
	{From: scopes.None, Name: "epidemic", To: scopes.Epidemic},
	{From: scopes.None, Name: "epidemic_type", To: scopes.EpidemicType},
	{From: scopes.Character, Name: "equipped_character_artifact", To: scopes.Artifact},
	{From: scopes.Character, Name: "extended_family_member", To: scopes.Character},
	{From: scopes.Faction, Name: "faction_county_member", To: scopes.LandedTitle},
	{From: scopes.Faction, Name: "faction_member", To: scopes.Character},
	{From: scopes.Religion, Name: "faith", To: scopes.Faith},
	{From: scopes.Faith, Name: "faith_character", To: scopes.Character},
	{From: scopes.Faith, Name: "faith_holy_order", To: scopes.HolyOrder},
	{From: scopes.Faith, Name: "faith_playable_ruler", To: scopes.Character},
	{From: scopes.Faith, Name: "faith_ruler", To: scopes.Character},
	{From: scopes.Character, Name: "foreign_court_guest", To: scopes.Character},
	{From: scopes.Character, Name: "former_concubine", To: scopes.Character},
	{From: scopes.Character, Name: "former_concubinist", To: scopes.Character},
	{From: scopes.Character, Name: "former_spouse", To: scopes.Character},
	{From: scopes.TravelPlan, Name: "future_path_location", To: scopes.Province},
	{From: scopes.Character, Name: "general_councillor", To: scopes.Character},
	{From: scopes.None, Name: "geographical_region", To: scopes.GeographicalRegion},
	{From: scopes.Character, Name: "government_type", To: scopes.GovernmentType},
	{From: scopes.Activity, Name: "guest_subset", To: scopes.Character},
	{From: scopes.Activity, Name: "guest_subset_current_phase", To: scopes.Character},
	{From: scopes.Character, Name: "heir", To: scopes.Character},
	{From: scopes.Character, Name: "heir_title", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "heir_to_title", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "held_title", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "hired_mercenary", To: scopes.MercenaryCompany},
	{From: scopes.None, Name: "holding_type", To: scopes.HoldingType},
	{From: scopes.Faith, Name: "holy_site", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "home_court_hostage", To: scopes.Character},
	{From: scopes.Character, Name: "hooked_character", To: scopes.Character},
	{From: scopes.Character, Name: "hostile_raider", To: scopes.Character},
	{From: scopes.DynastyHouse, Name: "house_claimed_artifact", To: scopes.Artifact},
	{From: scopes.DynastyHouse, Name: "house_member", To: scopes.Character},
	{From: scopes.DynastyHouse, Name: "house_unity_member", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "in_de_facto_hierarchy", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "in_de_jure_hierarchy", To: scopes.LandedTitle},
	{From: scopes.None, Name: "in_global_list", To: scopes.All()},
	{From: scopes.None, Name: "in_list", To: scopes.All()},
	{From: scopes.None, Name: "in_local_list", To: scopes.All()},
	{From: scopes.None, Name: "independent_ruler", To: scopes.Character},
	{From: scopes.Epidemic, Name: "infected_province", To: scopes.Province},
	{From: scopes.None, Name: "inspiration", To: scopes.Inspiration},
	{From: scopes.None, Name: "inspired_character", To: scopes.Character},
	{From: scopes.Struggle, Name: "interloper_ruler", To: scopes.Character},
	{From: scopes.Character, Name: "intrigue_councillor", To: scopes.Character},
	{From: scopes.Character, Name: "invited_activity", To: scopes.Activity},
	{From: scopes.Activity, Name: "invited_character", To: scopes.Character},
	{From: scopes.Struggle, Name: "involved_county", To: scopes.LandedTitle},
	{From: scopes.Struggle, Name: "involved_ruler", To: scopes.Character},
	{From: scopes.Character | scopes.Artifact, Name: "killed_character", To: scopes.Character},
	{From: scopes.None, Name: "kingdom", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "knight", To: scopes.Character},
	{From: scopes.Character, Name: "known_secret", To: scopes.Secret},
	{From: scopes.Character, Name: "learning_councillor", To: scopes.Character},
	{From: scopes.HolyOrder, Name: "leased_title", To: scopes.LandedTitle},
	{From: scopes.None, Name: "legend", To: scopes.Legend},
	{From: scopes.Legend, Name: "legend_promoter", To: scopes.Character},
	{From: scopes.None, Name: "legend_type", To: scopes.LegendType},
	{From: scopes.Character, Name: "liege_or_above", To: scopes.Character},
	{From: scopes.None, Name: "living_character", To: scopes.Character},
	{From: scopes.Character, Name: "martial_councillor", To: scopes.Character},
	{From: scopes.None, Name: "mercenary_company", To: scopes.MercenaryCompany},
	{From: scopes.Character, Name: "memory", To: scopes.CharacterMemory},
	{From: scopes.CharacterMemory, Name: "memory_participant", To: scopes.Character},
	{From: scopes.Character, Name: "neighboring_and_across_water_realm_same_rank_owner", To: scopes.Character},
	{From: scopes.Character, Name: "neighboring_and_across_water_top_liege_realm", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "neighboring_and_across_water_top_liege_realm_owner", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "neighboring_county", To: scopes.LandedTitle},
	{From: scopes.Province, Name: "neighboring_province", To: scopes.Province},
	{From: scopes.Character, Name: "neighboring_realm_same_rank_owner", To: scopes.Character},
	{From: scopes.Character, Name: "neighboring_top_liege_realm", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "neighboring_top_liege_realm_owner", To: scopes.Character},
	{From: scopes.None, Name: "open_invite_activity", To: scopes.Activity},
	{From: scopes.Character, Name: "opposite_sex_spouse_candidate", To: scopes.Character},
	{From: scopes.Trait, Name: "opposite_trait", To: scopes.Trait},
	{From: scopes.Character, Name: "owned_story", To: scopes.StoryCycle},
	{From: scopes.Character, Name: "parent", To: scopes.Character},
	{From: scopes.Culture, Name: "parent_culture", To: scopes.Culture},
	{From: scopes.Culture, Name: "parent_culture_or_above", To: scopes.Culture},
	{From: scopes.LandedTitle, Name: "past_holder", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "past_holder_reversed", To: scopes.Character},
	{From: scopes.Character, Name: "patroned_holy_order", To: scopes.HolyOrder},
	{From: scopes.Character, Name: "personal_claimed_artifact", To: scopes.Artifact},
	{From: scopes.Character, Name: "pinned_character", To: scopes.Character},
	{From: scopes.Character, Name: "pinning_character", To: scopes.Character},
	{From: scopes.Character, Name: "played_character", To: scopes.Character},
	{From: scopes.None, Name: "player", To: scopes.Character},
	{From: scopes.Character, Name: "player_heir", To: scopes.Character},
	{From: scopes.GreatHolyWar, Name: "pledged_attacker", To: scopes.Character},
	{From: scopes.GreatHolyWar, Name: "pledged_defender", To: scopes.Character},
	{From: scopes.None, Name: "pool_character", To: scopes.Character},
	{From: scopes.Character, Name: "pool_guest", To: scopes.Character},
	{From: scopes.Character, Name: "potential_marriage_option", To: scopes.Character},
	{From: scopes.Character, Name: "powerful_vassal", To: scopes.Character},
	{From: scopes.Character, Name: "pretender_title", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "primary_war_enemy", To: scopes.Character},
	{From: scopes.Character, Name: "prisoner", To: scopes.Character},
	{From: scopes.None, Name: "province", To: scopes.Province},
	{From: scopes.Province, Name: "province_epidemic", To: scopes.Epidemic},
	{From: scopes.Province, Name: "province_legend", To: scopes.Legend},
	{From: scopes.Character, Name: "prowess_councillor", To: scopes.Character},
	{From: scopes.Character, Name: "raid_target", To: scopes.Character},
	{From: scopes.Character, Name: "realm_border_county", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "realm_county", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "realm_de_jure_duchy", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "realm_de_jure_empire", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "realm_de_jure_kingdom", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "realm_province", To: scopes.Province},
	{From: scopes.Character, Name: "relation", To: scopes.Character},
	{From: scopes.None, Name: "religion_global", To: scopes.Religion},
	{From: scopes.None, Name: "ruler", To: scopes.Character},
	{From: scopes.Character, Name: "same_sex_spouse_candidate", To: scopes.Character},
	{From: scopes.Character, Name: "scheme", To: scopes.Scheme},
	{From: scopes.Scheme, Name: "scheme_agent", To: scopes.Character},
	{From: scopes.Character, Name: "secret", To: scopes.Secret},
	{From: scopes.Secret, Name: "secret_knower", To: scopes.Character},
	{From: scopes.Secret, Name: "secret_participant", To: scopes.Character},
	{From: scopes.Character, Name: "sibling", To: scopes.Character},
	{From: scopes.CombatSide, Name: "side_commander", To: scopes.Character},
	{From: scopes.CombatSide, Name: "side_knight", To: scopes.Character},
	{From: scopes.None, Name: "special_building_province", To: scopes.Province},
	{From: scopes.Activity, Name: "special_guest", To: scopes.Character},
	{From: scopes.Character, Name: "sponsored_inspiration", To: scopes.Inspiration},
	{From: scopes.Character, Name: "spouse", To: scopes.Character},
	{From: scopes.Character, Name: "spouse_candidate", To: scopes.Character},
	{From: scopes.Legend, Name: "spread_province", To: scopes.Province},
	{From: scopes.Character, Name: "stewardship_councillor", To: scopes.Character},
	{From: scopes.Character, Name: "sub_realm_barony", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "sub_realm_county", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "sub_realm_duchy", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "sub_realm_empire", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "sub_realm_kingdom", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "sub_realm_title", To: scopes.LandedTitle},
	{From: scopes.CasusBelli, Name: "target_title", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "targeting_faction", To: scopes.Faction},
	{From: scopes.Character, Name: "targeting_scheme", To: scopes.Scheme},
	{From: scopes.Character, Name: "targeting_secret", To: scopes.Secret},
	{From: scopes.Character, Name: "tax_collector", To: scopes.Character},
	{From: scopes.Character, Name: "tax_collector_vassal", To: scopes.Character},
	{From: scopes.Character, Name: "tax_slot", To: scopes.TaxSlot},
	{From: scopes.TaxSlot, Name: "tax_slot_vassal", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "this_title_or_de_jure_above", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_heir", To: scopes.Character},
	{From: scopes.LandedTitle, Name: "title_joined_faction", To: scopes.Faction},
	{From: scopes.LandedTitle, Name: "title_to_title_neighboring_and_across_water_county", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_to_title_neighboring_and_across_water_duchy", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_to_title_neighboring_and_across_water_empire", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_to_title_neighboring_and_across_water_kingdom", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_to_title_neighboring_county", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_to_title_neighboring_duchy", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_to_title_neighboring_empire", To: scopes.LandedTitle},
	{From: scopes.LandedTitle, Name: "title_to_title_neighboring_kingdom", To: scopes.LandedTitle},
	{From: scopes.Character, Name: "top_realm_border_county", To: scopes.LandedTitle},
	{From: scopes.Culture, Name: "tradition", To: scopes.CultureTradition},
	{From: scopes.None, Name: "trait", To: scopes.Trait},
	{From: scopes.None, Name: "trait_in_category", To: scopes.Trait},
	{From: scopes.Character, Name: "traveling_family_member", To: scopes.Character},
	{From: scopes.Character, Name: "truce_holder", To: scopes.Character},
	{From: scopes.Character, Name: "truce_target", To: scopes.Character},
	{From: scopes.Character, Name: "unassigned_taxpayers", To: scopes.Character},
	{From: scopes.Character, Name: "unspent_known_secret", To: scopes.Secret},
	{From: scopes.Character, Name: "vassal", To: scopes.Character},
	{From: scopes.None, Name: "vassal_contract", To: scopes.VassalContract},
	{From: scopes.Character, Name: "vassal_or_below", To: scopes.Character},
	{From: scopes.TravelPlan, Name: "visited_location", To: scopes.Province},
	{From: scopes.Character, Name: "war_ally", To: scopes.Character},
	{From: scopes.War, Name: "war_attacker", To: scopes.Character},
	{From: scopes.War, Name: "war_defender", To: scopes.Character},
	{From: scopes.Character, Name: "war_enemy", To: scopes.Character},
	{From: scopes.War, Name: "war_participant", To: scopes.Character},
	{From: scopes.Character, Name: "warden_hostage", To: scopes.Character},
}
