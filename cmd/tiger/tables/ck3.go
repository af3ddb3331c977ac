package tables

import (
	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/scopes"
)

// CK3 builds the Crusader Kings III tables. Each call returns a fresh value,
// so overlays applied to one do not leak into another.
func CK3() *Tables {
	t := New()
	for _, tr := range ck3Fields {
		t.AddField(tr.From, tr.Name, tr.To)
	}
	for _, tr := range ck3Iterators {
		t.AddIterator(tr.From, tr.Name, tr.To)
	}
	for _, k := range ck3Keyed {
		t.AddKeyed(k)
	}
	for _, r := range ck3RemovedFields {
		t.removedFields[r.Name] = r
	}
	for _, r := range ck3RemovedIterators {
		t.removedIterators[r.Name] = r
	}
	for _, e := range ck3Triggers {
		t.AddTrigger(e.in, e.name, e.trigger)
	}
	for _, e := range ck3Effects {
		t.AddEffect(e.in, e.name, e.effect)
	}
	for name, c := range ck3Complex {
		t.complex[name] = c
	}
	t.prefixHints = ck3PrefixHints
	return t
}

var ck3Keyed = []Keyed{
	{From: scopes.None, Prefix: "accolade_type", To: scopes.AccoladeType, Arg: ItemArg(item.AccoladeType)},
	{From: scopes.None, Prefix: "activity_type", To: scopes.ActivityType, Arg: ItemArg(item.ActivityType)},
	{From: scopes.Character, Prefix: "aptitude", To: scopes.Value, Arg: ItemArg(item.CourtPosition)},
	{From: scopes.None, Prefix: "array_define", To: scopes.Value, Arg: Unchecked()},
	{From: scopes.None, Prefix: "casus_belli_type", To: scopes.CasusBelliType, Arg: ItemArg(item.CasusBelli)},
	{From: scopes.None, Prefix: "character", To: scopes.Character, Arg: ItemArg(item.Character)},
	{From: scopes.Character, Prefix: "council_task", To: scopes.CouncilTask, Arg: ItemArg(item.CouncilPosition)},
	{From: scopes.Character, Prefix: "court_position", To: scopes.Character, Arg: ItemArg(item.CourtPosition)},
	{From: scopes.Character, Prefix: "cp", To: scopes.Character, Arg: ItemArg(item.CouncilPosition)},
	{From: scopes.None, Prefix: "culture", To: scopes.Culture, Arg: ItemArg(item.Culture)},
	{From: scopes.None, Prefix: "culture_pillar", To: scopes.CulturePillar, Arg: ItemArg(item.CulturePillar)},
	{From: scopes.None, Prefix: "culture_tradition", To: scopes.CultureTradition, Arg: ItemArg(item.CultureTradition)},
	{From: scopes.Character, Prefix: "dead_var", To: scopes.All(), Arg: Unchecked()},
	{From: scopes.None, Prefix: "decision", To: scopes.Decision, Arg: ItemArg(item.Decision)},
	{From: scopes.None, Prefix: "define", To: scopes.Value, Arg: Unchecked()},
	{From: scopes.None, Prefix: "doctrine", To: scopes.Doctrine, Arg: ItemArg(item.Doctrine)},
	{From: scopes.None, Prefix: "dynasty", To: scopes.Dynasty, Arg: ItemArg(item.Dynasty)},
	{From: scopes.None, Prefix: "epidemic_type", To: scopes.EpidemicType, Arg: ItemArg(item.EpidemicType)},
	{From: scopes.None, Prefix: "event_id", To: scopes.Flag, Arg: ItemArg(item.Event)},
	{From: scopes.None, Prefix: "faith", To: scopes.Faith, Arg: ItemArg(item.Faith)},
	{From: scopes.None, Prefix: "flag", To: scopes.Flag, Arg: Unchecked()},
	{From: scopes.None, Prefix: "geographical_region", To: scopes.GeographicalRegion, Arg: ItemArg(item.GeographicalRegion)},
	{From: scopes.None, Prefix: "global_var", To: scopes.All(), Arg: Unchecked()},
	{From: scopes.None, Prefix: "government_type", To: scopes.GovernmentType, Arg: ItemArg(item.GovernmentType)},
	{From: scopes.None, Prefix: "holding_type", To: scopes.HoldingType, Arg: ItemArg(item.HoldingType)},
	{From: scopes.None, Prefix: "house", To: scopes.DynastyHouse, Arg: ItemArg(item.House)},
	{From: scopes.None, Prefix: "legend_type", To: scopes.LegendType, Arg: ItemArg(item.LegendType)},
	{From: scopes.None, Prefix: "list_size", To: scopes.Value, Arg: Unchecked()},
	{From: scopes.None, Prefix: "local_var", To: scopes.All(), Arg: Unchecked()},
	{From: scopes.Character, Prefix: "number_maa_regiments_of_type", To: scopes.Value, Arg: ItemArg(item.MenAtArms)},
	{From: scopes.Character, Prefix: "number_maa_soldiers_of_type", To: scopes.Value, Arg: ItemArg(item.MenAtArms)},
	{From: scopes.CharacterMemory, Prefix: "memory_participant", To: scopes.Character, Arg: Unchecked()},
	{From: scopes.None, Prefix: "province", To: scopes.Province, Arg: ItemArg(item.Province)},
	{From: scopes.None, Prefix: "religion", To: scopes.Religion, Arg: ItemArg(item.Religion)},
	{From: scopes.None, Prefix: "scope", To: scopes.All(), Arg: Unchecked()},
	{From: scopes.None, Prefix: "struggle", To: scopes.Struggle, Arg: ItemArg(item.Struggle)},
	{From: scopes.None, Prefix: "task_contract_type", To: scopes.TaskContractType, Arg: ItemArg(item.TaskContractType)},
	{From: scopes.None, Prefix: "title", To: scopes.LandedTitle, Arg: ItemArg(item.Title)},
	{From: scopes.None, Prefix: "trait", To: scopes.Trait, Arg: ItemArg(item.Trait)},
	{From: scopes.All(), Prefix: "var", To: scopes.All(), Arg: Unchecked()},
	{From: scopes.None, Prefix: "vassal_contract", To: scopes.VassalContract, Arg: ItemArg(item.VassalContract)},
}

var ck3RemovedFields = []Removed{
	{Name: "activity", Version: "1.9"},
	{Name: "activity_owner", Version: "1.9", Hint: "replaced by `activity_host`"},
	{Name: "activity_province", Version: "1.9", Hint: "replaced by `activity_location`"},
	{Name: "scheme_target", Version: "1.13", Hint: "replaced by `scheme_target_character`"},
}

var ck3RemovedIterators = []Removed{
	{Name: "activity_declined", Version: "1.9"},
	{Name: "activity_invited", Version: "1.9"},
	{Name: "participant", Version: "1.9"},
}

var ck3Complex = map[string]Complex{
	"ai_values_divergence":  {In: scopes.Character, Arg: ScopeArg(scopes.Character)},
	"aptitude":              {In: scopes.Character, Arg: ItemArg(item.CourtPosition)},
	"faith_hostility_level": {In: scopes.Faith, Arg: ScopeArg(scopes.Faith)},
	"num_of_relation":       {In: scopes.Character, Arg: ItemArg(item.Relation)},
	"opinion":               {In: scopes.Character, Arg: ScopeArg(scopes.Character)},
	"reverse_opinion":       {In: scopes.Character, Arg: ScopeArg(scopes.Character)},
}

var ck3PrefixHints = []prefixHint{
	{scopes.AccoladeType, item.AccoladeType, "accolade_type"},
	{scopes.ActivityType, item.ActivityType, "activity_type"},
	{scopes.Character, item.Character, "character"},
	{scopes.Culture, item.Culture, "culture"},
	{scopes.CulturePillar, item.CulturePillar, "culture_pillar"},
	{scopes.CultureTradition, item.CultureTradition, "culture_tradition"},
	{scopes.Decision, item.Decision, "decision"},
	{scopes.Doctrine, item.Doctrine, "doctrine"},
	{scopes.Dynasty, item.Dynasty, "dynasty"},
	{scopes.EpidemicType, item.EpidemicType, "epidemic_type"},
	{scopes.Faith, item.Faith, "faith"},
	{scopes.GeographicalRegion, item.GeographicalRegion, "geographical_region"},
	{scopes.GovernmentType, item.GovernmentType, "government_type"},
	{scopes.HoldingType, item.HoldingType, "holding_type"},
	{scopes.DynastyHouse, item.House, "house"},
	{scopes.LegendType, item.LegendType, "legend_type"},
	{scopes.Province, item.Province, "province"},
	{scopes.Religion, item.Religion, "religion"},
	{scopes.Struggle, item.Struggle, "struggle"},
	{scopes.LandedTitle, item.Title, "title"},
	{scopes.VassalContract, item.VassalContract, "vassal_contract"},
}
