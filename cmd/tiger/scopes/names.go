package scopes

import (
	"fmt"
	"math/bits"
	"strings"
)

// snakeNames holds the script names of every kind, indexed by bit position.
var snakeNames = [...]string{
	"none", "value", "bool", "flag", "character", "landed_title", "activity",
	"secret", "province", "scheme", "combat", "combat_side",
	"title_and_vassal_change", "faith", "great_holy_war", "religion", "war",
	"story_cycle", "casus_belli", "dynasty", "dynasty_house", "faction",
	"culture", "army", "holy_order", "council_task", "mercenary_company",
	"artifact", "inspiration", "struggle", "character_memory", "travel_plan",
	"accolade", "accolade_type", "decision", "doctrine", "activity_type",
	"culture_tradition", "culture_pillar", "government_type", "holding_type",
	"trait", "tax_slot", "vassal_contract", "vassal_contract_obligation_level",
	"epidemic_type", "epidemic", "legend_type", "legend", "geographical_region",
	"domicile", "agent_slot", "task_contract", "task_contract_type", "regiment",
	"casus_belli_type",
}

var displayNames [len(snakeNames)]string

var byName map[string]Set

func init() {
	if Set(1)<<len(snakeNames) != sentinel {
		panic("scopes: name table out of sync with kinds")
	}
	byName = make(map[string]Set, len(snakeNames)+2)
	for i, n := range snakeNames {
		byName[n] = Set(1) << i
		displayNames[i] = strings.ReplaceAll(n, "_", " ")
	}
	displayNames[bits.TrailingZeros64(uint64(VassalObligationLevel))] = "vassal obligation level"
	// The game's own short forms.
	byName["ghw"] = GreatHolyWar
	byName["story"] = StoryCycle
}

// FromName looks up a single scope kind by name.
// Case, spaces and dashes are normalized, so "Landed Title" and "landed-title" work.
func FromName(name string) (Set, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "_", "-", "_").Replace(n)
	s, ok := byName[n]
	return s, ok
}

// Parse reads a `|`-separated list of scope names, or "all".
func Parse(text string) (Set, error) {
	if strings.EqualFold(strings.TrimSpace(text), "all") {
		return All(), nil
	}
	var s Set
	for _, part := range strings.Split(text, "|") {
		one, ok := FromName(part)
		if !ok {
			return Empty, fmt.Errorf("%w: %q", ErrUnknownScope, strings.TrimSpace(part))
		}
		s |= one
	}
	return s, nil
}

// SnakeName returns the script name of a single-kind set, or "" for anything else.
func (s Set) SnakeName() string {
	if s.Count() != 1 {
		return ""
	}
	return snakeNames[bits.TrailingZeros64(uint64(s))]
}

// Names returns the script names of every kind in s.
func (s Set) Names() []string {
	var out []string
	s.Each(func(one Set) { out = append(out, one.SnakeName()) })
	return out
}
