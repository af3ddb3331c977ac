// Package item enumerates the kinds of named database items a script can refer to.
package item

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown item kind")

type Kind int

const (
	Accolade Kind = iota
	AccoladeType
	ActivityType
	Artifact
	Building
	CasusBelli
	Character
	CouncilPosition
	CourtPosition
	Culture
	CulturePillar
	CultureTradition
	CustomLocalization
	Decision
	Define
	Doctrine
	Dynasty
	DynastyLegacy
	Epidemic
	EpidemicType
	Event
	Faction
	Faith
	Flag
	GameConcept
	GeneCategory
	GeographicalRegion
	GovernmentType
	HoldingType
	Hook
	House
	Innovation
	Language
	Law
	LegendType
	Lifestyle
	Localization
	MenAtArms
	Modifier
	Nickname
	OpinionModifier
	Perk
	Province
	Relation
	Religion
	Scheme
	Secret
	Struggle
	TaskContractType
	Terrain
	Title
	Trait
	VassalContract
	VassalStance

	kindCount
)

var names = [...]string{
	"accolade", "accolade_type", "activity_type", "artifact", "building",
	"casus_belli", "character", "council_position", "court_position",
	"culture", "culture_pillar", "culture_tradition", "custom_localization",
	"decision", "define",
	"doctrine", "dynasty", "dynasty_legacy", "epidemic", "epidemic_type",
	"event", "faction", "faith", "flag", "game_concept", "gene_category",
	"geographical_region", "government_type", "holding_type", "hook", "house",
	"innovation", "language", "law", "legend_type", "lifestyle",
	"localization", "men_at_arms", "modifier", "nickname", "opinion_modifier",
	"perk", "province", "relation", "religion", "scheme", "secret",
	"struggle", "task_contract_type", "terrain", "title", "trait",
	"vassal_contract", "vassal_stance",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("item(%d)", int(k))
	}
	return names[k]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(names))
	for i := range names {
		out[i] = Kind(i)
	}
	return out
}

func FromName(s string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
