package scopes

import (
	"math/bits"
	"strings"
)

// Set is a set of scope kinds: the possible run-time entity types a script
// expression can evaluate to. The zero value is the empty set.
type Set uint64

// The pseudo-scopes come first. None means "no scope at all", which is not the
// same as the empty set.
const (
	None Set = 1 << iota
	Value
	Bool
	Flag
	Character
	LandedTitle
	Activity
	Secret
	Province
	Scheme
	Combat
	CombatSide
	TitleAndVassalChange
	Faith
	GreatHolyWar
	Religion
	War
	StoryCycle
	CasusBelli
	Dynasty
	DynastyHouse
	Faction
	Culture
	Army
	HolyOrder
	CouncilTask
	MercenaryCompany
	Artifact
	Inspiration
	Struggle
	CharacterMemory
	TravelPlan
	Accolade
	AccoladeType
	Decision
	Doctrine
	ActivityType
	CultureTradition
	CulturePillar
	GovernmentType
	HoldingType
	Trait
	TaxSlot
	VassalContract
	VassalObligationLevel
	EpidemicType
	Epidemic
	LegendType
	Legend
	GeographicalRegion
	Domicile
	AgentSlot
	TaskContract
	TaskContractType
	Regiment
	CasusBelliType

	sentinel
)

// Empty is the set containing no scope kinds.
const Empty Set = 0

const all = sentinel - 1

// All returns the union of every scope kind, pseudo-scopes included.
func All() Set { return all }

// Primitive returns the value-like pseudo-scopes.
func Primitive() Set { return Value | Bool | Flag }

// NonPrimitive returns every real entity kind.
func NonPrimitive() Set { return all &^ (None | Value | Bool | Flag) }

func (s Set) Union(o Set) Set     { return s | o }
func (s Set) Intersect(o Set) Set { return s & o }
func (s Set) Without(o Set) Set   { return s &^ o }
func (s Set) IsEmpty() bool       { return s == 0 }

// Contains reports whether every kind in o is also in s.
func (s Set) Contains(o Set) bool { return s&o == o }

// Intersects reports whether s and o share at least one kind.
func (s Set) Intersects(o Set) bool { return s&o != 0 }

// Count returns the number of kinds in s.
func (s Set) Count() int { return bits.OnesCount64(uint64(s)) }

// Each calls f for every single-kind member of s, lowest bit first.
func (s Set) Each(f func(Set)) {
	for v := uint64(s & all); v != 0; v &= v - 1 {
		f(Set(v & -v))
	}
}

// String renders s for diagnostics, e.g. "character or landed title".
func (s Set) String() string {
	if s == all {
		return "any scope"
	}
	if s == NonPrimitive() {
		return "any non-primitive scope"
	}
	if s.IsEmpty() {
		return "no scope"
	}
	var names []string
	s.Each(func(one Set) {
		names = append(names, displayNames[bits.TrailingZeros64(uint64(one))])
	})
	return JoinChoices(names, "or")
}

// JoinChoices joins words as "a", "a or b", "a, b, or c".
func JoinChoices(words []string, conj string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conj + " " + words[1]
	}
	return strings.Join(words[:len(words)-1], ", ") + ", " + conj + " " + words[len(words)-1]
}
