package tables

import (
	"strings"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/scopes"
)

type TriggerKind int

const (
	TrBoolean TriggerKind = iota
	TrCompareValue
	TrCompareValueWarnEq
	TrSetValue
	TrCompareDate
	TrScope
	TrScopeOkThis
	TrItem
	TrScopeOrItem
	TrChoice
	TrCompareChoice
	TrBlock
	TrScopeList
	TrScopeCompare
	TrCompareToScope
	TrControl
	TrSpecial
	TrRemoved
	TrUncheckedValue
)

// Trigger describes how the value of a leaf trigger is validated.
// Which fields are meaningful depends on Kind.
type Trigger struct {
	Kind    TriggerKind
	Scopes  scopes.Set
	Item    item.Kind
	Choices []string
	// Fields of a TrBlock trigger. A name starting with `?` is optional,
	// `*` may repeat, `+` is required and may repeat.
	Fields []BlockField
	// Removed triggers carry the version and a hint.
	Version string
	Info    string
}

type BlockField struct {
	Name    string
	Trigger Trigger
}

// TriggerEntry is a trigger together with the scopes it may be used in.
type TriggerEntry struct {
	In      scopes.Set
	Trigger Trigger
	// Implied is set for families like has_relation_<relation>; the named
	// item must exist.
	Implied *ImpliedItem
}

type ImpliedItem struct {
	Kind item.Kind
	Name string
}

// ComparesValue reports whether t can take a comparator against a number,
// which also lets the trigger be used as a value target.
func (t Trigger) ComparesValue() bool {
	switch t.Kind {
	case TrCompareValue, TrCompareValueWarnEq, TrCompareDate, TrSetValue:
		return true
	}
	return false
}

type EffectKind int

const (
	EfYes EffectKind = iota
	EfBoolean
	EfInteger
	EfScriptValue
	EfNonNegativeValue
	EfScope
	EfScopeOkThis
	EfItem
	EfScopeOrItem
	EfTarget
	EfTargetValue
	EfItemTarget
	EfItemValue
	EfChoice
	EfDesc
	EfTimespan
	EfControl
	EfControlOrLabel
	EfRemoved
	EfUnchecked
	EfSpecial
)

// Effect describes how an effect's argument is validated.
type Effect struct {
	Kind    EffectKind
	Scopes  scopes.Set
	Item    item.Kind
	Choices []string
	// Key names the target field for Target, TargetValue and ItemTarget;
	// ValueKey the script value or item field.
	Key      string
	ValueKey string
	Version  string
	Info     string
}

type EffectEntry struct {
	In     scopes.Set
	Effect Effect
}

// Trigger looks up a leaf trigger, including the generated families
// (has_relation_<relation>, <lifestyle>_xp and so on).
func (t *Tables) Trigger(name string) (TriggerEntry, bool) {
	n := strings.ToLower(name)
	if e, ok := t.triggers[n]; ok {
		return e, true
	}
	for _, f := range triggerFamilies {
		var rest string
		var ok bool
		if f.prefix != "" {
			rest, ok = strings.CutPrefix(n, f.prefix)
		} else {
			rest, ok = strings.CutSuffix(n, f.suffix)
		}
		if ok && rest != "" {
			return TriggerEntry{In: f.in, Trigger: f.trigger, Implied: &ImpliedItem{Kind: f.kind, Name: rest}}, true
		}
	}
	return TriggerEntry{}, false
}

// CompareValueTrigger returns the input scopes of a value-producing trigger.
func (t *Tables) CompareValueTrigger(name string) (scopes.Set, bool) {
	e, ok := t.Trigger(name)
	if !ok || !e.Trigger.ComparesValue() {
		return scopes.Empty, false
	}
	return e.In, true
}

func (t *Tables) Effect(name string) (EffectEntry, bool) {
	e, ok := t.effects[strings.ToLower(name)]
	return e, ok
}

type triggerFamily struct {
	prefix, suffix string
	in             scopes.Set
	trigger        Trigger
	kind           item.Kind
}

// Checked in order; `_perk_points` must come before `_perks`-style suffixes.
var triggerFamilies = []triggerFamily{
	{prefix: "has_relation_", in: scopes.Character, trigger: Trigger{Kind: TrScope, Scopes: scopes.Character}, kind: item.Relation},
	{prefix: "has_secret_relation_", in: scopes.Character, trigger: Trigger{Kind: TrScope, Scopes: scopes.Character}, kind: item.Relation},
	{prefix: "num_of_relation_", in: scopes.Character, trigger: Trigger{Kind: TrCompareValue}, kind: item.Relation},
	{prefix: "perks_in_", in: scopes.Character, trigger: Trigger{Kind: TrCompareValue}, kind: item.Lifestyle},
	{suffix: "_perk_points", in: scopes.Character, trigger: Trigger{Kind: TrCompareValue}, kind: item.Lifestyle},
	{suffix: "_unlockable_perks", in: scopes.Character, trigger: Trigger{Kind: TrCompareValue}, kind: item.Lifestyle},
	{suffix: "_track_perks", in: scopes.Dynasty, trigger: Trigger{Kind: TrCompareValue}, kind: item.DynastyLegacy},
	{suffix: "_perks", in: scopes.Character, trigger: Trigger{Kind: TrCompareValue}, kind: item.Lifestyle},
	{suffix: "_xp", in: scopes.Character, trigger: Trigger{Kind: TrCompareValue}, kind: item.Lifestyle},
}
