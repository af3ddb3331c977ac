// Package tables holds the scope transition, trigger and effect tables that
// drive validation. A Tables value is built once and then only read.
package tables

import (
	"slices"
	"strings"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/scopes"
)

// ArgKind says how the argument of a keyed transition is checked.
type ArgKind int

const (
	ArgUnchecked ArgKind = iota
	ArgItem
	ArgScope
	ArgScopeOrItem
)

type Argument struct {
	Kind   ArgKind
	Item   item.Kind
	Scopes scopes.Set
}

func Unchecked() Argument            { return Argument{Kind: ArgUnchecked} }
func ItemArg(k item.Kind) Argument   { return Argument{Kind: ArgItem, Item: k} }
func ScopeArg(s scopes.Set) Argument { return Argument{Kind: ArgScope, Scopes: s} }
func ScopeOrItemArg(s scopes.Set, k item.Kind) Argument {
	return Argument{Kind: ArgScopeOrItem, Scopes: s, Item: k}
}

// Transition is a field or iterator step: from the input scopes, name leads to To.
type Transition struct {
	From scopes.Set
	Name string
	To   scopes.Set
}

// Keyed is a `prefix:arg` transition.
type Keyed struct {
	From   scopes.Set
	Prefix string
	To     scopes.Set
	Arg    Argument
}

// Removed records a name the game no longer supports.
type Removed struct {
	Name    string
	Version string
	Hint    string
}

// Complex is a trigger usable as `name(arg)` in a chain, such as `opinion(liege)`.
type Complex struct {
	In  scopes.Set
	Arg Argument
}

type Tables struct {
	fields           map[string][]Transition
	keyed            map[string]Keyed
	iterators        map[string]Transition
	triggers         map[string]TriggerEntry
	effects          map[string]EffectEntry
	complex          map[string]Complex
	removedFields    map[string]Removed
	removedIterators map[string]Removed
	prefixHints      []prefixHint
}

// New returns empty tables. Most callers want CK3.
func New() *Tables {
	return &Tables{
		fields:           make(map[string][]Transition),
		keyed:            make(map[string]Keyed),
		iterators:        make(map[string]Transition),
		triggers:         make(map[string]TriggerEntry),
		effects:          make(map[string]EffectEntry),
		complex:          make(map[string]Complex),
		removedFields:    make(map[string]Removed),
		removedIterators: make(map[string]Removed),
	}
}

// AddField registers an overload of a field transition.
func (t *Tables) AddField(from scopes.Set, name string, to scopes.Set) {
	n := strings.ToLower(name)
	t.fields[n] = append(t.fields[n], Transition{From: from, Name: n, To: to})
}

func (t *Tables) AddKeyed(k Keyed) {
	k.Prefix = strings.ToLower(k.Prefix)
	t.keyed[k.Prefix] = k
}

func (t *Tables) AddIterator(from scopes.Set, name string, to scopes.Set) {
	n := strings.ToLower(name)
	t.iterators[n] = Transition{From: from, Name: n, To: to}
}

func (t *Tables) AddTrigger(in scopes.Set, name string, tr Trigger) {
	n := strings.ToLower(name)
	t.triggers[n] = TriggerEntry{In: in, Trigger: tr}
}

func (t *Tables) AddEffect(in scopes.Set, name string, ef Effect) {
	n := strings.ToLower(name)
	t.effects[n] = EffectEntry{In: in, Effect: ef}
}

// FieldTransition returns every overload registered for name.
func (t *Tables) FieldTransition(name string) []Transition {
	return t.fields[strings.ToLower(name)]
}

// PickOverload chooses the overload of name that applies to current: the first
// whose input intersects current or is None. If none does, the first overload
// is returned so the caller can report the mismatch.
func (t *Tables) PickOverload(name string, current scopes.Set) (Transition, bool) {
	all := t.FieldTransition(name)
	if len(all) == 0 {
		return Transition{}, false
	}
	for _, tr := range all {
		if tr.From == scopes.None || tr.From.Intersects(current) {
			return tr, true
		}
	}
	return all[0], true
}

func (t *Tables) KeyedTransition(prefix string) (Keyed, bool) {
	k, ok := t.keyed[strings.ToLower(prefix)]
	return k, ok
}

func (t *Tables) Iterator(name string) (Transition, bool) {
	tr, ok := t.iterators[strings.ToLower(name)]
	return tr, ok
}

func (t *Tables) RemovedField(name string) (Removed, bool) {
	r, ok := t.removedFields[strings.ToLower(name)]
	return r, ok
}

func (t *Tables) RemovedIterator(name string) (Removed, bool) {
	r, ok := t.removedIterators[strings.ToLower(name)]
	return r, ok
}

func (t *Tables) ComplexTrigger(name string) (Complex, bool) {
	c, ok := t.complex[strings.ToLower(name)]
	return c, ok
}

// Fields lists every field transition, sorted by name.
func (t *Tables) Fields() []Transition {
	var out []Transition
	for _, trs := range t.fields {
		out = append(out, trs...)
	}
	slices.SortStableFunc(out, func(a, b Transition) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func (t *Tables) Iterators() []Transition {
	out := make([]Transition, 0, len(t.iterators))
	for _, tr := range t.iterators {
		out = append(out, tr)
	}
	slices.SortFunc(out, func(a, b Transition) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func (t *Tables) KeyedAll() []Keyed {
	out := make([]Keyed, 0, len(t.keyed))
	for _, k := range t.keyed {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b Keyed) int { return strings.Compare(a.Prefix, b.Prefix) })
	return out
}

// Names returns every name a chain part can use: fields, keyed prefixes and iterators.
// It feeds "did you mean" suggestions.
func (t *Tables) Names() []string {
	out := make([]string, 0, len(t.fields)+len(t.keyed))
	for n := range t.fields {
		out = append(out, n)
	}
	for n := range t.keyed {
		out = append(out, n+":")
	}
	slices.Sort(out)
	return out
}

// TriggerNames and EffectNames are sorted, for suggestions and listings.
func (t *Tables) TriggerNames() []string {
	out := make([]string, 0, len(t.triggers))
	for n := range t.triggers {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func (t *Tables) EffectNames() []string {
	out := make([]string, 0, len(t.effects))
	for n := range t.effects {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// ItemChecker answers whether a database item exists.
type ItemChecker interface {
	ItemExists(kind item.Kind, name string) bool
}

type prefixHint struct {
	scope  scopes.Set
	kind   item.Kind
	prefix string
}

// NeedsPrefix suggests the keyed prefix for a bare item name used where a
// scope of kind expected was needed, like `faith` for `catholic`. It returns "" when
// there is nothing to suggest.
func (t *Tables) NeedsPrefix(arg string, items ItemChecker, expected scopes.Set) string {
	if expected == scopes.Flag {
		return "flag"
	}
	for _, h := range t.prefixHints {
		if expected == h.scope && items.ItemExists(h.kind, arg) {
			return h.prefix
		}
	}
	return ""
}
