package scopectx

import (
	"fmt"
	"strings"

	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
)

// ReasonKind says how a scope's type was learned.
type ReasonKind uint8

const (
	// ReasonToken points at the script token that narrowed the scope.
	ReasonToken ReasonKind = iota
	// ReasonName means the type was guessed from a named scope's name.
	ReasonName
	// ReasonBuiltin means the game engine supplies the scope.
	ReasonBuiltin
)

// Reason records why a scope is believed to have its type. It is only used
// when reporting.
type Reason struct {
	Kind  ReasonKind
	Token script.Token
}

func TokenReason(t script.Token) Reason   { return Reason{Kind: ReasonToken, Token: t} }
func NameReason(t script.Token) Reason    { return Reason{Kind: ReasonName, Token: t} }
func BuiltinReason(t script.Token) Reason { return Reason{Kind: ReasonBuiltin, Token: t} }

// Msg is the label used on the secondary location of a mismatch.
func (r Reason) Msg() string {
	switch r.Kind {
	case ReasonName:
		return "deduced from the scope's name"
	case ReasonBuiltin:
		return "supplied by the game engine"
	}
	return fmt.Sprintf("deduced from `%s` here", r.Token.Text)
}

type entryKind uint8

const (
	// kindBack refers n levels down the prev chain; 0 is this, 1 is prev.
	kindBack entryKind = iota
	kindRoot
	kindScope
	// kindNamed takes its value from named[idx].
	kindNamed
)

type entry struct {
	kind   entryKind
	back   int
	idx    int
	scopes scopes.Set
	reason Reason
}

func backEntry(n int) entry { return entry{kind: kindBack, back: n} }
func rootEntry() entry      { return entry{kind: kindRoot} }

func scopeEntry(s scopes.Set, r Reason) entry {
	return entry{kind: kindScope, scopes: s, reason: r}
}

func namedEntry(idx int, r Reason) entry {
	return entry{kind: kindNamed, idx: idx, reason: r}
}

// deduce builds the entry for a `scope:name` token seen for the first time.
func deduce(t script.Token) entry {
	if s, ok := scopeFromName(t.Text); ok {
		return scopeEntry(s, NameReason(t))
	}
	return scopeEntry(scopes.All(), TokenReason(t))
}

// level is one step of the prev chain.
type level struct {
	prev *level
	this entry
}

func (l *level) clone() *level {
	if l == nil {
		return nil
	}
	return &level{prev: l.prev.clone(), this: l.this}
}

// scopeFromName guesses a scope's type from names obvious enough that no
// mod would use them for anything else.
func scopeFromName(name string) (scopes.Set, bool) {
	name, ok := strings.CutPrefix(name, "scope:")
	if !ok {
		return scopes.Empty, false
	}
	switch name {
	case "accolade":
		return scopes.Accolade, true
	case "accolade_type":
		return scopes.AccoladeType, true
	case "activity":
		return scopes.Activity, true
	case "actor", "recipient", "secondary_actor", "secondary_recipient",
		"mother", "father", "real_father", "child", "councillor", "liege",
		"courtier", "guest", "host":
		return scopes.Character, true
	case "army":
		return scopes.Army, true
	case "artifact":
		return scopes.Artifact, true
	case "barony", "county", "title", "landed_title":
		return scopes.LandedTitle, true
	case "combat_side":
		return scopes.CombatSide, true
	case "council_task":
		return scopes.CouncilTask, true
	case "culture":
		return scopes.Culture, true
	case "faction":
		return scopes.Faction, true
	case "faith":
		return scopes.Faith, true
	case "province":
		return scopes.Province, true
	case "scheme":
		return scopes.Scheme, true
	case "struggle":
		return scopes.Struggle, true
	case "story":
		return scopes.StoryCycle, true
	case "travel_plan":
		return scopes.TravelPlan, true
	case "war":
		return scopes.War, true
	}
	return scopes.Empty, false
}
