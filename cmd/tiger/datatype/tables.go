package datatype

import (
	"slices"
	"strings"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/scopes"
)

// Entry is one promote or function: what it takes and what it returns.
type Entry struct {
	Args   Args
	Return Datatype
}

type typedEntry struct {
	in Datatype
	Entry
}

// Tables holds the datafunction tables of one game. They are read-only
// after construction.
type Tables struct {
	globalPromotes  map[string]Entry
	globalFunctions map[string]Entry
	promotes        map[string][]typedEntry
	functions       map[string][]typedEntry

	// lower maps lowercased names to their real spelling, for suggestions.
	lower map[string]string
	names []string

	scopeOf    map[Datatype]scopes.Set
	fromScopes map[scopes.Set]Datatype
}

func NewTables() *Tables {
	return &Tables{
		globalPromotes:  map[string]Entry{},
		globalFunctions: map[string]Entry{},
		promotes:        map[string][]typedEntry{},
		functions:       map[string][]typedEntry{},
		lower:           map[string]string{},
		scopeOf:         map[Datatype]scopes.Set{},
		fromScopes:      map[scopes.Set]Datatype{},
	}
}

func (t *Tables) addName(name string) {
	if _, ok := t.lower[strings.ToLower(name)]; !ok {
		t.lower[strings.ToLower(name)] = name
		t.names = append(t.names, name)
	}
}

func (t *Tables) AddGlobalPromote(name string, args Args, ret Datatype) {
	t.globalPromotes[name] = Entry{args, ret}
	t.addName(name)
}

func (t *Tables) AddGlobalFunction(name string, args Args, ret Datatype) {
	t.globalFunctions[name] = Entry{args, ret}
	t.addName(name)
}

func (t *Tables) AddPromote(in Datatype, name string, args Args, ret Datatype) {
	t.promotes[name] = append(t.promotes[name], typedEntry{in, Entry{args, ret}})
	t.addName(name)
}

func (t *Tables) AddFunction(in Datatype, name string, args Args, ret Datatype) {
	t.functions[name] = append(t.functions[name], typedEntry{in, Entry{args, ret}})
	t.addName(name)
}

// MapScope records that dt and s stand for the same kind of object.
func (t *Tables) MapScope(dt Datatype, s scopes.Set) {
	t.scopeOf[dt] = s
	t.fromScopes[s] = dt
}

// ScopeOf returns the scope type matching dt, if there is one.
func (t *Tables) ScopeOf(dt Datatype) (scopes.Set, bool) {
	s, ok := t.scopeOf[dt]
	return s, ok
}

// FromScopes returns the datatype matching s, or Unknown. Only a set
// narrowed down to one scope type can match.
func (t *Tables) FromScopes(s scopes.Set) Datatype {
	if dt, ok := t.fromScopes[s]; ok {
		return dt
	}
	return Unknown
}

// Names lists every promote and function name, in insertion order.
func (t *Tables) Names() []string { return slices.Clone(t.names) }

type result int

const (
	notFound result = iota
	wrongType
	found
)

func (t *Tables) globalPromote(name string) (Entry, bool) {
	if e, ok := t.globalPromotes[name]; ok {
		return e, true
	}
	// Datatypes can be used on their own, taking their value from the gui
	// context.
	if dt, ok := Parse(name); ok {
		return Entry{NoArgs, dt}, true
	}
	return Entry{}, false
}

func (t *Tables) globalFunction(name string) (Entry, bool) {
	e, ok := t.globalFunctions[name]
	return e, ok
}

func (t *Tables) promote(name string, in Datatype) (Entry, result) {
	return lookupTyped(t.promotes[name], in)
}

func (t *Tables) function(name string, in Datatype) (Entry, result) {
	return lookupTyped(t.functions[name], in)
}

// lookupTyped finds the overload for in. With an Unknown input, all
// overloads are merged: a return type or argument list they disagree on
// becomes Unknown.
func lookupTyped(list []typedEntry, in Datatype) (Entry, result) {
	if len(list) == 0 {
		return Entry{}, notFound
	}
	if in != Unknown {
		for _, te := range list {
			if te.in == in {
				return te.Entry, found
			}
		}
		return Entry{}, wrongType
	}
	merged := list[0].Entry
	for _, te := range list[1:] {
		if te.Return != merged.Return {
			merged.Return = Unknown
		}
		if !te.Args.equal(merged.Args) {
			merged.Args = AnyArgs
		}
	}
	return merged, found
}

// alternative suggests a differently-cased name that does exist.
func (t *Tables) alternative(name string) (string, bool) {
	alt, ok := t.lower[strings.ToLower(name)]
	if ok && alt != name {
		return alt, true
	}
	return "", false
}

// CK3 builds the Crusader Kings III datafunction tables.
func CK3() *Tables {
	t := NewTables()
	for _, m := range ck3ScopeMap {
		t.MapScope(m.dt, m.s)
	}
	for _, g := range ck3GlobalPromotes {
		t.AddGlobalPromote(g.name, g.args, g.ret)
	}
	for _, g := range ck3GlobalFunctions {
		t.AddGlobalFunction(g.name, g.args, g.ret)
	}
	for _, p := range ck3Promotes {
		t.AddPromote(p.in, p.name, p.args, p.ret)
	}
	for _, f := range ck3Functions {
		t.AddFunction(f.in, f.name, f.args, f.ret)
	}
	return t
}

var ck3ScopeMap = []struct {
	dt Datatype
	s  scopes.Set
}{
	{Character, scopes.Character},
	{Title, scopes.LandedTitle},
	{Activity, scopes.Activity},
	{Secret, scopes.Secret},
	{Province, scopes.Province},
	{Scheme, scopes.Scheme},
	{Combat, scopes.Combat},
	{CombatSide, scopes.CombatSide},
	{Faith, scopes.Faith},
	{GreatHolyWar, scopes.GreatHolyWar},
	{Religion, scopes.Religion},
	{War, scopes.War},
	{Story, scopes.StoryCycle},
	{CasusBelliItem, scopes.CasusBelli},
	{Dynasty, scopes.Dynasty},
	{DynastyHouse, scopes.DynastyHouse},
	{Faction, scopes.Faction},
	{Culture, scopes.Culture},
	{Army, scopes.Army},
	{HolyOrder, scopes.HolyOrder},
	{ActiveCouncilTask, scopes.CouncilTask},
	{MercenaryCompany, scopes.MercenaryCompany},
	{Artifact, scopes.Artifact},
	{Inspiration, scopes.Inspiration},
	{Struggle, scopes.Struggle},
	{CharacterMemory, scopes.CharacterMemory},
	{TravelPlan, scopes.TravelPlan},
	{Accolade, scopes.Accolade},
	{AccoladeType, scopes.AccoladeType},
	{Decision, scopes.Decision},
	{FaithDoctrine, scopes.Doctrine},
	{ActivityType, scopes.ActivityType},
	{CultureTradition, scopes.CultureTradition},
	{CulturePillar, scopes.CulturePillar},
	{GovernmentType, scopes.GovernmentType},
	{Trait, scopes.Trait},
	{VassalContract, scopes.VassalContract},
	{ObligationLevel, scopes.VassalObligationLevel},
}

type global struct {
	name string
	args Args
	ret  Datatype
}

type typed struct {
	in   Datatype
	name string
	args Args
	ret  Datatype
}

var ck3GlobalPromotes = []global{
	{"ROOT", NoArgs, TopScope},
	{"SCOPE", NoArgs, TopScope},
	{"GetPlayer", NoArgs, Character},
	{"GetNullCharacter", NoArgs, Character},
	{"GetTitleByKey", A(I(item.Title)), Title},
	{"GetFaithByKey", A(I(item.Faith)), Faith},
	{"GetCultureByKey", A(I(item.Culture)), Culture},
	{"GetTrait", A(I(item.Trait)), Trait},
	{"GetCurrentDate", NoArgs, Date},
	{"GuiScope", NoArgs, TopScope},
}

var ck3GlobalFunctions = []global{
	{"Concept", A(D(CString), D(CString)), CString},
	{"Localize", A(D(CString)), CString},
	{"SelectLocalization", A(D(Bool), D(CString), D(CString)), CString},
	{"GetCurrentYear", NoArgs, Int32},
	{"EqualTo_int32", A(D(Int32), D(Int32)), Bool},
	{"GreaterThan_int32", A(D(Int32), D(Int32)), Bool},
	{"Not", A(D(Bool)), Bool},
	{"And", A(D(Bool), D(Bool)), Bool},
	{"Or", A(D(Bool), D(Bool)), Bool},
	{"Add_int32", A(D(Int32), D(Int32)), Int32},
	{"Abs_int32", A(D(Int32)), Int32},
	{"Select_CString", A(D(Bool), D(CString), D(CString)), CString},
	{"IsDebug", NoArgs, Bool},
}

var ck3Promotes = []typed{
	{TopScope, "Char", NoArgs, Character},
	{TopScope, "Title", NoArgs, Title},
	{TopScope, "Faith", NoArgs, Faith},
	{TopScope, "Culture", NoArgs, Culture},
	{TopScope, "Province", NoArgs, Province},
	{TopScope, "Scheme", NoArgs, Scheme},
	{TopScope, "Secret", NoArgs, Secret},
	{TopScope, "War", NoArgs, War},
	{TopScope, "Activity", NoArgs, Activity},
	{TopScope, "Artifact", NoArgs, Artifact},
	{TopScope, "sC", A(D(CString)), Character},
	{TopScope, "sT", A(D(CString)), Title},
	{TopScope, "sF", A(D(CString)), Faith},
	{TopScope, "ScriptValue", A(D(CString)), CFixedPoint},
	{TopScope, "Var", A(D(CString)), Scope},

	{Scope, "GetCharacter", NoArgs, Character},
	{Scope, "GetTitle", NoArgs, Title},
	{Scope, "GetFaith", NoArgs, Faith},
	{Scope, "GetProvince", NoArgs, Province},

	{Character, "GetLiege", NoArgs, Character},
	{Character, "GetPrimaryTitle", NoArgs, Title},
	{Character, "GetFaith", NoArgs, Faith},
	{Character, "GetCulture", NoArgs, Culture},
	{Character, "GetHouse", NoArgs, DynastyHouse},
	{Character, "GetDynasty", NoArgs, Dynasty},
	{Character, "GetFather", NoArgs, Character},
	{Character, "GetMother", NoArgs, Character},
	{Character, "GetPrimarySpouse", NoArgs, Character},
	{Character, "GetCapitalProvince", NoArgs, Province},
	{Character, "GetLocation", NoArgs, Province},
	{Character, "GetBirthDate", NoArgs, Date},
	{Character, "MakeScope", NoArgs, Scope},
	{Character, "GetTraitByIndex", A(D(Int32)), Trait},
	{Character, "Var", A(D(CString)), Scope},

	{Title, "GetHolder", NoArgs, Character},
	{Title, "GetDeJureLiege", NoArgs, Title},
	{Title, "GetCapitalCounty", NoArgs, Title},
	{Title, "GetProvince", NoArgs, Province},
	{Title, "MakeScope", NoArgs, Scope},
	{Title, "Var", A(D(CString)), Scope},

	{Faith, "GetReligion", NoArgs, Religion},
	{Faith, "GetHeadOfFaith", NoArgs, Character},
	{Faith, "MakeScope", NoArgs, Scope},

	{Culture, "GetCultureHead", NoArgs, Character},
	{Culture, "MakeScope", NoArgs, Scope},

	{Province, "GetTitle", NoArgs, Title},
	{Province, "GetCounty", NoArgs, Title},
	{Province, "GetFaith", NoArgs, Faith},
	{Province, "GetCulture", NoArgs, Culture},
	{Province, "MakeScope", NoArgs, Scope},

	{DynastyHouse, "GetDynasty", NoArgs, Dynasty},
	{DynastyHouse, "GetHouseHead", NoArgs, Character},
	{Dynasty, "GetDynastyHead", NoArgs, Character},

	{Scheme, "GetOwner", NoArgs, Character},
	{Scheme, "GetTarget", NoArgs, Character},
	{Secret, "GetOwner", NoArgs, Character},
	{Secret, "GetTarget", NoArgs, Character},
	{War, "GetPrimaryAttacker", NoArgs, Character},
	{War, "GetPrimaryDefender", NoArgs, Character},

	{GuiCharacter, "GetCharacter", NoArgs, Character},
	{CharacterWindow, "GetCharacter", NoArgs, Character},
}

var ck3Functions = []typed{
	{Character, "GetName", NoArgs, CString},
	{Character, "GetFirstName", NoArgs, CString},
	{Character, "GetFirstNameNoTooltip", NoArgs, CString},
	{Character, "GetTitledFirstName", NoArgs, CString},
	{Character, "GetShortUIName", NoArgs, CString},
	{Character, "GetUIName", NoArgs, CString},
	{Character, "GetHerHis", NoArgs, CString},
	{Character, "GetSheHe", NoArgs, CString},
	{Character, "GetHerHim", NoArgs, CString},
	{Character, "GetWomanMan", NoArgs, CString},
	{Character, "GetAge", NoArgs, Int32},
	{Character, "GetGold", NoArgs, CFixedPoint},
	{Character, "GetPrestige", NoArgs, CFixedPoint},
	{Character, "GetPiety", NoArgs, CFixedPoint},
	{Character, "IsAdult", NoArgs, Bool},
	{Character, "IsAlive", NoArgs, Bool},
	{Character, "HasTrait", A(I(item.Trait)), Bool},
	{Character, "GetOpinionOf", A(D(Character)), Int32},
	{Character, "Custom", A(D(CString)), CString},
	{Character, "Custom2", A(D(CString), D(AnyScope)), CString},
	{Character, "GetID", NoArgs, Int64},
	{Character, "Self", NoArgs, Character},

	{Title, "GetName", NoArgs, CString},
	{Title, "GetNameNoTier", NoArgs, CString},
	{Title, "GetBaseName", NoArgs, CString},
	{Title, "GetAdjective", NoArgs, CString},
	{Title, "GetTierName", NoArgs, CString},
	{Title, "Custom", A(D(CString)), CString},
	{Title, "Self", NoArgs, Title},

	{Faith, "GetName", NoArgs, CString},
	{Faith, "GetAdjective", NoArgs, CString},
	{Faith, "GetAdherentName", NoArgs, CString},
	{Faith, "GetHighGodName", NoArgs, CString},
	{Faith, "Custom", A(D(CString)), CString},
	{Faith, "Self", NoArgs, Faith},

	{Religion, "GetName", NoArgs, CString},
	{Religion, "GetAdjective", NoArgs, CString},
	{Culture, "GetName", NoArgs, CString},
	{Culture, "GetCollectiveNoun", NoArgs, CString},
	{Culture, "Custom", A(D(CString)), CString},
	{Province, "GetName", NoArgs, CString},
	{Province, "Custom", A(D(CString)), CString},
	{DynastyHouse, "GetName", NoArgs, CString},
	{Dynasty, "GetName", NoArgs, CString},
	{Trait, "GetName", A(D(Character)), CString},
	{Scheme, "GetTypeName", NoArgs, CString},
	{Secret, "GetName", NoArgs, CString},
	{War, "GetName", NoArgs, CString},
	{Artifact, "GetName", NoArgs, CString},
	{Activity, "GetName", NoArgs, CString},

	{Date, "GetString", NoArgs, CString},
	{Date, "GetYear", NoArgs, Int32},

	{Scope, "GetValue", NoArgs, CFixedPoint},
	{Scope, "IsSet", NoArgs, Bool},
	{Scope, "GetFlagName", NoArgs, CString},
	{TopScope, "Custom", A(D(CString)), CString},
	{TopScope, "GetCustom", A(D(CString)), CString},
	{TopScope, "ScriptValue", A(D(CString)), CFixedPoint},
	{TopScope, "IsSet", A(D(CString)), Bool},
}
