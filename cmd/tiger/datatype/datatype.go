// Package datatype checks the `[ ... ]` code chains in localization and gui
// files, such as `[ROOT.Char.GetFirstName]`. Each dot-separated code is a
// promote or a function looked up by its input datatype; the chain is valid
// if every step accepts what the previous one returned.
package datatype

import (
	"slices"

	"tiger-tools/cmd/tiger/item"
)

// Datatype is an engine object type as named in the game's data_types logs,
// which is why a few of them are lowercase.
type Datatype string

// Synthetic types used only by the checker.
const (
	// Unknown matches anything. It is the input of the first code and the
	// result of lookups that cannot be narrowed down.
	Unknown Datatype = "Unknown"
	// AnyScope, as an expected type, accepts any datatype that maps to a scope.
	AnyScope Datatype = "AnyScope"
)

// Generic types, shared by every game.
const (
	CFixedPoint Datatype = "CFixedPoint"
	CString     Datatype = "CString"
	CUTF8String Datatype = "CUTF8String"
	CVector2f   Datatype = "CVector2f"
	CVector2i   Datatype = "CVector2i"
	CVector3f   Datatype = "CVector3f"
	CVector3i   Datatype = "CVector3i"
	CVector4f   Datatype = "CVector4f"
	CVector4i   Datatype = "CVector4i"
	Date        Datatype = "Date"
	Scope       Datatype = "Scope"
	TopScope    Datatype = "TopScope"
	Bool        Datatype = "bool"
	Double      Datatype = "double"
	Float       Datatype = "float"
	Int8        Datatype = "int8"
	Int16       Datatype = "int16"
	Int32       Datatype = "int32"
	Int64       Datatype = "int64"
	Uint8       Datatype = "uint8"
	Uint16      Datatype = "uint16"
	Uint32      Datatype = "uint32"
	Uint64      Datatype = "uint64"
	Void        Datatype = "void"
)

// CK3 entity and gui types.
const (
	Accolade          Datatype = "Accolade"
	AccoladeType      Datatype = "AccoladeType"
	ActiveCouncilTask Datatype = "ActiveCouncilTask"
	Activity          Datatype = "Activity"
	ActivityType      Datatype = "ActivityType"
	Army              Datatype = "Army"
	Artifact          Datatype = "Artifact"
	CasusBelliItem    Datatype = "CasusBelliItem"
	Character         Datatype = "Character"
	CharacterMemory   Datatype = "CharacterMemory"
	CharacterWindow   Datatype = "CharacterWindow"
	Combat            Datatype = "Combat"
	CombatSide        Datatype = "CombatSide"
	Culture           Datatype = "Culture"
	CulturePillar     Datatype = "CulturePillar"
	CultureTradition  Datatype = "CultureTradition"
	Decision          Datatype = "Decision"
	Dynasty           Datatype = "Dynasty"
	DynastyHouse      Datatype = "DynastyHouse"
	Faction           Datatype = "Faction"
	Faith             Datatype = "Faith"
	FaithDoctrine     Datatype = "FaithDoctrine"
	GameConcept       Datatype = "GameConcept"
	GovernmentType    Datatype = "GovernmentType"
	GreatHolyWar      Datatype = "GreatHolyWar"
	GuiCharacter      Datatype = "GuiCharacter"
	HolyOrder         Datatype = "HolyOrder"
	Inspiration       Datatype = "Inspiration"
	MercenaryCompany  Datatype = "MercenaryCompany"
	ObligationLevel   Datatype = "ObligationLevel"
	Province          Datatype = "Province"
	Religion          Datatype = "Religion"
	Scheme            Datatype = "Scheme"
	Secret            Datatype = "Secret"
	Story             Datatype = "Story"
	Struggle          Datatype = "Struggle"
	Title             Datatype = "Title"
	Trait             Datatype = "Trait"
	TravelPlan        Datatype = "TravelPlan"
	VassalContract    Datatype = "VassalContract"
	War               Datatype = "War"
)

var known = map[Datatype]bool{}

func init() {
	for _, dt := range []Datatype{
		Unknown, AnyScope,
		CFixedPoint, CString, CUTF8String, CVector2f, CVector2i, CVector3f, CVector3i, CVector4f, CVector4i,
		Date, Scope, TopScope, Bool, Double, Float, Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Void,
		Accolade, AccoladeType, ActiveCouncilTask, Activity, ActivityType, Army, Artifact, CasusBelliItem,
		Character, CharacterMemory, CharacterWindow, Combat, CombatSide, Culture, CulturePillar, CultureTradition,
		Decision, Dynasty, DynastyHouse, Faction, Faith, FaithDoctrine, GameConcept, GovernmentType, GreatHolyWar,
		GuiCharacter, HolyOrder, Inspiration, MercenaryCompany, ObligationLevel, Province, Religion, Scheme,
		Secret, Story, Struggle, Title, Trait, TravelPlan, VassalContract, War,
	} {
		known[dt] = true
	}
}

// Parse looks up a datatype by its exact name.
func Parse(name string) (Datatype, bool) {
	dt := Datatype(name)
	return dt, known[dt]
}

func (dt Datatype) String() string { return string(dt) }

// Arg is what a promote or function expects in one argument position:
// either a value of a datatype, or the name of an item. An item argument
// given as a literal is looked up; given as a chain, it must return CString.
type Arg struct {
	DType  Datatype
	Item   item.Kind
	IsItem bool
}

// I is an item-name argument.
func I(kind item.Kind) Arg { return Arg{Item: kind, IsItem: true} }

// D is a datatype argument.
func D(dt Datatype) Arg { return Arg{DType: dt} }

// Args is the argument list of a promote or function. Unknown accepts any
// arguments at all.
type Args struct {
	Unknown bool
	List    []Arg
}

// AnyArgs accepts any number of arguments of any type.
var AnyArgs = Args{Unknown: true}

// NoArgs is the empty argument list.
var NoArgs = Args{}

// A builds an argument list.
func A(args ...Arg) Args { return Args{List: args} }

func (a Args) equal(b Args) bool {
	return a.Unknown == b.Unknown && slices.Equal(a.List, b.List)
}
