package validate

import (
	"fmt"
	"strings"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
)

// ListType is the kind of iteration a list key asks for.
type ListType uint8

const (
	ListNone ListType = iota
	ListAny
	ListEvery
	ListOrdered
	ListRandom
)

var listTypeNames = [...]string{"", "any", "every", "ordered", "random"}

func (lt ListType) String() string { return listTypeNames[lt] }

func parseListType(s string) (ListType, bool) {
	switch s {
	case "any":
		return ListAny, true
	case "every":
		return ListEvery, true
	case "ordered":
		return ListOrdered, true
	case "random":
		return ListRandom, true
	}
	return ListNone, false
}

// splitIteratorKey splits `every_vassal` into ListEvery and "vassal", if
// "vassal" is a known iterator.
func splitIteratorKey(key script.Token, data Data) (ListType, string, bool) {
	prefix, rest, ok := strings.Cut(key.Lower(), "_")
	if !ok {
		return ListNone, "", false
	}
	lt, ok := parseListType(prefix)
	if !ok {
		return ListNone, "", false
	}
	if _, ok := data.Tables().Iterator(rest); !ok {
		return ListNone, "", false
	}
	return lt, rest, true
}

// openIterator narrows the current scope to the iterator's input and opens
// its output scope. The caller closes it.
func openIterator(key script.Token, name string, data Data, sc *scopectx.Context) {
	it, _ := data.Tables().Iterator(name)
	sc.Expect(it.From, scopectx.TokenReason(key))
	sc.OpenScope(it.To, key)
}

// precheckIteratorFields validates the fields that must be seen in the
// outer scope, before the iterator's scope is opened.
func precheckIteratorFields(lt ListType, name string, b *script.Block, data Data, sc *scopectx.Context) {
	switch lt {
	case ListAny:
		if bv, ok := b.GetField("percent"); ok {
			if t, ok := bv.GetValue(); ok {
				if n, ok := t.Number(); ok && n > 1 {
					report.Warn(report.Range).Msg("'percent' here needs to be between 0 and 1").Loc(t.Loc).Push(data.Sink())
				}
			}
			ValidateScriptValue(bv, data, sc)
		}
		if bv, ok := b.GetField("count"); ok {
			if t, ok := bv.GetValue(); !ok || !t.Is("all") {
				ValidateScriptValue(bv, data, sc)
			}
		}
	case ListOrdered:
		for _, name := range []string{"position", "min", "max"} {
			if bv, ok := b.GetField(name); ok {
				ValidateScriptValue(bv, data, sc)
			}
		}
	}

	if name == "county_in_region" {
		for _, region := range b.GetFieldValues("region") {
			if !data.ItemExists(item.GeographicalRegion, region.Text) {
				ValidateTargetOkThis(region, data, sc, scopes.GeographicalRegion)
			}
		}
	}
}

// validateIteratorFields checks the fields every list shares. limit is left
// to the caller since if blocks use it too.
func validateIteratorFields(caller string, lt ListType, data Data, sc *scopectx.Context, vd *fields, tt *Tooltipped) {
	if lt == ListNone {
		vd.ban("custom", "lists")
	} else if t, ok := vd.fieldValue("custom"); ok {
		verifyExists(data, item.Localization, t, vd.maxSev)
		*tt = tooltip.No
	}

	if lt != ListNone && lt != ListAny {
		for _, f := range vd.multi("alternative_limit") {
			if b, ok := vd.expectBlock(f.BV); ok {
				ValidateTrigger(b, data, sc, *tt)
			}
		}
	} else {
		vd.ban("alternative_limit", "`every_`, `ordered_`, and `random_` lists")
	}

	if lt == ListAny {
		vd.field("percent")
		vd.field("count")
	} else {
		vd.ban("percent", "`any_` lists")
		if caller != "while" {
			vd.ban("count", "`while` and `any_` lists")
		}
	}

	if lt == ListOrdered {
		vd.fieldScriptValue("order_by", sc)
		vd.field("position")
		vd.field("min")
		vd.field("max")
		vd.fieldBool("check_range_bounds")
	} else {
		vd.ban("order_by", "`ordered_` lists")
		vd.ban("position", "`ordered_` lists")
		if caller != "random_list" && caller != "duel" {
			vd.ban("min", "`ordered_` lists, `random_list`, and `duel`")
			vd.ban("max", "`ordered_` lists, `random_list`, and `duel`")
		}
		vd.ban("check_range_bounds", "`ordered_` lists")
	}

	if lt == ListRandom {
		if f, ok := vd.fieldBlock("weight"); ok {
			ValidateModifiersWithBase(f.BV.Block, data, sc)
		}
	} else {
		vd.ban("weight", "`random_` lists")
	}
}

// validateInsideIterator checks the fields particular to one iterator, like
// `type` in every_relation.
func validateInsideIterator(name string, lt ListType, b *script.Block, data Data, sc *scopectx.Context, vd *fields, tt Tooltipped) {
	switch name {
	case "in_list":
		if !b.HasKey("list") && !b.HasKey("variable") {
			vd.push(report.Err(report.FieldMissing).Msg("expected one of `list` or `variable`").Loc(b.Loc))
		}
		if t, ok := vd.fieldValue("list"); ok {
			sc.ExpectList(t)
			sc.ReplaceListEntry(t.Text, t)
		}
		vd.fieldValue("variable")
	case "in_local_list", "in_global_list":
		vd.req("variable")
		vd.fieldValue("variable")
		vd.ban("list", fmt.Sprintf("`%s_in_list`", lt))
	default:
		vd.ban("list", fmt.Sprintf("`%s_in_list`", lt))
		vd.ban("variable", fmt.Sprintf("`%[1]s_in_list`, `%[1]s_in_local_list`, or `%[1]s_in_global_list`", lt))
	}

	// filter is shared by all lists; the hierarchy iterators add continue.
	if name == "in_de_facto_hierarchy" || name == "in_de_jure_hierarchy" {
		vd.fieldTrigger("continue", sc, tt)
	} else {
		vd.ban("continue", fmt.Sprintf("`%[1]s_in_de_facto_hierarchy` or `%[1]s_in_de_jure_hierarchy`", lt))
	}

	if name == "county_in_region" {
		vd.req("region")
		vd.multi("region")
	} else {
		vd.ban("region", fmt.Sprintf("`%s_county_in_region`", lt))
	}

	switch name {
	case "court_position_holder":
		vd.fieldItem("type", item.CourtPosition)
	case "relation":
		if !b.HasKey("type") {
			vd.push(report.Err(report.FieldMissing).Strong().Msg("required field `type` missing").
				Info(fmt.Sprintf("Verified for 1.9.2: with no type, %s_relation will do nothing.", lt)).Loc(b.Loc))
		}
		vd.multiItem("type", item.Relation)
	default:
		vd.ban("type", fmt.Sprintf("`%[1]s_court_position_holder` or `%[1]s_relation`", lt))
	}

	if name == "claim" {
		vd.fieldChoice("explicit", "yes", "no", "all")
		vd.fieldChoice("pressed", "yes", "no", "all")
	} else {
		vd.ban("explicit", fmt.Sprintf("`%s_claim`", lt))
		vd.ban("pressed", fmt.Sprintf("`%s_claim`", lt))
	}

	if name == "pool_character" {
		vd.req("province")
		if t, ok := vd.fieldValue("province"); ok {
			ValidateTargetOkThis(t, data, sc, scopes.Province)
		}
	} else {
		vd.ban("province", fmt.Sprintf("`%s_pool_character`", lt))
	}

	if sc.CanBe(scopes.Character) {
		vd.fieldBool("only_if_dead")
		vd.fieldBool("even_if_dead")
	} else {
		vd.ban("only_if_dead", "lists of characters")
		vd.ban("even_if_dead", "lists of characters")
	}

	if name == "character_struggle" {
		vd.fieldChoice("involvement", "involved", "interloper")
	} else {
		vd.ban("involvement", fmt.Sprintf("`%s_character_struggle`", lt))
	}

	if name == "connected_county" {
		vd.fieldBool("invert")
		vd.fieldNumber("max_naval_distance")
		vd.fieldBool("allow_one_county_land_gap")
	} else {
		onlyFor := fmt.Sprintf("`%s_connected_county`", lt)
		vd.ban("invert", onlyFor)
		vd.ban("max_naval_distance", onlyFor)
		vd.ban("allow_one_county_land_gap", onlyFor)
	}
}
