package db

import (
	"strings"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
	"tiger-tools/cmd/tiger/validate"
)

var eventTypes = []string{
	"letter_event", "character_event", "court_event", "duel_event", "fullscreen_event", "activity_event",
}

// Event is one event definition from events/.
type Event struct {
	Key   script.Token
	Block *script.Block
	// Scopes is what the event's root must be, from its `scope = x` field.
	Scopes scopes.Set
	reason scopectx.Reason
}

func newEvent(key script.Token, b *script.Block) *Event {
	e := &Event{Key: key, Block: b, Scopes: scopes.Character, reason: scopectx.TokenReason(key)}
	if t, ok := b.GetFieldValue("scope"); ok {
		if s, ok := scopes.FromName(t.Text); ok {
			e.Scopes, e.reason = s, scopectx.TokenReason(t)
		} else {
			e.Scopes = scopes.NonPrimitive()
		}
	}
	return e
}

// CheckScope narrows sc, the scope an event is fired from, to what the
// event expects.
func (e *Event) CheckScope(id script.Token, sc *scopectx.Context) {
	sc.Expect3(e.Scopes, e.reason, id)
}

// Validate checks the event body with its root scope.
func (e *Event) Validate(data validate.Data) {
	sink := data.Sink()
	seen := validate.FieldSet{}
	seen.Add("type", "scope", "hidden", "major", "window", "content_source", "theme", "orphan",
		"soundeffect", "widget", "widgets", "cooldown")

	ttImmediate, tt := tooltip.Past, tooltip.Yes
	if ns, _, ok := strings.Cut(e.Key.Text, "."); ok && ns == "debug" {
		ttImmediate, tt = tooltip.No, tooltip.No
	}

	if t, ok := e.Block.GetFieldValue("type"); ok {
		if t.Is("empty") {
			report.Err(report.Validation).Msg("`type = empty` has been replaced by `scope = none`").Loc(t.Loc).Push(sink)
		} else if !containsString(eventTypes, t.Text) {
			report.Err(report.Choice).Msgf("expected one of %s", strings.Join(eventTypes, ", ")).Loc(t.Loc).Push(sink)
		}
	}

	root, token := scopes.Character, e.Key
	if t, ok := e.Block.GetFieldValue("scope"); ok {
		if s, ok := scopes.FromName(t.Text); ok {
			root, token = s, t
		} else {
			report.Warn(report.Scopes).Msg("unknown scope type").Loc(t.Loc).Push(sink)
		}
	}
	sc := scopectx.New(root, token, scopectx.WithSink(sink))
	sc.SetStrictScopes(false)

	for _, name := range []string{"hidden", "major", "orphan"} {
		if t, ok := e.Block.GetFieldValue(name); ok && !t.Is("yes") && !t.Is("no") {
			report.Warn(report.Validation).Msg("expected yes or no").Loc(t.Loc).Push(sink)
		}
	}

	body := func(name string, fn func(b *script.Block)) {
		seen.Add(name)
		for _, f := range e.Block.Fields() {
			if !f.Key.LowercaseIs(name) {
				continue
			}
			if f.BV.Block == nil {
				report.Err(report.Validation).Msg("expected block, found value").Loc(f.BV.Loc()).Push(sink)
				continue
			}
			fn(f.BV.Block)
		}
	}
	desc := func(name string) {
		seen.Add(name)
		if bv, ok := e.Block.GetField(name); ok {
			validate.ValidateDesc(bv, data, sc)
		}
	}

	body("major_trigger", func(b *script.Block) { validate.ValidateTrigger(b, data, sc, tooltip.No) })
	body("immediate", func(b *script.Block) { validate.ValidateEffect(b, data, sc, ttImmediate) })
	body("trigger", func(b *script.Block) { validate.ValidateTrigger(b, data, sc, tooltip.No) })
	body("on_trigger_fail", func(b *script.Block) { validate.ValidateEffect(b, data, sc, tooltip.No) })
	body("weight_multiplier", func(b *script.Block) { validate.ValidateModifiersWithBase(b, data, sc) })
	desc("title")
	desc("desc")
	if t, ok := e.Block.GetFieldValue("type"); ok && t.Is("letter_event") {
		desc("opening")
		seen.Add("sender")
		if !e.Block.HasKey("sender") {
			report.Err(report.FieldMissing).Msg("required field `sender` missing").Loc(e.Block.Loc).Push(sink)
		}
	}
	for _, p := range []string{"left_portrait", "right_portrait", "center_portrait",
		"lower_left_portrait", "lower_center_portrait", "lower_right_portrait"} {
		seen.Add(p)
		if bv, ok := e.Block.GetField(p); ok {
			validatePortrait(bv, data, sc)
		}
	}

	hidden := false
	if t, ok := e.Block.GetFieldValue("hidden"); ok && t.Is("yes") {
		hidden = true
	}
	if !hidden && !e.Block.HasKey("option") {
		report.Err(report.FieldMissing).Msg("required field `option` missing").Loc(e.Key.Loc).Push(sink)
	}
	body("option", func(b *script.Block) { validateOption(b, data, sc, tt) })
	body("after", func(b *script.Block) { validate.ValidateEffect(b, data, sc, tooltip.No) })

	validate.ReportUnknown(e.Block, seen, sink)
}

// validatePortrait accepts `left_portrait = root` or a block with a
// character and optional animation.
func validatePortrait(bv script.BV, data validate.Data, sc *scopectx.Context) {
	if t, ok := bv.GetValue(); ok {
		validate.ValidateTarget(t, data, sc, scopes.Character)
		return
	}
	b := bv.Block
	seen := validate.FieldSet{}
	seen.Add("character", "animation", "camera", "outfit_tags", "remove_default_outfit", "hide_info", "scripted_animation",
		"trigger", "triggered_animation", "triggered_outfit")
	if t, ok := b.GetFieldValue("character"); ok {
		validate.ValidateTarget(t, data, sc, scopes.Character)
	}
	if tb, ok := b.GetFieldBlock("trigger"); ok {
		validate.ValidateTrigger(tb, data, sc, tooltip.No)
	}
	validate.ReportUnknown(b, seen, data.Sink())
}

// validateOption checks one event option. Its body is an effect block with
// a few option-only fields.
func validateOption(b *script.Block, data validate.Data, sc *scopectx.Context, tt tooltip.Mode) {
	sink := data.Sink()
	if bv, ok := b.GetField("name"); ok {
		if t, ok := bv.GetValue(); ok {
			if !data.ItemExists(item.Localization, t.Text) {
				report.Err(report.Missing).Msgf("`%s` not defined as %s", t.Text, item.Localization).Loc(t.Loc).Push(sink)
			}
		} else if text, ok := bv.Block.GetField("text"); ok {
			if tb, ok := bv.Block.GetFieldBlock("trigger"); ok {
				validate.ValidateTrigger(tb, data, sc, tooltip.No)
			}
			validate.ValidateDesc(text, data, sc)
		} else {
			report.Warn(report.Validation).Msg("event option name with no text").Loc(bv.Block.Loc).Push(sink)
		}
	}

	effects := &script.Block{Loc: b.Loc}
	for _, it := range b.Items {
		if it.Field != nil {
			switch strings.ToLower(it.Field.Key.Text) {
			case "name", "flavor", "exclusive", "fallback", "skill", "clicksound", "highlight_portrait":
				continue
			case "trigger", "show_as_unavailable":
				if it.Field.BV.Block != nil {
					validate.ValidateTrigger(it.Field.BV.Block, data, sc, tooltip.No)
				}
				continue
			case "ai_chance":
				validate.ValidateAIChance(it.Field.BV, data, sc)
				continue
			}
		}
		effects.Items = append(effects.Items, it)
	}
	validate.ValidateEffect(effects, data, sc, tt)
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
