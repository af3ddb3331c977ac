package validate

import (
	"strings"

	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
)

// ValidateDesc validates a description: a localization key, or a block of
// triggered_desc, first_valid and random_valid entries.
func ValidateDesc(bv script.BV, data Data, sc *scopectx.Context) {
	ValidateDescMap(bv, data, sc, func(t script.Token) {
		verifyExists(data, item.Localization, t, report.Fatal)
	})
}

// ValidateDescMap is ValidateDesc, but fn decides what the strings found
// must be. Strings with spaces are literal text and are skipped.
func ValidateDescMap(bv script.BV, data Data, sc *scopectx.Context, fn func(t script.Token)) {
	if t, ok := bv.GetValue(); ok {
		if !strings.Contains(t.Text, " ") {
			fn(t)
		}
		return
	}
	validateDescBlock("", bv.Block, data, sc, fn)
}

func validateDescBlock(caller string, b *script.Block, data Data, sc *scopectx.Context, fn func(t script.Token)) {
	vd := newFields(b, data)
	seenDesc, seenUnconditional := false, false
	multipleTriggered := func(key script.Token) {
		if seenDesc && caller == "triggered_desc" {
			vd.push(report.Warn(report.Duplicate).Msg("multiple descs in one triggered_desc").
				Info("only the last one will be shown").Loc(key.Loc))
		}
	}

	vd.unknownFields(func(f script.Field) {
		key := f.Key
		switch {
		case key.Is("desc") || key.Is("first_valid") || key.Is("random_valid"):
			multipleTriggered(key)
			if seenUnconditional && caller == "first_valid" {
				vd.push(report.Warn(report.Duplicate).Msg("multiple unconditional desc in one first_valid").
					Info("only the first one will be shown").Loc(key.Loc))
			}
			if key.Is("desc") {
				if t, ok := f.BV.GetValue(); ok {
					if !strings.Contains(t.Text, " ") {
						fn(t)
					}
				} else {
					validateDescBlock(key.Text, f.BV.Block, data, sc, fn)
				}
				// first_valid and random_valid may have every branch fail.
				seenUnconditional = true
			} else if sub, ok := vd.expectBlock(f.BV); ok {
				validateDescBlock(key.Text, sub, data, sc, fn)
			}
			seenDesc = true
		case key.Is("triggered_desc"):
			if sub, ok := vd.expectBlock(f.BV); ok {
				multipleTriggered(key)
				validateDescBlock(key.Text, sub, data, sc, fn)
				seenDesc = true
			}
		case key.Is("trigger"):
			if sub, ok := vd.expectBlock(f.BV); ok {
				if caller != "triggered_desc" {
					vd.push(report.Warn(report.Validation).Msg("`trigger` is only for `triggered_desc`").Loc(key.Loc))
				}
				ValidateTrigger(sub, data, sc, tooltip.No)
			}
		default:
			vd.push(report.Warn(report.UnknownField).Msg("unexpected key in description").Loc(key.Loc))
		}
	})
	vd.done()
}
