package script

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var macroParam = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)\$`)

// MacroArg binds one $PARAM$ to its replacement text.
type MacroArg struct {
	Name  string
	Value Token
}

// MacroParms returns the sorted, deduplicated parameter names used in b's body.
// It is empty for blocks that are not macros.
func (b *Block) MacroParms() []string {
	if b.Source == nil {
		return nil
	}
	var out []string
	for _, m := range macroParam.FindAllStringSubmatch(b.Source.Text, -1) {
		out = append(out, m[1])
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// ExpandMacro substitutes args into b's body and parses the result.
// Every location in the expansion carries link so that diagnostics can point
// back at the call site.
func (b *Block) ExpandMacro(args []MacroArg, link uint32) (*Block, error) {
	if b.Source == nil {
		return nil, fmt.Errorf("%s: block has no macro source: %w", b.Loc, ErrUnexpectedToken)
	}
	pairs := make([]string, 0, 2*len(args))
	for _, a := range args {
		pairs = append(pairs, "$"+a.Name+"$", a.Value.Text)
	}
	text := strings.NewReplacer(pairs...).Replace(b.Source.Text)
	out, err := parseAt(b.Source.Loc.File, text, b.Source.Loc.Line, b.Source.Loc.Column)
	if err != nil {
		return nil, fmt.Errorf("expanding macro at %s: %w", b.Loc, err)
	}
	out.Loc = b.Loc
	out.Relink(link)
	return out, nil
}
