package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"tiger-tools/cmd/tiger/script"
)

var ErrUnknownColorMode = errors.New("unknown color mode")

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	}
	return ColorAuto, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

// Enabled decides whether output to f should be colored.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LinkResolver maps a macro link index to the call site it came from.
type LinkResolver interface {
	Get(idx uint32) (script.Loc, bool)
}

type RenderOptions struct {
	Color bool
	Links LinkResolver
}

var (
	styleSeverity = map[Severity]lipgloss.Style{
		Tips:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Untidy:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Fatal:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
	}
	styleArrow = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleInfo  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("42"))
)

// Render writes diags in the usual text form:
//
//	warning(scopes): `liege` is for character but scope seems to be landed title
//	  --> [events/a.txt:12:5]
//	  --> [common/scripted_triggers/b.txt:3:1] from here
//	  = info: ...
func Render(w io.Writer, diags []Diagnostic, opts RenderOptions) error {
	paint := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}
	for _, d := range diags {
		head := fmt.Sprintf("%s(%s)", d.Severity, d.Key)
		if _, err := fmt.Fprintf(w, "%s: %s\n", paint(styleSeverity[d.Severity], head), d.Msg); err != nil {
			return err
		}
		for _, pm := range d.Locs {
			if err := renderLoc(w, pm.Loc, pm.Msg, opts, paint); err != nil {
				return err
			}
		}
		if d.Info != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", paint(styleInfo, "= info: "+d.Info)); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderLoc(w io.Writer, loc script.Loc, label string, opts RenderOptions, paint func(lipgloss.Style, string) string) error {
	line := "  " + paint(styleArrow, "-->") + " [" + loc.String() + "]"
	if label != "" {
		line += " " + paint(styleLabel, label)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	// Walk the macro call chain outwards. The bound guards against a
	// malformed link table.
	link := loc.Link
	for i := 0; link != 0 && opts.Links != nil && i < 256; i++ {
		site, ok := opts.Links.Get(link)
		if !ok {
			break
		}
		if _, err := fmt.Fprintf(w, "  %s [%s] %s\n", paint(styleArrow, "-->"), site, paint(styleLabel, "from here")); err != nil {
			return err
		}
		link = site.Link
	}
	return nil
}
