package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Loc is a position in a script file. Link is non-zero when the location is
// inside an expanded macro; it indexes the call site in a macro.LinkMap.
type Loc struct {
	File   string
	Line   int
	Column int
	Link   uint32
}

func (l Loc) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Unlinked returns l without its macro link.
func (l Loc) Unlinked() Loc {
	l.Link = 0
	return l
}

// Token is a piece of script text with the location it came from.
type Token struct {
	Text string
	Loc  Loc
}

// NewToken is a convenience for synthetic tokens.
func NewToken(text string, loc Loc) Token {
	return Token{Text: text, Loc: loc}
}

func (t Token) String() string { return t.Text }

// Is reports exact equality with s.
func (t Token) Is(s string) bool { return t.Text == s }

// LowercaseIs compares case-insensitively.
func (t Token) LowercaseIs(s string) bool { return strings.EqualFold(t.Text, s) }

func (t Token) HasPrefix(p string) bool { return strings.HasPrefix(t.Text, p) }

// Lower returns the lowercased text.
func (t Token) Lower() string { return strings.ToLower(t.Text) }

// SplitOnce splits at the first sep. The second token's column points just past sep.
func (t Token) SplitOnce(sep byte) (Token, Token, bool) {
	i := strings.IndexByte(t.Text, sep)
	if i < 0 {
		return t, Token{}, false
	}
	return t.Sub(0, i), t.Sub(i+1, len(t.Text)), true
}

// Sub returns the token for Text[from:to], with its column adjusted.
func (t Token) Sub(from, to int) Token {
	loc := t.Loc
	loc.Column += len([]rune(t.Text[:from]))
	return Token{Text: t.Text[from:to], Loc: loc}
}

// Combine joins t and o with sep, keeping t's location.
func (t Token) Combine(o Token, sep byte) Token {
	return Token{Text: t.Text + string(sep) + o.Text, Loc: t.Loc}
}

// Number parses the token as a script number (e.g. 1, -0.5, 3.25).
func (t Token) Number() (float64, bool) {
	if t.Text == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(t.Text, 64)
	return f, err == nil
}

func (t Token) IsNumber() bool {
	_, ok := t.Number()
	return ok
}

func (t Token) IsInteger() bool {
	_, err := strconv.ParseInt(t.Text, 10, 64)
	return err == nil
}

// IsDate reports whether the token looks like a Y.M.D game date.
func (t Token) IsDate() bool {
	parts := strings.Split(t.Text, ".")
	if len(parts) < 1 || len(parts) > 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
		if _, err := strconv.Atoi(p); err != nil {
			return false
		}
	}
	if len(parts) >= 2 {
		if m, _ := strconv.Atoi(parts[1]); m < 1 || m > 12 {
			return false
		}
	}
	if len(parts) == 3 {
		if d, _ := strconv.Atoi(parts[2]); d < 1 || d > 31 {
			return false
		}
	}
	return true
}
