package datatype

import (
	"errors"
	"fmt"
	"strings"

	"tiger-tools/cmd/tiger/script"
)

var ErrSyntax = errors.New("datatype chain syntax")

// Chain is the text between `[` and `]`, minus any `|format` suffix.
type Chain struct {
	Codes []Code
}

// Code is one dot-separated step of a chain, with its arguments if it was
// written as `Name(a, b)`.
type Code struct {
	Name script.Token
	Args []CodeArg
}

// CodeArg is a single-quoted literal or a nested chain. A literal may start
// with its type, as in `'(int32)0'`; otherwise it is a CString.
type CodeArg struct {
	Literal *script.Token
	Chain   *Chain
}

func (c *Chain) String() string {
	parts := make([]string, len(c.Codes))
	for i, code := range c.Codes {
		parts[i] = code.String()
	}
	return strings.Join(parts, ".")
}

func (c Code) String() string {
	if len(c.Args) == 0 {
		return c.Name.Text
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		if a.Literal != nil {
			args[i] = "'" + a.Literal.Text + "'"
		} else {
			args[i] = a.Chain.String()
		}
	}
	return c.Name.Text + "(" + strings.Join(args, ",") + ")"
}

// ParseCode splits `[chain|format]` into its chain and format. The brackets
// are optional. format is nil if there is no `|`.
func ParseCode(t script.Token) (*Chain, *script.Token, error) {
	text, offset := t.Text, 0
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		text, offset = text[1:len(text)-1], 1
	}
	var format *script.Token
	if i := strings.LastIndexByte(text, '|'); i >= 0 && !strings.ContainsRune(text[i:], '\'') {
		f := script.NewToken(text[i+1:], shift(t.Loc, offset+i+1))
		format = &f
		text = text[:i]
	}
	chain, err := ParseChain(script.NewToken(text, shift(t.Loc, offset)))
	return chain, format, err
}

// ParseChain parses `A.B('lit').C(D.E)`.
func ParseChain(t script.Token) (*Chain, error) {
	p := &chainParser{src: t.Text, loc: t.Loc}
	c, err := p.chain()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected `%c`", p.src[p.pos])
	}
	return c, nil
}

func shift(loc script.Loc, n int) script.Loc {
	loc.Column += n
	return loc
}

type chainParser struct {
	src string
	pos int
	loc script.Loc
}

func (p *chainParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", shift(p.loc, p.pos), fmt.Sprintf(format, args...), ErrSyntax)
}

func (p *chainParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func isNameByte(c byte) bool {
	return c == '_' || c == ':' || c == '$' || c == '@' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func (p *chainParser) chain() (*Chain, error) {
	c := &Chain{}
	for {
		p.skipSpace()
		start := p.pos
		for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
			p.pos++
		}
		// Empty names are kept so the validator can point at them.
		code := Code{Name: script.NewToken(p.src[start:p.pos], shift(p.loc, start))}
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == '(' {
			p.pos++
			args, err := p.args()
			if err != nil {
				return nil, err
			}
			code.Args = args
			p.skipSpace()
		}
		c.Codes = append(c.Codes, code)
		if p.pos < len(p.src) && p.src[p.pos] == '.' {
			p.pos++
			continue
		}
		return c, nil
	}
}

// args parses the arguments after `(`, through the closing `)`.
func (p *chainParser) args() ([]CodeArg, error) {
	var out []CodeArg
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ')' {
		p.pos++
		return out, nil
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("missing `)`")
		}
		if p.src[p.pos] == '\'' {
			end := strings.IndexByte(p.src[p.pos+1:], '\'')
			if end < 0 {
				return nil, p.errorf("unterminated literal")
			}
			lit := script.NewToken(p.src[p.pos+1:p.pos+1+end], shift(p.loc, p.pos+1))
			out = append(out, CodeArg{Literal: &lit})
			p.pos += end + 2
		} else {
			c, err := p.chain()
			if err != nil {
				return nil, err
			}
			out = append(out, CodeArg{Chain: c})
		}
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("missing `)`")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return out, nil
		default:
			return nil, p.errorf("unexpected `%c` in arguments", p.src[p.pos])
		}
	}
}
