package script

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of file")
	ErrUnbalancedBrace = errors.New("unbalanced brace")
	ErrUnexpectedToken = errors.New("unexpected token")
)

type lexKind int

const (
	lexEOF lexKind = iota
	lexWord
	lexOpen
	lexClose
	lexCmp
)

type lexeme struct {
	kind lexKind
	tok  Token
	cmp  Comparator
	// byte offsets into the source
	start, end int
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
	file string
	peek *lexeme
}

// Parse reads a whole script file into its top-level block.
func Parse(file, text string) (*Block, error) {
	return parseAt(file, text, 1, 1)
}

func parseAt(file, text string, line, col int) (*Block, error) {
	lx := &lexer{src: text, line: line, col: col, file: file}
	b := &Block{Loc: Loc{File: file, Line: line, Column: col}}
	if err := lx.parseItems(b, false); err != nil {
		return nil, err
	}
	return b, nil
}

func (lx *lexer) loc() Loc {
	return Loc{File: lx.file, Line: lx.line, Column: lx.col}
}

func (lx *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += size
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

func (lx *lexer) at(off int) byte {
	if lx.pos+off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+off]
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == '#':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.advance()
			}
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			lx.advance()
		default:
			r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
			if !unicode.IsSpace(r) {
				return
			}
			lx.advance()
		}
	}
}

func isWordEnd(c, next byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '{', '}', '=', '<', '>', '#', '"':
		return true
	case '!', '?':
		return next == '='
	}
	return false
}

func (lx *lexer) next() (lexeme, error) {
	if lx.peek != nil {
		l := *lx.peek
		lx.peek = nil
		return l, nil
	}
	lx.skipSpace()
	start := lx.pos
	loc := lx.loc()
	if lx.pos >= len(lx.src) {
		return lexeme{kind: lexEOF, tok: Token{Loc: loc}, start: start, end: start}, nil
	}
	c := lx.src[lx.pos]
	switch c {
	case '{':
		lx.advance()
		return lexeme{kind: lexOpen, tok: Token{Text: "{", Loc: loc}, start: start, end: lx.pos}, nil
	case '}':
		lx.advance()
		return lexeme{kind: lexClose, tok: Token{Text: "}", Loc: loc}, start: start, end: lx.pos}, nil
	case '"':
		lx.advance()
		var sb strings.Builder
		for {
			if lx.pos >= len(lx.src) {
				return lexeme{}, fmt.Errorf("%s: unterminated string: %w", loc, ErrUnexpectedEOF)
			}
			r := lx.advance()
			if r == '"' {
				break
			}
			if r == '\\' && lx.at(0) == '"' {
				r = lx.advance()
			}
			sb.WriteRune(r)
		}
		return lexeme{kind: lexWord, tok: Token{Text: sb.String(), Loc: loc}, start: start, end: lx.pos}, nil
	case '=', '<', '>', '!', '?':
		return lx.comparator(start, loc)
	}

	// @[ ... ] inline math is one value, spaces included.
	if c == '@' && lx.at(1) == '[' {
		for lx.pos < len(lx.src) && lx.src[lx.pos] != ']' {
			lx.advance()
		}
		if lx.pos >= len(lx.src) {
			return lexeme{}, fmt.Errorf("%s: unterminated @[: %w", loc, ErrUnexpectedEOF)
		}
		lx.advance()
		return lexeme{kind: lexWord, tok: Token{Text: lx.src[start:lx.pos], Loc: loc}, start: start, end: lx.pos}, nil
	}

	for lx.pos < len(lx.src) && !isWordEnd(lx.src[lx.pos], lx.at(1)) {
		lx.advance()
	}
	return lexeme{kind: lexWord, tok: Token{Text: lx.src[start:lx.pos], Loc: loc}, start: start, end: lx.pos}, nil
}

func (lx *lexer) comparator(start int, loc Loc) (lexeme, error) {
	c := lx.src[lx.pos]
	two := lx.at(1) == '='
	var cmp Comparator
	switch {
	case c == '=' && two:
		cmp = DoubleEquals
	case c == '=':
		cmp = Equals
	case c == '<' && two:
		cmp = LessOrEqual
	case c == '<':
		cmp = Less
	case c == '>' && two:
		cmp = GreaterOrEqual
	case c == '>':
		cmp = Greater
	case c == '!' && two:
		cmp = NotEquals
	case c == '?' && two:
		cmp = QuestionEquals
	default:
		return lexeme{}, fmt.Errorf("%s: stray %q: %w", loc, c, ErrUnexpectedToken)
	}
	lx.advance()
	if two {
		lx.advance()
	}
	return lexeme{kind: lexCmp, tok: Token{Text: cmp.String(), Loc: loc}, cmp: cmp, start: start, end: lx.pos}, nil
}

func (lx *lexer) unread(l lexeme) { lx.peek = &l }

// parseItems fills b until the closing brace (nested) or end of input (top level).
func (lx *lexer) parseItems(b *Block, nested bool) error {
	for {
		l, err := lx.next()
		if err != nil {
			return err
		}
		switch l.kind {
		case lexEOF:
			if nested {
				return fmt.Errorf("%s: block opened here is not closed: %w", b.Loc, ErrUnexpectedEOF)
			}
			return nil
		case lexClose:
			if !nested {
				return fmt.Errorf("%s: closing brace without opening: %w", l.tok.Loc, ErrUnbalancedBrace)
			}
			return nil
		case lexOpen:
			sub, err := lx.parseBlock(l)
			if err != nil {
				return err
			}
			b.Items = append(b.Items, Item{Block: sub})
		case lexCmp:
			return fmt.Errorf("%s: comparator %s without key: %w", l.tok.Loc, l.tok.Text, ErrUnexpectedToken)
		case lexWord:
			nx, err := lx.next()
			if err != nil {
				return err
			}
			if nx.kind != lexCmp {
				lx.unread(nx)
				key := l.tok
				b.Items = append(b.Items, Item{Value: &key})
				continue
			}
			bv, err := lx.parseValue()
			if err != nil {
				return err
			}
			b.Items = append(b.Items, Item{Field: &Field{Key: l.tok, Cmp: nx.cmp, BV: bv}})
		}
	}
}

func (lx *lexer) parseValue() (BV, error) {
	l, err := lx.next()
	if err != nil {
		return BV{}, err
	}
	switch l.kind {
	case lexOpen:
		sub, err := lx.parseBlock(l)
		if err != nil {
			return BV{}, err
		}
		return BV{Block: sub}, nil
	case lexWord:
		// Color literals such as `rgb { 1 2 3 }` are kept as their block.
		if isColorTag(l.tok.Text) {
			nx, err := lx.next()
			if err != nil {
				return BV{}, err
			}
			if nx.kind == lexOpen {
				sub, err := lx.parseBlock(nx)
				if err != nil {
					return BV{}, err
				}
				return BV{Block: sub}, nil
			}
			lx.unread(nx)
		}
		return ValueBV(l.tok), nil
	case lexEOF:
		return BV{}, fmt.Errorf("%s: missing value: %w", l.tok.Loc, ErrUnexpectedEOF)
	}
	return BV{}, fmt.Errorf("%s: expected value, found %q: %w", l.tok.Loc, l.tok.Text, ErrUnexpectedToken)
}

func isColorTag(s string) bool {
	switch s {
	case "rgb", "hsv", "hsv360":
		return true
	}
	return false
}

func (lx *lexer) parseBlock(open lexeme) (*Block, error) {
	b := &Block{Loc: open.tok.Loc}
	bodyStart := open.end
	bodyLine, bodyCol := lx.line, lx.col
	if err := lx.parseItems(b, true); err != nil {
		return nil, err
	}
	// lx.pos is just past the closing brace.
	body := lx.src[bodyStart : lx.pos-1]
	if macroParam.MatchString(body) {
		b.Source = &MacroSource{
			Text: body,
			Loc:  Loc{File: lx.file, Line: bodyLine, Column: bodyCol},
		}
	}
	return b, nil
}
