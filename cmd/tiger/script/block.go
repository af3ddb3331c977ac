package script

import "strings"

// Comparator is the operator between a key and its value.
type Comparator int

const (
	Equals Comparator = iota
	QuestionEquals
	DoubleEquals
	NotEquals
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
)

var comparatorText = map[Comparator]string{
	Equals:         "=",
	QuestionEquals: "?=",
	DoubleEquals:   "==",
	NotEquals:      "!=",
	Less:           "<",
	LessOrEqual:    "<=",
	Greater:        ">",
	GreaterOrEqual: ">=",
}

func (c Comparator) String() string { return comparatorText[c] }

// IsEquality reports whether c is one of the `=` family that assigns or tests equality
// (not `!=` or the ordering comparators).
func (c Comparator) IsEquality() bool {
	return c == Equals || c == QuestionEquals || c == DoubleEquals
}

// BV holds either a value or a block. Exactly one of the two is set.
type BV struct {
	Value *Token
	Block *Block
}

// ValueBV wraps a token as a BV.
func ValueBV(t Token) BV { return BV{Value: &t} }

func (bv BV) IsBlock() bool { return bv.Block != nil }

// GetValue returns the value token, if bv holds one.
func (bv BV) GetValue() (Token, bool) {
	if bv.Value == nil {
		return Token{}, false
	}
	return *bv.Value, true
}

func (bv BV) Loc() Loc {
	if bv.Value != nil {
		return bv.Value.Loc
	}
	if bv.Block != nil {
		return bv.Block.Loc
	}
	return Loc{}
}

// Field is a `key cmp value` item.
type Field struct {
	Key Token
	Cmp Comparator
	BV  BV
}

// Item is one entry in a block: a field, a bare value, or a bare block.
type Item struct {
	Field *Field
	Value *Token
	Block *Block
}

// MacroSource is the raw text of a block whose body refers to $PARAMS$.
// It is kept so that the block can be re-parsed once arguments are known.
type MacroSource struct {
	Text string
	Loc  Loc
}

// Block is a `{ ... }` body, or the top level of a file.
type Block struct {
	Items  []Item
	Loc    Loc
	Source *MacroSource
}

// Fields returns every field of b in order.
func (b *Block) Fields() []Field {
	var out []Field
	for _, it := range b.Items {
		if it.Field != nil {
			out = append(out, *it.Field)
		}
	}
	return out
}

// Values returns the bare values of b, such as in `{ 1 5 }`.
func (b *Block) Values() []Token {
	var out []Token
	for _, it := range b.Items {
		if it.Value != nil {
			out = append(out, *it.Value)
		}
	}
	return out
}

// FirstItemIsBare reports whether b starts with a bare value or block, as ranges do.
func (b *Block) FirstItemIsBare() bool {
	return len(b.Items) > 0 && b.Items[0].Field == nil
}

// GetField returns the first field named key (case-insensitive).
func (b *Block) GetField(key string) (BV, bool) {
	for _, it := range b.Items {
		if it.Field != nil && strings.EqualFold(it.Field.Key.Text, key) {
			return it.Field.BV, true
		}
	}
	return BV{}, false
}

func (b *Block) HasKey(key string) bool {
	_, ok := b.GetField(key)
	return ok
}

func (b *Block) GetFieldValue(key string) (Token, bool) {
	bv, ok := b.GetField(key)
	if !ok {
		return Token{}, false
	}
	return bv.GetValue()
}

func (b *Block) GetFieldBlock(key string) (*Block, bool) {
	bv, ok := b.GetField(key)
	if !ok || bv.Block == nil {
		return nil, false
	}
	return bv.Block, true
}

// GetFieldValues returns the values of every field named key.
func (b *Block) GetFieldValues(key string) []Token {
	var out []Token
	for _, f := range b.Fields() {
		if f.Key.LowercaseIs(key) && f.BV.Value != nil {
			out = append(out, *f.BV.Value)
		}
	}
	return out
}

// Definitions returns the fields whose value is a block.
func (b *Block) Definitions() []Field {
	var out []Field
	for _, f := range b.Fields() {
		if f.BV.Block != nil {
			out = append(out, f)
		}
	}
	return out
}

// Relink stamps link on every location in b, recursively.
func (b *Block) Relink(link uint32) {
	b.Loc.Link = link
	for i := range b.Items {
		it := &b.Items[i]
		switch {
		case it.Field != nil:
			it.Field.Key.Loc.Link = link
			if it.Field.BV.Value != nil {
				it.Field.BV.Value.Loc.Link = link
			} else if it.Field.BV.Block != nil {
				it.Field.BV.Block.Relink(link)
			}
		case it.Value != nil:
			it.Value.Loc.Link = link
		case it.Block != nil:
			it.Block.Relink(link)
		}
	}
}
