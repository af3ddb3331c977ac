package datatype

import (
	"fmt"
	"slices"

	"tiger-tools/cmd/tiger/script"
)

// MaxBindingSubstitutions bounds data binding expansion within one chain.
const MaxBindingSubstitutions = 255

// Binding is a data_binding macro: a code that is replaced by a chain, with
// its parameters substituted.
//
//	MyName = {
//		definition = "MyName(Char)"
//		replace_with = "Char.GetFirstName"
//	}
type Binding struct {
	Key script.Token
	// Name is the code the binding replaces, from its definition.
	Name    string
	Parms   []string
	Replace *Chain
}

// NewBinding parses a binding's definition and replacement.
func NewBinding(key, definition, replaceWith script.Token) (*Binding, error) {
	def, err := ParseChain(definition)
	if err != nil {
		return nil, err
	}
	if len(def.Codes) != 1 {
		return nil, fmt.Errorf("%s: definition must be a single code: %w", definition.Loc, ErrSyntax)
	}
	b := &Binding{Key: key, Name: def.Codes[0].Name.Text}
	for _, a := range def.Codes[0].Args {
		if a.Chain == nil || len(a.Chain.Codes) != 1 || len(a.Chain.Codes[0].Args) != 0 {
			return nil, fmt.Errorf("%s: parameters must be plain names: %w", definition.Loc, ErrSyntax)
		}
		b.Parms = append(b.Parms, a.Chain.Codes[0].Name.Text)
	}
	if b.Replace, err = ParseChain(replaceWith); err != nil {
		return nil, err
	}
	return b, nil
}

// Apply returns the codes that replace call. It fails if the call has the
// wrong number of arguments, or a literal is used where a code is needed.
func (b *Binding) Apply(call Code) ([]Code, error) {
	if len(call.Args) != len(b.Parms) {
		return nil, fmt.Errorf("data binding %s takes %d arguments", b.Key.Text, len(b.Parms))
	}
	subst := make(map[string]CodeArg, len(b.Parms))
	for i, p := range b.Parms {
		subst[p] = call.Args[i]
	}
	codes, parm := substCodes(b.Replace.Codes, subst, call.Name.Loc)
	if parm != "" {
		return nil, fmt.Errorf("data binding %s needs a code for %s, not a literal", b.Key.Text, parm)
	}
	return codes, nil
}

// substCodes returns the substituted codes, or the parameter that was given
// a literal where a code is needed.
func substCodes(codes []Code, subst map[string]CodeArg, at script.Loc) ([]Code, string) {
	var out []Code
	for _, c := range codes {
		if a, ok := subst[c.Name.Text]; ok && len(c.Args) == 0 {
			if a.Chain == nil {
				return nil, c.Name.Text
			}
			out = append(out, a.Chain.Codes...)
			continue
		}
		nc := Code{Name: script.NewToken(c.Name.Text, at)}
		for _, arg := range c.Args {
			if arg.Chain != nil && len(arg.Chain.Codes) == 1 && len(arg.Chain.Codes[0].Args) == 0 {
				if a, ok := subst[arg.Chain.Codes[0].Name.Text]; ok {
					nc.Args = append(nc.Args, a)
					continue
				}
			}
			if arg.Chain != nil {
				inner, parm := substCodes(arg.Chain.Codes, subst, at)
				if parm != "" {
					return nil, parm
				}
				nc.Args = append(nc.Args, CodeArg{Chain: &Chain{Codes: inner}})
				continue
			}
			lit := script.NewToken(arg.Literal.Text, at)
			nc.Args = append(nc.Args, CodeArg{Literal: &lit})
		}
		out = append(out, nc)
	}
	return slices.Clip(out), ""
}
