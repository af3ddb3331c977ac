// Package scopectx tracks what is known about the scopes leading to the
// block being validated, and reports when script contradicts it.
package scopectx

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"tiger-tools/cmd/tiger/macro"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
)

// MaxScopeNameList bounds the "available names are" hint.
const MaxScopeNameList = 6

var ErrNotUnwound = errors.New("scope chain not properly unwound")

// Context is the scope state of one validation walk. It is not safe for
// concurrent use; every item gets its own.
//
// Named scopes and lists live in separate namespaces that index the same
// named slice. Indices are never removed, because Named entries refer to them.
type Context struct {
	prev *level
	this entry
	// root is always a kindScope entry.
	root entry

	names     map[string]int
	listNames map[string]int
	named     []entry
	// isInput[i] is set when named[i] must be supplied by the caller.
	isInput []*script.Token

	isBuilder  bool
	isUnrooted bool
	strict     bool
	noWarn     bool

	sink      report.Sink
	source    script.Token
	expansion *macro.Expansion
}

type Option func(*Context)

// WithSink sends the context's diagnostics to s.
func WithSink(s report.Sink) Option {
	return func(c *Context) { c.sink = s }
}

// New makes a context where this and root are the same scope of type root.
// The token is used when reporting problems with root.
func New(root scopes.Set, token script.Token, opts ...Option) *Context {
	c := &Context{
		this:      rootEntry(),
		root:      scopeEntry(root, BuiltinReason(token)),
		names:     map[string]int{},
		listNames: map[string]int{},
		strict:    true,
		sink:      report.Discard,
		source:    token,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// NewUnrooted makes a context where the relationship between this and root
// is unknown, as in scripted triggers and effects. It starts with an extra
// prev level.
func NewUnrooted(this scopes.Set, token script.Token, opts ...Option) *Context {
	c := New(scopes.All(), token, opts...)
	c.root = scopeEntry(scopes.All(), TokenReason(token))
	c.prev = &level{this: scopeEntry(scopes.All(), TokenReason(token))}
	c.this = scopeEntry(this, TokenReason(token))
	c.isUnrooted = true
	return c
}

// Clone returns a deep copy. The copy shares the sink.
func (c *Context) Clone() *Context {
	out := *c
	out.prev = c.prev.clone()
	out.names = maps.Clone(c.names)
	out.listNames = maps.Clone(c.listNames)
	out.named = slices.Clone(c.named)
	out.isInput = slices.Clone(c.isInput)
	return &out
}

// SetStrictScopes says whether every named scope is known in advance. When
// strict, unknown scope names are reported. Events are not strict.
func (c *Context) SetStrictScopes(strict bool) { c.strict = strict }
func (c *Context) IsStrict() bool              { return c.strict }

// SetNoWarn silences the context. Used for scope_override entries, which are
// known to be wrong.
func (c *Context) SetNoWarn(noWarn bool) { c.noWarn = noWarn }
func (c *Context) NoWarn() bool          { return c.noWarn }

// SetSource records the token of the item this context validates.
func (c *Context) SetSource(t script.Token) { c.source = t }
func (c *Context) Source() script.Token     { return c.source }

func (c *Context) Sink() report.Sink { return c.sink }

// Expansion is the path of scripted constructs being expanded around this
// walk, nil outside any.
func (c *Context) Expansion() *macro.Expansion     { return c.expansion }
func (c *Context) SetExpansion(e *macro.Expansion) { c.expansion = e }

func (c *Context) push(b *report.Builder) {
	if c.noWarn {
		return
	}
	b.Push(c.sink)
}

// ChangeRoot replaces root during setup, before the context is used.
func (c *Context) ChangeRoot(root scopes.Set, token script.Token) {
	c.root = scopeEntry(root, BuiltinReason(token))
}

// ---- names and lists ---------------------------------------------------------

func (c *Context) defineName(name string, s scopes.Set, r Reason) {
	if idx, ok := c.names[name]; ok {
		c.breakChainsTo(idx)
		c.named[idx] = scopeEntry(s, r)
		return
	}
	c.names[name] = c.appendNamed(scopeEntry(s, r), nil)
}

func (c *Context) appendNamed(e entry, input *script.Token) int {
	c.named = append(c.named, e)
	c.isInput = append(c.isInput, input)
	return len(c.named) - 1
}

// DefineName declares a named scope supplied by the game engine.
// Redefining a name overwrites it.
func (c *Context) DefineName(name string, s scopes.Set, token script.Token) {
	c.defineName(name, s, BuiltinReason(token))
}

// DefineNameToken declares a named scope deduced from script.
func (c *Context) DefineNameToken(name string, s scopes.Set, token script.Token) {
	c.defineName(name, s, TokenReason(token))
}

// IsNameDefined returns the scope types of a known named scope.
func (c *Context) IsNameDefined(name string) (scopes.Set, bool) {
	idx, ok := c.names[name]
	if !ok {
		return scopes.Empty, false
	}
	s, _ := c.resolveNamed(idx)
	return s, true
}

// Names lists the known named scopes, sorted.
func (c *Context) Names() []string {
	return slices.Sorted(maps.Keys(c.names))
}

// ExistsScope handles `exists = scope:name`: from here on the name is known,
// with its type guessed from the name.
func (c *Context) ExistsScope(name string, token script.Token) {
	if _, ok := c.names[name]; ok {
		return
	}
	c.names[name] = c.appendNamed(deduce(token), nil)
}

func (c *Context) defineList(name string, s scopes.Set, r Reason) {
	if idx, ok := c.listNames[name]; ok {
		c.breakChainsTo(idx)
		c.named[idx] = scopeEntry(s, r)
		return
	}
	c.listNames[name] = c.appendNamed(scopeEntry(s, r), nil)
}

// DefineList declares an engine-supplied list. Lists are assumed to hold a
// single scope type.
func (c *Context) DefineList(name string, s scopes.Set, token script.Token) {
	c.defineList(name, s, BuiltinReason(token))
}

// SaveCurrentScope makes scope:name refer to the current scope.
func (c *Context) SaveCurrentScope(name string) {
	cur := c.resolveBackrefs()
	if idx, ok := c.names[name]; ok {
		c.breakChainsTo(idx)
		// `scope:foo = { save_scope_as = foo }` keeps the old value.
		if cur.kind == kindNamed && cur.idx == idx {
			return
		}
		c.named[idx] = cur
		return
	}
	c.names[name] = c.appendNamed(cur, nil)
}

// DefineOrExpectList narrows an existing list to the current scope, or
// defines it as the current scope's type. The list stops being an input.
func (c *Context) DefineOrExpectList(name script.Token) {
	if idx, ok := c.listNames[name.Text]; ok {
		s, r := c.resolveNamed(idx)
		c.Expect(s, r)
		c.isInput[idx] = nil
		return
	}
	c.listNames[name.Text] = c.appendNamed(c.resolveBackrefs(), nil)
}

// ExpectList narrows the current scope to list name's type. In a strict
// context an unknown list is reported.
func (c *Context) ExpectList(name script.Token) {
	if idx, ok := c.listNames[name.Text]; ok {
		s, r := c.resolveNamed(idx)
		c.Expect3(s, r, name)
		return
	}
	if c.strict {
		c.push(report.Err(report.UnknownList).Weak().Msg("unknown list").Loc(name.Loc))
	}
}

// breakChainsTo cuts idx out of Named chains so redefining it cannot loop.
func (c *Context) breakChainsTo(idx int) {
	for i := range c.named {
		if i != idx && c.named[i].kind == kindNamed && c.named[i].idx == idx {
			c.named[i] = c.named[idx]
		}
	}
}

func (c *Context) namedIndex(name string, token script.Token) int {
	if idx, ok := c.names[name]; ok {
		return idx
	}
	var input *script.Token
	if c.strict {
		b := report.Err(report.StrictScopes).Weak().Msgf("scope:%s might not be available here", name)
		if n := len(c.names); n > 0 && n <= MaxScopeNameList {
			b.Info("available names are " + scopes.JoinChoices(c.Names(), "and"))
		}
		c.push(b.Loc(token.Loc))
	} else {
		t := token
		input = &t
	}
	// Added after the warning so it is not listed as available.
	idx := c.appendNamed(deduce(token), input)
	c.names[name] = idx
	return idx
}

func (c *Context) namedListIndex(name string, token script.Token) int {
	if idx, ok := c.listNames[name]; ok {
		return idx
	}
	t := token
	idx := c.appendNamed(scopeEntry(scopes.All(), TokenReason(token)), &t)
	c.listNames[name] = idx
	return idx
}

// ---- levels ------------------------------------------------------------------

// OpenScope opens a new level of type s, as iterators do. prev refers to the
// level below.
func (c *Context) OpenScope(s scopes.Set, token script.Token) {
	c.prev = &level{prev: c.prev, this: c.this}
	c.this = scopeEntry(s, TokenReason(token))
}

// OpenBuilder opens a temporary level for walking a chain like
// root.liege.primary_title. It starts equal to the level below. Finish it with
// FinalizeBuilder or discard it with Close.
func (c *Context) OpenBuilder() {
	c.prev = &level{prev: c.prev, this: c.this}
	c.this = backEntry(0)
	c.isBuilder = true
}

// FinalizeBuilder turns the builder level into a real level.
func (c *Context) FinalizeBuilder() { c.isBuilder = false }

// IsBuilder reports whether the current level is an unfinished builder.
func (c *Context) IsBuilder() bool { return c.isBuilder }

// Close returns to the previous level. It panics when there is none, which
// is a bug in the caller.
func (c *Context) Close() {
	if c.prev == nil {
		panic("scopectx: Close without open level")
	}
	c.this = c.prev.this
	c.prev = c.prev.prev
	c.isBuilder = false
}

// EnterScope opens a level of type s and returns its closer.
//
//	defer sc.EnterScope(scopes.Character, key)()
func (c *Context) EnterScope(s scopes.Set, token script.Token) func() {
	c.OpenScope(s, token)
	return c.Close
}

// EnterBuilder opens a builder level and returns its closer.
func (c *Context) EnterBuilder() func() {
	c.OpenBuilder()
	return c.Close
}

// Depth is the number of open levels.
func (c *Context) Depth() int {
	n := 0
	for l := c.prev; l != nil; l = l.prev {
		n++
	}
	if c.isUnrooted {
		n--
	}
	return n
}

// AssertUnwound reports levels left open by a walk.
func (c *Context) AssertUnwound() error {
	if d := c.Depth(); d != 0 {
		return fmt.Errorf("%s: %w: %d levels open", c.source.Loc, ErrNotUnwound, d)
	}
	return nil
}

// ---- replacing the builder level ---------------------------------------------------

// Replace sets the builder level to an absolute scope such as faith:catholic.
func (c *Context) Replace(s scopes.Set, token script.Token) {
	c.this = scopeEntry(s, TokenReason(token))
}

// ReplaceAll forgets what the builder level is, after a failed step.
func (c *Context) ReplaceAll(token script.Token) {
	c.this = scopeEntry(scopes.All(), TokenReason(token))
}

func (c *Context) ReplaceRoot() { c.this = rootEntry() }
func (c *Context) ReplacePrev() { c.this = backEntry(1) }
func (c *Context) ReplaceThis() { c.this = backEntry(0) }

// ReplaceNamedScope points the builder level at scope:name.
func (c *Context) ReplaceNamedScope(name string, token script.Token) {
	c.this = namedEntry(c.namedIndex(name, token), TokenReason(token))
}

// ReplaceListEntry points the builder level at an element of list name.
func (c *Context) ReplaceListEntry(name string, token script.Token) {
	c.this = namedEntry(c.namedListIndex(name, token), TokenReason(token))
}

// ---- queries -------------------------------------------------------------------

// walkBack follows n steps down the prev chain starting at from, chasing
// backrefs. It returns nil past the known chain.
func walkBack(from *level, n int) *entry {
	for l := from; l != nil; l = l.prev {
		if n == 0 {
			if l.this.kind != kindBack {
				return &l.this
			}
			n = l.this.back + 1
		}
		n--
	}
	return nil
}

// target resolves e, found at the level holding prev chain from, to the
// scope entry it stands for. It returns nil when that is unknown.
func (c *Context) target(e *entry, from *level) *entry {
	for e != nil {
		switch e.kind {
		case kindScope:
			return e
		case kindRoot:
			return &c.root
		case kindNamed:
			e = &c.named[e.idx]
		case kindBack:
			e = walkBack(from, e.back)
		}
	}
	return nil
}

func (c *Context) resolveNamed(idx int) (scopes.Set, Reason) {
	t := c.target(&c.named[idx], nil)
	return t.scopes, t.reason
}

// resolveBackrefs returns what this refers to, with backrefs followed.
func (c *Context) resolveBackrefs() entry {
	if c.this.kind != kindBack {
		return c.this
	}
	if e := walkBack(c.prev, c.this.back); e != nil {
		return *e
	}
	return c.root
}

// ScopesReason returns the current scope types and why they are believed.
func (c *Context) ScopesReason() (scopes.Set, Reason) {
	if t := c.target(&c.this, c.prev); t != nil {
		return t.scopes, t.reason
	}
	// Beyond the known prev chain.
	return scopes.All(), c.root.reason
}

func (c *Context) Scopes() scopes.Set {
	s, _ := c.ScopesReason()
	return s
}

// RootScopes returns root's scope types.
func (c *Context) RootScopes() scopes.Set { return c.root.scopes }

// CanBe reports whether this might be one of s.
func (c *Context) CanBe(s scopes.Set) bool { return c.Scopes().Intersects(s) }

// MustBe reports whether this is known to be one of s.
func (c *Context) MustBe(s scopes.Set) bool { return s.Contains(c.Scopes()) }

// prevScopesReason is ScopesReason for the level below this one.
func (c *Context) prevScopesReason() (scopes.Set, Reason) {
	if e := walkBack(c.prev, 0); e != nil {
		if t := c.target(e, nil); t != nil {
			return t.scopes, t.reason
		}
	}
	return scopes.All(), c.root.reason
}

// ---- narrowing -----------------------------------------------------------------

// Expect records that this is one of s. A contradiction is reported and the
// scope degrades to any scope; Expect then returns false. None means the
// scope is not inspected, and always passes.
func (c *Context) Expect(s scopes.Set, r Reason) bool {
	if c.noWarn || s == scopes.None {
		return true
	}
	t := c.target(&c.this, c.prev)
	if t == nil {
		return true
	}
	return c.check(t, s, r)
}

// Expect3 is Expect with the diagnostic placed at key, for expectations
// that come from a callee.
func (c *Context) Expect3(s scopes.Set, r Reason, key script.Token) bool {
	if s == scopes.None {
		return true
	}
	t := c.target(&c.this, c.prev)
	if t == nil {
		return true
	}
	return c.check3(t, s, r, key, "scope")
}

func narrow(e *entry, s scopes.Set, r Reason) {
	if e.scopes&s != e.scopes {
		e.scopes &= s
		e.reason = r
	}
}

func (c *Context) check(e *entry, s scopes.Set, r Reason) bool {
	if e.scopes.Intersects(s) {
		narrow(e, s, r)
		return true
	}
	c.push(report.Warn(report.Scopes).
		Msgf("`%s` is for %s but scope seems to be %s", r.Token.Text, s, e.scopes).
		Loc(r.Token.Loc).
		LocMsg(e.reason.Token.Loc, "scope was "+e.reason.Msg()))
	e.scopes = scopes.All()
	return false
}

func (c *Context) check3(e *entry, s scopes.Set, r Reason, key script.Token, what string) bool {
	if e.scopes.Intersects(s) {
		narrow(e, s, r)
		return true
	}
	c.push(report.Warn(report.Scopes).
		Msgf("`%s` expects %s to be %s but %s seems to be %s", key.Text, what, s, what, e.scopes).
		Loc(key.Loc).
		LocMsg(r.Token.Loc, fmt.Sprintf("expected %s was %s", what, r.Msg())).
		LocMsg(e.reason.Token.Loc, fmt.Sprintf("actual %s was %s", what, e.reason.Msg())))
	e.scopes = scopes.All()
	return false
}
