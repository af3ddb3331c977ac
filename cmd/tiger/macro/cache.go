// Package macro caches the validation of scripted triggers, effects and
// modifiers per call site, and tracks where macro-expanded tokens came from.
package macro

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tooltip"
)

// MaxExpansionDepth bounds nested scripted-construct expansion. Recursion with
// changing arguments never hits the cache, so it needs a hard stop.
const MaxExpansionDepth = 64

// Key identifies one validation of a scripted construct.
type Key struct {
	// Loc is the call site, with the link index cleared.
	Loc script.Loc
	// Args is the sorted argument list, encoded.
	Args       string
	Tooltipped tooltip.Mode
	// Negated is only used for triggers.
	Negated bool
}

// NewKey builds a key. Arguments are sorted by parameter name.
func NewKey(loc script.Loc, args []script.MacroArg, tt tooltip.Mode, negated bool) Key {
	pairs := make([]string, 0, len(args))
	for _, a := range args {
		pairs = append(pairs, a.Name+"="+a.Value.Text)
	}
	slices.Sort(pairs)
	return Key{Loc: loc.Unlinked(), Args: strings.Join(pairs, "\x00"), Tooltipped: tt, Negated: negated}
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%d|%t", k.Loc, k.Args, k.Tooltipped, k.Negated)
}

// Cache maps call sites to the value their validation produced, usually the
// callee's scope context. It is safe for concurrent use.
type Cache[T any] struct {
	mu     sync.RWMutex
	values map[Key]T
}

func NewCache[T any]() *Cache[T] {
	return &Cache[T]{values: map[Key]T{}}
}

func (c *Cache[T]) lookup(k Key) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[k]
	return v, ok
}

func (c *Cache[T]) store(k Key, v T) {
	c.mu.Lock()
	c.values[k] = v
	c.mu.Unlock()
}

// Perform calls onHit with the cached value, if there is one.
func (c *Cache[T]) Perform(key script.Token, args []script.MacroArg, tt tooltip.Mode, negated bool, onHit func(T)) bool {
	v, ok := c.lookup(NewKey(key.Loc, args, tt, negated))
	if ok {
		onHit(v)
	}
	return ok
}

func (c *Cache[T]) Insert(key script.Token, args []script.MacroArg, tt tooltip.Mode, negated bool, v T) {
	c.store(NewKey(key.Loc, args, tt, negated), v)
}

// Expand returns the cached value for the call, or computes it. at is the
// path the caller is on, nil at the top level; compute gets the path
// extended by this call and must pass it to nested calls. A call already on
// the path gets the placeholder instead of expanding again, as does a call
// past MaxExpansionDepth or MaxExpansions. Callers on other paths that miss
// compute the value themselves, and the first value stored wins.
func (c *Cache[T]) Expand(at *Expansion, key script.Token, args []script.MacroArg, tt tooltip.Mode, negated bool,
	placeholder T, compute func(*Expansion) T) (T, Outcome) {
	k := NewKey(key.Loc, args, tt, negated)
	if v, ok := c.lookup(k); ok {
		return v, Cached
	}
	if at.within(c, k) {
		return placeholder, Recursive
	}
	if o := at.limit(); o != Computed {
		return placeholder, o
	}
	next := at.push(c, k)
	next.budget.left--
	return c.storeFirst(k, compute(next)), Computed
}

// storeFirst stores v unless another caller got there first, and returns
// the stored value.
func (c *Cache[T]) storeFirst(k Key, v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.values[k]; ok {
		return old
	}
	c.values[k] = v
	return v
}

// Len is the number of cached calls.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}
