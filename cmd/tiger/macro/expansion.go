package macro

// MaxExpansions bounds how many bodies one top-level call to a scripted
// construct may expand, counting every construct it reaches. Recursion that
// branches with changing arguments grows exponentially below the depth cap.
const MaxExpansions = 4096

// Outcome says how Expand produced its value.
type Outcome int

const (
	// Computed means compute ran for this caller.
	Computed Outcome = iota
	// Cached means an earlier computation was reused.
	Cached
	// Recursive means the key is already being computed further up the
	// path, so the placeholder was returned.
	Recursive
	// TooDeep and TooMany mean a limit was hit for the first time on this
	// path's budget. The placeholder was returned.
	TooDeep
	TooMany
	// Skipped means a limit had already been hit and reported. The
	// placeholder was returned.
	Skipped
)

type budget struct {
	left int
	hit  bool
}

// Expansion is the path of computations a walk is nested in, innermost
// first. A nil *Expansion is the top level. Paths are not safe for
// concurrent use; each walk extends its own.
type Expansion struct {
	parent *Expansion
	cache  any
	key    Key
	depth  int
	budget *budget
}

// Depth is the number of computations on the path.
func (e *Expansion) Depth() int {
	if e == nil {
		return 0
	}
	return e.depth
}

func (e *Expansion) within(cache any, k Key) bool {
	for x := e; x != nil; x = x.parent {
		if x.cache == cache && x.key == k {
			return true
		}
	}
	return false
}

func (e *Expansion) push(cache any, k Key) *Expansion {
	b := &budget{left: MaxExpansions}
	if e != nil {
		b = e.budget
	}
	return &Expansion{parent: e, cache: cache, key: k, depth: e.Depth() + 1, budget: b}
}

// limit reports which limit, if any, stops a new computation below e.
func (e *Expansion) limit() Outcome {
	if e == nil {
		return Computed
	}
	var o Outcome
	switch {
	case e.depth >= MaxExpansionDepth:
		o = TooDeep
	case e.budget.left <= 0:
		o = TooMany
	default:
		return Computed
	}
	if e.budget.hit {
		return Skipped
	}
	e.budget.hit = true
	return o
}
