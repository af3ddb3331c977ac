package scopectx

import (
	"fmt"
	"maps"
	"slices"

	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/script"
)

// ExpectCompatibility matches the caller c against a callee's context other,
// such as the one a scripted trigger was validated with. key identifies the
// call. Root, this, one prev level, named scopes and lists are compared in
// that order; every unmet expectation is one diagnostic.
func (c *Context) ExpectCompatibility(other *Context, key script.Token) {
	if c.noWarn {
		return
	}
	c.check3(&c.root, other.root.scopes, other.root.reason, key, "root")

	s, r := other.ScopesReason()
	c.Expect3(s, r, key)

	// One prev level is enough for how calls are made.
	s, r = other.prevScopesReason()
	back := 0
	if c.isBuilder {
		back = 1
	}
	if e := walkBack(c.prev, back); e != nil {
		if t := c.target(e, nil); t != nil {
			c.check3(t, s, r, key, "prev")
		}
	}

	for _, name := range slices.Sorted(maps.Keys(other.names)) {
		oidx := other.names[name]
		s, r := other.resolveNamed(oidx)
		input := other.isInput[oidx]
		if _, ok := c.names[name]; ok {
			if input != nil {
				idx := c.namedIndex(name, key)
				c.check3(c.target(&c.named[idx], nil), s, r, key, "scope:"+name)
			} else {
				c.defineName(name, s, r)
			}
		} else if c.strict && input != nil {
			c.push(report.Warn(report.StrictScopes).
				Msgf("`%s` expects scope:%s to be set", key.Text, name).
				Loc(key.Loc).
				LocMsg(input.Loc, "here"))
		} else {
			c.names[name] = c.appendNamed(scopeEntry(s, r), input)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(other.listNames)) {
		oidx := other.listNames[name]
		s, r := other.resolveNamed(oidx)
		input := other.isInput[oidx]
		if _, ok := c.listNames[name]; ok {
			if input != nil {
				idx := c.namedListIndex(name, key)
				c.check3(c.target(&c.named[idx], nil), s, r, key, fmt.Sprintf("list %s", name))
			} else {
				c.defineList(name, s, r)
			}
		} else if c.strict && input != nil {
			c.push(report.Warn(report.StrictScopes).
				Msgf("`%s` expects list %s to exist", key.Text, name).
				Loc(key.Loc).
				LocMsg(input.Loc, "here"))
		} else {
			c.listNames[name] = c.appendNamed(scopeEntry(s, r), input)
		}
	}
}
