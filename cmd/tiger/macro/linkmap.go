package macro

import (
	"sync"

	"tiger-tools/cmd/tiger/script"
)

// LinkMap is a two-way map between link indices and the call sites of macro
// expansions. Tokens from an expanded block carry the index of their call
// site in Loc.Link, so a report can show the chain of calls. Index 0 is
// never handed out.
type LinkMap struct {
	mu    sync.RWMutex
	locs  []script.Loc
	byLoc map[script.Loc]uint32
}

func NewLinkMap() *LinkMap {
	return &LinkMap{locs: []script.Loc{{}}, byLoc: map[script.Loc]uint32{}}
}

// Get returns the call site for idx.
func (m *LinkMap) Get(idx uint32) (script.Loc, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if idx == 0 || int(idx) >= len(m.locs) {
		return script.Loc{}, false
	}
	return m.locs[idx], true
}

// GetOrInsert returns the index for loc, adding it if new.
func (m *LinkMap) GetOrInsert(loc script.Loc) uint32 {
	m.mu.RLock()
	idx, ok := m.byLoc[loc]
	m.mu.RUnlock()
	if ok {
		return idx
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if idx, ok := m.byLoc[loc]; ok {
		return idx
	}
	idx = uint32(len(m.locs))
	m.locs = append(m.locs, loc)
	m.byLoc[loc] = idx
	return idx
}

// Len is the number of recorded call sites.
func (m *LinkMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.locs) - 1
}

// Reset forgets every call site.
func (m *LinkMap) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locs = m.locs[:1]
	clear(m.byLoc)
}
