// Package db holds everything loaded from a mod: scripted triggers, effects,
// modifiers and values, events, and the names of known items. A Database is
// filled by Load and is read-only afterwards, except for the macro caches
// inside each scripted construct.
package db

import (
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"tiger-tools/cmd/tiger/datatype"
	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/macro"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopectx"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tables"
	"tiger-tools/cmd/tiger/validate"
	tlog "tiger-tools/pkg/log"
)

var (
	ErrLoaded     = errors.New("database already loaded")
	ErrNotLoaded  = errors.New("database not loaded")
	ErrBadOverlay = errors.New("bad table overlay")
)

// Database implements validate.Data.
type Database struct {
	tables    *tables.Tables
	datatypes *datatype.Tables
	sink      report.Sink
	links     *macro.LinkMap
	logger    *slog.Logger

	game      fs.FS
	overlays  []string
	overrides map[string]scopes.Set

	mu     sync.RWMutex
	loaded bool
	items  map[item.Kind]map[string]script.Token
	// locs holds localization keys per language.
	locs map[string]map[string]bool

	triggers  map[string]*ScriptedTrigger
	effects   map[string]*ScriptedEffect
	values    map[string]*ScriptValue
	modifiers map[string]*ScriptedModifier
	events    map[string]*Event
	bindings  map[string]*datatype.Binding
}

type Option func(*Database)

// WithSink sends diagnostics to s instead of discarding them.
func WithSink(s report.Sink) Option {
	return func(d *Database) { d.sink = s }
}

// WithTables replaces the built-in CK3 tables.
func WithTables(t *tables.Tables) Option {
	return func(d *Database) { d.tables = t }
}

// WithGame loads the base game from fsys before the mod. Definitions in the
// mod replace the game's without being reported as duplicates.
func WithGame(fsys fs.FS) Option {
	return func(d *Database) { d.game = fsys }
}

// WithOverlays adds YAML table overlays read from the OS filesystem, on top
// of any under tiger/ in the mod.
func WithOverlays(paths ...string) Option {
	return func(d *Database) { d.overlays = append(d.overlays, paths...) }
}

// WithScopeOverride fixes the scopes of the named script values. Their
// bodies are still validated, but not against the caller's scope.
func WithScopeOverride(m map[string]scopes.Set) Option {
	return func(d *Database) {
		for k, v := range m {
			d.overrides[k] = v
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Database) { d.logger = l }
}

func New(opts ...Option) *Database {
	d := &Database{
		sink:      report.Discard,
		links:     macro.NewLinkMap(),
		overrides: map[string]scopes.Set{},
		items:     map[item.Kind]map[string]script.Token{},
		triggers:  map[string]*ScriptedTrigger{},
		effects:   map[string]*ScriptedEffect{},
		values:    map[string]*ScriptValue{},
		modifiers: map[string]*ScriptedModifier{},
		events:    map[string]*Event{},
		bindings:  map[string]*datatype.Binding{},
		locs:      map[string]map[string]bool{},
		datatypes: datatype.CK3(),
	}
	for _, o := range opts {
		o(d)
	}
	if d.tables == nil {
		d.tables = tables.CK3()
	}
	if d.logger == nil {
		d.logger = tlog.WithComponent("db")
	}
	return d
}

var (
	_ validate.Data = (*Database)(nil)
	_ datatype.Data = (*Database)(nil)
)

func (d *Database) Tables() *tables.Tables  { return d.tables }
func (d *Database) Sink() report.Sink       { return d.sink }
func (d *Database) LinkMap() *macro.LinkMap { return d.links }
func (d *Database) push(b *report.Builder)  { b.Push(d.sink) }

func (d *Database) Datatypes() *datatype.Tables { return d.datatypes }

// AddItem records a known item. Kinds that never get an AddItem are not
// checked at all.
func (d *Database) AddItem(kind item.Kind, name string) {
	d.addItemToken(kind, script.NewToken(name, script.Loc{}))
}

func (d *Database) addItemToken(kind item.Kind, t script.Token) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.items[kind]
	if !ok {
		m = map[string]script.Token{}
		d.items[kind] = m
	}
	if _, dup := m[t.Text]; !dup {
		m[t.Text] = t
	}
}

// knowKind marks kind as loaded even if no names were found, so that every
// reference to it is reported.
func (d *Database) knowKind(kind item.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.items[kind]; !ok {
		d.items[kind] = map[string]script.Token{}
	}
}

func (d *Database) ItemExists(kind item.Kind, name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.items[kind]
	if !ok {
		return true
	}
	_, ok = m[name]
	return ok
}

// ItemDefined is like ItemExists, but false for kinds that were never loaded.
func (d *Database) ItemDefined(kind item.Kind, name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.items[kind][name]
	return ok
}

// LocalizationExists reports whether key is defined in lang. An empty lang,
// or a language the mod has no files for, matches any definition.
func (d *Database) LocalizationExists(lang, key string) bool {
	d.mu.RLock()
	m, ok := d.locs[lang]
	d.mu.RUnlock()
	if lang == "" || !ok {
		return d.ItemExists(item.Localization, key)
	}
	return m[key]
}

func (d *Database) DataBinding(name string) (*datatype.Binding, bool) {
	b, ok := d.bindings[name]
	return b, ok
}

// ItemNames returns the sorted names of one kind.
func (d *Database) ItemNames(kind item.Kind) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Sorted(maps.Keys(d.items[kind]))
}

func (d *Database) ScriptedTrigger(name string) (validate.ScriptedTrigger, bool) {
	st, ok := d.triggers[name]
	if !ok {
		return nil, false
	}
	return st, true
}

func (d *Database) ScriptedEffect(name string) (validate.ScriptedEffect, bool) {
	se, ok := d.effects[name]
	if !ok {
		return nil, false
	}
	return se, true
}

func (d *Database) ScriptValue(name string) (validate.ScriptValue, bool) {
	sv, ok := d.values[name]
	if !ok {
		return nil, false
	}
	return sv, true
}

func (d *Database) ScriptedModifier(name string) (validate.ScriptedModifier, bool) {
	m, ok := d.modifiers[name]
	if !ok {
		return nil, false
	}
	return m, true
}

// Event returns the event with the given id, like `my_events.0001`.
func (d *Database) Event(id string) (*Event, bool) {
	e, ok := d.events[id]
	return e, ok
}

// CheckEventScope narrows sc to the scope the event expects as root.
// Unknown events are left to the item check.
func (d *Database) CheckEventScope(id script.Token, sc *scopectx.Context) {
	if e, ok := d.events[id.Text]; ok {
		e.CheckScope(id, sc)
	}
}

// Stats counts what was loaded, for logging and the CLI summary.
type Stats struct {
	Triggers, Effects, Values, Modifiers, Events, Items int
}

func (d *Database) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := Stats{
		Triggers:  len(d.triggers),
		Effects:   len(d.effects),
		Values:    len(d.values),
		Modifiers: len(d.modifiers),
		Events:    len(d.events),
	}
	for _, m := range d.items {
		s.Items += len(m)
	}
	return s
}
