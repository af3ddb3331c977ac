package db

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"tiger-tools/cmd/tiger/datatype"
	"tiger-tools/cmd/tiger/item"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/script"
	"tiger-tools/cmd/tiger/tablesyaml"
)

// itemDirs are the folders whose top-level keys name items. A kind is only
// checked if its folder exists in the mod or the game.
var itemDirs = []struct {
	kind item.Kind
	dir  string
}{
	{item.Trait, "common/traits"},
	{item.OpinionModifier, "common/opinion_modifiers"},
	{item.Modifier, "common/modifiers"},
	{item.Hook, "common/hook_types"},
	{item.Secret, "common/secret_types"},
	{item.CasusBelli, "common/casus_belli_types"},
	{item.Culture, "common/culture/cultures"},
	{item.Religion, "common/religion/religions"},
	{item.Decision, "common/decisions"},
	{item.Lifestyle, "common/lifestyles"},
	{item.Perk, "common/lifestyle_perks"},
	{item.Nickname, "common/nicknames"},
	{item.GovernmentType, "common/governments"},
	{item.HoldingType, "common/holdings"},
	{item.MenAtArms, "common/men_at_arms_types"},
	{item.Innovation, "common/culture/innovations"},
	{item.Building, "common/buildings"},
	{item.GameConcept, "common/game_concepts"},
	{item.CustomLocalization, "common/customizable_localization"},
}

// source is one tree of game files. Locations from the game are prefixed so
// they cannot be mistaken for mod files.
type source struct {
	fsys   fs.FS
	prefix string
}

func (s source) label(p string) string { return s.prefix + p }

// Load reads the mod in fsys, after the game files if WithGame was given.
// Read errors stop the load; files that do not parse are reported and
// skipped.
func (d *Database) Load(fsys fs.FS) error {
	d.mu.Lock()
	if d.loaded {
		d.mu.Unlock()
		return ErrLoaded
	}
	d.loaded = true
	d.mu.Unlock()

	start := time.Now()
	var srcs []source
	if d.game != nil {
		srcs = append(srcs, source{fsys: d.game, prefix: "$GAME/"})
	}
	srcs = append(srcs, source{fsys: fsys})

	if err := d.loadOverlays(fsys); err != nil {
		return err
	}
	for _, src := range srcs {
		steps := []func(source) error{
			d.loadItems,
			d.loadLocalization,
			d.loadBindings,
			d.loadScripted,
			d.loadEvents,
		}
		for _, step := range steps {
			if err := step(src); err != nil {
				return err
			}
		}
	}

	st := d.Stats()
	d.logger.Info("mod loaded",
		"triggers", st.Triggers, "effects", st.Effects, "values", st.Values,
		"modifiers", st.Modifiers, "events", st.Events, "items", st.Items,
		"duration", time.Since(start))
	return nil
}

func (d *Database) loadOverlays(fsys fs.FS) error {
	paths, err := fs.Glob(fsys, "tiger/*.yml")
	if err != nil {
		return fmt.Errorf("phase=overlay: %w", err)
	}
	for _, p := range paths {
		doc, err := tablesyaml.LoadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("phase=overlay path=%s: %w: %w", p, ErrBadOverlay, err)
		}
		tablesyaml.Apply(doc, d.tables, d)
		d.logger.Debug("overlay applied", "path", p)
	}
	for _, p := range d.overlays {
		doc, err := tablesyaml.LoadFile(os.DirFS(filepath.Dir(p)), filepath.Base(p))
		if err != nil {
			return fmt.Errorf("phase=overlay path=%s: %w: %w", p, ErrBadOverlay, err)
		}
		tablesyaml.Apply(doc, d.tables, d)
		d.logger.Debug("overlay applied", "path", p)
	}
	return nil
}

// parseFile reads and parses one script file. ok is false if the file was
// reported and should be skipped.
func (d *Database) parseFile(src source, p string) (b *script.Block, ok bool, err error) {
	data, err := fs.ReadFile(src.fsys, p)
	if err != nil {
		return nil, false, fmt.Errorf("phase=load path=%s: %w", src.label(p), err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	b, err = script.Parse(src.label(p), string(data))
	if err != nil {
		d.push(report.Err(report.ParseError).Msg("could not parse file").Info(err.Error()).
			Loc(script.Loc{File: src.label(p), Line: 1, Column: 1}))
		return nil, false, nil
	}
	d.logger.Debug("file parsed", "path", src.label(p))
	return b, true, nil
}

// txtFiles lists the .txt files directly under dir, or everywhere under it
// if recursive. A missing dir is not an error.
func txtFiles(fsys fs.FS, dir string, recursive bool) ([]string, bool, error) {
	if _, err := fs.Stat(fsys, dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("phase=load path=%s: %w", dir, err)
	}
	var out []string
	err := fs.WalkDir(fsys, dir, func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if p != dir && !recursive {
				return fs.SkipDir
			}
			return nil
		}
		if strings.EqualFold(path.Ext(p), ".txt") {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, true, fmt.Errorf("phase=load path=%s: %w", dir, err)
	}
	slices.Sort(out)
	return out, true, nil
}

func (d *Database) loadItems(src source) error {
	for _, id := range itemDirs {
		files, exists, err := txtFiles(src.fsys, id.dir, false)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		d.knowKind(id.kind)
		for _, p := range files {
			b, ok, err := d.parseFile(src, p)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			for _, f := range b.Fields() {
				if strings.HasPrefix(f.Key.Text, "@") {
					continue
				}
				d.addItemToken(id.kind, f.Key)
				if id.kind == item.Religion && f.BV.Block != nil {
					d.knowKind(item.Faith)
					if faiths, ok := f.BV.Block.GetFieldBlock("faiths"); ok {
						for _, ff := range faiths.Definitions() {
							d.addItemToken(item.Faith, ff.Key)
						}
					}
				}
			}
		}
	}
	return nil
}

// loadLocalization collects localization keys. The files are `key:0 "text"`
// lines under a language header, which is not YAML despite the extension.
func (d *Database) loadLocalization(src source) error {
	if _, err := fs.Stat(src.fsys, "localization"); err != nil {
		return nil
	}
	d.knowKind(item.Localization)
	return fs.WalkDir(src.fsys, "localization", func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("phase=load path=%s: %w", src.label(p), err)
		}
		if de.IsDir() || !strings.EqualFold(path.Ext(p), ".yml") {
			return nil
		}
		data, err := fs.ReadFile(src.fsys, p)
		if err != nil {
			return fmt.Errorf("phase=load path=%s: %w", src.label(p), err)
		}
		data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
		sc := bufio.NewScanner(bytes.NewReader(data))
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		line, lang := 0, ""
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			if strings.HasPrefix(text, "l_") && strings.HasSuffix(text, ":") {
				lang = strings.TrimSuffix(strings.TrimPrefix(text, "l_"), ":")
				continue
			}
			key, _, ok := strings.Cut(text, ":")
			if !ok || key == "" {
				continue
			}
			d.addItemToken(item.Localization, script.NewToken(key, script.Loc{File: src.label(p), Line: line, Column: 1}))
			if lang != "" {
				d.addLoc(lang, key)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("phase=load path=%s: %w", src.label(p), err)
		}
		return nil
	})
}

func (d *Database) addLoc(lang, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.locs[lang]
	if !ok {
		m = map[string]bool{}
		d.locs[lang] = m
	}
	m[key] = true
}

// loadBindings reads data_binding/, the macros used in datatype chains.
func (d *Database) loadBindings(src source) error {
	files, _, err := txtFiles(src.fsys, "data_binding", false)
	if err != nil {
		return err
	}
	for _, p := range files {
		b, ok, err := d.parseFile(src, p)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		for _, f := range b.Definitions() {
			def, okDef := f.BV.Block.GetFieldValue("definition")
			repl, okRepl := f.BV.Block.GetFieldValue("replace_with")
			if !okDef || !okRepl {
				d.push(report.Err(report.FieldMissing).Msg("data binding needs `definition` and `replace_with`").Loc(f.Key.Loc))
				continue
			}
			binding, err := datatype.NewBinding(f.Key, def, repl)
			if err != nil {
				d.push(report.Err(report.Datafunctions).Msg("could not parse data binding").Info(err.Error()).Loc(f.Key.Loc))
				continue
			}
			d.bindings[binding.Name] = binding
		}
	}
	return nil
}

func (d *Database) duplicate(what string, key, other script.Token) {
	d.push(report.Err(report.Duplicate).Msgf("duplicate %s", what).
		Info("only one of them will be used").Loc(key.Loc).LocMsg(other.Loc, "the other one is here"))
}

func (d *Database) loadScripted(src source) error {
	type kind struct {
		dir  string
		what string
		add  func(f script.Field)
	}
	game := src.prefix != ""
	kinds := []kind{
		{"common/scripted_triggers", "scripted trigger", func(f script.Field) {
			if other, ok := d.triggers[f.Key.Text]; ok && !game && !isGameLoc(other.Key.Loc) {
				d.duplicate("scripted trigger", f.Key, other.Key)
			}
			d.triggers[f.Key.Text] = newScriptedTrigger(f.Key, f.BV.Block)
		}},
		{"common/scripted_effects", "scripted effect", func(f script.Field) {
			if other, ok := d.effects[f.Key.Text]; ok && !game && !isGameLoc(other.Key.Loc) {
				d.duplicate("scripted effect", f.Key, other.Key)
			}
			d.effects[f.Key.Text] = newScriptedEffect(f.Key, f.BV.Block)
		}},
		{"common/scripted_modifiers", "scripted modifier", func(f script.Field) {
			if other, ok := d.modifiers[f.Key.Text]; ok && !game && !isGameLoc(other.Key.Loc) {
				d.duplicate("scripted modifier", f.Key, other.Key)
			}
			d.modifiers[f.Key.Text] = newScriptedModifier(f.Key, f.BV.Block)
		}},
	}
	for _, k := range kinds {
		files, _, err := txtFiles(src.fsys, k.dir, false)
		if err != nil {
			return err
		}
		for _, p := range files {
			b, ok, err := d.parseFile(src, p)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			for _, f := range b.Fields() {
				if strings.HasPrefix(f.Key.Text, "@") {
					continue
				}
				if f.BV.Block == nil {
					d.push(report.Err(report.Validation).Msgf("expected a block for %s `%s`", k.what, f.Key.Text).Loc(f.Key.Loc))
					continue
				}
				k.add(f)
			}
		}
	}

	files, _, err := txtFiles(src.fsys, "common/script_values", false)
	if err != nil {
		return err
	}
	for _, p := range files {
		b, ok, err := d.parseFile(src, p)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		for _, f := range b.Fields() {
			if strings.HasPrefix(f.Key.Text, "@") {
				continue
			}
			if other, ok := d.values[f.Key.Text]; ok && !game && !isGameLoc(other.Key.Loc) {
				d.duplicate("script value", f.Key, other.Key)
			}
			var override *scopes.Set
			if s, ok := d.overrides[f.Key.Text]; ok {
				override = &s
			}
			d.values[f.Key.Text] = newScriptValue(f.Key, f.BV, override)
		}
	}
	return nil
}

func isGameLoc(loc script.Loc) bool { return strings.HasPrefix(loc.File, "$GAME/") }

// loadEvents reads events/. Besides events, the files may hold namespace
// declarations and local `scripted_trigger name = { }` definitions.
func (d *Database) loadEvents(src source) error {
	files, exists, err := txtFiles(src.fsys, "events", true)
	if err != nil {
		return err
	}
	if exists {
		d.knowKind(item.Event)
	}
	for _, p := range files {
		b, ok, err := d.parseFile(src, p)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		expecting := ""
		for _, it := range b.Items {
			if it.Value != nil {
				v := *it.Value
				if expecting == "" && (v.Is("scripted_trigger") || v.Is("scripted_effect")) {
					expecting = v.Text
					continue
				}
				d.push(report.Err(report.Validation).Msg("unexpected token").Info("Did you forget an = ?").Loc(v.Loc))
				continue
			}
			if it.Field == nil {
				continue
			}
			f := *it.Field
			switch {
			case f.Key.Is("namespace"):
				continue
			case f.Key.Is("scripted_trigger") || f.Key.Is("scripted_effect"):
				d.push(report.Err(report.ParseError).Msgf("`%s` should be used without `=`", f.Key.Text).Loc(f.Key.Loc))
				continue
			case f.BV.Block == nil:
				if !strings.HasPrefix(f.Key.Text, "@") {
					d.push(report.Err(report.UnknownField).Msg("unknown setting in event files").Loc(f.Key.Loc))
				}
				continue
			}
			switch expecting {
			case "scripted_trigger":
				d.triggers[f.Key.Text] = newScriptedTrigger(f.Key, f.BV.Block)
			case "scripted_effect":
				d.effects[f.Key.Text] = newScriptedEffect(f.Key, f.BV.Block)
			default:
				d.addEvent(f.Key, f.BV.Block)
			}
			expecting = ""
		}
	}
	return nil
}

func (d *Database) addEvent(key script.Token, b *script.Block) {
	ns, num, ok := strings.Cut(key.Text, ".")
	if !ok || ns == "" || strings.Trim(num, "0123456789") != "" || num == "" {
		d.push(report.Warn(report.Validation).Msg("Event names should be in the form NAMESPACE.NUMBER").
			Info("where NAMESPACE is the namespace declared at the top of the file, and NUMBER is a series of digits.").
			Loc(key.Loc))
	}
	if other, ok := d.events[key.Text]; ok && !isGameLoc(other.Key.Loc) {
		d.duplicate("event", key, other.Key)
	}
	d.events[key.Text] = newEvent(key, b)
	d.addItemToken(item.Event, key)
}
