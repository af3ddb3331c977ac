package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopes"
	"tiger-tools/cmd/tiger/tables"
)

func mustContain(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Fatalf("output does not contain %q:\n%s", want, got)
	}
}

// clearEnv unsets every variable loadConfig reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{envModDir, envGameDir, envOverlays, envWorkers,
		envLogPrefix + "LEVEL", envLogPrefix + "FORMAT", envLogPrefix + "SOURCE", envLogPrefix + "FILE"} {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, dir, name, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("no file gives defaults", func(t *testing.T) {
		clearEnv(t)
		c, err := loadConfig(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		want := Defaults()
		if c.MinSeverity != want.MinSeverity || c.FailOn != want.FailOn || c.Color != want.Color || c.Log != want.Log {
			t.Errorf("got %+v, want %+v", c, want)
		}
	})

	t.Run("file over defaults", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeFile(t, dir, configFileName, `
mod_dir: /mods/mine
min_severity: warning
workers: 3
scope_override:
  my_value: character|landed_title
log:
  level: debug
`)
		c, err := loadConfig(dir)
		if err != nil {
			t.Fatal(err)
		}
		if c.ModDir != "/mods/mine" || c.MinSeverity != "warning" || c.Workers != 3 || c.Log.Level != "debug" {
			t.Errorf("merged config = %+v", c)
		}
		if c.FailOn != "error" || c.Log.Format != "console" {
			t.Errorf("defaults lost: %+v", c)
		}
		ov, err := c.scopeOverrides()
		if err != nil {
			t.Fatal(err)
		}
		if ov["my_value"] != scopes.Character|scopes.LandedTitle {
			t.Errorf("scope override = %s", ov["my_value"])
		}
	})

	t.Run("environment over file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeFile(t, dir, configFileName, "mod_dir: /mods/file\noverlays: [a.yml]\n")
		t.Setenv(envModDir, "/mods/env")
		t.Setenv(envOverlays, "b.yml"+string(os.PathListSeparator)+"c.yml")
		t.Setenv(envLogPrefix+"LEVEL", "ERROR")
		c, err := loadConfig(dir)
		if err != nil {
			t.Fatal(err)
		}
		if c.ModDir != "/mods/env" || c.Log.Level != "error" {
			t.Errorf("env overrides not applied: %+v", c)
		}
		if got := strings.Join(c.Overlays, ","); got != "a.yml,b.yml,c.yml" {
			t.Errorf("overlays = %s", got)
		}
	})

	bad := []struct {
		name string
		text string
	}{
		{"unknown severity", "min_severity: loud\n"},
		{"unknown key", "mod_directory: /mods\n"},
		{"negative workers", "workers: -1\n"},
		{"unknown scope", "scope_override:\n  v: character|dragon\n"},
		{"not yaml", "mod_dir: [\n"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeFile(t, dir, configFileName, tt.text)
			if _, err := loadConfig(dir); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("loadConfig = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestResolveConfigDir(t *testing.T) {
	t.Setenv(envConfigDir, "/etc/tiger-test")
	if dir, _ := resolveConfigDir(); dir != "/etc/tiger-test" {
		t.Errorf("dir = %s", dir)
	}
	t.Setenv(envConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if dir, _ := resolveConfigDir(); dir != filepath.Join("/xdg", appName) {
		t.Errorf("dir = %s", dir)
	}
}

func TestWriteConfig(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested")
	c := Defaults()
	c.ModDir = "/mods/mine"
	if _, err := writeConfig(dir, c, false); err != nil {
		t.Fatal(err)
	}
	if _, err := writeConfig(dir, c, false); err == nil {
		t.Fatal("second write without force should fail")
	}
	if _, err := writeConfig(dir, c, true); err != nil {
		t.Fatalf("forced write: %v", err)
	}
	got, err := loadConfig(dir)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if got.ModDir != "/mods/mine" {
		t.Errorf("ModDir = %q", got.ModDir)
	}
}

func TestChainSession(t *testing.T) {
	eval := func(t *testing.T, s *chainSession, line string) string {
		t.Helper()
		var sb strings.Builder
		if err := s.eval(&sb, line); err != nil {
			t.Fatalf("eval(%q): %v", line, err)
		}
		return sb.String()
	}

	t.Run("scope chain", func(t *testing.T) {
		s := newChainSession(scopes.Character, true)
		out := eval(t, s, "liege.primary_title")
		mustContain(t, out, "=> landed title")
		if strings.Contains(out, "warning") || strings.Contains(out, "error") {
			t.Errorf("unexpected diagnostics:\n%s", out)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		s := newChainSession(scopes.Character, true)
		mustContain(t, eval(t, s, "liege.not_a_real_field"), "unknown token `not_a_real_field`")
		// The sink is reset per line.
		if out := eval(t, s, "liege"); strings.Contains(out, "not_a_real_field") {
			t.Errorf("diagnostics leaked into the next line:\n%s", out)
		}
	})

	t.Run("datatype chain", func(t *testing.T) {
		s := newChainSession(scopes.Character, true)
		out := eval(t, s, "[ROOT.Char.GetFirstName]")
		mustContain(t, out, "=> ROOT.Char.GetFirstName")
		if strings.Contains(out, "datafunctions") {
			t.Errorf("unexpected diagnostics:\n%s", out)
		}
		mustContain(t, eval(t, s, "[ROOT.Char.GetFirstNam]"), "unknown datafunction GetFirstNam")
	})

	t.Run("commands", func(t *testing.T) {
		s := newChainSession(scopes.Character, true)
		mustContain(t, eval(t, s, ":root landed_title"), "root is landed title")
		if s.root != scopes.LandedTitle {
			t.Errorf("root = %s", s.root)
		}
		eval(t, s, ":strict off")
		if s.strict || s.prompt() != "landed title?> " {
			t.Errorf("strict = %v, prompt = %q", s.strict, s.prompt())
		}
		eval(t, s, ":name target character")
		mustContain(t, eval(t, s, "scope:target"), "=> character")
		mustContain(t, eval(t, s, ":bogus"), "unknown command")
		if err := s.eval(io.Discard, ":quit"); !errors.Is(err, io.EOF) {
			t.Errorf(":quit = %v, want io.EOF", err)
		}
	})
}

func TestCollectEntries(t *testing.T) {
	tbl := tables.CK3()
	fields, err := collectEntries(tbl, "field")
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, e := range fields {
		if e.kind != "field" {
			t.Fatalf("got %s entry when asking for fields", e.kind)
		}
		if e.name == "primary_title" && e.to == scopes.LandedTitle.String() {
			found = true
		}
	}
	if !found {
		t.Error("primary_title not listed")
	}

	var sb strings.Builder
	printEntries(&sb, overloads(fields, tableEntry{kind: "field", name: "primary_title"}))
	mustContain(t, sb.String(), "field primary_title  character -> landed title")

	if _, err := collectEntries(tbl, "gizmo"); err == nil {
		t.Error("unknown kind accepted")
	}
	all, _ := collectEntries(tbl, "")
	if len(all) <= len(fields) {
		t.Errorf("all kinds gave %d entries, fields alone %d", len(all), len(fields))
	}
}

func TestSeverityOptions(t *testing.T) {
	if got := len(severityOptions()); got != int(report.Fatal-report.Tips)+1 {
		t.Errorf("%d severity options", got)
	}
}
