package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"tiger-tools/cmd/tiger/report"
	"tiger-tools/cmd/tiger/scopes"
	tlog "tiger-tools/pkg/log"
)

// appName is the single source of truth for the application name.
// Env var names and config paths are derived from it.
const appName = "tiger"

const configFileName = "config.yml"

var (
	envConfigDir = strings.ToUpper(appName) + "_CONFIG_DIR"
	envOverlays  = strings.ToUpper(appName) + "_OVERLAYS"
	envModDir    = strings.ToUpper(appName) + "_MOD_DIR"
	envGameDir   = strings.ToUpper(appName) + "_GAME_DIR"
	envWorkers   = strings.ToUpper(appName) + "_WORKERS"
	envLogPrefix = strings.ToUpper(appName) + "_LOG_"
)

var ErrInvalidConfig = errors.New("invalid config")

//go:embed config_schema.json
var configSchemaJSON string

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source,omitempty"`
	File   string `yaml:"file,omitempty"`
}

// Config is the user's config.yml, merged over Defaults and then over the
// environment. Flags win over all of it.
type Config struct {
	ModDir      string   `yaml:"mod_dir,omitempty"`
	GameDir     string   `yaml:"game_dir,omitempty"`
	Overlays    []string `yaml:"overlays,omitempty"`
	MinSeverity string   `yaml:"min_severity"`
	FailOn      string   `yaml:"fail_on"`
	Color       string   `yaml:"color"`
	Workers     int      `yaml:"workers"`
	// ScopeOverride maps a script value name to a `|`-separated scope list.
	ScopeOverride map[string]string `yaml:"scope_override,omitempty"`
	Log           LogConfig         `yaml:"log"`
}

func Defaults() Config {
	return Config{
		MinSeverity: "untidy",
		FailOn:      "error",
		Color:       string(report.ColorAuto),
		Log:         LogConfig{Level: "info", Format: "console"},
	}
}

// resolveConfigDir returns the base config directory for the application.
// Priority: $TIGER_CONFIG_DIR > $XDG_CONFIG_HOME/tiger > ~/.config/tiger
func resolveConfigDir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads config.yml from dir, if there is one.
func loadConfig(dir string) (Config, error) {
	cfg := Defaults()
	path := filepath.Join(dir, configFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		file, err := parseConfig(path, data)
		if err != nil {
			return cfg, err
		}
		mergeInto(&cfg, &file)
	}
	applyEnvOverrides(&cfg)
	return cfg, cfg.check()
}

func parseConfig(path string, data []byte) (Config, error) {
	var cfg Config
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return cfg, fmt.Errorf("phase=parse path=%s: %w: %v", path, ErrInvalidConfig, err)
	}
	if generic == nil {
		return cfg, nil
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchemaJSON),
		gojsonschema.NewGoLoader(generic),
	)
	if err != nil {
		return cfg, fmt.Errorf("phase=schema path=%s: %w: %v", path, ErrInvalidConfig, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return cfg, fmt.Errorf("phase=schema path=%s: %w: %s", path, ErrInvalidConfig, strings.Join(msgs, "; "))
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("phase=parse path=%s: %w: %v", path, ErrInvalidConfig, err)
	}
	return cfg, nil
}

func mergeInto(dst, src *Config) {
	if v := strings.TrimSpace(src.ModDir); v != "" {
		dst.ModDir = v
	}
	if v := strings.TrimSpace(src.GameDir); v != "" {
		dst.GameDir = v
	}
	dst.Overlays = append(dst.Overlays, src.Overlays...)
	if v := strings.TrimSpace(src.MinSeverity); v != "" {
		dst.MinSeverity = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.FailOn); v != "" {
		dst.FailOn = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Color); v != "" {
		dst.Color = strings.ToLower(v)
	}
	if src.Workers != 0 {
		dst.Workers = src.Workers
	}
	if len(src.ScopeOverride) > 0 {
		if dst.ScopeOverride == nil {
			dst.ScopeOverride = map[string]string{}
		}
		for k, v := range src.ScopeOverride {
			dst.ScopeOverride[k] = v
		}
	}
	if v := strings.TrimSpace(src.Log.Level); v != "" {
		dst.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Log.Format); v != "" {
		dst.Log.Format = strings.ToLower(v)
	}
	dst.Log.Source = src.Log.Source
	if v := strings.TrimSpace(src.Log.File); v != "" {
		dst.Log.File = v
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envModDir)); v != "" {
		cfg.ModDir = v
	}
	if v := strings.TrimSpace(os.Getenv(envGameDir)); v != "" {
		cfg.GameDir = v
	}
	cfg.Overlays = append(cfg.Overlays, splitList(os.Getenv(envOverlays))...)
	if v := strings.TrimSpace(os.Getenv(envWorkers)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(envLogPrefix + "LEVEL")); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(envLogPrefix + "FORMAT")); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(envLogPrefix + "SOURCE")); v != "" {
		lv := strings.ToLower(v)
		cfg.Log.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(envLogPrefix + "FILE")); v != "" {
		cfg.Log.File = v
	}
}

// splitList splits an OS path list, dropping empty parts.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range filepath.SplitList(s) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// check validates the fields that are parsed later, so a typo fails before
// the mod is loaded.
func (c Config) check() error {
	if _, err := report.ParseSeverity(c.MinSeverity); err != nil {
		return fmt.Errorf("%w: min_severity: %w", ErrInvalidConfig, err)
	}
	if _, err := report.ParseSeverity(c.FailOn); err != nil {
		return fmt.Errorf("%w: fail_on: %w", ErrInvalidConfig, err)
	}
	if _, err := report.ParseColorMode(c.Color); err != nil {
		return fmt.Errorf("%w: color: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	if _, err := c.scopeOverrides(); err != nil {
		return err
	}
	return nil
}

func (c Config) scopeOverrides() (map[string]scopes.Set, error) {
	out := make(map[string]scopes.Set, len(c.ScopeOverride))
	for name, list := range c.ScopeOverride {
		s, err := scopes.Parse(list)
		if err != nil {
			return nil, fmt.Errorf("%w: scope_override.%s: %w", ErrInvalidConfig, name, err)
		}
		out[name] = s
	}
	return out, nil
}

func (c Config) logOptions() tlog.Options {
	return tlog.Options{Level: c.Log.Level, Format: c.Log.Format, AddSource: c.Log.Source, File: c.Log.File}
}

// workers returns the configured worker count, or 0 for the default.
func (c Config) workers() int {
	if c.Workers > runtime.NumCPU()*4 {
		return runtime.NumCPU() * 4
	}
	return c.Workers
}

// writeConfig stores cfg as config.yml in dir.
func writeConfig(dir string, cfg Config, force bool) (string, error) {
	path := filepath.Join(dir, configFileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return path, err
	}
	data = append([]byte("# "+appName+" config, see `"+appName+" config --help`\n"), data...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
