package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tiger-tools/cmd/tiger/db"
	"tiger-tools/cmd/tiger/report"
	"tiger-tools/pkg/lib"
	tlog "tiger-tools/pkg/log"
)

// exitFailOn is the exit code when diagnostics reach --fail-on.
const exitFailOn = 2

var errNoModDir = errors.New("no mod directory")

var validateCmd = &cobra.Command{
	Use:   "validate [mod-dir]",
	Short: "Validate a mod and print its diagnostics",
	Long: "Load the mod (after the base game, if game_dir or --game is set),\n" +
		"validate every scripted trigger, effect, modifier, script value and event,\n" +
		"and print the diagnostics sorted by location.\n\n" +
		"Exits 2 if any diagnostic is at or above --fail-on.",
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringArray("overlay", nil, "YAML table overlay (repeatable, added to overlays from the config)")
	f.String("game", "", "base game directory (default: game_dir from the config)")
	f.String("min-severity", "", "lowest severity to report (tips, untidy, warning, error, fatal)")
	f.String("fail-on", "", "exit "+fmt.Sprint(exitFailOn)+" if a diagnostic is at or above this severity")
	f.String("color", "", "color output: auto, always or never")
	f.Int("workers", 0, "parallel validation workers (default: physical cores)")
	f.Bool("browse", false, "browse the diagnostics interactively")
}

// validateFlags is the config with the command's flags applied.
type validateFlags struct {
	modDir  string
	gameDir string
	min     report.Severity
	failOn  report.Severity
	color   report.ColorMode
	workers int
	browse  bool
	opts    []db.Option
}

func resolveValidateFlags(cmd *cobra.Command, args []string) (validateFlags, error) {
	var vf validateFlags
	f := cmd.Flags()
	c := cfg

	vf.modDir = c.ModDir
	if len(args) > 0 {
		vf.modDir = args[0]
	}
	if vf.modDir == "" {
		return vf, fmt.Errorf("%w: pass one or set mod_dir in %s", errNoModDir, configFileName)
	}
	vf.gameDir = c.GameDir
	if f.Changed("game") {
		vf.gameDir, _ = f.GetString("game")
	}
	if f.Changed("min-severity") {
		c.MinSeverity, _ = f.GetString("min-severity")
	}
	if f.Changed("fail-on") {
		c.FailOn, _ = f.GetString("fail-on")
	}
	if f.Changed("color") {
		c.Color, _ = f.GetString("color")
	}
	if f.Changed("workers") {
		c.Workers, _ = f.GetInt("workers")
	}
	extra, _ := f.GetStringArray("overlay")
	c.Overlays = append(c.Overlays, extra...)
	vf.browse, _ = f.GetBool("browse")

	var err error
	if vf.min, err = report.ParseSeverity(c.MinSeverity); err != nil {
		return vf, fmt.Errorf("--min-severity: %w", err)
	}
	if vf.failOn, err = report.ParseSeverity(c.FailOn); err != nil {
		return vf, fmt.Errorf("--fail-on: %w", err)
	}
	if vf.color, err = report.ParseColorMode(c.Color); err != nil {
		return vf, fmt.Errorf("--color: %w", err)
	}
	if c.Workers < 0 {
		return vf, errors.New("--workers must not be negative")
	}
	vf.workers = c.workers()

	overrides, err := c.scopeOverrides()
	if err != nil {
		return vf, err
	}
	vf.opts = []db.Option{db.WithOverlays(c.Overlays...), db.WithScopeOverride(overrides)}
	if vf.gameDir != "" {
		vf.opts = append(vf.opts, db.WithGame(os.DirFS(vf.gameDir)))
	}
	return vf, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	vf, err := resolveValidateFlags(cmd, args)
	if err != nil {
		return err
	}
	if st, err := os.Stat(vf.modDir); err != nil {
		return fmt.Errorf("mod directory: %w", err)
	} else if !st.IsDir() {
		return fmt.Errorf("mod directory: %s is not a directory", vf.modDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := tlog.WithOperation(tlog.WithComponent("cli"), "validate")
	sink := report.NewCollector(vf.min)
	d := db.New(append(vf.opts, db.WithSink(sink))...)
	if err := d.Load(os.DirFS(vf.modDir)); err != nil {
		return err
	}
	st := d.Stats()
	logger.Info("mod loaded", "dir", vf.modDir, slog.Group("items",
		"triggers", st.Triggers, "effects", st.Effects, "values", st.Values,
		"modifiers", st.Modifiers, "events", st.Events))
	if err := d.Validate(ctx, vf.workers); err != nil {
		return err
	}

	diags := sink.Sorted()
	if vf.browse && len(diags) > 0 {
		if err := browse(diags, vf.min, d.LinkMap()); err != nil {
			return err
		}
	} else if err := report.Render(cmd.OutOrStdout(), diags, report.RenderOptions{
		Color: vf.color.Enabled(os.Stdout),
		Links: d.LinkMap(),
	}); err != nil {
		return err
	}

	summary := report.Summarize(diags)
	fmt.Fprintln(cmd.ErrOrStderr(), summary)
	if n := summary.AtLeast(vf.failOn); n > 0 {
		return lib.WithCode(exitFailOn, fmt.Errorf("%d diagnostics at %s or above", n, vf.failOn))
	}
	return nil
}
