package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tiger-tools/cmd/tiger/report"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter " + configFileName,
	Long: "Create the config directory and write " + configFileName + " into it.\n" +
		"On a terminal the settings are asked for interactively; --yes writes\n" +
		"the defaults, with any flags applied, without asking.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		yes, _ := cmd.Flags().GetBool("yes")
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			var err error
			if dir, err = configDir(); err != nil {
				return err
			}
		}

		c := Defaults()
		c.ModDir, _ = cmd.Flags().GetString("mod-dir")
		c.GameDir, _ = cmd.Flags().GetString("game-dir")

		if !yes && isatty.IsTerminal(os.Stdin.Fd()) {
			if err := initForm(&c).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return errors.New("aborted")
				}
				return err
			}
		}

		path, err := writeConfig(dir, c, force)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "initialised %s\n", path)
		fmt.Fprintf(cmd.ErrOrStderr(), "\nRun `%s validate` to check the mod.\n", appName)
		return nil
	},
}

func severityOptions() []huh.Option[string] {
	var names []string
	for s := report.Tips; s <= report.Fatal; s++ {
		names = append(names, s.String())
	}
	return huh.NewOptions(names...)
}

func initForm(c *Config) *huh.Form {
	dirExists := func(s string) error {
		if s == "" {
			return nil
		}
		st, err := os.Stat(s)
		if err != nil {
			return err
		}
		if !st.IsDir() {
			return fmt.Errorf("%s is not a directory", s)
		}
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mod directory").
				Description("Validated when `"+appName+" validate` is run without arguments.").
				Value(&c.ModDir).
				Validate(dirExists),
			huh.NewInput().
				Title("Game directory").
				Description("The base game's game/ folder. Leave empty to validate the mod alone.").
				Value(&c.GameDir).
				Validate(dirExists),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Lowest severity to report").
				Options(severityOptions()...).
				Value(&c.MinSeverity),
			huh.NewSelect[string]().
				Title("Fail (exit 2) at").
				Options(severityOptions()...).
				Value(&c.FailOn),
			huh.NewSelect[string]().
				Title("Color").
				Options(huh.NewOptions(string(report.ColorAuto), string(report.ColorAlways), string(report.ColorNever))...).
				Value(&c.Color),
		),
	)
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing "+configFileName)
	configInitCmd.Flags().BoolP("yes", "y", false, "do not ask, write the defaults")
	configInitCmd.Flags().String("dir", "", "target config directory (default: auto-resolved)")
	configInitCmd.Flags().String("mod-dir", "", "mod directory to put in the config")
	configInitCmd.Flags().String("game-dir", "", "game directory to put in the config")
}
