package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	tlog "tiger-tools/pkg/log"
)

// cfg is the effective config, loaded before any subcommand runs.
var cfg = Defaults()

var rootCmd = &cobra.Command{
	Use:   appName + " [command]",
	Short: "Scope-flow validator for Paradox game-script mods",
	Long: appName + " checks the scripts of a Crusader Kings III mod: that every trigger,\n" +
		"effect and scope chain is used in a scope it supports, that scripted\n" +
		"triggers and effects are called correctly, and that datatype chains in\n" +
		"localization are well-typed.\n\n" +
		"Settings are read from " + configFileName + " in the config directory:\n" +
		"  $" + envConfigDir + " > $XDG_CONFIG_HOME/" + appName + " > ~/.config/" + appName,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := configDir()
		if err != nil {
			return err
		}
		loaded, err := loadConfig(dir)
		// A broken config must not stop `config init` from replacing it.
		if err != nil && cmd.CommandPath() != appName+" config init" {
			return err
		}
		cfg = loaded
		tlog.Init(cfg.logOptions())
		slog.Debug("config loaded", "dir", dir, "command", cmd.Name())
		return nil
	},
}

func configDir() (string, error) {
	if flagConfigDir != "" {
		return flagConfigDir, nil
	}
	return resolveConfigDir()
}
