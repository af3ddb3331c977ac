package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialise the " + appName + " config",
	Long: "Print the effective config: " + configFileName + " merged over the defaults,\n" +
		"with environment overrides applied.\n\n" +
		"The config directory is resolved as:\n" +
		"  --config-dir > $" + envConfigDir + " > $XDG_CONFIG_HOME/" + appName + " > ~/.config/" + appName,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := configDir()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", dir, data)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
