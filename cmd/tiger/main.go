package main

import (
	"tiger-tools/pkg/lib"
)

var flagConfigDir string

func main() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(datatypeCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "",
		"config directory (default: $"+envConfigDir+", $XDG_CONFIG_HOME/"+appName+" or ~/.config/"+appName+")")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		lib.Exit(err)
	}
}
