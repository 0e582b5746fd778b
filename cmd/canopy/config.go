package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justyntemme/canopy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a fresh default config, backing up the current one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := config.GenerateConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if backup != "" {
			fmt.Fprintf(out, "Backed up existing config to %s\n", backup)
		}
		fmt.Fprintf(out, "Wrote default config to %s\n", config.ConfigPath())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the config file lives",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.ConfigPath())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configPathCmd)
}
