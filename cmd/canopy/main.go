package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/justyntemme/canopy/internal/app"
	"github.com/justyntemme/canopy/internal/debug"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "canopy [folder]",
	Short: "Canopy - a desktop workbench for folders and embedded databases",
	Long: `Canopy opens a window with a menu bar, an explorer sidebar and a status bar.

When a folder is given it is opened as the first explorer tab.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Handle OS-specific console visibility
		manageConsole(debugFlag)

		if debugFlag {
			debug.EnableAll()
		}

		start := ""
		if len(args) == 1 {
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}
			start = abs
		}
		app.Main(start)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable verbose debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
