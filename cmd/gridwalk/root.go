package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/gridwalk/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "gridwalk",
	Short: "Gridwalk prints rectangular grids in spiral order",
	Long:  `Gridwalk reads rectangular integer grids (text, JSON or YAML) and walks them in concentric clockwise rings from the top-left corner.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable ANSI colors")
}

// buildLogger constructs the application logger from the persistent flags.
func buildLogger(cmd *cobra.Command) *slog.Logger {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return logging.New(level)
}
