package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/aretw0/gridwalk/internal/presentation/tui"
)

//go:embed manual.md
var manual string

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the gridwalk manual in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			fmt.Print(manual)
			return
		}

		tui.PrintBanner()

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Automatically detect light/dark background
		)
		if err != nil {
			fmt.Print(manual)
			return
		}
		out, err := r.Render(manual)
		if err != nil {
			fmt.Print(manual)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
