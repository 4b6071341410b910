package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/gridwalk/internal/cli"
)

// traverseCmd represents the traverse command
var traverseCmd = &cobra.Command{
	Use:   "traverse [FILE]",
	Short: "Print a grid's values in spiral order",
	Long: `Reads a rectangular grid and prints its values in spiral visitation order.

Input defaults to stdin in the classic driver format: a header line "m n"
(row and column counts) followed by m rows of n integers. JSON and YAML
grids are detected automatically, or forced with --format.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("input")
		if !cmd.Flags().Changed("input") && len(args) > 0 {
			input = args[0]
		}
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		ccw, _ := cmd.Flags().GetBool("counter-clockwise")
		noColor, _ := cmd.Flags().GetBool("no-color")

		err := cli.Traverse(cli.TraverseOptions{
			InputPath:        input,
			Format:           format,
			Output:           output,
			CounterClockwise: ccw,
			NoColor:          noColor,
			Logger:           buildLogger(cmd),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(traverseCmd)

	traverseCmd.Flags().StringP("input", "i", "", "Input file (default: stdin)")
	traverseCmd.Flags().StringP("format", "f", "auto", "Input format: auto, text, json or yaml")
	traverseCmd.Flags().StringP("output", "o", "text", "Output format: text, json, yaml or pretty")
	traverseCmd.Flags().Bool("counter-clockwise", false, "Walk counter-clockwise from the top-left corner")

	// Make 'traverse' the default when no subcommand is given.
	rootCmd.Run = traverseCmd.Run
}
