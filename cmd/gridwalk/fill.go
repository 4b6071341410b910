package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/gridwalk/internal/cli"
)

// fillCmd represents the fill command
var fillCmd = &cobra.Command{
	Use:   "fill ROWS COLS",
	Short: "Generate the grid whose spiral order is 1..rows*cols",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rows, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid ROWS %q\n", args[0])
			os.Exit(1)
		}
		cols, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid COLS %q\n", args[1])
			os.Exit(1)
		}

		output, _ := cmd.Flags().GetString("output")
		ccw, _ := cmd.Flags().GetBool("counter-clockwise")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if err := cli.Fill(cli.FillOptions{
			Rows:             rows,
			Cols:             cols,
			Output:           output,
			CounterClockwise: ccw,
			NoColor:          noColor,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().StringP("output", "o", "text", "Output format: text, json, yaml or pretty")
	fillCmd.Flags().Bool("counter-clockwise", false, "Number cells counter-clockwise from the top-left corner")
}
