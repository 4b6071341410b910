package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/gridwalk"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gridwalk",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridwalk version %s\n", gridwalk.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
