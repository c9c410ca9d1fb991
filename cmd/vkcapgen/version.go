package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const vkcapgenVersion = "0.1.0-dev"

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vkcapgen",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("vkcapgen version %s\n", vkcapgenVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
