package main

import (
	"fmt"

	"github.com/fourline/fourline"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fourline",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fourline version %s\n", fourline.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
