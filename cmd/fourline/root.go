package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fourline",
	Short: "fourline is a Connect-Four rules engine",
	Long:  `fourline implements the rules of a Connect-Four style game: play it in the terminal or serve it over a JSON API.`,
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
	rootCmd.PersistentFlags().String("config", "fourline.yaml", "Path to the configuration file")
}
