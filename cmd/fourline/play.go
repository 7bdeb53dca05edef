package main

import (
	"fmt"
	"os"

	"github.com/fourline/fourline"
	"github.com/fourline/fourline/internal/cli"
	"github.com/fourline/fourline/internal/config"
	"github.com/fourline/fourline/internal/logging"
	"github.com/fourline/fourline/pkg/domain"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		strategy := domain.ColoringStrategy(domain.Player1Red)
		if yellow, _ := cmd.Flags().GetBool("yellow-first"); yellow {
			strategy = domain.Player1Yellow
		}

		logger := logging.New(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
		game := fourline.New(
			fourline.WithLogger(logger),
			fourline.WithStrategy(strategy),
		)
		if err := cli.RunPlay(game, os.Stdin, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Bool("yellow-first", false, "Player 1 plays yellow instead of red")
}
