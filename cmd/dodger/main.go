// dodger is a terminal arcade game: steer an avatar through an accelerating
// stream of falling obstacles for as long as you can.
//
// Usage:
//
//	dodger                   - Play (same as 'dodger play')
//	dodger play              - Play the game
//	dodger serve             - Start SSH server for remote play
//	dodger scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.dodger/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-dodger/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Dodger - Dodge falling obstacles in your terminal",
	Long: `Dodger is a terminal survival game. Steer the avatar, dodge the
accelerating stream of falling obstacles, grab shield power-ups, and use
the dash to slip out of tight spots.

Available commands:
  play     - Play the game (default when no command is given)
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  dodger
  dodger play --difficulty hard
  dodger play --seed 42
  dodger serve --ssh :2222
  dodger scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodger/scores.db", "Path to scores database")

	// Play flags live on the root so 'dodger --difficulty hard' works too
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
