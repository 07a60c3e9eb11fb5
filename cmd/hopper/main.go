// hopper is an endless tilt-and-jump climbing game for the terminal.
//
// Usage:
//
//	hopper play              - Play locally
//	hopper serve             - Start SSH server for remote play
//	hopper scores            - Show the best recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set simulation tick rate (default: 20)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.hopper/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "hopper",
	Short: "Sky Hopper - endless terminal climbing game",
	Long: `Sky Hopper is an endless climbing game: lean left and right to
steer, bounce off platforms and climb as high as you can before
falling off the bottom of the screen.

Available commands:
  play     - Play locally in your terminal
  serve    - Start SSH server for remote play
  scores   - View the best recorded runs

Examples:
  hopper play
  hopper play --seed 42
  hopper serve --ssh :2222
  hopper scores --interactive`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Simulation tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopper/scores.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
