package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hopperlabs/tui-hopper/internal/platform/tui"
	"github.com/hopperlabs/tui-hopper/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top 10 recorded runs.

Examples:
  hopper scores
  hopper scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if scErr := tui.RunScoreboard(store, width, height); scErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", scErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Sky Hopper - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hopper play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "Rank", "Score", "Height", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range runs {
		fmt.Printf("  %-4d  %-10d  %-8.0f  %-8s  %s\n",
			i+1, entry.Score, entry.MaxHeight,
			entry.Duration.Truncate(time.Second), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
