package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hopperlabs/tui-hopper/internal/config"
	"github.com/hopperlabs/tui-hopper/internal/core"
	"github.com/hopperlabs/tui-hopper/internal/games/hopper"
	"github.com/hopperlabs/tui-hopper/internal/platform/tui"
	"github.com/hopperlabs/tui-hopper/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Sky Hopper",
	Long: `Start a local game session.

Controls:
  Left/A/H   - Lean left
  Right/D/L  - Lean right
  Down/S     - Center
  Space      - Start / pause / resume / restart
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  hopper play
  hopper play --seed 42
  hopper play --config ./my-hopper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// Shrink the playfield if the terminal is smaller than the default.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = core.Min(rt.ScreenW, w-2)
		rt.ScreenH = core.Min(rt.ScreenH, h-2)
	}

	game := hopper.New(tuning, rt)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
