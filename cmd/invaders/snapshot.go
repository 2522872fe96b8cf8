package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagTick  uint64
	flagColor bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a sample playfield",
	Long: `Print one frame of a sample playfield without taking over the
terminal. Useful for checking the palette and glyphs of a terminal.

Examples:
  invaders snapshot
  invaders snapshot --color --tick 32`,
	Args: cobra.NoArgs,
	Run:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().Uint64Var(&flagTick, "tick", 0, "Frame counter used for the star field")
	snapshotCmd.Flags().BoolVar(&flagColor, "color", false, "Print with colors")
}

func runSnapshot(cmd *cobra.Command, args []string) {
	f := invaders.SampleFrame(loadConfig(cmd), flagTick)
	if flagColor {
		fmt.Println(tui.RenderFrame(f))
		return
	}
	fmt.Println(f.String())
}
