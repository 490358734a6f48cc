// sand is a falling-sand cellular automaton: paint sand, water and stone onto
// a grid and watch them settle.
//
// Usage:
//
//	sand run              - Open the simulation window (requires -tags ebiten)
//	sand tui              - Run the simulation in the terminal
//	sand bench            - Step a world headlessly and report statistics
//	sand materials        - Show the material table
//	sand list             - List registered simulations and scenes
//
// Global flags:
//
//	--config <path>       - Configuration file (default: search ~/.sandfall, ./configs)
//	--seed <value>        - RNG seed (0 = use the configured seed)
//	--set key=value       - Override world parameters (w, h, gravity, scene, ...)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagSet      map[string]string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sand",
	Short: "Falling-sand cellular automaton",
	Long: `sand simulates granular and fluid materials on a 2D grid. Each tick moves
every cell by gravity, density-based displacement and lateral flow.

Controls (window and terminal):
  1-4        - Select sand, water, dense sand, stone
  +/- wheel  - Resize brush
  Tab        - Toggle square/disc brush
  Left       - Paint
  Right      - Erase
  Middle     - Pick material under cursor
  Space      - Pause
  N          - Single step
  R / S      - Reset / reseed
  Q / Esc    - Quit`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a sand YAML config")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = configured seed)")
	rootCmd.PersistentFlags().StringToStringVar(&flagSet, "set", nil, "World overrides, e.g. --set scene=hourglass,gravity=2")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(materialsCmd)
	rootCmd.AddCommand(listCmd)
}
