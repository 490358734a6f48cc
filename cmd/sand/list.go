package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"falling-sand/internal/core"
	"falling-sand/internal/sand"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered simulations and scenes",
	Long: `Builds every registered simulation with the --set overrides and shows its
grid size, then lists the available scenes.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	writeList(cmd.OutOrStdout(), flagSet)
}

func writeList(out io.Writer, overrides map[string]string) {
	sims := core.Sims()
	fmt.Fprintln(out, "Simulations:")
	for _, name := range core.SimNames() {
		sim := sims[name](overrides)
		size := sim.Size()
		fmt.Fprintf(out, "  %-8s %dx%d\n", name, size.W, size.H)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Scenes:")
	for _, s := range []sand.Scene{sand.SceneEmpty, sand.SceneBasin, sand.SceneHourglass} {
		fmt.Fprintf(out, "  %s\n", s)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'sand tui --set scene=<scene>' to start with a scene.")
}
