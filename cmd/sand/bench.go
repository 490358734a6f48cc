package main

import (
	"time"

	"github.com/spf13/cobra"

	"falling-sand/internal/sand"
)

var (
	flagBenchTicks  int
	flagBenchReport int
	flagBenchPour   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Step a world headlessly and report statistics",
	Long: `Build the configured scene, step it for a number of ticks without any
front end and log stepper statistics and the final material census.

Examples:
  sand bench --ticks 1000
  sand bench --set scene=hourglass,w=200,h=150 --report 100`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchTicks, "ticks", 500, "Number of ticks to run")
	benchCmd.Flags().IntVar(&flagBenchReport, "report", 0, "Log progress every N ticks (0 = only at the end)")
	benchCmd.Flags().BoolVar(&flagBenchPour, "pour", true, "Pour sand and water from the top each tick")
}

func runBench(cmd *cobra.Command, args []string) error {
	logger, err := stderrLogger()
	if err != nil {
		return err
	}
	s, err := loadSettings(logger)
	if err != nil {
		return err
	}
	s.log(logger)

	w := sand.NewWithConfig(s.world)
	size := w.Size()
	brush := sand.Brush{Radius: 2, Shape: sand.BrushSquare}
	sandAt := sand.Point{X: size.W / 3, Y: 2}
	waterAt := sand.Point{X: 2 * size.W / 3, Y: 2}

	var total sand.Stats
	start := time.Now()
	for i := 1; i <= flagBenchTicks; i++ {
		if flagBenchPour {
			w.Paint(brush, sandAt, sand.PaintSet, sand.Sand)
			w.Paint(brush, waterAt, sand.PaintSet, sand.Water)
		}
		w.Step()
		st := w.Stats()
		total.Moved += st.Moved
		total.Blocked += st.Blocked
		total.Settled += st.Settled
		if flagBenchReport > 0 && i%flagBenchReport == 0 {
			logger.Info("progress", "tick", i, "moved", st.Moved, "blocked", st.Blocked, "settled", st.Settled)
		}
	}
	elapsed := time.Since(start)

	census := w.Census()
	fields := []any{"ticks", flagBenchTicks, "elapsed", elapsed.Round(time.Millisecond)}
	if flagBenchTicks > 0 {
		fields = append(fields, "per_tick", (elapsed / time.Duration(flagBenchTicks)).Round(time.Microsecond))
	}
	fields = append(fields, "moved", total.Moved, "blocked", total.Blocked, "settled", total.Settled)
	logger.Info("bench finished", fields...)
	for m := sand.Material(0); m < sand.MaterialCount; m++ {
		logger.Info("census", "material", m, "cells", census[m])
	}
	return nil
}
