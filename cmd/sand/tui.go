package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"falling-sand/internal/app"
	"falling-sand/internal/sand"
	"falling-sand/internal/tui"
)

var (
	flagTUITPS     int
	flagTUILogFile string
	flagTUIFit     bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the simulation in the terminal",
	Long: `Run the simulation in the terminal using half-block glyphs, two grid rows
per text row. Mouse painting needs a terminal with mouse reporting.

By default the grid is sized to fit the terminal; pass --fit=false to use
the configured grid size instead.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&flagTUITPS, "tps", 0, "Ticks per second (0 = configured)")
	tuiCmd.Flags().StringVar(&flagTUILogFile, "log-file", "", "Write logs to this file while the terminal is in use")
	tuiCmd.Flags().BoolVar(&flagTUIFit, "fit", true, "Size the grid to the terminal")
}

func runTUI(cmd *cobra.Command, args []string) error {
	var out io.Writer = io.Discard
	if flagTUILogFile != "" {
		f, err := os.OpenFile(flagTUILogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}
	s, err := loadSettings(logger)
	if err != nil {
		return err
	}

	if flagTUIFit {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			s.world.Width, s.world.Height = fitTerminal(w, h)
		}
	}
	tps := flagTUITPS
	if tps <= 0 {
		tps = s.file.Runtime.TPS
	}
	s.log(logger)

	session := app.NewSession(sand.NewWithConfig(s.world), s.brush, s.material, logger)
	return tui.Run(session, tps, logger)
}

// fitTerminal returns the grid size filling a cols x rows terminal, keeping
// one row for the status line.
func fitTerminal(cols, rows int) (int, int) {
	return max(cols, 8), max((rows-1)*2, 8)
}
