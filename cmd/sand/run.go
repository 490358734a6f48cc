package main

import (
	"github.com/spf13/cobra"

	"falling-sand/internal/app"
	"falling-sand/internal/sand"
)

var runConfig = app.NewConfig()

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the simulation window",
	Long: `Open a window showing the world with a parameter panel on the right.

The window front end needs the ebiten build tag:
  go run -tags ebiten ./cmd/sand run`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	runConfig.Bind(runCmd.Flags())
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, err := stderrLogger()
	if err != nil {
		return err
	}
	s, err := loadSettings(logger)
	if err != nil {
		return err
	}
	runConfig.Merge(s.file.Runtime, cmd.Flags())
	s.log(logger)

	session := app.NewSession(sand.NewWithConfig(s.world), s.brush, s.material, logger)
	session.SetPaused(runConfig.Paused)
	return app.Run(session, runConfig, logger)
}
