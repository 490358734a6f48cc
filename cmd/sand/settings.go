package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"falling-sand/internal/config"
	"falling-sand/internal/sand"
)

// settings is everything a command needs to build a world.
type settings struct {
	file     config.File
	source   string
	world    sand.Config
	brush    sand.Brush
	material sand.Material
}

func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sand",
		Level:           level,
	}), nil
}

// loadSettings resolves the config file, then --set overrides, then --seed.
func loadSettings(logger *log.Logger) (settings, error) {
	file, source, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	logger.Debug("config loaded", "source", source)

	world, err := file.SandConfig()
	if err != nil {
		return settings{}, err
	}
	world, err = sand.ApplyMap(world, flagSet)
	if err != nil {
		return settings{}, fmt.Errorf("--set: %w", err)
	}
	if flagSeed != 0 {
		world.Seed = flagSeed
	}

	brush, material, err := file.BrushSettings()
	if err != nil {
		return settings{}, err
	}
	return settings{
		file:     file,
		source:   source,
		world:    world,
		brush:    brush,
		material: material,
	}, nil
}

func (s settings) log(logger *log.Logger) {
	logger.Info("world configured",
		"config", s.source,
		"size", fmt.Sprintf("%dx%d", s.world.Width, s.world.Height),
		"scene", s.world.Scene,
		"seed", s.world.Seed,
		"gravity", s.world.Physics.Gravity,
		"tie_break", s.world.Physics.TieBreak,
	)
}

func stderrLogger() (*log.Logger, error) { return newLogger(os.Stderr) }
