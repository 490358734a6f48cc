//go:build !ebiten

package app

import (
	"errors"

	"github.com/charmbracelet/log"
)

// ErrNoWindow is returned by Run when the binary was built without the
// ebiten tag.
var ErrNoWindow = errors.New("app: the window front end requires building with the 'ebiten' tag (try the tui command)")

// Run reports that the GUI build tag is missing.
func Run(_ *Session, _ *Config, logger *log.Logger) error {
	logger.Error("window support not compiled in")
	return ErrNoWindow
}
