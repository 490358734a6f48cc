//go:build !ebiten

package ui

import (
	"falling-sand/internal/core"
	"falling-sand/internal/sand"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, sand.Cursor, core.Size) {}
