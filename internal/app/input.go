package app

import "falling-sand/internal/sand"

// Key names follow Bubble Tea's KeyMsg.String() so the terminal front end can
// pass keys straight through. The window front end translates ebiten keys
// into the same names.
const (
	KeySpace = " "
	KeyTab   = "tab"
	KeyEsc   = "esc"
	KeyCtrlC = "ctrl+c"
)

// InputState is one frame of front-end neutral input.
type InputState struct {
	// Keys pressed since the previous frame.
	Keys []string
	// Wheel is the net scroll in notches; positive grows the brush.
	Wheel int

	// Cursor is the pointer position in grid coordinates. OnGrid is false when
	// the pointer is outside the grid or unknown.
	Cursor sand.Point
	OnGrid bool

	// Button states held this frame.
	Primary   bool
	Secondary bool
	Middle    bool
}

// Actions is what the front end should apply to the world before the next
// tick.
type Actions struct {
	Material        sand.Material
	MaterialChanged bool

	Brush        sand.Brush
	BrushChanged bool

	Paint bool
	Erase bool
	Pick  bool
	At    sand.Point

	TogglePause bool
	StepOnce    bool
	Reset       bool
	Reseed      bool
	Quit        bool
}

// Any reports whether a is not empty.
func (a Actions) Any() bool {
	return a.MaterialChanged || a.BrushChanged || a.Paint || a.Erase || a.Pick ||
		a.TogglePause || a.StepOnce || a.Reset || a.Reseed || a.Quit
}

var materialKeys = map[string]sand.Material{
	"1": sand.Sand,
	"2": sand.Water,
	"3": sand.DenseSand,
	"4": sand.Stone,
}

// InputMapper translates raw input into Actions. It remembers the selected
// material and the brush so successive frames build on each other.
type InputMapper struct {
	material sand.Material
	brush    sand.Brush
}

// NewInputMapper returns a mapper starting with the given brush and material.
func NewInputMapper(brush sand.Brush, m sand.Material) *InputMapper {
	if !m.Valid() || m == sand.Air {
		m = sand.Sand
	}
	return &InputMapper{material: m, brush: brush.Clamp()}
}

// Material returns the selected paint material.
func (im *InputMapper) Material() sand.Material { return im.material }

// Brush returns the current brush.
func (im *InputMapper) Brush() sand.Brush { return im.brush }

// SetMaterial changes the selected paint material. Air and invalid ordinals
// are ignored.
func (im *InputMapper) SetMaterial(m sand.Material) bool {
	if !m.Valid() || m == sand.Air || m == im.material {
		return false
	}
	im.material = m
	return true
}

// Map consumes one frame of input.
func (im *InputMapper) Map(in InputState) Actions {
	var a Actions
	resize := in.Wheel
	for _, key := range in.Keys {
		if m, ok := materialKeys[key]; ok {
			if im.SetMaterial(m) {
				a.MaterialChanged = true
			}
			continue
		}
		switch key {
		case "+", "=":
			resize++
		case "-", "_":
			resize--
		case KeyTab:
			if im.brush.Shape == sand.BrushDisc {
				im.brush.Shape = sand.BrushSquare
			} else {
				im.brush.Shape = sand.BrushDisc
			}
			a.BrushChanged = true
		case KeySpace, "space":
			a.TogglePause = !a.TogglePause
		case "n":
			a.StepOnce = true
		case "r":
			a.Reset = true
		case "s":
			a.Reseed = true
		case "q", KeyEsc, KeyCtrlC:
			a.Quit = true
		}
	}
	if resize != 0 {
		next := im.brush.Resize(resize)
		if next != im.brush {
			im.brush = next
			a.BrushChanged = true
		}
	}

	if in.OnGrid {
		a.At = in.Cursor
		switch {
		case in.Primary:
			a.Paint = true
		case in.Secondary:
			a.Erase = true
		case in.Middle:
			a.Pick = true
		}
	}

	a.Material = im.material
	a.Brush = im.brush
	return a
}
