package fbtxt

import "errors"

// Lines can be drawn starting at the left edge of the layout boundary
// or centered within its width. See [Renderer.SetAlign]().
type Align int8

const (
	Left Align = iota
	Center
)

func (self Align) String() string {
	switch self {
	case Left: return "Left"
	case Center: return "Center"
	default:
		return "UnknownAlign"
	}
}

// Converts an alignment name ("left" or "center") to an [Align].
// Unrecognized names are a validation error, never a silent fallback.
func ParseAlign(name string) (Align, error) {
	switch name {
	case "left": return Left, nil
	case "center": return Center, nil
	default:
		return Left, errors.New("unknown alignment '" + name + "' (expected 'left' or 'center')")
	}
}
