package theme

import (
	"fmt"

	"github.com/kstenerud/ansisnap/internal/ansi"
)

// cubeLevels are the component values of the 6x6x6 color cube.
var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// Index256 maps a 256-palette index to a named color (0-15, with 8-15
// reusing the base names) or a direct RGB value (cube and grayscale ramp).
func Index256(index uint8) ansi.ColorRef {
	switch {
	case index < 16:
		return ansi.Named(index % 8)
	case index < 232:
		i := index - 16
		return ansi.RGB(cubeLevels[i/36], cubeLevels[(i%36)/6], cubeLevels[i%6])
	default:
		level := (index-232)*10 + 8
		return ansi.RGB(level, level, level)
	}
}

// Resolve turns a color reference into a display color. True color is
// theme-independent; named colors come from the theme.
func (t Theme) Resolve(c ansi.ColorRef) string {
	switch c.Kind {
	case ansi.ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	case ansi.ColorIndexed:
		return t.Resolve(Index256(c.Index))
	}
	return t.lookup(c.Name())
}
