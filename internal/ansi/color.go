package ansi

import "fmt"

// ColorKind says how a ColorRef was specified.
type ColorKind uint8

const (
	ColorNamed   ColorKind = iota // one of the 8 base colors (Index 0-7)
	ColorIndexed                  // 256-color palette (Index 0-255)
	ColorRGB                      // 24-bit true color
)

// Base color indexes, in SGR order.
const (
	Black uint8 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// ColorNames lists the 8 base color names indexed by their SGR digit.
var ColorNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ColorRef is an unresolved color. It carries no theme information; themes
// turn it into a concrete display value at render time.
type ColorRef struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// Named returns a reference to one of the 8 base colors.
func Named(index uint8) ColorRef {
	return ColorRef{Kind: ColorNamed, Index: index % 8}
}

// Indexed returns a reference into the 256-color palette.
func Indexed(index uint8) ColorRef {
	return ColorRef{Kind: ColorIndexed, Index: index}
}

// RGB returns a true-color reference.
func RGB(r, g, b uint8) ColorRef {
	return ColorRef{Kind: ColorRGB, R: r, G: g, B: b}
}

// Name returns the base color name for a named reference, or "" otherwise.
func (c ColorRef) Name() string {
	if c.Kind != ColorNamed {
		return ""
	}
	return ColorNames[c.Index%8]
}

// Extended reports whether the color came from a 38/48 sub-mode.
func (c ColorRef) Extended() bool {
	return c.Kind == ColorIndexed || c.Kind == ColorRGB
}

func (c ColorRef) String() string {
	switch c.Kind {
	case ColorNamed:
		return c.Name()
	case ColorIndexed:
		return fmt.Sprintf("index(%d)", c.Index)
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return "unknown"
}
