package render

import (
	"fmt"
	"strings"

	"github.com/kstenerud/ansisnap/internal/ansi"
	"github.com/kstenerud/ansisnap/internal/screen"
	"github.com/kstenerud/ansisnap/internal/theme"
)

// Cell box in SVG user units. The canvas is padded by one box on each axis.
const (
	CellWidth  = 10
	CellHeight = 20
)

const svgHeader = `<svg xmlns="http://www.w3.org/2000/svg" font-family="JetBrains Mono, Fira Code, SF Mono, Monaco, Consolas, monospace" font-size="16"`

var glyphEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// SVG renders the screen as a self-contained SVG document using theme t.
// Backgrounds are drawn in a first pass so no glyph is covered by a later
// cell's background.
func SVG(s *screen.Screen, t theme.Theme) string {
	width := s.Width()*CellWidth + CellWidth*2
	height := s.Height()*CellHeight + CellHeight*2

	lines := []string{
		svgHeader,
		fmt.Sprintf(`viewBox="0 0 %d %d" width="%d" height="%d">`, width, height, width, height),
		fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, width, height, t.Background()),
	}

	for y, row := range s.Rows() {
		for x, c := range row {
			if c.BG == nil {
				continue
			}
			lines = append(lines, fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				(x+1)*CellWidth, y*CellHeight+CellHeight/4, CellWidth, CellHeight, t.Resolve(*c.BG)))
		}
	}

	for y, row := range s.Rows() {
		for x, c := range row {
			lines = append(lines, fmt.Sprintf(`<text x="%d" y="%d" %s>%s</text>`,
				(x+1)*CellWidth, (y+1)*CellHeight, glyphAttrs(c, t), glyph(c)))
		}
	}

	lines = append(lines, "</svg>")
	return strings.Join(lines, "\n")
}

func glyphAttrs(c screen.Cell, t theme.Theme) string {
	var attrs []string
	if c.Attrs.Has(ansi.AttrBold) {
		attrs = append(attrs, `font-weight="bold"`)
	}
	if c.Attrs.Has(ansi.AttrItalic) {
		attrs = append(attrs, `font-style="italic"`)
	}
	if c.Attrs.Has(ansi.AttrUnderline) {
		attrs = append(attrs, `text-decoration="underline"`)
	}
	fill := t.Foreground()
	if c.FG != nil {
		fill = t.Resolve(*c.FG)
	}
	attrs = append(attrs, fmt.Sprintf(`fill="%s"`, fill))
	return strings.Join(attrs, " ")
}

// glyph is the text content for c. A row's placeholder cell is empty and
// padding is a space. C0 controls, which XML cannot carry, are drawn as
// their Unicode control pictures.
func glyph(c screen.Cell) string {
	switch c.Origin {
	case screen.Placeholder:
		return ""
	case screen.Padding:
		return " "
	}
	switch {
	case c.Rune < 0x20:
		return string(0x2400 + c.Rune)
	case c.Rune == 0x7f:
		return "\u2421"
	}
	return glyphEscaper.Replace(string(c.Rune))
}
