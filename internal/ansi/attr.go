package ansi

import "strings"

// Attr is a set of SGR rendition attributes.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrBlinkSlow
	AttrBlinkRapid
	AttrReverse
	AttrConceal
	AttrStrikethrough

	// AttrBright is synthetic: it is set whenever a bright, default or
	// extended color was selected and cleared by the plain 8-color forms.
	AttrBright
)

var attrNames = []struct {
	attr Attr
	name string
}{
	{AttrBold, "bold"},
	{AttrFaint, "faint"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlinkSlow, "blink-slow"},
	{AttrBlinkRapid, "blink-rapid"},
	{AttrReverse, "reverse"},
	{AttrConceal, "conceal"},
	{AttrStrikethrough, "strikethrough"},
	{AttrBright, "bright"},
}

// sgrAttrs maps the SGR digit (1-9) to its attribute. Index 0 is reset and
// has no attribute.
var sgrAttrs = [10]Attr{
	0,
	AttrBold,
	AttrFaint,
	AttrItalic,
	AttrUnderline,
	AttrBlinkSlow,
	AttrBlinkRapid,
	AttrReverse,
	AttrConceal,
	AttrStrikethrough,
}

// Has reports whether every attribute in o is set in a.
func (a Attr) Has(o Attr) bool { return a&o == o }

// String returns the attribute names joined by "|", or "none".
func (a Attr) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	for _, n := range attrNames {
		if a&n.attr != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
