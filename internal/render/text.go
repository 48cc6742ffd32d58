// Package render turns a finished screen into plain text or SVG.
package render

import (
	"strings"
	"unicode"

	"github.com/kstenerud/ansisnap/internal/screen"
)

// Text renders the screen as plain text: rows joined by newlines, trailing
// whitespace of the whole result removed, and exactly one final newline.
// Blank cells inside a row are spaces; blank cells at the end of a row are
// dropped.
func Text(s *screen.Screen) string {
	var sb strings.Builder
	for i, row := range s.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		end := len(row)
		for end > 0 && row[end-1].Blank() {
			end--
		}
		for _, c := range row[:end] {
			if c.Blank() {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(c.Rune)
			}
		}
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace) + "\n"
}
