package ansi

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a location in the input. Line and Column are 1-based and count
// bytes; Offset is the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, col %d, byte %d", p.Line, p.Column, p.Offset)
}

// DecodeError reports input the decoder does not recognize. Start is where
// the failing token began (the ESC for escape sequences), End is where
// scanning stopped, and Consumed holds the bytes between them.
type DecodeError struct {
	Start    Position
	End      Position
	Consumed []byte
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at %s (from %s): %s: text %q",
		e.End, e.Start, e.Reason, printable(e.Consumed))
}

// printable renders consumed bytes for diagnostics, with ESC made visible.
func printable(b []byte) string {
	var sb strings.Builder
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r == 0x1b {
			sb.WriteString("<ESC>")
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
