package screen

import (
	"fmt"

	"github.com/kstenerud/ansisnap/internal/ansi"
)

// InterpretationError indicates a token (or style op) reached the
// interpreter without a defined effect. The decoder never produces such
// tokens, so this signals a missing case rather than bad input.
type InterpretationError struct {
	Token  ansi.Token
	Reason string
}

func (e *InterpretationError) Error() string {
	return fmt.Sprintf("interpretation error: %s: %v", e.Reason, e.Token)
}
