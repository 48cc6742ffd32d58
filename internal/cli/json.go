package cli

// ABOUTME: JSON output for --decode-only --json.

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kstenerud/ansisnap/internal/ansi"
)

// tokenObject is the JSON shape of one decoded token.
type tokenObject struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// tokenObjects never returns nil, so an empty capture prints [] rather
// than null.
func tokenObjects(tokens []ansi.Token) []tokenObject {
	objs := make([]tokenObject, len(tokens))
	for i, tok := range tokens {
		objs[i] = tokenObject{Kind: tok.Kind().String(), Value: tok.String()}
	}
	return objs
}

// writeJSON marshals v as indented JSON and writes it to w with a trailing newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
