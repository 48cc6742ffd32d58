package ansi

import (
	"fmt"
	"strings"
)

var shellIntegration = map[string]OSCEvent{
	"A": OSCPromptStart,
	"B": OSCInputStart,
	"C": OSCOutputStart,
	"D": OSCCommandEnd,
}

// decodeOSC dispatches an OSC payload (terminator already stripped) on its
// first ";"-separated field.
func decodeOSC(payload string) (Token, error) {
	fields := strings.Split(payload, ";")
	ps, rest := fields[0], fields[1:]

	var event OSCEvent
	switch ps {
	case "0":
		event = OSCIconAndTitle
	case "1":
		event = OSCIcon
	case "2":
		event = OSCTitle
	case "7":
		event = OSCWorkingDirectory
	case "133":
		if len(rest) == 0 {
			return nil, fmt.Errorf("OSC 133 without a sub-code")
		}
		ev, ok := shellIntegration[rest[0]]
		if !ok {
			return nil, fmt.Errorf("unsupported OSC 133 sub-code %q", rest[0])
		}
		return OSC{Event: ev, Params: nonEmpty(rest[1:])}, nil
	default:
		return nil, fmt.Errorf("unsupported OSC command %q", ps)
	}

	if len(rest) == 0 {
		return nil, fmt.Errorf("OSC %s without a payload", ps)
	}
	// Titles and paths may themselves contain ';'.
	return OSC{Event: event, Params: []string{strings.Join(rest, ";")}}, nil
}

func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
