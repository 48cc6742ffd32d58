package ansi

import (
	"fmt"
	"strings"
)

// decodeCSI decodes the parameter bytes and final byte of a CSI sequence.
func decodeCSI(params string, final byte) (Token, error) {
	switch final {
	case 'A', 'B', 'C', 'D':
		n, err := countParam(params)
		if err != nil {
			return nil, err
		}
		dir := map[byte]Direction{'A': Up, 'B': Down, 'C': Forward, 'D': Backward}[final]
		return CursorMove{Dir: dir, N: n}, nil

	case 'H':
		return cursorPosition(params)

	case 'J':
		switch params {
		case "", "0":
			return EraseScreen{Extent: ToEnd}, nil
		case "1":
			return EraseScreen{Extent: ToStart}, nil
		case "2":
			return EraseScreen{Extent: All}, nil
		case "3":
			return EraseScreen{Extent: AllAndScrollback}, nil
		}
		return nil, fmt.Errorf("unsupported erase screen parameter %q", params)

	case 'K':
		switch params {
		case "", "0":
			return EraseLine{Extent: ToEnd}, nil
		case "1":
			return EraseLine{Extent: ToStart}, nil
		case "2":
			return EraseLine{Extent: All}, nil
		}
		return nil, fmt.Errorf("unsupported erase line parameter %q", params)

	case 'h', 'l':
		mode, err := privateMode(params)
		if err != nil {
			return nil, err
		}
		if final == 'h' {
			return SetMode{Mode: mode}, nil
		}
		return ResetMode{Mode: mode}, nil

	case 'm':
		if strings.HasPrefix(params, ">") {
			return keyModifierOptions(params[1:])
		}
		ops, err := parseSGR(params)
		if err != nil {
			return nil, err
		}
		return SGR{Ops: ops}, nil

	case 'u':
		switch params {
		case "":
			return SaveCursor{}, nil
		case "=0":
			return KeyboardMode{Variant: KeyboardNormal}, nil
		case "=1":
			return KeyboardMode{Variant: KeyboardApplication}, nil
		case "=2":
			return KeyboardMode{Variant: KeyboardVT}, nil
		case "=5":
			return SetF5String{}, nil
		}
		return nil, fmt.Errorf("unsupported CSI u parameters %q", params)
	}
	return nil, fmt.Errorf("unsupported CSI final byte %q with parameters %q", final, params)
}

func countParam(params string) (int, error) {
	if params == "" {
		return 1, nil
	}
	n, err := parseNumber(params)
	if err != nil {
		return 0, fmt.Errorf("cursor move count %q: %w", params, err)
	}
	return n, nil
}

// cursorPosition decodes "row;col". Empty fields default to 1 and a lone
// row leaves the column at 1.
func cursorPosition(params string) (Token, error) {
	fields := strings.Split(params, ";")
	if len(fields) > 2 {
		return nil, fmt.Errorf("cursor position takes at most 2 parameters, got %q", params)
	}
	pos := [2]int{1, 1}
	for i, f := range fields {
		if f == "" {
			continue
		}
		n, err := parseNumber(f)
		if err != nil {
			return nil, fmt.Errorf("cursor position %q: %w", params, err)
		}
		pos[i] = n
	}
	return CursorPosition{Row: pos[0], Col: pos[1]}, nil
}

func privateMode(params string) (Mode, error) {
	if !strings.HasPrefix(params, "?") {
		return 0, fmt.Errorf("unsupported ANSI mode %q (only DEC private modes are recognized)", params)
	}
	n, err := parseNumber(params[1:])
	if err != nil {
		return 0, fmt.Errorf("DEC private mode %q: %w", params, err)
	}
	mode := Mode(n)
	if _, ok := modeNames[mode]; !ok {
		return 0, fmt.Errorf("unknown DEC private mode %d", n)
	}
	return mode, nil
}

func keyModifierOptions(params string) (Token, error) {
	for _, f := range strings.Split(params, ";") {
		if f == "" {
			continue
		}
		if _, err := parseNumber(f); err != nil {
			return nil, fmt.Errorf("key modifier option %q: %w", params, err)
		}
	}
	return KeyModifierOptions{Params: params}, nil
}
