package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// StyleOpKind identifies one SGR effect.
type StyleOpKind uint8

const (
	OpReset StyleOpKind = iota
	OpSetAttribute
	OpCancelAttribute
	OpForeground
	OpBackground
	OpDefaultForeground
	OpDefaultBackground
	OpBrightForeground
	OpBrightBackground

	numStyleOps
)

var styleOpNames = [numStyleOps]string{
	OpReset:             "Reset",
	OpSetAttribute:      "SetAttribute",
	OpCancelAttribute:   "CancelAttribute",
	OpForeground:        "Foreground",
	OpBackground:        "Background",
	OpDefaultForeground: "DefaultForeground",
	OpDefaultBackground: "DefaultBackground",
	OpBrightForeground:  "BrightForeground",
	OpBrightBackground:  "BrightBackground",
}

func (k StyleOpKind) String() string {
	if k < numStyleOps {
		return styleOpNames[k]
	}
	return fmt.Sprintf("StyleOpKind(%d)", k)
}

// StyleOp is a single effect decoded from an SGR field. Attr is set for the
// attribute kinds and Color for the foreground/background kinds.
type StyleOp struct {
	Kind  StyleOpKind
	Attr  Attr
	Color ColorRef
}

func (op StyleOp) String() string {
	switch op.Kind {
	case OpSetAttribute, OpCancelAttribute:
		return fmt.Sprintf("%s(%s)", op.Kind, op.Attr)
	case OpForeground, OpBackground, OpBrightForeground, OpBrightBackground:
		return fmt.Sprintf("%s(%s)", op.Kind, op.Color)
	}
	return op.Kind.String()
}

// parseSGR turns the parameter string of a CSI m sequence into style ops.
// Fields are consumed left to right; 38 and 48 consume their sub-mode fields.
func parseSGR(params string) ([]StyleOp, error) {
	if params == "" {
		return []StyleOp{{Kind: OpReset}}, nil
	}

	fields := strings.Split(params, ";")
	ops := make([]StyleOp, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if f == "" {
			ops = append(ops, StyleOp{Kind: OpReset})
			continue
		}
		n, err := parseNumber(f)
		if err != nil {
			return nil, fmt.Errorf("SGR field %q: %w", f, err)
		}

		switch {
		case n == 0 && len(f) <= 2:
			ops = append(ops, StyleOp{Kind: OpReset})
		case n <= 9 && len(f) <= 2:
			ops = append(ops, StyleOp{Kind: OpSetAttribute, Attr: sgrAttrs[n]})
		case n >= 20 && n <= 29:
			// 20 has no attribute to cancel
			ops = append(ops, StyleOp{Kind: OpCancelAttribute, Attr: sgrAttrs[n%10]})
		case n >= 30 && n <= 37:
			ops = append(ops, StyleOp{Kind: OpForeground, Color: Named(uint8(n % 10))})
		case n == 38, n == 48:
			c, used, err := parseExtendedColor(fields[i+1:])
			if err != nil {
				return nil, fmt.Errorf("SGR %d: %w", n, err)
			}
			i += used
			kind := OpForeground
			if n == 48 {
				kind = OpBackground
			}
			ops = append(ops, StyleOp{Kind: kind, Color: c})
		case n == 39:
			ops = append(ops, StyleOp{Kind: OpDefaultForeground})
		case n >= 40 && n <= 47:
			ops = append(ops, StyleOp{Kind: OpBackground, Color: Named(uint8(n % 10))})
		case n == 49:
			ops = append(ops, StyleOp{Kind: OpDefaultBackground})
		case n >= 90 && n <= 97:
			ops = append(ops, StyleOp{Kind: OpBrightForeground, Color: Named(uint8(n % 10))})
		case n >= 100 && n <= 107:
			ops = append(ops, StyleOp{Kind: OpBrightBackground, Color: Named(uint8(n % 10))})
		default:
			return nil, fmt.Errorf("unsupported SGR field %q", f)
		}
	}
	return ops, nil
}

// parseExtendedColor decodes the fields following a 38 or 48 and returns
// the color plus how many fields it consumed.
func parseExtendedColor(rest []string) (ColorRef, int, error) {
	if len(rest) == 0 {
		return ColorRef{}, 0, fmt.Errorf("missing color sub-mode")
	}
	switch rest[0] {
	case "2":
		if len(rest) < 4 {
			return ColorRef{}, 0, fmt.Errorf("true color needs 3 components, got %d", len(rest)-1)
		}
		var rgb [3]uint8
		for j := range rgb {
			v, err := parseByte(rest[1+j])
			if err != nil {
				return ColorRef{}, 0, fmt.Errorf("true color component %q: %w", rest[1+j], err)
			}
			rgb[j] = v
		}
		return RGB(rgb[0], rgb[1], rgb[2]), 4, nil
	case "5":
		if len(rest) < 2 {
			return ColorRef{}, 0, fmt.Errorf("indexed color needs an index")
		}
		v, err := parseByte(rest[1])
		if err != nil {
			return ColorRef{}, 0, fmt.Errorf("color index %q: %w", rest[1], err)
		}
		return Indexed(v), 2, nil
	}
	return ColorRef{}, 0, fmt.Errorf("unknown color sub-mode %q", rest[0])
}

// parseNumber accepts only ASCII digits; strconv alone would let signs through.
func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("not a number")
		}
	}
	return strconv.Atoi(s)
}

func parseByte(s string) (uint8, error) {
	n, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if n > 255 {
		return 0, fmt.Errorf("out of range 0-255")
	}
	return uint8(n), nil
}
