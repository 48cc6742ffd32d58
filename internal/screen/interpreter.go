package screen

import (
	"errors"
	"fmt"

	"github.com/kstenerud/ansisnap/internal/ansi"
)

const tabWidth = 8

// Interpreter applies tokens to a Screen. Cursor and style state live in
// explicit fields; an Interpreter is used for a single pass and is not safe
// for concurrent use.
type Interpreter struct {
	screen *Screen

	// 1-based cursor, never below 1
	row, col int

	savedRow, savedCol int

	fg, bg *ansi.ColorRef
	attrs  ansi.Attr
}

// New returns an interpreter with an empty screen and the cursor at (1,1).
func New() *Interpreter {
	return &Interpreter{screen: newScreen(), row: 1, col: 1, savedRow: 1, savedCol: 1}
}

// Run applies tokens in order and returns the final screen.
func Run(tokens []ansi.Token) (*Screen, error) {
	in := New()
	for _, tok := range tokens {
		if err := in.Apply(tok); err != nil {
			return nil, err
		}
	}
	return in.Screen(), nil
}

// Screen returns the grid built so far.
func (in *Interpreter) Screen() *Screen { return in.screen }

// Cursor returns the 1-based cursor position.
func (in *Interpreter) Cursor() (row, col int) { return in.row, in.col }

// Style returns the current foreground, background and attributes.
func (in *Interpreter) Style() (fg, bg *ansi.ColorRef, attrs ansi.Attr) {
	return in.fg, in.bg, in.attrs
}

// Apply applies one token. Every token type must have a case here.
func (in *Interpreter) Apply(tok ansi.Token) error {
	if err := in.apply(tok); err != nil {
		return &InterpretationError{Token: tok, Reason: err.Error()}
	}
	return nil
}

func (in *Interpreter) apply(tok ansi.Token) error {
	switch t := tok.(type) {
	case ansi.Text:
		return in.text(t.Text)

	case ansi.CursorMove:
		switch t.Dir {
		case ansi.Up:
			return in.setCursor(in.row-t.N, in.col)
		case ansi.Down:
			return in.setCursor(in.row+t.N, in.col)
		case ansi.Forward:
			return in.setCursor(in.row, in.col+t.N)
		case ansi.Backward:
			return in.setCursor(in.row, in.col-t.N)
		default:
			return errors.New("unknown cursor direction")
		}

	case ansi.CursorPosition:
		return in.setCursor(t.Row, t.Col)

	case ansi.EraseLine:
		switch t.Extent {
		case ansi.ToEnd:
			in.eraseLineToEnd()
		case ansi.All:
			in.eraseLine()
		case ansi.ToStart:
			// accepted, no effect
		default:
			return errors.New("unknown erase line extent")
		}

	case ansi.EraseScreen:
		switch t.Extent {
		case ansi.ToEnd:
			in.eraseScreenToEnd()
		case ansi.All, ansi.AllAndScrollback:
			in.eraseScreen()
		case ansi.ToStart:
			// accepted, no effect
		default:
			return errors.New("unknown erase screen extent")
		}

	case ansi.SGR:
		for _, op := range t.Ops {
			if err := in.applyStyle(op); err != nil {
				return err
			}
		}

	case ansi.SaveCursor:
		in.savedRow, in.savedCol = in.row, in.col

	case ansi.SetMode, ansi.ResetMode, ansi.KeyboardMode, ansi.SetF5String,
		ansi.KeyModifierOptions, ansi.Charset, ansi.KeypadMode, ansi.OSC:
		// recognized, no screen effect

	default:
		return fmt.Errorf("unhandled token type %T", tok)
	}
	return nil
}

// setCursor clamps to (1,1) and grows the grid so the target cell exists.
// The cursor does not move if the grid cannot grow.
func (in *Interpreter) setCursor(row, col int) error {
	row, col = max(row, 1), max(col, 1)
	if err := in.screen.ensure(row, col); err != nil {
		return err
	}
	in.row, in.col = row, col
	return nil
}

func (in *Interpreter) text(s string) error {
	for _, r := range s {
		var err error
		switch r {
		case '\n':
			err = in.setCursor(in.row+1, 1)
		case '\r':
			err = in.setCursor(in.row, 1)
		case '\t':
			// Styled spaces up to and including the next column c with
			// (c-1) mod 8 == 7; the cursor lands one past it.
			for err == nil {
				err = in.put(' ')
				if (in.col-2)%tabWidth == tabWidth-1 {
					break
				}
			}
		case '\b':
			err = in.setCursor(in.row, in.col-1)
		default:
			err = in.put(r)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// put advances the cursor and writes r into the cell it just passed.
func (in *Interpreter) put(r rune) error {
	if err := in.setCursor(in.row, in.col+1); err != nil {
		return err
	}
	in.screen.rows[in.row-1][in.col-2] = Cell{Rune: r, FG: in.fg, BG: in.bg, Attrs: in.attrs, Origin: Written}
	return nil
}

// eraseLineToEnd keeps the cells left of the cursor.
func (in *Interpreter) eraseLineToEnd() {
	r := in.screen.rows[in.row-1]
	in.screen.setRow(in.row-1, r[:min(len(r), in.col-1)])
}

// eraseLine blanks the whole row, keeping it as long as the cursor column.
func (in *Interpreter) eraseLine() {
	r := make([]Cell, in.col-1)
	for i := range r {
		r[i].Origin = Padding
	}
	in.screen.setRow(in.row-1, r)
}

func (in *Interpreter) eraseScreenToEnd() {
	in.eraseLineToEnd()
	in.screen.truncate(in.row)
}

func (in *Interpreter) eraseScreen() {
	in.screen = newScreen()
	in.row, in.col = 1, 1
}

func (in *Interpreter) applyStyle(op ansi.StyleOp) error {
	switch op.Kind {
	case ansi.OpReset:
		in.fg, in.bg, in.attrs = nil, nil, 0
	case ansi.OpSetAttribute:
		in.attrs |= op.Attr
	case ansi.OpCancelAttribute:
		in.attrs &^= op.Attr
	case ansi.OpForeground:
		in.setBright(op.Color.Extended())
		in.fg = colorPtr(op.Color)
	case ansi.OpBackground:
		in.setBright(op.Color.Extended())
		in.bg = colorPtr(op.Color)
	case ansi.OpDefaultForeground:
		in.setBright(true)
		in.fg = nil
	case ansi.OpDefaultBackground:
		in.setBright(true)
		in.bg = nil
	case ansi.OpBrightForeground:
		in.setBright(true)
		in.fg = colorPtr(op.Color)
	case ansi.OpBrightBackground:
		in.setBright(true)
		in.bg = colorPtr(op.Color)
	default:
		return fmt.Errorf("unknown style op %s", op.Kind)
	}
	return nil
}

func (in *Interpreter) setBright(on bool) {
	if on {
		in.attrs |= ansi.AttrBright
	} else {
		in.attrs &^= ansi.AttrBright
	}
}

func colorPtr(c ansi.ColorRef) *ansi.ColorRef { return &c }
