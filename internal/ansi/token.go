package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a token variant. The set is closed: every Kind must be
// produced by the decoder and handled by the screen interpreter.
type Kind uint8

const (
	KindText Kind = iota
	KindCursorMove
	KindCursorPosition
	KindEraseLine
	KindEraseScreen
	KindSetMode
	KindResetMode
	KindSGR
	KindSaveCursor
	KindKeyboardMode
	KindSetF5String
	KindKeyModifierOptions
	KindCharset
	KindKeypadMode
	KindOSC

	numKinds
)

var kindNames = [numKinds]string{
	KindText:               "Text",
	KindCursorMove:         "CursorMove",
	KindCursorPosition:     "CursorPosition",
	KindEraseLine:          "EraseLine",
	KindEraseScreen:        "EraseScreen",
	KindSetMode:            "SetMode",
	KindResetMode:          "ResetMode",
	KindSGR:                "SGR",
	KindSaveCursor:         "SaveCursor",
	KindKeyboardMode:       "KeyboardMode",
	KindSetF5String:        "SetF5String",
	KindKeyModifierOptions: "KeyModifierOptions",
	KindCharset:            "Charset",
	KindKeypadMode:         "KeypadMode",
	KindOSC:                "OSC",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds returns every token kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// Token is one decoded unit of the input stream. Tokens are immutable once
// produced.
type Token interface {
	Kind() Kind
	String() string
	isToken()
}

// Direction is the direction of a relative cursor move.
type Direction uint8

const (
	Up Direction = iota
	Down
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Extent is the range covered by an erase command.
type Extent uint8

const (
	ToEnd Extent = iota
	ToStart
	All
	AllAndScrollback
)

func (e Extent) String() string {
	switch e {
	case ToEnd:
		return "to end"
	case ToStart:
		return "to start"
	case All:
		return "all"
	case AllAndScrollback:
		return "all and scrollback"
	}
	return fmt.Sprintf("Extent(%d)", e)
}

// Mode is a DEC private mode number.
type Mode int

const (
	ModeCursorKeys     Mode = 1
	ModeShowCursor     Mode = 25
	ModeBracketedPaste Mode = 2004
)

var modeNames = map[Mode]string{
	ModeCursorKeys:     "application cursor keys",
	ModeShowCursor:     "show cursor",
	ModeBracketedPaste: "bracketed paste",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "mode " + strconv.Itoa(int(m))
}

// KeyboardVariant is a linux console keyboard transmit mode (CSI = Ps u).
type KeyboardVariant uint8

const (
	KeyboardNormal KeyboardVariant = iota
	KeyboardApplication
	KeyboardVT
)

func (v KeyboardVariant) String() string {
	switch v {
	case KeyboardNormal:
		return "normal"
	case KeyboardApplication:
		return "application"
	case KeyboardVT:
		return "vt"
	}
	return fmt.Sprintf("KeyboardVariant(%d)", v)
}

// CharsetSlot selects the G0 character set.
type CharsetSlot uint8

const (
	CharsetASCII      CharsetSlot = 0
	CharsetDECSpecial CharsetSlot = 1
)

// KeypadVariant is the keypad mode selected by ESC = or ESC >.
type KeypadVariant uint8

const (
	KeypadApplication KeypadVariant = iota
	KeypadNumeric
)

func (v KeypadVariant) String() string {
	if v == KeypadApplication {
		return "application"
	}
	return "numeric"
}

// OSCEvent is the meaning of a recognized OSC command.
type OSCEvent uint8

const (
	OSCIconAndTitle OSCEvent = iota
	OSCIcon
	OSCTitle
	OSCWorkingDirectory
	OSCPromptStart // 133;A new command, prompt follows
	OSCInputStart  // 133;B end of prompt, start of input
	OSCOutputStart // 133;C end of input, start of output
	OSCCommandEnd  // 133;D end of current command
)

func (e OSCEvent) String() string {
	switch e {
	case OSCIconAndTitle:
		return "icon+title"
	case OSCIcon:
		return "icon"
	case OSCTitle:
		return "title"
	case OSCWorkingDirectory:
		return "cwd"
	case OSCPromptStart:
		return "prompt-start"
	case OSCInputStart:
		return "input-start"
	case OSCOutputStart:
		return "output-start"
	case OSCCommandEnd:
		return "command-end"
	}
	return fmt.Sprintf("OSCEvent(%d)", e)
}

type (
	// Text is a run of printable text and C0 controls between escapes.
	Text struct{ Text string }

	CursorMove struct {
		Dir Direction
		N   int
	}

	// CursorPosition is an absolute, 1-based move. Values below 1 are
	// clamped by the interpreter, not here.
	CursorPosition struct{ Row, Col int }

	EraseLine   struct{ Extent Extent }
	EraseScreen struct{ Extent Extent }
	SetMode     struct{ Mode Mode }
	ResetMode   struct{ Mode Mode }

	// SGR carries the style ops of one CSI m sequence in source order.
	SGR struct{ Ops []StyleOp }

	SaveCursor   struct{}
	KeyboardMode struct{ Variant KeyboardVariant }
	SetF5String  struct{}

	// KeyModifierOptions is xterm's CSI > Ps ; Pv m. Params is kept verbatim.
	KeyModifierOptions struct{ Params string }

	Charset    struct{ Slot CharsetSlot }
	KeypadMode struct{ Variant KeypadVariant }

	// OSC is a recognized operating system command. Params holds the fields
	// after the command number (and after the sub-code for 133).
	OSC struct {
		Event  OSCEvent
		Params []string
	}
)

func (Text) Kind() Kind               { return KindText }
func (CursorMove) Kind() Kind         { return KindCursorMove }
func (CursorPosition) Kind() Kind     { return KindCursorPosition }
func (EraseLine) Kind() Kind          { return KindEraseLine }
func (EraseScreen) Kind() Kind        { return KindEraseScreen }
func (SetMode) Kind() Kind            { return KindSetMode }
func (ResetMode) Kind() Kind          { return KindResetMode }
func (SGR) Kind() Kind                { return KindSGR }
func (SaveCursor) Kind() Kind         { return KindSaveCursor }
func (KeyboardMode) Kind() Kind       { return KindKeyboardMode }
func (SetF5String) Kind() Kind        { return KindSetF5String }
func (KeyModifierOptions) Kind() Kind { return KindKeyModifierOptions }
func (Charset) Kind() Kind            { return KindCharset }
func (KeypadMode) Kind() Kind         { return KindKeypadMode }
func (OSC) Kind() Kind                { return KindOSC }

func (Text) isToken()               {}
func (CursorMove) isToken()         {}
func (CursorPosition) isToken()     {}
func (EraseLine) isToken()          {}
func (EraseScreen) isToken()        {}
func (SetMode) isToken()            {}
func (ResetMode) isToken()          {}
func (SGR) isToken()                {}
func (SaveCursor) isToken()         {}
func (KeyboardMode) isToken()       {}
func (SetF5String) isToken()        {}
func (KeyModifierOptions) isToken() {}
func (Charset) isToken()            {}
func (KeypadMode) isToken()         {}
func (OSC) isToken()                {}

func (t Text) String() string { return fmt.Sprintf("Text(%q)", t.Text) }

func (t CursorMove) String() string { return fmt.Sprintf("CursorMove(%s, %d)", t.Dir, t.N) }

func (t CursorPosition) String() string {
	return fmt.Sprintf("CursorPosition(%d, %d)", t.Row, t.Col)
}

func (t EraseLine) String() string   { return fmt.Sprintf("EraseLine(%s)", t.Extent) }
func (t EraseScreen) String() string { return fmt.Sprintf("EraseScreen(%s)", t.Extent) }
func (t SetMode) String() string     { return fmt.Sprintf("SetMode(%s)", t.Mode) }
func (t ResetMode) String() string   { return fmt.Sprintf("ResetMode(%s)", t.Mode) }

func (t SGR) String() string {
	parts := make([]string, len(t.Ops))
	for i, op := range t.Ops {
		parts[i] = op.String()
	}
	return "SGR([" + strings.Join(parts, ", ") + "])"
}

func (SaveCursor) String() string     { return "SaveCursor" }
func (t KeyboardMode) String() string { return fmt.Sprintf("KeyboardMode(%s)", t.Variant) }
func (SetF5String) String() string    { return "SetF5String" }
func (t KeyModifierOptions) String() string {
	return fmt.Sprintf("KeyModifierOptions(%q)", t.Params)
}
func (t Charset) String() string    { return fmt.Sprintf("Charset(%d)", t.Slot) }
func (t KeypadMode) String() string { return fmt.Sprintf("KeypadMode(%s)", t.Variant) }

func (t OSC) String() string {
	return fmt.Sprintf("OSC(%s, %q)", t.Event, t.Params)
}
