package ansi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Scenario(t *testing.T) {
	tokens, err := Decode([]byte("ab\x1b[31mc\x1b[0md\n"))
	require.NoError(t, err)
	assert.Equal(t, []Token{
		Text{Text: "ab"},
		SGR{Ops: []StyleOp{{Kind: OpForeground, Color: Named(Red)}}},
		Text{Text: "c"},
		SGR{Ops: []StyleOp{{Kind: OpReset}}},
		Text{Text: "d\n"},
	}, tokens)
}

func TestDecode_PlainText(t *testing.T) {
	tokens, err := Decode([]byte("hello\n\tworld\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []Token{Text{Text: "hello\n\tworld\r\n"}}, tokens)
}

func TestDecode_Empty(t *testing.T) {
	tokens, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestDecode_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Token
	}{
		{"cursor up default", "\x1b[A", CursorMove{Dir: Up, N: 1}},
		{"cursor down", "\x1b[3B", CursorMove{Dir: Down, N: 3}},
		{"cursor forward", "\x1b[12C", CursorMove{Dir: Forward, N: 12}},
		{"cursor backward", "\x1b[2D", CursorMove{Dir: Backward, N: 2}},
		{"cursor home", "\x1b[H", CursorPosition{Row: 1, Col: 1}},
		{"cursor position", "\x1b[5;10H", CursorPosition{Row: 5, Col: 10}},
		{"cursor position empty row", "\x1b[;7H", CursorPosition{Row: 1, Col: 7}},
		{"cursor position row only", "\x1b[4H", CursorPosition{Row: 4, Col: 1}},
		{"cursor position zero", "\x1b[0;0H", CursorPosition{Row: 0, Col: 0}},
		{"erase screen default", "\x1b[J", EraseScreen{Extent: ToEnd}},
		{"erase screen to end", "\x1b[0J", EraseScreen{Extent: ToEnd}},
		{"erase screen to start", "\x1b[1J", EraseScreen{Extent: ToStart}},
		{"erase screen all", "\x1b[2J", EraseScreen{Extent: All}},
		{"erase screen scrollback", "\x1b[3J", EraseScreen{Extent: AllAndScrollback}},
		{"erase line default", "\x1b[K", EraseLine{Extent: ToEnd}},
		{"erase line to start", "\x1b[1K", EraseLine{Extent: ToStart}},
		{"erase line all", "\x1b[2K", EraseLine{Extent: All}},
		{"show cursor", "\x1b[?25h", SetMode{Mode: ModeShowCursor}},
		{"hide cursor", "\x1b[?25l", ResetMode{Mode: ModeShowCursor}},
		{"cursor keys", "\x1b[?1h", SetMode{Mode: ModeCursorKeys}},
		{"bracketed paste off", "\x1b[?2004l", ResetMode{Mode: ModeBracketedPaste}},
		{"save cursor", "\x1b[u", SaveCursor{}},
		{"keyboard normal", "\x1b[=0u", KeyboardMode{Variant: KeyboardNormal}},
		{"keyboard application", "\x1b[=1u", KeyboardMode{Variant: KeyboardApplication}},
		{"keyboard vt", "\x1b[=2u", KeyboardMode{Variant: KeyboardVT}},
		{"f5 string", "\x1b[=5u", SetF5String{}},
		{"key modifier options", "\x1b[>4;1m", KeyModifierOptions{Params: "4;1"}},
		{"charset ascii", "\x1b(B", Charset{Slot: CharsetASCII}},
		{"charset line drawing", "\x1b(M", Charset{Slot: CharsetDECSpecial}},
		{"keypad application", "\x1b=", KeypadMode{Variant: KeypadApplication}},
		{"keypad numeric", "\x1b>", KeypadMode{Variant: KeypadNumeric}},
		{"title BEL", "\x1b]2;my title\x07", OSC{Event: OSCTitle, Params: []string{"my title"}}},
		{"title ST", "\x1b]0;host: ~\x1b\\", OSC{Event: OSCIconAndTitle, Params: []string{"host: ~"}}},
		{"icon", "\x1b]1;icon\x07", OSC{Event: OSCIcon, Params: []string{"icon"}}},
		{"title with semicolon", "\x1b]2;a;b\x07", OSC{Event: OSCTitle, Params: []string{"a;b"}}},
		{"cwd", "\x1b]7;file://host/tmp\x07", OSC{Event: OSCWorkingDirectory, Params: []string{"file://host/tmp"}}},
		{"prompt start", "\x1b]133;A\x07", OSC{Event: OSCPromptStart}},
		{"input start", "\x1b]133;B\x07", OSC{Event: OSCInputStart}},
		{"output start", "\x1b]133;C\x1b\\", OSC{Event: OSCOutputStart}},
		{"command end with status", "\x1b]133;D;0\x07", OSC{Event: OSCCommandEnd, Params: []string{"0"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.want, tokens[0])
		})
	}
}

func TestDecode_SGR(t *testing.T) {
	tests := []struct {
		name   string
		params string
		want   []StyleOp
	}{
		{"empty is reset", "", []StyleOp{{Kind: OpReset}}},
		{"zero padded reset", "00", []StyleOp{{Kind: OpReset}}},
		{"bold", "1", []StyleOp{{Kind: OpSetAttribute, Attr: AttrBold}}},
		{"zero padded italic", "03", []StyleOp{{Kind: OpSetAttribute, Attr: AttrItalic}}},
		{"strikethrough", "9", []StyleOp{{Kind: OpSetAttribute, Attr: AttrStrikethrough}}},
		{"cancel underline", "24", []StyleOp{{Kind: OpCancelAttribute, Attr: AttrUnderline}}},
		{"cancel faint", "22", []StyleOp{{Kind: OpCancelAttribute, Attr: AttrFaint}}},
		{"cancel with no attribute", "20", []StyleOp{{Kind: OpCancelAttribute}}},
		{"cancel strikethrough", "29", []StyleOp{{Kind: OpCancelAttribute, Attr: AttrStrikethrough}}},
		{"bold green", "1;32", []StyleOp{
			{Kind: OpSetAttribute, Attr: AttrBold},
			{Kind: OpForeground, Color: Named(Green)},
		}},
		{"background", "44", []StyleOp{{Kind: OpBackground, Color: Named(Blue)}}},
		{"bright foreground", "91", []StyleOp{{Kind: OpBrightForeground, Color: Named(Red)}}},
		{"bright background", "107", []StyleOp{{Kind: OpBrightBackground, Color: Named(White)}}},
		{"default colors", "39;49", []StyleOp{{Kind: OpDefaultForeground}, {Kind: OpDefaultBackground}}},
		{"indexed foreground", "38;5;46", []StyleOp{{Kind: OpForeground, Color: Indexed(46)}}},
		{"true color background", "48;2;10;20;30", []StyleOp{{Kind: OpBackground, Color: RGB(10, 20, 30)}}},
		{"extended then attribute", "38;5;1;4", []StyleOp{
			{Kind: OpForeground, Color: Indexed(1)},
			{Kind: OpSetAttribute, Attr: AttrUnderline},
		}},
		{"empty field inside list", "1;;31", []StyleOp{
			{Kind: OpSetAttribute, Attr: AttrBold},
			{Kind: OpReset},
			{Kind: OpForeground, Color: Named(Red)},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Decode([]byte("\x1b[" + tt.params + "m"))
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, SGR{Ops: tt.want}, tokens[0])
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		reason  string
		startAt int
	}{
		{"unknown escape", "ab\x1bZ", "unexpected byte after ESC", 2},
		{"escape at end", "ab\x1b", "unexpected end of input after ESC", 2},
		{"unterminated CSI", "x\x1b[12;", "unterminated CSI sequence", 1},
		{"unterminated OSC", "ab\x1b]0;title", "unterminated OSC sequence", 2},
		{"unknown CSI final", "\x1b[5z", "unsupported CSI final byte", 0},
		{"unknown private mode", "\x1b[?1049h", "unknown DEC private mode 1049", 0},
		{"ANSI mode", "\x1b[4h", "only DEC private modes", 0},
		{"bad erase line", "\x1b[3K", "unsupported erase line parameter", 0},
		{"bad erase screen", "\x1b[9J", "unsupported erase screen parameter", 0},
		{"bad CSI u", "\x1b[=3u", "unsupported CSI u parameters", 0},
		{"bad charset", "\x1b(0", "unexpected byte after ESC (", 0},
		{"charset at end", "\x1b(", "unexpected end of input", 0},
		{"SGR unknown", "\x1b[58m", "unsupported SGR field", 0},
		{"SGR three digit attribute", "\x1b[001m", "unsupported SGR field", 0},
		{"SGR sign", "\x1b[+1m", "not a number", 0},
		{"SGR bad sub-mode", "\x1b[38;7m", "unknown color sub-mode", 0},
		{"SGR missing sub-mode", "\x1b[48m", "missing color sub-mode", 0},
		{"SGR index out of range", "\x1b[38;5;256m", "out of range", 0},
		{"SGR short true color", "\x1b[38;2;1;2m", "true color needs 3 components", 0},
		{"cursor move garbage", "\x1b[-1A", "not a number", 0},
		{"cursor position too many", "\x1b[1;2;3H", "at most 2 parameters", 0},
		{"unknown OSC", "\x1b]52;c;aGVsbG8=\x07", "unsupported OSC command", 0},
		{"OSC 133 unknown sub-code", "\x1b]133;Z\x07", "unsupported OSC 133 sub-code", 0},
		{"OSC 133 without sub-code", "\x1b]133\x07", "OSC 133 without a sub-code", 0},
		{"title without payload", "\x1b]2\x07", "without a payload", 0},
		{"invalid UTF-8", "ok\x1b[0m\xff\xfe", "invalid UTF-8", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, tokens)

			var decErr *DecodeError
			require.True(t, errors.As(err, &decErr))
			assert.Contains(t, decErr.Reason, tt.reason)
			assert.Equal(t, tt.startAt, decErr.Start.Offset)
		})
	}
}

func TestDecode_UnterminatedOSCReportsOpeningESC(t *testing.T) {
	input := "line one\nprompt \x1b]2;never closed"
	_, err := Decode([]byte(input))

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, Position{Line: 2, Column: 8, Offset: 16}, decErr.Start)
	assert.Equal(t, len(input), decErr.End.Offset)
	assert.Equal(t, "\x1b]2;never closed", string(decErr.Consumed))
	assert.Contains(t, err.Error(), "<ESC>]2;never closed")
	assert.Contains(t, err.Error(), "byte 16")
}

func TestDecode_ErrorPositionCountsLines(t *testing.T) {
	_, err := Decode([]byte("a\nbc\n\x1b[?7h"))

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, Position{Line: 3, Column: 1, Offset: 5}, decErr.Start)
	assert.Equal(t, Position{Line: 3, Column: 6, Offset: 10}, decErr.End)
}

func TestDecode_ESCInsideOSCPayload(t *testing.T) {
	tokens, err := Decode([]byte("\x1b]2;a\x1bb\x07"))
	require.NoError(t, err)
	assert.Equal(t, []Token{OSC{Event: OSCTitle, Params: []string{"a\x1bb"}}}, tokens)
}

func TestDecode_EveryKindIsProduced(t *testing.T) {
	input := "text" +
		"\x1b[A\x1b[H\x1b[K\x1b[J\x1b[?25h\x1b[?25l\x1b[1m\x1b[u\x1b[=1u\x1b[=5u" +
		"\x1b[>4;2m\x1b(B\x1b=\x1b]0;t\x07"
	tokens, err := Decode([]byte(input))
	require.NoError(t, err)

	seen := make(map[Kind]bool)
	for _, tok := range tokens {
		seen[tok.Kind()] = true
	}
	for _, k := range Kinds() {
		assert.True(t, seen[k], "no input produced %s", k)
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Text{Text: "ab"}, `Text("ab")`},
		{CursorMove{Dir: Backward, N: 2}, "CursorMove(backward, 2)"},
		{CursorPosition{Row: 3, Col: 4}, "CursorPosition(3, 4)"},
		{EraseLine{Extent: ToEnd}, "EraseLine(to end)"},
		{EraseScreen{Extent: AllAndScrollback}, "EraseScreen(all and scrollback)"},
		{SetMode{Mode: ModeBracketedPaste}, "SetMode(bracketed paste)"},
		{SGR{Ops: []StyleOp{{Kind: OpForeground, Color: Named(Red)}, {Kind: OpSetAttribute, Attr: AttrBold}}},
			"SGR([Foreground(red), SetAttribute(bold)])"},
		{SGR{Ops: []StyleOp{{Kind: OpBackground, Color: RGB(1, 2, 3)}}}, "SGR([Background(rgb(1,2,3))])"},
		{SGR{Ops: []StyleOp{{Kind: OpForeground, Color: Indexed(200)}}}, "SGR([Foreground(index(200))])"},
		{SaveCursor{}, "SaveCursor"},
		{KeyboardMode{Variant: KeyboardVT}, "KeyboardMode(vt)"},
		{Charset{Slot: CharsetDECSpecial}, "Charset(1)"},
		{KeypadMode{Variant: KeypadNumeric}, "KeypadMode(numeric)"},
		{OSC{Event: OSCTitle, Params: []string{"x"}}, `OSC(title, ["x"])`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestAttr_String(t *testing.T) {
	assert.Equal(t, "none", Attr(0).String())
	assert.Equal(t, "bold|underline|bright", (AttrBold | AttrUnderline | AttrBright).String())
	assert.True(t, (AttrBold | AttrItalic).Has(AttrItalic))
	assert.False(t, AttrBold.Has(AttrBold|AttrItalic))
}
