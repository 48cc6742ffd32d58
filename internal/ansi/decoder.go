// Package ansi decodes captured terminal output into a stream of tokens.
//
// The decoder makes a single forward pass over the input with no
// backtracking. Text between escape sequences becomes Text tokens; CSI, OSC,
// charset and keypad sequences become their own token types. Anything the
// decoder does not recognize is a *DecodeError rather than being skipped, so
// an unsupported sequence can never silently corrupt a rendering.
package ansi

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

const (
	esc = 0x1b
	bel = 0x07
)

// Decoder turns raw terminal bytes into tokens. A Decoder holds no per-input
// state and may be shared between goroutines.
type Decoder struct {
	logger *slog.Logger
}

// NewDecoder returns a Decoder that logs to logger, or to slog.Default()
// when logger is nil.
func NewDecoder(logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{logger: logger}
}

// Decode decodes data with a default Decoder.
func Decode(data []byte) ([]Token, error) {
	return NewDecoder(nil).Decode(data)
}

// Decode returns the tokens of data in source order. On failure it returns
// a *DecodeError and no tokens.
func (d *Decoder) Decode(data []byte) ([]Token, error) {
	s := &scanner{data: data, pos: Position{Line: 1, Column: 1}}
	var tokens []Token
	for !s.done() {
		s.start = s.pos
		tok, err := s.next()
		if err != nil {
			d.logger.Debug("decode failed", "offset", s.start.Offset, "error", err)
			return nil, err
		}
		d.logger.Debug("token", "offset", s.start.Offset, "token", tok)
		tokens = append(tokens, tok)
	}
	d.logger.Debug("decoded input", "bytes", len(data), "tokens", len(tokens))
	return tokens, nil
}

// scanner is the per-call decoding state. start marks the boundary after
// the last successful token.
type scanner struct {
	data  []byte
	pos   Position
	start Position
}

func (s *scanner) done() bool { return s.pos.Offset >= len(s.data) }

func (s *scanner) consume() (byte, bool) {
	if s.done() {
		return 0, false
	}
	b := s.data[s.pos.Offset]
	s.pos.Offset++
	if b == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	return b, true
}

func (s *scanner) peek() (byte, bool) {
	if s.done() {
		return 0, false
	}
	return s.data[s.pos.Offset], true
}

func (s *scanner) errorf(format string, args ...any) *DecodeError {
	return &DecodeError{
		Start:    s.start,
		End:      s.pos,
		Consumed: s.data[s.start.Offset:s.pos.Offset],
		Reason:   fmt.Sprintf(format, args...),
	}
}

func (s *scanner) next() (Token, error) {
	b, _ := s.consume()
	if b == esc {
		return s.escape()
	}
	for {
		c, ok := s.peek()
		if !ok || c == esc {
			break
		}
		s.consume()
	}
	text := s.data[s.start.Offset:s.pos.Offset]
	if !utf8.Valid(text) {
		return nil, s.errorf("invalid UTF-8 in text")
	}
	return Text{Text: string(text)}, nil
}

func (s *scanner) escape() (Token, error) {
	e, ok := s.consume()
	if !ok {
		return nil, s.errorf("unexpected end of input after ESC")
	}
	switch e {
	case '[':
		return s.csi()
	case ']':
		return s.osc()
	case '(':
		return s.charset()
	case '=':
		return KeypadMode{Variant: KeypadApplication}, nil
	case '>':
		return KeypadMode{Variant: KeypadNumeric}, nil
	}
	return nil, s.errorf("unexpected byte after ESC: %#02x", e)
}

func (s *scanner) csi() (Token, error) {
	paramStart := s.pos.Offset
	for {
		c, ok := s.consume()
		if !ok {
			return nil, s.errorf("unterminated CSI sequence")
		}
		if c >= 0x40 && c <= 0x7e {
			params := string(s.data[paramStart : s.pos.Offset-1])
			tok, err := decodeCSI(params, c)
			if err != nil {
				return nil, s.errorf("%v", err)
			}
			return tok, nil
		}
	}
}

func (s *scanner) osc() (Token, error) {
	payloadStart := s.pos.Offset
	for {
		c, ok := s.consume()
		if !ok {
			return nil, s.errorf("unterminated OSC sequence")
		}
		payloadEnd := s.pos.Offset - 1
		if c == esc {
			if n, ok := s.peek(); ok && n == '\\' {
				s.consume()
			} else {
				continue
			}
		} else if c != bel {
			continue
		}

		payload := s.data[payloadStart:payloadEnd]
		if !utf8.Valid(payload) {
			return nil, s.errorf("invalid UTF-8 in OSC payload")
		}
		tok, err := decodeOSC(string(payload))
		if err != nil {
			return nil, s.errorf("%v", err)
		}
		return tok, nil
	}
}

func (s *scanner) charset() (Token, error) {
	p, ok := s.consume()
	if !ok {
		return nil, s.errorf("unexpected end of input after ESC (")
	}
	switch p {
	case 'B':
		return Charset{Slot: CharsetASCII}, nil
	case 'M':
		return Charset{Slot: CharsetDECSpecial}, nil
	}
	return nil, s.errorf("unexpected byte after ESC (: %#02x", p)
}
