package encoder

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Mode identifies a Data Matrix encodation scheme.
type Mode int

// Encodation modes. Only ASCII and EDIFACT are produced by the mode loop;
// the others exist for latch codeword and log naming.
const (
	ModeASCII Mode = iota
	ModeC40
	ModeText
	ModeX12
	ModeEDIFACT
	ModeBase256
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeASCII:
		return "ASCII"
	case ModeC40:
		return "C40"
	case ModeText:
		return "TEXT"
	case ModeX12:
		return "X12"
	case ModeEDIFACT:
		return "EDIFACT"
	case ModeBase256:
		return "BASE256"
	default:
		return "UNKNOWN"
	}
}

// Context is the state an encodation mode works against: an input cursor,
// a codeword sink, symbol capacity bookkeeping and the active mode.
// Implementations are used by one encoder at a time.
type Context interface {
	// Next consumes and returns the next input character.
	Next() (byte, bool)
	// CharactersLeft returns the number of unconsumed input characters.
	CharactersLeft() int
	// Rest returns the unconsumed input without consuming it.
	Rest() []byte
	// HasMoreCharacters reports whether CharactersLeft() > 0.
	HasMoreCharacters() bool
	// Backup un-consumes the last n characters returned by Next.
	Backup(n int)
	// WriteCodeword appends a codeword to the output.
	WriteCodeword(cw byte)
	// RemainingSymbolSpace returns how many codewords would be left in the
	// smallest fitting symbol after extra more were written. ok is false
	// when no symbol is large enough.
	RemainingSymbolSpace(extra int) (left int, ok bool)
	// SetMode switches the active encodation.
	SetMode(m Mode)
	// MaybeSwitchMode reports whether the active encodation should stop
	// now. When it returns true the new mode has already been selected.
	MaybeSwitchMode() bool
}

// encoderContext is the Context used by EncodeHighLevel.
type encoderContext struct {
	msg       []byte
	pos       int
	codewords []byte
	mode      Mode
	opts      *Options
	log       logrus.FieldLogger
}

func newEncoderContext(msg []byte, opts *Options) *encoderContext {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &encoderContext{
		msg:       msg,
		codewords: make([]byte, 0, len(msg)+2),
		mode:      ModeASCII,
		opts:      opts,
		log:       log,
	}
}

func (c *encoderContext) Next() (byte, bool) {
	if c.pos >= len(c.msg) {
		return 0, false
	}
	ch := c.msg[c.pos]
	c.pos++
	return ch, true
}

func (c *encoderContext) CharactersLeft() int { return len(c.msg) - c.pos }

func (c *encoderContext) Rest() []byte { return c.msg[c.pos:] }

func (c *encoderContext) HasMoreCharacters() bool { return c.pos < len(c.msg) }

func (c *encoderContext) Backup(n int) {
	if n > c.pos {
		panic("datamatrix/encoder: backup past start of message")
	}
	c.pos -= n
}

func (c *encoderContext) WriteCodeword(cw byte) {
	c.codewords = append(c.codewords, cw)
}

func (c *encoderContext) RemainingSymbolSpace(extra int) (int, bool) {
	needed := len(c.codewords) + extra
	si, err := Lookup(needed, c.opts.Shape, c.opts.MinSize, c.opts.MaxSize)
	if err != nil {
		return 0, false
	}
	return si.DataCapacity - needed, true
}

func (c *encoderContext) SetMode(m Mode) {
	if m != c.mode {
		c.log.WithFields(logrus.Fields{
			"from":      c.mode,
			"to":        m,
			"pos":       c.pos,
			"codewords": len(c.codewords),
		}).Debug("datamatrix/encoder: mode switch")
	}
	c.mode = m
}

func (c *encoderContext) MaybeSwitchMode() bool {
	next := lookAhead(c.msg, c.pos, c.mode, c.opts.ForceEDIFACT)
	if next == c.mode {
		return false
	}
	c.SetMode(next)
	return true
}
