package encoder

// fakeContext is a Context over a fixed input and a fixed symbol capacity.
type fakeContext struct {
	input     []byte
	pos       int
	codewords []byte
	mode      Mode
	modeSets  []Mode

	// capacity is the number of data codewords in the symbol; negative
	// means the symbol size is unknown.
	capacity int
	// switchAt makes MaybeSwitchMode return true once that many
	// characters have been consumed; negative never switches.
	switchAt int
}

func newFakeContext(input string, capacity, switchAt int) *fakeContext {
	return &fakeContext{
		input:    []byte(input),
		mode:     ModeEDIFACT,
		capacity: capacity,
		switchAt: switchAt,
	}
}

func (f *fakeContext) Next() (byte, bool) {
	if f.pos >= len(f.input) {
		return 0, false
	}
	f.pos++
	return f.input[f.pos-1], true
}

func (f *fakeContext) CharactersLeft() int     { return len(f.input) - f.pos }
func (f *fakeContext) Rest() []byte            { return f.input[f.pos:] }
func (f *fakeContext) HasMoreCharacters() bool { return f.pos < len(f.input) }
func (f *fakeContext) Backup(n int)            { f.pos -= n }
func (f *fakeContext) WriteCodeword(cw byte)   { f.codewords = append(f.codewords, cw) }

func (f *fakeContext) RemainingSymbolSpace(extra int) (int, bool) {
	if f.capacity < 0 {
		return 0, false
	}
	left := f.capacity - len(f.codewords) - extra
	if left < 0 {
		return 0, false
	}
	return left, true
}

func (f *fakeContext) SetMode(m Mode) {
	f.mode = m
	f.modeSets = append(f.modeSets, m)
}

func (f *fakeContext) MaybeSwitchMode() bool {
	return f.switchAt >= 0 && f.pos >= f.switchAt
}

var _ Context = (*fakeContext)(nil)
var _ Context = (*encoderContext)(nil)
