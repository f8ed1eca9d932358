package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookAhead(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		pos     int
		current Mode
		force   bool
		want    Mode
	}{
		{"short run stays ascii", "ABCD", 0, ModeASCII, false, ModeASCII},
		{"long punctuated run", "A.B/C*D:E+F-G.H;I<J=K>L?", 0, ModeASCII, false, ModeEDIFACT},
		{"digits prefer ascii", "12345678901234567890", 0, ModeASCII, false, ModeASCII},
		{"lowercase", "abcdefgh", 0, ModeASCII, false, ModeASCII},
		{"force needs a group", "ABC", 0, ModeASCII, true, ModeASCII},
		{"force", "ABCD", 0, ModeASCII, true, ModeEDIFACT},
		{"force stops at illegal", "ABCDabcd", 4, ModeEDIFACT, true, ModeASCII},
		{"edifact at end of input", "ABCD", 4, ModeEDIFACT, false, ModeEDIFACT},
		{"edifact short tail", "ABCDAB", 4, ModeEDIFACT, false, ModeEDIFACT},
		{"edifact short run before illegal", "ABCDABa", 4, ModeEDIFACT, false, ModeASCII},
		{"edifact digit tail", "ABCD12345678", 4, ModeEDIFACT, false, ModeASCII},
		{"edifact keeps long run", "A.B/C*D:E+F-G.H;I<J=K>L?", 8, ModeEDIFACT, false, ModeEDIFACT},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lookAhead([]byte(tc.msg), tc.pos, tc.current, tc.force)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEDIFACTRunCost(t *testing.T) {
	msg := []byte("ABCDEFabc")
	// One group, then "EF" in ASCII after the unlatch.
	assert.Equal(t, 3+1+2, edifactRunCost(msg, 0, edifactRun(msg, 0)))

	msg = []byte("ABCDEF")
	// Six values and the unlatch take six codewords.
	assert.Equal(t, 6, edifactRunCost(msg, 0, edifactRun(msg, 0)))
}
