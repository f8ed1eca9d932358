package encoder

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/dmencode/charset"
)

func TestEncodeHighLevel(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		opts *Options
		want []byte
	}{
		{"ascii", "abc", nil, []byte{98, 99, 100}},
		{"digit pairs", "123456", nil, []byte{142, 164, 186}},
		{"upper shift", "\xe9", nil, []byte{235, 106}},
		{"c40", "AIMAIMAIM", nil, []byte{230, 91, 11, 91, 11, 91, 11, 254}},
		{
			"forced edifact",
			"ABCDEFGH",
			&Options{ForceEDIFACT: true},
			[]byte{latchToEDIFACT, 4, 32, 196, 20, 97, 200, edifactUnlatch << 2},
		},
		{
			"forced edifact ascii tail without unlatch",
			"ABCDEFGH12",
			&Options{ForceEDIFACT: true},
			[]byte{latchToEDIFACT, 4, 32, 196, 20, 97, 200, 142},
		},
		{
			"forced edifact leaves before lowercase",
			"ABCDabcd",
			&Options{ForceEDIFACT: true},
			[]byte{latchToEDIFACT, 4, 32, 196, edifactUnlatch << 2, 98, 99, 100, 101},
		},
		{"eci", "A", &Options{ECI: charset.ECIUTF8}, []byte{241, 27, 66}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeHighLevel([]byte(tc.msg), tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeHighLevelChoosesEDIFACT(t *testing.T) {
	msg := "A.B/C*D:E+F-G.H;I<J=K>L?"
	for _, shape := range []SymbolShapeHint{ShapeHintForceNone, ShapeHintForceRectangle} {
		got, err := EncodeHighLevel([]byte(msg), &Options{Shape: shape})
		require.NoError(t, err)

		require.Len(t, got, 20)
		assert.Equal(t, byte(latchToEDIFACT), got[0])
		assert.Equal(t, byte(edifactUnlatch<<2), got[19])

		values := unpackEDIFACT(got[1:19])
		for i := range msg {
			assert.Equal(t, msg[i]&0x3f, values[i], "character %d", i)
		}
	}
}

func TestEncodeHighLevelErrors(t *testing.T) {
	_, err := EncodeHighLevel(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = EncodeHighLevel([]byte(strings.Repeat("a", 1600)), nil)
	assert.ErrorIs(t, err, ErrNotEnoughSpace)

	_, err = EncodeHighLevel([]byte("ABCDEFG"), &Options{MaxSize: &Dimension{10, 10}})
	assert.ErrorIs(t, err, ErrNotEnoughSpace)
}

func TestEncodeHighLevelLogsModeSwitches(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := EncodeHighLevel([]byte("ABCDabcd"), &Options{ForceEDIFACT: true, Logger: logger})
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, ModeEDIFACT, entries[0].Data["to"])
	assert.Equal(t, ModeASCII, entries[1].Data["to"])
	assert.Equal(t, 4, entries[1].Data["pos"])
}

func TestEncoderContextSymbolSpace(t *testing.T) {
	ctx := newEncoderContext([]byte("ABCDEFG"), &Options{})
	ctx.codewords = append(ctx.codewords, 1, 2, 3, 4)

	left, ok := ctx.RemainingSymbolSpace(0)
	require.True(t, ok)
	assert.Equal(t, 1, left) // 12x12 holds 5

	left, ok = ctx.RemainingSymbolSpace(2)
	require.True(t, ok)
	assert.Equal(t, 2, left) // 14x14 holds 8

	_, ok = ctx.RemainingSymbolSpace(2000)
	assert.False(t, ok)
}

func TestEncoderContextBackup(t *testing.T) {
	ctx := newEncoderContext([]byte("ABC"), &Options{})
	ctx.Next()
	ctx.Next()
	ctx.Backup(2)
	assert.Equal(t, []byte("ABC"), ctx.Rest())
	assert.Panics(t, func() { ctx.Backup(1) })
}

func TestPadCodewords(t *testing.T) {
	assert.Equal(t, []byte{1, 2, 129, 220, 115}, PadCodewords([]byte{1, 2}, 5))
	assert.Equal(t, []byte{1, 2}, PadCodewords([]byte{1, 2}, 2))
}
