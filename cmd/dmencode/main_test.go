package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/dmencode/datamatrix/encoder"
)

func TestParseDimension(t *testing.T) {
	d, err := parseDimension("32x8")
	require.NoError(t, err)
	assert.Equal(t, &encoder.Dimension{Width: 32, Height: 8}, d)

	d, err = parseDimension("")
	require.NoError(t, err)
	assert.Nil(t, d)

	for _, bad := range []string{"32", "x8", "0x0"} {
		_, err := parseDimension(bad)
		assert.Error(t, err, bad)
	}
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "codewords.txt")

	var stdout bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetArgs([]string{"--force-edifact", "-o", out, "ABCDEFGH", "123456"})
	require.NoError(t, RootCmd.Execute())
	assert.Empty(t, stdout.String())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"ABCDEFGH: 14x14\tF0 04 20 C4 14 61 C8 7C\n"+
			"123456: 12x12\tF0 C7 2C F4 BA\n",
		string(got))
}
