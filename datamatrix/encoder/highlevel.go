// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

// Package encoder implements Data Matrix (ECC-200) high-level encoding: the
// conversion of a message into data codewords using the ASCII, EDIFACT and
// C40 encodation schemes.
package encoder

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ericlevine/dmencode/charset"
)

// Special codeword values in ASCII mode.
const (
	asciiUpperShift = 235 // shifts to upper 128 characters
	asciiPad        = 129 // padding codeword (also used for 0-length remainder)
	eciDesignator   = 241
)

// Latch codewords.
const (
	latchToC40     = 230
	latchToBase256 = 231
	latchToX12     = 238
	latchToText    = 239
	latchToEDIFACT = 240
	unlatchASCII   = 254 // unlatch from C40/Text/X12 back to ASCII
)

// Options configures high-level encoding.
type Options struct {
	// Shape restricts the symbols considered for capacity decisions.
	Shape SymbolShapeHint

	// MinSize and MaxSize bound the symbol dimensions when non-nil.
	MinSize, MaxSize *Dimension

	// ForceEDIFACT latches into EDIFACT as soon as a full group of
	// encodable characters is ahead and stays there until one is not.
	ForceEDIFACT bool

	// ECI, when non-nil, is announced with an ECI designator before the data.
	ECI *charset.ECI

	// Logger receives mode switch traces. Nil discards them.
	Logger logrus.FieldLogger
}

// EncodeHighLevel performs high-level encoding of a Data Matrix message,
// producing the unpadded data codewords. The ASCII/EDIFACT mode loop is
// compared against a C40 candidate and the shorter result wins.
func EncodeHighLevel(msg []byte, opts *Options) ([]byte, error) {
	if len(msg) == 0 {
		return nil, ErrEmptyMessage
	}
	if opts == nil {
		opts = &Options{}
	}

	var prefix []byte
	if opts.ECI != nil {
		var err error
		if prefix, err = appendECI(nil, opts.ECI.Value); err != nil {
			return nil, err
		}
	}

	encoded, err := encodeModes(msg, prefix, opts)
	if err != nil {
		return nil, err
	}

	if !opts.ForceEDIFACT {
		c40Result := append(append([]byte(nil), prefix...), encodeWithC40(msg)...)
		if len(c40Result) < len(encoded) {
			encoded = c40Result
		}
	}

	if _, err := Lookup(len(encoded), opts.Shape, opts.MinSize, opts.MaxSize); err != nil {
		return nil, err
	}
	return encoded, nil
}

// encodeModes runs the ASCII/EDIFACT mode loop over msg, starting after
// the codewords in prefix.
func encodeModes(msg, prefix []byte, opts *Options) ([]byte, error) {
	ctx := newEncoderContext(msg, opts)
	for _, cw := range prefix {
		ctx.WriteCodeword(cw)
	}

	for ctx.HasMoreCharacters() {
		switch ctx.mode {
		case ModeEDIFACT:
			if err := EncodeEDIFACT(ctx); err != nil {
				return nil, fmt.Errorf("at character %d: %w", ctx.pos, err)
			}
		default:
			encodeASCII(ctx)
		}
	}
	return ctx.codewords, nil
}

// randomize253State applies the 253-state randomization algorithm used for
// padding codewords. This is required by the specification so that symbols
// with identical content but different capacities produce different pad values.
func randomize253State(codeword byte, position int) byte {
	pseudoRandom := ((149 * position) % 253) + 1
	tmp := int(codeword) + pseudoRandom
	if tmp > 254 {
		tmp -= 254
	}
	return byte(tmp)
}

// PadCodewords pads the codeword slice with the appropriate pad codewords
// to fill the symbol's data capacity.
func PadCodewords(codewords []byte, capacity int) []byte {
	if len(codewords) >= capacity {
		return codewords
	}
	result := make([]byte, capacity)
	copy(result, codewords)

	// First padding codeword is always 129 (PAD).
	result[len(codewords)] = asciiPad

	// Subsequent padding codewords use the 253-state randomization.
	for i := len(codewords) + 1; i < capacity; i++ {
		result[i] = randomize253State(asciiPad, i+1) // position is 1-based
	}

	return result
}
