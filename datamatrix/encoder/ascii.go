// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import "fmt"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// appendASCII appends the ASCII encodation of the character at data[i] to
// dst and returns the index of the next unencoded character.
// ASCII mode rules:
//   - digit pairs "00"-"99": codeword = pair_value + 130
//   - ASCII 0-127: codeword = value + 1
//   - ASCII 128-255: Upper Shift (235) then value - 128 + 1
func appendASCII(dst, data []byte, i int) ([]byte, int) {
	c := data[i]
	if isDigit(c) && i+1 < len(data) && isDigit(data[i+1]) {
		pairValue := (c-'0')*10 + data[i+1] - '0'
		return append(dst, pairValue+130), i + 2
	}
	if c <= 127 {
		return append(dst, c+1), i + 1
	}
	return append(dst, asciiUpperShift, c-128+1), i + 1
}

// asciiEncodingSize returns the number of codewords ASCII mode needs for data.
func asciiEncodingSize(data []byte) int {
	size := 0
	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case isDigit(c) && i+1 < len(data) && isDigit(data[i+1]):
			size++
			i += 2
		case c <= 127:
			size++
			i++
		default:
			size += 2
			i++
		}
	}
	return size
}

// encodeASCII consumes characters in ASCII mode until the input is exhausted
// or the look-ahead latches into another mode.
func encodeASCII(ctx Context) {
	var buf [2]byte
	for ctx.HasMoreCharacters() {
		if ctx.MaybeSwitchMode() {
			ctx.WriteCodeword(latchToEDIFACT)
			return
		}
		cws, next := appendASCII(buf[:0], ctx.Rest(), 0)
		for ; next > 0; next-- {
			ctx.Next()
		}
		for _, cw := range cws {
			ctx.WriteCodeword(cw)
		}
	}
}

// appendECI appends an ECI designator for value to dst. Values up to 126
// take one codeword, up to 16382 two, and up to 999999 three.
func appendECI(dst []byte, value int) ([]byte, error) {
	switch {
	case value < 0 || value > 999999:
		return nil, fmt.Errorf("%w: %d", ErrECIValue, value)
	case value <= 126:
		return append(dst, eciDesignator, byte(value+1)), nil
	case value <= 16382:
		return append(dst, eciDesignator,
			byte((value-127)/254+128),
			byte((value-127)%254+1)), nil
	default:
		return append(dst, eciDesignator,
			byte((value-16383)/64516+192),
			byte((value-16383)/254%254+1),
			byte((value-16383)%254+1)), nil
	}
}
