// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

// minC40Run is the shortest run of basic C40 characters worth a latch:
// latch + unlatch cost two codewords, and every triplet saves one.
const minC40Run = 6

// encodeWithC40 encodes data using C40 mode for long runs of basic C40
// characters and ASCII mode everywhere else. C40 packs 3 characters into 2
// codewords, which pays off for uppercase text and digits mixed with spaces.
//
// C40 basic set: Space=3, '0'-'9'=4-13, 'A'-'Z'=14-39
func encodeWithC40(data []byte) []byte {
	result := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		run := c40Run(data, i)
		if run < minC40Run {
			result, i = appendASCII(result, data, i)
			continue
		}

		// Only whole triplets go into C40; the 1 or 2 leftover characters
		// are written in ASCII after the unlatch.
		triplets := run / 3
		result = append(result, latchToC40)
		for k := 0; k < triplets; k++ {
			j := i + 3*k
			v := 1600*c40Value(data[j]) + 40*c40Value(data[j+1]) + c40Value(data[j+2]) + 1
			result = append(result, byte(v/256), byte(v%256))
		}
		result = append(result, unlatchASCII)
		i += 3 * triplets
	}
	return result
}

// c40Run returns the number of consecutive basic C40 characters at data[i].
func c40Run(data []byte, i int) int {
	n := 0
	for i+n < len(data) && isBasicC40(data[i+n]) {
		n++
	}
	return n
}

// isBasicC40 returns true if the byte can be encoded as a single C40 value
// (without shift characters).
func isBasicC40(b byte) bool {
	return b == ' ' || isDigit(b) || (b >= 'A' && b <= 'Z')
}

// c40Value returns the C40 value for a basic C40 character.
func c40Value(b byte) int {
	switch {
	case b == ' ':
		return 3
	case isDigit(b):
		return int(b-'0') + 4
	default:
		return int(b-'A') + 14
	}
}
