// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "fmt"

// edifactUnlatch is the 6-bit value that returns an EDIFACT segment to ASCII.
const edifactUnlatch = 0b011111

func isEDIFACTEncodable(c byte) bool {
	return c >= 32 && c <= 94
}

// edifactGroup holds up to four characters waiting to be packed.
type edifactGroup struct {
	values [4]byte
	n      int
}

func (g *edifactGroup) push(c byte) {
	g.values[g.n] = c
	g.n++
}

func (g *edifactGroup) reset() {
	g.n = 0
}

// value returns the 6-bit value at index i, or 0 past the end of the group.
func (g *edifactGroup) value(i int) byte {
	if i >= g.n {
		return 0
	}
	return g.values[i] & 0x3f
}

// writeEDIFACT packs the 1 to 4 values of g into codewords: four values
// become three codewords, a shorter group becomes one codeword per value.
func writeEDIFACT(ctx Context, g *edifactGroup) {
	v1 := g.value(1)
	ctx.WriteCodeword(g.value(0)<<2 | v1>>4)
	if g.n < 2 {
		return
	}
	v2 := g.value(2)
	ctx.WriteCodeword(v1<<4 | v2>>2)
	if g.n < 3 {
		return
	}
	ctx.WriteCodeword(v2<<6 | g.value(3))
}

// EncodeEDIFACT consumes characters from ctx in EDIFACT encodation until the
// input runs out or ctx asks for a mode switch at a group boundary, then
// finishes the segment. An un-encodable character aborts the whole call.
func EncodeEDIFACT(ctx Context) error {
	var g edifactGroup
	for {
		c, ok := ctx.Next()
		if !ok {
			break
		}
		if !isEDIFACTEncodable(c) {
			// Backing up and unlatching here instead can make the dispatcher
			// bounce between ASCII and EDIFACT forever.
			return fmt.Errorf("%w: 0x%02x", ErrIllegalEDIFACTCharacter, c)
		}
		g.push(c)

		if g.n == 4 {
			writeEDIFACT(ctx, &g)
			g.reset()
			if ctx.MaybeSwitchMode() {
				break
			}
		}
	}
	return handleEDIFACTEnd(ctx, &g)
}

func handleEDIFACTEnd(ctx Context, g *edifactGroup) error {
	// With at most two codewords left in the symbol, the rest of the message
	// may be written in ASCII without an unlatch.
	restChars := g.n + ctx.CharactersLeft()
	if restChars > 0 && restChars <= 4 {
		var tail [4]byte
		n := copy(tail[:], g.values[:g.n])
		n += copy(tail[n:], ctx.Rest())
		asciiSize := asciiEncodingSize(tail[:n])
		if asciiSize <= 2 {
			if left, ok := ctx.RemainingSymbolSpace(asciiSize); ok {
				space := left + asciiSize
				if space <= 2 && asciiSize <= space {
					ctx.Backup(g.n)
					ctx.SetMode(ModeASCII)
					return nil
				}
			}
		}
	}

	if g.n == 0 {
		if ctx.HasMoreCharacters() {
			// The caller switches the mode.
			ctx.WriteCodeword(edifactUnlatch << 2)
			return nil
		}
		left, ok := ctx.RemainingSymbolSpace(0)
		if !ok {
			return ErrNotEnoughSpace
		}
		if left > 0 {
			ctx.WriteCodeword(edifactUnlatch << 2)
			ctx.SetMode(ModeASCII)
		}
		return nil
	}

	left, ok := ctx.RemainingSymbolSpace(g.n)
	if !ok {
		return ErrNotEnoughSpace
	}
	// Three values take three codewords with or without the unlatch.
	if left > 0 || g.n == 3 {
		g.push(edifactUnlatch)
		ctx.SetMode(ModeASCII)
	}
	writeEDIFACT(ctx, g)
	return nil
}
