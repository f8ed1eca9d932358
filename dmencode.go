// Package dmencode turns text into Data Matrix (ECC-200) data codewords:
// high-level encodation in ASCII, EDIFACT and C40, symbol size selection
// and padding.
package dmencode

import (
	"fmt"

	"github.com/ericlevine/dmencode/charset"
	"github.com/ericlevine/dmencode/datamatrix/encoder"
)

// Result is an encoded message ready for error correction.
type Result struct {
	// Codewords holds the data codewords padded to the symbol capacity.
	Codewords []byte
	// DataLength is the number of codewords before padding.
	DataLength int
	// Symbol is the smallest symbol satisfying the options.
	Symbol *encoder.SymbolInfo
}

// Encode converts contents to the configured character set and encodes it.
func Encode(contents string, opts *EncodeOptions) (*Result, error) {
	if contents == "" {
		return nil, ErrEmptyContents
	}

	eci := charset.ECIISO8859_1
	if opts != nil && opts.CharacterSet != "" {
		var err error
		if eci, err = charset.GetECIByName(opts.CharacterSet); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriter, err)
		}
	}
	data, err := eci.Encode(contents)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriter, err)
	}

	encOpts := opts.encoderOptions()
	if eci != charset.ECIISO8859_1 {
		encOpts.ECI = eci
	}
	return encode(data, encOpts)
}

// EncodeBytes encodes data as-is, without character set conversion or ECI.
func EncodeBytes(data []byte, opts *EncodeOptions) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyContents
	}
	return encode(data, opts.encoderOptions())
}

func encode(data []byte, opts *encoder.Options) (*Result, error) {
	encoded, err := encoder.EncodeHighLevel(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriter, err)
	}
	symbol, err := encoder.Lookup(len(encoded), opts.Shape, opts.MinSize, opts.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriter, err)
	}
	return &Result{
		Codewords:  encoder.PadCodewords(encoded, symbol.DataCapacity),
		DataLength: len(encoded),
		Symbol:     symbol,
	}, nil
}
