package encoder

import "errors"

var (
	// ErrEmptyMessage is returned when there is nothing to encode.
	ErrEmptyMessage = errors.New("datamatrix/encoder: empty message")

	// ErrIllegalEDIFACTCharacter is returned when the EDIFACT encodation meets
	// a character outside 32..94.
	ErrIllegalEDIFACTCharacter = errors.New("datamatrix/encoder: illegal character for EDIFACT encodation")

	// ErrNotEnoughSpace is returned when no symbol can hold the codewords
	// produced so far.
	ErrNotEnoughSpace = errors.New("datamatrix/encoder: not enough space in symbol")

	// ErrECIValue is returned for ECI designators outside 0..999999.
	ErrECIValue = errors.New("datamatrix/encoder: ECI value out of range")
)
