// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"errors"
	"fmt"
)

// SymbolShapeHint controls whether the encoder prefers square or rectangular symbols.
type SymbolShapeHint int

const (
	// ShapeHintForceNone allows either square or rectangular symbols.
	ShapeHintForceNone SymbolShapeHint = iota
	// ShapeHintForceSquare forces the encoder to choose a square symbol.
	ShapeHintForceSquare
	// ShapeHintForceRectangle forces the encoder to choose a rectangular symbol.
	ShapeHintForceRectangle
)

// Dimension is a symbol size in modules.
type Dimension struct {
	Width, Height int
}

// SymbolInfo describes a single Data Matrix ECC-200 symbol size.
type SymbolInfo struct {
	Rectangular    bool
	DataCapacity   int // number of data codewords
	ErrorCodewords int // total number of EC codewords
	MatrixWidth    int // symbol width in modules (including finder patterns)
	MatrixHeight   int // symbol height in modules (including finder patterns)
}

// TotalCodewords returns data + error correction codewords.
func (si *SymbolInfo) TotalCodewords() int {
	return si.DataCapacity + si.ErrorCodewords
}

// String returns the symbol size as "WxH".
func (si *SymbolInfo) String() string {
	return fmt.Sprintf("%dx%d", si.MatrixWidth, si.MatrixHeight)
}

// symbols is the full list of ECC-200 symbol sizes ordered by data capacity.
// Derived from ISO/IEC 16022 Table 7.
var symbols = []SymbolInfo{
	// {Rectangular, DataCapacity, ErrorCodewords, MatrixWidth, MatrixHeight}
	{false, 3, 5, 10, 10},
	{false, 5, 7, 12, 12},
	{true, 5, 7, 18, 8},
	{false, 8, 10, 14, 14},
	{true, 10, 11, 32, 8},
	{false, 12, 12, 16, 16},
	{true, 16, 14, 26, 12},
	{false, 18, 14, 18, 18},
	{false, 22, 18, 20, 20},
	{true, 22, 18, 36, 12},
	{false, 30, 20, 22, 22},
	{true, 32, 24, 36, 16},
	{false, 36, 24, 24, 24},
	{false, 44, 28, 26, 26},
	{true, 49, 28, 48, 16},
	{false, 62, 36, 32, 32},
	{false, 86, 42, 36, 36},
	{false, 114, 48, 40, 40},
	{false, 144, 56, 44, 44},
	{false, 174, 68, 48, 48},
	{false, 204, 84, 52, 52},
	{false, 280, 112, 64, 64},
	{false, 368, 144, 72, 72},
	{false, 456, 192, 80, 80},
	{false, 576, 224, 88, 88},
	{false, 696, 272, 96, 96},
	{false, 816, 336, 104, 104},
	{false, 1050, 408, 120, 120},
	{false, 1304, 496, 132, 132},
	{false, 1558, 620, 144, 144},
}

// Lookup finds the smallest symbol that can hold the given number of data codewords.
// shapeHint restricts the search to square or rectangular symbols; minSize and
// maxSize, when non-nil, bound the symbol dimensions.
func Lookup(dataCodewords int, shapeHint SymbolShapeHint, minSize, maxSize *Dimension) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if shapeHint == ShapeHintForceSquare && si.Rectangular {
			continue
		}
		if shapeHint == ShapeHintForceRectangle && !si.Rectangular {
			continue
		}
		if minSize != nil && (si.MatrixWidth < minSize.Width || si.MatrixHeight < minSize.Height) {
			continue
		}
		if maxSize != nil && (si.MatrixWidth > maxSize.Width || si.MatrixHeight > maxSize.Height) {
			continue
		}
		if si.DataCapacity >= dataCodewords {
			return si, nil
		}
	}
	return nil, fmt.Errorf("%w: no symbol found for %d data codewords", ErrNotEnoughSpace, dataCodewords)
}

// LookupBySize returns the SymbolInfo for a specific symbol matrix size.
func LookupBySize(matrixWidth, matrixHeight int) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if si.MatrixWidth == matrixWidth && si.MatrixHeight == matrixHeight {
			return si, nil
		}
	}
	return nil, errors.New("datamatrix/encoder: no symbol found for the given size")
}
