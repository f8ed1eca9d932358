package dmencode

import (
	"github.com/sirupsen/logrus"

	"github.com/ericlevine/dmencode/datamatrix/encoder"
)

// EncodeOptions configures Data Matrix encoding behavior.
type EncodeOptions struct {
	// Shape restricts the symbol to square or rectangular sizes.
	Shape encoder.SymbolShapeHint

	// MinSize and MaxSize bound the symbol dimensions in modules.
	MinSize, MaxSize *encoder.Dimension

	// CharacterSet names the character set contents are converted to.
	// Empty means ISO-8859-1; any other set is announced with an ECI.
	CharacterSet string

	// ForceEDIFACT encodes every run of EDIFACT characters (32..94) long
	// enough for a group in EDIFACT, regardless of cost.
	ForceEDIFACT bool

	// Logger receives encoder traces. Nil discards them.
	Logger logrus.FieldLogger
}

func (o *EncodeOptions) encoderOptions() *encoder.Options {
	if o == nil {
		return &encoder.Options{}
	}
	return &encoder.Options{
		Shape:        o.Shape,
		MinSize:      o.MinSize,
		MaxSize:      o.MaxSize,
		ForceEDIFACT: o.ForceEDIFACT,
		Logger:       o.Logger,
	}
}
