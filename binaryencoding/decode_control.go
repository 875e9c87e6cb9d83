package binaryencoding

import (
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Control elements (ISO/IEC 8632-3 8.5)

func readVdcIntegerPrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readPrecision("VDC INTEGER PRECISION", integerWidths)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("VdcIntegerPrecision", bits, func(d *core.Descriptor) { d.VdcIntegerPrecision = bits })
	return &commands.VdcIntegerPrecision{Precision: bits}, nil
}

func readVdcRealPrecision(r *Reader) (commands.Command, error) {
	p, err := r.readRealSpecification("VDC REAL PRECISION")
	if err != nil {
		return nil, err
	}
	r.setDescriptor("VdcRealPrecision", p, func(d *core.Descriptor) { d.VdcRealPrecision = p })
	return &commands.VdcRealPrecision{Specification: p}, nil
}

func readClipRectangle(r *Reader) (commands.Command, error) {
	first, second, err := r.readTwoPoints()
	if err != nil {
		return nil, err
	}
	return &commands.ClipRectangle{FirstCorner: first, SecondCorner: second}, nil
}

func readProtectionRegionIndicator(r *Reader) (commands.Command, error) {
	index, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	indicator, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	return &commands.ProtectionRegionIndicator{Index: index, Indicator: commands.RegionIndicator(indicator)}, nil
}

// enumParam returns a decoder for elements with one enumeration parameter.
// Values outside the enumeration are kept as they are.
func enumParam[T ~int](build func(T) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		v, err := r.readEnum()
		if err != nil {
			return nil, err
		}
		return build(T(v)), nil
	}
}

// nameParam returns a decoder for elements with one name parameter
func nameParam(build func(int) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		v, err := r.readName()
		if err != nil {
			return nil, err
		}
		return build(v), nil
	}
}
