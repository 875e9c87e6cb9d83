package textencoding

import (
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Control elements (ISO/IEC 8632-4 7.4)

func readVdcIntegerPrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readSignedRange()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("VdcIntegerPrecision", bits, func(d *core.Descriptor) { d.VdcIntegerPrecision = bits })
	return &commands.VdcIntegerPrecision{Precision: bits}, nil
}

func readVdcRealPrecision(r *Reader) (commands.Command, error) {
	p, err := r.readRealSpecification()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("VdcRealPrecision", p, func(d *core.Descriptor) { d.VdcRealPrecision = p })
	return &commands.VdcRealPrecision{Specification: p}, nil
}

func readAuxiliaryColor(r *Reader) (commands.Command, error) {
	c, err := r.readColor()
	if err != nil {
		return nil, err
	}
	return &commands.AuxiliaryColor{Color: c}, nil
}

func readTransparency(r *Reader) (commands.Command, error) {
	v, err := readEnumValue(r, onOffKeywords, commands.Off)
	if err != nil {
		return nil, err
	}
	return &commands.Transparency{Indicator: v}, nil
}

func readClipRectangle(r *Reader) (commands.Command, error) {
	first, second, err := r.readTwoPoints()
	if err != nil {
		return nil, err
	}
	return &commands.ClipRectangle{FirstCorner: first, SecondCorner: second}, nil
}

func readClipIndicator(r *Reader) (commands.Command, error) {
	v, err := readEnumValue(r, onOffKeywords, commands.Off)
	if err != nil {
		return nil, err
	}
	return &commands.ClipIndicator{Indicator: v}, nil
}

func readLineClippingMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, clippingModeKeywords, commands.ClipLocus)
	if err != nil {
		return nil, err
	}
	return &commands.LineClippingMode{Mode: mode}, nil
}

func readMarkerClippingMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, clippingModeKeywords, commands.ClipLocus)
	if err != nil {
		return nil, err
	}
	return &commands.MarkerClippingMode{Mode: mode}, nil
}

func readEdgeClippingMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, clippingModeKeywords, commands.ClipLocus)
	if err != nil {
		return nil, err
	}
	return &commands.EdgeClippingMode{Mode: mode}, nil
}

func readSavePrimitiveContext(r *Reader) (commands.Command, error) {
	name, err := r.readName()
	if err != nil {
		return nil, err
	}
	return &commands.SavePrimitiveContext{ContextName: name}, nil
}

func readRestorePrimitiveContext(r *Reader) (commands.Command, error) {
	name, err := r.readName()
	if err != nil {
		return nil, err
	}
	return &commands.RestorePrimitiveContext{ContextName: name}, nil
}

func readProtectionRegionIndicator(r *Reader) (commands.Command, error) {
	index, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	indicator, err := readEnumValue(r, regionIndicatorKeywords, commands.RegionOff)
	if err != nil {
		return nil, err
	}
	return &commands.ProtectionRegionIndicator{Index: index, Indicator: indicator}, nil
}

func readGeneralizedTextPathMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, textPathModeKeywords, commands.TextPathModeOff)
	if err != nil {
		return nil, err
	}
	return &commands.GeneralizedTextPathMode{Mode: mode}, nil
}

func readMiterLimit(r *Reader) (commands.Command, error) {
	limit, err := r.readReal()
	if err != nil {
		return nil, err
	}
	return &commands.MiterLimit{Limit: limit}, nil
}
