package core

// Descriptor is the decode state of one metafile parse session. It holds
// the values declared by earlier descriptor and control elements that
// govern how later parameters are decoded: the width of integers, whether
// VDC values are integers or reals, whether colours are indexed or direct,
// and so on.
//
// A Descriptor is owned by exactly one reader. Only the decode functions of
// descriptor-setting elements write to it; every other decode function only
// reads it. Concurrent parses must use separate Descriptors.
type Descriptor struct {
	VdcType VdcType

	// Bit widths used by the binary encoding. The clear text encoding
	// declares ranges instead, which are converted to the same widths.
	IntegerPrecision    int
	IndexPrecision      int
	ColorPrecision      int
	ColorIndexPrecision int
	NamePrecision       int

	RealPrecision       RealPrecision
	VdcIntegerPrecision int
	VdcRealPrecision    RealPrecision

	ColorSelectionMode ColorSelectionMode
	ColorModel         ColorModel

	LineWidthSpecificationMode     SpecificationMode
	MarkerSizeSpecificationMode    SpecificationMode
	EdgeWidthSpecificationMode     SpecificationMode
	InteriorStyleSpecificationMode SpecificationMode

	DeviceViewportSpecificationMode DeviceViewportSpecificationMode
}

// NewDescriptor returns a Descriptor initialized to the defaults of
// ISO/IEC 8632-1 and the binary encoding defaults of ISO/IEC 8632-3.
func NewDescriptor() *Descriptor {
	d := &Descriptor{}
	d.Reset()
	return d
}

// Reset restores all fields to their defaults
func (d *Descriptor) Reset() {
	*d = Descriptor{
		VdcType:             VdcInteger,
		IntegerPrecision:    16,
		IndexPrecision:      16,
		ColorPrecision:      8,
		ColorIndexPrecision: 8,
		NamePrecision:       16,
		RealPrecision:       Fixed32Precision,
		VdcIntegerPrecision: 16,
		VdcRealPrecision:    Fixed32Precision,

		ColorSelectionMode: ColorIndexed,
		ColorModel:         ColorModelRGB,

		LineWidthSpecificationMode:     Absolute,
		MarkerSizeSpecificationMode:    Absolute,
		EdgeWidthSpecificationMode:     Absolute,
		InteriorStyleSpecificationMode: Absolute,

		DeviceViewportSpecificationMode: FractionOfDrawingSurface,
	}
}

// SizeIsVdc reports whether a size specification parameter governed by
// mode resolves to VDC. Otherwise it resolves to a real.
func SizeIsVdc(mode SpecificationMode) bool {
	return mode == Absolute
}

// ViewportIsInteger reports whether viewport coordinates are integers in
// the current mode, and false if they are reals. It returns an
// UnsupportedConfigurationError for unknown modes.
func (d *Descriptor) ViewportIsInteger() (bool, error) {
	switch d.DeviceViewportSpecificationMode {
	case MillimetresWithScaleFactor, PhysicalDeviceCoordinates:
		return true, nil
	case FractionOfDrawingSurface:
		return false, nil
	default:
		return false, &UnsupportedConfigurationError{Setting: "DEVICE VIEWPORT SPECIFICATION MODE", Value: d.DeviceViewportSpecificationMode}
	}
}

// CheckVdcType returns an UnsupportedConfigurationError if the VDC type is
// neither integer nor real.
func (d *Descriptor) CheckVdcType() error {
	if d.VdcType != VdcInteger && d.VdcType != VdcReal {
		return &UnsupportedConfigurationError{Setting: "VDC TYPE", Value: d.VdcType}
	}
	return nil
}
