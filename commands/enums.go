package commands

// ScalingModeType is the SCALING MODE of a picture
type ScalingModeType int

const (
	ScalingAbstract ScalingModeType = iota
	ScalingMetric
)

func (t ScalingModeType) String() string { return enumName([]string{"Abstract", "Metric"}, int(t)) }

// OnOff is the value of OFF/ON indicators (transparency, clip, edge visibility)
type OnOff int

const (
	Off OnOff = iota
	On
)

func (t OnOff) String() string { return enumName([]string{"Off", "On"}, int(t)) }

// ClippingMode applies to lines, markers and edges
type ClippingMode int

const (
	ClipLocus ClippingMode = iota
	ClipShape
	ClipLocusThenShape
)

func (t ClippingMode) String() string {
	return enumName([]string{"Locus", "Shape", "LocusThenShape"}, int(t))
}

// RegionIndicator is the PROTECTION REGION INDICATOR value (1-based)
type RegionIndicator int

const (
	RegionOff    RegionIndicator = 1
	RegionClip   RegionIndicator = 2
	RegionShield RegionIndicator = 3
)

func (t RegionIndicator) String() string {
	return enumName([]string{"", "Off", "Clip", "Shield"}, int(t))
}

// TextPathMode is the GENERALIZED TEXT PATH MODE
type TextPathMode int

const (
	TextPathModeOff TextPathMode = iota
	TextPathModeNonAxis
	TextPathModeAxis
)

func (t TextPathMode) String() string { return enumName([]string{"Off", "NonAxis", "Axis"}, int(t)) }

// ArcClosureType closes circular and elliptical arcs
type ArcClosureType int

const (
	ClosurePie ArcClosureType = iota
	ClosureChord
)

func (t ArcClosureType) String() string { return enumName([]string{"Pie", "Chord"}, int(t)) }

// EdgeOutFlag marks a POLYGON SET vertex
type EdgeOutFlag int

const (
	EdgeInvisible EdgeOutFlag = iota
	EdgeVisible
	EdgeCloseInvisible
	EdgeCloseVisible
)

func (t EdgeOutFlag) String() string {
	return enumName([]string{"Invisible", "Visible", "CloseInvisible", "CloseVisible"}, int(t))
}

// CharacterSetType classifies a CHARACTER SET LIST entry
type CharacterSetType int

const (
	GSet94Characters CharacterSetType = iota
	GSet96Characters
	GSet94CharactersMultibyte
	GSet96CharactersMultibyte
	CompleteCode
)

func (t CharacterSetType) String() string {
	return enumName([]string{"94-Character G-Set", "96-Character G-Set", "94-Character Multibyte G-Set", "96-Character Multibyte G-Set", "Complete Code"}, int(t))
}

// CharacterCodingAnnouncerType is the CHARACTER CODING ANNOUNCER value
type CharacterCodingAnnouncerType int

const (
	Basic7Bit CharacterCodingAnnouncerType = iota
	Basic8Bit
	Extended7Bit
	Extended8Bit
)

func (t CharacterCodingAnnouncerType) String() string {
	return enumName([]string{"Basic 7-bit", "Basic 8-bit", "Extended 7-bit", "Extended 8-bit"}, int(t))
}

// InheritanceFlag of BEGIN APPLICATION STRUCTURE
type InheritanceFlag int

const (
	InheritStateList InheritanceFlag = iota
	InheritApplicationStructure
)

func (t InheritanceFlag) String() string {
	return enumName([]string{"StateList", "ApplicationStructure"}, int(t))
}

// MessageAction tells whether a MESSAGE requires operator action
type MessageAction int

const (
	NoAction MessageAction = iota
	ActionRequired
)

func (t MessageAction) String() string { return enumName([]string{"NoAction", "Action"}, int(t)) }

// TextPrecisionType is the TEXT PRECISION value
type TextPrecisionType int

const (
	PrecisionString TextPrecisionType = iota
	PrecisionCharacter
	PrecisionStroke
)

func (t TextPrecisionType) String() string {
	return enumName([]string{"String", "Character", "Stroke"}, int(t))
}

// TextPathType is the TEXT PATH value
type TextPathType int

const (
	PathRight TextPathType = iota
	PathLeft
	PathUp
	PathDown
)

func (t TextPathType) String() string { return enumName([]string{"Right", "Left", "Up", "Down"}, int(t)) }

// HorizontalAlignment of TEXT ALIGNMENT
type HorizontalAlignment int

const (
	HorizontalNormal HorizontalAlignment = iota
	HorizontalLeft
	HorizontalCenter
	HorizontalRight
	HorizontalContinuous
)

func (t HorizontalAlignment) String() string {
	return enumName([]string{"Normal", "Left", "Center", "Right", "Continuous"}, int(t))
}

// VerticalAlignment of TEXT ALIGNMENT
type VerticalAlignment int

const (
	VerticalNormal VerticalAlignment = iota
	VerticalTop
	VerticalCap
	VerticalHalf
	VerticalBase
	VerticalBottom
	VerticalContinuous
)

func (t VerticalAlignment) String() string {
	return enumName([]string{"Normal", "Top", "Cap", "Half", "Base", "Bottom", "Continuous"}, int(t))
}

// InteriorStyleType is the INTERIOR STYLE value
type InteriorStyleType int

const (
	StyleHollow InteriorStyleType = iota
	StyleSolid
	StylePattern
	StyleHatch
	StyleEmpty
	StyleGeometricPattern
	StyleInterpolated
)

func (t InteriorStyleType) String() string {
	return enumName([]string{"Hollow", "Solid", "Pattern", "Hatch", "Empty", "GeometricPattern", "Interpolated"}, int(t))
}

// Isotropy of DEVICE VIEWPORT MAPPING
type Isotropy int

const (
	IsotropyNotForced Isotropy = iota
	IsotropyForced
)

func (t Isotropy) String() string { return enumName([]string{"NotForced", "Forced"}, int(t)) }

// HorizontalPlacement of DEVICE VIEWPORT MAPPING
type HorizontalPlacement int

const (
	PlaceLeft HorizontalPlacement = iota
	PlaceHorizontalCenter
	PlaceRight
)

func (t HorizontalPlacement) String() string {
	return enumName([]string{"Left", "Center", "Right"}, int(t))
}

// VerticalPlacement of DEVICE VIEWPORT MAPPING
type VerticalPlacement int

const (
	PlaceBottom VerticalPlacement = iota
	PlaceVerticalCenter
	PlaceTop
)

func (t VerticalPlacement) String() string {
	return enumName([]string{"Bottom", "Center", "Top"}, int(t))
}

// HatchStyleIndicator of HATCH STYLE DEFINITION
type HatchStyleIndicator int

const (
	HatchParallel HatchStyleIndicator = iota
	HatchCrossHatch
)

func (t HatchStyleIndicator) String() string {
	return enumName([]string{"Parallel", "CrossHatch"}, int(t))
}

// ColorSpace is the colour family of a COLOUR VALUE EXTENT
type ColorSpace int

const (
	ColorSpaceUnknown ColorSpace = iota
	ColorSpaceRGB
	ColorSpaceCMYK
	ColorSpaceCIE
)

func (t ColorSpace) String() string {
	return enumName([]string{"Unknown", "RGB", "CMYK", "CIE"}, int(t))
}
