package textencoding

import (
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Enumeration keywords of ISO/IEC 8632-4. Unknown keywords decode to the
// first value of each enumeration.

var onOffKeywords = map[string]commands.OnOff{
	"OFF": commands.Off,
	"ON":  commands.On,
}

var vdcTypeKeywords = map[string]core.VdcType{
	"INTEGER": core.VdcInteger,
	"REAL":    core.VdcReal,
}

var characterSetKeywords = map[string]commands.CharacterSetType{
	"STD94":          commands.GSet94Characters,
	"STD96":          commands.GSet96Characters,
	"STD94MULTIBYTE": commands.GSet94CharactersMultibyte,
	"STD96MULTIBYTE": commands.GSet96CharactersMultibyte,
	"COMPLETECODE":   commands.CompleteCode,
}

var characterCodingKeywords = map[string]commands.CharacterCodingAnnouncerType{
	"BASIC7BIT": commands.Basic7Bit,
	"BASIC8BIT": commands.Basic8Bit,
	"EXTD7BIT":  commands.Extended7Bit,
	"EXTD8BIT":  commands.Extended8Bit,
}

var inheritanceKeywords = map[string]commands.InheritanceFlag{
	"STLIST": commands.InheritStateList,
	"APS":    commands.InheritApplicationStructure,
}

var scalingModeKeywords = map[string]commands.ScalingModeType{
	"ABSTRACT": commands.ScalingAbstract,
	"METRIC":   commands.ScalingMetric,
}

var colorSelectionKeywords = map[string]core.ColorSelectionMode{
	"INDEXED": core.ColorIndexed,
	"DIRECT":  core.ColorDirect,
}

var specificationModeKeywords = map[string]core.SpecificationMode{
	"ABS":        core.Absolute,
	"ABSTRACT":   core.Absolute,
	"SCALED":     core.Scaled,
	"FRACTIONAL": core.Fractional,
	"MM":         core.Millimetres,
}

var viewportModeKeywords = map[string]core.DeviceViewportSpecificationMode{
	"FRACTION":    core.FractionOfDrawingSurface,
	"MM":          core.MillimetresWithScaleFactor,
	"PHYDEVCOORD": core.PhysicalDeviceCoordinates,
}

var isotropyKeywords = map[string]commands.Isotropy{
	"NOTFORCED": commands.IsotropyNotForced,
	"FORCED":    commands.IsotropyForced,
}

var horizontalPlacementKeywords = map[string]commands.HorizontalPlacement{
	"LEFT":  commands.PlaceLeft,
	"CTR":   commands.PlaceHorizontalCenter,
	"RIGHT": commands.PlaceRight,
}

var verticalPlacementKeywords = map[string]commands.VerticalPlacement{
	"BOTTOM": commands.PlaceBottom,
	"CTR":    commands.PlaceVerticalCenter,
	"TOP":    commands.PlaceTop,
}

var hatchStyleKeywords = map[string]commands.HatchStyleIndicator{
	"PARALLEL":   commands.HatchParallel,
	"CROSSHATCH": commands.HatchCrossHatch,
}

var clippingModeKeywords = map[string]commands.ClippingMode{
	"LOCUS":          commands.ClipLocus,
	"SHAPE":          commands.ClipShape,
	"LOCUSTHENSHAPE": commands.ClipLocusThenShape,
}

var regionIndicatorKeywords = map[string]commands.RegionIndicator{
	"OFF":    commands.RegionOff,
	"CLIP":   commands.RegionClip,
	"SHIELD": commands.RegionShield,
}

var textPathModeKeywords = map[string]commands.TextPathMode{
	"OFF":     commands.TextPathModeOff,
	"NONAXIS": commands.TextPathModeNonAxis,
	"AXIS":    commands.TextPathModeAxis,
}

var closureKeywords = map[string]commands.ArcClosureType{
	"PIE":   commands.ClosurePie,
	"CHORD": commands.ClosureChord,
}

var edgeOutKeywords = map[string]commands.EdgeOutFlag{
	"INVIS":      commands.EdgeInvisible,
	"VIS":        commands.EdgeVisible,
	"CLOSEINVIS": commands.EdgeCloseInvisible,
	"CLOSEVIS":   commands.EdgeCloseVisible,
}

var textPrecisionKeywords = map[string]commands.TextPrecisionType{
	"STRING": commands.PrecisionString,
	"CHAR":   commands.PrecisionCharacter,
	"STROKE": commands.PrecisionStroke,
}

var textPathKeywords = map[string]commands.TextPathType{
	"RIGHT": commands.PathRight,
	"LEFT":  commands.PathLeft,
	"UP":    commands.PathUp,
	"DOWN":  commands.PathDown,
}

var horizontalAlignmentKeywords = map[string]commands.HorizontalAlignment{
	"NORMHORIZ": commands.HorizontalNormal,
	"LEFT":      commands.HorizontalLeft,
	"CTR":       commands.HorizontalCenter,
	"RIGHT":     commands.HorizontalRight,
	"CONTHORIZ": commands.HorizontalContinuous,
}

var verticalAlignmentKeywords = map[string]commands.VerticalAlignment{
	"NORMVERT": commands.VerticalNormal,
	"TOP":      commands.VerticalTop,
	"CAP":      commands.VerticalCap,
	"HALF":     commands.VerticalHalf,
	"BASE":     commands.VerticalBase,
	"BOTTOM":   commands.VerticalBottom,
	"CONTVERT": commands.VerticalContinuous,
}

var interiorStyleKeywords = map[string]commands.InteriorStyleType{
	"HOLLOW": commands.StyleHollow,
	"SOLID":  commands.StyleSolid,
	"PAT":    commands.StylePattern,
	"HATCH":  commands.StyleHatch,
	"EMPTY":  commands.StyleEmpty,
	"GEOPAT": commands.StyleGeometricPattern,
	"INTERP": commands.StyleInterpolated,
}

var messageActionKeywords = map[string]commands.MessageAction{
	"NOACTION": commands.NoAction,
	"ACTION":   commands.ActionRequired,
}
