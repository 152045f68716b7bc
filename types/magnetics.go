package types

// ConductorType classifies the wire used for one winding.
type ConductorType uint8

const (
	ConductorUnset ConductorType = iota
	RectangularSolid
	RoundSolid
	RoundLitz
)

var ConductorTypeNameMap = map[string]ConductorType{
	"rectangularsolid": RectangularSolid,
	"roundsolid":       RoundSolid,
	"roundlitz":        RoundLitz,
	"litz":             RoundLitz,
	"solid":            RoundSolid,
}

func (ct ConductorType) String() string {
	switch ct {
	case RectangularSolid:
		return "RectangularSolid"
	case RoundSolid:
		return "RoundSolid"
	case RoundLitz:
		return "RoundLitz"
	default:
		return "Unset"
	}
}

// ConductorArrangement describes how round conductors are packed inside a
// virtual winding window. It is carried here for the winding placement stage.
type ConductorArrangement uint8

const (
	ArrangementUnset ConductorArrangement = iota
	Square
	SquareFullWidth
	Hexagonal
)

var ConductorArrangementNameMap = map[string]ConductorArrangement{
	"square":          Square,
	"squarefullwidth": SquareFullWidth,
	"hexagonal":       Hexagonal,
}

func (ca ConductorArrangement) String() string {
	switch ca {
	case Square:
		return "Square"
	case SquareFullWidth:
		return "SquareFullWidth"
	case Hexagonal:
		return "Hexagonal"
	default:
		return "Unset"
	}
}

// WrapParaType selects how a vertical foil winding fills its window.
type WrapParaType uint8

const (
	WrapParaUnset WrapParaType = iota
	FixedThickness
	Interpolate
)

var WrapParaTypeNameMap = map[string]WrapParaType{
	"fixedthickness": FixedThickness,
	"interpolate":    Interpolate,
}

func (wp WrapParaType) String() string {
	switch wp {
	case FixedThickness:
		return "FixedThickness"
	case Interpolate:
		return "Interpolate"
	default:
		return "Unset"
	}
}

// WindingType distinguishes a single winding from two interleaved windings
// sharing one virtual winding window.
type WindingType uint8

const (
	WindingUnset WindingType = iota
	Single
	Interleaved
)

func (wt WindingType) String() string {
	switch wt {
	case Single:
		return "Single"
	case Interleaved:
		return "Interleaved"
	default:
		return "Unset"
	}
}

// WindingScheme is the placement scheme for a single winding.
type WindingScheme uint8

const (
	SchemeUnset WindingScheme = iota
	Full
	SquareScheme
	FoilHorizontal
	FoilVertical
)

var WindingSchemeNameMap = map[string]WindingScheme{
	"full":           Full,
	"square":         SquareScheme,
	"foilhorizontal": FoilHorizontal,
	"foilvertical":   FoilVertical,
}

func (ws WindingScheme) String() string {
	switch ws {
	case Full:
		return "Full"
	case SquareScheme:
		return "Square"
	case FoilHorizontal:
		return "FoilHorizontal"
	case FoilVertical:
		return "FoilVertical"
	default:
		return "Unset"
	}
}

// InterleavedWindingScheme is the placement scheme for two interleaved
// windings.
type InterleavedWindingScheme uint8

const (
	InterleavedUnset InterleavedWindingScheme = iota
	Bifilar
	VerticalAlternating
	HorizontalAlternating
	VerticalStacked
)

var InterleavedWindingSchemeNameMap = map[string]InterleavedWindingScheme{
	"bifilar":               Bifilar,
	"verticalalternating":   VerticalAlternating,
	"horizontalalternating": HorizontalAlternating,
	"verticalstacked":       VerticalStacked,
}

func (is InterleavedWindingScheme) String() string {
	switch is {
	case Bifilar:
		return "Bifilar"
	case VerticalAlternating:
		return "VerticalAlternating"
	case HorizontalAlternating:
		return "HorizontalAlternating"
	case VerticalStacked:
		return "VerticalStacked"
	default:
		return "Unset"
	}
}

// WindingWindowSplit selects how the winding window is partitioned into
// virtual winding windows.
type WindingWindowSplit uint8

const (
	NoSplit WindingWindowSplit = iota
	HorizontalSplit
	VerticalSplit
	HorizontalAndVerticalSplit
)

var WindingWindowSplitNameMap = map[string]WindingWindowSplit{
	"nosplit":                    NoSplit,
	"horizontalsplit":            HorizontalSplit,
	"verticalsplit":              VerticalSplit,
	"horizontalandverticalsplit": HorizontalAndVerticalSplit,
}

func (ws WindingWindowSplit) String() string {
	switch ws {
	case NoSplit:
		return "NoSplit"
	case HorizontalSplit:
		return "HorizontalSplit"
	case VerticalSplit:
		return "VerticalSplit"
	case HorizontalAndVerticalSplit:
		return "HorizontalAndVerticalSplit"
	default:
		return "Unknown"
	}
}

// AirGapMethod selects how air gap positions are specified.
type AirGapMethod uint8

const (
	Center AirGapMethod = iota
	Percent
	Manually
)

var AirGapMethodNameMap = map[string]AirGapMethod{
	"center":   Center,
	"percent":  Percent,
	"manually": Manually,
}

func (am AirGapMethod) String() string {
	switch am {
	case Center:
		return "Center"
	case Percent:
		return "Percent"
	case Manually:
		return "Manually"
	default:
		return "Unknown"
	}
}

// AirGapLegPosition is the core leg an air gap is cut into. The numeric
// values are the position tags stored in the air gap midpoint list.
type AirGapLegPosition int8

const (
	LeftLeg   AirGapLegPosition = -1
	CenterLeg AirGapLegPosition = 0
	RightLeg  AirGapLegPosition = 1
)

var AirGapLegPositionNameMap = map[string]AirGapLegPosition{
	"leftleg":   LeftLeg,
	"centerleg": CenterLeg,
	"rightleg":  RightLeg,
}

func (lp AirGapLegPosition) String() string {
	switch lp {
	case LeftLeg:
		return "LeftLeg"
	case CenterLeg:
		return "CenterLeg"
	case RightLeg:
		return "RightLeg"
	default:
		return "Unknown"
	}
}

// LossApproach selects the core loss model handed to the solver stage.
type LossApproach uint8

const (
	LossAngle LossApproach = iota
	Steinmetz
)

var LossApproachNameMap = map[string]LossApproach{
	"lossangle": LossAngle,
	"steinmetz": Steinmetz,
}

func (la LossApproach) String() string {
	switch la {
	case LossAngle:
		return "LossAngle"
	case Steinmetz:
		return "Steinmetz"
	default:
		return "Unknown"
	}
}

// PermeabilityType selects the representation of the core permeability.
type PermeabilityType uint8

const (
	RealValue PermeabilityType = iota
	FixedLossAngle
	FromData
)

func (pt PermeabilityType) String() string {
	switch pt {
	case RealValue:
		return "RealValue"
	case FixedLossAngle:
		return "FixedLossAngle"
	case FromData:
		return "FromData"
	default:
		return "Unknown"
	}
}

// Conductivity names a winding wire material in the wire material database.
type Conductivity uint8

const (
	Copper Conductivity = iota
	Aluminium
)

var ConductivityNameMap = map[string]Conductivity{
	"copper":    Copper,
	"aluminium": Aluminium,
	"aluminum":  Aluminium,
}

func (c Conductivity) String() string {
	switch c {
	case Copper:
		return "Copper"
	case Aluminium:
		return "Aluminium"
	default:
		return "Unknown"
	}
}
