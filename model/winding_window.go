package model

import (
	"fmt"
	"math"

	"github.com/tapegoji/FEM-Magnetics-Toolbox/types"
)

// StrayPath describes the stray leg of an integrated transformer. StartIndex
// refers to the air gap midpoint list, sorted bottom up; the tablet spans
// from the axis over the given length.
type StrayPath struct {
	StartIndex int
	Length     float64
}

// VirtualWindingWindow is a sub-rectangle of the winding window holding
// either one winding or two interleaved windings under one scheme.
type VirtualWindingWindow struct {
	BotBound   float64
	TopBound   float64
	LeftBound  float64
	RightBound float64

	WindingType       types.WindingType
	WindingScheme     types.WindingScheme
	InterleavedScheme types.InterleavedWindingScheme
	WrapPara          types.WrapParaType

	Windings []*Conductor
	Turns    []int

	WindingIsSet      bool
	WindingInsulation float64
}

func NewVirtualWindingWindow(botBound, topBound, leftBound, rightBound float64) *VirtualWindingWindow {
	return &VirtualWindingWindow{
		BotBound:   botBound,
		TopBound:   topBound,
		LeftBound:  leftBound,
		RightBound: rightBound,
	}
}

// SetWinding assigns a single winding to this virtual winding window. A
// FoilVertical scheme needs an explicit wrap parameter type.
func (vww *VirtualWindingWindow) SetWinding(conductor *Conductor, turns int, windingScheme types.WindingScheme, wrapParaType types.WrapParaType) error {
	if windingScheme == types.FoilVertical && wrapParaType == types.WrapParaUnset {
		return fmt.Errorf("when winding scheme is FoilVertical a wrap para type must be set")
	}
	vww.WindingType = types.Single
	vww.WindingScheme = windingScheme
	vww.Windings = []*Conductor{conductor}
	vww.Turns = []int{turns}
	vww.WindingIsSet = true
	vww.WrapPara = wrapParaType
	return nil
}

// SetInterleavedWinding assigns two interleaved windings separated by the
// given inter-winding insulation.
func (vww *VirtualWindingWindow) SetInterleavedWinding(conductor1 *Conductor, turns1 int, conductor2 *Conductor, turns2 int, windingScheme types.InterleavedWindingScheme, windingInsulation float64) {
	vww.WindingType = types.Interleaved
	vww.InterleavedScheme = windingScheme
	vww.Windings = []*Conductor{conductor1, conductor2}
	vww.Turns = []int{turns1, turns2}
	vww.WindingIsSet = true
	vww.WindingInsulation = windingInsulation
	vww.WrapPara = types.WrapParaUnset
}

func (vww *VirtualWindingWindow) String() string {
	return fmt.Sprintf("WindingType: %s, WindingScheme: %s, Bounds: bot: %v, top: %v, left: %v, right: %v",
		vww.WindingType, vww.WindingScheme, vww.BotBound, vww.TopBound, vww.LeftBound, vww.RightBound)
}

// WindingWindow owns the maximal rectangle available for conductors inside
// the core and partitions it into virtual winding windows. It is the only
// writer of its virtual winding window list.
type WindingWindow struct {
	MaxBotBound   float64
	MaxTopBound   float64
	MaxLeftBound  float64
	MaxRightBound float64

	VWWInsulations float64
	Insulations    *Insulation
	SplitType      types.WindingWindowSplit
	StrayPath      *StrayPath
	AirGaps        *AirGaps

	HorizontalSplitFactor float64
	VerticalSplitFactor   float64

	VirtualWindingWindows []*VirtualWindingWindow
}

// NewWindingWindow derives the maximal winding rectangle from the core
// dimensions minus the core insulation clearances. StrayPath and AirGaps may
// be nil when no integrated transformer is modeled.
func NewWindingWindow(core *Core, insulations *Insulation, strayPath *StrayPath, airGaps *AirGaps) *WindingWindow {
	return &WindingWindow{
		MaxBotBound:    -core.WindowH/2 + insulations.CoreCond[0],
		MaxTopBound:    core.WindowH/2 - insulations.CoreCond[1],
		MaxLeftBound:   core.CoreW/2 + insulations.CoreCond[2],
		MaxRightBound:  core.RInner - insulations.CoreCond[3],
		VWWInsulations: insulations.VWWInsulation,
		Insulations:    insulations,
		StrayPath:      strayPath,
		AirGaps:        airGaps,
	}
}

// SplitWindow partitions the maximal rectangle into 1, 2 or 4 virtual
// winding windows depending on the split type. When a stray path references
// two air gaps in range, the horizontal split line is forced to the midpoint
// between those gaps and the inter-window insulation becomes their distance.
func (ww *WindingWindow) SplitWindow(splitType types.WindingWindowSplit, horizontalSplitFactor, verticalSplitFactor float64) ([]*VirtualWindingWindow, error) {
	ww.SplitType = splitType
	ww.HorizontalSplitFactor = horizontalSplitFactor
	ww.VerticalSplitFactor = verticalSplitFactor

	var horizontalSplit, verticalSplit float64
	if ww.StrayPath != nil && ww.AirGaps != nil && ww.AirGaps.Number > ww.StrayPath.StartIndex+1 {
		// The split must straddle the stray leg between the two referenced
		// air gaps
		airGap1Position := ww.AirGaps.Midpoints[ww.StrayPath.StartIndex].Position
		airGap2Position := ww.AirGaps.Midpoints[ww.StrayPath.StartIndex+1].Position
		maxPos := math.Max(airGap1Position, airGap2Position)
		minPos := math.Min(airGap1Position, airGap2Position)
		distance := maxPos - minPos
		horizontalSplit = minPos + distance/2
		verticalSplit = ww.MaxLeftBound + (ww.MaxRightBound-ww.MaxLeftBound)*verticalSplitFactor
		ww.VWWInsulations = distance
	} else {
		horizontalSplit = ww.MaxTopBound - math.Abs(ww.MaxBotBound-ww.MaxTopBound)*horizontalSplitFactor
		verticalSplit = ww.MaxLeftBound + (ww.MaxRightBound-ww.MaxLeftBound)*verticalSplitFactor
	}

	switch splitType {
	case types.NoSplit:
		complete := NewVirtualWindingWindow(ww.MaxBotBound, ww.MaxTopBound, ww.MaxLeftBound, ww.MaxRightBound)
		ww.VirtualWindingWindows = []*VirtualWindingWindow{complete}
	case types.VerticalSplit:
		left := NewVirtualWindingWindow(ww.MaxBotBound, ww.MaxTopBound, ww.MaxLeftBound, verticalSplit-ww.VWWInsulations/2)
		right := NewVirtualWindingWindow(ww.MaxBotBound, ww.MaxTopBound, verticalSplit+ww.VWWInsulations/2, ww.MaxRightBound)
		ww.VirtualWindingWindows = []*VirtualWindingWindow{left, right}
	case types.HorizontalSplit:
		top := NewVirtualWindingWindow(horizontalSplit+ww.VWWInsulations/2, ww.MaxTopBound, ww.MaxLeftBound, ww.MaxRightBound)
		bot := NewVirtualWindingWindow(ww.MaxBotBound, horizontalSplit-ww.VWWInsulations/2, ww.MaxLeftBound, ww.MaxRightBound)
		ww.VirtualWindingWindows = []*VirtualWindingWindow{top, bot}
	case types.HorizontalAndVerticalSplit:
		topLeft := NewVirtualWindingWindow(horizontalSplit+ww.VWWInsulations/2, ww.MaxTopBound, ww.MaxLeftBound, verticalSplit-ww.VWWInsulations/2)
		topRight := NewVirtualWindingWindow(horizontalSplit+ww.VWWInsulations/2, ww.MaxTopBound, verticalSplit+ww.VWWInsulations/2, ww.MaxRightBound)
		botLeft := NewVirtualWindingWindow(ww.MaxBotBound, horizontalSplit-ww.VWWInsulations/2, ww.MaxLeftBound, verticalSplit-ww.VWWInsulations/2)
		botRight := NewVirtualWindingWindow(ww.MaxBotBound, horizontalSplit-ww.VWWInsulations/2, verticalSplit+ww.VWWInsulations/2, ww.MaxRightBound)
		ww.VirtualWindingWindows = []*VirtualWindingWindow{topLeft, topRight, botLeft, botRight}
	default:
		return nil, fmt.Errorf("winding window split type %s not found", splitType)
	}

	return ww.VirtualWindingWindows, nil
}

// CombineVWW merges two virtual winding windows into the bounding box union
// of both, removing the originals from the window's list. Merging
// diagonally opposite quadrants is geometrically invalid.
func (ww *WindingWindow) CombineVWW(vww1, vww2 *VirtualWindingWindow) (*VirtualWindingWindow, error) {
	index1 := ww.indexOf(vww1)
	index2 := ww.indexOf(vww2)
	if index1 < 0 || index2 < 0 {
		return nil, fmt.Errorf("virtual winding window does not belong to this winding window")
	}

	if math.Abs(float64(index2-index1)) == 3 {
		return nil, fmt.Errorf("cannot combine top left and bottom right")
	}

	remaining := make([]*VirtualWindingWindow, 0, len(ww.VirtualWindingWindows)-1)
	for _, vww := range ww.VirtualWindingWindows {
		if vww != vww1 && vww != vww2 {
			remaining = append(remaining, vww)
		}
	}

	newVWW := NewVirtualWindingWindow(
		math.Min(vww1.BotBound, vww2.BotBound),
		math.Max(vww1.TopBound, vww2.TopBound),
		math.Min(vww1.LeftBound, vww2.LeftBound),
		math.Max(vww1.RightBound, vww2.RightBound))

	ww.VirtualWindingWindows = append(remaining, newVWW)

	return newVWW, nil
}

func (ww *WindingWindow) indexOf(target *VirtualWindingWindow) int {
	for i, vww := range ww.VirtualWindingWindows {
		if vww == target {
			return i
		}
	}
	return -1
}
