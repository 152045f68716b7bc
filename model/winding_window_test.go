package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapegoji/FEM-Magnetics-Toolbox/types"
)

func testWindingWindow(t *testing.T, vwwInsulation float64) *WindingWindow {
	t.Helper()
	core, err := NewCore(CoreConfig{
		CoreW: 0.02, WindowW: 0.01, WindowH: 0.03,
		LossApproach: types.LossAngle,
	})
	require.NoError(t, err)

	insulation := NewInsulation()
	insulation.AddCoreInsulations(0, 0, 0, 0)
	require.NoError(t, insulation.AddWindingInsulations([]float64{0.0001}, vwwInsulation))

	return NewWindingWindow(core, insulation, nil, nil)
}

func TestWindingWindowMaximalBounds(t *testing.T) {
	// core_w=0.02, window_w=0.01, window_h=0.03 with zero core clearances
	ww := testWindingWindow(t, 0)

	assert.InDelta(t, -0.015, ww.MaxBotBound, 1.e-12)
	assert.InDelta(t, 0.015, ww.MaxTopBound, 1.e-12)
	assert.InDelta(t, 0.01, ww.MaxLeftBound, 1.e-12)
	assert.InDelta(t, 0.02, ww.MaxRightBound, 1.e-12) // r_inner = window_w + core_w/2
}

func TestWindingWindowBoundsWithCoreInsulation(t *testing.T) {
	core, err := NewCore(CoreConfig{
		CoreW: 0.02, WindowW: 0.01, WindowH: 0.03,
		LossApproach: types.LossAngle,
	})
	require.NoError(t, err)

	insulation := NewInsulation()
	insulation.AddCoreInsulations(0.001, 0.002, 0.0005, 0.0007)
	require.NoError(t, insulation.AddWindingInsulations([]float64{0.0001}, 0))

	ww := NewWindingWindow(core, insulation, nil, nil)
	assert.InDelta(t, -0.015+0.001, ww.MaxBotBound, 1.e-12)
	assert.InDelta(t, 0.015-0.002, ww.MaxTopBound, 1.e-12)
	assert.InDelta(t, 0.01+0.0005, ww.MaxLeftBound, 1.e-12)
	assert.InDelta(t, 0.02-0.0007, ww.MaxRightBound, 1.e-12)
}

func TestSplitWindowNoSplit(t *testing.T) {
	ww := testWindingWindow(t, 0)

	vwws, err := ww.SplitWindow(types.NoSplit, 0.5, 0.5)
	require.NoError(t, err)
	require.Len(t, vwws, 1)

	assert.Equal(t, ww.MaxBotBound, vwws[0].BotBound)
	assert.Equal(t, ww.MaxTopBound, vwws[0].TopBound)
	assert.Equal(t, ww.MaxLeftBound, vwws[0].LeftBound)
	assert.Equal(t, ww.MaxRightBound, vwws[0].RightBound)
}

func TestSplitWindowTwoRegions(t *testing.T) {
	const insulationGap = 0.0002

	ww := testWindingWindow(t, insulationGap)
	vwws, err := ww.SplitWindow(types.HorizontalSplit, 0.5, 0.5)
	require.NoError(t, err)
	require.Len(t, vwws, 2)
	top, bot := vwws[0], vwws[1]
	assert.InDelta(t, insulationGap, top.BotBound-bot.TopBound, 1.e-12)
	assert.Equal(t, ww.MaxTopBound, top.TopBound)
	assert.Equal(t, ww.MaxBotBound, bot.BotBound)

	ww = testWindingWindow(t, insulationGap)
	vwws, err = ww.SplitWindow(types.VerticalSplit, 0.5, 0.5)
	require.NoError(t, err)
	require.Len(t, vwws, 2)
	left, right := vwws[0], vwws[1]
	assert.InDelta(t, insulationGap, right.LeftBound-left.RightBound, 1.e-12)
	assert.Equal(t, ww.MaxLeftBound, left.LeftBound)
	assert.Equal(t, ww.MaxRightBound, right.RightBound)
}

func TestSplitWindowFourRegions(t *testing.T) {
	const insulationGap = 0.0002

	ww := testWindingWindow(t, insulationGap)
	vwws, err := ww.SplitWindow(types.HorizontalAndVerticalSplit, 0.5, 0.5)
	require.NoError(t, err)
	require.Len(t, vwws, 4)
	topLeft, topRight, botLeft, botRight := vwws[0], vwws[1], vwws[2], vwws[3]

	// Union bounding box equals the maximal bounds
	assert.Equal(t, ww.MaxTopBound, topLeft.TopBound)
	assert.Equal(t, ww.MaxTopBound, topRight.TopBound)
	assert.Equal(t, ww.MaxBotBound, botLeft.BotBound)
	assert.Equal(t, ww.MaxBotBound, botRight.BotBound)
	assert.Equal(t, ww.MaxLeftBound, topLeft.LeftBound)
	assert.Equal(t, ww.MaxLeftBound, botLeft.LeftBound)
	assert.Equal(t, ww.MaxRightBound, topRight.RightBound)
	assert.Equal(t, ww.MaxRightBound, botRight.RightBound)

	// Pairwise gaps equal the configured insulation
	assert.InDelta(t, insulationGap, topLeft.BotBound-botLeft.TopBound, 1.e-12)
	assert.InDelta(t, insulationGap, topRight.BotBound-botRight.TopBound, 1.e-12)
	assert.InDelta(t, insulationGap, topRight.LeftBound-topLeft.RightBound, 1.e-12)
	assert.InDelta(t, insulationGap, botRight.LeftBound-botLeft.RightBound, 1.e-12)
}

func TestSplitWindowFactors(t *testing.T) {
	ww := testWindingWindow(t, 0)
	vwws, err := ww.SplitWindow(types.HorizontalAndVerticalSplit, 0.25, 0.75)
	require.NoError(t, err)

	horizontalSplit := ww.MaxTopBound - math.Abs(ww.MaxBotBound-ww.MaxTopBound)*0.25
	verticalSplit := ww.MaxLeftBound + (ww.MaxRightBound-ww.MaxLeftBound)*0.75
	assert.InDelta(t, horizontalSplit, vwws[0].BotBound, 1.e-12)
	assert.InDelta(t, verticalSplit, vwws[0].RightBound, 1.e-12)
}

func TestSplitWindowUnknownType(t *testing.T) {
	ww := testWindingWindow(t, 0)
	_, err := ww.SplitWindow(types.WindingWindowSplit(99), 0.5, 0.5)
	assert.Error(t, err)
}

func TestSplitWindowStrayPathOverride(t *testing.T) {
	core, err := NewCore(CoreConfig{
		CoreW: 0.02, WindowW: 0.01, WindowH: 0.03,
		LossApproach: types.LossAngle,
	})
	require.NoError(t, err)

	insulation := NewInsulation()
	insulation.AddCoreInsulations(0, 0, 0, 0)
	require.NoError(t, insulation.AddWindingInsulations([]float64{0.0001}, 0.0002))

	airGaps := NewAirGaps(types.Manually, core)
	require.NoError(t, airGaps.AddAirGap(types.CenterLeg, 0.0005, -0.004))
	require.NoError(t, airGaps.AddAirGap(types.CenterLeg, 0.0005, 0.006))

	strayPath := &StrayPath{StartIndex: 0, Length: 0.012}
	ww := NewWindingWindow(core, insulation, strayPath, airGaps)

	vwws, err := ww.SplitWindow(types.HorizontalSplit, 0.5, 0.5)
	require.NoError(t, err)
	require.Len(t, vwws, 2)

	// Split line sits at the midpoint between the two referenced air gaps;
	// the inter-window insulation becomes their distance
	distance := 0.006 - (-0.004)
	midpoint := -0.004 + distance/2
	assert.InDelta(t, distance, ww.VWWInsulations, 1.e-12)
	assert.InDelta(t, midpoint+distance/2, vwws[0].BotBound, 1.e-12)
	assert.InDelta(t, midpoint-distance/2, vwws[1].TopBound, 1.e-12)
}

func TestSplitWindowStrayPathOutOfRange(t *testing.T) {
	core, err := NewCore(CoreConfig{
		CoreW: 0.02, WindowW: 0.01, WindowH: 0.03,
		LossApproach: types.LossAngle,
	})
	require.NoError(t, err)

	insulation := NewInsulation()
	insulation.AddCoreInsulations(0, 0, 0, 0)
	require.NoError(t, insulation.AddWindingInsulations([]float64{0.0001}, 0.0002))

	airGaps := NewAirGaps(types.Manually, core)
	require.NoError(t, airGaps.AddAirGap(types.CenterLeg, 0.0005, -0.004))

	// Only one gap: the stray path cannot reference a second one, the
	// split falls back to the factor-based lines
	strayPath := &StrayPath{StartIndex: 0, Length: 0.012}
	ww := NewWindingWindow(core, insulation, strayPath, airGaps)
	vwws, err := ww.SplitWindow(types.HorizontalSplit, 0.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0002, ww.VWWInsulations, 1.e-12)
	assert.InDelta(t, 0+0.0001, vwws[0].BotBound, 1.e-12)
}

func TestCombineVWW(t *testing.T) {
	ww := testWindingWindow(t, 0.0002)
	vwws, err := ww.SplitWindow(types.HorizontalAndVerticalSplit, 0.5, 0.5)
	require.NoError(t, err)
	topLeft, topRight, botLeft, botRight := vwws[0], vwws[1], vwws[2], vwws[3]

	// Diagonally opposite quadrants cannot merge
	_, err = ww.CombineVWW(topLeft, botRight)
	assert.Error(t, err)

	combined, err := ww.CombineVWW(topLeft, topRight)
	require.NoError(t, err)

	assert.Equal(t, topLeft.TopBound, combined.TopBound)
	assert.Equal(t, topLeft.BotBound, combined.BotBound)
	assert.Equal(t, topLeft.LeftBound, combined.LeftBound)
	assert.Equal(t, topRight.RightBound, combined.RightBound)

	// The originals leave the active list, the union joins it
	assert.Len(t, ww.VirtualWindingWindows, 3)
	assert.NotContains(t, ww.VirtualWindingWindows, topLeft)
	assert.NotContains(t, ww.VirtualWindingWindows, topRight)
	assert.Contains(t, ww.VirtualWindingWindows, combined)
	assert.Contains(t, ww.VirtualWindingWindows, botLeft)
	assert.Contains(t, ww.VirtualWindingWindows, botRight)
}

func TestCombineVWWForeignWindow(t *testing.T) {
	ww := testWindingWindow(t, 0)
	_, err := ww.SplitWindow(types.NoSplit, 0.5, 0.5)
	require.NoError(t, err)

	foreign := NewVirtualWindingWindow(0, 1, 0, 1)
	_, err = ww.CombineVWW(ww.VirtualWindingWindows[0], foreign)
	assert.Error(t, err)
}

func TestSetWinding(t *testing.T) {
	conductor, err := NewConductor(0, types.Copper, DefaultWireMaterials())
	require.NoError(t, err)
	require.NoError(t, conductor.SetSolidRoundConductor(0.0013, types.Square))

	vww := NewVirtualWindingWindow(-0.01, 0.01, 0.01, 0.02)
	require.NoError(t, vww.SetWinding(conductor, 9, types.SquareScheme, types.WrapParaUnset))
	assert.True(t, vww.WindingIsSet)
	assert.Equal(t, types.Single, vww.WindingType)
	assert.Equal(t, []int{9}, vww.Turns)

	// FoilVertical needs an explicit wrap parameter type
	vww = NewVirtualWindingWindow(-0.01, 0.01, 0.01, 0.02)
	assert.Error(t, vww.SetWinding(conductor, 9, types.FoilVertical, types.WrapParaUnset))
	assert.NoError(t, vww.SetWinding(conductor, 9, types.FoilVertical, types.FixedThickness))
}

func TestSetInterleavedWinding(t *testing.T) {
	materials := DefaultWireMaterials()
	primary, err := NewConductor(0, types.Copper, materials)
	require.NoError(t, err)
	require.NoError(t, primary.SetSolidRoundConductor(0.0013, types.Square))
	secondary, err := NewConductor(1, types.Copper, materials)
	require.NoError(t, err)
	require.NoError(t, secondary.SetLitzRoundConductor(0.001, 0, 0.00005, 0.6, types.Hexagonal))

	vww := NewVirtualWindingWindow(-0.01, 0.01, 0.01, 0.02)
	vww.SetInterleavedWinding(primary, 21, secondary, 7, types.HorizontalAlternating, 0.0005)

	assert.True(t, vww.WindingIsSet)
	assert.Equal(t, types.Interleaved, vww.WindingType)
	assert.Equal(t, []*Conductor{primary, secondary}, vww.Windings)
	assert.Equal(t, []int{21, 7}, vww.Turns)
	assert.Equal(t, 0.0005, vww.WindingInsulation)
	assert.Equal(t, types.WrapParaUnset, vww.WrapPara)
}
