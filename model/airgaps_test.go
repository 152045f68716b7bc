package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapegoji/FEM-Magnetics-Toolbox/types"
)

func testCore(t *testing.T) *Core {
	t.Helper()
	core, err := NewCore(CoreConfig{
		CoreW: 0.02, WindowW: 0.01, WindowH: 0.03,
		LossApproach: types.LossAngle,
	})
	require.NoError(t, err)
	return core
}

func TestAirGapsCenterMethod(t *testing.T) {
	ag := NewAirGaps(types.Center, testCore(t))

	require.NoError(t, ag.AddAirGap(types.CenterLeg, 0.0005, 0))
	assert.Equal(t, 1, ag.Number)
	assert.Equal(t, AirGapMidpoint{Leg: types.CenterLeg, Position: 0, Height: 0.0005}, ag.Midpoints[0])

	// At most one gap for the center method
	assert.Error(t, ag.AddAirGap(types.CenterLeg, 0.0005, 0))
	assert.Equal(t, 1, ag.Number)
}

func TestAirGapsManuallyMethod(t *testing.T) {
	ag := NewAirGaps(types.Manually, testCore(t))

	require.NoError(t, ag.AddAirGap(types.CenterLeg, 0.0005, 0.004))
	require.NoError(t, ag.AddAirGap(types.CenterLeg, 0.001, -0.006))

	assert.Equal(t, 2, ag.Number)
	assert.Equal(t, 0.004, ag.Midpoints[0].Position)
	assert.Equal(t, -0.006, ag.Midpoints[1].Position)
	// Raw settings are kept for serialization
	assert.Len(t, ag.Settings, 2)
	assert.Equal(t, 0.004, ag.Settings[0].PositionValue)
}

func TestAirGapsUnsupportedLegPositions(t *testing.T) {
	ag := NewAirGaps(types.Manually, testCore(t))
	assert.Error(t, ag.AddAirGap(types.LeftLeg, 0.0005, 0))
	assert.Error(t, ag.AddAirGap(types.RightLeg, 0.0005, 0))
	assert.Equal(t, 0, ag.Number)
}

func TestAirGapsPercentRange(t *testing.T) {
	ag := NewAirGaps(types.Percent, testCore(t))
	assert.Error(t, ag.AddAirGap(types.CenterLeg, 0.0005, -1))
	assert.Error(t, ag.AddAirGap(types.CenterLeg, 0.0005, 101))
}

func TestAirGapsPercentStaysInsideWindow(t *testing.T) {
	// For any position in [0,100] and height < window_h the placed gap
	// extent must stay fully inside [-window_h/2, window_h/2]
	core := testCore(t)
	halfWindow := core.WindowH / 2

	for _, height := range []float64{0.0002, 0.001, 0.005, 0.02} {
		for position := 0.0; position <= 100; position += 2.5 {
			ag := NewAirGaps(types.Percent, core)
			require.NoError(t, ag.AddAirGap(types.CenterLeg, height, position))

			midpoint := ag.Midpoints[0]
			assert.GreaterOrEqual(t, midpoint.Position-height/2, -halfWindow-1.e-12,
				"height %v position %v", height, position)
			assert.LessOrEqual(t, midpoint.Position+height/2, halfWindow+1.e-12,
				"height %v position %v", height, position)
		}
	}
}

func TestAirGapsPercentCenterPlacement(t *testing.T) {
	ag := NewAirGaps(types.Percent, testCore(t))
	require.NoError(t, ag.AddAirGap(types.CenterLeg, 0.0005, 50))
	assert.InDelta(t, 0, ag.Midpoints[0].Position, 1.e-12)
}

func TestAirGapsOverlapDetection(t *testing.T) {
	// The overlap comparison is directional and misses symmetric cases:
	// two gaps at the same position currently pass undetected. This pins
	// down the present behavior until it is confirmed against the
	// measurement tool's intent.
	ag := NewAirGaps(types.Manually, testCore(t))
	require.NoError(t, ag.AddAirGap(types.CenterLeg, 0.0005, 0.002))
	assert.NoError(t, ag.AddAirGap(types.CenterLeg, 0.0005, 0.002))
	assert.Equal(t, 2, ag.Number)
}
