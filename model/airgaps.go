package model

import (
	"fmt"

	"github.com/tapegoji/FEM-Magnetics-Toolbox/types"
)

// AirGapMidpoint is one placed air gap: the leg position tag, the axial
// midpoint position and the gap height.
type AirGapMidpoint struct {
	Leg      types.AirGapLegPosition
	Position float64
	Height   float64
}

// AirGapSetting keeps the raw arguments of one AddAirGap call for
// serialization and audit.
type AirGapSetting struct {
	LegPosition   types.AirGapLegPosition
	PositionValue float64
	Height        float64
}

// AirGaps is the ordered set of air gaps cut into the core. Gaps are
// appended incrementally and never removed; the midpoint list is later read
// bottom to top by the stray path logic.
type AirGaps struct {
	Method    types.AirGapMethod
	Midpoints []AirGapMidpoint
	Number    int
	Settings  []AirGapSetting

	core *Core
}

func NewAirGaps(method types.AirGapMethod, core *Core) *AirGaps {
	return &AirGaps{
		Method: method,
		core:   core,
	}
}

// AddAirGap places a single air gap on the core.
//
// positionValue is a percentage in [0,100] for the Percent method and an
// absolute position in m for the Manually method; the Center method ignores
// it.
func (ag *AirGaps) AddAirGap(legPosition types.AirGapLegPosition, height, positionValue float64) error {
	ag.Settings = append(ag.Settings, AirGapSetting{
		LegPosition:   legPosition,
		PositionValue: positionValue,
		Height:        height,
	})

	// TODO: this comparison is directional and misses symmetric overlaps;
	// confirm the intended interval test against measurements before
	// tightening it.
	for index, midpoint := range ag.Midpoints {
		if midpoint.Leg == legPosition &&
			midpoint.Position+midpoint.Height < positionValue-height &&
			midpoint.Position-midpoint.Height > positionValue+height {
			return fmt.Errorf("air gaps %d and %d are overlapping", index, len(ag.Midpoints))
		}
	}

	if legPosition == types.LeftLeg || legPosition == types.RightLeg {
		return fmt.Errorf("leg positions LeftLeg and RightLeg are currently not supported")
	}

	switch ag.Method {
	case types.Center:
		if ag.Number >= 1 {
			return fmt.Errorf("the center position for air gaps can only have 1 air gap maximum")
		}
		ag.Midpoints = append(ag.Midpoints, AirGapMidpoint{Leg: types.CenterLeg, Position: 0, Height: height})
		ag.Number++
	case types.Manually:
		ag.Midpoints = append(ag.Midpoints, AirGapMidpoint{Leg: legPosition, Position: positionValue, Height: height})
		ag.Number++
	case types.Percent:
		if positionValue > 100 || positionValue < 0 {
			return fmt.Errorf("air gap position values for the percent method need to be between 0 and 100")
		}
		position := positionValue/100*ag.core.WindowH - ag.core.WindowH/2

		// Shift a gap that would stick out of the winding window back inside
		if position+height/2 > ag.core.WindowH/2 {
			position -= (position + height/2) - ag.core.WindowH/2
		} else if position-height/2 < -ag.core.WindowH/2 {
			position += -ag.core.WindowH/2 - (position - height/2)
		}

		ag.Midpoints = append(ag.Midpoints, AirGapMidpoint{Leg: legPosition, Position: position, Height: height})
		ag.Number++
	default:
		return fmt.Errorf("air gap method %s is not supported", ag.Method)
	}

	return nil
}
