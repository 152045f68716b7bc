package model

import "fmt"

// Insulation holds the clearance distances of the component: between the
// windings and the core, and between virtual winding windows.
//
// When having an inductor only the primary-to-primary insulation is needed;
// for a (integrated) transformer the secondary-to-secondary and
// primary-to-secondary insulations are set as well.
type Insulation struct {
	InnerWindingInsulations []float64
	VWWInsulation           float64

	// Core clearances in the order top, bottom, left, right
	CoreCond [4]float64

	// Small uniform epsilon keeping boundary regions away from zero width
	InsulationDelta float64
}

func NewInsulation() *Insulation {
	return &Insulation{
		InsulationDelta: 0.00001,
	}
}

// AddWindingInsulations sets the insulation distances between winding turns
// and the clearance between virtual winding windows.
func (ins *Insulation) AddWindingInsulations(innerWindingInsulations []float64, vwwInsulation float64) error {
	if len(innerWindingInsulations) == 0 {
		return fmt.Errorf("inner winding insulations list cannot be empty")
	}
	ins.InnerWindingInsulations = innerWindingInsulations
	ins.VWWInsulation = vwwInsulation
	return nil
}

// AddCoreInsulations sets the clearances between the winding window and the
// core.
func (ins *Insulation) AddCoreInsulations(topCore, botCore, leftCore, rightCore float64) {
	ins.CoreCond = [4]float64{topCore, botCore, leftCore, rightCore}
}
