package model

import (
	"fmt"
	"math"

	"github.com/tapegoji/FEM-Magnetics-Toolbox/types"
)

// Mu0 is the vacuum permeability in H/m.
const Mu0 = 4 * math.Pi * 1e-7

// Unset marks an unspecified litz parameter. Exactly one of the four litz
// parameters must be left Unset; the remaining three determine it.
func Unset() float64 { return math.NaN() }

func isUnset(v float64) bool { return math.IsNaN(v) }

// WireMaterial holds the electrical properties of a winding wire material.
type WireMaterial struct {
	Sigma float64 // Conductivity in S/m
}

// WireMaterials maps a wire material name to its properties. The mapping is
// injected into NewConductor so the model carries no process-wide state.
type WireMaterials map[types.Conductivity]WireMaterial

// DefaultWireMaterials returns the standard wire material database.
func DefaultWireMaterials() WireMaterials {
	return WireMaterials{
		types.Copper:    {Sigma: 5.8e7},
		types.Aluminium: {Sigma: 3.7e7},
	}
}

// Conductor describes the wire of one winding. Only the conductor parameters
// live here; how the conductor is placed inside a winding window belongs to
// the VirtualWindingWindow it is assigned to.
//
// A Conductor is created unset, configured exactly once through one of the
// Set* calls, and is read-only afterwards.
type Conductor struct {
	WindingNumber int
	Conductivity  types.Conductivity
	CondSigma     float64 // Conductivity of the wire material in S/m

	Type        types.ConductorType
	Arrangement types.ConductorArrangement

	ConductorRadius float64
	Thickness       float64
	FillFactor      float64
	StrandRadius    float64
	NStrands        float64 // Strand count; fractional when solved from the other litz parameters
	NLayers         int
	ACell           float64 // Cross section of one conductor cell in m^2

	Parallel int

	isSet bool
}

// NewConductor creates an unset conductor for the given winding index,
// resolving the wire conductivity from the injected material mapping.
func NewConductor(windingNumber int, conductivity types.Conductivity, materials WireMaterials) (*Conductor, error) {
	if windingNumber < 0 {
		return nil, fmt.Errorf("winding index cannot be negative")
	}
	material, ok := materials[conductivity]
	if !ok {
		return nil, fmt.Errorf("material %s not found in wire material database", conductivity)
	}
	return &Conductor{
		WindingNumber: windingNumber,
		Conductivity:  conductivity,
		CondSigma:     material.Sigma,
		Parallel:      1,
	}, nil
}

// SetRectangularConductor configures a rectangular solid conductor of the
// given thickness. Cross section and radius are placeholders here, not
// physically meaningful values.
func (c *Conductor) SetRectangularConductor(thickness float64) error {
	if c.isSet {
		return fmt.Errorf("only one conductor can be set for each winding")
	}
	c.isSet = true
	c.Type = types.RectangularSolid
	c.Thickness = thickness
	c.ACell = 1
	c.ConductorRadius = 1
	return nil
}

// SetSolidRoundConductor configures a solid round conductor.
func (c *Conductor) SetSolidRoundConductor(conductorRadius float64, arrangement types.ConductorArrangement) error {
	if c.isSet {
		return fmt.Errorf("only one conductor can be set for each winding")
	}
	c.isSet = true
	c.Type = types.RoundSolid
	c.Arrangement = arrangement
	c.ConductorRadius = conductorRadius
	c.ACell = math.Pi * conductorRadius * conductorRadius
	return nil
}

// SetLitzRoundConductor configures a litz conductor. Exactly one of
// conductorRadius, numberStrands, strandRadius and fillFactor must be left
// unspecified (Unset() for the radii and fill factor, 0 for the strand
// count); it is solved from the other three.
func (c *Conductor) SetLitzRoundConductor(conductorRadius, numberStrands, strandRadius, fillFactor float64, arrangement types.ConductorArrangement) error {
	if c.isSet {
		return fmt.Errorf("only one conductor can be set for each winding")
	}

	missing := 0
	if isUnset(conductorRadius) {
		missing++
	}
	if numberStrands == 0 {
		missing++
	}
	if isUnset(strandRadius) {
		missing++
	}
	if isUnset(fillFactor) {
		missing++
	}
	if missing != 1 {
		return fmt.Errorf("1 of the 4 litz parameters needs to be unspecified, have %d", missing)
	}

	c.isSet = true
	c.Type = types.RoundLitz
	c.Arrangement = arrangement
	c.ConductorRadius = conductorRadius
	c.NStrands = numberStrands
	c.StrandRadius = strandRadius
	c.FillFactor = fillFactor

	switch {
	case numberStrands == 0:
		c.NStrands = conductorRadius * conductorRadius / (strandRadius * strandRadius) * fillFactor
	case isUnset(conductorRadius):
		c.ConductorRadius = math.Sqrt(numberStrands * strandRadius * strandRadius / fillFactor)
	case isUnset(fillFactor):
		ffExact := numberStrands * strandRadius * strandRadius / (conductorRadius * conductorRadius)
		c.FillFactor = math.Round(ffExact*100) / 100
	case isUnset(strandRadius):
		c.StrandRadius = math.Sqrt(conductorRadius * conductorRadius * fillFactor / numberStrands)
	}

	c.NLayers = NumberOfLayers(c.NStrands)
	c.ACell = c.NStrands * c.StrandRadius * c.StrandRadius * math.Pi / c.FillFactor

	fmt.Printf("Updated Litz Configuration:\n"+
		" ff: %v\n"+
		" Number of layers/strands: %v/%v\n"+
		" Strand radius: %v\n"+
		" Conductor radius: %v\n"+
		"---\n",
		c.FillFactor, c.NLayers, c.NStrands, c.StrandRadius, c.ConductorRadius)
	return nil
}

// IsSet reports whether one of the Set* calls has configured this conductor.
func (c *Conductor) IsSet() bool { return c.isSet }

// Equal compares two conductors structurally over the field set of the
// active conductor variant.
func (c *Conductor) Equal(o *Conductor) bool {
	if o == nil {
		return false
	}
	if c.WindingNumber != o.WindingNumber || c.Conductivity != o.Conductivity || c.Type != o.Type {
		return false
	}
	switch c.Type {
	case types.RectangularSolid:
		return c.Thickness == o.Thickness
	case types.RoundSolid:
		return c.Arrangement == o.Arrangement && c.ConductorRadius == o.ConductorRadius
	case types.RoundLitz:
		return c.Arrangement == o.Arrangement &&
			c.ConductorRadius == o.ConductorRadius &&
			c.NStrands == o.NStrands &&
			c.StrandRadius == o.StrandRadius &&
			c.FillFactor == o.FillFactor
	}
	return true
}

// NumberOfLayers returns the number of full hexagonal packing layers needed
// to hold the given strand count: a bundle with L layers around the center
// strand holds 3L(L+1)+1 strands.
func NumberOfLayers(nStrands float64) int {
	if nStrands <= 1 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(0.25+(nStrands-1)/3) - 0.5))
}
