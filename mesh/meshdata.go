// Package mesh derives the adaptive mesh sizing hints the mesh generator
// consumes: per-region target cell sizes driven by geometry size and, for
// conductors, by the frequency-dependent skin depth.
package mesh

import (
	"math"

	"github.com/tapegoji/FEM-Magnetics-Toolbox/model"
	"github.com/tapegoji/FEM-Magnetics-Toolbox/types"
)

const (
	DefaultGlobalAccuracy = 0.5
	DefaultPadding        = 1.5
)

// MeshData holds the mesh sizing hints for the current frequency. It is
// recomputed through Update on every frequency change and never persisted.
type MeshData struct {
	GlobalAccuracy float64 // Global mesh accuracy knob
	Padding        float64 // Air region padding factor, > 1
	SkinMeshFactor float64

	CCore            float64   // Target cell size inside the core
	CWindow          float64   // Target cell size inside the winding window
	CConductor       []float64 // Per-winding target cell size near the conductor surface
	CCenterConductor []float64 // Per-winding target cell size at the conductor center

	Delta float64 // Skin depth of the first winding at the current frequency

	mu0      float64
	coreW    float64
	windowW  float64
	windings []*model.Conductor
}

func NewMeshData(globalAccuracy, padding, mu0, coreW, windowW float64, windings []*model.Conductor) *MeshData {
	return &MeshData{
		GlobalAccuracy:   globalAccuracy,
		Padding:          padding,
		mu0:              mu0,
		coreW:            coreW,
		windowW:          windowW,
		windings:         windings,
		CConductor:       make([]float64, len(windings)),
		CCenterConductor: make([]float64, len(windings)),
	}
}

// Update recomputes every sizing hint for the given frequency. A frequency
// of exactly 0 means no skin effect; the skin depth is then the 1e9
// sentinel so it never constrains a cell size.
func (md *MeshData) Update(frequency, skinMeshFactor float64) {
	md.CCore = md.coreW / 10 * md.GlobalAccuracy
	md.CWindow = md.windowW / 30 * md.GlobalAccuracy
	md.SkinMeshFactor = skinMeshFactor

	if frequency == 0 {
		md.Delta = 1e9
	} else {
		md.Delta = math.Sqrt(2 / (2 * frequency * math.Pi * md.windings[0].CondSigma * md.mu0))
	}

	for i, winding := range md.windings {
		switch winding.Type {
		case types.RoundSolid:
			md.CConductor[i] = math.Min(md.Delta*md.SkinMeshFactor, winding.ConductorRadius/4*md.GlobalAccuracy)
			md.CCenterConductor[i] = winding.ConductorRadius / 4 * md.GlobalAccuracy
		case types.RoundLitz:
			// Skin effect plays out below the strand radius, which the mesh
			// never resolves
			md.CConductor[i] = winding.ConductorRadius / 4 * md.GlobalAccuracy
			md.CCenterConductor[i] = winding.ConductorRadius / 4 * md.GlobalAccuracy
		default:
			// Placeholder, not a physical derivation
			md.CConductor[i] = 0.0001
		}
	}
}
