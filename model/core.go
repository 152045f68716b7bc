package model

import (
	"fmt"
	"math"

	"github.com/tapegoji/FEM-Magnetics-Toolbox/types"
)

// MaterialCustom marks a core without a data-sheet material. A custom core
// carries its permeability and conductivity explicitly.
const MaterialCustom = "custom"

// outerLegArea is the outer leg cross section in m^2 used when the outer
// radius is corrected to match a real core (PQ 40/40).
const outerLegArea = 200e-6

// CoreConfig enumerates every core parameter. Fields outside this set do
// not exist; there is no open-ended attribute injection.
type CoreConfig struct {
	CoreW   float64 // Core width; axisymmetric case, equals 2x the center leg radius
	WindowW float64 // Winding window width
	WindowH float64 // Winding window height

	Material     string // MaterialCustom or a data-sheet identifier such as "95_100"
	LossApproach types.LossApproach

	MuRel    float64 // Magnitude of the relative permeability; defaults to 3000
	PhiMuDeg float64 // Loss angle of the complex permeability in degrees
	Sigma    float64 // Explicit equivalent conductivity; LossAngle with custom material only

	NonLinear       bool
	CorrectOuterLeg bool
}

// Core is the magnetic core of the component: its shape, the permeability
// representation and the equivalent conductivity handed to the solver stage.
type Core struct {
	Type     string
	CoreType string

	Material  string
	NonLinear bool

	PermeabilityType types.PermeabilityType
	MuRel            float64
	PhiMuDeg         float64

	Sigma types.Sigma

	CoreW   float64
	CoreH   float64
	WindowW float64
	WindowH float64

	LossApproach      types.LossApproach
	NumberCoreWindows int

	RInner float64
	ROuter float64

	CorrectOuterLeg bool
}

// NewCore derives the core radii from the configured dimensions and selects
// the permeability and conductivity representation from the loss approach
// and material combination. An inconsistent combination is a configuration
// error.
func NewCore(cfg CoreConfig) (*Core, error) {
	material := cfg.Material
	if material == "" {
		material = MaterialCustom
	}
	muRel := cfg.MuRel
	if muRel == 0 {
		muRel = 3000
	}

	core := &Core{
		Type:              "axi_symmetric",
		CoreType:          "EI",
		Material:          material,
		NonLinear:         cfg.NonLinear,
		MuRel:             muRel,
		PhiMuDeg:          cfg.PhiMuDeg,
		CoreW:             cfg.CoreW,
		WindowW:           cfg.WindowW,
		WindowH:           cfg.WindowH,
		LossApproach:      cfg.LossApproach,
		NumberCoreWindows: 2,
		CorrectOuterLeg:   cfg.CorrectOuterLeg,
	}

	core.RInner = cfg.WindowW + cfg.CoreW/2
	if cfg.CorrectOuterLeg {
		core.ROuter = math.Sqrt(outerLegArea/math.Pi + core.RInner*core.RInner)
	} else {
		// Outer leg cross section equals the center leg cross section
		core.ROuter = math.Sqrt((cfg.CoreW/2)*(cfg.CoreW/2) + core.RInner*core.RInner)
	}

	switch cfg.LossApproach {
	case types.Steinmetz:
		if material == MaterialCustom {
			return nil, fmt.Errorf("when Steinmetz losses are set a material needs to be set as well")
		}
		core.PermeabilityType = types.FromData
		core.Sigma = types.SigmaFromMaterialName(material)
	case types.LossAngle:
		if material == MaterialCustom {
			core.Sigma = types.FixedSigma(cfg.Sigma)
		} else {
			core.Sigma = types.SigmaFromMaterialName(material)
		}
		if cfg.PhiMuDeg != 0 {
			core.PermeabilityType = types.FixedLossAngle
		} else {
			core.PermeabilityType = types.RealValue
		}
	default:
		return nil, fmt.Errorf("loss approach %s is not implemented", cfg.LossApproach)
	}

	return core, nil
}
