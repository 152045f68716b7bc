package InputParameters

import (
	"fmt"
	"strings"

	"github.com/tapegoji/FEM-Magnetics-Toolbox/mesh"
	"github.com/tapegoji/FEM-Magnetics-Toolbox/model"
	"github.com/tapegoji/FEM-Magnetics-Toolbox/types"
)

// MagneticComponent is the fully parameterized model assembled from a
// parameter set: the geometric contract the mesh generator consumes.
type MagneticComponent struct {
	Core          *model.Core
	AirGaps       *model.AirGaps
	Insulation    *model.Insulation
	StrayPath     *model.StrayPath
	WindingWindow *model.WindingWindow
	Windings      []*model.Conductor
	MeshData      *mesh.MeshData
}

// Build assembles the model entities in construction order: core,
// insulation, air gaps, winding window split, winding assignment and mesh
// data. Any configuration error aborts the build at the offending entity.
func (mp *MagneticComponentParameters) Build() (*MagneticComponent, error) {
	lossApproach, ok := types.LossApproachNameMap[strings.ToLower(mp.LossApproach)]
	if !ok {
		return nil, fmt.Errorf("unknown loss approach %q", mp.LossApproach)
	}

	core, err := model.NewCore(model.CoreConfig{
		CoreW:           mp.CoreW,
		WindowW:         mp.WindowW,
		WindowH:         mp.WindowH,
		Material:        mp.Material,
		LossApproach:    lossApproach,
		MuRel:           mp.MuRel,
		PhiMuDeg:        mp.PhiMuDeg,
		Sigma:           mp.Sigma,
		NonLinear:       mp.NonLinear,
		CorrectOuterLeg: mp.CorrectOuterLeg,
	})
	if err != nil {
		return nil, err
	}

	insulation := model.NewInsulation()
	insulation.AddCoreInsulations(mp.Insulation.CoreTop, mp.Insulation.CoreBot, mp.Insulation.CoreLeft, mp.Insulation.CoreRight)
	if len(mp.Insulation.InnerWindings) > 0 {
		if err := insulation.AddWindingInsulations(mp.Insulation.InnerWindings, mp.Insulation.VWWInsulation); err != nil {
			return nil, err
		}
	}

	var airGaps *model.AirGaps
	if len(mp.AirGaps) > 0 {
		method, ok := types.AirGapMethodNameMap[strings.ToLower(mp.AirGapMethod)]
		if !ok {
			return nil, fmt.Errorf("unknown air gap method %q", mp.AirGapMethod)
		}
		airGaps = model.NewAirGaps(method, core)
		for _, gap := range mp.AirGaps {
			leg, ok := types.AirGapLegPositionNameMap[strings.ToLower(gap.LegPosition)]
			if !ok {
				return nil, fmt.Errorf("unknown air gap leg position %q", gap.LegPosition)
			}
			if err := airGaps.AddAirGap(leg, gap.Height, gap.PositionValue); err != nil {
				return nil, err
			}
		}
	}

	var strayPath *model.StrayPath
	if mp.StrayPath != nil {
		strayPath = &model.StrayPath{StartIndex: mp.StrayPath.StartIndex, Length: mp.StrayPath.Length}
	}

	materials := model.DefaultWireMaterials()
	windings := make([]*model.Conductor, 0, len(mp.Windings))
	for i, wp := range mp.Windings {
		conductor, err := buildConductor(i, wp, materials)
		if err != nil {
			return nil, fmt.Errorf("winding %d: %v", i, err)
		}
		windings = append(windings, conductor)
	}

	windingWindow := model.NewWindingWindow(core, insulation, strayPath, airGaps)
	splitType, ok := types.WindingWindowSplitNameMap[strings.ToLower(mp.SplitType)]
	if !ok {
		return nil, fmt.Errorf("unknown split type %q", mp.SplitType)
	}
	vwws, err := windingWindow.SplitWindow(splitType, mp.HorizontalSplitFactor, mp.VerticalSplitFactor)
	if err != nil {
		return nil, err
	}

	if err := assignWindings(mp, vwws, windings, insulation); err != nil {
		return nil, err
	}

	accuracy := mp.GlobalAccuracy
	if accuracy == 0 {
		accuracy = mesh.DefaultGlobalAccuracy
	}
	skinMeshFactor := mp.SkinMeshFactor
	if skinMeshFactor == 0 {
		skinMeshFactor = 0.5
	}
	meshData := mesh.NewMeshData(accuracy, mesh.DefaultPadding, model.Mu0, core.CoreW, core.WindowW, windings)
	meshData.Update(mp.Frequency, skinMeshFactor)

	return &MagneticComponent{
		Core:          core,
		AirGaps:       airGaps,
		Insulation:    insulation,
		StrayPath:     strayPath,
		WindingWindow: windingWindow,
		Windings:      windings,
		MeshData:      meshData,
	}, nil
}

// buildConductor configures one conductor from its parameters. For litz
// conductors a zero value means the parameter is unspecified and gets
// solved from the other three.
func buildConductor(windingNumber int, wp ConductorParameters, materials model.WireMaterials) (*model.Conductor, error) {
	conductivity, ok := types.ConductivityNameMap[strings.ToLower(wp.Conductivity)]
	if !ok {
		return nil, fmt.Errorf("unknown conductivity %q", wp.Conductivity)
	}
	conductor, err := model.NewConductor(windingNumber, conductivity, materials)
	if err != nil {
		return nil, err
	}

	conductorType, ok := types.ConductorTypeNameMap[strings.ToLower(wp.ConductorType)]
	if !ok {
		return nil, fmt.Errorf("unknown conductor type %q", wp.ConductorType)
	}

	switch conductorType {
	case types.RectangularSolid:
		err = conductor.SetRectangularConductor(wp.Thickness)
	case types.RoundSolid:
		arrangement, ok := types.ConductorArrangementNameMap[strings.ToLower(wp.ConductorArrangement)]
		if !ok {
			return nil, fmt.Errorf("unknown conductor arrangement %q", wp.ConductorArrangement)
		}
		err = conductor.SetSolidRoundConductor(wp.ConductorRadius, arrangement)
	case types.RoundLitz:
		arrangement, ok := types.ConductorArrangementNameMap[strings.ToLower(wp.ConductorArrangement)]
		if !ok {
			return nil, fmt.Errorf("unknown conductor arrangement %q", wp.ConductorArrangement)
		}
		err = conductor.SetLitzRoundConductor(
			zeroToUnset(wp.ConductorRadius), wp.NumberStrands,
			zeroToUnset(wp.StrandRadius), zeroToUnset(wp.FillFactor), arrangement)
	}
	if err != nil {
		return nil, err
	}
	return conductor, nil
}

func zeroToUnset(v float64) float64 {
	if v == 0 {
		return model.Unset()
	}
	return v
}

// assignWindings distributes the configured conductors over the virtual
// winding windows produced by the split.
func assignWindings(mp *MagneticComponentParameters, vwws []*model.VirtualWindingWindow, windings []*model.Conductor, insulation *model.Insulation) error {
	switch {
	case len(windings) == 1 && len(vwws) == 1:
		scheme, wrapPara, err := singleScheme(mp.Windings[0])
		if err != nil {
			return err
		}
		return vwws[0].SetWinding(windings[0], mp.Windings[0].Turns, scheme, wrapPara)
	case len(windings) == 2 && len(vwws) == 1:
		scheme, ok := types.InterleavedWindingSchemeNameMap[strings.ToLower(mp.InterleavedScheme)]
		if !ok {
			return fmt.Errorf("unknown interleaved winding scheme %q", mp.InterleavedScheme)
		}
		windingInsulation := 0.0
		if len(insulation.InnerWindingInsulations) > 0 {
			windingInsulation = insulation.InnerWindingInsulations[0]
		}
		vwws[0].SetInterleavedWinding(windings[0], mp.Windings[0].Turns, windings[1], mp.Windings[1].Turns, scheme, windingInsulation)
		return nil
	case len(windings) == len(vwws):
		for i, vww := range vwws {
			scheme, wrapPara, err := singleScheme(mp.Windings[i])
			if err != nil {
				return err
			}
			if err := vww.SetWinding(windings[i], mp.Windings[i].Turns, scheme, wrapPara); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%d windings do not fit %d virtual winding windows", len(windings), len(vwws))
	}
}

func singleScheme(wp ConductorParameters) (types.WindingScheme, types.WrapParaType, error) {
	scheme, ok := types.WindingSchemeNameMap[strings.ToLower(wp.WindingScheme)]
	if !ok {
		return 0, 0, fmt.Errorf("unknown winding scheme %q", wp.WindingScheme)
	}
	wrapPara := types.WrapParaUnset
	if wp.WrapPara != "" {
		wrapPara, ok = types.WrapParaTypeNameMap[strings.ToLower(wp.WrapPara)]
		if !ok {
			return 0, 0, fmt.Errorf("unknown wrap para type %q", wp.WrapPara)
		}
	}
	return scheme, wrapPara, nil
}
