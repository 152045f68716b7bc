package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file describing one magnetic
// component: core shape, loss model, air gaps, insulation, windings and the
// simulation frequency.
type MagneticComponentParameters struct {
	Title string `yaml:"Title"`

	// Core
	CoreW           float64 `yaml:"CoreW"`
	WindowW         float64 `yaml:"WindowW"`
	WindowH         float64 `yaml:"WindowH"`
	Material        string  `yaml:"Material"`
	LossApproach    string  `yaml:"LossApproach"`
	MuRel           float64 `yaml:"MuRel"`
	PhiMuDeg        float64 `yaml:"PhiMuDeg"`
	Sigma           float64 `yaml:"Sigma"`
	NonLinear       bool    `yaml:"NonLinear"`
	CorrectOuterLeg bool    `yaml:"CorrectOuterLeg"`

	// Air gaps
	AirGapMethod string                `yaml:"AirGapMethod"`
	AirGaps      []AirGapParameters    `yaml:"AirGaps"`
	StrayPath    *StrayPathParameters  `yaml:"StrayPath"`
	Insulation   InsulationParameters  `yaml:"Insulation"`
	Windings     []ConductorParameters `yaml:"Windings"`

	// Winding window partitioning
	SplitType             string  `yaml:"SplitType"`
	InterleavedScheme     string  `yaml:"InterleavedScheme"`
	HorizontalSplitFactor float64 `yaml:"HorizontalSplitFactor"`
	VerticalSplitFactor   float64 `yaml:"VerticalSplitFactor"`

	// Meshing
	Frequency      float64 `yaml:"Frequency"`
	SkinMeshFactor float64 `yaml:"SkinMeshFactor"`
	GlobalAccuracy float64 `yaml:"GlobalAccuracy"`
}

type AirGapParameters struct {
	LegPosition   string  `yaml:"LegPosition"`
	PositionValue float64 `yaml:"PositionValue"`
	Height        float64 `yaml:"Height"`
}

type StrayPathParameters struct {
	StartIndex int     `yaml:"StartIndex"`
	Length     float64 `yaml:"Length"`
}

type InsulationParameters struct {
	CoreTop       float64   `yaml:"CoreTop"`
	CoreBot       float64   `yaml:"CoreBot"`
	CoreLeft      float64   `yaml:"CoreLeft"`
	CoreRight     float64   `yaml:"CoreRight"`
	InnerWindings []float64 `yaml:"InnerWindings"`
	VWWInsulation float64   `yaml:"VWWInsulation"`
}

type ConductorParameters struct {
	Conductivity         string  `yaml:"Conductivity"`
	ConductorType        string  `yaml:"ConductorType"`
	ConductorArrangement string  `yaml:"ConductorArrangement"`
	Thickness            float64 `yaml:"Thickness"`
	ConductorRadius      float64 `yaml:"ConductorRadius"`
	NumberStrands        float64 `yaml:"NumberStrands"`
	StrandRadius         float64 `yaml:"StrandRadius"`
	FillFactor           float64 `yaml:"FillFactor"`
	Turns                int     `yaml:"Turns"`
	WindingScheme        string  `yaml:"WindingScheme"`
	WrapPara             string  `yaml:"WrapPara"`
}

func (mp *MagneticComponentParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MagneticComponentParameters) Serialize() ([]byte, error) {
	return yaml.Marshal(mp)
}

func (mp *MagneticComponentParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("%8.5f\t\t= CoreW\n", mp.CoreW)
	fmt.Printf("%8.5f\t\t= WindowW\n", mp.WindowW)
	fmt.Printf("%8.5f\t\t= WindowH\n", mp.WindowH)
	fmt.Printf("[%s]\t\t\t= Material\n", mp.Material)
	fmt.Printf("[%s]\t\t= Loss Approach\n", mp.LossApproach)
	fmt.Printf("[%s]\t\t= Air Gap Method\n", mp.AirGapMethod)
	fmt.Printf("[%s]\t\t= Split Type\n", mp.SplitType)
	fmt.Printf("%8.1f\t\t= Frequency\n", mp.Frequency)
	for i, w := range mp.Windings {
		fmt.Printf("Windings[%d] = %v\n", i, w)
	}
}
