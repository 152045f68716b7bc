package types

import "fmt"

// SigmaKind tags the representation of the core's equivalent conductivity.
type SigmaKind uint8

const (
	SigmaFixed SigmaKind = iota
	SigmaFromMaterial
)

// Sigma is the equivalent core conductivity handed to the solver stage.
// It is either a fixed number or a marker telling the material database
// collaborator to resolve it from a named material before solving.
type Sigma struct {
	Kind     SigmaKind
	Value    float64
	Material string
}

func FixedSigma(value float64) Sigma {
	return Sigma{Kind: SigmaFixed, Value: value}
}

func SigmaFromMaterialName(material string) Sigma {
	return Sigma{Kind: SigmaFromMaterial, Material: material}
}

func (s Sigma) String() string {
	if s.Kind == SigmaFromMaterial {
		return fmt.Sprintf("sigma_from_%s", s.Material)
	}
	return fmt.Sprintf("%g", s.Value)
}
