package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsulation(t *testing.T) {
	ins := NewInsulation()
	assert.Equal(t, 0.00001, ins.InsulationDelta)

	assert.Error(t, ins.AddWindingInsulations(nil, 0))
	assert.Error(t, ins.AddWindingInsulations([]float64{}, 0))

	require.NoError(t, ins.AddWindingInsulations([]float64{0.0002, 0.0002, 0.0005}, 0.001))
	assert.Equal(t, 0.001, ins.VWWInsulation)

	ins.AddCoreInsulations(0.001, 0.002, 0.0005, 0.0007)
	assert.Equal(t, [4]float64{0.001, 0.002, 0.0005, 0.0007}, ins.CoreCond)
}
