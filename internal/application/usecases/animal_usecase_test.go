package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGMD(t *testing.T) {
	// 300kg -> 360kg em 30 dias = 2kg/dia
	assert.InDelta(t, 2, ComputeGMD(300, 360, 30), 1e-9)

	// Peso estável
	assert.InDelta(t, 0, ComputeGMD(300, 300, 30), 1e-9)

	// Perda de peso gera GMD negativo
	assert.InDelta(t, -1, ComputeGMD(360, 330, 30), 1e-9)

	// Pesagens no mesmo dia não dividem por zero
	assert.InDelta(t, 0, ComputeGMD(300, 320, 0), 1e-9)
}
