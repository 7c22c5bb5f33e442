package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qansatz/circuit"
	"github.com/katalvlaran/qansatz/symbol"
)

// TestLine verifies the default linear register allocation.
func TestLine(t *testing.T) {
	assert.Empty(t, circuit.Line(0))
	assert.Equal(t, []circuit.Qubit{0, 1, 2, 3}, circuit.Line(4))
}

// TestGateKind_Period pins the exponent periods of the two gate families.
func TestGateKind_Period(t *testing.T) {
	assert.Equal(t, 4, circuit.HopGate.Period())
	assert.Equal(t, 2, circuit.InteractionGate.Period())
}

// TestOperation_String covers the human-readable operation rendering used in
// diagnostics and examples.
func TestOperation_String(t *testing.T) {
	op := circuit.Operation{
		Kind:     circuit.HopGate,
		Exponent: symbol.Neg(symbol.New("Th", 0)),
		Targets:  [2]circuit.Qubit{3, 4},
	}
	assert.Equal(t, "Hop^(-Th_0)(3,4)", op.String())

	op = circuit.Operation{
		Kind:     circuit.InteractionGate,
		Exponent: symbol.Pos(symbol.New("V", 1)),
		Targets:  [2]circuit.Qubit{0, 1},
	}
	assert.Equal(t, "Interaction^(V_1)(0,1)", op.String())
}
