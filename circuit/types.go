package circuit

import (
	"fmt"

	"github.com/katalvlaran/qansatz/symbol"
)

// Qubit is a linear qubit index, the analogue of a line qubit in hardware
// coordinates.
type Qubit int

// Line allocates the default linear register: qubits 0..n-1 in order.
// Complexity: O(n).
func Line(n int) []Qubit {
	qs := make([]Qubit, n)
	for i := range qs {
		qs[i] = Qubit(i)
	}

	return qs
}

// GateKind enumerates the parameterized two-qubit gate families the ansatz
// emits. The unitary semantics are opaque here; only the exponent period is
// part of the contract.
type GateKind int

const (
	// HopGate is the ISwap-family hopping gate; its exponent has period 4.
	HopGate GateKind = iota

	// InteractionGate is the CZ-family on-site interaction gate; its
	// exponent has period 2.
	InteractionGate
)

// Period returns the periodicity of the gate's exponent: raising the gate to
// exponent e and to e+Period() yields the same unitary.
// Complexity: O(1).
func (k GateKind) Period() int {
	if k == InteractionGate {
		return 2
	}

	return 4
}

// String names the gate kind.
func (k GateKind) String() string {
	switch k {
	case HopGate:
		return "Hop"
	case InteractionGate:
		return "Interaction"
	}

	return fmt.Sprintf("GateKind(%d)", int(k))
}

// Operation is one parameterized gate application: Kind raised to the
// symbolic Exponent, acting on the ordered qubit pair Targets.
type Operation struct {
	Kind     GateKind
	Exponent symbol.Term
	Targets  [2]Qubit
}

// String renders the operation, e.g. "Hop^(-Th_0)(3,4)".
func (op Operation) String() string {
	return fmt.Sprintf("%s^(%s)(%d,%d)", op.Kind, op.Exponent, op.Targets[0], op.Targets[1])
}
