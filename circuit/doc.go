// Package circuit defines the minimal circuit vocabulary the ansatz emits:
// qubits, parameterized two-qubit gate kinds, operations, and the contract
// of the external swap-network primitive.
//
// What:
//
//   - Qubit — a linear qubit index.
//   - GateKind — HopGate (ISwap-family, exponent period 4) or
//     InteractionGate (CZ-family, exponent period 2). Gate unitaries are
//     deliberately opaque: an Operation is a placeholder, not a matrix.
//   - Operation — a GateKind applied to an ordered qubit pair with a
//     symbolic exponent.
//   - InteractionFunc / SwapNetworkFunc — the narrow contract through which
//     a swap-network implementation is consumed.
//
// Why:
//
//   - The ansatz layer needs a stable, comparable gate representation to
//     assemble and to test against, while leaving simulation, transpilation
//     and the swap-network scheduling algorithm to external collaborators.
//
// Complexity:
//
//   - All constructors and accessors: O(1); Line: O(n).
package circuit
