// Package ansatz builds the swap-network Trotter ansatz for the 2D
// Fermi-Hubbard model.
//
// What:
//
//   - Hubbard — the ansatz: symbolic parameters (Th/Tv/V per iteration),
//     parameter bounds, qubit allocation, and the two-pass symmetric
//     operation sequence driven through an injected swap-network primitive.
//   - CanonicalizeExponent — reduction of a real gate exponent into the
//     canonical half-open period interval (−period/2, +period/2].
//   - Ansatz — the interface a variational optimization loop consumes.
//
// Why:
//
//   - Each Trotter iteration applies the Hamiltonian terms twice: a forward
//     swap-network pass, then a reverse-order pass over the reversed qubit
//     ordering. The iteration is a palindrome of gate layers, giving
//     second-order Trotter accuracy.
//   - Default initial parameters follow an adiabatic-state-preparation
//     heuristic: r second-order Trotter steps of H(t) = T + (t/A)·V, each
//     step evaluating the interaction strength at its time-segment midpoint.
//
// Parameters per iteration i:
//
//   - Th(i) — horizontal hopping, present iff x_dim > 1, bounds (−2, +2)
//   - Tv(i) — vertical hopping, present iff y_dim > 1, bounds (−2, +2)
//   - V(i)  — on-site interaction, always present, bounds (−1, +1)
//
// Determinism:
//
//   - For fixed inputs, Params, ParamBounds, Operations and
//     DefaultInitialParams each return identical results on every call, and
//     all traversals share one parameter order.
//
// Complexity:
//
//   - Params/ParamBounds/DefaultInitialParams: O(iterations).
//   - Operations: O(iterations) swap-network invocations; gate count is
//     governed by the injected primitive (O(n²) adjacencies per pass).
//
// Errors:
//
//   - ErrNonPositiveIter: Iterations is zero or negative.
//   - ErrQubitCount: a supplied register does not hold 2·x_dim·y_dim qubits.
//   - ErrNilSwapNetwork: no swap-network primitive was injected.
//   - ErrScaleFactorCount: scale factors misaligned with the parameter list.
//   - lattice.ErrNonPositiveDim: a grid dimension is zero or negative.
package ansatz
