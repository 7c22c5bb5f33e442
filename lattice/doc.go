// Package lattice classifies qubit-index pairs on a 2D Hubbard lattice that
// has been folded into a 1D qubit ordering.
//
// What:
//
//   - Lattice wraps an x_dim × y_dim site grid with open or periodic
//     boundary conditions; sites are numbered row-major, 0..Sites()-1.
//   - Each site carries two spin orbitals: qubit index i < Sites() is site i
//     spin-up, index i ≥ Sites() is site i−Sites() spin-down.
//   - RightNeighbor / BottomNeighbor resolve grid adjacency per site.
//   - IsHorizontalEdge / IsVerticalEdge / IsSameSiteOppositeSpin classify a
//     qubit pair (p, q) as a hopping edge or an on-site interaction pair.
//
// Why:
//
//   - Swap-network Trotter circuits bring every qubit pair adjacent exactly
//     once; the interaction callback must decide per pair which Hamiltonian
//     term (if any) the pair carries. That decision is exactly these
//     predicates.
//
// Complexity:
//
//   - All operations: O(1) time, O(1) memory.
//
// Invariants:
//
//   - For any distinct pair (p, q), at most one of the three predicates
//     holds: spatial edges require a shared spin sector and distinct sites,
//     while same-site pairs differ only in spin.
//   - With Periodic=true, neighbor lookups always succeed (except for a
//     dimension of width 1, which has no edges in that direction).
//
// Errors:
//
//   - ErrNonPositiveDim: a grid dimension is zero or negative.
package lattice
