package circuit

// InteractionFunc decides which gate(s) a swap network emits when it brings
// two qubits adjacent. p and q are the original indices of the qubits in the
// initial ordering (before any swapping); a and b are the physical qubits the
// pair currently occupies. The returned operations are inserted at that point
// of the schedule; an empty result means the pair carries no interaction.
type InteractionFunc func(p, q int, a, b Qubit) []Operation

// SwapNetworkFunc is the contract of the external swap-network primitive.
//
// An implementation must bring every pair of qubits adjacent exactly once via
// nearest-neighbor swaps, invoking interact at each adjacency and inserting
// the swap gates in between. With fermionic=true the swaps are fermionic,
// tracking anti-commutation sign corrections as modes move past each other.
// offset shifts the parity of the adjacent-pair scanning schedule, which is
// the correct phase after the caller has reversed the qubit order once.
//
// The scheduling algorithm itself is out of scope for this module; any
// implementation honoring this contract can drive the ansatz.
type SwapNetworkFunc func(qubits []Qubit, interact InteractionFunc, fermionic, offset bool) []Operation
