package ansatz

import (
	"math"

	"github.com/katalvlaran/qansatz/circuit"
	"github.com/katalvlaran/qansatz/lattice"
	"github.com/katalvlaran/qansatz/symbol"
)

// Hubbard is a 2D Fermi-Hubbard ansatz based on the fermionic swap-network
// Trotter step. Each iteration carries up to 3 parameters: one for the
// horizontal hopping terms, one for the vertical hopping terms, and one for
// the on-site interaction. Immutable once constructed; all methods are pure.
type Hubbard struct {
	lat           lattice.Lattice
	tunneling     float64
	coulomb       float64
	iterations    int
	evolutionTime float64
	qubits        []circuit.Qubit
	swapNetwork   circuit.SwapNetworkFunc
}

// New validates cfg and assembles the ansatz.
//
// Contracts:
//   - XDim, YDim, Iterations must be positive.
//   - cfg.Qubits, when non-nil, must hold exactly 2·XDim·YDim qubits; it is
//     copied, never retained.
//   - cfg.SwapNetwork must be non-nil.
//   - AdiabaticEvolutionTime of 0 defaults to 0.1·|Coulomb|·Iterations.
//
// Errors: ErrNonPositiveIter, ErrQubitCount, ErrNilSwapNetwork,
// lattice.ErrNonPositiveDim.
// Complexity: O(n) in the register size.
func New(cfg Config) (*Hubbard, error) {
	lat, err := lattice.New(cfg.XDim, cfg.YDim, cfg.Periodic)
	if err != nil {
		return nil, err
	}
	if cfg.Iterations <= 0 {
		return nil, ErrNonPositiveIter
	}
	if cfg.SwapNetwork == nil {
		return nil, ErrNilSwapNetwork
	}

	// Reject register mismatches here, not during circuit assembly.
	qubits := cfg.Qubits
	if qubits == nil {
		qubits = circuit.Line(lat.Qubits())
	} else {
		if len(qubits) != lat.Qubits() {
			return nil, ErrQubitCount
		}
		qubits = append([]circuit.Qubit(nil), qubits...)
	}

	evolutionTime := cfg.AdiabaticEvolutionTime
	if evolutionTime == 0 {
		evolutionTime = 0.1 * math.Abs(cfg.Coulomb) * float64(cfg.Iterations)
	}

	return &Hubbard{
		lat:           lat,
		tunneling:     cfg.Tunneling,
		coulomb:       cfg.Coulomb,
		iterations:    cfg.Iterations,
		evolutionTime: evolutionTime,
		qubits:        qubits,
		swapNetwork:   cfg.SwapNetwork,
	}, nil
}

// Lattice returns the underlying lattice geometry.
func (h *Hubbard) Lattice() lattice.Lattice {
	return h.lat
}

// AdiabaticEvolutionTime returns the time budget A of the initial-parameter
// heuristic (after defaulting).
func (h *Hubbard) AdiabaticEvolutionTime() float64 {
	return h.evolutionTime
}

// Qubits returns a copy of the ansatz register.
// Complexity: O(n).
func (h *Hubbard) Qubits() []circuit.Qubit {
	return append([]circuit.Qubit(nil), h.qubits...)
}

// Params returns the symbolic parameters of the ansatz in canonical order:
// for each iteration i, Th(i) iff x_dim > 1, Tv(i) iff y_dim > 1, then V(i).
// A 1-wide dimension has no edges in that direction, so its hopping
// parameter is omitted. Every call returns a fresh slice in the same order;
// ParamBounds and DefaultInitialParams traverse this exact sequence.
// Complexity: O(iterations).
func (h *Hubbard) Params() []symbol.Symbol {
	params := make([]symbol.Symbol, 0, 3*h.iterations)
	for i := 0; i < h.iterations; i++ {
		if h.lat.XDim > 1 {
			params = append(params, symbol.New(LetterHorizontal, i))
		}
		if h.lat.YDim > 1 {
			params = append(params, symbol.New(LetterVertical, i))
		}
		params = append(params, symbol.New(LetterInteraction, i))
	}

	return params
}

// ParamBounds returns per-parameter (lower, upper) bounds, positionally
// aligned with Params: (−1, +1) for interaction parameters, (−2, +2) for
// hopping parameters.
// Complexity: O(iterations).
func (h *Hubbard) ParamBounds() [][2]float64 {
	params := h.Params()
	bounds := make([][2]float64, len(params))
	for idx, p := range params {
		s := 2.0
		if p.Letter == LetterInteraction {
			s = 1.0
		}
		bounds[idx] = [2]float64{-s, s}
	}

	return bounds
}

// Operations produces the gate sequence of the ansatz circuit over the given
// register: per iteration, a forward swap-network pass, then a reverse-order
// pass over the reversed qubit ordering with the offset scanning parity. The
// two passes make each iteration a palindrome of gate layers. The caller's
// slice is never mutated; the construction is deterministic.
// Complexity: O(iterations) swap-network invocations.
func (h *Hubbard) Operations(qubits []circuit.Qubit) []circuit.Operation {
	// Local working copy; reversals must not leak to the caller.
	local := append([]circuit.Qubit(nil), qubits...)

	var ops []circuit.Operation
	for i := 0; i < h.iterations; i++ {
		// Apply one- and two-body interactions with a swap network that
		// reverses the order of the modes.
		ops = append(ops, h.swapNetwork(local, h.interactions(i), true, false)...)
		reverse(local)

		// Apply them again in reversed term order so that the entire
		// iteration is time-symmetric.
		ops = append(ops, h.swapNetwork(local, h.interactionsReversed(i), true, true)...)
		reverse(local)
	}

	return ops
}

// interactions builds the forward interaction callback for iteration i:
// horizontal hop, vertical hop, then on-site interaction.
func (h *Hubbard) interactions(i int) circuit.InteractionFunc {
	th := symbol.New(LetterHorizontal, i)
	tv := symbol.New(LetterVertical, i)
	v := symbol.New(LetterInteraction, i)

	return func(p, q int, a, b circuit.Qubit) []circuit.Operation {
		var ops []circuit.Operation
		if h.lat.IsHorizontalEdge(p, q) {
			ops = append(ops, hop(symbol.Neg(th), a, b))
		}
		if h.lat.IsVerticalEdge(p, q) {
			ops = append(ops, hop(symbol.Neg(tv), a, b))
		}
		if h.lat.IsSameSiteOppositeSpin(p, q) {
			ops = append(ops, interaction(symbol.Pos(v), a, b))
		}

		return ops
	}
}

// interactionsReversed builds the second-pass callback for iteration i,
// emitting the same terms in the opposite order: on-site interaction,
// vertical hop, then horizontal hop.
func (h *Hubbard) interactionsReversed(i int) circuit.InteractionFunc {
	th := symbol.New(LetterHorizontal, i)
	tv := symbol.New(LetterVertical, i)
	v := symbol.New(LetterInteraction, i)

	return func(p, q int, a, b circuit.Qubit) []circuit.Operation {
		var ops []circuit.Operation
		if h.lat.IsSameSiteOppositeSpin(p, q) {
			ops = append(ops, interaction(symbol.Pos(v), a, b))
		}
		if h.lat.IsVerticalEdge(p, q) {
			ops = append(ops, hop(symbol.Neg(tv), a, b))
		}
		if h.lat.IsHorizontalEdge(p, q) {
			ops = append(ops, hop(symbol.Neg(th), a, b))
		}

		return ops
	}
}

// DefaultInitialParams approximates evolution by H(t) = T + (t/A)·V.
//
// The parameters are set so that the ansatz circuit consists of a sequence
// of second-order Trotter steps approximating the dynamics of the
// time-dependent Hamiltonian H(t) = T + (t/A)·V, where T is the one-body
// term and V is the two-body term, and t ranges from 0 to
// A = AdiabaticEvolutionTime. The total time A is split into Iterations
// segments; each Trotter step simulates H(t) for one segment, with t taken
// at the segment midpoint. This choice is motivated by state preparation
// via adiabatic evolution.
//
// scaleFactors are the per-parameter divisors supplied by the consuming
// framework, positionally aligned with Params; nil means all ones.
//
// Errors: ErrScaleFactorCount when scaleFactors is non-nil and misaligned.
// Complexity: O(iterations).
func (h *Hubbard) DefaultInitialParams(scaleFactors []float64) ([]float64, error) {
	params := h.Params()
	if scaleFactors == nil {
		scaleFactors = make([]float64, len(params))
		for idx := range scaleFactors {
			scaleFactors[idx] = 1
		}
	}
	if len(scaleFactors) != len(params) {
		return nil, ErrScaleFactorCount
	}

	stepTime := h.evolutionTime / float64(h.iterations)

	values := make([]float64, len(params))
	for idx, p := range params {
		switch p.Letter {
		case LetterHorizontal, LetterVertical:
			values[idx] = CanonicalizeExponent(
				-h.tunneling*stepTime/math.Pi, 4) / scaleFactors[idx]
		case LetterInteraction:
			// Use the midpoint of the time segment.
			i := p.Subscripts[0]
			interpolationProgress := 0.5 * float64(2*i+1) / float64(h.iterations)
			values[idx] = CanonicalizeExponent(
				-0.5*h.coulomb*interpolationProgress*stepTime/math.Pi, 2) / scaleFactors[idx]
		}
	}

	return values, nil
}

// hop builds a hopping-gate operation on (a, b).
func hop(exp symbol.Term, a, b circuit.Qubit) circuit.Operation {
	return circuit.Operation{Kind: circuit.HopGate, Exponent: exp, Targets: [2]circuit.Qubit{a, b}}
}

// interaction builds an interaction-gate operation on (a, b).
func interaction(exp symbol.Term, a, b circuit.Qubit) circuit.Operation {
	return circuit.Operation{Kind: circuit.InteractionGate, Exponent: exp, Targets: [2]circuit.Qubit{a, b}}
}

// reverse flips qs in place.
func reverse(qs []circuit.Qubit) {
	for l, r := 0, len(qs)-1; l < r; l, r = l+1, r-1 {
		qs[l], qs[r] = qs[r], qs[l]
	}
}
