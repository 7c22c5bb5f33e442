package ansatz

import (
	"errors"

	"github.com/katalvlaran/qansatz/circuit"
	"github.com/katalvlaran/qansatz/symbol"
)

// Sentinel errors for ansatz construction and parameter computation.
var (
	// ErrNonPositiveIter indicates Iterations is zero or negative.
	ErrNonPositiveIter = errors.New("ansatz: iterations must be positive")
	// ErrQubitCount indicates a supplied qubit register whose length is not
	// 2*x_dim*y_dim.
	ErrQubitCount = errors.New("ansatz: qubit register length must equal 2*x_dim*y_dim")
	// ErrNilSwapNetwork indicates no swap-network primitive was injected.
	ErrNilSwapNetwork = errors.New("ansatz: swap network must not be nil")
	// ErrScaleFactorCount indicates scale factors not aligned one-to-one
	// with the parameter list.
	ErrScaleFactorCount = errors.New("ansatz: one scale factor required per parameter")
)

// Parameter letter tags. The subscript is always the Trotter iteration index.
const (
	// LetterHorizontal tags the horizontal hopping parameter.
	LetterHorizontal = "Th"
	// LetterVertical tags the vertical hopping parameter.
	LetterVertical = "Tv"
	// LetterInteraction tags the on-site interaction parameter.
	LetterInteraction = "V"
)

// Config assembles a Hubbard ansatz.
//
// Fields:
//   - XDim, YDim     — lattice dimensions; both must be positive.
//   - Tunneling      — one-body hopping coupling t.
//   - Coulomb        — two-body on-site coupling U.
//   - Periodic       — toroidal boundary conditions when true.
//   - Iterations     — number of Trotter steps; must be positive. The
//     parameter count grows linearly with this value.
//   - AdiabaticEvolutionTime — time budget A of the initial-parameter
//     heuristic; 0 means the default 0.1·|Coulomb|·Iterations.
//   - Qubits         — optional explicit register; nil means the default
//     linear allocation circuit.Line(2·XDim·YDim). When supplied, its
//     length must be exactly 2·XDim·YDim.
//   - SwapNetwork    — the external swap-network primitive; required.
//
// Example:
//
//	h, err := ansatz.New(ansatz.Config{
//	  XDim: 2, YDim: 2,
//	  Tunneling: 1, Coulomb: 4,
//	  Periodic: true, Iterations: 2,
//	  SwapNetwork: mynet.SwapNetwork,
//	})
type Config struct {
	XDim, YDim             int
	Tunneling              float64
	Coulomb                float64
	Periodic               bool
	Iterations             int
	AdiabaticEvolutionTime float64
	Qubits                 []circuit.Qubit
	SwapNetwork            circuit.SwapNetworkFunc
}

// Ansatz is the surface a variational optimization loop consumes: the
// parameter stream, its bounds, the qubit register, the circuit operations,
// and the heuristic starting point. *Hubbard satisfies it.
type Ansatz interface {
	// Params returns the symbolic parameters in their canonical order.
	Params() []symbol.Symbol
	// ParamBounds returns per-parameter (lower, upper) bounds, positionally
	// aligned with Params.
	ParamBounds() [][2]float64
	// Qubits returns the qubit register the ansatz was built over.
	Qubits() []circuit.Qubit
	// Operations produces the full gate sequence over the given register.
	Operations(qubits []circuit.Qubit) []circuit.Operation
	// DefaultInitialParams returns heuristic starting values, positionally
	// aligned with Params.
	DefaultInitialParams(scaleFactors []float64) ([]float64, error)
}
