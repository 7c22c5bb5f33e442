package lattice

// Lattice describes an x_dim × y_dim site grid with two spin orbitals per
// site. It is an immutable value; all methods are pure.
//
// Site numbering is row-major: site = y*XDim + x. Qubit numbering stacks the
// two spin sectors: qubit i < Sites() is site i spin-up, qubit i ≥ Sites()
// is site i−Sites() spin-down.
type Lattice struct {
	// XDim and YDim are the grid dimensions (columns and rows).
	XDim, YDim int
	// Periodic selects toroidal boundary conditions when true, open
	// boundaries when false.
	Periodic bool
}

// New constructs a Lattice, rejecting non-positive dimensions with
// ErrNonPositiveDim.
// Complexity: O(1).
func New(xDim, yDim int, periodic bool) (Lattice, error) {
	if xDim <= 0 || yDim <= 0 {
		return Lattice{}, ErrNonPositiveDim
	}

	return Lattice{XDim: xDim, YDim: yDim, Periodic: periodic}, nil
}

// Sites returns the number of physical sites, XDim·YDim.
// Complexity: O(1).
func (l Lattice) Sites() int {
	return l.XDim * l.YDim
}

// Qubits returns the number of spin orbitals, 2·XDim·YDim.
// Complexity: O(1).
func (l Lattice) Qubits() int {
	return 2 * l.Sites()
}

// RightNeighbor returns the site immediately to the right of site in the
// same row. At the row's right edge it wraps to the row's start when
// Periodic, otherwise reports no neighbor. A 1-wide grid never has a right
// neighbor (wrapping would alias the site itself).
// Complexity: O(1).
func (l Lattice) RightNeighbor(site int) (int, bool) {
	if l.XDim == 1 {
		return 0, false
	}
	if (site+1)%l.XDim == 0 {
		if l.Periodic {
			return site + 1 - l.XDim, true
		}

		return 0, false
	}

	return site + 1, true
}

// BottomNeighbor returns the site directly below site, in the next row.
// At the bottom row it wraps to the top when Periodic, otherwise reports no
// neighbor. A 1-tall grid never has a bottom neighbor.
// Complexity: O(1).
func (l Lattice) BottomNeighbor(site int) (int, bool) {
	if l.YDim == 1 {
		return 0, false
	}
	if site+l.XDim+1 > l.Sites() {
		if l.Periodic {
			return site + l.XDim - l.Sites(), true
		}

		return 0, false
	}

	return site + l.XDim, true
}

// IsHorizontalEdge reports whether qubits p and q are horizontally adjacent
// sites within the same spin sector. Pairs that straddle the two sectors are
// never horizontal edges; a pair entirely inside the spin-down sector is
// folded into the site range before the adjacency check.
// Complexity: O(1).
func (l Lattice) IsHorizontalEdge(p, q int) bool {
	p, q, ok := l.foldSector(p, q)
	if !ok {
		return false
	}
	if r, ok := l.RightNeighbor(p); ok && r == q {
		return true
	}
	if r, ok := l.RightNeighbor(q); ok && r == p {
		return true
	}

	return false
}

// IsVerticalEdge reports whether qubits p and q are vertically adjacent
// sites within the same spin sector. Same sector-folding rules as
// IsHorizontalEdge.
// Complexity: O(1).
func (l Lattice) IsVerticalEdge(p, q int) bool {
	p, q, ok := l.foldSector(p, q)
	if !ok {
		return false
	}
	if b, ok := l.BottomNeighbor(p); ok && b == q {
		return true
	}
	if b, ok := l.BottomNeighbor(q); ok && b == p {
		return true
	}

	return false
}

// IsSameSiteOppositeSpin reports whether qubits p and q are the two spin
// orbitals of one physical site, i.e. |p−q| == Sites().
// Complexity: O(1).
func (l Lattice) IsSameSiteOppositeSpin(p, q int) bool {
	d := p - q
	if d < 0 {
		d = -d
	}

	return d == l.Sites()
}

// foldSector maps a qubit pair into the site index range when both qubits
// share a spin sector. ok=false means the pair straddles the sectors and
// cannot be a spatial edge.
func (l Lattice) foldSector(p, q int) (int, int, bool) {
	n := l.Sites()
	if (p < n) != (q < n) {
		return 0, 0, false
	}
	if p >= n && q >= n {
		p -= n
		q -= n
	}

	return p, q, true
}
