package ansatz

import "math"

// CanonicalizeExponent reduces exponent into the canonical period interval
// (−period/2, +period/2]. Gate exponents are periodic (hop gates with period
// 4, interaction gates with period 2); keeping them in one canonical window
// keeps heuristic initial parameters inside the optimizer's bounds.
//
// The interval is open below and closed above: a value reducing to exactly
// −period/2 is mapped to +period/2.
// Complexity: O(1).
func CanonicalizeExponent(exponent float64, period int) float64 {
	p := float64(period)
	// Shift into [-p/2, +p/2).
	exponent += p / 2
	exponent = math.Mod(exponent, p)
	if exponent < 0 {
		exponent += p
	}
	exponent -= p / 2
	// Prefer (-p/2, +p/2] over [-p/2, +p/2).
	if exponent <= -p/2 {
		exponent += p
	}

	return exponent
}
