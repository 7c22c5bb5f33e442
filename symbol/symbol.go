package symbol

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnboundSymbol indicates a Binding that carries no value for a Symbol.
var ErrUnboundSymbol = errors.New("symbol: binding has no value for symbol")

// Symbol is a symbolic parameter identified by a letter tag and a tuple of
// integer subscripts. Two Symbols are the same parameter iff their letters
// and subscript tuples match.
type Symbol struct {
	// Letter is the parameter tag, e.g. "Th", "Tv", "V".
	Letter string
	// Subscripts distinguishes parameters sharing a letter, e.g. the
	// Trotter iteration index.
	Subscripts []int
}

// New constructs a Symbol from a letter and its subscripts.
// Complexity: O(s) for s subscripts.
func New(letter string, subscripts ...int) Symbol {
	subs := make([]int, len(subscripts))
	copy(subs, subscripts)

	return Symbol{Letter: letter, Subscripts: subs}
}

// Key renders the canonical identity: the letter and subscripts joined by
// underscores, e.g. "Th_0". Suitable as a map key and stable across calls.
// Complexity: O(s).
func (s Symbol) Key() string {
	var sb strings.Builder
	sb.WriteString(s.Letter)
	for _, sub := range s.Subscripts {
		sb.WriteByte('_')
		sb.WriteString(strconv.Itoa(sub))
	}

	return sb.String()
}

// String returns the canonical rendering; identical to Key.
func (s Symbol) String() string {
	return s.Key()
}

// Equal reports whether s and other denote the same parameter.
// Complexity: O(s).
func (s Symbol) Equal(other Symbol) bool {
	if s.Letter != other.Letter || len(s.Subscripts) != len(other.Subscripts) {
		return false
	}
	for i, sub := range s.Subscripts {
		if other.Subscripts[i] != sub {
			return false
		}
	}

	return true
}

// Binding maps canonical Symbol keys to concrete parameter values.
type Binding map[string]float64

// Term is a linear symbolic exponent: Coefficient·Symbol. It is the
// placeholder form a parameterized gate carries until binding time.
type Term struct {
	Coefficient float64
	Symbol      Symbol
}

// Neg returns the term −1·s.
func Neg(s Symbol) Term {
	return Term{Coefficient: -1, Symbol: s}
}

// Pos returns the term +1·s.
func Pos(s Symbol) Term {
	return Term{Coefficient: 1, Symbol: s}
}

// Resolve substitutes the bound value of the term's Symbol and applies the
// coefficient. Returns ErrUnboundSymbol if b lacks the key.
// Complexity: O(1) map lookup (plus O(s) key rendering).
func (t Term) Resolve(b Binding) (float64, error) {
	v, ok := b[t.Symbol.Key()]
	if !ok {
		return 0, ErrUnboundSymbol
	}

	return t.Coefficient * v, nil
}

// String renders the term, e.g. "-Th_0", "V_1", "0.5*V_1".
func (t Term) String() string {
	switch t.Coefficient {
	case 1:
		return t.Symbol.Key()
	case -1:
		return "-" + t.Symbol.Key()
	}

	return strconv.FormatFloat(t.Coefficient, 'g', -1, 64) + "*" + t.Symbol.Key()
}
