// Package symbol provides symbolic circuit parameters: a letter plus integer
// subscripts, identified and hashed by that pair, and substitutable with a
// concrete value at binding time.
//
// What:
//
//   - Symbol — an opaque parameter identity such as Th(0) or V(2), rendered
//     canonically as "Th_0" / "V_2".
//   - Term — a linear placeholder Coefficient·Symbol used as a gate exponent
//     (e.g. −Th(0) for a hopping gate).
//   - Binding — a map from canonical keys to concrete values; Term.Resolve
//     performs the late substitution.
//
// Why:
//
//   - Variational ansatze are built once with symbolic exponents and bound
//     many times during optimization; the identity (letter, subscripts) must
//     be stable across both traversals.
//
// Complexity:
//
//   - Key/String: O(s) in the number of subscripts; Resolve: O(1) lookup.
//
// Errors:
//
//   - ErrUnboundSymbol: a Binding lacks a value for the resolved Symbol.
package symbol
