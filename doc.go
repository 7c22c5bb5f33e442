// Package qansatz builds variational quantum circuit templates ("ansatze")
// for the 2D Fermi-Hubbard model, based on fermionic swap-network Trotter
// steps.
//
// 🚀 What is qansatz?
//
//	A small, zero-dependency library that brings together:
//		• Lattice geometry: neighbor/edge classification on open or periodic 2D grids
//		• Symbolic parameters: letter+subscript placeholders with late binding
//		• Circuit primitives: qubits, parameterized two-qubit gates, operations
//		• The Hubbard ansatz: two-pass symmetric Trotter steps over a swap network,
//		  with parameter bounds and adiabatic-heuristic initial parameters
//
// ✨ Why choose qansatz?
//
//   - Deterministic – identical inputs always yield identical gate sequences
//   - Side-effect free – pure structural/numeric computation, no shared state
//   - Pure Go – no cgo, no hidden deps
//   - Narrow contracts – the swap-network primitive and the VQE loop stay
//     pluggable behind small function-type and interface contracts
//
// Under the hood, everything is organized under four subpackages:
//
//	lattice/ — site indexing and edge predicates on an x_dim × y_dim grid
//	symbol/  — symbolic parameter identities, terms and bindings
//	circuit/ — qubit, gate and operation types + the swap-network contract
//	ansatz/  — the Hubbard ansatz: parameters, bounds, operations, defaults
//
// Quick ASCII example (2×2 lattice, spin-up sites 0–3, spin-down 4–7):
//
//	    0───1        4───5
//	    │   │        │   │
//	    2───3        6───7
//
//	horizontal edges: 0–1, 2–3; vertical edges: 0–2, 1–3;
//	same-site opposite-spin pairs: 0–4, 1–5, 2–6, 3–7.
//
// Dive into README.md and the per-package examples for full walkthroughs.
//
//	go get github.com/katalvlaran/qansatz
package qansatz
