// Package automata implements a cellular-automaton engine driven by a
// configurable Neighbourhood and "Bn/Sn" birth/survival rule strings.
//
// What:
//   - ParseRule reads a "B.../S..." grammar into a Rule.
//   - Iterate applies a conjunctive RuleSet synchronously over a domain.
//   - AsyncIterate applies the same predicate but stops at the first cell
//     whose state would change, for callers driving convergence
//     themselves one shuffled pass at a time.
//
// Complexity: Iterate and AsyncIterate are both O(domain size × |N|).
package automata
