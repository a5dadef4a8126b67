// Package revlogic is a reversible Boolean circuit synthesis engine: given a
// truth table that is a bijection on its input words, it produces an
// ordered Scheme of generalized-Toffoli gates (ReverseElements) that
// realizes it.
//
// Two independent synthesizers are available, and can be chained:
//
//   - RM (Reed-Muller): drives the table's RM spectrum toward canonical
//     form row by row (package rmgen).
//   - GT (group-theoretic): repeatedly peels a transposition or a Boolean
//     edge off the table's permutation and emits the gates realizing it
//     (packages permutation, booledge, gt).
//
// The engine package ties both together behind one entry point:
//
//	s, err := engine.Synthesize(table, engine.WithRMMaxWeight(4))
//
// See DESIGN.md for how each package's design decisions were grounded.
package revlogic
