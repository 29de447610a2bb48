// Package solver is the geometry solver: a Cassowary style incremental
// simplex solver for linear equalities and inequalities with priorities,
// and LayoutSolver, which turns a constraint set over registry elements
// into frames.
//
// Required constraints must hold. Every other constraint contributes its
// error, weighted by its strength, to an objective the solver minimizes, so
// a higher-priority constraint is satisfied in preference to a lower one
// when both cannot hold.
package solver
