/*
File    : algebra-cas/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config carries the engine's iteration caps and search-growth
// limit as a single immutable value rather than as package-level vars, so
// every caller that needs these numbers takes a Config explicitly instead
// of reading a singleton.
package config

// Config bundles every tunable cap the simplifier, isolator, and solver
// consult. Zero value is not meaningful; use Default() or build one
// explicitly.
type Config struct {
	// MaxIterations bounds the simplifier's rewrite fixpoint loop.
	MaxIterations int

	// MaxIterationsExecuteSteps bounds the isolator's transfer fixpoint
	// loop and the isolate+simplify rounds cas.IsolateWith repeats.
	MaxIterationsExecuteSteps int

	// MaxIterationsConvergeSolve bounds the total number of priority-queue
	// pops the equation solver will perform.
	MaxIterationsConvergeSolve int

	// MaxIterationsWithoutImprovement bounds consecutive pops since the
	// solver's best-known distinct-variable count last strictly decreased.
	MaxIterationsWithoutImprovement int

	// LimitRatioNewDistinctVars caps how much a derived equation's
	// distinct-variable count may grow, relative to the equation it was
	// derived from, before the solver discards it.
	LimitRatioNewDistinctVars float64
}

// Default returns the engine's out-of-the-box configuration.
func Default() Config {
	return Config{
		MaxIterations:                    100,
		MaxIterationsExecuteSteps:        100,
		MaxIterationsConvergeSolve:       1000,
		MaxIterationsWithoutImprovement: 100,
		LimitRatioNewDistinctVars:        1.2,
	}
}
