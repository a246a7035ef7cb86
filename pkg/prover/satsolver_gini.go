package prover

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// gini.Solve's result codes: 1 sat, -1 unsat, 0 undetermined (timeout/no
// limit reached within the solver's internal bound).
const giniSat = 1

// GiniSATSolver implements SATSolver on top of irifrance/gini's CDCL
// engine, used by the SAT-fallback countermodel extractor to decide the
// CNF encoding of a problem's premises and negated conclusion.
type GiniSATSolver struct{}

func NewGiniSATSolver() *GiniSATSolver { return &GiniSATSolver{} }

func (GiniSATSolver) Solve(clauses [][]int, numVars int) (bool, map[int]bool) {
	solver := gini.New()
	for _, clause := range clauses {
		for _, lit := range clause {
			solver.Add(intToLit(lit))
		}
		solver.Add(z.LitNull)
	}

	if solver.Solve() != giniSat {
		return false, nil
	}

	assignment := make(map[int]bool, numVars)
	for v := 1; v <= numVars; v++ {
		assignment[v] = solver.Value(z.Var(v).Pos())
	}
	return true, assignment
}

func intToLit(lit int) z.Lit {
	if lit < 0 {
		return z.Var(-lit).Neg()
	}
	return z.Var(lit).Pos()
}
