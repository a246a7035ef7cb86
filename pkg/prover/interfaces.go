package prover

// SATSolver abstracts the external CDCL solver the SAT-fallback
// countermodel extractor uses to decide the CNF encoding of a problem's
// premises and negated conclusion (see satsolver_gini.go).
type SATSolver interface {
	// Solve returns (true, assignment) if clauses (in DIMACS-style CNF:
	// each inner slice a disjunction of signed integer literals, variable
	// ids starting at 1) are satisfiable, or (false, nil) otherwise.
	Solve(clauses [][]int, numVars int) (bool, map[int]bool)
}

// CNFTranslator converts a boolean Formula (propositional fragment only:
// And/Or/Imply/BiImply/Non/Atomic) into CNF clauses over a variable
// numbering it owns, via Tseitin's construction so the translation stays
// linear in formula size (see cnf.go).
type CNFTranslator interface {
	Translate(f *Formula) (clauses [][]int, varOf map[string]int, numVars int)
}

// Parser turns problem source text into a Problem. No concrete
// implementation ships in this package: the textual grammar for premises,
// logic selection and connective notation is an external, presentation-
// layer concern this engine does not own.
type Parser interface {
	Parse(source string, catalog *LogicCatalog) (*Problem, error)
}
