package prover

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// GonumLinearSolver implements LinearSolver on top of gonum's simplex
// solver: the fuzzy semantics only needs a feasibility check, so the
// objective is the zero vector and a returned lp.ErrInfeasible is the
// fuzzy contradiction signal.
type GonumLinearSolver struct{}

func NewGonumLinearSolver() *GonumLinearSolver { return &GonumLinearSolver{} }

// Feasible rewrites each "sum(coef*var) <= bound" row into standard-form
// equality by adding one slack variable, adds one more equality row per
// variable clamping it to <= 1 via its own slack, and asks simplex for any
// feasible point under the implicit x >= 0 bound.
func (GonumLinearSolver) Feasible(constraints []LinearConstraint) (bool, error) {
	names := collectVarNames(constraints)
	n := len(names)
	index := make(map[string]int, n)
	for i, name := range names {
		index[name] = i
	}

	numIneqSlack := len(constraints)
	numBoundSlack := n
	totalVars := n + numIneqSlack + numBoundSlack
	totalRows := numIneqSlack + numBoundSlack

	data := make([]float64, totalRows*totalVars)
	b := make([]float64, totalRows)
	row := func(r, c int) int { return r*totalVars + c }

	for i, c := range constraints {
		for name, coef := range c.Coeffs {
			data[row(i, index[name])] = coef
		}
		data[row(i, n+i)] = 1 // inequality slack
		b[i] = c.Bound
	}
	for i := 0; i < n; i++ {
		r := numIneqSlack + i
		data[row(r, i)] = 1
		data[row(r, n+numIneqSlack+i)] = 1 // bound slack
		b[r] = 1
	}

	A := mat.NewDense(totalRows, totalVars, data)
	c := make([]float64, totalVars) // zero objective: feasibility only

	_, _, err := lp.Simplex(c, A, b, 0, nil)
	if err == lp.ErrInfeasible {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func collectVarNames(constraints []LinearConstraint) []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range constraints {
		for name := range c.Coeffs {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}
