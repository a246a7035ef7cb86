package prover

import "fmt"

// LinearSolver abstracts the external LP solver the fuzzy semantics
// delegates feasibility checks to (see linearsolver_gonum.go).
type LinearSolver interface {
	// Feasible reports whether the given linear constraints, each of the
	// form sum(coef_i * var_i) <= bound, have a solution with every
	// variable confined to [0, 1].
	Feasible(constraints []LinearConstraint) (bool, error)
}

// LinearConstraint is one row of a linear program: Coeffs[name] is the
// coefficient of variable name, and the row reads sum <= Bound (an Exact
// row encodes equality by supplying it twice with Bound and -Bound).
type LinearConstraint struct {
	Coeffs map[string]float64
	Bound  float64
}

// FuzzySemantics is the Łukasiewicz fuzzy tableau's contradiction oracle: a
// branch is closed when the fuzzy tags accumulated on signed atoms make the
// induced linear program infeasible over [0,1]-valued truth degrees.
type FuzzySemantics struct {
	Solver  LinearSolver
	nextTag *int
}

func NewFuzzySemantics(solver LinearSolver) *FuzzySemantics {
	n := 0
	return &FuzzySemantics{Solver: solver, nextTag: &n}
}

func (f *FuzzySemantics) NumberOfTruthValues() int { return -1 } // continuous

// ReductioAdAbsurdum negates the conclusion by asserting it false (sign
// minus) with a fresh initial degree-of-truth tag.
func (f *FuzzySemantics) ReductioAdAbsurdum(conclusion *Formula) *Formula {
	return conclusion.WithSign(SignMinus).WithExtraFuzzyTag(f.NextTag())
}

func (f *FuzzySemantics) Negate(p *Formula) *Formula {
	return p.WithSign(p.Extras.Sign.Flip())
}

// NextTag mints a fresh fuzzy tag name, used whenever a rule introduces a
// new degree-of-truth variable (e.g. instantiating a fuzzy quantifier).
func (f *FuzzySemantics) NextTag() FuzzyTag {
	id := *f.nextTag
	*f.nextTag++
	return FuzzyTag(fmt.Sprintf("t%d", id))
}

// AreFormulasContradictory builds the constraint set implied by every
// signed, tagged atom on the path, whatever its predicate, and asks
// the LP solver whether it is feasible. If the solver is unavailable this
// degrades to the literal +/- base case other semantics use.
func (f *FuzzySemantics) AreFormulasContradictory(path *ProofTreePath, p, q *Formula) bool {
	if coreMatchesIgnoringSign(path, p, q) {
		if (p.Extras.Sign == SignPlus && q.Extras.Sign == SignMinus) ||
			(p.Extras.Sign == SignMinus && q.Extras.Sign == SignPlus) {
			return true
		}
	}

	if f.Solver == nil {
		return false
	}
	constraints := fuzzyConstraintsFor(path)
	if len(constraints) == 0 {
		return false
	}
	feasible, err := f.Solver.Feasible(constraints)
	if err != nil {
		return false
	}
	return !feasible
}

// fuzzyConstraintsFor turns every signed, fuzzy-tagged atomic formula on
// the path into one LP row: signed plus means the tagged degree must be >=
// 0.5 (true), signed minus means < 0.5 (false), each expressed as a single
// coefficient-1 row against the tag variable.
func fuzzyConstraintsFor(path *ProofTreePath) []LinearConstraint {
	var out []LinearConstraint
	for _, n := range path.Nodes {
		formula := n.Formula
		if formula.Kind != KindAtomic || len(formula.Extras.Tags) == 0 {
			continue
		}
		for _, tag := range formula.Extras.Tags {
			switch formula.Extras.Sign {
			case SignPlus:
				out = append(out, LinearConstraint{Coeffs: map[string]float64{string(tag): -1}, Bound: -0.5})
			case SignMinus:
				out = append(out, LinearConstraint{Coeffs: map[string]float64{string(tag): 1}, Bound: 0.499999})
			}
		}
	}
	return out
}
