package prover

// Semantics is the contradiction oracle every logic provides. It decides how many truth values the logic has, how to build the
// reductio of a conclusion, how to negate a formula under sign, and
// whether two formulas on a path are contradictory.
type Semantics interface {
	NumberOfTruthValues() int
	ReductioAdAbsurdum(conclusion *Formula) *Formula
	Negate(p *Formula) *Formula
	AreFormulasContradictory(path *ProofTreePath, p, q *Formula) bool
}

// --- Binary (classical, two-valued) semantics ---

// BinarySemantics implements classical negation-based contradiction: a pair
// {α, ¬α} is contradictory for atomic α, ◇-of-atomic, □-of-atomic, ≡-of-
// atomics, or equalities, with matching worlds and predicate-argument
// tuples modulo path equalities.
type BinarySemantics struct{}

func (BinarySemantics) NumberOfTruthValues() int { return 2 }

func (BinarySemantics) ReductioAdAbsurdum(conclusion *Formula) *Formula {
	return Non(conclusion)
}

func (BinarySemantics) Negate(p *Formula) *Formula {
	if p.Kind == KindNon {
		return p.Operand
	}
	return Non(p)
}

func (b BinarySemantics) AreFormulasContradictory(path *ProofTreePath, p, q *Formula) bool {
	return binaryContradiction(path, p, q) || binaryContradiction(path, q, p)
}

// binaryContradiction checks whether q is the classical negation of p
// (p = ¬q, up to modulo-equality argument matching), restricted to the
// shapes isContradictionEligible allows.
func binaryContradiction(path *ProofTreePath, p, q *Formula) bool {
	if p.Kind != KindNon {
		return false
	}
	inner := p.Operand
	if p.GetPossibleWorld() != q.GetPossibleWorld() {
		return false
	}
	if !isContradictionEligible(inner) || !isContradictionEligible(q) {
		return false
	}
	return formulaMatchesModuloEquality(path, inner, q)
}

func isContradictionEligible(f *Formula) bool {
	switch f.Kind {
	case KindAtomic, KindEquals:
		return true
	case KindPossible, KindNecessary:
		return f.Operand.Kind == KindAtomic
	case KindBiImply:
		return f.Left.Kind == KindAtomic && f.Right.Kind == KindAtomic
	}
	return false
}

// formulaMatchesModuloEquality compares two contradiction-eligible
// formulas, treating predicate arguments as equal when the path records an
// explicit Equals between their bound objects.
func formulaMatchesModuloEquality(path *ProofTreePath, a, b *Formula) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindAtomic:
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !argsEquivalent(path, a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case KindEquals:
		return argsEquivalent(path, a.ArgX, b.ArgX) && argsEquivalent(path, a.ArgY, b.ArgY)
	case KindPossible, KindNecessary:
		return formulaMatchesModuloEquality(path, a.Operand, b.Operand)
	case KindBiImply:
		return formulaMatchesModuloEquality(path, a.Left, b.Left) && formulaMatchesModuloEquality(path, a.Right, b.Right)
	}
	return false
}

func argsEquivalent(path *ProofTreePath, a, b PredicateArgument) bool {
	if a.Equal(b) {
		return true
	}
	nameA, nameB := equalityArgName(a), equalityArgName(b)
	if nameA == nameB {
		return true
	}
	if path == nil {
		return false
	}
	for _, partner := range path.EqualityPartnersOf(nameA) {
		if partner == nameB {
			return true
		}
	}
	return false
}
