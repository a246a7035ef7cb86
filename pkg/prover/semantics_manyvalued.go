package prover

// ManyValuedSemantics implements the sign-based contradiction oracle shared
// by the 3-valued (Kleene K3, Łukasiewicz L3, Priest LP, RMingle3) and
// 4-valued (gap/glut FDE, K4/N4) families. The base case —
// the same literal signed + and signed − at the same world — is always
// contradictory. ExtraPairSign additionally makes {φ, ¬φ} both carrying
// that one sign contradictory, which is how a variant opts out of gluts
// (K3/Ł3 reject +φ,+¬φ) or gaps (LP/RMingle3 reject −φ,−¬φ); SignNone means
// neither gluts nor gaps are contradictions, the FDE/K4N4 case.
type ManyValuedSemantics struct {
	NumValues     int
	ExtraPairSign Sign
}

func (m ManyValuedSemantics) NumberOfTruthValues() int { return m.NumValues }

func (m ManyValuedSemantics) ReductioAdAbsurdum(conclusion *Formula) *Formula {
	return conclusion.WithSign(SignMinus)
}

func (m ManyValuedSemantics) Negate(p *Formula) *Formula {
	return p.WithSign(p.Extras.Sign.Flip())
}

func (m ManyValuedSemantics) AreFormulasContradictory(path *ProofTreePath, p, q *Formula) bool {
	if coreMatchesIgnoringSign(path, p, q) {
		if (p.Extras.Sign == SignPlus && q.Extras.Sign == SignMinus) ||
			(p.Extras.Sign == SignMinus && q.Extras.Sign == SignPlus) {
			return true
		}
	}

	if m.ExtraPairSign == SignNone {
		return false
	}
	return extraPairContradiction(path, p, q, m.ExtraPairSign) || extraPairContradiction(path, q, p, m.ExtraPairSign)
}

func coreMatchesIgnoringSign(path *ProofTreePath, p, q *Formula) bool {
	if p.GetPossibleWorld() != q.GetPossibleWorld() {
		return false
	}
	if !isContradictionEligible(p) || !isContradictionEligible(q) {
		return false
	}
	return formulaMatchesModuloEquality(path, p, q)
}

// extraPairContradiction checks whether p is φ and q is ¬φ, both carrying
// the same sign, at the same world.
func extraPairContradiction(path *ProofTreePath, p, q *Formula, sign Sign) bool {
	if q.Kind != KindNon {
		return false
	}
	if p.Extras.Sign != sign || q.Extras.Sign != sign {
		return false
	}
	if p.GetPossibleWorld() != q.GetPossibleWorld() {
		return false
	}
	if !isContradictionEligible(p) || !isContradictionEligible(q.Operand) {
		return false
	}
	return formulaMatchesModuloEquality(path, p, q.Operand)
}

// KleeneK3Semantics is the strong-Kleene 3-valued logic: gaps (neither true
// nor false) are tolerated, gluts are not.
func KleeneK3Semantics() Semantics { return ManyValuedSemantics{NumValues: 3, ExtraPairSign: SignPlus} }

// LukasiewiczL3Semantics is Łukasiewicz's 3-valued logic; contradiction
// detection coincides with K3's (both reject gluts).
func LukasiewiczL3Semantics() Semantics { return ManyValuedSemantics{NumValues: 3, ExtraPairSign: SignPlus} }

// PriestLPSemantics is Priest's Logic of Paradox: gluts (both true and
// false) are tolerated, gaps are not.
func PriestLPSemantics() Semantics { return ManyValuedSemantics{NumValues: 3, ExtraPairSign: SignMinus} }

// RMingle3Semantics is RM3, the relevant-logic extension of LP; it shares
// LP's glut-tolerant, gap-intolerant contradiction rule.
func RMingle3Semantics() Semantics { return ManyValuedSemantics{NumValues: 3, ExtraPairSign: SignMinus} }

// FirstDegreeEntailmentSemantics is the 4-valued gap-and-glut logic
// (K4/N4): neither gaps nor gluts are contradictions; only the base {+,−}
// pair is.
func FirstDegreeEntailmentSemantics() Semantics {
	return ManyValuedSemantics{NumValues: 4, ExtraPairSign: SignNone}
}
