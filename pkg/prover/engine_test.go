package prover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModusPonensIsProved(t *testing.T) {
	r := require.New(t)

	p := Atomic("p")
	q := Atomic("q")
	problem := NewProblem("modus-ponens", NewPropositionalLogic(), []*Formula{p, Imply(p, q)}, q)

	engine := NewEngine(DefaultResourceBounds())
	result, err := engine.Prove(problem)
	r.NoError(err)
	r.Equal(VerdictProved, result.Verdict)
	r.Nil(result.Countermodel)
}

func TestAffirmingTheConsequentIsRefutedWithCountermodel(t *testing.T) {
	r := require.New(t)

	p := Atomic("p")
	q := Atomic("q")
	problem := NewProblem("affirming-the-consequent", NewPropositionalLogic(), []*Formula{q, Imply(p, q)}, p)

	engine := NewEngine(DefaultResourceBounds())
	result, err := engine.Prove(problem)
	r.NoError(err)
	r.Equal(VerdictRefuted, result.Verdict)
	r.NotNil(result.Countermodel)
}

func TestKAxiomIsProved(t *testing.T) {
	r := require.New(t)

	p := Atomic("p")
	q := Atomic("q")
	problem := NewProblem("k-axiom", NewModalK(),
		[]*Formula{Necessary(Imply(p, q)), Necessary(p)}, Necessary(q))

	engine := NewEngine(DefaultResourceBounds())
	result, err := engine.Prove(problem)
	r.NoError(err)
	r.Equal(VerdictProved, result.Verdict)
}

// The T axiom (□p -> p) does not hold in K: a model need not make the
// actual world access itself, so □p can be true while p fails at the
// actual world.
func TestTAxiomFailsInK(t *testing.T) {
	r := require.New(t)

	p := Atomic("p")
	problem := NewProblem("t-axiom-fails-in-k", NewModalK(), []*Formula{Necessary(p)}, p)

	engine := NewEngine(DefaultResourceBounds())
	result, err := engine.Prove(problem)
	r.NoError(err)
	r.Equal(VerdictRefuted, result.Verdict)
}

// The T axiom does hold once the frame is forced reflexive.
func TestTAxiomHoldsInT(t *testing.T) {
	r := require.New(t)

	p := Atomic("p")
	problem := NewProblem("t-axiom-holds-in-t", NewModalT(), []*Formula{Necessary(p)}, p)

	engine := NewEngine(DefaultResourceBounds())
	result, err := engine.Prove(problem)
	r.NoError(err)
	r.Equal(VerdictProved, result.Verdict)
}

// Barcan's formula, ∀x□P(x) -> □∀xP(x), holds under a constant-domain
// first-order K frame: since every world shares the same domain, a
// universal closed at every accessible world collapses into a universal
// of the necessity.
func TestBarcanFormulaHoldsUnderConstantDomain(t *testing.T) {
	r := require.New(t)

	rules := append(PropositionalRules(), ModalRules()...)
	rules = append(rules, QuantifierRules()...)
	rules = append(rules, identityInvarianceRule)
	logic := &Logic{
		Name:       "K-constant-domain",
		Semantics:  BinarySemantics{},
		Rules:      rules,
		Modality:   &ModalityDescriptor{Frame: FrameConditions{}},
		FirstOrder: &FirstOrderDescriptor{DomainType: ConstantDomain},
	}

	x := NewVariableArgument("x")
	px := Atomic("P", x)

	premise := ForAll(x, Necessary(px))
	conclusion := Necessary(ForAll(x, px))

	problem := NewProblem("barcan-constant-domain", logic, []*Formula{premise}, conclusion)

	engine := NewEngine(DefaultResourceBounds())
	result, err := engine.Prove(problem)
	r.NoError(err)
	r.Equal(VerdictProved, result.Verdict)
}

// Priest's Logic of Paradox tolerates a glut (p and ¬p both holding) without
// the proof exploding into triviality: from {+p, +¬p} as premises, an
// arbitrary unrelated atom q does not follow.
func TestPriestLPToleratesGlutWithoutExplosion(t *testing.T) {
	r := require.New(t)

	p := Atomic("p").WithSign(SignPlus)
	notP := Non(Atomic("p")).WithSign(SignPlus)
	q := Atomic("q")

	problem := NewProblem("lp-glut-no-explosion", NewPriestLPLogic(), []*Formula{p, notP}, q)

	engine := NewEngine(DefaultResourceBounds())
	result, err := engine.Prove(problem)
	r.NoError(err)
	r.Equal(VerdictRefuted, result.Verdict, "a glut in {p, not-p} must not entail an unrelated atom q")
}
