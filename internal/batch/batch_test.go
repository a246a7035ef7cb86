package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andob/tableauprover/pkg/prover"
)

func TestClassifyProblem(t *testing.T) {
	r := require.New(t)

	p := prover.Atomic("p")
	propositional := prover.NewProblem("prop", prover.NewPropositionalLogic(), nil, p)
	r.Equal(Low, ClassifyProblem(propositional))

	modal := prover.NewProblem("modal", prover.NewModalK(), nil, p)
	r.Equal(High, ClassifyProblem(modal))

	firstOrder := prover.NewProblem("fol", prover.NewFirstOrderConstantDomain(), nil, p)
	r.Equal(Medium, ClassifyProblem(firstOrder))
}

func TestDriverRunAllCollectsEveryResult(t *testing.T) {
	r := require.New(t)

	q := prover.Atomic("q")
	modusPonens := prover.NewProblem("modus-ponens", prover.NewPropositionalLogic(),
		[]*prover.Formula{prover.Atomic("p"), prover.Imply(prover.Atomic("p"), q)}, q)
	affirmingTheConsequent := prover.NewProblem("affirming-the-consequent", prover.NewPropositionalLogic(),
		[]*prover.Formula{q, prover.Imply(prover.Atomic("p"), q)}, prover.Atomic("p"))

	engine := prover.NewEngine(prover.DefaultResourceBounds())
	driver := NewDriver(engine, 2, nil)
	defer driver.Shutdown()

	results, err := driver.RunAll(context.Background(), []*prover.Problem{modusPonens, affirmingTheConsequent})
	r.NoError(err)
	r.Len(results, 2)

	byID := map[string]*JobResult{}
	for _, jr := range results {
		byID[jr.Problem.ID] = jr
	}

	r.NoError(byID["modus-ponens"].Err)
	r.Equal(prover.VerdictProved, byID["modus-ponens"].Result.Verdict)

	r.NoError(byID["affirming-the-consequent"].Err)
	r.Equal(prover.VerdictRefuted, byID["affirming-the-consequent"].Result.Verdict)
}
