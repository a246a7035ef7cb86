package parallel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andob/tableauprover/pkg/prover"
)

// TestWorkerPoolRunsSubmittedProofs drives the pool the way
// internal/batch.Driver does: one Submit per problem, proved through a
// real Engine, collected once every task has run.
func TestWorkerPoolRunsSubmittedProofs(t *testing.T) {
	r := require.New(t)

	pool := NewWorkerPool(2)
	defer pool.Shutdown()

	engine := prover.NewEngine(prover.DefaultResourceBounds())
	p := prover.Atomic("p")
	q := prover.Atomic("q")
	problems := []*prover.Problem{
		prover.NewProblem("modus-ponens", prover.NewPropositionalLogic(), []*prover.Formula{p, prover.Imply(p, q)}, q),
		prover.NewProblem("affirming-the-consequent", prover.NewPropositionalLogic(), []*prover.Formula{q, prover.Imply(p, q)}, p),
	}

	var completed int64
	done := make(chan struct{}, len(problems))
	for _, problem := range problems {
		problem := problem
		err := pool.Submit(context.Background(), func() {
			_, proveErr := engine.Prove(problem)
			r.NoError(proveErr)
			atomic.AddInt64(&completed, 1)
			done <- struct{}{}
		})
		r.NoError(err)
	}

	for range problems {
		<-done
	}
	r.EqualValues(len(problems), atomic.LoadInt64(&completed))
}

func TestWorkerPoolSubmitAfterShutdownFails(t *testing.T) {
	r := require.New(t)

	pool := NewWorkerPool(1)
	pool.Shutdown()

	err := pool.Submit(context.Background(), func() {})
	r.ErrorIs(err, ErrPoolShutdown)
}
