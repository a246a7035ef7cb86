// Package batch runs many Problems through the engine concurrently. Each
// individual Problem is still proved strictly single-threaded (Engine.Prove
// never shares mutable state across a goroutine boundary); the only
// concurrency here is across problems, via the fixed worker pool in
// internal/parallel.
package batch

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/andob/tableauprover/internal/obslog"
	"github.com/andob/tableauprover/internal/parallel"
	"github.com/andob/tableauprover/pkg/prover"
)

// DifficultyClass buckets a problem by how expensive its proof search is
// expected to be, purely from its logic's shape — no formula is inspected.
type DifficultyClass int

const (
	VeryHigh DifficultyClass = iota // modal and first-order
	High                            // modal only
	Medium                          // first-order only
	Low                             // propositional, many-valued, fuzzy
	numDifficultyClasses
)

func (d DifficultyClass) String() string {
	switch d {
	case VeryHigh:
		return "very-high"
	case High:
		return "high"
	case Medium:
		return "medium"
	default:
		return "low"
	}
}

// ClassifyProblem buckets p by its logic's modal/first-order shape.
func ClassifyProblem(p *prover.Problem) DifficultyClass {
	modal := p.Logic.IsModal()
	firstOrder := p.Logic.IsFirstOrder()
	switch {
	case modal && firstOrder:
		return VeryHigh
	case modal:
		return High
	case firstOrder:
		return Medium
	default:
		return Low
	}
}

// JobResult pairs a submitted Problem with its outcome.
type JobResult struct {
	Problem *prover.Problem
	Result  *prover.ProofResult
	Err     error
}

// Driver fans a batch of problems out across difficulty-classified queues
// and a fixed worker pool, higher difficulty drained first.
type Driver struct {
	engine *prover.Engine
	pool   *parallel.WorkerPool
	logger obslog.Logger
}

// NewDriver builds a driver around engine. workerCount <= 0 defaults to
// runtime.NumCPU() inside the pool (internal/parallel.NewWorkerPool's own
// convention).
func NewDriver(engine *prover.Engine, workerCount int, logger obslog.Logger) *Driver {
	if logger == nil {
		logger = obslog.Discard()
	}
	return &Driver{
		engine: engine,
		pool:   parallel.NewWorkerPool(workerCount),
		logger: logger,
	}
}

func (d *Driver) Shutdown() {
	d.pool.Shutdown()
}

// RunAll classifies every problem into one of four bounded channels and
// drains them through the worker pool, highest difficulty first, until
// every problem has a result. Errors from individual proofs
// (ErrCoreContractViolation panics recovered inside Engine.Prove) are
// collected rather than short-circuited — one bad problem in a batch must
// not cost the rest their results.
func (d *Driver) RunAll(ctx context.Context, problems []*prover.Problem) ([]*JobResult, error) {
	var queues [numDifficultyClasses]chan *prover.Problem
	for class := range queues {
		queues[class] = make(chan *prover.Problem, len(problems))
	}
	for _, p := range problems {
		queues[ClassifyProblem(p)] <- p
	}
	for class := range queues {
		close(queues[class])
	}

	results := make([]*JobResult, 0, len(problems))
	var mu sync.Mutex
	var errs *multierror.Error
	var wg sync.WaitGroup

	for {
		problem, ok := nextPending(queues)
		if !ok {
			break
		}
		wg.Add(1)
		err := d.pool.Submit(ctx, func() {
			defer wg.Done()
			d.logger.Debug("proving", "problem", problem.ID)
			result, proveErr := d.engine.Prove(problem)
			mu.Lock()
			defer mu.Unlock()
			results = append(results, &JobResult{Problem: problem, Result: result, Err: proveErr})
			if proveErr != nil {
				errs = multierror.Append(errs, proveErr)
			}
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			errs = multierror.Append(errs, err)
			mu.Unlock()
		}
	}

	wg.Wait()
	return results, errs.ErrorOrNil()
}

// nextPending drains queues in difficulty order (VeryHigh first). Every
// queue is closed once filled, so a receive never blocks past the point
// its buffer is drained.
func nextPending(queues [numDifficultyClasses]chan *prover.Problem) (*prover.Problem, bool) {
	for class := DifficultyClass(0); class < numDifficultyClasses; class++ {
		if p, ok := <-queues[class]; ok {
			return p, true
		}
	}
	return nil, false
}
