// Package main is a thin demonstration binary: it builds a handful of
// Problems directly against the Formula AST (the textual parser is an
// external collaborator, out of scope here) and runs them through the
// engine, printing each verdict and, where refuted, a countermodel.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/andob/tableauprover/internal/obslog"
	"github.com/andob/tableauprover/pkg/prover"
)

func main() {
	logger := obslog.New("tableauprover", hclog.Info)
	engine := prover.NewEngine(prover.DefaultResourceBounds())

	for _, demo := range demoProblems() {
		result, err := engine.Prove(demo)
		if err != nil {
			logger.Error("prove failed", "problem", demo.ID, "error", err)
			continue
		}
		printResult(demo, result)
	}
}

func printResult(problem *prover.Problem, result *prover.ProofResult) {
	fmt.Printf("=== %s (%s) ===\n", problem.ID, problem.Logic.Name)
	fmt.Printf("verdict: %s\n", result.Verdict)

	doc, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal error: %v\n", err)
		return
	}
	fmt.Println(string(doc))

	if result.Countermodel != nil {
		cm, err := json.MarshalIndent(result.Countermodel, "", "  ")
		if err == nil {
			fmt.Println(string(cm))
		}
	}
	fmt.Println()
}

// demoProblems builds a small fixed set of problems exercising classical,
// modal, and many-valued logics, standing in for what an external parser
// would otherwise hand the engine.
func demoProblems() []*prover.Problem {
	p := prover.Atomic("p")
	q := prover.Atomic("q")

	modusPonens := prover.NewProblem(
		"modus-ponens",
		prover.NewPropositionalLogic(),
		[]*prover.Formula{p, prover.Imply(p, q)},
		q,
	)

	affirmingTheConsequent := prover.NewProblem(
		"affirming-the-consequent",
		prover.NewPropositionalLogic(),
		[]*prover.Formula{q, prover.Imply(p, q)},
		p,
	)

	kAxiom := prover.NewProblem(
		"k-axiom",
		prover.NewModalK(),
		[]*prover.Formula{prover.Necessary(prover.Imply(p, q)), prover.Necessary(p)},
		prover.Necessary(q),
	)

	tAxiomFailsInK := prover.NewProblem(
		"t-axiom-fails-in-k",
		prover.NewModalK(),
		[]*prover.Formula{prover.Necessary(p)},
		p,
	)

	return []*prover.Problem{modusPonens, affirmingTheConsequent, kAxiom, tAxiomFailsInK}
}
