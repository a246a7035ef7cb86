package prover

import "fmt"

// ResourceBounds caps how far the engine lets a single proof attempt grow
// before giving up and reporting a timeout verdict instead of spinning
// forever on a problem whose tableau never saturates.
type ResourceBounds struct {
	// MaxWorlds bounds the accessibility graph's world count. Only
	// consulted for modal (and temporal, and conditional) logics, where
	// an unrestricted possibility rule can otherwise mint worlds
	// indefinitely.
	MaxWorlds int
	// MaxNodes bounds total node count, the backstop for first-order
	// logics where witness minting can likewise run unbounded.
	MaxNodes int
}

const (
	defaultMaxWorlds = 25
	defaultMaxNodes  = 250
)

func DefaultResourceBounds() ResourceBounds {
	return ResourceBounds{MaxWorlds: defaultMaxWorlds, MaxNodes: defaultMaxNodes}
}

// Verdict is the engine's final answer for one problem.
type Verdict int

const (
	VerdictRefuted Verdict = iota
	VerdictProved
	VerdictTimeout
)

func (v Verdict) String() string {
	switch v {
	case VerdictProved:
		return "proved"
	case VerdictTimeout:
		return "timeout"
	default:
		return "refuted"
	}
}

// ProofResult bundles the finished tree, its verdict, and (when refuted) a
// countermodel witnessing the premises' failure to entail the conclusion.
type ProofResult struct {
	Tree         *ProofTree
	Verdict      Verdict
	Countermodel *Countermodel
}

// Engine drives one problem's tableau to saturation: pop the
// highest-priority open node from the decomposition queue, ask the logic's
// rule list which one (if any) applies, graft the resulting subtree, and
// repeat until either every path has closed, the queue empties with open
// paths remaining, or a resource bound is hit.
type Engine struct {
	Bounds ResourceBounds
}

func NewEngine(bounds ResourceBounds) *Engine {
	return &Engine{Bounds: bounds}
}

// Prove runs a problem to a verdict. A panic raised by a rule or semantics
// implementation during decomposition (a broken internal invariant, not a
// user-facing error) is recovered here and reported as
// ErrCoreContractViolation rather than crashing the caller.
func (e *Engine) Prove(problem *Problem) (result *ProofResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = newError(ErrCoreContractViolation, fmt.Sprintf("panic during decomposition: %v", r))
		}
	}()
	return e.prove(problem), nil
}

func (e *Engine) prove(problem *Problem) *ProofResult {
	factory := NewNodeFactory()
	root := buildRootChain(factory, problem)
	tree := NewProofTree(problem, factory, root)

	tree.Graph.AddWorld(ZeroWorld)
	if problem.Logic.Modality != nil {
		tree.Graph.AddMissingVertices(problem.Logic.Modality.Frame)
	}

	ctx := NewRuleContext(tree)
	queue := NewDecompositionQueue(tree)
	queue.PushNode(root)

	tree.CheckForContradictions()

	for !tree.IsProofCorrect && !queue.IsEmpty() {
		if e.exceedsBounds(problem, tree) {
			tree.HasTimeout = true
			break
		}

		node := queue.Pop()
		if !hasOpenPathThrough(tree, node.ID) {
			continue
		}

		factory.SetSpawnerNodeID(&node.ID)
		subtree := applyFirstMatchingRule(ctx, problem.Logic.Rules, node)
		factory.SetSpawnerNodeID(nil)

		if subtree.IsEmpty() {
			continue
		}

		newNodes := tree.AppendSubtreeAfterDecomposition(node.ID, subtree)
		queue.PushSubtree(newNodes)
		tree.CheckForContradictions()
	}

	result := &ProofResult{Tree: tree}
	switch {
	case tree.HasTimeout:
		result.Verdict = VerdictTimeout
	case tree.IsProofCorrect:
		result.Verdict = VerdictProved
	default:
		result.Verdict = VerdictRefuted
		if cm, ok := ExtractPrimary(tree); ok {
			result.Countermodel = cm
		}
	}
	return result
}

// buildRootChain links the premises and the reductio of the conclusion
// (¬conclusion for binary semantics, its many-valued/fuzzy equivalent
// otherwise) into the single linear chain every tableau starts from.
func buildRootChain(factory *NodeFactory, problem *Problem) *ProofTreeNode {
	formulas := make([]*Formula, 0, len(problem.Premises)+1)
	formulas = append(formulas, problem.Premises...)
	formulas = append(formulas, problem.Logic.Semantics.ReductioAdAbsurdum(problem.Conclusion))

	nodes := make([]*ProofTreeNode, len(formulas))
	for i, f := range formulas {
		nodes[i] = factory.NewNode(f)
	}
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i].Middle = nodes[i+1]
	}
	return nodes[0]
}

// applyFirstMatchingRule tries each of a logic's rules against node in
// order and returns the first non-nil subtree; rules are total and side
// effect free until one is chosen, so trying several that decline is safe.
func applyFirstMatchingRule(ctx *RuleContext, rules []Rule, node *ProofTreeNode) *ProofSubtree {
	for _, rule := range rules {
		if subtree := rule(ctx, node); subtree != nil {
			return subtree
		}
	}
	return EmptySubtree()
}

// hasOpenPathThrough reports whether at least one path through nodeID is
// still free of a contradictory pair; a node with every path through it
// already closed needs no further decomposition, even if it also sits on
// paths that were closed by an unrelated pair further down the tree.
func hasOpenPathThrough(tree *ProofTree, nodeID NodeID) bool {
	semantics := tree.Problem.Logic.Semantics
	for _, p := range tree.GetPathsThatGoThroughNode(nodeID) {
		if len(p.GetContradictoryNodeIDs(semantics)) == 0 {
			return true
		}
	}
	return false
}

func (e *Engine) exceedsBounds(problem *Problem, tree *ProofTree) bool {
	if problem.Logic.IsModal() && len(tree.Graph.Worlds()) > e.Bounds.MaxWorlds {
		return true
	}
	return tree.TotalNodeCount() > e.Bounds.MaxNodes
}
