package prover

// RuleContext bundles everything a Rule needs to inspect the proof so far
// and extend it: a read-only tree for path/leaf queries, a node factory for
// minting ids, the accessibility graph, and the problem's flags. The rules
// only query Tree; they make structural changes through the ProofSubtree
// they return, which the engine grafts on their behalf.
type RuleContext struct {
	Tree    *ProofTree
	Factory *NodeFactory
	Graph   *AccessibilityGraph
	Flags   ProblemFlags
}

func NewRuleContext(tree *ProofTree) *RuleContext {
	return &RuleContext{
		Tree:    tree,
		Factory: tree.NodeFactory,
		Graph:   tree.Graph,
		Flags:   tree.Problem.Flags,
	}
}

// PathsThroughNode is a convenience wrapper most rules use to look up their
// own node's branches before deciding how to decompose it.
func (ctx *RuleContext) PathsThroughNode(id NodeID) []*ProofTreePath {
	return ctx.Tree.GetPathsThatGoThroughNode(id)
}

// Semantics returns the contradiction oracle for the problem being proved.
func (ctx *RuleContext) Semantics() Semantics {
	return ctx.Tree.Problem.Logic.Semantics
}

// FreshWorld allocates the next unused world, registers it on the graph,
// and closes the graph under the logic's frame conditions.
func (ctx *RuleContext) FreshWorld() PossibleWorld {
	w := ctx.Graph.MaxWorld().Fork()
	ctx.Graph.AddWorld(w)
	if m := ctx.Tree.Problem.Logic.Modality; m != nil {
		ctx.Graph.AddMissingVertices(m.Frame)
	}
	return w
}
