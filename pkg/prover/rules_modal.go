package prover

// ModalRules returns the possibility/necessity rules shared by every normal
// and non-normal modal logic; the difference between frames (K, T, B, S4,
// S5, or a custom non-normal descriptor) lives entirely in the
// ModalityDescriptor's applicability predicates and FrameConditions, not in
// these rules.
func ModalRules() []Rule {
	return []Rule{possibilityRule, necessityRule, nonNecessityRule, nonPossibilityRule}
}

// possibilityRule expands ◇p@w into a fresh accessible world w' with p@w',
// then replays against w' every pending necessity that applies there (a
// later-arriving ◇ can make an earlier □ apply to a world that did not
// exist when the □ was first decomposed).
func possibilityRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	modality := ctx.Tree.Problem.Logic.Modality
	if modality == nil || f.Kind != KindPossible || !signless(f) {
		return nil
	}
	if modality.IsPossibilityApplicable != nil && !modality.IsPossibilityApplicable(ctx, node, f.Extras) {
		return nil
	}

	origin := f.GetPossibleWorld()
	w := ctx.FreshWorld()
	ctx.Graph.AddVertex(NewGraphVertex(origin, w))
	ctx.Graph.AddMissingVertices(modality.Frame)

	chain := []*ProofTreeNode{ctx.Factory.NewNode(f.Operand.InWorld(w))}
	chain = append(chain, ctx.replayNecessitiesAt(node, w)...)
	return SubtreeWithMiddleChain(chain)
}

// necessityRule expands □p@w into p@w' for every world w' the graph
// currently records as accessible from w, and registers a deferred
// reapplication so later-created worlds get p too.
func necessityRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	modality := ctx.Tree.Problem.Logic.Modality
	if modality == nil || f.Kind != KindNecessary || !signless(f) {
		return nil
	}
	if modality.IsNecessityApplicable != nil && !modality.IsNecessityApplicable(ctx, node, f.Extras) {
		return nil
	}

	origin := f.GetPossibleWorld()
	var chain []*ProofTreeNode
	for _, v := range ctx.Graph.VerticesFrom(origin) {
		chain = append(chain, ctx.Factory.NewNode(f.Operand.InWorld(v.To)))
	}

	var leafIDs []NodeID
	for _, p := range ctx.PathsThroughNode(node.ID) {
		leafIDs = append(leafIDs, p.LeafNodeID())
	}
	ctx.Graph.PushNecessityReapplication(&NecessityReapplicationRecord{
		Formula:       f.Operand,
		OriginWorld:   origin,
		SpawnerNodeID: node.ID,
		LeafNodeIDs:   leafIDs,
	})

	if len(chain) == 0 {
		return EmptySubtree()
	}
	return SubtreeWithMiddleChain(chain)
}

// replayNecessitiesAt re-emits every not-yet-iterated pending necessity
// against the newly created world w, scoped to the leaves recorded when
// that necessity was first decomposed: a record applies only when its
// origin world accesses w and every path through node (the ◇ node being
// decomposed) contains one of its recorded leaves.
func (ctx *RuleContext) replayNecessitiesAt(node *ProofTreeNode, w PossibleWorld) []*ProofTreeNode {
	paths := ctx.PathsThroughNode(node.ID)
	var out []*ProofTreeNode
	var stillPending []*NecessityReapplicationRecord
	for {
		r := ctx.Graph.PopNecessityReapplication()
		if r == nil {
			break
		}
		stillPending = append(stillPending, r)
	}
	for i := len(stillPending) - 1; i >= 0; i-- {
		r := stillPending[i]
		ctx.Graph.PushNecessityReapplication(r)
		onRecordedBranch := len(paths) > 0
		for _, p := range paths {
			found := false
			for _, leaf := range r.LeafNodeIDs {
				found = found || p.ContainsNodeWithID(leaf)
			}
			onRecordedBranch = onRecordedBranch && found
		}
		if r.hasIterated(w) || !onRecordedBranch || !ctx.Graph.HasVertex(NewGraphVertex(r.OriginWorld, w)) {
			continue
		}
		r.AlreadyIterated = append(r.AlreadyIterated, w)
		out = append(out, ctx.Factory.NewNode(r.Formula.InWorld(w)))
	}
	return out
}

func nonNecessityRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindNecessary {
		return nil
	}
	inner := f.Operand.Operand
	rewritten := Possible(Non(inner)).InWorld(f.GetPossibleWorld())
	return SubtreeWithMiddleNode(ctx.Factory.NewNode(rewritten))
}

func nonPossibilityRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindPossible {
		return nil
	}
	inner := f.Operand.Operand
	rewritten := Necessary(Non(inner)).InWorld(f.GetPossibleWorld())
	return SubtreeWithMiddleNode(ctx.Factory.NewNode(rewritten))
}
