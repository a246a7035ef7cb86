package prover

// TemporalRules implements the existential fragment of K_t: "eventually p"
// (InFuture) and "previously p" (InPast). Both mint (or reuse) one
// accessibility edge along the timeline, oriented forward for InFuture and
// backward for InPast, then assert p at the selected world. The frame's
// Convergent closure gives the usual K_t property that any two branches
// forward or backward from one point eventually reconverge.
func TemporalRules() []Rule { return []Rule{futureRule, pastRule} }

func futureRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindInFuture || !signless(f) {
		return nil
	}
	w := f.GetPossibleWorld()
	target := ctx.FreshWorld()
	ctx.Graph.AddVertex(NewGraphVertex(w, target))
	if m := ctx.Tree.Problem.Logic.Modality; m != nil {
		ctx.Graph.AddMissingVertices(m.Frame)
	}
	return SubtreeWithMiddleNode(ctx.Factory.NewNode(f.Operand.InWorld(target)))
}

func pastRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindInPast || !signless(f) {
		return nil
	}
	w := f.GetPossibleWorld()
	for _, origin := range ctx.Graph.Worlds() {
		for _, v := range ctx.Graph.VerticesFrom(origin) {
			if v.To == w {
				return SubtreeWithMiddleNode(ctx.Factory.NewNode(f.Operand.InWorld(origin)))
			}
		}
	}
	origin := ctx.FreshWorld()
	ctx.Graph.AddVertex(NewGraphVertex(origin, w))
	if m := ctx.Tree.Problem.Logic.Modality; m != nil {
		ctx.Graph.AddMissingVertices(m.Frame)
	}
	return SubtreeWithMiddleNode(ctx.Factory.NewNode(f.Operand.InWorld(origin)))
}

// NewTemporalLogic is K_t over a convergent frame, restricted to the
// existential "eventually"/"previously" operators; the universal
// always-in-future/always-in-past duals are out of scope (see DESIGN.md).
func NewTemporalLogic() *Logic {
	rules := append(PropositionalRules(), TemporalRules()...)
	return &Logic{
		Name:      "Kt",
		Semantics: BinarySemantics{},
		Rules:     rules,
		Modality:  &ModalityDescriptor{Frame: FrameConditions{Convergent: true}},
	}
}
