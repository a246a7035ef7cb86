package prover

// StrictImplyRules rewrites C.I. Lewis's strict conditional p ⥽ q as
// □(p ⊃ q), letting the host logic's own modal machinery decompose it
// from there. Any logic that registers this rule must also carry a
// ModalityDescriptor.
func StrictImplyRules() []Rule { return []Rule{strictImplyRule} }

func strictImplyRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindStrictImply || !signless(f) {
		return nil
	}
	rewritten := Necessary(Imply(f.Left, f.Right)).InWorld(f.GetPossibleWorld())
	return SubtreeWithMiddleNode(ctx.Factory.NewNode(rewritten))
}
