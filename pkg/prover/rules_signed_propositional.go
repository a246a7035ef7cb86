package prover

// SignedPropositionalRules decomposes compound formulas carrying an
// explicit truth-value sign, the representation the many-valued (K3, L3,
// LP, RM3) and 4-valued (FDE) families use in place of classical
// bivalence. The branching shape mirrors classical α/β decomposition;
// what differs between those logics is only which resulting literal pairs
// their Semantics considers contradictory, not how a connective splits.
func SignedPropositionalRules() []Rule {
	return []Rule{
		signedNonRule,
		signedAndRule,
		signedOrRule,
		signedImplyRule,
		signedBiImplyRule,
	}
}

func signed(f *Formula) bool { return f.Extras.Sign != SignNone }

func signedNonRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signed(f) || f.Operand.Kind == KindAtomic {
		return nil
	}
	flipped := f.Operand.WithSign(f.Extras.Sign.Flip()).InWorld(f.GetPossibleWorld())
	return SubtreeWithMiddleNode(ctx.Factory.NewNode(flipped))
}

func signedAndRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindAnd || !signed(f) {
		return nil
	}
	w := f.GetPossibleWorld()
	if f.Extras.Sign == SignPlus {
		left := ctx.Factory.NewNode(f.Left.WithSign(SignPlus).InWorld(w))
		right := ctx.Factory.NewNode(f.Right.WithSign(SignPlus).InWorld(w))
		return SubtreeWithMiddleChain([]*ProofTreeNode{left, right})
	}
	left := ctx.Factory.NewNode(f.Left.WithSign(SignMinus).InWorld(w))
	right := ctx.Factory.NewNode(f.Right.WithSign(SignMinus).InWorld(w))
	return SubtreeWithBranches(left, right)
}

func signedOrRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindOr || !signed(f) {
		return nil
	}
	w := f.GetPossibleWorld()
	if f.Extras.Sign == SignMinus {
		left := ctx.Factory.NewNode(f.Left.WithSign(SignMinus).InWorld(w))
		right := ctx.Factory.NewNode(f.Right.WithSign(SignMinus).InWorld(w))
		return SubtreeWithMiddleChain([]*ProofTreeNode{left, right})
	}
	left := ctx.Factory.NewNode(f.Left.WithSign(SignPlus).InWorld(w))
	right := ctx.Factory.NewNode(f.Right.WithSign(SignPlus).InWorld(w))
	return SubtreeWithBranches(left, right)
}

func signedImplyRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindImply || !signed(f) {
		return nil
	}
	w := f.GetPossibleWorld()
	if f.Extras.Sign == SignMinus {
		left := ctx.Factory.NewNode(f.Left.WithSign(SignPlus).InWorld(w))
		right := ctx.Factory.NewNode(f.Right.WithSign(SignMinus).InWorld(w))
		return SubtreeWithMiddleChain([]*ProofTreeNode{left, right})
	}
	left := ctx.Factory.NewNode(f.Left.WithSign(SignMinus).InWorld(w))
	right := ctx.Factory.NewNode(f.Right.WithSign(SignPlus).InWorld(w))
	return SubtreeWithBranches(left, right)
}

func signedBiImplyRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindBiImply || !signed(f) {
		return nil
	}
	w := f.GetPossibleWorld()
	var leftSigns, rightSigns [2]Sign
	if f.Extras.Sign == SignPlus {
		leftSigns, rightSigns = [2]Sign{SignPlus, SignMinus}, [2]Sign{SignPlus, SignMinus}
	} else {
		leftSigns, rightSigns = [2]Sign{SignPlus, SignMinus}, [2]Sign{SignMinus, SignPlus}
	}
	branchA := SubtreeWithMiddleChain([]*ProofTreeNode{
		ctx.Factory.NewNode(f.Left.WithSign(leftSigns[0]).InWorld(w)),
		ctx.Factory.NewNode(f.Right.WithSign(rightSigns[0]).InWorld(w)),
	}).Nodes()[0]
	branchB := SubtreeWithMiddleChain([]*ProofTreeNode{
		ctx.Factory.NewNode(f.Left.WithSign(leftSigns[1]).InWorld(w)),
		ctx.Factory.NewNode(f.Right.WithSign(rightSigns[1]).InWorld(w)),
	}).Nodes()[0]
	return SubtreeWithBranches(branchA, branchB)
}
