package prover

// PropositionalRules returns the rule set shared by every logic built on
// classical connectives: double negation elimination, the α rules (And,
// Non-Or, Non-Imply) that extend a branch linearly, and the β rules (Or,
// Imply, Non-And) that split it. Sign-bearing logics reach the same
// shapes through their own rule sets instead; this file only fires on
// unsigned (Sign == SignNone) formulas so it composes cleanly with
// many-valued rule sets that layer signed handling on top.
func PropositionalRules() []Rule {
	return []Rule{
		doubleNegationRule,
		andRule,
		nonOrRule,
		nonImplyRule,
		orRule,
		implyRule,
		nonAndRule,
		biImplyRule,
		nonBiImplyRule,
	}
}

func signless(f *Formula) bool { return f.Extras.Sign == SignNone }

func doubleNegationRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindNon {
		return nil
	}
	inner := f.Operand.Operand.InWorld(f.GetPossibleWorld())
	child := ctx.Factory.NewNode(inner)
	return SubtreeWithMiddleNode(child)
}

func andRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindAnd || !signless(f) {
		return nil
	}
	left := ctx.Factory.NewNode(f.Left.InWorld(f.GetPossibleWorld()))
	right := ctx.Factory.NewNode(f.Right.InWorld(f.GetPossibleWorld()))
	return SubtreeWithMiddleChain([]*ProofTreeNode{left, right})
}

func nonAndRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindAnd {
		return nil
	}
	and := f.Operand
	left := ctx.Factory.NewNode(Non(and.Left).InWorld(f.GetPossibleWorld()))
	right := ctx.Factory.NewNode(Non(and.Right).InWorld(f.GetPossibleWorld()))
	return SubtreeWithBranches(left, right)
}

func orRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindOr || !signless(f) {
		return nil
	}
	left := ctx.Factory.NewNode(f.Left.InWorld(f.GetPossibleWorld()))
	right := ctx.Factory.NewNode(f.Right.InWorld(f.GetPossibleWorld()))
	return SubtreeWithBranches(left, right)
}

func nonOrRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindOr {
		return nil
	}
	or := f.Operand
	left := ctx.Factory.NewNode(Non(or.Left).InWorld(f.GetPossibleWorld()))
	right := ctx.Factory.NewNode(Non(or.Right).InWorld(f.GetPossibleWorld()))
	return SubtreeWithMiddleChain([]*ProofTreeNode{left, right})
}

func implyRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindImply || !signless(f) {
		return nil
	}
	left := ctx.Factory.NewNode(Non(f.Left).InWorld(f.GetPossibleWorld()))
	right := ctx.Factory.NewNode(f.Right.InWorld(f.GetPossibleWorld()))
	return SubtreeWithBranches(left, right)
}

func nonImplyRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindImply {
		return nil
	}
	imply := f.Operand
	left := ctx.Factory.NewNode(imply.Left.InWorld(f.GetPossibleWorld()))
	right := ctx.Factory.NewNode(Non(imply.Right).InWorld(f.GetPossibleWorld()))
	return SubtreeWithMiddleChain([]*ProofTreeNode{left, right})
}

func biImplyRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindBiImply || !signless(f) {
		return nil
	}
	w := f.GetPossibleWorld()
	bothTrue := []*ProofTreeNode{ctx.Factory.NewNode(f.Left.InWorld(w)), ctx.Factory.NewNode(f.Right.InWorld(w))}
	bothFalse := []*ProofTreeNode{ctx.Factory.NewNode(Non(f.Left).InWorld(w)), ctx.Factory.NewNode(Non(f.Right).InWorld(w))}
	left := SubtreeWithMiddleChain(bothTrue).Nodes()[0]
	right := SubtreeWithMiddleChain(bothFalse).Nodes()[0]
	return SubtreeWithBranches(left, right)
}

func nonBiImplyRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindBiImply {
		return nil
	}
	bi := f.Operand
	w := f.GetPossibleWorld()
	mixed1 := []*ProofTreeNode{ctx.Factory.NewNode(bi.Left.InWorld(w)), ctx.Factory.NewNode(Non(bi.Right).InWorld(w))}
	mixed2 := []*ProofTreeNode{ctx.Factory.NewNode(Non(bi.Left).InWorld(w)), ctx.Factory.NewNode(bi.Right.InWorld(w))}
	left := SubtreeWithMiddleChain(mixed1).Nodes()[0]
	right := SubtreeWithMiddleChain(mixed2).Nodes()[0]
	return SubtreeWithBranches(left, right)
}
