package prover

// IntuitionisticRules implements the fragment of intuitionistic logic that
// differs observably from the classical propositional rules: double
// negation elimination is withheld (so this set excludes
// doubleNegationRule), and a negated implication ¬(p⊃q)@w is witnessed by
// a fresh accessible world where p holds and q fails, rather than
// decomposed locally — matching the Kripke reading where w ⊮ p⊃q exactly
// when some accessible w' forces p but not q. ∧, ∨ and ⊃ and the negations
// of ∧ and ∨ use the ordinary propositional decomposition at the current
// world; there are no rules for ≡ or for the quantifiers. Full
// prefixed-tableau forcing (persistence of every formula shape across the
// accessibility relation, not just negated implication) is out of scope.
func IntuitionisticRules() []Rule {
	return []Rule{andRule, nonAndRule, orRule, nonOrRule, implyRule, intuitionisticNonImplyRule}
}

func intuitionisticNonImplyRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindImply {
		return nil
	}
	imply := f.Operand
	w := f.GetPossibleWorld()
	target := ctx.FreshWorld()
	ctx.Graph.AddVertex(NewGraphVertex(w, target))
	ctx.Graph.AddMissingVertices(FrameConditions{Reflexive: true, Transitive: true})
	chain := []*ProofTreeNode{
		ctx.Factory.NewNode(imply.Left.InWorld(target)),
		ctx.Factory.NewNode(Non(imply.Right).InWorld(target)),
	}
	return SubtreeWithMiddleChain(chain)
}

// NewIntuitionisticLogic builds the logic over a reflexive, transitive
// frame (the persistence order worlds are forced along).
func NewIntuitionisticLogic() *Logic {
	return &Logic{
		Name:      "intuitionistic",
		Semantics: BinarySemantics{},
		Rules:     IntuitionisticRules(),
		Modality:  &ModalityDescriptor{Frame: FrameConditions{Reflexive: true, Transitive: true}},
	}
}
