package prover

// ConditionalRules implements a Stalnaker/Lewis-style selection-function
// conditional p > q: true at w iff q holds at the (unique, nearest) world
// reached by the tagged accessibility edge whose tag is p. The
// accessibility graph's VertexTag mechanism records which antecedent
// justified an edge, so a later conditional sharing the same antecedent
// reuses the same selected world instead of minting another one.
func ConditionalRules() []Rule { return []Rule{conditionalRule, nonConditionalRule} }

func conditionalRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindConditional || !signless(f) {
		return nil
	}
	target, antecedentNode := ctx.selectedWorldFor(f.GetPossibleWorld(), f.Left)
	chain := []*ProofTreeNode{}
	if antecedentNode != nil {
		chain = append(chain, antecedentNode)
	}
	chain = append(chain, ctx.Factory.NewNode(f.Right.InWorld(target)))
	return SubtreeWithMiddleChain(chain)
}

func nonConditionalRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindConditional {
		return nil
	}
	cond := f.Operand
	target, antecedentNode := ctx.selectedWorldFor(f.GetPossibleWorld(), cond.Left)
	chain := []*ProofTreeNode{}
	if antecedentNode != nil {
		chain = append(chain, antecedentNode)
	}
	chain = append(chain, ctx.Factory.NewNode(Non(cond.Right).InWorld(target)))
	return SubtreeWithMiddleChain(chain)
}

// selectedWorldFor returns the world already selected by antecedent at w
// (and a nil node, since the antecedent is already asserted there), or
// mints and tags a fresh world together with the node asserting the
// antecedent at it.
func (ctx *RuleContext) selectedWorldFor(w PossibleWorld, antecedent *Formula) (PossibleWorld, *ProofTreeNode) {
	for _, v := range ctx.Graph.VerticesFrom(w) {
		for _, tag := range ctx.Graph.TagsFor(v) {
			if tag.Equal(antecedent.InWorld(v.To)) {
				return v.To, nil
			}
		}
	}
	target := ctx.FreshWorld()
	edge := NewGraphVertex(w, target)
	ctx.Graph.AddVertex(edge)
	taggedAntecedent := antecedent.InWorld(target)
	ctx.Graph.AddVertexTag(edge, taggedAntecedent)
	return target, ctx.Factory.NewNode(taggedAntecedent)
}
