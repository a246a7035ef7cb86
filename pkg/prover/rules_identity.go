package prover

// identityInvarianceRule propagates an atomic formula across equality: if
// a=b is on the path and P(a) holds, P(b) must also be added so later
// rules and the contradiction check see it. An equality asserted at world
// w always licenses substitution within that same world; it only licenses
// substitution across worlds when neither designator was flagged non-rigid
// on the problem (a non-rigid name may denote different objects at
// different worlds, so its identity claims don't carry over).
func identityInvarianceRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindAtomic || !signless(f) {
		return nil
	}
	var chain []*ProofTreeNode
	for _, p := range ctx.PathsThroughNode(node.ID) {
		for _, eq := range p.CollectEqualities() {
			sameWorld := eq.GetPossibleWorld() == f.GetPossibleWorld()
			for i, arg := range f.Args {
				if !arg.IsInstantiated() {
					continue
				}
				partner, ok := equalityPartner(eq, arg.Object())
				if !ok {
					continue
				}
				if !sameWorld && (ctx.Flags.NonRigidDesignators[arg.Object()] || ctx.Flags.NonRigidDesignators[partner]) {
					continue
				}
				substituted := substituteArg(f, i, arg.Instantiated(partner))
				if !p.ContainsFormula(substituted) {
					chain = append(chain, ctx.Factory.NewNode(substituted))
				}
			}
		}
	}
	if len(chain) == 0 {
		return nil
	}
	return SubtreeWithMiddleChain(chain)
}

func equalityPartner(eq *Formula, name string) (string, bool) {
	x, y := equalityArgName(eq.ArgX), equalityArgName(eq.ArgY)
	switch name {
	case x:
		return y, true
	case y:
		return x, true
	}
	return "", false
}

func substituteArg(f *Formula, index int, replacement PredicateArgument) *Formula {
	clone := *f
	clone.Args = make([]PredicateArgument, len(f.Args))
	copy(clone.Args, f.Args)
	clone.Args[index] = replacement
	return &clone
}
