package prover

// QuantifierRules returns the existential and universal rules for
// first-order logics. Existential instantiation always mints a fresh
// Herbrand witness; universal instantiation binds to every object already
// named on the path (constant domain) or every object additionally known
// to definitely exist at the quantifier's world (variable domain), or to a
// fresh Herbrand witness when there is no such object. Each ∀ node is
// decomposed once, so an object named on the path afterwards is not bound
// by it.
func QuantifierRules() []Rule {
	return []Rule{existsRule, forAllRule, nonExistsRule, nonForAllRule}
}

func existsRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindExists || !signless(f) {
		return nil
	}
	witness := nextHerbrandWitness(ctx, node)
	instantiated := f.Body.Instantiated(f.BoundVar.VariableName(), witness).InWorld(f.GetPossibleWorld())
	chain := []*ProofTreeNode{ctx.Factory.NewNode(instantiated)}
	if ctx.Tree.domainType == VariableDomain {
		witnessArg := NewVariableArgument(witness).Instantiated(witness)
		exists := DefinitelyExists(witnessArg, f.Extras)
		chain = append(chain, ctx.Factory.NewNode(exists))
	}
	return SubtreeWithMiddleChain(chain)
}

func nextHerbrandWitness(ctx *RuleContext, node *ProofTreeNode) string {
	existing := map[string]bool{}
	for _, p := range ctx.PathsThroughNode(node.ID) {
		for _, arg := range p.CollectPredicateArguments() {
			if arg.IsInstantiated() {
				existing[arg.Object()] = true
			}
		}
	}
	for i := 0; ; i++ {
		candidate := herbrandWitnessSequence(i)
		if !existing[candidate] {
			return candidate
		}
	}
}

// forAllRule instantiates ∀x.p against every candidate object already known
// on the path, or against a fresh Herbrand witness when there is none. The
// decomposition queue enqueues each node id once, so the ∀ node is not
// revisited for objects named later.
func forAllRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindForAll || !signless(f) {
		return nil
	}
	candidates := candidateObjectsFor(ctx, node, f)
	if len(candidates) == 0 {
		candidates = []string{nextHerbrandWitness(ctx, node)}
	}
	var chain []*ProofTreeNode
	for _, obj := range candidates {
		instantiated := f.Body.Instantiated(f.BoundVar.VariableName(), obj).InWorld(f.GetPossibleWorld())
		chain = append(chain, ctx.Factory.NewNode(instantiated))
	}
	return SubtreeWithMiddleChain(chain)
}

func candidateObjectsFor(ctx *RuleContext, node *ProofTreeNode, f *Formula) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range ctx.PathsThroughNode(node.ID) {
		existing := p.DefinitelyExistingObjectsAt(f.GetPossibleWorld())
		for _, arg := range p.CollectPredicateArguments() {
			if !arg.IsInstantiated() {
				continue
			}
			obj := arg.Object()
			if ctx.Tree.domainType == VariableDomain && !existing[obj] {
				continue
			}
			if !seen[obj] {
				seen[obj] = true
				out = append(out, obj)
			}
		}
	}
	return out
}

func nonExistsRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindExists {
		return nil
	}
	ex := f.Operand
	rewritten := ForAll(ex.BoundVar, Non(ex.Body)).InWorld(f.GetPossibleWorld())
	return SubtreeWithMiddleNode(ctx.Factory.NewNode(rewritten))
}

func nonForAllRule(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree {
	f := node.Formula
	if f.Kind != KindNon || !signless(f) || f.Operand.Kind != KindForAll {
		return nil
	}
	all := f.Operand
	rewritten := Exists(all.BoundVar, Non(all.Body)).InWorld(f.GetPossibleWorld())
	return SubtreeWithMiddleNode(ctx.Factory.NewNode(rewritten))
}
