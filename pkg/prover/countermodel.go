package prover

// Countermodel is a model witnessing that a problem's premises do not
// entail its conclusion: a set of worlds, the accessibility relation
// between them, and which atoms hold at which world.
type Countermodel struct {
	Worlds      []PossibleWorld
	Vertices    []GraphVertex
	TrueAtoms   map[PossibleWorld][]string
	Domain      []string
	ExtractedBy string
}

// ExtractPrimary builds a countermodel directly from one open (saturated,
// non-contradictory) path of a finished proof tree: the graph's worlds and
// edges are taken as-is, and an atom is true at a world exactly when a
// positively-signed or unsigned instance of it appears on the path.
func ExtractPrimary(tree *ProofTree) (*Countermodel, bool) {
	semantics := tree.Problem.Logic.Semantics
	var openPath *ProofTreePath
	for _, p := range tree.GetAllPaths() {
		if len(p.GetContradictoryNodeIDs(semantics)) == 0 {
			openPath = p
			break
		}
	}
	if openPath == nil {
		return nil, false
	}

	trueAtoms := map[PossibleWorld][]string{}
	domainSeen := map[string]bool{}
	var domain []string
	for _, n := range openPath.Nodes {
		f := n.Formula
		if f.Kind != KindAtomic {
			continue
		}
		if f.Extras.Sign == SignMinus {
			continue
		}
		w := f.GetPossibleWorld()
		trueAtoms[w] = append(trueAtoms[w], f.String())
		for _, arg := range f.Args {
			if arg.IsInstantiated() && !domainSeen[arg.Object()] {
				domainSeen[arg.Object()] = true
				domain = append(domain, arg.Object())
			}
		}
	}

	return &Countermodel{
		Worlds:      tree.Graph.Worlds(),
		Vertices:    tree.Graph.Vertices(),
		TrueAtoms:   trueAtoms,
		Domain:      domain,
		ExtractedBy: "primary",
	}, true
}
