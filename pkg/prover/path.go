package prover

// FirstOrderDomainType distinguishes constant-domain from variable-domain
// first-order semantics: constant domain lets a universal bind to any name
// appearing anywhere on the path; variable domain additionally requires
// the candidate to "definitely exist" at the quantifier's world.
type FirstOrderDomainType int

const (
	ConstantDomain FirstOrderDomainType = iota
	VariableDomain
)

// ProofTreePathNode is one (id, formula, is_contradictory) triple in a path
// view.
type ProofTreePathNode struct {
	ID              NodeID
	Formula         *Formula
	IsContradictory bool
}

// ProofTreePath is a linear, immutable view of one root-to-leaf sequence of
// nodes. Paths are values constructed by tree traversal, never stored; they
// are the query surface rules and semantics use to ask "does this path
// contain X?" and "what are its equalities?".
type ProofTreePath struct {
	Nodes      []ProofTreePathNode
	DomainType FirstOrderDomainType
}

func newPath(root *ProofTreeNode, domainType FirstOrderDomainType) *ProofTreePath {
	return &ProofTreePath{
		Nodes:      []ProofTreePathNode{pathNodeFrom(root)},
		DomainType: domainType,
	}
}

func pathNodeFrom(n *ProofTreeNode) ProofTreePathNode {
	return ProofTreePathNode{ID: n.ID, Formula: n.Formula, IsContradictory: n.IsContradictory}
}

// plus returns a new path with node appended; the receiver's own node slice
// is left untouched (paths are immutable values).
func (p *ProofTreePath) plus(n *ProofTreeNode) *ProofTreePath {
	nodes := make([]ProofTreePathNode, len(p.Nodes), len(p.Nodes)+1)
	copy(nodes, p.Nodes)
	nodes = append(nodes, pathNodeFrom(n))
	return &ProofTreePath{Nodes: nodes, DomainType: p.DomainType}
}

// ContainsNodeWithID reports whether id appears anywhere on the path.
func (p *ProofTreePath) ContainsNodeWithID(id NodeID) bool {
	for _, n := range p.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// LeafNodeID returns the id of the path's final node.
func (p *ProofTreePath) LeafNodeID() NodeID {
	return p.Nodes[len(p.Nodes)-1].ID
}

// GetContradictoryNodeIDs finds every pair (laterID, earlierID) on the path
// such that the logic's semantics declares them contradictory.
func (p *ProofTreePath) GetContradictoryNodeIDs(semantics Semantics) [][2]NodeID {
	var out [][2]NodeID
	for i := 0; i < len(p.Nodes); i++ {
		for j := 0; j < i; j++ {
			if semantics.AreFormulasContradictory(p, p.Nodes[i].Formula, p.Nodes[j].Formula) {
				out = append(out, [2]NodeID{p.Nodes[i].ID, p.Nodes[j].ID})
			}
		}
	}
	return out
}

// CollectEqualities returns every Equals(x,y) pair asserted anywhere on the
// path, used by quantifier and identity rules.
func (p *ProofTreePath) CollectEqualities() []*Formula {
	var out []*Formula
	for _, n := range p.Nodes {
		if n.Formula.Kind == KindEquals {
			out = append(out, n.Formula)
		}
	}
	return out
}

// EqualityPartnersOf returns every object/variable name equated with name
// anywhere on the path.
func (p *ProofTreePath) EqualityPartnersOf(name string) []string {
	var out []string
	for _, eq := range p.CollectEqualities() {
		x, y := equalityArgName(eq.ArgX), equalityArgName(eq.ArgY)
		if x == name {
			out = append(out, y)
		} else if y == name {
			out = append(out, x)
		}
	}
	return out
}

func equalityArgName(a PredicateArgument) string {
	if a.IsInstantiated() {
		return a.Object()
	}
	return a.VariableName()
}

// CollectPredicateArguments gathers every predicate argument appearing on
// the path, used by ∀/∃ rules to find candidate witnesses.
func (p *ProofTreePath) CollectPredicateArguments() []PredicateArgument {
	var out []PredicateArgument
	for _, n := range p.Nodes {
		out = append(out, n.Formula.CollectPredicateArguments()...)
	}
	return out
}

// DefinitelyExistingObjectsAt returns every object name asserted to
// definitely exist at world w on the path.
func (p *ProofTreePath) DefinitelyExistingObjectsAt(w PossibleWorld) map[string]bool {
	out := map[string]bool{}
	for _, n := range p.Nodes {
		if n.Formula.Kind == KindDefinitelyExists && n.Formula.GetPossibleWorld() == w {
			out[equalityArgName(n.Formula.ArgX)] = true
		}
	}
	return out
}

// ContainsFormula reports whether an Equal (ignoring hidden flag) formula
// to target appears anywhere on the path.
func (p *ProofTreePath) ContainsFormula(target *Formula) bool {
	for _, n := range p.Nodes {
		if n.Formula.Equal(target) {
			return true
		}
	}
	return false
}

func (p *ProofTreePath) String() string {
	s := ""
	for i, n := range p.Nodes {
		if i > 0 {
			s += " -> "
		}
		s += n.Formula.String()
	}
	return s
}
