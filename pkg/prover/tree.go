package prover

// ProofTree is a rooted tree of ProofTreeNodes plus the bookkeeping the
// engine needs across the whole run: the originating problem, the node
// factory, the final accessibility graph, the proof verdict flags, and the
// accumulated execution-log text.
type ProofTree struct {
	Problem     *Problem
	RootNode    *ProofTreeNode
	NodeFactory *NodeFactory
	Graph       *AccessibilityGraph

	IsProofCorrect bool
	HasTimeout     bool
	ExecutionLog   string

	domainType FirstOrderDomainType
}

func NewProofTree(problem *Problem, factory *NodeFactory, root *ProofTreeNode) *ProofTree {
	domainType := ConstantDomain
	if problem.Logic.FirstOrder != nil {
		domainType = problem.Logic.FirstOrder.DomainType
	}
	return &ProofTree{
		Problem:     problem,
		RootNode:    root,
		NodeFactory: factory,
		Graph:       NewAccessibilityGraph(),
		domainType:  domainType,
	}
}

func (t *ProofTree) GetAllPaths() []*ProofTreePath {
	return t.RootNode.GetAllPaths(t.domainType)
}

// GetPathsThatGoThroughNode returns every path containing node.
func (t *ProofTree) GetPathsThatGoThroughNode(nodeID NodeID) []*ProofTreePath {
	var out []*ProofTreePath
	for _, p := range t.GetAllPaths() {
		if p.ContainsNodeWithID(nodeID) {
			out = append(out, p)
		}
	}
	return out
}

func (t *ProofTree) GetNodeWithID(id NodeID) *ProofTreeNode {
	return t.RootNode.GetNodeWithID(id)
}

func (t *ProofTree) TotalNodeCount() int {
	return t.RootNode.TotalNodeCount()
}

// CheckForContradictions re-scans every path for contradictory node pairs
// under the problem's semantics, marks them, and declares the tree proved
// once every path is closed.
func (t *ProofTree) CheckForContradictions() {
	semantics := t.Problem.Logic.Semantics
	paths := t.GetAllPaths()
	contradictoryPathCount := 0

	for _, p := range paths {
		pairs := p.GetContradictoryNodeIDs(semantics)
		for _, pair := range pairs {
			t.RootNode.MarkNodeAsContradictory(pair[0], pair[1])
		}
		if len(pairs) > 0 {
			contradictoryPathCount++
		}
	}

	if contradictoryPathCount > 0 {
		t.ExecutionLog += "\n\nFound contradictions on paths.\n"
	}

	if len(paths) > 0 && contradictoryPathCount == len(paths) {
		t.IsProofCorrect = true
	}
}

// AppendSubtreeAfterDecomposition attaches subtree at every open
// (non-contradictory) leaf of every path that currently passes through
// nodeID. A node can have more than one such leaf when a branching rule
// already fired below it before it was itself decomposed (branch priority
// can defer a node's own decomposition past a β-split that happened
// underneath it). Every placement beyond the first gets a structurally
// identical copy of the subtree with freshly minted node ids, keeping ids
// unique and dense within the tree instead of reusing one node object at
// multiple tree positions.
func (t *ProofTree) AppendSubtreeAfterDecomposition(nodeID NodeID, subtree *ProofSubtree) []*ProofTreeNode {
	if subtree.IsEmpty() {
		return nil
	}

	seenLeaf := map[NodeID]bool{}
	var targets []NodeID
	for _, p := range t.GetAllPaths() {
		leaf := p.Nodes[len(p.Nodes)-1]
		if leaf.IsContradictory || !p.ContainsNodeWithID(nodeID) || seenLeaf[leaf.ID] {
			continue
		}
		seenLeaf[leaf.ID] = true
		targets = append(targets, leaf.ID)
	}

	var newRoots []*ProofTreeNode
	for i, leafID := range targets {
		st := subtree
		if i > 0 {
			st = cloneSubtreeWithFreshIDs(t.NodeFactory, subtree)
		}
		t.RootNode.appendSubtreeRecursive(st, map[NodeID]bool{leafID: true})
		newRoots = append(newRoots, st.Nodes()...)
	}
	return newRoots
}

func cloneSubtreeWithFreshIDs(factory *NodeFactory, subtree *ProofSubtree) *ProofSubtree {
	return &ProofSubtree{
		Left:   cloneNodeWithFreshIDs(factory, subtree.Left),
		Middle: cloneNodeWithFreshIDs(factory, subtree.Middle),
		Right:  cloneNodeWithFreshIDs(factory, subtree.Right),
	}
}

func cloneNodeWithFreshIDs(factory *NodeFactory, n *ProofTreeNode) *ProofTreeNode {
	if n == nil {
		return nil
	}
	clone := &ProofTreeNode{
		ID:            factory.NewNodeID(),
		Formula:       n.Formula,
		SpawnerNodeID: n.SpawnerNodeID,
	}
	clone.Left = cloneNodeWithFreshIDs(factory, n.Left)
	clone.Middle = cloneNodeWithFreshIDs(factory, n.Middle)
	clone.Right = cloneNodeWithFreshIDs(factory, n.Right)
	return clone
}
