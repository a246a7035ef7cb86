package prover

// QueuePriority ranks how eagerly the decomposition queue should process a
// node. Lower numeric value pops first; the pop order itself is a literal
// slice rather than an enum-iteration derive, since Go has none.
type QueuePriority int

const (
	MostImportant QueuePriority = iota
	MoreImportant
	Important
	Normal
	LessImportant
	LeastImportant
)

var priorityOrder = []QueuePriority{
	MostImportant, MoreImportant, Important, Normal, LessImportant, LeastImportant,
}

// DecompositionQueue is a multi-level priority queue, not FIFO: higher
// priority (lower QueuePriority value) is always decomposed first within
// the set of currently consumable nodes.
type DecompositionQueue struct {
	tree     *ProofTree
	buckets  map[QueuePriority][]*ProofTreeNode
	enqueued map[NodeID]bool
}

func NewDecompositionQueue(tree *ProofTree) *DecompositionQueue {
	return &DecompositionQueue{
		tree:     tree,
		buckets:  map[QueuePriority][]*ProofTreeNode{},
		enqueued: map[NodeID]bool{},
	}
}

func (q *DecompositionQueue) IsEmpty() bool {
	for _, p := range priorityOrder {
		if len(q.buckets[p]) > 0 {
			return false
		}
	}
	return true
}

// PushNode enqueues node and recursively any children it already has (the
// initial premise chain arrives pre-linked). Each node id is enqueued at
// most once over the run.
func (q *DecompositionQueue) PushNode(n *ProofTreeNode) {
	if n == nil {
		return
	}
	if n.Left != nil {
		q.PushNode(n.Left)
	}
	if n.Middle != nil {
		q.PushNode(n.Middle)
	}
	if n.Right != nil {
		q.PushNode(n.Right)
	}

	if q.enqueued[n.ID] {
		return
	}
	q.enqueued[n.ID] = true
	priority := q.classify(n)
	q.buckets[priority] = append(q.buckets[priority], n)
}

// PushSubtree enqueues every node of a freshly appended subtree.
func (q *DecompositionQueue) PushSubtree(nodes []*ProofTreeNode) {
	for _, n := range nodes {
		q.PushNode(n)
	}
}

// Pop removes and returns the highest-priority consumable node.
func (q *DecompositionQueue) Pop() *ProofTreeNode {
	for _, p := range priorityOrder {
		bucket := q.buckets[p]
		if len(bucket) > 0 {
			q.buckets[p] = bucket[1:]
			return bucket[0]
		}
	}
	return nil
}

func (q *DecompositionQueue) classify(n *ProofTreeNode) QueuePriority {
	f := n.Formula
	switch f.Kind {
	case KindForAll:
		if q.hasCandidateWitness(n, f) {
			return Normal
		}
		return LeastImportant

	case KindBiImply:
		return LessImportant
	case KindNon:
		switch f.Operand.Kind {
		case KindBiImply, KindAnd:
			return LessImportant
		case KindPossible, KindNecessary, KindStrictImply:
			return MoreImportant
		}
	case KindOr, KindImply:
		return LessImportant

	case KindNecessary:
		return MoreImportant
	case KindPossible:
		return Important
	case KindStrictImply:
		return MoreImportant
	}

	return MostImportant
}

// hasCandidateWitness approximates witness availability: a ∀x.p node can
// be given Normal priority (bind to an existing witness) whenever some
// already-instantiated predicate argument appears on a path through it;
// otherwise it must wait to mint a Herbrand witness and is deprioritized to
// LeastImportant.
func (q *DecompositionQueue) hasCandidateWitness(n *ProofTreeNode, f *Formula) bool {
	if q.tree == nil {
		return false
	}
	for _, path := range q.tree.GetPathsThatGoThroughNode(n.ID) {
		for _, arg := range path.CollectPredicateArguments() {
			if arg.IsInstantiated() {
				return true
			}
		}
	}
	return false
}
