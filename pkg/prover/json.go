package prover

import "encoding/json"

// nodeJSON is the wire shape of one ProofTreeNode: formula rendered through
// the package's own notation rather than Go's default struct dump, plus
// enough structure to reconstruct the tree shape and trace closures back to
// their contradiction partner.
type nodeJSON struct {
	ID               NodeID      `json:"id"`
	Formula          string      `json:"formula"`
	IsContradictory  bool        `json:"is_contradictory"`
	ContrarianNodeID *NodeID     `json:"contrarian_node_id,omitempty"`
	Left             *nodeJSON   `json:"left,omitempty"`
	Middle           *nodeJSON   `json:"middle,omitempty"`
	Right            *nodeJSON   `json:"right,omitempty"`
}

func newNodeJSON(n *ProofTreeNode, opts FormulaFormatOptions) *nodeJSON {
	if n == nil {
		return nil
	}
	return &nodeJSON{
		ID:               n.ID,
		Formula:          formatFormula(n.Formula, 0, opts),
		IsContradictory:  n.IsContradictory,
		ContrarianNodeID: n.ContrarianNodeID,
		Left:             newNodeJSON(n.Left, opts),
		Middle:           newNodeJSON(n.Middle, opts),
		Right:            newNodeJSON(n.Right, opts),
	}
}

type vertexJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type proofTreeJSON struct {
	LogicName   string       `json:"logic"`
	Verdict     string       `json:"verdict"`
	Root        *nodeJSON    `json:"root"`
	Worlds      []string     `json:"worlds,omitempty"`
	Vertices    []vertexJSON `json:"vertices,omitempty"`
	NodeCount   int          `json:"node_count"`
	HasTimeout  bool         `json:"has_timeout"`
}

// MarshalJSON renders a finished proof result as a self-contained document:
// enough to re-render the tree and accessibility graph without holding a
// reference back to this package's in-memory types.
func (r *ProofResult) MarshalJSON() ([]byte, error) {
	opts := FormulaFormatOptions{ShowWorld: true, ShowSign: true}
	doc := proofTreeJSON{
		LogicName:  r.Tree.Problem.Logic.Name,
		Verdict:    r.Verdict.String(),
		Root:       newNodeJSON(r.Tree.RootNode, opts),
		NodeCount:  r.Tree.TotalNodeCount(),
		HasTimeout: r.Tree.HasTimeout,
	}
	for _, w := range r.Tree.Graph.Worlds() {
		doc.Worlds = append(doc.Worlds, w.String())
	}
	for _, v := range r.Tree.Graph.Vertices() {
		doc.Vertices = append(doc.Vertices, vertexJSON{From: v.From.String(), To: v.To.String()})
	}
	return json.Marshal(doc)
}

type countermodelJSON struct {
	ExtractedBy string              `json:"extracted_by"`
	Worlds      []string            `json:"worlds"`
	Vertices    []vertexJSON        `json:"vertices"`
	TrueAtoms   map[string][]string `json:"true_atoms"`
	Domain      []string            `json:"domain,omitempty"`
}

func (c *Countermodel) MarshalJSON() ([]byte, error) {
	doc := countermodelJSON{
		ExtractedBy: c.ExtractedBy,
		Domain:      c.Domain,
		TrueAtoms:   map[string][]string{},
	}
	for _, w := range c.Worlds {
		doc.Worlds = append(doc.Worlds, w.String())
	}
	for _, v := range c.Vertices {
		doc.Vertices = append(doc.Vertices, vertexJSON{From: v.From.String(), To: v.To.String()})
	}
	for w, atoms := range c.TrueAtoms {
		doc.TrueAtoms[w.String()] = atoms
	}
	return json.Marshal(doc)
}

// problemJSON is the input-side wire shape: a logic name the caller's
// catalog must resolve, plus premises and conclusion rendered as plain
// strings for an external parser to re-parse, not this package's own
// Formula values (Problem has no ungrounded exported parser of its own;
// see Parser in interfaces.go).
type problemJSON struct {
	ID         string   `json:"id"`
	Logic      string   `json:"logic"`
	Premises   []string `json:"premises"`
	Conclusion string   `json:"conclusion"`
}

// MarshalJSON renders a Problem for logging or persistence. It is lossy by
// design: formulas round-trip through a Parser, not through this package's
// internal AST.
func (p *Problem) MarshalJSON() ([]byte, error) {
	opts := DefaultFormulaFormatOptions()
	doc := problemJSON{ID: p.ID, Logic: p.Logic.Name, Conclusion: formatFormula(p.Conclusion, 0, opts)}
	for _, premise := range p.Premises {
		doc.Premises = append(doc.Premises, formatFormula(premise, 0, opts))
	}
	return json.Marshal(doc)
}
