package prover

// ProblemFlags carries small per-problem configuration: which designators
// are non-rigid, and whether the benchmarking harness has asked the engine
// to skip its own contradiction check (so it can measure raw decomposition
// cost in isolation). The engine does not read SkipContradictionCheck; it
// checks for contradictions whatever its value.
type ProblemFlags struct {
	NonRigidDesignators   map[string]bool
	SkipContradictionCheck bool
}

func NewProblemFlags() ProblemFlags {
	return ProblemFlags{NonRigidDesignators: map[string]bool{}}
}

// Problem pairs a logic, a set of premises, and a conclusion.
type Problem struct {
	ID         string
	Logic      *Logic
	Premises   []*Formula
	Conclusion *Formula
	Flags      ProblemFlags
}

func NewProblem(id string, logic *Logic, premises []*Formula, conclusion *Formula) *Problem {
	return &Problem{ID: id, Logic: logic, Premises: premises, Conclusion: conclusion, Flags: NewProblemFlags()}
}

// FindAllNonRigidDesignators returns a copy of the object names the
// problem's flags already mark non-rigid; it does not scan the premises or
// the conclusion. The flags are populated by the external parser/catalog
// loader and echoed back here so modal identity rules can consult them.
func (p *Problem) FindAllNonRigidDesignators() map[string]bool {
	out := map[string]bool{}
	for name := range p.Flags.NonRigidDesignators {
		out[name] = true
	}
	return out
}

// Rule is a function (ctx, node) -> subtree-or-nil. nil means "does not
// apply"; rules never return an error, so the engine's rule
// dispatch is total.
type Rule func(ctx *RuleContext, node *ProofTreeNode) *ProofSubtree

// FirstOrderDescriptor configures quantifier handling for a first-order
// logic.
type FirstOrderDescriptor struct {
	DomainType FirstOrderDomainType
}

// ModalityDescriptor bundles the applicability predicates and frame
// conditions parameterizing possibility/necessity handling for one modal
// logic.
type ModalityDescriptor struct {
	IsPossibilityApplicable func(ctx *RuleContext, node *ProofTreeNode, extras FormulaExtras) bool
	IsNecessityApplicable   func(ctx *RuleContext, node *ProofTreeNode, extras FormulaExtras) bool
	Frame                   FrameConditions
}

// Logic is characterized by a name, semantics, a rule list, and optionally
// a modality descriptor and first-order descriptor.
type Logic struct {
	Name       string
	Semantics  Semantics
	Rules      []Rule
	Modality   *ModalityDescriptor
	FirstOrder *FirstOrderDescriptor
}

func (l *Logic) IsModal() bool {
	return l.Modality != nil
}

func (l *Logic) IsFirstOrder() bool {
	return l.FirstOrder != nil
}
