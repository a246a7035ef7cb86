package prover

// NewPropositionalLogic is classical propositional logic: no worlds beyond
// the actual one, no quantifiers, binary semantics.
func NewPropositionalLogic() *Logic {
	return &Logic{Name: "propositional", Semantics: BinarySemantics{}, Rules: PropositionalRules()}
}

func modalLogic(name string, frame FrameConditions) *Logic {
	rules := append(PropositionalRules(), ModalRules()...)
	rules = append(rules, StrictImplyRules()...)
	return &Logic{
		Name:      name,
		Semantics: BinarySemantics{},
		Rules:     rules,
		Modality:  &ModalityDescriptor{Frame: frame},
	}
}

// NewConditionalLogic layers the selection-function conditional over a
// reflexive frame so the selected antecedent-world is distinct from, but
// reachable from, the evaluation world.
func NewConditionalLogic() *Logic {
	rules := append(PropositionalRules(), ConditionalRules()...)
	return &Logic{
		Name:      "conditional",
		Semantics: BinarySemantics{},
		Rules:     rules,
		Modality:  &ModalityDescriptor{Frame: FrameConditions{Reflexive: true}},
	}
}

// NewModalK is the minimal normal modal logic: no frame constraints.
func NewModalK() *Logic { return modalLogic("K", FrameConditions{}) }

// NewModalT adds reflexivity to K.
func NewModalT() *Logic { return modalLogic("T", FrameConditions{Reflexive: true}) }

// NewModalB adds reflexivity and symmetry to K.
func NewModalB() *Logic {
	return modalLogic("B", FrameConditions{Reflexive: true, Symmetric: true})
}

// NewModalS4 adds reflexivity and transitivity to K.
func NewModalS4() *Logic {
	return modalLogic("S4", FrameConditions{Reflexive: true, Transitive: true})
}

// NewModalS5 is the equivalence-relation frame: reflexive, symmetric,
// transitive.
func NewModalS5() *Logic {
	return modalLogic("S5", FrameConditions{Reflexive: true, Symmetric: true, Transitive: true})
}

// NewNonNormalModal builds a modal logic whose possibility/necessity rules
// are gated by custom applicability predicates instead of a closed frame
// (e.g. classical, non-normal systems where □/◇ do not distribute over
// every accessible world uniformly).
func NewNonNormalModal(name string, isPossibilityApplicable, isNecessityApplicable func(ctx *RuleContext, node *ProofTreeNode, extras FormulaExtras) bool) *Logic {
	rules := append(PropositionalRules(), ModalRules()...)
	return &Logic{
		Name:      name,
		Semantics: BinarySemantics{},
		Rules:     rules,
		Modality: &ModalityDescriptor{
			IsPossibilityApplicable: isPossibilityApplicable,
			IsNecessityApplicable:   isNecessityApplicable,
		},
	}
}

func firstOrderLogic(name string, domain FirstOrderDomainType) *Logic {
	rules := append(PropositionalRules(), QuantifierRules()...)
	rules = append(rules, identityInvarianceRule)
	return &Logic{
		Name:       name,
		Semantics:  BinarySemantics{},
		Rules:      rules,
		FirstOrder: &FirstOrderDescriptor{DomainType: domain},
	}
}

// NewFirstOrderConstantDomain is classical first-order logic with a single
// domain shared by every world (vacuous for a non-modal problem, relevant
// once combined with a modal frame by a caller that also sets Modality).
func NewFirstOrderConstantDomain() *Logic { return firstOrderLogic("FOL-constant", ConstantDomain) }

// NewFirstOrderVariableDomain requires DefinitelyExists bookkeeping before
// a universal can bind to an object at a given world.
func NewFirstOrderVariableDomain() *Logic { return firstOrderLogic("FOL-variable", VariableDomain) }

func manyValuedLogic(name string, semantics Semantics) *Logic {
	return &Logic{Name: name, Semantics: semantics, Rules: SignedPropositionalRules()}
}

func NewKleeneK3Logic() *Logic        { return manyValuedLogic("K3", KleeneK3Semantics()) }
func NewLukasiewiczL3Logic() *Logic   { return manyValuedLogic("L3", LukasiewiczL3Semantics()) }
func NewPriestLPLogic() *Logic        { return manyValuedLogic("LP", PriestLPSemantics()) }
func NewRMingle3Logic() *Logic        { return manyValuedLogic("RM3", RMingle3Semantics()) }
func NewFirstDegreeEntailmentLogic() *Logic {
	return manyValuedLogic("FDE", FirstDegreeEntailmentSemantics())
}

// NewFuzzyLukasiewiczLogic is the continuum-valued fuzzy tableau, whose
// contradiction detection is delegated to an external LP solver.
func NewFuzzyLukasiewiczLogic(solver LinearSolver) *Logic {
	return &Logic{Name: "fuzzy-Ł", Semantics: NewFuzzySemantics(solver), Rules: SignedPropositionalRules()}
}
