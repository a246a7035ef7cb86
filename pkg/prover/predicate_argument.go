package prover

import (
	"strconv"
	"strings"
)

// PredicateArgument names one argument slot of a predicate application, a
// bound quantifier variable, or a free/instantiated first-order term.
// Exactly one of "variable" or "instantiated (variable:object)" holds at
// any time.
type PredicateArgument struct {
	variableName    string
	instantiatedObj string // empty when not yet instantiated
}

// NewVariableArgument builds an un-instantiated predicate argument, e.g. the
// "x" in "P[x]" before a quantifier rule binds it.
func NewVariableArgument(name string) PredicateArgument {
	return PredicateArgument{variableName: name}
}

// IsInstantiated reports whether this argument has been bound to a concrete
// object name (a Herbrand witness or an existing designator).
func (p PredicateArgument) IsInstantiated() bool {
	return p.instantiatedObj != ""
}

// VariableName returns the argument's originating variable name, whether or
// not it has since been instantiated.
func (p PredicateArgument) VariableName() string {
	return p.variableName
}

// Object returns the bound object name. Only meaningful when IsInstantiated.
func (p PredicateArgument) Object() string {
	return p.instantiatedObj
}

// Instantiated returns a copy of this argument bound to objectName.
// Re-instantiating with the same target is idempotent.
func (p PredicateArgument) Instantiated(objectName string) PredicateArgument {
	return PredicateArgument{variableName: p.variableName, instantiatedObj: objectName}
}

func (p PredicateArgument) String() string {
	if p.IsInstantiated() {
		return p.variableName + ":" + p.instantiatedObj
	}
	return p.variableName
}

func (p PredicateArgument) Equal(other PredicateArgument) bool {
	return p.variableName == other.variableName && p.instantiatedObj == other.instantiatedObj
}

// herbrandWitnessSequence yields fresh constant names in the canonical
// lexicographic order used for Herbrand witnesses and universal fallback
// bindings: a, b, ..., z, a1, b1, ..., z1, a2, ...
func herbrandWitnessSequence(index int) string {
	letter := rune('a' + index%26)
	generation := index / 26
	if generation == 0 {
		return string(letter)
	}
	var sb strings.Builder
	sb.WriteRune(letter)
	sb.WriteString(strconv.Itoa(generation))
	return sb.String()
}
