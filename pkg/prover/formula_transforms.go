package prover

// InWorld re-tags a formula's top-level extras to world w without recursing
// into subformulas. Rules that need to push a world downward through a
// compound formula do so explicitly, one connective at a time.
func (f *Formula) InWorld(w PossibleWorld) *Formula {
	clone := *f
	if clone.Kind != KindComment {
		clone.Extras = clone.Extras.withWorld(w)
	}
	return &clone
}

// WithSign re-tags a formula's top-level extras with sign s, used by
// many-valued and fuzzy logics in place of classical negation.
func (f *Formula) WithSign(s Sign) *Formula {
	clone := *f
	if clone.Kind != KindComment {
		clone.Extras = clone.Extras.withSign(s)
	}
	return &clone
}

// Hidden marks a formula as hidden from presentation while remaining fully
// active for rule matching and contradiction detection.
func (f *Formula) Hidden() *Formula {
	clone := *f
	if clone.Kind != KindComment {
		clone.Extras = clone.Extras.withHidden(true)
	}
	return &clone
}

// WithExtraFuzzyTag attaches an additional fuzzy tag to the formula's extras.
func (f *Formula) WithExtraFuzzyTag(tag FuzzyTag) *Formula {
	clone := *f
	if clone.Kind != KindComment {
		clone.Extras = clone.Extras.withExtraTag(tag)
	}
	return &clone
}

// Instantiated replaces every occurrence of the free variable named
// variableName throughout the formula (recursing into subformulas and
// quantifier bodies, but not past a quantifier that rebinds the same name)
// with an instance bound to objectName. Re-instantiating with the same
// target is idempotent.
func (f *Formula) Instantiated(variableName string, objectName string) *Formula {
	if f == nil {
		return nil
	}
	clone := *f

	instantiateArg := func(a PredicateArgument) PredicateArgument {
		if a.VariableName() == variableName {
			return a.Instantiated(objectName)
		}
		return a
	}

	switch f.Kind {
	case KindAtomic:
		clone.Args = make([]PredicateArgument, len(f.Args))
		for i, a := range f.Args {
			clone.Args[i] = instantiateArg(a)
		}
	case KindNon, KindPossible, KindNecessary, KindInPast, KindInFuture:
		clone.Operand = f.Operand.Instantiated(variableName, objectName)
	case KindAnd, KindOr, KindImply, KindBiImply, KindStrictImply, KindConditional:
		clone.Left = f.Left.Instantiated(variableName, objectName)
		clone.Right = f.Right.Instantiated(variableName, objectName)
	case KindExists, KindForAll:
		if f.BoundVar.VariableName() == variableName {
			// the quantifier rebinds this name; its body is out of scope
			return &clone
		}
		clone.Body = f.Body.Instantiated(variableName, objectName)
	case KindEquals:
		clone.ArgX = instantiateArg(f.ArgX)
		clone.ArgY = instantiateArg(f.ArgY)
	case KindDefinitelyExists:
		clone.ArgX = instantiateArg(f.ArgX)
	}

	return &clone
}

// Equal compares two formulas for rule-matching purposes: structurally
// identical modulo the hidden flag.
func (f *Formula) Equal(other *Formula) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.Kind != other.Kind {
		return false
	}
	if f.Kind != KindComment && !f.Extras.equalIgnoringHidden(other.Extras) {
		return false
	}

	switch f.Kind {
	case KindComment:
		return f.Text == other.Text
	case KindAtomic:
		if f.Name != other.Name || len(f.Args) != len(other.Args) {
			return false
		}
		for i := range f.Args {
			if !f.Args[i].Equal(other.Args[i]) {
				return false
			}
		}
		return true
	case KindNon, KindPossible, KindNecessary, KindInPast, KindInFuture:
		return f.Operand.Equal(other.Operand)
	case KindAnd, KindOr, KindImply, KindBiImply, KindStrictImply, KindConditional:
		return f.Left.Equal(other.Left) && f.Right.Equal(other.Right)
	case KindExists, KindForAll:
		return f.BoundVar.Equal(other.BoundVar) && f.Body.Equal(other.Body)
	case KindEquals:
		return f.ArgX.Equal(other.ArgX) && f.ArgY.Equal(other.ArgY)
	case KindDefinitelyExists:
		return f.ArgX.Equal(other.ArgX)
	case KindLessThan, KindGreaterOrEqualThan:
		return f.TagX == other.TagX && f.TagY == other.TagY
	}
	return false
}

// CollectPredicateArguments walks the formula and returns every predicate
// argument appearing in it.
func (f *Formula) CollectPredicateArguments() []PredicateArgument {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case KindAtomic:
		return append([]PredicateArgument{}, f.Args...)
	case KindNon, KindPossible, KindNecessary, KindInPast, KindInFuture:
		return f.Operand.CollectPredicateArguments()
	case KindAnd, KindOr, KindImply, KindBiImply, KindStrictImply, KindConditional:
		out := f.Left.CollectPredicateArguments()
		return append(out, f.Right.CollectPredicateArguments()...)
	case KindExists, KindForAll:
		return f.Body.CollectPredicateArguments()
	case KindEquals:
		return []PredicateArgument{f.ArgX, f.ArgY}
	case KindDefinitelyExists:
		return []PredicateArgument{f.ArgX}
	}
	return nil
}
