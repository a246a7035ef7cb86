// Package prover implements an analytic-tableau (semantic tree) proof
// engine: the formula AST, proof tree, accessibility graph, decomposition
// queue, per-logic rule dispatch, and countermodel extraction. Parsing,
// catalog loading and presentation are external collaborators and are not
// implemented here.
package prover

import "fmt"

// Sign marks a formula in many-valued and fuzzy tableaux, standing in for
// true/false where classical tableaux would instead negate the formula.
type Sign int

const (
	// SignNone is used by two-valued (classical) logics, which never sign formulas.
	SignNone Sign = iota
	SignPlus
	SignMinus
)

func (s Sign) String() string {
	switch s {
	case SignPlus:
		return "+"
	case SignMinus:
		return "-"
	default:
		return ""
	}
}

// Flip returns the opposite sign. Flipping SignNone is a no-op.
func (s Sign) Flip() Sign {
	switch s {
	case SignPlus:
		return SignMinus
	case SignMinus:
		return SignPlus
	default:
		return SignNone
	}
}

// FormulaExtras is carried by every non-Comment Formula variant: the
// possible world it is asserted in, its sign (for many-valued/fuzzy
// logics), whether it is hidden from presentation (but still active for
// rule matching), and the multiset of fuzzy tags attached to it.
type FormulaExtras struct {
	World    PossibleWorld
	Sign     Sign
	IsHidden bool
	Tags     FuzzyTagSet
}

// DefaultExtras returns extras asserted in the actual world, unsigned,
// visible, with no fuzzy tags.
func DefaultExtras() FormulaExtras {
	return FormulaExtras{World: ZeroWorld, Sign: SignNone}
}

func (e FormulaExtras) withWorld(w PossibleWorld) FormulaExtras {
	e.World = w
	return e
}

func (e FormulaExtras) withSign(s Sign) FormulaExtras {
	e.Sign = s
	return e
}

func (e FormulaExtras) withHidden(hidden bool) FormulaExtras {
	e.IsHidden = hidden
	return e
}

func (e FormulaExtras) withExtraTag(tag FuzzyTag) FormulaExtras {
	e.Tags = e.Tags.Plus(tag)
	return e
}

// equalIgnoringHidden compares two extras records the way rule-matching
// does: the hidden flag never participates.
func (e FormulaExtras) equalIgnoringHidden(other FormulaExtras) bool {
	return e.World == other.World && e.Sign == other.Sign && e.Tags.Equal(other.Tags)
}

func (e FormulaExtras) equalIncludingHidden(other FormulaExtras) bool {
	return e.equalIgnoringHidden(other) && e.IsHidden == other.IsHidden
}

// Kind discriminates the tagged-union variants of Formula: one struct, one
// discriminant, payload fields reused across variants with similar shape,
// in place of a recursive sum type with owned boxed subtrees.
type Kind int

const (
	KindAtomic Kind = iota
	KindNon
	KindPossible
	KindNecessary
	KindInPast
	KindInFuture
	KindAnd
	KindOr
	KindImply
	KindBiImply
	KindStrictImply
	KindConditional
	KindExists
	KindForAll
	KindEquals
	KindDefinitelyExists
	KindLessThan
	KindGreaterOrEqualThan
	KindComment
)

// Formula is an immutable tagged tree. Transformations (InWorld, WithSign,
// Instantiated, ...) always return a fresh value; no in-place mutation is
// ever exposed. Comment is the one variant that carries neither extras nor
// children: it is an opaque trace payload, never decomposed by any rule.
type Formula struct {
	Kind Kind

	// KindAtomic
	Name string
	Args []PredicateArgument

	// KindNon, KindPossible, KindNecessary, KindInPast, KindInFuture
	Operand *Formula

	// KindAnd, KindOr, KindImply, KindBiImply, KindStrictImply, KindConditional
	Left, Right *Formula

	// KindExists, KindForAll
	BoundVar PredicateArgument
	Body     *Formula

	// KindEquals, KindDefinitelyExists
	ArgX, ArgY PredicateArgument

	// KindLessThan, KindGreaterOrEqualThan (fuzzy tag inequality)
	TagX, TagY FuzzyTag

	// KindComment
	Text string

	Extras FormulaExtras
}

// --- constructors ---

func Atomic(name string, args ...PredicateArgument) *Formula {
	return &Formula{Kind: KindAtomic, Name: name, Args: args, Extras: DefaultExtras()}
}

func Non(p *Formula) *Formula {
	return &Formula{Kind: KindNon, Operand: p, Extras: p.Extras}
}

func Possible(p *Formula) *Formula {
	return &Formula{Kind: KindPossible, Operand: p, Extras: p.Extras}
}

func Necessary(p *Formula) *Formula {
	return &Formula{Kind: KindNecessary, Operand: p, Extras: p.Extras}
}

func InPast(p *Formula) *Formula {
	return &Formula{Kind: KindInPast, Operand: p, Extras: p.Extras}
}

func InFuture(p *Formula) *Formula {
	return &Formula{Kind: KindInFuture, Operand: p, Extras: p.Extras}
}

func And(p, q *Formula) *Formula {
	return &Formula{Kind: KindAnd, Left: p, Right: q, Extras: p.Extras}
}

func Or(p, q *Formula) *Formula {
	return &Formula{Kind: KindOr, Left: p, Right: q, Extras: p.Extras}
}

func Imply(p, q *Formula) *Formula {
	return &Formula{Kind: KindImply, Left: p, Right: q, Extras: p.Extras}
}

func BiImply(p, q *Formula) *Formula {
	return &Formula{Kind: KindBiImply, Left: p, Right: q, Extras: p.Extras}
}

func StrictImply(p, q *Formula) *Formula {
	return &Formula{Kind: KindStrictImply, Left: p, Right: q, Extras: p.Extras}
}

func Conditional(p, q *Formula) *Formula {
	return &Formula{Kind: KindConditional, Left: p, Right: q, Extras: p.Extras}
}

func Exists(v PredicateArgument, body *Formula) *Formula {
	return &Formula{Kind: KindExists, BoundVar: v, Body: body, Extras: body.Extras}
}

func ForAll(v PredicateArgument, body *Formula) *Formula {
	return &Formula{Kind: KindForAll, BoundVar: v, Body: body, Extras: body.Extras}
}

func Equals(x, y PredicateArgument, extras FormulaExtras) *Formula {
	return &Formula{Kind: KindEquals, ArgX: x, ArgY: y, Extras: extras}
}

func DefinitelyExists(x PredicateArgument, extras FormulaExtras) *Formula {
	return &Formula{Kind: KindDefinitelyExists, ArgX: x, Extras: extras}
}

func LessThan(x, y FuzzyTag, extras FormulaExtras) *Formula {
	return &Formula{Kind: KindLessThan, TagX: x, TagY: y, Extras: extras}
}

func GreaterOrEqualThan(x, y FuzzyTag, extras FormulaExtras) *Formula {
	return &Formula{Kind: KindGreaterOrEqualThan, TagX: x, TagY: y, Extras: extras}
}

func CommentFormula(text string) *Formula {
	return &Formula{Kind: KindComment, Text: text}
}

// Clone returns a deep copy. Formula values are otherwise never mutated in
// place, but Clone exists for callers that want an independently owned
// copy.
func (f *Formula) Clone() *Formula {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Args = append([]PredicateArgument{}, f.Args...)
	clone.Extras.Tags = f.Extras.Tags.Clone()
	clone.Operand = f.Operand.Clone()
	clone.Left = f.Left.Clone()
	clone.Right = f.Right.Clone()
	clone.Body = f.Body.Clone()
	return &clone
}

// GetPossibleWorld returns the world this formula is asserted in. Comment
// formulas have no world and return ZeroWorld.
func (f *Formula) GetPossibleWorld() PossibleWorld {
	if f.Kind == KindComment {
		return ZeroWorld
	}
	return f.Extras.World
}

func (f *Formula) IsHidden() bool {
	return f.Kind != KindComment && f.Extras.IsHidden
}

func (f *Formula) String() string {
	return formatFormula(f, 0, DefaultFormulaFormatOptions())
}

func (f *Formula) GoString() string {
	return fmt.Sprintf("Formula(%s)", f.String())
}
