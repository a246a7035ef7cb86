package prover

import (
	"fmt"
	"strings"
)

// FormulaFormatOptions controls how Formula.String() renders a formula.
// This package never consults global state when formatting: a caller that
// wants a package-wide default should hold one explicitly in its own
// presentation layer and pass it down.
type FormulaFormatOptions struct {
	ShowWorld bool
	ShowSign  bool
}

func DefaultFormulaFormatOptions() FormulaFormatOptions {
	return FormulaFormatOptions{ShowWorld: false, ShowSign: false}
}

func formatArgs(args []PredicateArgument) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func formatFormula(f *Formula, depth int, opts FormulaFormatOptions) string {
	if f == nil {
		return "<nil>"
	}

	suffix := ""
	if f.Kind != KindComment {
		if opts.ShowWorld {
			suffix += fmt.Sprintf("@%s", f.Extras.World)
		}
		if opts.ShowSign && f.Extras.Sign != SignNone {
			suffix += f.Extras.Sign.String()
		}
	}

	body := formatFormulaBody(f, depth, opts)
	return body + suffix
}

func formatFormulaBody(f *Formula, depth int, opts FormulaFormatOptions) string {
	unary := func(op string, x *Formula) string {
		return op + formatFormula(x, depth+1, opts)
	}
	binary := func(x *Formula, op string, y *Formula) string {
		inner := fmt.Sprintf("%s %s %s", formatFormula(x, depth+1, opts), op, formatFormula(y, depth+1, opts))
		if depth == 0 {
			return inner
		}
		return "(" + inner + ")"
	}
	quantifier := func(op string, v PredicateArgument, body *Formula) string {
		return fmt.Sprintf("%s%s(%s)", op, v, formatFormula(body, depth+1, opts))
	}

	switch f.Kind {
	case KindAtomic:
		return f.Name + formatArgs(f.Args)
	case KindNon:
		return unary("¬", f.Operand)
	case KindPossible:
		return unary("◇", f.Operand)
	case KindNecessary:
		return unary("□", f.Operand)
	case KindInPast:
		return unary("ᵖ", f.Operand)
	case KindInFuture:
		return unary("ᶠ", f.Operand)
	case KindAnd:
		return binary(f.Left, "∧", f.Right)
	case KindOr:
		return binary(f.Left, "∨", f.Right)
	case KindImply:
		return binary(f.Left, "⊃", f.Right)
	case KindBiImply:
		return binary(f.Left, "≡", f.Right)
	case KindStrictImply:
		return binary(f.Left, "⥽", f.Right)
	case KindConditional:
		return binary(f.Left, ">", f.Right)
	case KindExists:
		return quantifier("∃", f.BoundVar, f.Body)
	case KindForAll:
		return quantifier("∀", f.BoundVar, f.Body)
	case KindEquals:
		return fmt.Sprintf("%s=%s", f.ArgX, f.ArgY)
	case KindDefinitelyExists:
		return fmt.Sprintf("E!%s", f.ArgX)
	case KindLessThan:
		return fmt.Sprintf("%s<%s", f.TagX, f.TagY)
	case KindGreaterOrEqualThan:
		return fmt.Sprintf("%s>=%s", f.TagX, f.TagY)
	case KindComment:
		return fmt.Sprintf("/* %s */", f.Text)
	}
	return "?"
}
