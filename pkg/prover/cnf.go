package prover

import "fmt"

// TseitinTranslator implements CNFTranslator by introducing one auxiliary
// variable per compound subformula and asserting its biconditional
// equivalence to that subformula's connective, which keeps the resulting
// clause count linear in the size of f instead of exponential in its
// nesting depth.
type TseitinTranslator struct{}

func NewTseitinTranslator() *TseitinTranslator { return &TseitinTranslator{} }

type tseitinState struct {
	clauses [][]int
	varOf   map[string]int
	next    int
}

func (t *TseitinTranslator) Translate(f *Formula) (clauses [][]int, varOf map[string]int, numVars int) {
	st := &tseitinState{varOf: map[string]int{}, next: 1}
	root := st.encode(f)
	st.clauses = append(st.clauses, []int{root})
	return st.clauses, st.varOf, st.next - 1
}

func (st *tseitinState) freshVar() int {
	v := st.next
	st.next++
	return v
}

func (st *tseitinState) atomVar(key string) int {
	if v, ok := st.varOf[key]; ok {
		return v
	}
	v := st.freshVar()
	st.varOf[key] = v
	return v
}

// encode returns the variable representing f's truth value, emitting
// Tseitin clauses for compound connectives along the way.
func (st *tseitinState) encode(f *Formula) int {
	switch f.Kind {
	case KindAtomic:
		return st.atomVar(atomKey(f))
	case KindNon:
		a := st.encode(f.Operand)
		v := st.freshVar()
		// v <-> -a
		st.clauses = append(st.clauses, []int{-v, -a}, []int{v, a})
		return v
	case KindAnd:
		a, b := st.encode(f.Left), st.encode(f.Right)
		v := st.freshVar()
		// v <-> a & b
		st.clauses = append(st.clauses, []int{-v, a}, []int{-v, b}, []int{v, -a, -b})
		return v
	case KindOr:
		a, b := st.encode(f.Left), st.encode(f.Right)
		v := st.freshVar()
		// v <-> a | b
		st.clauses = append(st.clauses, []int{v, -a}, []int{v, -b}, []int{-v, a, b})
		return v
	case KindImply:
		a, b := st.encode(f.Left), st.encode(f.Right)
		v := st.freshVar()
		// v <-> (-a | b)
		st.clauses = append(st.clauses, []int{v, a}, []int{v, -b}, []int{-v, -a, b})
		return v
	case KindBiImply:
		a, b := st.encode(f.Left), st.encode(f.Right)
		v := st.freshVar()
		st.clauses = append(st.clauses,
			[]int{-v, -a, b}, []int{-v, a, -b},
			[]int{v, a, b}, []int{v, -a, -b},
		)
		return v
	}
	// any other kind (modal, quantified, ...) is an opaque variable of its own
	return st.atomVar(formatFormula(f, 0, FormulaFormatOptions{ShowWorld: true, ShowSign: true}))
}

func atomKey(f *Formula) string {
	return fmt.Sprintf("%s@%s#%s", f.Name, f.GetPossibleWorld(), formatArgs(f.Args))
}
