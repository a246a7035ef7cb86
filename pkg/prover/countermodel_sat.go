package prover

// CountermodelPolicy configures behavior of the SAT-fallback extractor
// that is a deliberate choice rather than a hard correctness requirement.
type CountermodelPolicy struct {
	// RejectDisconnectedWorlds discards any candidate frame containing a
	// world unreachable from the actual world (ZeroWorld). Default true:
	// a countermodel with an orphan world is typically a sign the
	// enumeration over-generated rather than a meaningful distinct model,
	// but some callers studying frame structure in isolation want to see
	// it, hence this is a policy flag and not baked in.
	RejectDisconnectedWorlds bool
}

func DefaultCountermodelPolicy() CountermodelPolicy {
	return CountermodelPolicy{RejectDisconnectedWorlds: true}
}

// ExtractSAT is the fallback countermodel extractor: when a proof fails to
// close (or the caller wants an independent cross-check of a primary
// extraction), it enumerates candidate frames of 1 to maxWorlds worlds,
// encodes the problem's premises and negated conclusion as CNF via
// translator, and asks solver whether that encoding is satisfiable. The
// first frame that validates against both the logic's frame conditions and
// policy and has a satisfiable encoding is returned, with every true atom
// listed under ZeroWorld. The encoding does not depend on the candidate
// frame: modal and quantified subformulas are not expanded over its worlds
// or over a domain, but reach the translator as opaque variables.
// domainCandidates is not enumerated; it is copied into the result's
// Domain as given.
func ExtractSAT(problem *Problem, solver SATSolver, translator CNFTranslator, maxWorlds int, domainCandidates []string, policy CountermodelPolicy) (*Countermodel, bool, error) {
	frame := FrameConditions{}
	if problem.Logic.Modality != nil {
		frame = problem.Logic.Modality.Frame
	}

	for worldCount := 1; worldCount <= maxWorlds; worldCount++ {
		worlds := make([]PossibleWorld, worldCount)
		for i := range worlds {
			worlds[i] = PossibleWorld(i)
		}

		for _, edges := range candidateEdgeSets(worlds) {
			if !validateFrame(worlds, edges, frame) {
				continue
			}
			if policy.RejectDisconnectedWorlds && hasDisconnectedWorld(worlds, edges) {
				continue
			}

			formula := conjoinAll(problem.Premises, problem.Logic.Semantics.Negate(problem.Conclusion))
			clauses, varOf, numVars := translator.Translate(formula)
			sat, assignment := solver.Solve(clauses, numVars)
			if !sat {
				continue
			}

			return &Countermodel{
				Worlds:      worlds,
				Vertices:    edges,
				TrueAtoms:   trueAtomsFromAssignment(varOf, assignment),
				Domain:      domainCandidates,
				ExtractedBy: "sat-fallback",
			}, true, nil
		}
	}
	return nil, false, nil
}

// validateFrame is the single authoritative frame-condition checker the
// SAT-fallback path uses, replacing what were previously two
// near-duplicate validators. Transitivity is checked in its correct,
// non-inverted form: for every a, b, c with edges a->b and b->c present,
// a->c must also be present.
func validateFrame(worlds []PossibleWorld, edges []GraphVertex, cond FrameConditions) bool {
	has := map[GraphVertex]bool{}
	for _, e := range edges {
		has[e] = true
	}

	if cond.Reflexive {
		for _, w := range worlds {
			if !has[GraphVertex{From: w, To: w}] {
				return false
			}
		}
	}
	if cond.Symmetric {
		for _, e := range edges {
			if !has[GraphVertex{From: e.To, To: e.From}] {
				return false
			}
		}
	}
	if cond.Transitive {
		for _, ab := range edges {
			for _, bc := range edges {
				if ab.To != bc.From {
					continue
				}
				if !has[GraphVertex{From: ab.From, To: bc.To}] {
					return false
				}
			}
		}
	}
	if cond.Convergent {
		byFrom := map[PossibleWorld][]PossibleWorld{}
		for _, e := range edges {
			byFrom[e.From] = append(byFrom[e.From], e.To)
		}
		for _, successors := range byFrom {
			for _, u := range successors {
				for _, v := range successors {
					if u != v && !has[GraphVertex{From: u, To: v}] {
						return false
					}
				}
			}
		}
	}
	return true
}

func hasDisconnectedWorld(worlds []PossibleWorld, edges []GraphVertex) bool {
	reachable := map[PossibleWorld]bool{ZeroWorld: true}
	changed := true
	for changed {
		changed = false
		for _, e := range edges {
			if reachable[e.From] && !reachable[e.To] {
				reachable[e.To] = true
				changed = true
			}
		}
	}
	for _, w := range worlds {
		if !reachable[w] {
			return true
		}
	}
	return false
}

// candidateEdgeSets enumerates every subset of the complete edge relation
// over worlds, in increasing bitmask order (the empty relation first).
// There are 2^(n*n) subsets for n worlds, so this is only tractable for a
// very small maxWorlds.
func candidateEdgeSets(worlds []PossibleWorld) [][]GraphVertex {
	var all []GraphVertex
	for _, from := range worlds {
		for _, to := range worlds {
			all = append(all, GraphVertex{From: from, To: to})
		}
	}
	n := len(all)
	var out [][]GraphVertex
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var subset []GraphVertex
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, all[i])
			}
		}
		out = append(out, subset)
	}
	return out
}

func conjoinAll(premises []*Formula, extra *Formula) *Formula {
	result := extra
	for _, p := range premises {
		result = And(p, result)
	}
	return result
}

func trueAtomsFromAssignment(varOf map[string]int, assignment map[int]bool) map[PossibleWorld][]string {
	out := map[PossibleWorld][]string{}
	for key, v := range varOf {
		if assignment[v] {
			out[ZeroWorld] = append(out[ZeroWorld], key)
		}
	}
	return out
}
