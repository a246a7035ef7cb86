package prover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFrameValidatorRejectsNonTransitiveFrameWhenRequired guards against the
// inverted-transitivity bug: a frame missing the closing edge between two
// chained accessibility edges must be rejected once the logic requires
// transitivity, and accepted once that edge is present.
func TestFrameValidatorRejectsNonTransitiveFrameWhenRequired(t *testing.T) {
	r := require.New(t)

	worlds := []PossibleWorld{0, 1, 2}
	chainOnly := []GraphVertex{
		{From: 0, To: 1},
		{From: 1, To: 2},
	}
	closed := append([]GraphVertex{}, chainOnly...)
	closed = append(closed, GraphVertex{From: 0, To: 2})

	r.False(validateFrame(worlds, chainOnly, FrameConditions{Transitive: true}),
		"0->1->2 without the closing 0->2 edge must be rejected when transitivity is required")
	r.True(validateFrame(worlds, closed, FrameConditions{Transitive: true}),
		"0->1->2 with the closing 0->2 edge must be accepted")

	r.True(validateFrame(worlds, chainOnly, FrameConditions{}),
		"the same frame is valid when the logic does not require transitivity")
}

func TestFrameValidatorReflexiveAndSymmetric(t *testing.T) {
	r := require.New(t)

	worlds := []PossibleWorld{0, 1}
	missingSelfLoop := []GraphVertex{{From: 0, To: 1}, {From: 1, To: 0}}
	r.False(validateFrame(worlds, missingSelfLoop, FrameConditions{Reflexive: true}))

	withSelfLoops := []GraphVertex{
		{From: 0, To: 0}, {From: 1, To: 1}, {From: 0, To: 1}, {From: 1, To: 0},
	}
	r.True(validateFrame(worlds, withSelfLoops, FrameConditions{Reflexive: true, Symmetric: true}))

	oneDirectionOnly := []GraphVertex{{From: 0, To: 0}, {From: 1, To: 1}, {From: 0, To: 1}}
	r.False(validateFrame(worlds, oneDirectionOnly, FrameConditions{Symmetric: true}))
}

func TestHasDisconnectedWorld(t *testing.T) {
	r := require.New(t)

	worlds := []PossibleWorld{0, 1, 2}
	connected := []GraphVertex{{From: 0, To: 1}, {From: 1, To: 2}}
	r.False(hasDisconnectedWorld(worlds, connected))

	orphan := []GraphVertex{{From: 0, To: 1}}
	r.True(hasDisconnectedWorld(worlds, orphan), "world 2 is unreachable from world 0")
}

func TestExtractSATFindsCountermodelForInvalidPropositionalArgument(t *testing.T) {
	r := require.New(t)

	p := Atomic("p")
	q := Atomic("q")
	problem := NewProblem("affirming-the-consequent-sat", NewPropositionalLogic(),
		[]*Formula{q, Imply(p, q)}, p)

	solver := GiniSATSolver{}
	translator := &TseitinTranslator{}
	policy := DefaultCountermodelPolicy()

	cm, ok, err := ExtractSAT(problem, solver, translator, 1, nil, policy)
	r.NoError(err)
	r.True(ok)
	r.NotNil(cm)
	r.Equal("sat-fallback", cm.ExtractedBy)
}
