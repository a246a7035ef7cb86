package prover

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProofResultMarshalJSONRoundTripsTopLevelFields(t *testing.T) {
	r := require.New(t)

	p := Atomic("p")
	q := Atomic("q")
	problem := NewProblem("modus-ponens", NewPropositionalLogic(), []*Formula{p, Imply(p, q)}, q)

	engine := NewEngine(DefaultResourceBounds())
	result, err := engine.Prove(problem)
	r.NoError(err)

	raw, err := json.Marshal(result)
	r.NoError(err)

	var doc map[string]interface{}
	r.NoError(json.Unmarshal(raw, &doc))
	r.Equal("propositional", doc["logic"])
	r.Equal("proved", doc["verdict"])
	r.NotNil(doc["root"])
}

func TestCountermodelMarshalJSONIncludesTrueAtoms(t *testing.T) {
	r := require.New(t)

	cm := &Countermodel{
		Worlds:      []PossibleWorld{ZeroWorld},
		Vertices:    nil,
		TrueAtoms:   map[PossibleWorld][]string{ZeroWorld: {"q"}},
		ExtractedBy: "primary",
	}

	raw, err := json.Marshal(cm)
	r.NoError(err)

	var doc map[string]interface{}
	r.NoError(json.Unmarshal(raw, &doc))
	r.Equal("primary", doc["extracted_by"])
	trueAtoms := doc["true_atoms"].(map[string]interface{})
	r.Equal([]interface{}{"q"}, trueAtoms["w0"])
}

func TestProblemMarshalJSONRendersFormulasAsText(t *testing.T) {
	r := require.New(t)

	p := Atomic("p")
	q := Atomic("q")
	problem := NewProblem("modus-ponens", NewPropositionalLogic(), []*Formula{p, Imply(p, q)}, q)

	raw, err := json.Marshal(problem)
	r.NoError(err)

	var doc map[string]interface{}
	r.NoError(json.Unmarshal(raw, &doc))
	r.Equal("modus-ponens", doc["id"])
	r.Equal("propositional", doc["logic"])
	r.Len(doc["premises"], 2)
}
