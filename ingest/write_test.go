package ingest_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colexnet/builder"
	"github.com/katalvlaran/colexnet/ingest"
)

func TestWriteCSV_ReadBack(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithIDScheme(builder.ConceptIDFn([]string{"tree", "wood", "forest", "bark"}, ";;")),
			builder.WithWeightFn(builder.ConstantWeightFn(4)),
			builder.WithLanguages("en", "de"),
		},
		builder.Cycle(4),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ingest.WriteCSV(&buf, g))

	recs, err := ingest.ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, []string{"en", "de"}, recs[0].Languages)

	back, st, err := ingest.Build(recs, ingest.Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, st.Edges)
	assert.Equal(t, g.Vertices(), back.Vertices())
	for _, ent := range g.Edges() {
		e, err := back.EdgeFor(ent.Pair.A, ent.Pair.B)
		require.NoError(t, err)
		assert.Equal(t, ent.Edge.Weight(), e.Weight())
	}
}

func TestWriteCSV_QuotesCommas(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(1, 2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ingest.WriteCSV(&buf, g))
	assert.Equal(t, "concept_a,concept_b,weight,languages\n\"0,0\",\"0,1\",1,\n", buf.String())

	recs, err := ingest.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, []ingest.Record{{ConceptA: "0,0", ConceptB: "0,1", Weight: 1}}, recs)
}
