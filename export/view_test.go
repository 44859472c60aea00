package export_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colexnet/core"
	"github.com/katalvlaran/colexnet/export"
	"github.com/katalvlaran/colexnet/results"
)

func scenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 5, []string{"en", "de"})
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2, []string{"fr"})
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D", 9, []string{"ja"})
	require.NoError(t, err)
	return g
}

func TestBuildView_Scenario(t *testing.T) {
	v, err := export.BuildView(scenario(t), "B", export.DefaultSeparator)
	require.NoError(t, err)

	assert.Equal(t, "B", v.Focus)
	assert.Equal(t, int64(5), v.MaxWeight)
	assert.Equal(t, []export.Node{
		{ID: "A", Label: "A", Title: "A"},
		{ID: "B", Label: "B", Title: "B"},
		{ID: "C", Label: "C", Title: "C"},
	}, v.Nodes)
	require.Len(t, v.Edges, 2)
	assert.Equal(t, export.Edge{From: "A", To: "B", Weight: 5, Normalized: 1.0, Languages: "en, de"}, v.Edges[0])
	assert.Equal(t, "B", v.Edges[1].From)
	assert.Equal(t, "C", v.Edges[1].To)
	assert.InDelta(t, 0.4, v.Edges[1].Normalized, 1e-12)
	assert.Equal(t, "fr", v.Edges[1].Languages)
}

func TestBuildView_ZeroMaxWeight(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("x", "y", 0, nil)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("lonely"))

	v, err := export.BuildView(g, "x", "")
	require.NoError(t, err)
	require.Len(t, v.Edges, 1)
	assert.Equal(t, 0.0, v.Edges[0].Normalized)

	v, err = export.BuildView(g, "lonely", "")
	require.NoError(t, err)
	assert.Len(t, v.Nodes, 1)
	assert.Empty(t, v.Edges)
}

func TestBuildView_UnknownFocus(t *testing.T) {
	_, err := export.BuildView(scenario(t), "nope", ";;")
	require.ErrorIs(t, err, core.ErrUnknownConcept)
}

func TestLabelsAndTitles(t *testing.T) {
	id := "tree;;a woody plant;;botany"
	assert.Equal(t, "tree", export.Label(id, ";;"))
	assert.Equal(t, "tree\na woody plant\nbotany", export.Title(id, ";;"))
	assert.Equal(t, id, export.Label(id, ""))
	assert.Equal(t, "plain", export.Label("plain", ";;"))
}

func TestLanguageLegend(t *testing.T) {
	e, err := core.NewWeightedEdge(2, []string{"German;;Indo-European", "Finnish"})
	require.NoError(t, err)
	assert.Equal(t, []string{"German - Indo-European", "Finnish"}, export.LanguageLegend(e, ";;"))
	// the edge itself is untouched
	assert.Equal(t, "German;;Indo-European", e.Languages()[0])
}

func TestFileExporter(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("tree;;woody plant", "wood;;material", 4, []string{"en"})
	require.NoError(t, err)
	v, err := export.BuildView(g, "tree;;woody plant", ";;")
	require.NoError(t, err)

	dir := t.TempDir()
	fe := export.FileExporter{Dir: dir}
	assert.Equal(t, filepath.Join(dir, "network_tree__woody_plant.json"), fe.Path(v))
	require.NoError(t, fe.Export(context.Background(), v))

	var back export.View
	require.NoError(t, results.Load(fe.Path(v), &back))
	assert.Equal(t, *v, back)

	fe.Format = results.YAML
	assert.Equal(t, filepath.Join(dir, "network_tree__woody_plant.yaml"), fe.Path(v))
	require.NoError(t, fe.Export(context.Background(), v))

	require.ErrorIs(t, fe.Export(context.Background(), nil), export.ErrNilView)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, fe.Export(ctx, v), context.Canceled)
}

func TestFileExporter_SameLabelDistinctFiles(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("bank;;river side", "water;;liquid", 3, []string{"en"})
	require.NoError(t, err)
	_, err = g.AddEdge("bank;;money institution", "money;;currency", 5, []string{"de"})
	require.NoError(t, err)

	river, err := export.BuildView(g, "bank;;river side", ";;")
	require.NoError(t, err)
	money, err := export.BuildView(g, "bank;;money institution", ";;")
	require.NoError(t, err)

	fe := export.FileExporter{Dir: t.TempDir()}
	require.NotEqual(t, fe.Path(river), fe.Path(money))
	require.NoError(t, fe.Export(context.Background(), river))
	require.NoError(t, fe.Export(context.Background(), money))

	var back export.View
	require.NoError(t, results.Load(fe.Path(river), &back))
	assert.Equal(t, "bank;;river side", back.Focus)
	require.NoError(t, results.Load(fe.Path(money), &back))
	assert.Equal(t, "bank;;money institution", back.Focus)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "a_b_c", export.FileName("a/b c"))
	assert.Equal(t, "Baum-1.x", export.FileName("Baum-1.x"))
	assert.Equal(t, "_", export.FileName(""))
}
