package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"flowcore/internal/attribute"
)

// vertexIDs extracts bare ids in order, the comparison go-cmp performs
// below: structural equality of two DAGs means "same vertex ids in the
// same insertion order and the same edges between them", not
// identity of the underlying Vertex/Edge pointers.
func vertexIDs(vs []*Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}
	return out
}

func TestNewBuilderFromProducesStructurallyEquivalentDAG(t *testing.T) {
	src := NewSourceVertex("src")
	mid := NewOperatorVertex("mid", TransformOther)
	sink := NewOperatorVertex("sink", TransformDo)

	b := NewBuilder()
	b.AddVertex(src).AddVertex(mid).AddVertex(sink)
	require.NoError(t, b.Connect(NewEdge("e1", src, mid, attribute.OneToOne)))
	require.NoError(t, b.Connect(NewEdge("e2", mid, sink, attribute.Shuffle)))

	original, err := b.Build()
	require.NoError(t, err)

	rebuilt, err := NewBuilderFrom(original).Build()
	require.NoError(t, err)

	if diff := cmp.Diff(vertexIDs(original.Vertices()), vertexIDs(rebuilt.Vertices()), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("vertex order mismatch after round-trip (-original +rebuilt):\n%s", diff)
	}

	origEdges := original.IncomingEdgesOf(sink)
	rebuiltEdges := rebuilt.IncomingEdgesOf(rebuilt.Vertices()[2])
	require.Len(t, rebuiltEdges, len(origEdges))
	for i, e := range origEdges {
		require.Equal(t, e.ID(), rebuiltEdges[i].ID())
		require.Equal(t, e.Source().ID(), rebuiltEdges[i].Source().ID())
	}
}

func TestTopologicalOrderIsDeterministic(t *testing.T) {
	src := NewSourceVertex("src")
	a := NewOperatorVertex("a", TransformOther)
	b2 := NewOperatorVertex("b", TransformOther)
	sink := NewOperatorVertex("sink", TransformDo)

	b := NewBuilder()
	b.AddVertex(src).AddVertex(a).AddVertex(b2).AddVertex(sink)
	require.NoError(t, b.Connect(NewEdge("e1", src, a, attribute.OneToOne)))
	require.NoError(t, b.Connect(NewEdge("e2", src, b2, attribute.OneToOne)))
	require.NoError(t, b.Connect(NewEdge("e3", a, sink, attribute.OneToOne)))
	require.NoError(t, b.Connect(NewEdge("e4", b2, sink, attribute.OneToOne)))

	d, err := b.Build()
	require.NoError(t, err)

	order := vertexIDs(d.TopologicalOrder())
	require.Equal(t, []string{"src", "a", "b", "sink"}, order)
}
