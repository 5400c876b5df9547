package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowcore/internal/attribute"
)

func TestSourceVertexMayHaveNoIncomingEdges(t *testing.T) {
	src := NewSourceVertex("src")
	sink := NewOperatorVertex("sink", TransformDo)

	b := NewBuilder()
	b.AddVertex(src).AddVertex(sink)
	require.NoError(t, b.Connect(NewEdge("e1", src, sink, attribute.OneToOne)))

	_, err := b.Build()
	assert.NoError(t, err)
}

func TestNonSourceVertexWithNoIncomingEdgesFailsSourceCheck(t *testing.T) {
	plain := NewVertex("plain")
	sink := NewOperatorVertex("sink", TransformDo)

	b := NewBuilder()
	b.AddVertex(plain).AddVertex(sink)
	require.NoError(t, b.Connect(NewEdge("e1", plain, sink, attribute.OneToOne)))

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plain")
}

func TestOperatorWrappingOtherTransformIsNotAValidSink(t *testing.T) {
	src := NewSourceVertex("src")
	notDo := NewOperatorVertex("notDo", TransformOther)

	b := NewBuilder()
	b.AddVertex(src).AddVertex(notDo)
	require.NoError(t, b.Connect(NewEdge("e1", src, notDo, attribute.OneToOne)))

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notDo")
}

func TestLoopVertexIsAlwaysAValidSink(t *testing.T) {
	src := NewSourceVertex("src")
	loop := NewLoopVertex("loop")

	b := NewBuilder()
	b.AddVertex(src).AddVertex(loop)
	require.NoError(t, b.Connect(NewEdge("e1", src, loop, attribute.OneToOne)))

	_, err := b.Build()
	assert.NoError(t, err)
}

func TestOneToOneParallelismMismatchRejected(t *testing.T) {
	src := NewSourceVertex("src")
	sink := NewOperatorVertex("sink", TransformDo)
	require.NoError(t, src.Attributes().SetParallelism(2))
	require.NoError(t, sink.Attributes().SetParallelism(4))

	b := NewBuilder()
	b.AddVertex(src).AddVertex(sink)
	require.NoError(t, b.Connect(NewEdge("e1", src, sink, attribute.OneToOne)))

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "e1")
}

func TestOneToOneParallelismMatchAccepted(t *testing.T) {
	src := NewSourceVertex("src")
	sink := NewOperatorVertex("sink", TransformDo)
	require.NoError(t, src.Attributes().SetParallelism(4))
	require.NoError(t, sink.Attributes().SetParallelism(4))

	b := NewBuilder()
	b.AddVertex(src).AddVertex(sink)
	require.NoError(t, b.Connect(NewEdge("e1", src, sink, attribute.OneToOne)))

	_, err := b.Build()
	assert.NoError(t, err)
}

func TestParallelismMismatchIgnoredAcrossLoopVertex(t *testing.T) {
	src := NewSourceVertex("src")
	loop := NewLoopVertex("loop")
	require.NoError(t, src.Attributes().SetParallelism(2))
	require.NoError(t, loop.Attributes().SetParallelism(4))

	b := NewBuilder()
	b.AddVertex(src).AddVertex(loop)
	require.NoError(t, b.Connect(NewEdge("e1", src, loop, attribute.OneToOne)))

	_, err := b.Build()
	assert.NoError(t, err, "loop vertices are exempt from the one-to-one parallelism check")
}

func TestShuffleEdgeParallelismMismatchIgnored(t *testing.T) {
	src := NewSourceVertex("src")
	sink := NewOperatorVertex("sink", TransformDo)
	require.NoError(t, src.Attributes().SetParallelism(2))
	require.NoError(t, sink.Attributes().SetParallelism(8))

	b := NewBuilder()
	b.AddVertex(src).AddVertex(sink)
	require.NoError(t, b.Connect(NewEdge("e1", src, sink, attribute.Shuffle)))

	_, err := b.Build()
	assert.NoError(t, err, "the parallelism check only applies to OneToOne edges without side input")
}

func TestOneToOneWithSideInputExemptFromParallelismCheck(t *testing.T) {
	src := NewSourceVertex("src")
	sink := NewOperatorVertex("sink", TransformDo)
	require.NoError(t, src.Attributes().SetParallelism(2))
	require.NoError(t, sink.Attributes().SetParallelism(8))

	edge := NewEdge("e1", src, sink, attribute.OneToOne)
	edge.Attributes().SetSideInput()

	b := NewBuilder()
	b.AddVertex(src).AddVertex(sink)
	require.NoError(t, b.Connect(edge))

	_, err := b.Build()
	assert.NoError(t, err)
}

func TestBuildWithoutSourceSinkCheckSkipsThoseChecks(t *testing.T) {
	plain := NewVertex("plain")
	b := NewBuilder()
	b.AddVertex(plain)

	_, err := b.BuildWithoutSourceSinkCheck()
	assert.NoError(t, err, "a loop body may have no external source/sink at its own top level")
}

func TestLoopVertexBody(t *testing.T) {
	inner := NewOperatorVertex("inner", TransformDo)
	innerB := NewBuilder()
	innerB.AddVertex(inner)
	body, err := innerB.BuildWithoutSourceSinkCheck()
	require.NoError(t, err)

	loop := NewLoopVertex("loop")
	_, ok := loop.Body()
	assert.False(t, ok)
	loop.SetBody(body)
	got, ok := loop.Body()
	require.True(t, ok)
	assert.Same(t, body, got)
}
