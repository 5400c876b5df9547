package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockIDRoundTrip(t *testing.T) {
	blockID := NewBlockID("edge-123", 7)
	assert.Equal(t, "edge-123_7", blockID)

	edgeID, err := RuntimeEdgeIDOf(blockID)
	require.NoError(t, err)
	assert.Equal(t, "edge-123", edgeID)
}

func TestRuntimeEdgeIDOfRejectsMalformedBlockID(t *testing.T) {
	_, err := RuntimeEdgeIDOf("no-separator-here")
	assert.Error(t, err)
}

func TestRuntimeEdgeIDOfSplitsOnLastSeparator(t *testing.T) {
	// An edge id that itself embeds the separator must still round-trip,
	// since RuntimeEdgeIDOf splits on the *last* occurrence.
	blockID := NewBlockID("edge_with_underscore", 3)
	edgeID, err := RuntimeEdgeIDOf(blockID)
	require.NoError(t, err)
	assert.Equal(t, "edge_with_underscore", edgeID)
}

func TestFreshIDsAreUniqueAndPrefixed(t *testing.T) {
	s1, s2 := NewStageID(), NewStageID()
	assert.NotEqual(t, s1, s2)
	assert.Contains(t, s1, "stage-")

	v1 := NewVertexID()
	assert.Contains(t, v1, "vertex-")

	e1 := NewEdgeID()
	assert.Contains(t, e1, "edge-")
}
