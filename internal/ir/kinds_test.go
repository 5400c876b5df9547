package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Plain", KindPlain.String())
	assert.Equal(t, "Source", KindSource.String())
	assert.Equal(t, "Operator", KindOperator.String())
	assert.Equal(t, "Loop", KindLoop.String())
	assert.Equal(t, "Plain", Kind(99).String())
}

func TestTransformKindString(t *testing.T) {
	assert.Equal(t, "DoTransform", TransformDo.String())
	assert.Equal(t, "OtherTransform", TransformOther.String())
}

func TestVertexKindAccessors(t *testing.T) {
	src := NewSourceVertex("src")
	assert.Equal(t, KindSource, src.Kind())
	assert.True(t, src.IsSourceVertex())
	assert.False(t, src.IsLoopVertex())

	loop := NewLoopVertex("loop")
	assert.True(t, loop.IsLoopVertex())
	assert.True(t, loop.IsValidSink())

	op := NewOperatorVertex("op", TransformDo)
	assert.Equal(t, TransformDo, op.Transform())
	assert.True(t, op.IsValidSink())
}
