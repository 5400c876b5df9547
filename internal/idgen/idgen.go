// Package idgen is the id-generator collaborator the spec references:
// a pure block-id <-> runtime-edge-id decoder, plus fresh-id helpers
// for stages, vertices, and edges backed by github.com/google/uuid —
// the teacher's own dependency, previously used for task/job ids in
// internal/dag/parser.go and internal/master/api.go, now generalized to
// IR/physical-plan identity generation.
package idgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const blockIDSeparator = "_"

// NewBlockID builds a block id that embeds its producing runtime edge
// id and the producing task index, following the block-id scheme
// RuntimeEdgeIDOf decodes.
func NewBlockID(runtimeEdgeID string, taskIdx int) string {
	return fmt.Sprintf("%s%s%d", runtimeEdgeID, blockIDSeparator, taskIdx)
}

// RuntimeEdgeIDOf is the pure string transform that recovers the
// producing runtime edge id embedded in a block id. It is a black box
// to the runtime skew pass: the pass only ever calls this function, it
// never inspects the block-id scheme directly.
func RuntimeEdgeIDOf(blockID string) (string, error) {
	idx := strings.LastIndex(blockID, blockIDSeparator)
	if idx < 0 {
		return "", fmt.Errorf("block id %q does not embed a runtime edge id", blockID)
	}
	return blockID[:idx], nil
}

// NewStageID returns a fresh, collision-free stage id.
func NewStageID() string {
	return "stage-" + uuid.New().String()
}

// NewVertexID returns a fresh, collision-free vertex id.
func NewVertexID() string {
	return "vertex-" + uuid.New().String()
}

// NewEdgeID returns a fresh, collision-free edge id.
func NewEdgeID() string {
	return "edge-" + uuid.New().String()
}
