// Package plan implements the physical-plan layer: Stage and StageEdge,
// the runtime-level vertex/edge types that instantiate internal/dag's
// generic container the same way internal/ir's Vertex/Edge do for the
// compile-time IR. Stage and StageEdge deliberately do not implement
// the builder's irVertexChecker/irEdgeChecker/parallelismChecker
// interfaces, so building a physical-plan DAG never runs the
// IR-specific source/sink/attribute checks — exactly as in the
// original, where those checks are filtered to IRVertex/IREdge
// instances and vacuously pass for Stage/StageEdge.
package plan

import "flowcore/internal/attribute"

// Stage groups the parallel tasks that execute the same operator
// pipeline.
type Stage struct {
	id      string
	taskIDs []string
}

// NewStage builds a stage with the given ordered task ids (one per
// parallel task).
func NewStage(id string, taskIDs []string) *Stage {
	out := make([]string, len(taskIDs))
	copy(out, taskIDs)
	return &Stage{id: id, taskIDs: out}
}

// ID implements dag.Identifiable.
func (s *Stage) ID() string { return s.id }

// TaskIDs returns the stage's ordered task ids.
func (s *Stage) TaskIDs() []string {
	out := make([]string, len(s.taskIDs))
	copy(out, s.taskIDs)
	return out
}

// TaskCount returns the number of parallel tasks the stage runs.
func (s *Stage) TaskCount() int {
	return len(s.taskIDs)
}

// StageEdge is a runtime-level edge carrying the generic edge
// attributes plus the mutable task-index -> key-range assignment
// telling each downstream task which keys it owns.
type StageEdge struct {
	id    string
	src   *Stage
	dst   *Stage
	etype attribute.CommunicationPatternValue
	attrs *attribute.Map
}

// NewStageEdge builds a stage edge between src and dst.
func NewStageEdge(id string, src, dst *Stage, etype attribute.CommunicationPatternValue) *StageEdge {
	return &StageEdge{id: id, src: src, dst: dst, etype: etype, attrs: attribute.NewMap()}
}

// ID implements dag.Identifiable.
func (e *StageEdge) ID() string { return e.id }

// Source implements dag.Edge.
func (e *StageEdge) Source() *Stage { return e.src }

// Destination implements dag.Edge.
func (e *StageEdge) Destination() *Stage { return e.dst }

// Type returns the edge's structural communication-pattern tag.
func (e *StageEdge) Type() attribute.CommunicationPatternValue { return e.etype }

// Attributes returns the edge's attribute map.
func (e *StageEdge) Attributes() *attribute.Map { return e.attrs }

// SetTaskIndexToKeyRange overwrites the task-index -> key-range
// assignment.
func (e *StageEdge) SetTaskIndexToKeyRange(ranges map[int]attribute.KeyRange) {
	e.attrs.SetTaskIndexToKeyRange(ranges)
}

// TaskIndexToKeyRange returns the task-index -> key-range assignment
// and whether it is defined.
func (e *StageEdge) TaskIndexToKeyRange() (map[int]attribute.KeyRange, bool) {
	return e.attrs.TaskIndexToKeyRange()
}
