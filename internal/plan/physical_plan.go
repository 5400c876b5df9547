package plan

import "flowcore/internal/dag"

// StageDAG is the physical-plan-specialized instantiation of the
// generic graph primitives.
type StageDAG = dag.DAG[*Stage, *StageEdge]

// StageDAGBuilder is the physical-plan-specialized DAGBuilder.
type StageDAGBuilder = dag.Builder[*Stage, *StageEdge]

// NewStageDAGBuilder returns an empty stage-DAG builder.
func NewStageDAGBuilder() *StageDAGBuilder {
	return dag.NewBuilder[*Stage, *StageEdge]()
}

// PhysicalPlan holds the stage DAG the executor runs. It is the runtime
// counterpart of the compile-time IR DAG: identified by a plan id, its
// structure is produced once by the compiler and then selectively
// rewritten in place by runtime passes (see internal/runtimepass).
type PhysicalPlan struct {
	id       string
	stageDAG *StageDAG
}

// NewPhysicalPlan builds a physical plan wrapping the given stage DAG.
func NewPhysicalPlan(id string, stageDAG *StageDAG) *PhysicalPlan {
	return &PhysicalPlan{id: id, stageDAG: stageDAG}
}

// ID returns the plan's identity.
func (p *PhysicalPlan) ID() string { return p.id }

// StageDAG returns the plan's stage DAG.
func (p *PhysicalPlan) StageDAG() *StageDAG { return p.stageDAG }
