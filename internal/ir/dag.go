package ir

import "flowcore/internal/dag"

// DAG is the IR-specialized instantiation of the generic graph
// primitives.
type DAG = dag.DAG[*Vertex, *Edge]

// Builder is the IR-specialized DAGBuilder: a mutable accumulator that
// enforces acyclicity, source/sink classification, and parallelism
// consistency before yielding an immutable DAG.
type Builder = dag.Builder[*Vertex, *Edge]

// NewBuilder returns an empty IR DAGBuilder.
func NewBuilder() *Builder {
	return dag.NewBuilder[*Vertex, *Edge]()
}

// NewBuilderFrom seeds a builder from an existing IR DAG, the Go
// analogue of the original's DAGBuilder(DAG) copy constructor.
func NewBuilderFrom(d *DAG) *Builder {
	return dag.NewBuilderFrom[*Vertex, *Edge](d)
}
