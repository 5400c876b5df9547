package ir

import (
	"flowcore/internal/attribute"
	"flowcore/internal/dag"
)

// Vertex is the IR's single vertex representation: a shared metadata
// header (id, attribute map) plus a Kind tag and, for KindLoop
// vertices, the sub-DAG the loop recursively contains.
type Vertex struct {
	id        string
	kind      Kind
	transform TransformKind
	attrs     *attribute.Map
	body      *dag.DAG[*Vertex, *Edge]
}

// NewSourceVertex builds a vertex that may legally have zero incoming
// edges.
func NewSourceVertex(id string) *Vertex {
	return &Vertex{id: id, kind: KindSource, attrs: attribute.NewMap()}
}

// NewOperatorVertex builds a vertex wrapping a user transform. Only a
// transform of kind TransformDo is a legal sink.
func NewOperatorVertex(id string, transform TransformKind) *Vertex {
	return &Vertex{id: id, kind: KindOperator, transform: transform, attrs: attribute.NewMap()}
}

// NewLoopVertex builds a composite vertex whose body is set via
// SetBody once its sub-DAG has been assembled (typically with
// BuildWithoutSourceSinkCheck, since a loop body is not itself
// required to have well-formed sources/sinks at the top level).
func NewLoopVertex(id string) *Vertex {
	return &Vertex{id: id, kind: KindLoop, attrs: attribute.NewMap()}
}

// NewVertex builds a plain IR vertex: legal only when it has both
// incoming and outgoing edges.
func NewVertex(id string) *Vertex {
	return &Vertex{id: id, kind: KindPlain, attrs: attribute.NewMap()}
}

// ID implements dag.Identifiable.
func (v *Vertex) ID() string { return v.id }

// Kind returns the vertex's variant tag.
func (v *Vertex) Kind() Kind { return v.kind }

// Transform returns the wrapped transform kind; only meaningful when
// Kind() == KindOperator.
func (v *Vertex) Transform() TransformKind { return v.transform }

// Attributes returns the vertex's attribute map.
func (v *Vertex) Attributes() *attribute.Map { return v.attrs }

// SetBody assigns the sub-DAG a KindLoop vertex recursively contains.
func (v *Vertex) SetBody(body *dag.DAG[*Vertex, *Edge]) {
	v.body = body
}

// Body returns the loop's sub-DAG, if assigned.
func (v *Vertex) Body() (*dag.DAG[*Vertex, *Edge], bool) {
	return v.body, v.body != nil
}

// IsSourceVertex implements the builder's irVertexChecker contract: only
// KindSource vertices may have zero incoming edges.
func (v *Vertex) IsSourceVertex() bool {
	return v.kind == KindSource
}

// IsValidSink implements the builder's irVertexChecker contract: a
// vertex with zero outgoing edges must be a Loop, or an Operator
// wrapping a DoTransform.
func (v *Vertex) IsValidSink() bool {
	if v.kind == KindLoop {
		return true
	}
	return v.kind == KindOperator && v.transform == TransformDo
}

// IsLoopVertex implements the builder's parallelismChecker contract.
func (v *Vertex) IsLoopVertex() bool {
	return v.kind == KindLoop
}

// Parallelism implements the builder's parallelismChecker contract.
func (v *Vertex) Parallelism() (int, bool) {
	return v.attrs.Parallelism()
}
