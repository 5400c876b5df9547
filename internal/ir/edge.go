package ir

import "flowcore/internal/attribute"

// Edge is the IR's edge representation: a stable id, source/destination
// vertex references, a structural edge-type tag, and an attribute map.
// The edge-type tag is distinct from the CommunicationPattern
// attribute the annotating-pass framework reads and writes — the
// former is fixed at construction (how the frontend wired the graph),
// the latter is pass-mutable state, mirroring the original's separate
// IREdge.Type field and CommunicationPatternProperty execution
// property.
type Edge struct {
	id    string
	src   *Vertex
	dst   *Vertex
	etype attribute.CommunicationPatternValue
	attrs *attribute.Map
}

// NewEdge builds an edge of the given structural type between src and
// dst.
func NewEdge(id string, src, dst *Vertex, etype attribute.CommunicationPatternValue) *Edge {
	return &Edge{id: id, src: src, dst: dst, etype: etype, attrs: attribute.NewMap()}
}

// ID implements dag.Identifiable.
func (e *Edge) ID() string { return e.id }

// Source implements dag.Edge.
func (e *Edge) Source() *Vertex { return e.src }

// Destination implements dag.Edge.
func (e *Edge) Destination() *Vertex { return e.dst }

// Type returns the edge's structural type tag.
func (e *Edge) Type() attribute.CommunicationPatternValue { return e.etype }

// Attributes returns the edge's attribute map.
func (e *Edge) Attributes() *attribute.Map { return e.attrs }

// IsOneToOneNoSideInput implements the builder's irEdgeChecker contract.
func (e *Edge) IsOneToOneNoSideInput() bool {
	return e.etype == attribute.OneToOne && !e.attrs.HasSideInput()
}
