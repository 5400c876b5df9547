// Package dag implements the generic directed-acyclic graph primitives
// shared by the IR layer (internal/ir) and the physical-plan layer
// (internal/plan): an immutable, attributed DAG container plus a
// validated mutable builder. The package itself knows nothing about IR
// vertex kinds or physical stages — it is parameterized over any
// Identifiable vertex type and any Edge type connecting two of them, the
// same way the original compiler's DAG<V extends Vertex, E extends
// Edge<V>> is generic over vertex/edge types shared by both the
// compile-time IR and the runtime physical plan.
package dag

// Identifiable is implemented by anything that can be a DAG vertex: a
// stable, comparable identity.
type Identifiable interface {
	ID() string
}

// Edge is implemented by anything that can be a DAG edge: a stable
// identity plus source/destination vertex references.
type Edge[V Identifiable] interface {
	Identifiable
	Source() V
	Destination() V
}

// DAG is immutable once returned from a Builder. Adjacency is indexed by
// vertex id; incoming/outgoing edge lists preserve insertion order so
// that cycle detection and pass iteration stay deterministic.
type DAG[V Identifiable, E Edge[V]] struct {
	vertices     []V
	vertexByID   map[string]V
	incoming     map[string][]E
	outgoing     map[string][]E
	assignedLoop map[string]string
	loopDepth    map[string]int
}

// Vertices returns the vertex set in insertion order.
func (d *DAG[V, E]) Vertices() []V {
	out := make([]V, len(d.vertices))
	copy(out, d.vertices)
	return out
}

// VertexByID looks up a vertex by id.
func (d *DAG[V, E]) VertexByID(id string) (V, bool) {
	v, ok := d.vertexByID[id]
	return v, ok
}

// IncomingEdgesOf returns the incoming edges of v in insertion order.
func (d *DAG[V, E]) IncomingEdgesOf(v V) []E {
	return cloneEdges(d.incoming[v.ID()])
}

// OutgoingEdgesOf returns the outgoing edges of v in insertion order.
func (d *DAG[V, E]) OutgoingEdgesOf(v V) []E {
	return cloneEdges(d.outgoing[v.ID()])
}

// AssignedLoopOf returns the id of v's enclosing loop vertex, if any.
func (d *DAG[V, E]) AssignedLoopOf(v V) (string, bool) {
	id, ok := d.assignedLoop[v.ID()]
	return id, ok
}

// LoopDepthOf returns v's loop-nesting depth, 0 when not inside a loop.
func (d *DAG[V, E]) LoopDepthOf(v V) int {
	return d.loopDepth[v.ID()]
}

// IsComposite reports whether v was recorded with loop-assignment
// metadata when the DAG was built — i.e. whether v sits inside a loop
// container, not whether v itself is a loop vertex.
func (d *DAG[V, E]) IsComposite(v V) bool {
	_, assigned := d.assignedLoop[v.ID()]
	_, depthed := d.loopDepth[v.ID()]
	return assigned || depthed
}

func cloneEdges[E any](in []E) []E {
	out := make([]E, len(in))
	copy(out, in)
	return out
}

// TopologicalOrder returns a deterministic topological ordering of the
// vertices, seeded by vertex insertion order and, as a secondary key,
// edge insertion order (Kahn's algorithm over a FIFO queue: the initial
// zero-in-degree vertices in insertion order, then each vertex as it
// becomes ready, in the order its predecessors' outgoing edges were
// inserted).
func (d *DAG[V, E]) TopologicalOrder() []V {
	inDegree := make(map[string]int, len(d.vertices))
	for _, v := range d.vertices {
		inDegree[v.ID()] = len(d.incoming[v.ID()])
	}
	ready := make([]V, 0, len(d.vertices))
	for _, v := range d.vertices {
		if inDegree[v.ID()] == 0 {
			ready = append(ready, v)
		}
	}
	order := make([]V, 0, len(d.vertices))
	for len(ready) > 0 {
		v := ready[0]
		ready = ready[1:]
		order = append(order, v)
		for _, e := range d.outgoing[v.ID()] {
			dst := e.Destination()
			inDegree[dst.ID()]--
			if inDegree[dst.ID()] == 0 {
				ready = append(ready, dst)
			}
		}
	}
	return order
}

// ReverseTopologicalOrder returns TopologicalOrder reversed.
func (d *DAG[V, E]) ReverseTopologicalOrder() []V {
	forward := d.TopologicalOrder()
	out := make([]V, len(forward))
	for i, v := range forward {
		out[len(forward)-1-i] = v
	}
	return out
}
