package dag

import "log"

var logger = log.New(log.Writer(), "[dag] ", log.LstdFlags)

// irVertexChecker is implemented by vertex types that participate in
// the source/sink integrity checks (internal/ir.Vertex). Physical-plan
// vertex types (internal/plan.Stage) do not implement it and are
// therefore silently exempt from both checks, mirroring the original
// Java builder's instanceof-IRVertex filtering.
type irVertexChecker interface {
	IsSourceVertex() bool
	IsValidSink() bool
}

// irEdgeChecker is implemented by edge types that participate in the
// parallelism-consistency check (internal/ir.Edge).
type irEdgeChecker interface {
	IsOneToOneNoSideInput() bool
}

// parallelismChecker is implemented by vertex types that can carry a
// Parallelism attribute and report whether they are a loop container.
type parallelismChecker interface {
	IsLoopVertex() bool
	Parallelism() (int, bool)
}

// Builder is the mutable accumulator that produces an immutable DAG. It
// is not safe for concurrent use; construction happens on one thread,
// per spec.
type Builder[V Identifiable, E Edge[V]] struct {
	order        []string
	vertexByID   map[string]V
	incoming     map[string][]E
	outgoing     map[string][]E
	assignedLoop map[string]string
	loopDepth    map[string]int
}

// NewBuilder returns an empty builder.
func NewBuilder[V Identifiable, E Edge[V]]() *Builder[V, E] {
	return &Builder[V, E]{
		vertexByID:   make(map[string]V),
		incoming:     make(map[string][]E),
		outgoing:     make(map[string][]E),
		assignedLoop: make(map[string]string),
		loopDepth:    make(map[string]int),
	}
}

// NewBuilderFrom seeds a builder from an existing DAG: every vertex is
// re-added (preserving loop assignment/depth) and every edge
// reconnected. This is the Go analogue of the original's
// DAGBuilder(DAG<V,E> dag) constructor, used by the runtime skew pass
// to rebuild a physical plan's stage DAG after rewriting key ranges.
func NewBuilderFrom[V Identifiable, E Edge[V]](d *DAG[V, E]) *Builder[V, E] {
	b := NewBuilder[V, E]()
	for _, v := range d.vertices {
		b.AddVertexCopyingFrom(v, d)
	}
	for _, v := range d.vertices {
		for _, e := range d.incoming[v.ID()] {
			_ = b.Connect(e)
		}
	}
	return b
}

// AddVertex inserts v with empty adjacency sets; idempotent.
func (b *Builder[V, E]) AddVertex(v V) *Builder[V, E] {
	id := v.ID()
	if _, exists := b.vertexByID[id]; !exists {
		b.order = append(b.order, id)
	}
	b.vertexByID[id] = v
	if _, ok := b.incoming[id]; !ok {
		b.incoming[id] = nil
	}
	if _, ok := b.outgoing[id]; !ok {
		b.outgoing[id] = nil
	}
	return b
}

// AddVertexWithLoop additionally records v's enclosing loop vertex id
// and loop-nesting depth. depth must equal the number of enclosing
// loops.
func (b *Builder[V, E]) AddVertexWithLoop(v V, loopVertexID string, depth int) *Builder[V, E] {
	b.AddVertex(v)
	b.assignedLoop[v.ID()] = loopVertexID
	b.loopDepth[v.ID()] = depth
	return b
}

// AddVertexWithStack is the convenience overload: if the stack is
// non-empty, the top-of-stack loop id and the stack size become v's
// loop assignment and depth; otherwise v is added unassigned.
func (b *Builder[V, E]) AddVertexWithStack(v V, loopVertexStack []string) *Builder[V, E] {
	if len(loopVertexStack) > 0 {
		top := loopVertexStack[len(loopVertexStack)-1]
		return b.AddVertexWithLoop(v, top, len(loopVertexStack))
	}
	return b.AddVertex(v)
}

// AddVertexCopyingFrom adds v, copying its loop assignment and depth
// from sourceDAG if sourceDAG.IsComposite(v); otherwise a plain add.
func (b *Builder[V, E]) AddVertexCopyingFrom(v V, sourceDAG *DAG[V, E]) *Builder[V, E] {
	if sourceDAG.IsComposite(v) {
		loopID, _ := sourceDAG.AssignedLoopOf(v)
		depth := sourceDAG.LoopDepthOf(v)
		return b.AddVertexWithLoop(v, loopID, depth)
	}
	return b.AddVertex(v)
}

// RemoveVertex removes v and every edge incident on it from both
// endpoints' adjacency sets and from the vertex-keyed maps.
func (b *Builder[V, E]) RemoveVertex(v V) *Builder[V, E] {
	id := v.ID()
	for _, e := range b.incoming[id] {
		srcID := e.Source().ID()
		b.outgoing[srcID] = removeEdge(b.outgoing[srcID], e)
	}
	for _, e := range b.outgoing[id] {
		dstID := e.Destination().ID()
		b.incoming[dstID] = removeEdge(b.incoming[dstID], e)
	}
	delete(b.vertexByID, id)
	delete(b.incoming, id)
	delete(b.outgoing, id)
	delete(b.assignedLoop, id)
	delete(b.loopDepth, id)
	for i, vid := range b.order {
		if vid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return b
}

func removeEdge[E Identifiable](edges []E, target E) []E {
	out := edges[:0]
	for _, e := range edges {
		if e.ID() != target.ID() {
			out = append(out, e)
		}
	}
	return out
}

// Connect adds edge to the destination's incoming set and the source's
// outgoing set. Both endpoints must already be present in the builder.
func (b *Builder[V, E]) Connect(edge E) error {
	src, dst := edge.Source(), edge.Destination()
	_, srcOK := b.vertexByID[src.ID()]
	_, dstOK := b.vertexByID[dst.ID()]
	if !srcOK || !dstOK {
		return &IllegalVertexOperationError{SrcID: src.ID(), SrcOK: srcOK, DstID: dst.ID(), DstOK: dstOK}
	}
	b.incoming[dst.ID()] = append(b.incoming[dst.ID()], edge)
	b.outgoing[src.ID()] = append(b.outgoing[src.ID()], edge)
	return nil
}

// IsEmpty reports whether the builder has no vertices.
func (b *Builder[V, E]) IsEmpty() bool {
	return len(b.order) == 0
}

// Contains reports whether v has been added.
func (b *Builder[V, E]) Contains(v V) bool {
	_, ok := b.vertexByID[v.ID()]
	return ok
}

// ContainsFunc reports whether any added vertex satisfies predicate.
func (b *Builder[V, E]) ContainsFunc(predicate func(V) bool) bool {
	for _, id := range b.order {
		if predicate(b.vertexByID[id]) {
			return true
		}
	}
	return false
}

// Build runs the full integrity check set {acyclicity, source, sink,
// attribute} and returns a frozen DAG.
func (b *Builder[V, E]) Build() (*DAG[V, E], error) {
	if err := b.integrityCheck(true, true, true, true); err != nil {
		return nil, err
	}
	return b.freeze(), nil
}

// BuildWithoutSourceSinkCheck runs {acyclicity, attribute} only; used
// when assembling the body of a loop container in isolation.
func (b *Builder[V, E]) BuildWithoutSourceSinkCheck() (*DAG[V, E], error) {
	if err := b.integrityCheck(true, false, false, true); err != nil {
		return nil, err
	}
	return b.freeze(), nil
}

func (b *Builder[V, E]) freeze() *DAG[V, E] {
	d := &DAG[V, E]{
		vertices:     make([]V, len(b.order)),
		vertexByID:   make(map[string]V, len(b.order)),
		incoming:     make(map[string][]E, len(b.order)),
		outgoing:     make(map[string][]E, len(b.order)),
		assignedLoop: make(map[string]string, len(b.assignedLoop)),
		loopDepth:    make(map[string]int, len(b.loopDepth)),
	}
	for i, id := range b.order {
		v := b.vertexByID[id]
		d.vertices[i] = v
		d.vertexByID[id] = v
		d.incoming[id] = cloneEdges(b.incoming[id])
		d.outgoing[id] = cloneEdges(b.outgoing[id])
	}
	for id, loopID := range b.assignedLoop {
		d.assignedLoop[id] = loopID
	}
	for id, depth := range b.loopDepth {
		d.loopDepth[id] = depth
	}
	return d
}

func (b *Builder[V, E]) integrityCheck(cycle, source, sink, attr bool) error {
	if cycle {
		if err := b.cycleCheck(); err != nil {
			return err
		}
	}
	if source {
		if err := b.sourceCheck(); err != nil {
			return err
		}
	}
	if sink {
		if err := b.sinkCheck(); err != nil {
			return err
		}
	}
	if attr {
		if err := b.attributeCheck(); err != nil {
			return err
		}
	}
	return nil
}

// cycleCheck runs a DFS from every zero-in-degree vertex, in insertion
// order, failing as soon as an outgoing edge targets a vertex already
// on the current path stack. Any vertex that walk leaves unvisited can
// only lie on or behind a cycle with no external entry, so a second
// pass, again in insertion order, starts a DFS from each of those.
func (b *Builder[V, E]) cycleCheck() error {
	visited := make(map[string]bool, len(b.order))
	onStack := make(map[string]bool, len(b.order))
	for _, id := range b.order {
		if len(b.incoming[id]) != 0 {
			continue
		}
		if err := b.cycleCheckVisit(id, visited, onStack); err != nil {
			return err
		}
	}
	for _, id := range b.order {
		if visited[id] {
			continue
		}
		if err := b.cycleCheckVisit(id, visited, onStack); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder[V, E]) cycleCheckVisit(id string, visited, onStack map[string]bool) error {
	visited[id] = true
	onStack[id] = true
	for _, e := range b.outgoing[id] {
		dstID := e.Destination().ID()
		if onStack[dstID] {
			return &CycleDetectedError{}
		}
	}
	for _, e := range b.outgoing[id] {
		dstID := e.Destination().ID()
		if !visited[dstID] {
			if err := b.cycleCheckVisit(dstID, visited, onStack); err != nil {
				return err
			}
		}
	}
	onStack[id] = false
	return nil
}

func (b *Builder[V, E]) sourceCheck() error {
	var offending []string
	for _, id := range b.order {
		if len(b.incoming[id]) != 0 {
			continue
		}
		v := b.vertexByID[id]
		checker, ok := any(v).(irVertexChecker)
		if !ok {
			continue
		}
		if !checker.IsSourceVertex() {
			offending = append(offending, id)
		}
	}
	if len(offending) > 0 {
		return &SourceViolationError{VertexIDs: offending}
	}
	return nil
}

func (b *Builder[V, E]) sinkCheck() error {
	var offending []string
	for _, id := range b.order {
		if len(b.outgoing[id]) != 0 {
			continue
		}
		v := b.vertexByID[id]
		checker, ok := any(v).(irVertexChecker)
		if !ok {
			continue
		}
		if !checker.IsValidSink() {
			offending = append(offending, id)
		}
	}
	if len(offending) > 0 {
		return &SinkViolationError{VertexIDs: offending}
	}
	return nil
}

func (b *Builder[V, E]) attributeCheck() error {
	for _, id := range b.order {
		for _, e := range b.incoming[id] {
			edgeChecker, ok := any(e).(irEdgeChecker)
			if !ok || !edgeChecker.IsOneToOneNoSideInput() {
				continue
			}
			srcChecker, srcOK := any(e.Source()).(parallelismChecker)
			dstChecker, dstOK := any(e.Destination()).(parallelismChecker)
			if !srcOK || !dstOK {
				continue
			}
			if srcChecker.IsLoopVertex() || dstChecker.IsLoopVertex() {
				continue
			}
			srcP, srcDefined := srcChecker.Parallelism()
			dstP, dstDefined := dstChecker.Parallelism()
			if !srcDefined || !dstDefined {
				continue
			}
			if srcP != dstP {
				return &ParallelismMismatchError{EdgeID: e.ID()}
			}
		}
	}
	return nil
}
