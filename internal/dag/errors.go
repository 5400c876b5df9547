package dag

import "fmt"

// IllegalVertexOperationError is returned by Connect when an edge
// endpoint has not been added to the builder yet. The original
// implementation renders a missing endpoint id as the literal string
// "null"; in this typed Go port an edge's endpoints are always
// non-nil Identifiable values, so SrcOK/DstOK instead record whether
// each endpoint was actually present in the builder, and "null" is
// rendered for whichever one was not.
type IllegalVertexOperationError struct {
	SrcID string
	SrcOK bool
	DstID string
	DstOK bool
}

func (e *IllegalVertexOperationError) Error() string {
	src := "null"
	if e.SrcOK {
		src = e.SrcID
	}
	dst := "null"
	if e.DstOK {
		dst = e.DstID
	}
	return fmt.Sprintf("the DAG does not contain either src or dst of the edge: %s -> %s", src, dst)
}

// CycleDetectedError is returned by Build/BuildWithoutSourceSinkCheck
// when the accumulated edges form a cycle.
type CycleDetectedError struct{}

func (e *CycleDetectedError) Error() string { return "DAG contains a cycle" }

// SourceViolationError lists every vertex with no incoming edges that
// is not a valid source.
type SourceViolationError struct {
	VertexIDs []string
}

func (e *SourceViolationError) Error() string {
	return fmt.Sprintf("DAG source check failed while building DAG. %v", e.VertexIDs)
}

// SinkViolationError lists every vertex with no outgoing edges that is
// neither a loop nor an operator wrapping a DoTransform.
type SinkViolationError struct {
	VertexIDs []string
}

func (e *SinkViolationError) Error() string {
	return fmt.Sprintf("DAG sink check failed while building DAG: %v", e.VertexIDs)
}

// ParallelismMismatchError names the OneToOne edge whose endpoints
// disagree on their Parallelism attribute.
type ParallelismMismatchError struct {
	EdgeID string
}

func (e *ParallelismMismatchError) Error() string {
	return fmt.Sprintf("DAG attribute check: vertices are connected by OneToOne edge, "+
		"but has different parallelism attributes: %s", e.EdgeID)
}
