// Package ir implements the compile-time intermediate representation:
// Vertex and Edge value types satisfying internal/dag's generic
// Identifiable/Edge constraints, plus the vertex-kind and
// transform-kind discrimination the DAGBuilder's source/sink/attribute
// checks rely on.
//
// The original implementation uses a Vertex/SourceVertex/OperatorVertex/
// LoopVertex/IRVertex inheritance hierarchy; per the spec's design
// notes this is represented instead as a single Vertex struct carrying
// a Kind tag and a shared metadata header (id, attribute map), with
// validation rules discriminating on the tag.
package ir

// Kind discriminates the vertex variants the well-formedness rules
// care about.
type Kind int

const (
	// KindPlain is any IR vertex that is not a Source, Operator, or
	// Loop — allowed internally, but never as a source or sink.
	KindPlain Kind = iota
	KindSource
	KindOperator
	KindLoop
)

func (k Kind) String() string {
	switch k {
	case KindSource:
		return "Source"
	case KindOperator:
		return "Operator"
	case KindLoop:
		return "Loop"
	default:
		return "Plain"
	}
}

// TransformKind discriminates the user-transform a KindOperator vertex
// wraps. Only DoTransform is a legal sink form.
type TransformKind int

const (
	TransformOther TransformKind = iota
	TransformDo
)

func (t TransformKind) String() string {
	if t == TransformDo {
		return "DoTransform"
	}
	return "OtherTransform"
}
