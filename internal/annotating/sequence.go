package annotating

import (
	"fmt"

	"flowcore/internal/attribute"
	"flowcore/internal/ir"
)

// Sequence runs passes over d in order, returning the DAG produced by
// the last pass (or d unchanged, if passes is empty). It stops and
// returns the first error encountered. The real dependency-ordering
// driver is external and out of scope; Sequence only gives callers (and
// tests) a way to compose a fixed, already-ordered chain.
func Sequence(d *ir.DAG, passes ...Pass) (*ir.DAG, error) {
	current := d
	for _, p := range passes {
		next, err := p.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("pass failed: %w", err)
		}
		current = next
	}
	return current, nil
}

// ValidateOrder checks that no pass's declared read-set references an
// attribute key that neither an earlier pass nor the supplied
// preconditions provides. It is a test helper asserting the statically
// declared dependency order is self-consistent; it does not run
// anything.
func ValidateOrder(preconditions []attribute.Key, passes ...Pass) error {
	available := make(map[attribute.Key]bool, len(preconditions)+len(passes))
	for _, k := range preconditions {
		available[k] = true
	}
	for i, p := range passes {
		decl := p.Declares()
		for _, read := range decl.Reads {
			if !available[read] {
				return fmt.Errorf("pass %d reads %s before any earlier pass or precondition writes it", i, read)
			}
		}
		available[decl.Writes] = true
	}
	return nil
}
