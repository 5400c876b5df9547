package runtimepass

import "fmt"

// EmptyOptimizationEdgesError is returned when no stage edge matches the
// block ids the metric report names.
type EmptyOptimizationEdgesError struct{}

func (e *EmptyOptimizationEdgesError) Error() string {
	return "optimization edges are empty"
}

// DynamicOptimizationError is returned for algorithmic preconditions
// the skew pass cannot satisfy (an empty key-size map, most notably).
type DynamicOptimizationError struct {
	Reason string
}

func (e *DynamicOptimizationError) Error() string {
	return fmt.Sprintf("dynamic optimization failed: %s", e.Reason)
}

// InsufficientKeysError is returned when fewer keys are observed than
// the requested skewed-key count.
type InsufficientKeysError struct {
	Have int
	Want int
}

func (e *InsufficientKeysError) Error() string {
	return fmt.Sprintf("insufficient keys: have %d, need %d", e.Have, e.Want)
}
