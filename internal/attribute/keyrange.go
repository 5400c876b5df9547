package attribute

import "fmt"

// KeyRange (HashRange) is a half-open interval [Start, End) over
// non-negative integer hash keys, with a boolean Skewed marker set by
// the runtime skew pass when the range contains one of the top-k
// keys by observed partition size.
type KeyRange struct {
	Start   int
	End     int
	Skewed  bool
}

// NewKeyRange builds a KeyRange, panicking if end < start — every
// caller in this module computes ranges from an already-validated walk,
// so a malformed range here is a programming error, not a runtime
// condition to recover from.
func NewKeyRange(start, end int, skewed bool) KeyRange {
	if end < start {
		panic(fmt.Sprintf("key range end %d precedes start %d", end, start))
	}
	return KeyRange{Start: start, End: end, Skewed: skewed}
}

// Contains reports whether key falls within [Start, End).
func (r KeyRange) Contains(key int) bool {
	return key >= r.Start && key < r.End
}

func (r KeyRange) String() string {
	return fmt.Sprintf("[%d,%d) skewed=%t", r.Start, r.End, r.Skewed)
}

// SetTaskIndexToKeyRange overwrites the physical-layer attribute mapping
// downstream task index to its assigned key range.
func (m *Map) SetTaskIndexToKeyRange(ranges map[int]KeyRange) {
	m.values[TaskIndexToKeyRange] = ranges
}

// TaskIndexToKeyRange returns the attribute and whether it is defined.
func (m *Map) TaskIndexToKeyRange() (map[int]KeyRange, bool) {
	v, ok := m.values[TaskIndexToKeyRange]
	if !ok {
		return nil, false
	}
	return v.(map[int]KeyRange), true
}
