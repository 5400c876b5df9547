package attribute

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Map is the heterogeneous, typed attribute store carried by every
// vertex and edge. It is a thin wrapper over a plain Go map so that
// passes can only touch it through the typed accessors below, keeping
// the read-set/write-attribute discipline enforceable at the package
// boundary.
type Map struct {
	values map[Key]any
}

// NewMap returns an empty attribute map.
func NewMap() *Map {
	return &Map{values: make(map[Key]any)}
}

// Get returns the raw value for k and whether it was present.
func (m *Map) Get(k Key) (any, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Has reports whether k is present, regardless of value.
func (m *Map) Has(k Key) bool {
	_, ok := m.values[k]
	return ok
}

// Set stores v for k, overwriting any previous value.
func (m *Map) Set(k Key, v any) {
	m.values[k] = v
}

// Delete removes k, if present.
func (m *Map) Delete(k Key) {
	delete(m.values, k)
}

// Clone returns a shallow copy of m: a new map whose entries refer to
// the same values. The DAG builders and passes do not use it (passes
// mutate attributes in place on the same underlying vertices/edges, not
// on copies); it is for callers that want an independent attribute
// lifetime, e.g. test fixtures.
func (m *Map) Clone() *Map {
	out := NewMap()
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// SetParallelism validates and stores a positive Parallelism value.
func (m *Map) SetParallelism(n int) error {
	payload := parallelismPayload{Value: n}
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid Parallelism attribute %d: %w", n, err)
	}
	m.values[Parallelism] = n
	return nil
}

// Parallelism returns the Parallelism attribute and whether it is
// defined.
func (m *Map) Parallelism() (int, bool) {
	v, ok := m.values[Parallelism]
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// SetCommunicationPattern stores the CommunicationPattern attribute.
func (m *Map) SetCommunicationPattern(p CommunicationPatternValue) {
	m.values[CommunicationPattern] = p
}

// CommunicationPattern returns the CommunicationPattern attribute and
// whether it is defined.
func (m *Map) CommunicationPattern() (CommunicationPatternValue, bool) {
	v, ok := m.values[CommunicationPattern]
	if !ok {
		return 0, false
	}
	return v.(CommunicationPatternValue), true
}

// SetDecoder overwrites the Decoder attribute.
func (m *Map) SetDecoder(marker DecoderMarker) {
	m.values[Decoder] = marker
}

// Decoder returns the Decoder attribute and whether it is defined.
func (m *Map) Decoder() (DecoderMarker, bool) {
	v, ok := m.values[Decoder]
	if !ok {
		return DecoderMarker{}, false
	}
	return v.(DecoderMarker), true
}

// SetSideInput marks the presence-only SideInput attribute.
func (m *Map) SetSideInput() {
	m.values[SideInput] = SideInputPresent
}

// HasSideInput reports whether SideInput is present.
func (m *Map) HasSideInput() bool {
	return m.Has(SideInput)
}
