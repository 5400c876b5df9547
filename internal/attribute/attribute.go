// Package attribute defines the typed keys and value shapes carried by
// vertices and edges in the IR. Keys are split into two families, the
// same split the original compiler used: integer-valued keys and
// categorical keys.
package attribute

// Key identifies a single attribute slot on a vertex or an edge.
type Key int

const (
	// Parallelism is an integer-valued vertex attribute: the number of
	// parallel tasks the vertex's wrapped transform should run as.
	Parallelism Key = iota
	// CommunicationPattern is a categorical edge attribute.
	CommunicationPattern
	// Decoder is an opaque factory-marker edge attribute.
	Decoder
	// SideInput is a presence-only edge attribute.
	SideInput
	// TaskIndexToKeyRange is a physical-layer edge attribute: the
	// mutable task-index -> key-range assignment.
	TaskIndexToKeyRange
)

func (k Key) String() string {
	switch k {
	case Parallelism:
		return "Parallelism"
	case CommunicationPattern:
		return "CommunicationPattern"
	case Decoder:
		return "Decoder"
	case SideInput:
		return "SideInput"
	case TaskIndexToKeyRange:
		return "TaskIndexToKeyRange"
	default:
		return "Unknown"
	}
}

// CommunicationPatternValue is the closed set of communication patterns
// an edge may carry.
type CommunicationPatternValue int

const (
	OneToOne CommunicationPatternValue = iota
	Broadcast
	Shuffle
)

func (v CommunicationPatternValue) String() string {
	switch v {
	case OneToOne:
		return "OneToOne"
	case Broadcast:
		return "Broadcast"
	case Shuffle:
		return "Shuffle"
	default:
		return "Unknown"
	}
}

// DecoderMarker is the opaque factory marker written by the large-shuffle
// decoder pass. The real executor interprets its identity; the core
// never constructs or interprets anything beyond it.
type DecoderMarker struct {
	Name string
}

// BytesDecoder is the canonical marker meaning "read bytes without
// deserialization", used by LargeShuffleDecoderPass.
var BytesDecoder = DecoderMarker{Name: "BytesDecoder"}

// sideInputPresence is the sentinel value stored for the presence-only
// SideInput attribute.
type sideInputPresence struct{}

// SideInputPresent is the value written for the SideInput attribute to
// mark its presence; the attribute is never false-valued, only absent
// or present.
var SideInputPresent = sideInputPresence{}

// parallelismPayload is validated on construction: Parallelism must be a
// positive integer, per spec.
type parallelismPayload struct {
	Value int `validate:"required,gt=0"`
}
