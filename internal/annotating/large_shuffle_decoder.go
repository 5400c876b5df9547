package annotating

import (
	"flowcore/internal/attribute"
	"flowcore/internal/ir"
)

// LargeShuffleDecoderPass tags every incoming Shuffle edge with the
// BytesDecoder marker, so the executor can read shuffled data as raw
// bytes without deserializing it (enabling relay-transform
// optimization). Non-shuffle edges are untouched. Iteration order need
// not be deterministic; the result is a function of the input set of
// shuffle edges.
type LargeShuffleDecoderPass struct{}

// NewLargeShuffleDecoderPass returns the pass.
func NewLargeShuffleDecoderPass() *LargeShuffleDecoderPass {
	return &LargeShuffleDecoderPass{}
}

// Declares implements Pass.
func (p *LargeShuffleDecoderPass) Declares() Declaration {
	return Declaration{
		Reads:  []attribute.Key{attribute.CommunicationPattern},
		Writes: attribute.Decoder,
	}
}

// Apply implements Pass. It mutates the Decoder attribute of matching
// edges in place and returns the same DAG: the pass does not alter
// graph structure.
func (p *LargeShuffleDecoderPass) Apply(d *ir.DAG) (*ir.DAG, error) {
	for _, vertex := range d.Vertices() {
		for _, edge := range d.IncomingEdgesOf(vertex) {
			pattern, ok := edge.Attributes().CommunicationPattern()
			if ok && pattern == attribute.Shuffle {
				edge.Attributes().SetDecoder(attribute.BytesDecoder)
			}
		}
	}
	return d, nil
}
