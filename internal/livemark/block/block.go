// Package block detects block-level markdown constructs by scanning
// document text — standalone images, diagram and chart fences, pipe
// tables — and manages the widgets that replace them: identity-keyed,
// asynchronously populated, torn down when their block disappears.
package block

import "hash/fnv"

// Kind identifies the kind of block construct.
type Kind uint8

const (
	// KindImage is a standalone image line.
	KindImage Kind = iota
	// KindDiagram is a fenced block tagged as diagram source.
	KindDiagram
	// KindChart is a fenced block tagged as a chart definition.
	KindChart
	// KindTable is a pipe-delimited table with a separator row.
	KindTable
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindDiagram:
		return "diagram"
	case KindChart:
		return "chart"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Block is one detected block construct. Lines are 1-based, inclusive.
type Block struct {
	Kind      Kind
	StartLine int
	EndLine   int

	// Payload is the block content: diagram source, chart JSON, or the
	// raw table lines. Empty for images.
	Payload string

	// URL and Alt are set for images.
	URL string
	Alt string
}

// PayloadHash returns the FNV-64a hash of the block's content, the basis
// of widget identity.
func (b Block) PayloadHash() uint64 {
	h := fnv.New64a()
	switch b.Kind {
	case KindImage:
		h.Write([]byte(b.URL))
		h.Write([]byte{0})
		h.Write([]byte(b.Alt))
	default:
		h.Write([]byte(b.Payload))
	}
	return h.Sum64()
}
