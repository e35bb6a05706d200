// Package surface defines the editing-surface collaborator contract the
// live-rendering engine consumes: document text with line addressing,
// selections, viewports, and the parsed syntax tree. The engine never
// mutates a document; it only reads snapshots.
package surface

import "strings"

// Document is an immutable-per-version view of a text buffer with
// line/offset addressing. Lines are 1-based; byte spans are half-open.
type Document interface {
	// Len returns the length of the text in bytes.
	Len() int

	// Text returns the full text.
	Text() string

	// LineCount returns the number of lines. An empty document has one line.
	LineCount() int

	// Line returns the byte span [start, end) of the 1-based line n,
	// excluding the trailing newline. ErrLineOutOfRange if n is invalid.
	Line(n int) (start, end int, err error)

	// LineAt returns the 1-based line containing the byte offset.
	// Offsets past the end clamp to the last line.
	LineAt(offset int) int

	// Version identifies this snapshot; it changes on every edit.
	Version() uint64
}

// Buffer is an in-memory Document. It backs tests and the demo viewer;
// a production surface supplies its own implementation.
type Buffer struct {
	text       string
	lineStarts []int // byte offset of each line start
	version    uint64
}

// NewBuffer creates a buffer with the given text.
func NewBuffer(text string) *Buffer {
	b := &Buffer{}
	b.SetText(text)
	return b
}

// SetText replaces the buffer contents and bumps the version.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.version++

	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// Len returns the length of the text in bytes.
func (b *Buffer) Len() int { return len(b.text) }

// Text returns the full text.
func (b *Buffer) Text() string { return b.text }

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// Line returns the byte span of the 1-based line n.
func (b *Buffer) Line(n int) (int, int, error) {
	if n < 1 || n > len(b.lineStarts) {
		return 0, 0, ErrLineOutOfRange
	}
	start := b.lineStarts[n-1]
	end := len(b.text)
	if n < len(b.lineStarts) {
		end = b.lineStarts[n] - 1 // drop the newline
	}
	return start, end, nil
}

// LineText returns the text of the 1-based line n, or "" if out of range.
func (b *Buffer) LineText(n int) string {
	start, end, err := b.Line(n)
	if err != nil {
		return ""
	}
	return b.text[start:end]
}

// LineAt returns the 1-based line containing the byte offset.
func (b *Buffer) LineAt(offset int) int {
	if offset < 0 {
		return 1
	}
	if offset >= len(b.text) {
		return len(b.lineStarts)
	}
	// Binary search for the last line start <= offset.
	lo, hi := 0, len(b.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// Version identifies this snapshot.
func (b *Buffer) Version() uint64 { return b.version }

// Lines splits the buffer into its lines without trailing newlines.
func (b *Buffer) Lines() []string {
	return strings.Split(b.text, "\n")
}
