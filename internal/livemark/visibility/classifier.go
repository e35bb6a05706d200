// Package visibility decides, per line, whether raw markdown must be
// shown (the line is "active") or the rendered approximation may replace
// it. The decision is a pure function of the primary selection's line
// span, computed once per rebuild.
package visibility

// Classifier answers Active for every line of one document snapshot.
// The zero value treats no line as active.
type Classifier struct {
	startLine int
	endLine   int
	lineCount int
	multiLine bool
}

// New builds a classifier from the primary selection's line span.
// startLine and endLine are 1-based and inclusive; lineCount bounds the
// document. A selection spanning multiple lines also activates the two
// lines immediately outside the span, so widening a drag selection does
// not flip widgets one line ahead of the caret's travel.
func New(startLine, endLine, lineCount int) Classifier {
	if endLine < startLine {
		startLine, endLine = endLine, startLine
	}
	return Classifier{
		startLine: startLine,
		endLine:   endLine,
		lineCount: lineCount,
		multiLine: startLine != endLine,
	}
}

// Active returns true if the line must show raw markdown. Lines outside
// [1, lineCount] are never active, which clamps the adjacency rule at
// the document edges.
func (c Classifier) Active(line int) bool {
	if line < 1 || line > c.lineCount {
		return false
	}
	if line >= c.startLine && line <= c.endLine {
		return true
	}
	if c.multiLine && (line == c.startLine-1 || line == c.endLine+1) {
		return true
	}
	return false
}

// SpanActive returns true if any line in [first, last] is active. A
// construct or block spanning several lines shows raw if any line it
// touches is active.
func (c Classifier) SpanActive(first, last int) bool {
	if last < first {
		first, last = last, first
	}
	// Only lines near the selection can be active, so testing the
	// intersection with the (possibly widened) selection span suffices.
	lo := c.startLine
	hi := c.endLine
	if c.multiLine {
		lo--
		hi++
	}
	if last < lo || first > hi {
		return false
	}
	for line := max(first, lo); line <= min(last, hi); line++ {
		if c.Active(line) {
			return true
		}
	}
	return false
}

// Selection reports the line span the classifier was built from.
func (c Classifier) Selection() (startLine, endLine int) {
	return c.startLine, c.endLine
}

// MultiLine reports whether the selection spans multiple lines.
func (c Classifier) MultiLine() bool { return c.multiLine }
