// Package inline builds mark-level decorations for the visible viewport:
// hiding syntax markers and styling headings, emphasis, links, code
// spans, list markers, and task markers, honoring the per-line
// visibility decision. It walks the syntax tree the surface provides and
// never re-parses.
package inline

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/dshills/inkdown/internal/decoration"
	"github.com/dshills/inkdown/internal/livemark/visibility"
	"github.com/dshills/inkdown/internal/style"
	"github.com/dshills/inkdown/internal/surface"
)

// Builder produces inline decorations for one rebuild pass. It is
// stateless between passes; construct one per engine and call Build on
// every document or selection change.
type Builder struct{}

// NewBuilder creates an inline decoration builder.
func NewBuilder() *Builder { return &Builder{} }

// Build walks the tree within the viewport and returns the inline
// decorations, sorted by position. Malformed constructs are skipped
// silently; Build itself fails only on a broken tree walk.
func (b *Builder) Build(
	doc surface.Document,
	tree *surface.Tree,
	vp surface.Viewport,
	cls visibility.Classifier,
	theme style.Theme,
) ([]decoration.Decoration, error) {
	w := &walker{
		doc:       doc,
		source:    tree.Source,
		vp:        vp,
		cls:       cls,
		codeLines: make(map[int]bool),
	}

	err := ast.Walk(tree.Root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		w.visit(n)
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	scanLines(doc, vp, cls, theme, w.codeLines, &w.out)

	decoration.SortDecorations(w.out)
	return w.out, nil
}

// walker accumulates decorations during one tree walk.
type walker struct {
	doc       surface.Document
	source    []byte
	vp        surface.Viewport
	cls       visibility.Classifier
	codeLines map[int]bool
	out       []decoration.Decoration
}

// visit dispatches on the closed set of inline construct kinds.
func (w *walker) visit(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		w.heading(n)
	case *ast.Emphasis:
		w.emphasis(n)
	case *east.Strikethrough:
		w.delimited(n, '~', 2, decoration.StyleStrikethrough)
	case *ast.CodeSpan:
		w.codeSpan(n)
	case *ast.Link:
		w.linkLike(n, false)
	case *ast.Image:
		w.linkLike(n, true)
	case *ast.FencedCodeBlock:
		w.markCodeLines(n)
	case *ast.CodeBlock:
		w.markCodeLines(n)
	}
}

// markCodeLines records the lines a code block's body covers so the
// line-lexical pass leaves them untouched. A dash or bullet inside a
// fence is code, not a list marker.
func (w *walker) markCodeLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if seg.Stop <= seg.Start {
			continue
		}
		first := w.doc.LineAt(seg.Start)
		last := w.doc.LineAt(seg.Stop - 1)
		for line := first; line <= last; line++ {
			w.codeLines[line] = true
		}
	}
}

// spanActive reports whether any line touched by [from, to) is active.
func (w *walker) spanActive(from, to int) bool {
	first := w.doc.LineAt(from)
	last := first
	if to > from {
		last = w.doc.LineAt(to - 1)
	}
	return w.cls.SpanActive(first, last)
}

// heading hides the leading marker run of an ATX heading and styles its
// text. Setext headings carry no marker run; they are styled only.
func (w *walker) heading(n *ast.Heading) {
	if n.Lines().Len() == 0 {
		return
	}
	textStart := n.Lines().At(0).Start
	textEnd := n.Lines().At(n.Lines().Len() - 1).Stop
	if !w.vp.Covers(textStart, textEnd) {
		return
	}

	lineStart, _, err := lineSpanOf(w.doc, textStart)
	if err != nil {
		return
	}

	active := w.spanActive(lineStart, textEnd)
	if !active {
		// The marker run must be exactly '#'×level plus one space; if the
		// bytes disagree (setext heading, malformed), leave it visible.
		markerEnd := lineStart + n.Level + 1
		if isATXMarker(w.source, lineStart, n.Level) && markerEnd <= textStart {
			w.out = append(w.out, decoration.Hide(lineStart, markerEnd))
		}
	}
	// Heading text keeps its style while active; only the markers flip.
	w.out = append(w.out, decoration.Styled(textStart, textEnd, decoration.HeadingStyle(n.Level)))
}

// emphasis handles bold (level 2) and italic (level 1).
func (w *walker) emphasis(n *ast.Emphasis) {
	styleKind := decoration.StyleItalic
	if n.Level >= 2 {
		styleKind = decoration.StyleBold
	}

	from, to, ok := w.childExtent(n)
	if !ok {
		return
	}
	w.markerPair(from, to, n.Level, delimiterAt(w.source, from-1), styleKind)
}

// delimited handles constructs bracketed by a fixed delimiter run, like
// strikethrough's "~~".
func (w *walker) delimited(n ast.Node, delim byte, count int, styleKind decoration.StyleKind) {
	from, to, ok := w.childExtent(n)
	if !ok {
		return
	}
	w.markerPair(from, to, count, delim, styleKind)
}

// markerPair verifies count delimiter bytes on each side of [from, to),
// then emits hide decorations for the markers and a style for the body.
// A shape mismatch (unterminated or malformed construct) emits nothing.
func (w *walker) markerPair(from, to, count int, delim byte, styleKind decoration.StyleKind) {
	openStart, closeEnd, ok := w.runSpan(from, to, count, delim)
	if !ok {
		return
	}
	if !w.vp.Covers(openStart, closeEnd) {
		return
	}

	if !w.spanActive(openStart, closeEnd) {
		w.out = append(w.out,
			decoration.Hide(openStart, from),
			decoration.Styled(from, to, styleKind),
			decoration.Hide(to, closeEnd),
		)
	}
}

// runSpan verifies count delimiter bytes on each side of [from, to) and
// returns the span widened to include them.
func (w *walker) runSpan(from, to, count int, delim byte) (int, int, bool) {
	if delim == 0 {
		return 0, 0, false
	}
	openStart := from - count
	closeEnd := to + count
	if openStart < 0 || closeEnd > len(w.source) {
		return 0, 0, false
	}
	for i := openStart; i < from; i++ {
		if w.source[i] != delim {
			return 0, 0, false
		}
	}
	for i := to; i < closeEnd; i++ {
		if w.source[i] != delim {
			return 0, 0, false
		}
	}
	return openStart, closeEnd, true
}

// codeSpan hides the backtick run at each end of an inline code span.
func (w *walker) codeSpan(n *ast.CodeSpan) {
	from, to, ok := w.childExtent(n)
	if !ok {
		return
	}

	// Backtick runs may be longer than one; measure the opening run.
	count := 0
	for i := from - 1; i >= 0 && w.source[i] == '`'; i-- {
		count++
	}
	if count == 0 {
		return
	}
	w.markerPair(from, to, count, '`', decoration.StyleInlineCode)
}

// linkLike handles [text](url) and ![alt](src). Images inside running
// text get the same marker hiding as links; standalone image lines are
// the block manager's to replace, not ours.
func (w *walker) linkLike(n ast.Node, isImage bool) {
	openLen := 1 // "["
	styleKind := decoration.StyleLink
	if isImage {
		openLen = 2 // "!["
		styleKind = decoration.StyleImageAlt
	}

	from, to, ok := w.childExtent(n)
	if !ok {
		return
	}
	openStart, closeEnd, ok := w.linkOuter(from, to, openLen)
	if !ok {
		return
	}
	if isImage {
		if w.source[openStart] != '!' || w.source[openStart+1] != '[' {
			return
		}
	} else if w.source[openStart] != '[' {
		return
	}
	if !w.vp.Covers(openStart, closeEnd) {
		return
	}

	if !w.spanActive(openStart, closeEnd) {
		w.out = append(w.out,
			decoration.Hide(openStart, from),
			decoration.Styled(from, to, styleKind),
			decoration.Hide(to, closeEnd),
		)
	}
}

// linkOuter widens an inner label span to the full "[…](…)" extent. The
// tail must look like "](url)" on one line; otherwise (autolink,
// reference link, unterminated) the construct stays raw.
func (w *walker) linkOuter(from, to, openLen int) (int, int, bool) {
	openStart := from - openLen
	if openStart < 0 || to+1 >= len(w.source) {
		return 0, 0, false
	}
	if w.source[to] != ']' || w.source[to+1] != '(' {
		return 0, 0, false
	}
	for i := to + 2; i < len(w.source); i++ {
		switch w.source[i] {
		case ')':
			return openStart, i + 1, true
		case '\n':
			return 0, 0, false
		}
	}
	return 0, 0, false
}

// extent returns the full source span of an inline node, delimiters
// included, so a parent construct sees the outermost bytes of its
// nested children. Nodes whose shape cannot be verified against the
// source report !ok.
func (w *walker) extent(n ast.Node) (from, to int, ok bool) {
	switch n := n.(type) {
	case *ast.Text:
		seg := n.Segment
		return seg.Start, seg.Stop, seg.Stop > seg.Start
	case *ast.Emphasis:
		from, to, ok = w.childExtent(n)
		if !ok {
			return 0, 0, false
		}
		return w.runSpan(from, to, n.Level, delimiterAt(w.source, from-1))
	case *east.Strikethrough:
		from, to, ok = w.childExtent(n)
		if !ok {
			return 0, 0, false
		}
		return w.runSpan(from, to, 2, '~')
	case *ast.CodeSpan:
		from, to, ok = w.childExtent(n)
		if !ok {
			return 0, 0, false
		}
		count := 0
		for i := from - 1; i >= 0 && w.source[i] == '`'; i-- {
			count++
		}
		if count == 0 {
			return 0, 0, false
		}
		return w.runSpan(from, to, count, '`')
	case *ast.Link:
		from, to, ok = w.childExtent(n)
		if !ok {
			return 0, 0, false
		}
		openStart, closeEnd, outerOK := w.linkOuter(from, to, 1)
		if !outerOK || w.source[openStart] != '[' {
			return 0, 0, false
		}
		return openStart, closeEnd, true
	case *ast.Image:
		from, to, ok = w.childExtent(n)
		if !ok {
			return 0, 0, false
		}
		openStart, closeEnd, outerOK := w.linkOuter(from, to, 2)
		if !outerOK || w.source[openStart] != '!' {
			return 0, 0, false
		}
		return openStart, closeEnd, true
	default:
		return w.childExtent(n)
	}
}

// childExtent returns the span covering the extents of all children.
func (w *walker) childExtent(n ast.Node) (from, to int, ok bool) {
	from, to = -1, -1
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		cf, ct, cok := w.extent(c)
		if !cok {
			continue
		}
		if from < 0 || cf < from {
			from = cf
		}
		if ct > to {
			to = ct
		}
	}
	return from, to, from >= 0 && to > from
}

// delimiterAt returns the byte at index i if it is an emphasis
// delimiter, else 0.
func delimiterAt(source []byte, i int) byte {
	if i < 0 || i >= len(source) {
		return 0
	}
	if source[i] == '*' || source[i] == '_' {
		return source[i]
	}
	return 0
}

// isATXMarker reports whether source[start:] begins with level '#' bytes
// followed by a space.
func isATXMarker(source []byte, start, level int) bool {
	if start+level >= len(source) {
		return false
	}
	for i := 0; i < level; i++ {
		if source[start+i] != '#' {
			return false
		}
	}
	return source[start+level] == ' '
}

// lineSpanOf returns the byte span of the line containing offset.
func lineSpanOf(doc surface.Document, offset int) (int, int, error) {
	return doc.Line(doc.LineAt(offset))
}
