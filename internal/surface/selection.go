package surface

// Selection is a single anchor/head range over a document, in byte
// offsets. Anchor is where the selection began; Head is the moving end
// (the caret). Head may precede Anchor.
type Selection struct {
	Anchor int
	Head   int
}

// Caret returns a collapsed selection at the given offset.
func Caret(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// IsEmpty returns true if the selection selects nothing.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Normalize returns the selection with From <= To.
func (s Selection) Normalize() (from, to int) {
	if s.Anchor <= s.Head {
		return s.Anchor, s.Head
	}
	return s.Head, s.Anchor
}

// LineSpan returns the 1-based lines containing the selection endpoints.
func (s Selection) LineSpan(doc Document) (startLine, endLine int) {
	from, to := s.Normalize()
	return doc.LineAt(from), doc.LineAt(to)
}

// SelectionSet holds one or more selection ranges. The engine reads only
// the primary (first) range; the rest exist so a multi-cursor surface can
// hand over its full state unchanged.
type SelectionSet struct {
	Ranges []Selection
}

// SingleSelection returns a set containing one range.
func SingleSelection(sel Selection) SelectionSet {
	return SelectionSet{Ranges: []Selection{sel}}
}

// Primary returns the primary range. ErrNoSelection if the set is empty.
func (ss SelectionSet) Primary() (Selection, error) {
	if len(ss.Ranges) == 0 {
		return Selection{}, ErrNoSelection
	}
	return ss.Ranges[0], nil
}
