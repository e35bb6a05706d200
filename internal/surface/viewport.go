package surface

// Range is a half-open byte span [From, To).
type Range struct {
	From int
	To   int
}

// Contains returns true if the offset lies within the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.From && offset < r.To
}

// Overlaps returns true if the two ranges share any byte.
func (r Range) Overlaps(other Range) bool {
	return r.From < other.To && other.From < r.To
}

// Viewport is the set of visible byte ranges. Inline decoration building
// is scoped to these ranges; block detection is not.
type Viewport struct {
	Ranges []Range
}

// FullViewport returns a viewport covering the whole document.
func FullViewport(doc Document) Viewport {
	return Viewport{Ranges: []Range{{From: 0, To: doc.Len()}}}
}

// ViewportOf returns a viewport with a single range, clamped to the
// document bounds.
func ViewportOf(doc Document, from, to int) Viewport {
	if from < 0 {
		from = 0
	}
	if to > doc.Len() {
		to = doc.Len()
	}
	if to < from {
		to = from
	}
	return Viewport{Ranges: []Range{{From: from, To: to}}}
}

// Covers returns true if any viewport range overlaps [from, to).
func (v Viewport) Covers(from, to int) bool {
	span := Range{From: from, To: to}
	if from == to {
		span.To = from + 1
	}
	for _, r := range v.Ranges {
		if r.Overlaps(span) {
			return true
		}
	}
	return false
}
