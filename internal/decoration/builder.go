package decoration

import "sort"

// Builder collects decorations for one rebuild pass. Add enforces the
// range-set contract: decorations must arrive in non-decreasing From
// order. Callers that gather out of order sort first (see SortDecorations)
// and then feed the builder.
type Builder struct {
	decorations []Decoration
	lastFrom    int
	err         error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{lastFrom: -1}
}

// Add appends a decoration. Returns ErrOutOfOrder if the decoration's
// From precedes the previous one, or ErrInvalidSpan if To < From. The
// first error sticks; later Adds are dropped and Build reports it.
func (b *Builder) Add(d Decoration) error {
	if b.err != nil {
		return b.err
	}
	if d.To < d.From {
		b.err = ErrInvalidSpan
		return b.err
	}
	if d.From < b.lastFrom {
		b.err = ErrOutOfOrder
		return b.err
	}
	b.lastFrom = d.From
	b.decorations = append(b.decorations, d)
	return nil
}

// Len returns the number of decorations added so far.
func (b *Builder) Len() int { return len(b.decorations) }

// Build freezes the collected decorations into a Set.
func (b *Builder) Build() (Set, error) {
	if b.err != nil {
		return Set{}, b.err
	}
	out := make([]Decoration, len(b.decorations))
	copy(out, b.decorations)
	return Set{decorations: out}, nil
}

// SortDecorations orders decorations by From, then To, then Kind. Stable
// so same-span decorations keep emission order.
func SortDecorations(ds []Decoration) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].From != ds[j].From {
			return ds[i].From < ds[j].From
		}
		if ds[i].To != ds[j].To {
			return ds[i].To < ds[j].To
		}
		return ds[i].Kind < ds[j].Kind
	})
}

// Set is an immutable, ordered collection of decorations from one
// rebuild pass.
type Set struct {
	decorations []Decoration
}

// NewSet sorts the given decorations and freezes them into a Set.
func NewSet(ds []Decoration) Set {
	out := make([]Decoration, len(ds))
	copy(out, ds)
	SortDecorations(out)
	return Set{decorations: out}
}

// All returns the decorations in order. The slice is shared; do not mutate.
func (s Set) All() []Decoration { return s.decorations }

// Len returns the number of decorations.
func (s Set) Len() int { return len(s.decorations) }

// In returns the decorations overlapping [from, to).
func (s Set) In(from, to int) []Decoration {
	var out []Decoration
	for _, d := range s.decorations {
		if d.From >= to {
			break
		}
		if from < d.To {
			out = append(out, d)
		}
	}
	return out
}

// Equal reports whether two sets contain identical decorations in the
// same order.
func (s Set) Equal(other Set) bool {
	if len(s.decorations) != len(other.decorations) {
		return false
	}
	for i := range s.decorations {
		if s.decorations[i] != other.decorations[i] {
			return false
		}
	}
	return true
}
