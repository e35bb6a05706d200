package visibility

import "testing"

func TestSingleLineSelection(t *testing.T) {
	c := New(5, 5, 10)

	for line := 1; line <= 10; line++ {
		want := line == 5
		if got := c.Active(line); got != want {
			t.Errorf("Active(%d) = %v, want %v", line, got, want)
		}
	}
}

func TestMultiLineSelectionIncludesNeighbors(t *testing.T) {
	c := New(4, 6, 10)

	active := map[int]bool{3: true, 4: true, 5: true, 6: true, 7: true}
	for line := 1; line <= 10; line++ {
		if got := c.Active(line); got != active[line] {
			t.Errorf("Active(%d) = %v, want %v", line, got, active[line])
		}
	}
}

func TestSingleLineSelectionHasNoNeighborRule(t *testing.T) {
	c := New(5, 5, 10)

	if c.Active(4) {
		t.Error("line 4 should not be active for a single-line selection")
	}
	if c.Active(6) {
		t.Error("line 6 should not be active for a single-line selection")
	}
}

func TestAdjacencyClampsAtDocumentEdges(t *testing.T) {
	// Selection starting at line 1: the would-be neighbor line 0 does
	// not exist and must never report active.
	c := New(1, 2, 5)
	if c.Active(0) {
		t.Error("Active(0) must be false")
	}
	if !c.Active(3) {
		t.Error("Active(3) should be true (neighbor below)")
	}

	// Selection ending at the last line: neighbor beyond the end.
	c = New(4, 5, 5)
	if c.Active(6) {
		t.Error("Active(6) must be false")
	}
	if !c.Active(3) {
		t.Error("Active(3) should be true (neighbor above)")
	}
}

func TestReversedSpanNormalizes(t *testing.T) {
	c := New(6, 4, 10)
	if !c.Active(5) {
		t.Error("Active(5) should be true for reversed span [6,4]")
	}
	if !c.MultiLine() {
		t.Error("MultiLine() should be true")
	}
}

func TestSpanActive(t *testing.T) {
	c := New(4, 6, 20)

	tests := []struct {
		name        string
		first, last int
		want        bool
	}{
		{"fully inside", 4, 6, true},
		{"overlapping top", 1, 4, true},
		{"touching neighbor above", 1, 3, true},
		{"touching neighbor below", 7, 9, true},
		{"fully above", 1, 2, false},
		{"fully below", 8, 12, false},
		{"reversed span", 9, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SpanActive(tt.first, tt.last); got != tt.want {
				t.Errorf("SpanActive(%d, %d) = %v, want %v", tt.first, tt.last, got, tt.want)
			}
		})
	}
}

func TestZeroValueClassifier(t *testing.T) {
	var c Classifier
	for line := 0; line <= 5; line++ {
		if c.Active(line) {
			t.Errorf("zero classifier Active(%d) should be false", line)
		}
	}
}

func TestActiveIsTotalOverRange(t *testing.T) {
	c := New(2, 3, 4)
	// No line number should panic or misbehave, far out of range included.
	for _, line := range []int{-100, -1, 0, 1, 2, 3, 4, 5, 100} {
		_ = c.Active(line)
	}
}
