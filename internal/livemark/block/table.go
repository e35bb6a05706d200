package block

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Table is a locally-parsed pipe table. No adapter round-trip: tables
// render synchronously.
type Table struct {
	Header []string
	Rows   [][]string
}

// ParseTable parses raw pipe-table lines: a header row, a separator row
// that is discarded, and body rows padded or truncated to the header's
// column count.
func ParseTable(raw string) Table {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 {
		return Table{}
	}

	header := splitRow(lines[0])
	t := Table{Header: header}

	for _, line := range lines[1:] {
		if separatorRe.MatchString(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := splitRow(line)
		for len(row) < len(header) {
			row = append(row, "")
		}
		if len(row) > len(header) {
			row = row[:len(header)]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// splitRow splits a pipe row into trimmed cells, dropping the empty
// leading/trailing cells produced by boundary pipes.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// ColumnWidths returns the display width of each column, sized to the
// widest cell. Widths are grapheme-cluster aware so CJK and emoji cells
// align.
func (t Table) ColumnWidths() []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = uniseg.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := uniseg.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// RenderText renders the table as aligned plain text, the content shown
// by a table widget.
func (t Table) RenderText() string {
	if len(t.Header) == 0 {
		return ""
	}
	widths := t.ColumnWidths()

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", w-uniseg.StringWidth(cell)))
			if i < len(widths)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	writeRow(t.Header)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w))
		if i < len(widths)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')
	for _, row := range t.Rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}
