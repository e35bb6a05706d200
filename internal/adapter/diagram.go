package adapter

import (
	"context"
	"fmt"
	"strings"
)

// TextDiagramRenderer is a reference DiagramRenderer that boxes the
// diagram source as preformatted markup. It stands in for an external
// diagram engine (mermaid or similar) in tests and the demo viewer.
type TextDiagramRenderer struct{}

// Render boxes the diagram source.
func (TextDiagramRenderer) Render(ctx context.Context, id, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return "", ErrEmptyDiagram
	}

	firstLine := trimmed
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}
	return fmt.Sprintf("[diagram %s: %s]", id, firstLine), nil
}
