// Package adapter defines the rendering capabilities the engine's block
// widgets delegate to — diagram and chart back-ends — plus the defensive
// glue that keeps their failures out of the synchronous update path.
// The real back-ends live outside this module; this package ships small
// text-based reference implementations for tests and the demo viewer.
package adapter

import (
	"context"

	"github.com/dshills/inkdown/internal/style"
)

// DiagramRenderer turns diagram source text into displayable markup.
// Implementations must return an error whose message is safe to show
// verbatim; they must not panic (the Safe wrappers recover anyway).
type DiagramRenderer interface {
	// Render renders the diagram source. id identifies the requesting
	// widget and may be used for markup element ids.
	Render(ctx context.Context, id, source string) (string, error)
}

// ChartRenderer turns a chart definition (JSON) into displayable markup
// under the given theme.
type ChartRenderer interface {
	// Render renders the chart definition. The definition has already
	// been validated and theme-annotated by the glue layer.
	Render(ctx context.Context, definitionJSON string, theme style.ThemeName) (string, error)
}

// DiagramFunc adapts a function to the DiagramRenderer interface.
type DiagramFunc func(ctx context.Context, id, source string) (string, error)

// Render calls the function.
func (f DiagramFunc) Render(ctx context.Context, id, source string) (string, error) {
	return f(ctx, id, source)
}

// ChartFunc adapts a function to the ChartRenderer interface.
type ChartFunc func(ctx context.Context, definitionJSON string, theme style.ThemeName) (string, error)

// Render calls the function.
func (f ChartFunc) Render(ctx context.Context, definitionJSON string, theme style.ThemeName) (string, error) {
	return f(ctx, definitionJSON, theme)
}
