package adapter

import (
	"context"
	"fmt"

	"github.com/dshills/inkdown/internal/logging"
	"github.com/dshills/inkdown/internal/style"
)

// SafeDiagram wraps a DiagramRenderer so that nothing it does — error or
// panic — escapes the widget boundary. Failures come back as ordinary
// errors suitable for inline display.
type SafeDiagram struct {
	renderer DiagramRenderer
	log      *logging.Logger
}

// NewSafeDiagram wraps the given renderer. A nil logger discards.
func NewSafeDiagram(r DiagramRenderer, log *logging.Logger) *SafeDiagram {
	if log == nil {
		log = logging.Discard()
	}
	return &SafeDiagram{renderer: r, log: log.WithComponent("diagram")}
}

// Render delegates to the wrapped renderer, recovering panics.
func (s *SafeDiagram) Render(ctx context.Context, id, source string) (markup string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("diagram renderer panic: %v", r)
			s.log.Error("recovered diagram panic: %v", r)
		}
	}()

	markup, err = s.renderer.Render(ctx, id, source)
	if err != nil {
		s.log.Debug("diagram render failed: %v", err)
	}
	return markup, err
}

// SafeChart wraps a ChartRenderer with schema validation, theme
// injection, and panic recovery.
type SafeChart struct {
	renderer ChartRenderer
	log      *logging.Logger
}

// NewSafeChart wraps the given renderer. A nil logger discards.
func NewSafeChart(r ChartRenderer, log *logging.Logger) *SafeChart {
	if log == nil {
		log = logging.Discard()
	}
	return &SafeChart{renderer: r, log: log.WithComponent("chart")}
}

// Render validates the definition, injects the theme, and delegates,
// recovering panics.
func (s *SafeChart) Render(ctx context.Context, definitionJSON string, theme style.Theme) (markup string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chart renderer panic: %v", r)
			s.log.Error("recovered chart panic: %v", r)
		}
	}()

	if err := ValidateChart(definitionJSON); err != nil {
		s.log.Debug("chart rejected: %v", err)
		return "", err
	}

	annotated, err := InjectTheme(definitionJSON, theme)
	if err != nil {
		// Theme annotation is cosmetic; render the original definition.
		annotated = definitionJSON
	}

	markup, err = s.renderer.Render(ctx, annotated, theme.Name)
	if err != nil {
		s.log.Debug("chart render failed: %v", err)
	}
	return markup, err
}
