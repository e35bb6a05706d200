package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/inkdown/internal/style"
)

// chartTypes is the set of chart types the schema accepts.
var chartTypes = map[string]bool{
	"bar":      true,
	"line":     true,
	"pie":      true,
	"doughnut": true,
	"radar":    true,
	"scatter":  true,
}

// ValidateChart checks a chart definition against the expected schema:
// valid JSON, a known "type" string, and a "data" object whose
// "datasets" (when present) is an array. The returned error message is
// display-safe.
func ValidateChart(definitionJSON string) error {
	if !gjson.Valid(definitionJSON) {
		return fmt.Errorf("%w: not valid JSON", ErrInvalidChart)
	}

	typ := gjson.Get(definitionJSON, "type")
	if typ.Type != gjson.String || typ.Str == "" {
		return fmt.Errorf("%w: missing \"type\"", ErrInvalidChart)
	}
	if !chartTypes[strings.ToLower(typ.Str)] {
		return fmt.Errorf("%w: unknown chart type %q", ErrInvalidChart, typ.Str)
	}

	data := gjson.Get(definitionJSON, "data")
	if !data.Exists() || !data.IsObject() {
		return fmt.Errorf("%w: missing \"data\" object", ErrInvalidChart)
	}
	if ds := data.Get("datasets"); ds.Exists() && !ds.IsArray() {
		return fmt.Errorf("%w: \"data.datasets\" must be an array", ErrInvalidChart)
	}
	return nil
}

// InjectTheme annotates a chart definition with the active theme so the
// back-end renders matching colors. The original definition is left
// untouched on error.
func InjectTheme(definitionJSON string, theme style.Theme) (string, error) {
	out, err := sjson.Set(definitionJSON, "options.theme", string(theme.Name))
	if err != nil {
		return definitionJSON, fmt.Errorf("injecting theme: %w", err)
	}
	if !theme.Link.Foreground.IsDefault() {
		out, err = sjson.Set(out, "options.colors.accent", theme.Link.Foreground.ToHex())
		if err != nil {
			return definitionJSON, fmt.Errorf("injecting theme: %w", err)
		}
	}
	return out, nil
}

// TextChartRenderer is a reference ChartRenderer producing a plain-text
// summary. It stands in for an external charting engine in tests and the
// demo viewer.
type TextChartRenderer struct{}

// Render summarizes the chart definition as text markup.
func (TextChartRenderer) Render(ctx context.Context, definitionJSON string, theme style.ThemeName) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateChart(definitionJSON); err != nil {
		return "", err
	}

	typ := gjson.Get(definitionJSON, "type").Str
	labels := gjson.Get(definitionJSON, "data.labels")
	datasets := gjson.Get(definitionJSON, "data.datasets")

	var b strings.Builder
	fmt.Fprintf(&b, "[%s chart", typ)
	if labels.IsArray() {
		fmt.Fprintf(&b, ", %d labels", len(labels.Array()))
	}
	if datasets.IsArray() {
		fmt.Fprintf(&b, ", %d datasets", len(datasets.Array()))
	}
	b.WriteString("]")
	return b.String(), nil
}
