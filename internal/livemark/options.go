package livemark

import (
	"time"

	"github.com/dshills/inkdown/internal/adapter"
	"github.com/dshills/inkdown/internal/livemark/block"
	"github.com/dshills/inkdown/internal/logging"
	"github.com/dshills/inkdown/internal/style"
)

// config collects construction-time settings.
type config struct {
	styles        *style.Store
	log           *logging.Logger
	diagram       adapter.DiagramRenderer
	chart         adapter.ChartRenderer
	resolver      block.Resolver
	onDirty       func()
	dirtyDebounce time.Duration
}

// Option configures an Engine during creation.
type Option func(*config)

// WithStyles sets the style store shared with the host application.
func WithStyles(store *style.Store) Option {
	return func(c *config) {
		if store != nil {
			c.styles = store
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithDiagramRenderer sets the diagram rendering back-end.
func WithDiagramRenderer(r adapter.DiagramRenderer) Option {
	return func(c *config) { c.diagram = r }
}

// WithChartRenderer sets the chart rendering back-end.
func WithChartRenderer(r adapter.ChartRenderer) Option {
	return func(c *config) { c.chart = r }
}

// WithBasePath sets the document's file path, used to resolve relative
// image references.
func WithBasePath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.resolver = block.DirResolver{BasePath: path}
		}
	}
}

// WithResolver sets a custom image resolver.
func WithResolver(r block.Resolver) Option {
	return func(c *config) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithDirtyCallback sets the debounced persisted-content callback,
// invoked after document changes settle.
func WithDirtyCallback(fn func()) Option {
	return func(c *config) { c.onDirty = fn }
}

// WithDirtyDebounce sets the dirty callback's debounce window.
func WithDirtyDebounce(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.dirtyDebounce = d
		}
	}
}
