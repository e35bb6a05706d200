// Package livemark is the hybrid live-rendering engine: it classifies
// each line as raw or rendered from the current selection, rebuilds
// inline decorations over the viewport and block widget decisions over
// the whole document on every change, and owns the widgets' lifecycles.
// One Engine serves one editor instance; there is no shared state
// between engines.
package livemark

import (
	"sync"
	"time"

	"github.com/dshills/inkdown/internal/decoration"
	"github.com/dshills/inkdown/internal/livemark/block"
	"github.com/dshills/inkdown/internal/livemark/inline"
	"github.com/dshills/inkdown/internal/livemark/visibility"
	"github.com/dshills/inkdown/internal/logging"
	"github.com/dshills/inkdown/internal/style"
	"github.com/dshills/inkdown/internal/surface"
)

// Engine rebuilds the decoration state for one editor instance. Rebuilds
// are synchronous and cheap enough for every keystroke and caret move;
// expensive widget content arrives asynchronously and never re-enters
// the rebuild path.
type Engine struct {
	mu sync.Mutex

	styles  *style.Store
	inline  *inline.Builder
	blocks  *block.Manager
	log     *logging.Logger
	dirty   *debouncer
	onDirty func()

	// Current rebuild inputs and output.
	doc   surface.Document
	tree  *surface.Tree
	sel   surface.SelectionSet
	vp    surface.Viewport
	decos decoration.Set

	closed bool
}

// New creates an engine. Without options it uses the default style
// configuration, the reference adapters, and no dirty callback.
func New(opts ...Option) *Engine {
	cfg := config{
		styles:        style.NewStore(style.DefaultConfig()),
		log:           logging.Discard(),
		dirtyDebounce: 120 * time.Millisecond,
		resolver:      block.NullResolver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	managerOpts := []block.ManagerOption{
		block.WithLogger(cfg.log),
		block.WithResolver(cfg.resolver),
	}
	if cfg.diagram != nil {
		managerOpts = append(managerOpts, block.WithDiagramRenderer(cfg.diagram))
	}
	if cfg.chart != nil {
		managerOpts = append(managerOpts, block.WithChartRenderer(cfg.chart))
	}

	e := &Engine{
		styles:  cfg.styles,
		inline:  inline.NewBuilder(),
		blocks:  block.NewManager(managerOpts...),
		log:     cfg.log.WithComponent("livemark"),
		onDirty: cfg.onDirty,
	}
	if cfg.onDirty != nil {
		e.dirty = newDebouncer(cfg.dirtyDebounce, cfg.onDirty)
	}
	return e
}

// DocChanged must be called after every document edit with the new
// snapshot, its tree, the selection, and the viewport. The rebuild runs
// synchronously; the dirty callback is debounced separately so a
// keystroke burst notifies once.
func (e *Engine) DocChanged(doc surface.Document, tree *surface.Tree, sel surface.SelectionSet, vp surface.Viewport) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	e.doc, e.tree, e.sel, e.vp = doc, tree, sel, vp
	if e.dirty != nil {
		e.dirty.touch()
	}
	return e.rebuildLocked()
}

// SelectionChanged must be called on every caret move or selection
// change. It is never debounced: the raw/rendered flip has to track the
// caret immediately.
func (e *Engine) SelectionChanged(sel surface.SelectionSet, vp surface.Viewport) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.doc == nil {
		return ErrNoDocument
	}
	e.sel, e.vp = sel, vp
	return e.rebuildLocked()
}

// Rebuild re-runs the current inputs, for callers that changed an
// outside input such as the style configuration.
func (e *Engine) Rebuild() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.doc == nil {
		return ErrNoDocument
	}
	return e.rebuildLocked()
}

// rebuildLocked runs one full rebuild pass: classify, inline pass over
// the viewport, block pass over the whole document, commit.
func (e *Engine) rebuildLocked() error {
	primary, err := e.sel.Primary()
	if err != nil {
		return err
	}
	startLine, endLine := primary.LineSpan(e.doc)
	cls := visibility.New(startLine, endLine, e.doc.LineCount())
	theme := e.styles.Current()

	inlineDecos, err := e.inline.Build(e.doc, e.tree, e.vp, cls, theme)
	if err != nil {
		// An inline failure must not take down the pass; commit what the
		// block pass produces so editing stays usable.
		e.log.Error("inline pass failed: %v", err)
		inlineDecos = nil
	}

	blockDecos := e.blocks.Reconcile(e.doc, cls, theme)

	all := make([]decoration.Decoration, 0, len(inlineDecos)+len(blockDecos))
	all = append(all, inlineDecos...)
	all = append(all, blockDecos...)
	decoration.SortDecorations(all)

	builder := decoration.NewBuilder()
	for _, d := range all {
		if err := builder.Add(d); err != nil {
			return err
		}
	}
	set, err := builder.Build()
	if err != nil {
		return err
	}
	e.decos = set
	return nil
}

// Decorations returns the decoration set from the last rebuild.
func (e *Engine) Decorations() decoration.Set {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.decos
}

// Widget returns the widget with the given instance id.
func (e *Engine) Widget(id string) (*block.Widget, bool) {
	return e.blocks.Widget(id)
}

// Widgets returns all live widgets.
func (e *Engine) Widgets() []*block.Widget {
	return e.blocks.Widgets()
}

// Styles returns the engine's style store.
func (e *Engine) Styles() *style.Store { return e.styles }

// SetTheme switches the theme and rebuilds. Diagram and chart widgets
// re-render because theme is part of widget identity.
func (e *Engine) SetTheme(name style.ThemeName) error {
	e.styles.SetTheme(name)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.doc == nil {
		return nil
	}
	return e.rebuildLocked()
}

// WaitForWidgets blocks until in-flight widget rendering settles. Test
// and demo hook; production callers observe widget state instead.
func (e *Engine) WaitForWidgets() { e.blocks.Wait() }

// Close tears down widgets and stops the dirty debouncer.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	if e.dirty != nil {
		e.dirty.stop()
	}
	e.blocks.Close()
}
