package block

import (
	"context"
	"fmt"
	"sync"

	"github.com/dshills/inkdown/internal/adapter"
	"github.com/dshills/inkdown/internal/decoration"
	"github.com/dshills/inkdown/internal/livemark/visibility"
	"github.com/dshills/inkdown/internal/logging"
	"github.com/dshills/inkdown/internal/style"
	"github.com/dshills/inkdown/internal/surface"
)

// Manager owns widget lifecycles for one engine instance. Every rebuild
// it rescans the document, decides per block whether a widget replaces
// the raw text, reuses widgets whose identity is unchanged, and tears
// down the rest. Expensive rendering runs off the rebuild path in
// goroutines that mutate only their own widget.
type Manager struct {
	mu      sync.Mutex
	widgets map[Identity][]*Widget

	diagram  *adapter.SafeDiagram
	chart    *adapter.SafeChart
	resolver Resolver
	log      *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDiagramRenderer sets the diagram back-end.
func WithDiagramRenderer(r adapter.DiagramRenderer) ManagerOption {
	return func(m *Manager) {
		if r != nil {
			m.diagram = adapter.NewSafeDiagram(r, m.log)
		}
	}
}

// WithChartRenderer sets the chart back-end.
func WithChartRenderer(r adapter.ChartRenderer) ManagerOption {
	return func(m *Manager) {
		if r != nil {
			m.chart = adapter.NewSafeChart(r, m.log)
		}
	}
}

// WithResolver sets the image path resolver.
func WithResolver(r Resolver) ManagerOption {
	return func(m *Manager) {
		if r != nil {
			m.resolver = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log.WithComponent("block")
		}
	}
}

// NewManager creates a widget manager. Without options it uses the
// text reference adapters and a pass-through image resolver.
func NewManager(opts ...ManagerOption) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		widgets:  make(map[Identity][]*Widget),
		log:      logging.Discard(),
		resolver: NullResolver{},
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.diagram == nil {
		m.diagram = adapter.NewSafeDiagram(adapter.TextDiagramRenderer{}, m.log)
	}
	if m.chart == nil {
		m.chart = adapter.NewSafeChart(adapter.TextChartRenderer{}, m.log)
	}
	return m
}

// Reconcile runs the block pass for one rebuild: scans the whole
// document, applies the visibility rule, reuses or creates widgets, and
// returns widget anchor decorations sorted by position. Blocks with any
// active line (or adjacent to a multi-line selection, which the
// classifier's own adjacency rule covers) stay raw and contribute no
// decoration; their widgets are kept detachable but not shown.
func (m *Manager) Reconcile(doc surface.Document, cls visibility.Classifier, theme style.Theme) []decoration.Decoration {
	blocks := Scan(doc.Text())

	m.mu.Lock()
	defer m.mu.Unlock()

	// Desired widgets for this rebuild, grouped by identity so repeated
	// identical blocks each get their own instance.
	next := make(map[Identity][]*Widget)
	var decorations []decoration.Decoration

	for _, blk := range blocks {
		if cls.SpanActive(blk.StartLine, blk.EndLine) {
			continue
		}

		identity := Identity{Kind: blk.Kind, Hash: blk.PayloadHash(), Theme: theme.Name}
		w := m.takeExisting(identity)
		if w != nil {
			w.moveTo(blk)
		} else {
			w = newWidget(identity, blk)
			m.populate(w, blk, theme)
		}
		next[identity] = append(next[identity], w)

		from, _, err := doc.Line(blk.StartLine)
		if err != nil {
			continue
		}
		_, to, err := doc.Line(blk.EndLine)
		if err != nil {
			continue
		}
		decorations = append(decorations, decoration.WidgetAnchor(from, to, w.ID()))
	}

	// Anything not carried over is gone from the decision set.
	for identity, ws := range m.widgets {
		for _, w := range ws {
			w.detach()
			m.log.Debug("widget torn down kind=%s id=%s", identity.Kind, w.ID())
		}
	}
	m.widgets = next

	decoration.SortDecorations(decorations)
	return decorations
}

// takeExisting removes and returns a widget with the given identity from
// the previous rebuild's set, if one remains.
func (m *Manager) takeExisting(identity Identity) *Widget {
	ws := m.widgets[identity]
	if len(ws) == 0 {
		return nil
	}
	w := ws[0]
	if len(ws) == 1 {
		delete(m.widgets, identity)
	} else {
		m.widgets[identity] = ws[1:]
	}
	return w
}

// populate starts content population for a freshly created widget.
// Tables resolve synchronously; images, diagrams, and charts go through
// asynchronous completion.
func (m *Manager) populate(w *Widget, blk Block, theme style.Theme) {
	switch blk.Kind {
	case KindTable:
		w.resolve(ParseTable(blk.Payload).RenderText())

	case KindImage:
		if !w.markPending() {
			return
		}
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			resolved, err := m.resolver.Resolve(blk.URL)
			if err != nil {
				if blk.Alt != "" {
					w.fail(fmt.Sprintf("%s (%v)", blk.Alt, err))
				} else {
					w.fail(err.Error())
				}
				return
			}
			w.resolve(resolved)
		}()

	case KindDiagram:
		if !w.markPending() {
			return
		}
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			markup, err := m.diagram.Render(m.ctx, w.ID(), blk.Payload)
			if err != nil {
				w.fail(err.Error())
				return
			}
			w.resolve(markup)
		}()

	case KindChart:
		if !w.markPending() {
			return
		}
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			markup, err := m.chart.Render(m.ctx, blk.Payload, theme)
			if err != nil {
				w.fail(err.Error())
				return
			}
			w.resolve(markup)
		}()
	}
}

// Widget returns the widget with the given instance id, if present.
func (m *Manager) Widget(id string) (*Widget, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ws := range m.widgets {
		for _, w := range ws {
			if w.ID() == id {
				return w, true
			}
		}
	}
	return nil, false
}

// Widgets returns all live widgets.
func (m *Manager) Widgets() []*Widget {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Widget
	for _, ws := range m.widgets {
		out = append(out, ws...)
	}
	return out
}

// Wait blocks until in-flight population goroutines finish. Test hook.
func (m *Manager) Wait() { m.wg.Wait() }

// Close tears down all widgets and stops background rendering.
func (m *Manager) Close() {
	m.cancel()
	m.mu.Lock()
	for _, ws := range m.widgets {
		for _, w := range ws {
			w.detach()
		}
	}
	m.widgets = make(map[Identity][]*Widget)
	m.mu.Unlock()
	m.wg.Wait()
}
