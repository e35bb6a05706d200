package block

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/inkdown/internal/style"
)

// State is a widget's lifecycle state.
type State uint8

const (
	// StateCreated is the initial state before rendering is requested.
	StateCreated State = iota
	// StatePending means asynchronous rendering is in flight and the
	// widget shows a placeholder.
	StatePending
	// StateReady means content has arrived.
	StateReady
	// StateFailed means rendering failed; ErrText holds the inline error.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Identity keys a widget: same kind, same payload, same theme means the
// same widget instance is reused across rebuilds and its adapter is not
// re-invoked. Theme participates because diagram and chart back-ends
// bake theme colors into their output.
type Identity struct {
	Kind  Kind
	Hash  uint64
	Theme style.ThemeName
}

// Widget is a stateful visual replacement for one block. All mutation
// goes through its methods; asynchronous completions check attachment
// before applying, so a stale resolution after teardown is a silent no-op.
type Widget struct {
	mu sync.Mutex

	id       string
	identity Identity
	state    State
	content  string
	errText  string
	attached bool

	// anchor tracking, updated by the manager on every rebuild
	startLine int
	endLine   int
	alt       string
}

// newWidget creates an attached widget in StateCreated.
func newWidget(identity Identity, blk Block) *Widget {
	return &Widget{
		id:        uuid.NewString(),
		identity:  identity,
		state:     StateCreated,
		attached:  true,
		startLine: blk.StartLine,
		endLine:   blk.EndLine,
		alt:       blk.Alt,
	}
}

// ID returns the widget's unique instance id.
func (w *Widget) ID() string { return w.id }

// Identity returns the widget's identity key.
func (w *Widget) Identity() Identity { return w.identity }

// Kind returns the widget's block kind.
func (w *Widget) Kind() Kind { return w.identity.Kind }

// State returns the current lifecycle state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Content returns the rendered content (valid in StateReady).
func (w *Widget) Content() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.content
}

// ErrText returns the inline error text (valid in StateFailed).
func (w *Widget) ErrText() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errText
}

// Lines returns the widget's current anchor line span.
func (w *Widget) Lines() (startLine, endLine int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.startLine, w.endLine
}

// Attached reports whether the widget is still part of the decision set.
func (w *Widget) Attached() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attached
}

// moveTo updates the anchor span after a rebuild relocated the block.
func (w *Widget) moveTo(blk Block) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.startLine = blk.StartLine
	w.endLine = blk.EndLine
}

// markPending transitions Created -> Pending. Returns false if the
// widget already left Created (rendering was started by an earlier
// rebuild, or it resolved).
func (w *Widget) markPending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateCreated {
		return false
	}
	w.state = StatePending
	return true
}

// resolve applies rendered content. Dropped silently if the widget was
// detached while the render was in flight.
func (w *Widget) resolve(content string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.attached {
		return
	}
	w.state = StateReady
	w.content = content
	w.errText = ""
}

// fail applies an inline error. Dropped silently if detached.
func (w *Widget) fail(errText string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.attached {
		return
	}
	w.state = StateFailed
	w.errText = errText
}

// detach removes the widget from the decision set. Any in-flight
// completion that lands afterwards no-ops.
func (w *Widget) detach() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.attached = false
}
