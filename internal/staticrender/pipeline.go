// Package staticrender is the full-document render pipeline behind the
// non-live preview mode: markdown to HTML with GFM extensions and code
// highlighting, special diagram/chart fences lifted to placeholders the
// caller populates through the shared rendering adapters, image paths
// resolved against the document's directory, and results cached by
// content fingerprint.
package staticrender

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/dshills/inkdown/internal/logging"
	"github.com/dshills/inkdown/internal/style"
)

// Result is one rendered document.
type Result struct {
	// HTML is the rendered document, containing one placeholder div per
	// special block.
	HTML string
	// SpecialBlocks lists the lifted diagram/chart fences in document order.
	SpecialBlocks []SpecialBlock
}

// Pipeline renders markdown documents. Safe for use by a single preview
// window; the cache is guarded for the watcher goroutines that may
// invalidate by rendering concurrently.
type Pipeline struct {
	mu       sync.Mutex
	cache    *renderCache
	markdown map[style.ThemeName]goldmark.Markdown
	log      *logging.Logger
	renders  int // full renders performed, for tests and metrics
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithCacheCapacity overrides the render cache capacity.
func WithCacheCapacity(n int) PipelineOption {
	return func(p *Pipeline) { p.cache = newRenderCache(n) }
}

// WithPipelineLogger sets the logger.
func WithPipelineLogger(log *logging.Logger) PipelineOption {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log.WithComponent("staticrender")
		}
	}
}

// NewPipeline creates a render pipeline.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		cache:    newRenderCache(defaultCacheCapacity),
		markdown: make(map[style.ThemeName]goldmark.Markdown, 2),
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render converts markdown to HTML for the given theme, resolving image
// paths against basePath when it is non-empty. Identical inputs return
// the cached result without a second full render.
func (p *Pipeline) Render(markdown, basePath string, theme style.ThemeName) (Result, error) {
	if !theme.Valid() {
		theme = style.ThemeLight
	}

	key := fingerprint(markdown, basePath, string(theme))

	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, ok := p.cache.get(key); ok {
		p.log.Debug("render cache hit")
		return cached, nil
	}

	processed, specials := ExtractSpecialBlocks(markdown)

	var buf bytes.Buffer
	if err := p.markdownFor(theme).Convert([]byte(processed), &buf); err != nil {
		return Result{}, fmt.Errorf("rendering markdown: %w", err)
	}

	html := buf.String()
	if basePath != "" {
		html = ResolveImagePaths(html, basePath)
	}

	result := Result{HTML: html, SpecialBlocks: specials}
	p.cache.put(key, result)
	p.renders++
	return result, nil
}

// RenderCount returns the number of full (uncached) renders performed.
func (p *Pipeline) RenderCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renders
}

// markdownFor returns the goldmark instance for a theme, building it on
// first use. Unsafe raw HTML stays enabled so the placeholder divs
// survive rendering.
func (p *Pipeline) markdownFor(theme style.ThemeName) goldmark.Markdown {
	if md, ok := p.markdown[theme]; ok {
		return md
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			ghtml.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(&codeBlockRenderer{theme: theme}, 200),
			),
		),
	)
	p.markdown[theme] = md
	return md
}
