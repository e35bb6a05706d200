package staticrender

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/dshills/inkdown/internal/style"
)

// chromaStyleFor maps a theme to a chroma style name.
func chromaStyleFor(theme style.ThemeName) string {
	if theme == style.ThemeDark {
		return "github-dark"
	}
	return "github"
}

// HighlightCode highlights a code block for the given theme and returns
// HTML. Unknown languages fall back to plain-text tokenization; the
// function never fails on user input, only on writer errors.
func HighlightCode(code, lang string, theme style.ThemeName) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "<pre><code>" + string(util.EscapeHTML([]byte(code))) + "</code></pre>"
	}

	chromaStyle := chromastyles.Get(chromaStyleFor(theme))
	if chromaStyle == nil {
		chromaStyle = chromastyles.Fallback
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(false))
	if err := formatter.Format(&buf, chromaStyle, iterator); err != nil {
		return "<pre><code>" + string(util.EscapeHTML([]byte(code))) + "</code></pre>"
	}
	return buf.String()
}

// codeBlockRenderer renders fenced code blocks through chroma, standing
// in for goldmark's default preformatted output.
type codeBlockRenderer struct {
	theme style.ThemeName
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCode)
}

// renderFencedCode writes the highlighted block on entry and skips the
// default rendering.
func (r *codeBlockRenderer) renderFencedCode(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	lang := ""
	if l := n.Language(source); l != nil {
		lang = string(l)
	}

	var code bytes.Buffer
	for i := 0; i < n.Lines().Len(); i++ {
		seg := n.Lines().At(i)
		code.Write(seg.Value(source))
	}

	if _, err := w.WriteString(HighlightCode(code.String(), lang, r.theme)); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}
