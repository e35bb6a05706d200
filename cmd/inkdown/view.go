package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/inkdown/internal/decoration"
	"github.com/dshills/inkdown/internal/livemark"
	"github.com/dshills/inkdown/internal/livemark/block"
	"github.com/dshills/inkdown/internal/style"
	"github.com/dshills/inkdown/internal/surface"
)

// view renders the document with live decorations applied and tracks
// the cursor that drives the raw/rendered classification.
type view struct {
	screen tcell.Screen
	doc    *surface.Buffer
	tree   *surface.Tree
	engine *livemark.Engine

	cursorLine int // 1-based
	cursorCol  int // byte column within the line
	scroll     int // first visible line - 1
	started    bool
}

func newView(screen tcell.Screen, doc *surface.Buffer, tree *surface.Tree, engine *livemark.Engine) *view {
	return &view{
		screen:     screen,
		doc:        doc,
		tree:       tree,
		engine:     engine,
		cursorLine: 1,
	}
}

// moveCursor shifts the cursor and reruns the engine's selection pass.
func (v *view) moveCursor(dx, dy int) error {
	v.cursorLine += dy
	if v.cursorLine < 1 {
		v.cursorLine = 1
	}
	if v.cursorLine > v.doc.LineCount() {
		v.cursorLine = v.doc.LineCount()
	}

	start, end, err := v.doc.Line(v.cursorLine)
	if err != nil {
		return err
	}
	v.cursorCol += dx
	if v.cursorCol < 0 {
		v.cursorCol = 0
	}
	if v.cursorCol > end-start {
		v.cursorCol = end - start
	}

	v.scrollIntoView()

	sel := surface.SingleSelection(surface.Caret(start + v.cursorCol))
	vp := v.viewport()
	if !v.started {
		v.started = true
		return v.engine.DocChanged(v.doc, v.tree, sel, vp)
	}
	return v.engine.SelectionChanged(sel, vp)
}

// scrollIntoView keeps the cursor line on screen.
func (v *view) scrollIntoView() {
	_, height := v.screen.Size()
	if height < 1 {
		return
	}
	if v.cursorLine-1 < v.scroll {
		v.scroll = v.cursorLine - 1
	}
	if v.cursorLine-1 >= v.scroll+height {
		v.scroll = v.cursorLine - height
	}
}

// viewport returns the byte ranges of the visible lines.
func (v *view) viewport() surface.Viewport {
	_, height := v.screen.Size()
	first := v.scroll + 1
	last := v.scroll + height
	if last > v.doc.LineCount() {
		last = v.doc.LineCount()
	}
	from, _, err := v.doc.Line(first)
	if err != nil {
		return surface.FullViewport(v.doc)
	}
	_, to, err := v.doc.Line(last)
	if err != nil {
		return surface.FullViewport(v.doc)
	}
	return surface.ViewportOf(v.doc, from, to)
}

// draw paints the visible lines with decorations applied.
func (v *view) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	theme := v.engine.Styles().Current()
	decos := v.engine.Decorations()

	// Lines consumed by a widget span render the widget once, at its
	// first line, and blank after.
	widgetAt := map[int]*block.Widget{}
	covered := map[int]bool{}
	for _, d := range decos.All() {
		if d.Kind != decoration.KindWidget {
			continue
		}
		w, ok := v.engine.Widget(d.WidgetID)
		if !ok {
			continue
		}
		first, last := w.Lines()
		widgetAt[first] = w
		for l := first; l <= last; l++ {
			covered[l] = true
		}
	}

	row := 0
	for line := v.scroll + 1; line <= v.doc.LineCount() && row < height; line++ {
		if w, ok := widgetAt[line]; ok {
			row = v.drawWidget(w, row, width, height, theme)
			continue
		}
		if covered[line] {
			continue
		}
		v.drawLine(line, row, width, theme, decos)
		row++
	}

	// Cursor.
	if _, _, err := v.doc.Line(v.cursorLine); err == nil && !covered[v.cursorLine] {
		text := v.doc.LineText(v.cursorLine)
		col := uniseg.StringWidth(text[:min(v.cursorCol, len(text))])
		v.screen.ShowCursor(col, v.cursorLine-1-v.scroll)
	} else {
		v.screen.HideCursor()
	}
}

// drawLine paints one document line, applying hide, replace, and style
// decorations.
func (v *view) drawLine(line, row, width int, theme style.Theme, decos decoration.Set) {
	start, end, err := v.doc.Line(line)
	if err != nil {
		return
	}
	text := v.doc.Text()[start:end]
	lineDecos := decos.In(start, end+1)

	col := 0
	i := 0
	for i < len(text) && col < width {
		offset := start + i
		st := tcell.StyleDefault
		skip := false
		var replacement string

		for _, d := range lineDecos {
			if offset < d.From || offset >= d.To {
				continue
			}
			switch d.Kind {
			case decoration.KindHide:
				skip = true
			case decoration.KindReplace:
				if offset == d.From {
					replacement = d.Replacement
				} else {
					skip = true
				}
				st = mergeTcell(st, d.Style, theme)
			case decoration.KindStyle:
				st = mergeTcell(st, d.Style, theme)
			}
		}

		switch {
		case skip:
			i++
		case replacement != "":
			for _, r := range replacement {
				v.screen.SetContent(col, row, r, nil, st)
				col += uniseg.StringWidth(string(r))
			}
			// Advance past the replaced source byte; the rest of the
			// span is skipped by the KindReplace branch above.
			i++
		default:
			r := []rune(text[i:])[0]
			v.screen.SetContent(col, row, r, nil, st)
			col += uniseg.StringWidth(string(r))
			i += len(string(r))
		}
	}
}

// drawWidget paints a widget's content box and returns the next row.
func (v *view) drawWidget(w *block.Widget, row, width, height int, theme style.Theme) int {
	var content string
	st := tcell.StyleDefault.Foreground(toTcellColor(theme.Blockquote.Foreground))

	switch w.State() {
	case block.StatePending, block.StateCreated:
		content = "… rendering " + w.Kind().String()
		st = st.Dim(true)
	case block.StateReady:
		content = w.Content()
	case block.StateFailed:
		content = "✗ " + w.ErrText()
		st = tcell.StyleDefault.
			Foreground(toTcellColor(theme.Error.Foreground)).
			Background(toTcellColor(theme.Error.Background))
	}

	for _, line := range strings.Split(content, "\n") {
		if row >= height {
			break
		}
		col := 0
		for _, r := range line {
			if col >= width {
				break
			}
			v.screen.SetContent(col, row, r, nil, st)
			col += uniseg.StringWidth(string(r))
		}
		row++
	}
	return row
}

// mergeTcell folds a decoration style kind into a tcell style.
func mergeTcell(st tcell.Style, kind decoration.StyleKind, theme style.Theme) tcell.Style {
	s := themeStyle(kind, theme)
	if !s.Foreground.IsDefault() {
		st = st.Foreground(toTcellColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		st = st.Background(toTcellColor(s.Background))
	}
	if s.Attributes.Has(style.AttrBold) {
		st = st.Bold(true)
	}
	if s.Attributes.Has(style.AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attributes.Has(style.AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attributes.Has(style.AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}
	if s.Attributes.Has(style.AttrDim) {
		st = st.Dim(true)
	}
	return st
}

// themeStyle resolves a decoration style kind against the active theme.
func themeStyle(kind decoration.StyleKind, theme style.Theme) style.Style {
	if level := decoration.HeadingLevel(kind); level > 0 {
		return theme.HeadingStyle(level)
	}
	switch kind {
	case decoration.StyleBold:
		return theme.Bold
	case decoration.StyleItalic:
		return theme.Italic
	case decoration.StyleStrikethrough:
		return theme.Strikethrough
	case decoration.StyleInlineCode:
		return theme.Code
	case decoration.StyleLink, decoration.StyleImageAlt:
		return theme.Link
	case decoration.StyleBlockquote:
		return theme.Blockquote
	case decoration.StyleHorizontalRule:
		return theme.HorizontalRule
	case decoration.StyleTaskDone:
		return theme.TaskDone
	case decoration.StyleBullet:
		return theme.Blockquote
	case decoration.StyleHashtag:
		return theme.Hashtag
	case decoration.StyleMention:
		return theme.Mention
	case decoration.StyleError:
		return theme.Error
	default:
		return style.DefaultStyle()
	}
}

// toTcellColor converts a style color to a tcell color.
func toTcellColor(c style.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
