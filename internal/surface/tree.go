package surface

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Tree is the parsed syntax tree handed to the engine alongside a
// document snapshot. The engine walks it; it never re-parses.
type Tree struct {
	// Root is the document node.
	Root ast.Node

	// Source is the byte slice the tree's segments index into. It must
	// be the exact bytes of the document snapshot the tree was built from.
	Source []byte

	// DocVersion is the document version the tree was parsed from.
	DocVersion uint64
}

// treeParser is the shared markdown parser used to build trees. GFM
// covers strikethrough, tables, task lists, and autolinks.
var treeParser = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// ParseTree parses a document snapshot into a syntax tree. In production
// the editing surface owns parsing and hands the engine a Tree; tests
// and the demo viewer use this helper as that surface.
func ParseTree(doc Document) *Tree {
	source := []byte(doc.Text())
	root := treeParser.Parser().Parse(text.NewReader(source))
	return &Tree{
		Root:       root,
		Source:     source,
		DocVersion: doc.Version(),
	}
}

// SegmentText returns the source bytes for a [from, to) span, clamped to
// the source bounds.
func (t *Tree) SegmentText(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(t.Source) {
		to = len(t.Source)
	}
	if from >= to {
		return ""
	}
	return string(t.Source[from:to])
}
