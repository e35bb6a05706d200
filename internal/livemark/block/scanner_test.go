package block

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanMermaidFence(t *testing.T) {
	text := "# Title\n\n```mermaid\ngraph TD\nA-->B\n```\n\ntail"
	blocks := Scan(text)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Kind != KindDiagram {
		t.Errorf("Kind = %v, want KindDiagram", b.Kind)
	}
	if b.StartLine != 3 || b.EndLine != 6 {
		t.Errorf("lines = [%d,%d], want [3,6]", b.StartLine, b.EndLine)
	}
	if b.Payload != "graph TD\nA-->B" {
		t.Errorf("Payload = %q", b.Payload)
	}
}

func TestScanChartFenceCaseInsensitive(t *testing.T) {
	text := "```Chart\n{\"type\":\"bar\"}\n```"
	blocks := Scan(text)

	if len(blocks) != 1 || blocks[0].Kind != KindChart {
		t.Fatalf("blocks = %+v, want one chart", blocks)
	}
}

func TestScanTildeFence(t *testing.T) {
	text := "~~~mermaid\nflowchart LR\n~~~"
	blocks := Scan(text)

	if len(blocks) != 1 || blocks[0].Kind != KindDiagram {
		t.Fatalf("blocks = %+v, want one diagram", blocks)
	}
}

func TestScanIgnoresPlainCodeFence(t *testing.T) {
	text := "```go\nfunc main() {}\n```"
	if blocks := Scan(text); len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(blocks))
	}
}

func TestScanUnclosedFenceYieldsNoBlock(t *testing.T) {
	text := "```mermaid\ngraph TD\nA-->B"
	if blocks := Scan(text); len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0 for unclosed fence", len(blocks))
	}
}

func TestScanFenceBodyIsOpaque(t *testing.T) {
	// An image line and a table inside an untagged fence are code, not
	// block constructs.
	text := "```\n![alt](pic.png)\n| a | b |\n|---|---|\n```"
	if blocks := Scan(text); len(blocks) != 0 {
		t.Errorf("got %+v, want no blocks inside a code fence", blocks)
	}
}

func TestScanStandaloneImage(t *testing.T) {
	text := "before\n![diagram](assets/arch.png)\nafter"
	blocks := Scan(text)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Kind != KindImage || b.StartLine != 2 || b.EndLine != 2 {
		t.Errorf("block = %+v", b)
	}
	if b.Alt != "diagram" || b.URL != "assets/arch.png" {
		t.Errorf("Alt = %q, URL = %q", b.Alt, b.URL)
	}
}

func TestScanImageWithTitle(t *testing.T) {
	blocks := Scan(`![x](img.png "a title")`)
	if len(blocks) != 1 || blocks[0].URL != "img.png" {
		t.Fatalf("blocks = %+v, want one image with URL img.png", blocks)
	}
}

func TestScanInlineImageIsNotStandalone(t *testing.T) {
	text := "see ![icon](i.png) inline"
	if blocks := Scan(text); len(blocks) != 0 {
		t.Errorf("got %+v, want none for an inline image", blocks)
	}
}

func TestScanPipeTable(t *testing.T) {
	text := "intro\n| Name | Age |\n|------|-----|\n| Ada | 36 |\n| Alan | 41 |\n\nend"
	blocks := Scan(text)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Kind != KindTable || b.StartLine != 2 || b.EndLine != 5 {
		t.Errorf("block = %+v, want table lines [2,5]", b)
	}
}

func TestScanTableRequiresSeparator(t *testing.T) {
	text := "| a | b |\n| c | d |"
	if blocks := Scan(text); len(blocks) != 0 {
		t.Errorf("got %+v, want none without a separator row", blocks)
	}
}

func TestScanThematicBreakIsNotSeparator(t *testing.T) {
	// A bare --- under prose containing a pipe is a thematic break, not
	// a table separator.
	text := "apples | oranges\n---\nmore prose"
	if blocks := Scan(text); len(blocks) != 0 {
		t.Errorf("got %+v, want none for prose over a thematic break", blocks)
	}
}

func TestScanSeparatorCellCountMustMatchHeader(t *testing.T) {
	text := "| a | b |\n|---|\n| 1 | 2 |"
	if blocks := Scan(text); len(blocks) != 0 {
		t.Errorf("got %+v, want none when separator cells mismatch header", blocks)
	}
}

func TestScanTableWithoutBoundaryPipes(t *testing.T) {
	text := "a | b\n--- | ---\n1 | 2"
	blocks := Scan(text)

	if len(blocks) != 1 || blocks[0].Kind != KindTable {
		t.Fatalf("blocks = %+v, want one table", blocks)
	}
	if blocks[0].StartLine != 1 || blocks[0].EndLine != 3 {
		t.Errorf("lines = [%d,%d], want [1,3]", blocks[0].StartLine, blocks[0].EndLine)
	}
}

func TestScanSkipsFrontMatter(t *testing.T) {
	text := "---\ntitle: doc\n---\n\n![alt](pic.png)"
	blocks := Scan(text)

	if len(blocks) != 1 || blocks[0].Kind != KindImage || blocks[0].StartLine != 5 {
		t.Fatalf("blocks = %+v, want one image at line 5", blocks)
	}
}

func TestScanMultipleBlocks(t *testing.T) {
	text := "![a](a.png)\n\n```chart\n{}\n```\n\n| h |\n|---|\n| r |"
	blocks := Scan(text)

	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	wantKinds := []Kind{KindImage, KindChart, KindTable}
	for i, k := range wantKinds {
		if blocks[i].Kind != k {
			t.Errorf("blocks[%d].Kind = %v, want %v", i, blocks[i].Kind, k)
		}
	}
}

func TestScanMixedDocument(t *testing.T) {
	text := "# Doc\n\n![a](a.png)\n\n```mermaid\ngraph TD\n```\n\n| h1 | h2 |\n|----|----|\n| v1 | v2 |"
	got := Scan(text)

	want := []Block{
		{Kind: KindImage, StartLine: 3, EndLine: 3, Alt: "a", URL: "a.png"},
		{Kind: KindDiagram, StartLine: 5, EndLine: 7, Payload: "graph TD"},
		{Kind: KindTable, StartLine: 9, EndLine: 11, Payload: "| h1 | h2 |\n|----|----|\n| v1 | v2 |"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadHash(t *testing.T) {
	a := Block{Kind: KindDiagram, Payload: "graph TD"}
	b := Block{Kind: KindDiagram, Payload: "graph TD"}
	c := Block{Kind: KindDiagram, Payload: "graph LR"}

	if a.PayloadHash() != b.PayloadHash() {
		t.Error("identical payloads must hash equal")
	}
	if a.PayloadHash() == c.PayloadHash() {
		t.Error("different payloads should hash differently")
	}

	// Image hashing separates URL and Alt so ("ab","c") != ("a","bc").
	i1 := Block{Kind: KindImage, URL: "ab", Alt: "c"}
	i2 := Block{Kind: KindImage, URL: "a", Alt: "bc"}
	if i1.PayloadHash() == i2.PayloadHash() {
		t.Error("image hash must separate URL from Alt")
	}
}
