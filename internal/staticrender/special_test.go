package staticrender

import (
	"strings"
	"testing"
)

func TestExtractMermaidBlock(t *testing.T) {
	markdown := "# Title\n\n```mermaid\ngraph TD\nA-->B\n```\n\ntail"
	out, blocks := ExtractSpecialBlocks(markdown)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.BlockType != "mermaid" {
		t.Errorf("BlockType = %q, want mermaid", b.BlockType)
	}
	if b.Content != "graph TD\nA-->B" {
		t.Errorf("Content = %q", b.Content)
	}
	if !strings.HasPrefix(b.PlaceholderID, "special-block-") {
		t.Errorf("PlaceholderID = %q", b.PlaceholderID)
	}

	if strings.Contains(out, "graph TD") {
		t.Error("fence body must not survive in the rewritten markdown")
	}
	if !strings.Contains(out, `id="`+b.PlaceholderID+`"`) {
		t.Errorf("placeholder div missing from output:\n%s", out)
	}
	if !strings.Contains(out, `data-block-type="mermaid"`) {
		t.Error("placeholder missing data-block-type attribute")
	}
	if !strings.Contains(out, "# Title") || !strings.Contains(out, "tail") {
		t.Error("surrounding markdown must pass through")
	}
}

func TestExtractChartBlockCaseInsensitive(t *testing.T) {
	out, blocks := ExtractSpecialBlocks("```Chart\n{\"type\":\"bar\"}\n```")

	if len(blocks) != 1 || blocks[0].BlockType != "chart" {
		t.Fatalf("blocks = %+v, want one chart", blocks)
	}
	if !strings.Contains(out, `class="special-block chart"`) {
		t.Errorf("output = %q", out)
	}
}

func TestExtractTildeFence(t *testing.T) {
	_, blocks := ExtractSpecialBlocks("~~~mermaid\nflowchart LR\n~~~")
	if len(blocks) != 1 || blocks[0].Content != "flowchart LR" {
		t.Fatalf("blocks = %+v", blocks)
	}
}

func TestRegularCodeFencePreserved(t *testing.T) {
	markdown := "```go\nfunc main() {}\n```"
	out, blocks := ExtractSpecialBlocks(markdown)

	if len(blocks) != 0 {
		t.Fatalf("got %d blocks, want 0", len(blocks))
	}
	if !strings.Contains(out, "```go") || !strings.Contains(out, "func main() {}") {
		t.Errorf("code fence mangled:\n%s", out)
	}
}

func TestUnclosedFencePassesThrough(t *testing.T) {
	markdown := "```mermaid\ngraph TD"
	out, blocks := ExtractSpecialBlocks(markdown)

	if len(blocks) != 0 {
		t.Fatalf("got %d blocks, want 0 for an unclosed fence", len(blocks))
	}
	if out != markdown {
		t.Errorf("out = %q, want the input verbatim", out)
	}
}

func TestExtractMultipleBlocksHaveUniqueIDs(t *testing.T) {
	markdown := "```mermaid\na\n```\n\nmiddle\n\n```chart\n{}\n```\n\n```mermaid\na\n```"
	out, blocks := ExtractSpecialBlocks(markdown)

	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	seen := map[string]bool{}
	for _, b := range blocks {
		if seen[b.PlaceholderID] {
			t.Errorf("duplicate placeholder id %q", b.PlaceholderID)
		}
		seen[b.PlaceholderID] = true
		if !strings.Contains(out, b.PlaceholderID) {
			t.Errorf("placeholder %q missing from output", b.PlaceholderID)
		}
	}
	if blocks[1].BlockType != "chart" {
		t.Errorf("blocks[1].BlockType = %q, want chart", blocks[1].BlockType)
	}
}

func TestExtractEmptySpecialBlock(t *testing.T) {
	_, blocks := ExtractSpecialBlocks("```mermaid\n```")
	if len(blocks) != 1 || blocks[0].Content != "" {
		t.Fatalf("blocks = %+v, want one empty block", blocks)
	}
}
