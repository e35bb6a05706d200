package staticrender

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SpecialBlock is a diagram or chart fence lifted out of the markdown
// before rendering. The caller locates the placeholder in the emitted
// HTML and populates it through the same rendering adapters the live
// engine's widgets use.
type SpecialBlock struct {
	// BlockType is "mermaid" or "chart".
	BlockType string `json:"block_type"`
	// Content is the text inside the fence.
	Content string `json:"content"`
	// PlaceholderID is the id of the placeholder div in the HTML.
	PlaceholderID string `json:"placeholder_id"`
}

// specialTags are the fence info strings that produce special blocks.
var specialTags = map[string]bool{
	"mermaid": true,
	"chart":   true,
}

// ExtractSpecialBlocks scans the markdown line by line for ``` and ~~~
// fences tagged mermaid or chart (case-insensitive), replaces each with
// a placeholder div, and returns the rewritten markdown plus the lifted
// blocks. Regular code fences pass through untouched; an unclosed fence
// is re-emitted verbatim.
func ExtractSpecialBlocks(markdown string) (string, []SpecialBlock) {
	var (
		blocks    []SpecialBlock
		result    strings.Builder
		inFence   bool
		fence     string
		fenceLang string
		body      strings.Builder
	)

	emitRegular := func() {
		result.WriteString(fence + fenceLang + "\n")
		result.WriteString(body.String())
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimLeft(line, " \t")

		isBacktick := strings.HasPrefix(trimmed, "```")
		isTilde := strings.HasPrefix(trimmed, "~~~")

		switch {
		case inFence && strings.HasPrefix(trimmed, fence):
			lang := strings.ToLower(fenceLang)
			if specialTags[lang] {
				id := "special-block-" + uuid.NewString()
				blocks = append(blocks, SpecialBlock{
					BlockType:     lang,
					Content:       strings.TrimSpace(body.String()),
					PlaceholderID: id,
				})
				fmt.Fprintf(&result,
					"<div class=\"special-block %s\" id=\"%s\" data-block-type=\"%s\"></div>\n",
					lang, id, lang)
			} else {
				emitRegular()
				result.WriteString(fence + "\n")
			}
			inFence = false
			fence, fenceLang = "", ""
			body.Reset()

		case !inFence && (isBacktick || isTilde):
			inFence = true
			if isBacktick {
				fence = "```"
			} else {
				fence = "~~~"
			}
			fenceLang = strings.TrimSpace(trimmed[3:])

		case inFence:
			body.WriteString(line)
			body.WriteByte('\n')

		default:
			result.WriteString(line)
			result.WriteByte('\n')
		}
	}

	if inFence {
		emitRegular()
	}

	out := result.String()
	// The line loop appends a newline per line; drop the extra one a
	// trailing split produces so output length tracks input.
	out = strings.TrimSuffix(out, "\n")
	return out, blocks
}
