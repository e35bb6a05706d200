package block

import (
	"regexp"
	"strings"
)

// Detection runs over the whole document text, not the syntax tree, so
// blocks outside the viewport are found and scrolling reveals already
// resolved widgets. The scan is line-based; cost is O(document size).

var (
	fenceRe     = regexp.MustCompile("^\\s*(```+|~~~+)\\s*([A-Za-z0-9_-]*)\\s*$")
	imageLineRe = regexp.MustCompile(`^\s*!\[([^\]]*)\]\(\s*(\S+?)(?:\s+"[^"]*")?\s*\)\s*$`)
	separatorRe = regexp.MustCompile(`^\s*\|?\s*:?-{2,}:?\s*(\|\s*:?-{2,}:?\s*)*\|?\s*$`)
)

// Scan detects all block constructs in the text. Lines are 1-based.
func Scan(text string) []Block {
	lines := strings.Split(text, "\n")
	var blocks []Block

	i := 0

	// A front-matter fence at the head of the document is metadata, not
	// a block construct; skip past it.
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "---" {
		for j := 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "---" {
				i = j + 1
				break
			}
		}
	}

	for i < len(lines) {
		line := lines[i]

		if m := fenceRe.FindStringSubmatch(line); m != nil && m[2] != "" {
			consumed, blk := scanFence(lines, i, m[1][:3], m[2])
			i += consumed
			if blk != nil {
				blocks = append(blocks, *blk)
			}
			continue
		}
		if m := fenceRe.FindStringSubmatch(line); m != nil {
			// Untagged fence: skip its body so nothing inside is detected.
			i += skipFence(lines, i, m[1][:3])
			continue
		}

		if m := imageLineRe.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, Block{
				Kind:      KindImage,
				StartLine: i + 1,
				EndLine:   i + 1,
				Alt:       m[1],
				URL:       m[2],
			})
			i++
			continue
		}

		if consumed, blk := scanTable(lines, i); blk != nil {
			blocks = append(blocks, *blk)
			i += consumed
			continue
		}

		i++
	}

	return blocks
}

// scanFence consumes a tagged fence starting at index start. It returns
// the number of lines consumed and, for diagram/chart tags, the block.
// An unclosed fence consumes to end of text and yields no block.
func scanFence(lines []string, start int, fence, tag string) (int, *Block) {
	var body []string
	for j := start + 1; j < len(lines); j++ {
		if strings.HasPrefix(strings.TrimSpace(lines[j]), fence) {
			consumed := j - start + 1
			kind, ok := fenceKind(tag)
			if !ok {
				return consumed, nil
			}
			return consumed, &Block{
				Kind:      kind,
				StartLine: start + 1,
				EndLine:   j + 1,
				Payload:   strings.TrimSpace(strings.Join(body, "\n")),
			}
		}
		body = append(body, lines[j])
	}
	return len(lines) - start, nil
}

// skipFence consumes an untagged fence (including unclosed ones).
func skipFence(lines []string, start int, fence string) int {
	for j := start + 1; j < len(lines); j++ {
		if strings.HasPrefix(strings.TrimSpace(lines[j]), fence) {
			return j - start + 1
		}
	}
	return len(lines) - start
}

// fenceKind maps a fence info string to a block kind. Tags are
// case-insensitive; unknown tags are regular code fences.
func fenceKind(tag string) (Kind, bool) {
	switch strings.ToLower(tag) {
	case "mermaid":
		return KindDiagram, true
	case "chart":
		return KindChart, true
	default:
		return 0, false
	}
}

// scanTable detects a pipe table starting at index start: a header row
// containing a pipe, a separator row with a matching cell count, then
// zero or more body rows.
func scanTable(lines []string, start int) (int, *Block) {
	if !strings.Contains(lines[start], "|") {
		return 0, nil
	}
	if start+1 >= len(lines) {
		return 0, nil
	}
	sep := lines[start+1]
	if !strings.Contains(sep, "|") || !separatorRe.MatchString(sep) {
		return 0, nil
	}
	// The separator must declare exactly as many cells as the header;
	// otherwise a thematic break under prose would read as a table.
	if len(splitRow(sep)) != len(splitRow(lines[start])) {
		return 0, nil
	}

	end := start + 1
	for j := start + 2; j < len(lines); j++ {
		if !strings.Contains(lines[j], "|") || strings.TrimSpace(lines[j]) == "" {
			break
		}
		end = j
	}

	return end - start + 1, &Block{
		Kind:      KindTable,
		StartLine: start + 1,
		EndLine:   end + 1,
		Payload:   strings.Join(lines[start:end+1], "\n"),
	}
}
