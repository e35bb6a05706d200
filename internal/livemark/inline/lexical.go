package inline

import (
	"regexp"

	"github.com/dshills/inkdown/internal/decoration"
	"github.com/dshills/inkdown/internal/livemark/visibility"
	"github.com/dshills/inkdown/internal/style"
	"github.com/dshills/inkdown/internal/surface"
)

// Checkbox glyphs substituted for raw task markers.
const (
	glyphChecked   = "☑"
	glyphUnchecked = "☐"
)

var (
	bulletRe     = regexp.MustCompile(`^(\s*)([-*+])(\s+)(\[([ xX])\]\s)?`)
	ruleRe       = regexp.MustCompile(`^\s{0,3}((\*\s*){3,}|(-\s*){3,}|(_\s*){3,})$`)
	blockquoteRe = regexp.MustCompile(`^\s{0,3}>`)
	hashtagRe    = regexp.MustCompile(`(^|[^\w#])(#[\p{L}\d_]+)`)
	mentionRe    = regexp.MustCompile(`(^|[^\w@])(@[\p{L}\d_]+)`)
)

// scanLines runs the line-lexical passes over the viewport: list and
// task markers, blockquote and thematic-break styling, and the two
// ad-hoc token scans (hashtags, mentions). Lines inside code blocks
// never get marker treatment. The token scans never hide text and run
// regardless of line activity.
func scanLines(
	doc surface.Document,
	vp surface.Viewport,
	cls visibility.Classifier,
	theme style.Theme,
	code map[int]bool,
	out *[]decoration.Decoration,
) {
	for line := 1; line <= doc.LineCount(); line++ {
		start, end, err := doc.Line(line)
		if err != nil {
			return
		}
		if !vp.Covers(start, end) {
			continue
		}
		text := doc.Text()[start:end]
		active := cls.Active(line)

		if !active && !code[line] {
			scanMarkers(text, start, theme, out)
		}
		scanTokens(text, start, out)
	}
}

// scanMarkers emits replacement decorations for bullet and task markers
// and styles for blockquotes and thematic breaks on one inactive line.
func scanMarkers(text string, lineStart int, theme style.Theme, out *[]decoration.Decoration) {
	if m := bulletRe.FindStringSubmatchIndex(text); m != nil {
		bulletFrom := lineStart + m[4] // group 2: the bullet character
		bulletTo := lineStart + m[5]
		*out = append(*out, decoration.Replace(bulletFrom, bulletTo, theme.Bullet, decoration.StyleBullet))

		if m[8] >= 0 { // group 4: the task marker incl. trailing space
			boxFrom := lineStart + m[8]
			boxTo := lineStart + m[9] - 1 // keep the trailing space visible
			checked := text[m[10]] == 'x' || text[m[10]] == 'X'
			glyph := glyphUnchecked
			styleKind := decoration.StyleNone
			if checked {
				glyph = glyphChecked
				styleKind = decoration.StyleTaskDone
			}
			*out = append(*out, decoration.Replace(boxFrom, boxTo, glyph, styleKind))
		}
		return
	}

	if blockquoteRe.MatchString(text) {
		*out = append(*out, decoration.Styled(lineStart, lineStart+len(text), decoration.StyleBlockquote))
		return
	}
	if ruleRe.MatchString(text) && len(text) > 0 {
		*out = append(*out, decoration.Styled(lineStart, lineStart+len(text), decoration.StyleHorizontalRule))
	}
}

// scanTokens emits style decorations for hashtag-like and mention-like
// tokens. These are styling only; they never hide or replace text.
func scanTokens(text string, lineStart int, out *[]decoration.Decoration) {
	for _, m := range hashtagRe.FindAllStringSubmatchIndex(text, -1) {
		*out = append(*out, decoration.Styled(lineStart+m[4], lineStart+m[5], decoration.StyleHashtag))
	}
	for _, m := range mentionRe.FindAllStringSubmatchIndex(text, -1) {
		*out = append(*out, decoration.Styled(lineStart+m[4], lineStart+m[5], decoration.StyleMention))
	}
}
