// Package decoration models view-only rendering instructions attached to
// byte spans of a document: hide a marker run, style a span, or replace
// a block with a widget. Decorations never alter backing text.
package decoration

// Kind is the kind of instruction a decoration carries.
type Kind uint8

const (
	// KindHide elides the span from view. The span must bracket syntax
	// marker bytes only, never content.
	KindHide Kind = iota

	// KindStyle applies a semantic style to the span without altering it.
	KindStyle

	// KindReplace substitutes the span with a short replacement string
	// (checkbox glyphs, list bullets).
	KindReplace

	// KindWidget anchors a block widget at the span.
	KindWidget
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHide:
		return "hide"
	case KindStyle:
		return "style"
	case KindReplace:
		return "replace"
	case KindWidget:
		return "widget"
	default:
		return "unknown"
	}
}

// StyleKind is the closed set of semantic styles a decoration can apply.
// Adding a construct means extending this set and its handler, not
// open-ended type checks.
type StyleKind uint8

const (
	StyleNone StyleKind = iota
	StyleHeading1
	StyleHeading2
	StyleHeading3
	StyleHeading4
	StyleHeading5
	StyleHeading6
	StyleBold
	StyleItalic
	StyleStrikethrough
	StyleInlineCode
	StyleLink
	StyleImageAlt
	StyleBlockquote
	StyleHorizontalRule
	StyleTaskDone
	StyleBullet
	StyleHashtag
	StyleMention
	StyleError
)

// String returns the style kind name.
func (s StyleKind) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleHeading1, StyleHeading2, StyleHeading3, StyleHeading4, StyleHeading5, StyleHeading6:
		return "heading"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleStrikethrough:
		return "strikethrough"
	case StyleInlineCode:
		return "inline-code"
	case StyleLink:
		return "link"
	case StyleImageAlt:
		return "image-alt"
	case StyleBlockquote:
		return "blockquote"
	case StyleHorizontalRule:
		return "horizontal-rule"
	case StyleTaskDone:
		return "task-done"
	case StyleBullet:
		return "bullet"
	case StyleHashtag:
		return "hashtag"
	case StyleMention:
		return "mention"
	case StyleError:
		return "error"
	default:
		return "unknown"
	}
}

// HeadingStyle returns the StyleKind for a heading level in [1,6].
func HeadingStyle(level int) StyleKind {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return StyleHeading1 + StyleKind(level-1)
}

// HeadingLevel returns the level for a heading StyleKind, or 0 if the
// kind is not a heading.
func HeadingLevel(s StyleKind) int {
	if s < StyleHeading1 || s > StyleHeading6 {
		return 0
	}
	return int(s-StyleHeading1) + 1
}

// Decoration is a single view-only instruction over [From, To).
type Decoration struct {
	From int
	To   int
	Kind Kind

	// Style is set for KindStyle (and optionally KindReplace).
	Style StyleKind

	// Replacement is the display text for KindReplace.
	Replacement string

	// WidgetID identifies the widget instance for KindWidget.
	WidgetID string
}

// Hide returns a hide decoration over [from, to).
func Hide(from, to int) Decoration {
	return Decoration{From: from, To: to, Kind: KindHide}
}

// Styled returns a style decoration over [from, to).
func Styled(from, to int, style StyleKind) Decoration {
	return Decoration{From: from, To: to, Kind: KindStyle, Style: style}
}

// Replace returns a replacement decoration over [from, to).
func Replace(from, to int, text string, style StyleKind) Decoration {
	return Decoration{From: from, To: to, Kind: KindReplace, Style: style, Replacement: text}
}

// WidgetAnchor returns a widget decoration anchored over [from, to).
func WidgetAnchor(from, to int, widgetID string) Decoration {
	return Decoration{From: from, To: to, Kind: KindWidget, WidgetID: widgetID}
}
