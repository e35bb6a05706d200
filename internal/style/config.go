package style

// ThemeName selects the light or dark variant of the configuration.
type ThemeName string

const (
	// ThemeLight is the light variant.
	ThemeLight ThemeName = "light"
	// ThemeDark is the dark variant.
	ThemeDark ThemeName = "dark"
)

// Valid returns true for a recognized theme name.
func (t ThemeName) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Theme is the resolved style set for one theme variant. Every decoration
// build reads one of these; it is a value type so reads are snapshot-safe.
type Theme struct {
	Name ThemeName

	// Heading holds one style per heading level (index 0 = level 1).
	Heading [6]Style

	Bold          Style
	Italic        Style
	Strikethrough Style

	// Code styles inline code spans.
	Code Style

	Link       Style
	Blockquote Style

	// HorizontalRule styles a thematic break line.
	HorizontalRule Style

	// Hashtag and Mention style the ad-hoc lexical tokens.
	Hashtag Style
	Mention Style

	// TaskDone styles completed task text.
	TaskDone Style

	// Error styles inline error blocks emitted for failed widgets.
	Error Style

	// Bullet is the glyph substituted for unordered list markers.
	Bullet string
}

// Config carries both theme variants plus theme-independent knobs.
type Config struct {
	Light Theme
	Dark  Theme
}

// Theme returns the variant for the given name, defaulting to light.
func (c Config) Theme(name ThemeName) Theme {
	if name == ThemeDark {
		return c.Dark
	}
	return c.Light
}

// DefaultConfig returns the built-in configuration. The dark variant is
// derived from the light palette by lightening foregrounds in HCL space,
// so a single accent edit stays consistent across both themes.
func DefaultConfig() Config {
	accent := RGB(0x3B, 0x82, 0xF6)   // blue-500
	heading := RGB(0x1F, 0x29, 0x37)  // gray-800
	muted := RGB(0x6B, 0x72, 0x80)    // gray-500
	codeBg := RGB(0xF3, 0xF4, 0xF6)   // gray-100
	errColor := RGB(0xDC, 0x26, 0x26) // red-600

	light := Theme{
		Name:           ThemeLight,
		Bold:           DefaultStyle().Bold(),
		Italic:         DefaultStyle().Italic(),
		Strikethrough:  NewStyle(muted).Strikethrough(),
		Code:           NewStyle(RGB(0xB9, 0x1C, 0x1C)).WithBackground(codeBg),
		Link:           NewStyle(accent).Underline(),
		Blockquote:     NewStyle(muted).Italic(),
		HorizontalRule: NewStyle(muted).Dim(),
		Hashtag:        NewStyle(accent.Darken(0.1)),
		Mention:        NewStyle(RGB(0x7C, 0x3A, 0xED)),
		TaskDone:       NewStyle(muted).Strikethrough(),
		Error:          NewStyle(errColor).WithBackground(RGB(0xFE, 0xE2, 0xE2)),
		Bullet:         "•",
	}
	headingScales := [6]float64{1.6, 1.4, 1.25, 1.1, 1.0, 1.0}
	for i := range light.Heading {
		light.Heading[i] = NewStyle(heading).Bold().WithScale(headingScales[i])
	}

	return Config{
		Light: light,
		Dark:  deriveDark(light),
	}
}

// deriveDark builds the dark variant from a light theme: foregrounds are
// lightened, backgrounds darkened, glyphs carried over.
func deriveDark(light Theme) Theme {
	dark := light
	dark.Name = ThemeDark

	lift := func(s Style) Style {
		if !s.Foreground.IsDefault() {
			s.Foreground = s.Foreground.Lighten(0.35)
		}
		if !s.Background.IsDefault() {
			s.Background = s.Background.Darken(0.75)
		}
		return s
	}

	for i := range dark.Heading {
		dark.Heading[i] = lift(dark.Heading[i])
	}
	dark.Bold = lift(dark.Bold)
	dark.Italic = lift(dark.Italic)
	dark.Strikethrough = lift(dark.Strikethrough)
	dark.Code = lift(dark.Code)
	dark.Link = lift(dark.Link)
	dark.Blockquote = lift(dark.Blockquote)
	dark.HorizontalRule = lift(dark.HorizontalRule)
	dark.Hashtag = lift(dark.Hashtag)
	dark.Mention = lift(dark.Mention)
	dark.TaskDone = lift(dark.TaskDone)
	dark.Error = lift(dark.Error)

	return dark
}

// HeadingStyle returns the style for a heading level in [1,6]. Levels
// outside the range clamp to the nearest valid level.
func (t Theme) HeadingStyle(level int) Style {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return t.Heading[level-1]
}
