// Package style holds the visual configuration consumed by every
// decoration build: colors, text attributes, per-theme heading and
// inline styles, and the store that owns the active configuration.
package style

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim                     // Faint/dim text
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrStrikethrough           // Strikethrough text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Color represents an RGB color value.
type Color struct {
	R, G, B uint8
	// Default indicates the surface's default color.
	Default bool
}

// ColorDefault represents the surface's default color.
var ColorDefault = Color{Default: true}

// RGB creates a color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex creates a color from a hex string such as "#rrggbb" or "#rgb".
func ParseHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint64
	var err error

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(hex[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(hex[4:6], 16, 8)
		}
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// IsDefault returns true if this is the default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// ToHex returns the hex representation of the color.
func (c Color) ToHex() string {
	if c.Default {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return c.ToHex()
}

// colorfulOf converts to a go-colorful color for color-space math.
func (c Color) colorfulOf() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Lighten returns the color lightened by amount in [0,1], computed in
// HCL space so hue is preserved.
func (c Color) Lighten(amount float64) Color {
	if c.Default {
		return c
	}
	h, ch, l := c.colorfulOf().Hcl()
	return fromColorful(colorful.Hcl(h, ch, min(1, l+amount)))
}

// Darken returns the color darkened by amount in [0,1].
func (c Color) Darken(amount float64) Color {
	if c.Default {
		return c
	}
	h, ch, l := c.colorfulOf().Hcl()
	return fromColorful(colorful.Hcl(h, ch, max(0, l-amount)))
}

// Blend blends two colors in RGB space; amount 0 yields c, 1 yields other.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return fromColorful(c.colorfulOf().BlendRgb(other.colorfulOf(), amount))
}

// Style represents the visual style applied to a span of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
	// Scale is a relative font scale; 0 means inherit (1.0).
	Scale float64
}

// DefaultStyle returns the surface's default style.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{
		Foreground: fg,
		Background: ColorDefault,
	}
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithScale returns a new style with the given font scale.
func (s Style) WithScale(scale float64) Style {
	s.Scale = scale
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns a new style with the dim attribute added.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Italic returns a new style with the italic attribute added.
func (s Style) Italic() Style {
	s.Attributes |= AttrItalic
	return s
}

// Underline returns a new style with the underline attribute added.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Strikethrough returns a new style with the strikethrough attribute added.
func (s Style) Strikethrough() Style {
	s.Attributes |= AttrStrikethrough
	return s
}

// Merge layers an overriding style onto a base style. Set colors win;
// attributes accumulate.
func Merge(base, over Style) Style {
	result := base
	if !over.Foreground.IsDefault() {
		result.Foreground = over.Foreground
	}
	if !over.Background.IsDefault() {
		result.Background = over.Background
	}
	if over.Scale != 0 {
		result.Scale = over.Scale
	}
	result.Attributes |= over.Attributes
	return result
}
