package style

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#3B82F6", RGB(0x3B, 0x82, 0xF6), false},
		{"3B82F6", RGB(0x3B, 0x82, 0xF6), false},
		{"#abc", RGB(0xAA, 0xBB, 0xCC), false},
		{"#fff", RGB(0xFF, 0xFF, 0xFF), false},
		{"", Color{}, true},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := RGB(0x12, 0xAB, 0xEF)
	parsed, err := ParseHex(c.ToHex())
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if parsed != c {
		t.Errorf("round trip = %v, want %v", parsed, c)
	}
}

func TestDefaultColor(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault.IsDefault() should be true")
	}
	if ColorDefault.ToHex() != "" {
		t.Error("default color has no hex form")
	}
	if RGB(1, 2, 3).IsDefault() {
		t.Error("RGB colors are not default")
	}
}

func TestLightenDarkenPreserveDefault(t *testing.T) {
	if got := ColorDefault.Lighten(0.5); !got.IsDefault() {
		t.Errorf("Lighten on default = %v", got)
	}
	if got := ColorDefault.Darken(0.5); !got.IsDefault() {
		t.Errorf("Darken on default = %v", got)
	}
}

func TestLightenMovesTowardWhite(t *testing.T) {
	c := RGB(0x20, 0x40, 0x60)
	lighter := c.Lighten(0.3)
	if int(lighter.R)+int(lighter.G)+int(lighter.B) <= int(c.R)+int(c.G)+int(c.B) {
		t.Errorf("Lighten(%v) = %v, not lighter", c, lighter)
	}

	darker := c.Darken(0.2)
	if int(darker.R)+int(darker.G)+int(darker.B) >= int(c.R)+int(c.G)+int(c.B) {
		t.Errorf("Darken(%v) = %v, not darker", c, darker)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(255, 255, 255)
	if got := a.Blend(b, 0); got != a {
		t.Errorf("Blend(0) = %v, want %v", got, a)
	}
	if got := a.Blend(b, 1); got != b {
		t.Errorf("Blend(1) = %v, want %v", got, b)
	}
	mid := a.Blend(b, 0.5)
	if mid.R < 100 || mid.R > 155 {
		t.Errorf("Blend(0.5) = %v, want a mid gray", mid)
	}
}

func TestAttributeOps(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrItalic)
	if !a.Has(AttrBold) || !a.Has(AttrItalic) {
		t.Error("With should add attributes")
	}
	if a.Has(AttrUnderline) {
		t.Error("unset attribute reported present")
	}
	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("Without should remove the attribute")
	}
	if !a.Has(AttrItalic) {
		t.Error("Without removed an unrelated attribute")
	}
}

func TestMerge(t *testing.T) {
	base := NewStyle(RGB(1, 1, 1)).Bold().WithScale(1.5)
	over := NewStyle(RGB(9, 9, 9)).Italic()

	got := Merge(base, over)
	if got.Foreground != RGB(9, 9, 9) {
		t.Errorf("Foreground = %v, want override", got.Foreground)
	}
	if !got.Attributes.Has(AttrBold) || !got.Attributes.Has(AttrItalic) {
		t.Error("attributes should accumulate")
	}
	if got.Scale != 1.5 {
		t.Errorf("Scale = %v, want base scale kept", got.Scale)
	}

	// A default-colored override leaves the base color alone.
	got = Merge(base, DefaultStyle())
	if got.Foreground != base.Foreground {
		t.Error("default override must not clear the base foreground")
	}
}

func TestDefaultConfigThemes(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Light.Name != ThemeLight || cfg.Dark.Name != ThemeDark {
		t.Errorf("theme names = %v, %v", cfg.Light.Name, cfg.Dark.Name)
	}
	if cfg.Light.Bullet == "" {
		t.Error("light theme needs a bullet glyph")
	}
	if cfg.Dark.Bullet != cfg.Light.Bullet {
		t.Error("bullet glyph carries over to the dark variant")
	}
	if !cfg.Light.Heading[0].Attributes.Has(AttrBold) {
		t.Error("h1 should be bold")
	}
	if cfg.Light.Heading[0].Scale <= cfg.Light.Heading[3].Scale {
		t.Error("h1 scale should exceed h4 scale")
	}
	// The derived dark foregrounds differ from the light ones.
	if cfg.Dark.Link.Foreground == cfg.Light.Link.Foreground {
		t.Error("dark link color should be derived, not copied")
	}
}

func TestThemeForName(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme(ThemeDark).Name != ThemeDark {
		t.Error("Theme(dark) returned the wrong variant")
	}
	if cfg.Theme(ThemeName("nope")).Name != ThemeLight {
		t.Error("unknown names default to light")
	}
}

func TestHeadingStyleClamps(t *testing.T) {
	theme := DefaultConfig().Light
	if theme.HeadingStyle(0) != theme.Heading[0] {
		t.Error("level 0 should clamp to h1")
	}
	if theme.HeadingStyle(99) != theme.Heading[5] {
		t.Error("level 99 should clamp to h6")
	}
}

func TestThemeNameValid(t *testing.T) {
	if !ThemeLight.Valid() || !ThemeDark.Valid() {
		t.Error("built-in names must validate")
	}
	if ThemeName("sepia").Valid() {
		t.Error("unknown name validated")
	}
}
