package style

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the TOML schema for user style overrides. Every field is
// optional; unset fields keep their built-in default. Colors are hex
// strings ("#rrggbb" or "#rgb").
type fileConfig struct {
	Theme  string  `toml:"theme"`
	Bullet string  `toml:"bullet"`
	Accent string  `toml:"accent"`
	Light  variant `toml:"light"`
	Dark   variant `toml:"dark"`
}

type variant struct {
	HeadingColor    string    `toml:"heading_color"`
	HeadingScales   []float64 `toml:"heading_scales"`
	LinkColor       string    `toml:"link_color"`
	CodeColor       string    `toml:"code_color"`
	CodeBackground  string    `toml:"code_background"`
	BlockquoteColor string    `toml:"blockquote_color"`
	HashtagColor    string    `toml:"hashtag_color"`
	MentionColor    string    `toml:"mention_color"`
	ErrorColor      string    `toml:"error_color"`
}

// Load reads a TOML style file and applies it over the default
// configuration. A missing file is not an error; the defaults are
// returned unchanged.
func Load(path string) (Config, ThemeName, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ThemeLight, nil
		}
		return cfg, ThemeLight, fmt.Errorf("reading style file %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, ThemeLight, fmt.Errorf("parsing style file %s: %w", path, err)
	}

	if err := applyFile(&cfg, fc); err != nil {
		return cfg, ThemeLight, fmt.Errorf("style file %s: %w", path, err)
	}

	theme := ThemeName(fc.Theme)
	if !theme.Valid() {
		theme = ThemeLight
	}
	return cfg, theme, nil
}

// applyFile folds the file overrides into cfg.
func applyFile(cfg *Config, fc fileConfig) error {
	if fc.Bullet != "" {
		cfg.Light.Bullet = fc.Bullet
		cfg.Dark.Bullet = fc.Bullet
	}
	if fc.Accent != "" {
		accent, err := ParseHex(fc.Accent)
		if err != nil {
			return err
		}
		cfg.Light.Link.Foreground = accent
		cfg.Light.Hashtag.Foreground = accent.Darken(0.1)
		cfg.Dark.Link.Foreground = accent.Lighten(0.35)
		cfg.Dark.Hashtag.Foreground = accent.Lighten(0.25)
	}
	if err := applyVariant(&cfg.Light, fc.Light); err != nil {
		return err
	}
	return applyVariant(&cfg.Dark, fc.Dark)
}

func applyVariant(t *Theme, v variant) error {
	setFg := func(dst *Style, hex string) error {
		if hex == "" {
			return nil
		}
		c, err := ParseHex(hex)
		if err != nil {
			return err
		}
		dst.Foreground = c
		return nil
	}

	if v.HeadingColor != "" {
		c, err := ParseHex(v.HeadingColor)
		if err != nil {
			return err
		}
		for i := range t.Heading {
			t.Heading[i].Foreground = c
		}
	}
	for i, scale := range v.HeadingScales {
		if i >= len(t.Heading) {
			break
		}
		if scale > 0 {
			t.Heading[i].Scale = scale
		}
	}
	if err := setFg(&t.Link, v.LinkColor); err != nil {
		return err
	}
	if err := setFg(&t.Code, v.CodeColor); err != nil {
		return err
	}
	if v.CodeBackground != "" {
		c, err := ParseHex(v.CodeBackground)
		if err != nil {
			return err
		}
		t.Code.Background = c
	}
	if err := setFg(&t.Blockquote, v.BlockquoteColor); err != nil {
		return err
	}
	if err := setFg(&t.Hashtag, v.HashtagColor); err != nil {
		return err
	}
	if err := setFg(&t.Mention, v.MentionColor); err != nil {
		return err
	}
	return setFg(&t.Error, v.ErrorColor)
}
