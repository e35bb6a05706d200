package style

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStyleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing style file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, theme, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if theme != ThemeLight {
		t.Errorf("theme = %v, want light", theme)
	}
	if cfg.Light.Bullet != DefaultConfig().Light.Bullet {
		t.Error("missing file should yield the default configuration")
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := writeStyleFile(t, `
theme = "dark"
bullet = "◦"
accent = "#ff0000"

[light]
heading_color = "#112233"
heading_scales = [2.0, 1.8]
code_background = "#eeeeee"

[dark]
link_color = "#00ff00"
`)

	cfg, theme, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if theme != ThemeDark {
		t.Errorf("theme = %v, want dark", theme)
	}
	if cfg.Light.Bullet != "◦" || cfg.Dark.Bullet != "◦" {
		t.Errorf("bullets = %q, %q", cfg.Light.Bullet, cfg.Dark.Bullet)
	}
	if cfg.Light.Link.Foreground != RGB(0xFF, 0, 0) {
		t.Errorf("light link = %v, want the accent", cfg.Light.Link.Foreground)
	}
	if cfg.Light.Heading[0].Foreground != RGB(0x11, 0x22, 0x33) {
		t.Errorf("h1 color = %v", cfg.Light.Heading[0].Foreground)
	}
	if cfg.Light.Heading[0].Scale != 2.0 || cfg.Light.Heading[1].Scale != 1.8 {
		t.Errorf("heading scales = %v, %v", cfg.Light.Heading[0].Scale, cfg.Light.Heading[1].Scale)
	}
	// Scales past the provided list keep their defaults.
	if cfg.Light.Heading[2].Scale != DefaultConfig().Light.Heading[2].Scale {
		t.Error("unset heading scales must keep defaults")
	}
	if cfg.Light.Code.Background != RGB(0xEE, 0xEE, 0xEE) {
		t.Errorf("code background = %v", cfg.Light.Code.Background)
	}
	if cfg.Dark.Link.Foreground != RGB(0, 0xFF, 0) {
		t.Errorf("dark link = %v, want the per-variant override", cfg.Dark.Link.Foreground)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeStyleFile(t, "theme = [broken")
	if _, _, err := Load(path); err == nil {
		t.Error("malformed TOML should error")
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := writeStyleFile(t, `accent = "#notacolor"`)
	if _, _, err := Load(path); err == nil {
		t.Error("invalid hex color should error")
	}
}

func TestLoadUnknownThemeFallsBackToLight(t *testing.T) {
	path := writeStyleFile(t, `theme = "sepia"`)
	_, theme, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if theme != ThemeLight {
		t.Errorf("theme = %v, want light", theme)
	}
}

func TestWatcherReloadAppliesFile(t *testing.T) {
	path := writeStyleFile(t, `
theme = "dark"
bullet = "▸"
`)
	store := NewStore(DefaultConfig())
	w := NewWatcher(path, store)

	// Drive the reload directly; the fsnotify plumbing only schedules it.
	w.reload()

	if store.ThemeName() != ThemeDark {
		t.Errorf("ThemeName() = %v, want dark", store.ThemeName())
	}
	if store.Current().Bullet != "▸" {
		t.Errorf("Bullet = %q, want the file's glyph", store.Current().Bullet)
	}
}

func TestWatcherStartStop(t *testing.T) {
	path := writeStyleFile(t, `bullet = "▸"`)
	store := NewStore(DefaultConfig())
	w := NewWatcher(path, store)

	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	w.Stop()
	w.Stop()
}
