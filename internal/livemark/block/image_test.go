package block

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirResolverPassesRemoteAndData(t *testing.T) {
	r := DirResolver{BasePath: "/docs/readme.md"}

	for _, src := range []string{
		"http://example.com/a.png",
		"https://example.com/a.png",
		"data:image/png;base64,AAAA",
	} {
		got, err := r.Resolve(src)
		if err != nil {
			t.Errorf("Resolve(%q): %v", src, err)
		}
		if got != src {
			t.Errorf("Resolve(%q) = %q, want unchanged", src, got)
		}
	}
}

func TestDirResolverRelative(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(img, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := DirResolver{BasePath: filepath.Join(dir, "doc.md")}
	got, err := r.Resolve("pic.png")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != img {
		t.Errorf("Resolve = %q, want %q", got, img)
	}
}

func TestDirResolverFileScheme(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(img, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := DirResolver{BasePath: filepath.Join(dir, "doc.md")}
	got, err := r.Resolve("file://" + img)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != img {
		t.Errorf("Resolve = %q, want %q", got, img)
	}
}

func TestDirResolverMissingFile(t *testing.T) {
	r := DirResolver{BasePath: filepath.Join(t.TempDir(), "doc.md")}
	_, err := r.Resolve("absent.png")
	if err == nil {
		t.Fatal("want an error for a missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v, want a display-safe not-found message", err)
	}
}

func TestDirResolverRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	r := DirResolver{BasePath: filepath.Join(dir, "doc.md")}
	if _, err := r.Resolve(dir); err == nil {
		t.Error("want an error when the path is a directory")
	}
}

func TestNullResolver(t *testing.T) {
	got, err := NullResolver{}.Resolve("whatever.png")
	if err != nil || got != "whatever.png" {
		t.Errorf("Resolve = %q, %v", got, err)
	}
}
