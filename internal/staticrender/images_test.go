package staticrender

import (
	"strings"
	"testing"
)

const basePath = "/docs/readme.md"

func TestResolveImagePathsRelative(t *testing.T) {
	html := `<p><img src="assets/pic.png" alt="x"></p>`
	out := ResolveImagePaths(html, basePath)

	want := LocalFileMarker + "/docs/assets/pic.png"
	if !strings.Contains(out, `src="`+want+`"`) {
		t.Errorf("out = %q, want src %q", out, want)
	}
	if !strings.Contains(out, `alt="x"`) {
		t.Errorf("attributes after src must survive: %q", out)
	}
}

func TestResolveImagePathsAbsolute(t *testing.T) {
	out := ResolveImagePaths(`<img src="/tmp/pic.png">`, basePath)
	if !strings.Contains(out, LocalFileMarker+"/tmp/pic.png") {
		t.Errorf("out = %q", out)
	}
}

func TestResolveImagePathsRemoteUntouched(t *testing.T) {
	for _, src := range []string{
		"http://example.com/a.png",
		"https://example.com/a.png",
		"data:image/png;base64,AAAA",
	} {
		out := ResolveImagePaths(`<img src="`+src+`">`, basePath)
		if !strings.Contains(out, `src="`+src+`"`) {
			t.Errorf("src %q should pass through, got %q", src, out)
		}
		if strings.Contains(out, LocalFileMarker) {
			t.Errorf("no marker expected for %q, got %q", src, out)
		}
	}
}

func TestResolveImagePathsFileScheme(t *testing.T) {
	out := ResolveImagePaths(`<img src="file:///tmp/pic.png">`, basePath)
	if !strings.Contains(out, `src="/tmp/pic.png"`) {
		t.Errorf("out = %q, want the scheme stripped", out)
	}
}

func TestResolveImagePathsNormalizesSelfClosing(t *testing.T) {
	out := ResolveImagePaths(`<img src="a.png"/>`, basePath)
	if !strings.HasSuffix(out, "/>") {
		t.Errorf("out = %q, want a self-closing tag", out)
	}
	if strings.Contains(out, "//>") {
		t.Errorf("out = %q, trailing slash duplicated", out)
	}
}

func TestResolveMarkdownImagePaths(t *testing.T) {
	out := ResolveMarkdownImagePaths("intro ![alt text](img.png) outro", basePath)

	want := "![alt text](" + LocalFileMarker + "/docs/img.png)"
	if !strings.Contains(out, want) {
		t.Errorf("out = %q, want %q", out, want)
	}
	if !strings.HasPrefix(out, "intro ") || !strings.HasSuffix(out, " outro") {
		t.Errorf("surrounding text mangled: %q", out)
	}
}

func TestResolveImagePathsMultiple(t *testing.T) {
	html := `<img src="a.png"><p>x</p><img src="https://e.com/b.png">`
	out := ResolveImagePaths(html, basePath)

	if !strings.Contains(out, LocalFileMarker+"/docs/a.png") {
		t.Errorf("first image unresolved: %q", out)
	}
	if !strings.Contains(out, `src="https://e.com/b.png"`) {
		t.Errorf("second image should pass through: %q", out)
	}
}
