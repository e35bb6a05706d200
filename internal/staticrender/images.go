package staticrender

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// LocalFileMarker prefixes resolved local paths in the emitted HTML so
// the embedding shell can rewrite them to its own asset protocol.
const LocalFileMarker = "__LOCAL_FILE__:"

var (
	imgTagRe      = regexp.MustCompile(`<img\s+([^>]*?)src="([^"]+)"([^>]*)>`)
	imgMarkdownRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
)

// ResolveImagePaths rewrites img tags in rendered HTML so every local
// source is an absolute, marker-prefixed path. Remote URLs and data URIs
// pass through unchanged.
func ResolveImagePaths(html, basePath string) string {
	return imgTagRe.ReplaceAllStringFunc(html, func(tag string) string {
		m := imgTagRe.FindStringSubmatch(tag)
		before, src, after := m[1], m[2], m[3]

		resolved := resolveSinglePath(src, basePath)

		after = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(after), "/"))
		if after == "" {
			return fmt.Sprintf(`<img %ssrc="%s" />`, before, resolved)
		}
		return fmt.Sprintf(`<img %ssrc="%s" %s />`, before, resolved, after)
	})
}

// ResolveMarkdownImagePaths rewrites ![alt](src) references in markdown
// before rendering, for callers that prefer pre-render resolution.
func ResolveMarkdownImagePaths(markdown, basePath string) string {
	return imgMarkdownRe.ReplaceAllStringFunc(markdown, func(ref string) string {
		m := imgMarkdownRe.FindStringSubmatch(ref)
		return fmt.Sprintf("![%s](%s)", m[1], resolveSinglePath(m[2], basePath))
	})
}

// resolveSinglePath resolves one image source against the markdown
// file's directory.
func resolveSinglePath(src, basePath string) string {
	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return src
	case strings.HasPrefix(src, "data:"):
		return src
	case strings.HasPrefix(src, "file://"):
		return strings.TrimPrefix(src, "file://")
	case filepath.IsAbs(src):
		return LocalFileMarker + src
	default:
		baseDir := filepath.Dir(basePath)
		return LocalFileMarker + filepath.Clean(filepath.Join(baseDir, src))
	}
}
