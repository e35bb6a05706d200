package block

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver turns an image reference from the document into a loadable
// location. The active buffer's file path determines the base directory
// for relative references.
type Resolver interface {
	// Resolve returns a loadable location for src, or an error whose
	// message is safe to show inline.
	Resolve(src string) (string, error)
}

// DirResolver resolves relative references against the directory of the
// document's file. Remote URLs and data URIs pass through untouched;
// local paths must exist.
type DirResolver struct {
	// BasePath is the path of the markdown file being edited.
	BasePath string
}

// Resolve implements Resolver.
func (r DirResolver) Resolve(src string) (string, error) {
	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return src, nil
	case strings.HasPrefix(src, "data:"):
		return src, nil
	case strings.HasPrefix(src, "file://"):
		return r.checkLocal(strings.TrimPrefix(src, "file://"))
	case filepath.IsAbs(src):
		return r.checkLocal(src)
	default:
		baseDir := filepath.Dir(r.BasePath)
		return r.checkLocal(filepath.Join(baseDir, src))
	}
}

// checkLocal verifies a local file exists and returns its clean path.
func (r DirResolver) checkLocal(path string) (string, error) {
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("image not found: %s", path)
		}
		return "", fmt.Errorf("image not readable: %s", path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("image path is a directory: %s", path)
	}
	return path, nil
}

// NullResolver accepts every reference unchanged. Used when no base path
// is known (unsaved buffer).
type NullResolver struct{}

// Resolve implements Resolver.
func (NullResolver) Resolve(src string) (string, error) { return src, nil }
