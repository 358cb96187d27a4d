package yamltag

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the directory part of path without trailing separators.
// It returns "" when path has no directory part, so "foo.yml" resolves
// relative inclusions against the working directory without a "./" prefix.
func Dir(path string) string {
	dir, _ := filepath.Split(path)
	if dir == "" {
		return ""
	}

	trimmed := strings.TrimRight(dir, string(os.PathSeparator)+"/")
	if trimmed == "" || strings.HasSuffix(trimmed, ":") {
		return dir
	}

	return trimmed
}

// JoinPath joins origin and path the way a shell would resolve path from
// inside origin. Unlike filepath.Join it does not clean the result, so
// ".." segments are kept. An absolute path is returned unchanged.
func JoinPath(origin, path string) string {
	if origin == "" || filepath.IsAbs(path) {
		return path
	}

	if os.IsPathSeparator(origin[len(origin)-1]) {
		return origin + path
	}

	return origin + string(os.PathSeparator) + path
}
