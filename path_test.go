package yamltag_test

import (
	"path/filepath"
	"testing"

	"github.com/0xalexb/yamltag"

	"github.com/stretchr/testify/assert"
)

func TestDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected string
	}{
		{"foo.yml", ""},
		{"path/to/scenario.yml", "path/to"},
		{"path//to//scenario.yml", "path//to"},
		{"/foo.yml", "/"},
		{"/////foo/bar/baz", "/////foo/bar"},
		{"./foo.yml", "."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, filepath.FromSlash(tt.expected), yamltag.Dir(filepath.FromSlash(tt.path)))
		})
	}
}

func TestJoinPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		origin   string
		path     string
		expected string
	}{
		{"empty origin", "", "foo.yml", "foo.yml"},
		{"current directory", ".", "foo.yml", "./foo.yml"},
		{"trailing separator", "base/path/", "*.yml", "base/path/*.yml"},
		{"nested", "base/dir", "sub/item.yml", "base/dir/sub/item.yml"},
		{"parent segments kept", "base/dir", "../other.yml", "base/dir/../other.yml"},
		{"absolute path wins", "base", "/etc/app.yml", "/etc/app.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actual := yamltag.JoinPath(filepath.FromSlash(tt.origin), filepath.FromSlash(tt.path))
			assert.Equal(t, filepath.FromSlash(tt.expected), actual)
		})
	}
}
