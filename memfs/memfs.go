// Package memfs provides an in-memory yamltag.FileSystem.
//
// It records every file opened through it so tests can check which paths a
// load touched and that all of them were closed again.
package memfs

import (
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// FileSystem serves files from a map of path to contents.
// Paths are matched exactly as given, without cleaning.
type FileSystem struct {
	files map[string]string

	mu     sync.Mutex
	opened []string
	open   int
}

// New creates a FileSystem holding files.
func New(files map[string]string) *FileSystem {
	copied := make(map[string]string, len(files))
	for name, content := range files {
		copied[name] = content
	}

	return &FileSystem{files: copied}
}

// Open returns a reader over the contents of name.
// Missing files fail with an error wrapping fs.ErrNotExist.
func (f *FileSystem) Open(name string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.opened = append(f.opened, name)

	content, ok := f.files[name]
	if !ok {
		return nil, fmt.Errorf("failed to open %q: %w", name, fs.ErrNotExist)
	}

	f.open++

	return &file{Reader: strings.NewReader(content), fs: f}, nil
}

// Glob returns the sorted paths matching pattern. Like the OS file system,
// wildcards skip dot-prefixed names the pattern does not spell out.
func (f *FileSystem) Glob(pattern string) ([]string, error) {
	names := make([]string, 0, len(f.files))
	for name := range f.files {
		names = append(names, name)
	}

	sort.Strings(names)

	var matches []string

	for _, name := range names {
		ok, err := doublestar.PathMatch(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
		}

		if ok && !hidden(pattern, name) {
			matches = append(matches, name)
		}
	}

	return matches, nil
}

// hidden reports whether name has a dot-prefixed segment that no dot-prefixed
// pattern segment asks for.
func hidden(pattern, name string) bool {
	explicit := false

	for _, segment := range strings.Split(pattern, "/") {
		if strings.HasPrefix(segment, ".") && segment != "." && segment != ".." {
			explicit = true
		}
	}

	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") && segment != "." && segment != ".." && !explicit {
			return true
		}
	}

	return false
}

// Opened returns every path passed to Open, in call order.
func (f *FileSystem) Opened() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.opened...)
}

// OpenCount returns the number of files currently open.
func (f *FileSystem) OpenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.open
}

// AllClosed reports whether every successfully opened file was closed.
func (f *FileSystem) AllClosed() bool {
	return f.OpenCount() == 0
}

type file struct {
	*strings.Reader

	fs     *FileSystem
	closed bool
}

func (f *file) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	if f.closed {
		return fs.ErrClosed
	}

	f.closed = true
	f.fs.open--

	return nil
}
