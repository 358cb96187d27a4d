package yamltag

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrPathIsDirectory is returned when a directory is opened as a document.
var ErrPathIsDirectory = errors.New("path is a directory")

// FileSystem is the file access the Loader and the inclusion tags go through.
type FileSystem interface {
	// Open opens the named file for reading.
	Open(name string) (io.ReadCloser, error)

	// Glob returns the files matching pattern. "**" matches any number of
	// directories. Wildcards do not match names starting with a dot unless
	// the pattern spells the dot out. Matches are returned in a deterministic
	// order.
	Glob(pattern string) ([]string, error)
}

type osFileSystem struct{}

// OSFileSystem returns the FileSystem backed by the operating system.
func OSFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) Open(name string) (io.ReadCloser, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", name, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("failed to open %q: %w", name, ErrPathIsDirectory)
	}

	file, err := os.Open(name) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", name, err)
	}

	return file, nil
}

func (osFileSystem) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly(), doublestar.WithNoHidden())
	if err != nil {
		return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
	}

	return matches, nil
}
