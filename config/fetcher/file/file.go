package file

import (
	"fmt"
	"io"

	"github.com/0xalexb/yamltag"
)

// Fetcher implements config.OriginFetcher for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// reading path from fsys. A nil fsys reads from the operating system.
// The file is read at construction time and cached, so the constructor can be
// handed to Fx and run when the container decides.
func NewFetcher(path string, fsys yamltag.FileSystem) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if fsys == nil {
			fsys = yamltag.OSFileSystem()
		}

		file, err := fsys.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening file %q: %w", path, err)
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", path, err)
		}

		return &Fetcher{
			path: path,
			data: data,
		}, nil
	}
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Origin returns the directory of the file, for resolving relative inclusions.
func (f *Fetcher) Origin() string {
	return yamltag.Dir(f.path)
}

// Path returns the path the data was read from.
func (f *Fetcher) Path() string {
	return f.path
}
