package include

import (
	"fmt"
	"io"

	"github.com/0xalexb/yamltag"
)

// RawTag yields the contents of the tagged path as a string, without parsing it.
type RawTag struct{}

// Construct implements yamltag.Tag.
func (RawTag) Construct(ctx *yamltag.TagContext) (any, error) {
	path, err := resolve(ctx)
	if err != nil {
		return nil, err
	}

	fsys := ctx.Loader().FileSystem()

	return expand(ctx, path, func(path string) (any, error) {
		data, err := readFile(fsys, path)
		if err != nil {
			return nil, err
		}

		return string(data), nil
	})
}

func readFile(fsys yamltag.FileSystem, path string) ([]byte, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	return data, nil
}
