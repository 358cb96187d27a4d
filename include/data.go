package include

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/yamltag"
	"github.com/pelletier/go-toml/v2"
)

// DataTag decodes the file at the tagged path according to its extension.
//
//   - .yaml, .yml: loaded with the current Loader, tags included
//   - .toml: decoded into map[string]any
//   - .json: decoded with encoding/json
//
// Files with any other extension yield their contents as a string.
type DataTag struct{}

// Construct implements yamltag.Tag.
func (DataTag) Construct(ctx *yamltag.TagContext) (any, error) {
	path, err := resolve(ctx)
	if err != nil {
		return nil, err
	}

	return expand(ctx, path, func(path string) (any, error) {
		return loadData(ctx.Loader(), path)
	})
}

func loadData(loader *yamltag.Loader, path string) (any, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".yaml" || ext == ".yml" {
		return loader.LoadFromPath(path)
	}

	data, err := readFile(loader.FileSystem(), path)
	if err != nil {
		return nil, err
	}

	switch ext {
	case ".toml":
		var value map[string]any

		err = toml.Unmarshal(data, &value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", path, err)
		}

		return value, nil
	case ".json":
		var value any

		err = json.Unmarshal(data, &value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", path, err)
		}

		return value, nil
	default:
		return string(data), nil
	}
}
