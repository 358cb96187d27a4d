package include

import (
	"github.com/0xalexb/yamltag"
)

const (
	// Name is the tag Register binds Tag to.
	Name = "!include"
	// RawName is the tag Register binds RawTag to.
	RawName = "!include.raw"
	// DataName is the tag Register binds DataTag to.
	DataName = "!include.data"
)

// Register adds the inclusion tags to loader under their default names.
func Register(loader *yamltag.Loader) {
	loader.AddTag(Name, Tag{})
	loader.AddTag(RawName, RawTag{})
	loader.AddTag(DataName, DataTag{})
}

// Tag loads the YAML documents named by the tagged path.
type Tag struct{}

// Construct implements yamltag.Tag.
func (Tag) Construct(ctx *yamltag.TagContext) (any, error) {
	path, err := resolve(ctx)
	if err != nil {
		return nil, err
	}

	return expand(ctx, path, ctx.Loader().LoadFromPath)
}

// resolve joins the tagged path with the origin of the including document.
func resolve(ctx *yamltag.TagContext) (string, error) {
	origin, ok := ctx.Origin()
	if !ok {
		return "", ErrNoOrigin
	}

	base, err := ctx.Constructor().ConstructScalar(ctx.Node())
	if err != nil {
		return "", err
	}

	if base == "" {
		return "", ErrNoPath
	}

	return yamltag.JoinPath(origin, base), nil
}

// expand applies load to path, or to every file matching path when it is a wildcard.
func expand(ctx *yamltag.TagContext, path string, load func(string) (any, error)) (any, error) {
	if !IsWildcard(path) {
		return load(path)
	}

	matches, err := ctx.Loader().FileSystem().Glob(path)
	if err != nil {
		return nil, err
	}

	ctx.Loader().Logger().Debug("expanded wildcard inclusion",
		"pattern", path,
		"matches", len(matches),
	)

	values := make([]any, 0, len(matches))

	for _, match := range matches {
		value, err := load(match)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}
