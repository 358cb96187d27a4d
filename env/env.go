// Package env provides a tag that reads values from environment variables.
//
//	password: !env DB_PASSWORD
//	host: !env DB_HOST localhost
//
// The first word of the tagged scalar names the variable; the rest of the
// value, if any, is the default used when the variable is not set.
package env

import (
	"errors"
	"os"
	"strings"

	"github.com/0xalexb/yamltag"
)

// Name is the tag the env tag is usually registered under.
const Name = "!env"

// ErrInvalidArguments is returned when the tagged value names no variable.
var ErrInvalidArguments = errors.New("expected a variable name and an optional default value")

// Tag resolves environment variables.
type Tag struct {
	// Prefix is prepended to every variable name.
	Prefix string
	// Lookup replaces os.LookupEnv when set.
	Lookup func(key string) (string, bool)
}

// Construct implements yamltag.Tag.
func (t Tag) Construct(ctx *yamltag.TagContext) (any, error) {
	value, err := ctx.Constructor().ConstructScalar(ctx.Node())
	if err != nil {
		return nil, err
	}

	name, fallback, _ := strings.Cut(strings.TrimSpace(value), " ")
	if name == "" {
		return nil, ErrInvalidArguments
	}

	lookup := t.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	resolved, ok := lookup(t.Prefix + name)
	if !ok {
		ctx.Loader().Logger().Debug("environment variable not set",
			"name", t.Prefix+name,
			"line", ctx.Mark().Line,
		)

		return strings.TrimSpace(fallback), nil
	}

	return resolved, nil
}
