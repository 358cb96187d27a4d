package fxtag

import (
	"github.com/0xalexb/yamltag"
	"github.com/0xalexb/yamltag/env"
	"github.com/0xalexb/yamltag/include"
)

type namedTag struct {
	name string
	tag  yamltag.Tag
}

// Options holds configuration settings for a loader module.
type Options struct {
	tags       []namedTag
	FileSystem yamltag.FileSystem
	LogLevel   string
}

// Option defines a function type for applying loader module options.
type Option func(*Options)

// WithTag registers tag under name on the provided Loader.
// Later registrations of the same name win.
func WithTag(name string, tag yamltag.Tag) Option {
	return func(opts *Options) {
		opts.tags = append(opts.tags, namedTag{name: name, tag: tag})
	}
}

// WithInclusion registers !include, !include.raw and !include.data.
func WithInclusion() Option {
	return func(opts *Options) {
		opts.tags = append(opts.tags,
			namedTag{name: include.Name, tag: include.Tag{}},
			namedTag{name: include.RawName, tag: include.RawTag{}},
			namedTag{name: include.DataName, tag: include.DataTag{}},
		)
	}
}

// WithEnv registers !env, looking variables up with prefix prepended.
func WithEnv(prefix string) Option {
	return WithTag(env.Name, env.Tag{Prefix: prefix})
}

// WithFileSystem sets the file system the Loader reads from.
func WithFileSystem(fsys yamltag.FileSystem) Option {
	return func(opts *Options) {
		opts.FileSystem = fsys
	}
}

// WithLogLevel gives the Loader its own logger at the given level.
// Valid levels are: "debug", "info", "warn", "error".
// Without it the Loader uses the *slog.Logger from the container, if any.
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
