package yamltag

import (
	"log/slog"
)

// Options holds configuration settings for a Loader.
type Options struct {
	FileSystem FileSystem
	Logger     *slog.Logger
	Tags       map[string]Tag
}

// Option defines a function type for applying Loader options.
type Option func(*Options)

// WithFileSystem sets the file system the path-based operations read from.
// Defaults to the operating system's.
func WithFileSystem(fsys FileSystem) Option {
	return func(opts *Options) {
		opts.FileSystem = fsys
	}
}

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithTag registers a tag handler at construction time.
func WithTag(name string, tag Tag) Option {
	return func(opts *Options) {
		if opts.Tags == nil {
			opts.Tags = make(map[string]Tag)
		}

		opts.Tags[name] = tag
	}
}

type loadOptions struct {
	name      string
	origin    string
	hasOrigin bool
}

// LoadOption configures a single load.
type LoadOption func(*loadOptions)

// WithOrigin sets the directory relative paths are resolved against.
// An empty origin is valid and leaves relative paths untouched.
func WithOrigin(origin string) LoadOption {
	return func(opts *loadOptions) {
		opts.origin = origin
		opts.hasOrigin = true
	}
}

// WithName sets the source name reported in error marks.
func WithName(name string) LoadOption {
	return func(opts *loadOptions) {
		opts.name = name
	}
}

func newLoadOptions(opts []LoadOption) loadOptions {
	var options loadOptions

	for _, apply := range opts {
		apply(&options)
	}

	return options
}
