// Package fxtag provides Uber Fx modules for yamltag loaders and typed configuration.
package fxtag

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/yamltag"
	"github.com/0xalexb/yamltag/config"
	filefetcher "github.com/0xalexb/yamltag/config/fetcher/file"
	yamlparser "github.com/0xalexb/yamltag/config/parser/yaml"
	"github.com/0xalexb/yamltag/logging"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the loader name is empty.
var ErrEmptyName = errors.New("loader name must not be empty")

// NewModule creates an Fx module providing a *yamltag.Loader.
// The name is used as both the module name and the DI named tag of the Loader.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(logger *slog.Logger) *yamltag.Loader {
					return newLoader(name, &options, logger)
				},
				fx.ParamTags(`optional:"true"`),
				fx.ResultTags(nameTag(name)),
			),
		),
	)
}

func newLoader(name string, options *Options, logger *slog.Logger) *yamltag.Loader {
	if options.LogLevel != "" {
		logger = logging.NewLogger(logging.LoggerConfig{Level: options.LogLevel, Component: name}, os.Stderr)
	}

	loaderOpts := []yamltag.Option{yamltag.WithLogger(logger)}
	if options.FileSystem != nil {
		loaderOpts = append(loaderOpts, yamltag.WithFileSystem(options.FileSystem))
	}

	loader := yamltag.New(loaderOpts...)

	for _, tag := range options.tags {
		loader.AddTag(tag.name, tag.tag)
	}

	loader.Logger().Debug("loader ready", "name", name, "tags", len(options.tags))

	return loader
}

// ConfigModule creates an Fx module providing *T, read from path with the
// Loader named loaderName and decoded from the colon-separated section.
// Relative inclusions in the file resolve against the directory of path.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ConfigModule[T any](loaderName, path, section string) fx.Option {
	if loaderName == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(loaderName+"-config",
		fx.Provide(
			fx.Annotate(
				func(loader *yamltag.Loader) (*T, error) {
					return loadConfig[T](loader, path, section)
				},
				fx.ParamTags(nameTag(loaderName)),
			),
		),
	)
}

func loadConfig[T any](loader *yamltag.Loader, path, section string) (*T, error) {
	fetcher, err := filefetcher.NewFetcher(path, loader.FileSystem())()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrFetch, err)
	}

	return provide[T](loader, fetcher, section)
}

func provide[T any](loader *yamltag.Loader, fetcher config.OriginFetcher, section string) (*T, error) {
	parser := yamlparser.NewParser(
		yamlparser.WithLoader(loader),
		yamlparser.WithOrigin(fetcher.Origin()),
	)

	return config.Provider(new(T), section)(parser, fetcher)
}

func nameTag(name string) string {
	return fmt.Sprintf(`name:"%s"`, name)
}
