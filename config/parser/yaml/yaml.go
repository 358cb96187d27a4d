package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/yamltag"
	"github.com/0xalexb/yamltag/include"
	"github.com/go-viper/mapstructure/v2"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotMapping is returned when a path segment points into a value that is not a mapping.
var ErrNotMapping = errors.New("value is not a mapping")

// Parser implements config.Parser interface for YAML data.
// Documents are loaded through a yamltag.Loader, so registered tags are
// resolved before the target section is selected and decoded.
type Parser struct {
	loader    *yamltag.Loader
	origin    string
	hasOrigin bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLoader sets the Loader documents are loaded with.
func WithLoader(loader *yamltag.Loader) Option {
	return func(p *Parser) {
		p.loader = loader
	}
}

// WithOrigin sets the directory relative inclusions are resolved against.
// Without it, documents that include files fail to load.
func WithOrigin(origin string) Option {
	return func(p *Parser) {
		p.origin = origin
		p.hasOrigin = true
	}
}

// NewParser creates a new YAML parser instance.
// The default Loader reads from the operating system and has the include tags registered.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	if parser.loader == nil {
		parser.loader = yamltag.New()
		include.Register(parser.loader)
	}

	return parser
}

// Parse loads YAML data and decodes it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	var loadOpts []yamltag.LoadOption
	if p.hasOrigin {
		loadOpts = append(loadOpts, yamltag.WithOrigin(p.origin))
	}

	document, err := p.loader.Load(bytes.NewReader(data), loadOpts...)
	if err != nil {
		return fmt.Errorf("load error: %w", err)
	}

	section, err := navigate(document, path)
	if err != nil {
		return err
	}

	err = decode(section, target)
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	return nil
}

// navigate walks a colon-separated path through nested mappings.
// Examples:
//   - "" -> the document itself
//   - "api:permissions" -> document["api"]["permissions"]
func navigate(document any, path string) (any, error) {
	if path == "" {
		return document, nil
	}

	current := document

	for _, key := range strings.Split(path, ":") {
		mapping, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("reading path %q at %q: %w", path, key, ErrNotMapping)
		}

		current, ok = mapping[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	return current, nil
}

func decode(input any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	return decoder.Decode(input)
}
