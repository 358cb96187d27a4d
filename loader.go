package yamltag

import (
	"io"
	"log/slog"
	"sync"

	"github.com/goccy/go-yaml/ast"
)

// Loader parses YAML documents and resolves registered tags while constructing them.
//
// A Loader is safe for concurrent use. Tags are usually registered before the
// first load; AddTag during a load only affects nodes not yet constructed.
type Loader struct {
	mu     sync.RWMutex
	tags   map[string]Tag
	fs     FileSystem
	logger *slog.Logger
}

// New creates a Loader with no tags registered.
func New(opts ...Option) *Loader {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	loader := &Loader{
		tags:   make(map[string]Tag, len(options.Tags)),
		fs:     options.FileSystem,
		logger: options.Logger,
	}

	if loader.fs == nil {
		loader.fs = OSFileSystem()
	}

	if loader.logger == nil {
		loader.logger = slog.Default()
	}

	for name, tag := range options.Tags {
		loader.tags[name] = tag
	}

	return loader
}

// AddTag registers tag under name, replacing any previous registration.
func (l *Loader) AddTag(name string, tag Tag) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tags[name] = tag
}

// FileSystem returns the file system path-based loads read from.
func (l *Loader) FileSystem() FileSystem {
	return l.fs
}

// Logger returns the logger of the Loader.
func (l *Loader) Logger() *slog.Logger {
	return l.logger
}

func (l *Loader) tag(name string) (Tag, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tag, ok := l.tags[name]

	return tag, ok
}

// Load reads a single document from r and returns its value.
// An empty stream yields nil. Any failure is an *Error.
func (l *Loader) Load(r io.Reader, opts ...LoadOption) (any, error) {
	options := newLoadOptions(opts)

	runs, err := tokenize(r)
	if err != nil {
		return nil, err
	}

	if len(runs) == 0 {
		return nil, nil
	}

	doc, err := parseDocument(runs[0], options.name)
	if err != nil {
		return nil, err
	}

	if len(runs) > 1 {
		return nil, newError(ErrMultipleDocuments, tokenMark(runs[1][0], options.name))
	}

	return l.construct(doc, options)
}

// LoadAll returns the lazy sequence of documents read from r.
// The sequence never closes r.
func (l *Loader) LoadAll(r io.Reader, opts ...LoadOption) *Documents {
	return newDocuments(l, func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}, newLoadOptions(opts))
}

// LoadFromPath loads the single document stored at path.
// Relative inclusions are resolved against the directory of path.
func (l *Loader) LoadFromPath(path string) (any, error) {
	origin := Dir(path)

	l.logger.Debug("loading file", "path", path, "origin", origin)

	file, err := l.fs.Open(path)
	if err != nil {
		return nil, newError(err, nil)
	}
	defer func() { _ = file.Close() }()

	return l.Load(file, WithOrigin(origin), WithName(path))
}

// LoadAllFromPath returns the lazy sequence of documents stored at path.
// The file is opened on the first pull and closed when the sequence is
// exhausted, fails or is closed.
func (l *Loader) LoadAllFromPath(path string) *Documents {
	origin := Dir(path)

	return newDocuments(l, func() (io.ReadCloser, error) {
		l.logger.Debug("loading file", "path", path, "origin", origin)

		return l.fs.Open(path)
	}, newLoadOptions([]LoadOption{WithOrigin(origin), WithName(path)}))
}

func (l *Loader) construct(doc *ast.DocumentNode, options loadOptions) (any, error) {
	value, err := newConstruction(l, options).Construct(doc)
	if err != nil {
		return nil, wrapError(err, nodeMark(doc.Body, options.name))
	}

	return value, nil
}
