package yamltag

import (
	"io"
	"iter"

	"github.com/goccy/go-yaml/token"
)

// Documents is a lazily constructed sequence of documents.
//
// Each call to Next parses and constructs one more document, so documents
// before a broken one are still produced. The underlying source is
// released exactly once: when the sequence is exhausted, when it fails or when
// Close is called. A Documents value is not safe for concurrent use.
type Documents struct {
	loader  *Loader
	open    func() (io.ReadCloser, error)
	options loadOptions

	source  io.ReadCloser
	runs    []token.Tokens
	next    int
	started bool
	done    bool
}

func newDocuments(loader *Loader, open func() (io.ReadCloser, error), options loadOptions) *Documents {
	return &Documents{
		loader:  loader,
		open:    open,
		options: options,
	}
}

// Next returns the value of the next document.
// It returns io.EOF once the sequence is exhausted. Any other error is an
// *Error, after which the sequence is exhausted.
func (d *Documents) Next() (any, error) {
	if d.done {
		return nil, io.EOF
	}

	if !d.started {
		d.started = true

		err := d.start()
		if err != nil {
			_ = d.finish()

			return nil, err
		}
	}

	if d.next >= len(d.runs) {
		_ = d.finish()

		return nil, io.EOF
	}

	run := d.runs[d.next]
	d.next++

	doc, err := parseDocument(run, d.options.name)
	if err != nil {
		_ = d.finish()

		return nil, err
	}

	value, err := d.loader.construct(doc, d.options)
	if err != nil {
		_ = d.finish()

		return nil, err
	}

	return value, nil
}

// All returns an iterator over the remaining documents.
// The sequence is closed when the loop ends, including on break.
func (d *Documents) All() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		defer d.finish()

		for {
			value, err := d.Next()
			if err == io.EOF { //nolint:errorlint // Next returns io.EOF unwrapped
				return
			}

			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the underlying source. It is safe to call more than once.
func (d *Documents) Close() error {
	d.started = true

	return d.finish()
}

func (d *Documents) start() error {
	source, err := d.open()
	if err != nil {
		return newError(err, nil)
	}

	d.source = source

	runs, err := tokenize(source)
	if err != nil {
		return err
	}

	d.runs = runs

	return nil
}

func (d *Documents) finish() error {
	d.done = true
	d.runs = nil

	if d.source == nil {
		return nil
	}

	source := d.source
	d.source = nil

	err := source.Close()
	if err != nil {
		return newError(err, nil)
	}

	return nil
}
