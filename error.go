package yamltag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/token"
)

// ErrExpectedScalar is returned when a scalar node is required but another node kind is found.
var ErrExpectedScalar = errors.New("expected a scalar node")

// ErrUnknownTag is returned when a node carries a local tag with no registered handler.
var ErrUnknownTag = errors.New("could not determine a constructor for the tag")

// ErrMultipleDocuments is returned by Load when the stream holds more than one document.
var ErrMultipleDocuments = errors.New("expected a single document in the stream")

// ErrUnknownAlias is returned when an alias refers to an anchor that was not defined.
var ErrUnknownAlias = errors.New("found undefined alias")

// Mark is a position in a source document.
type Mark struct {
	// Name identifies the source, usually the file path. Empty for anonymous streams.
	Name   string
	Line   int
	Column int
}

// String renders the mark as `in "name", line L, column C`.
func (m Mark) String() string {
	if m.Name == "" {
		return fmt.Sprintf("line %d, column %d", m.Line, m.Column)
	}

	return fmt.Sprintf("in %q, line %d, column %d", m.Name, m.Line, m.Column)
}

// Error is the only error type returned by the load-family operations.
// It carries the underlying cause and, when known, the position of the node being processed.
type Error struct {
	Cause error
	Mark  *Mark
}

// Error renders the cause message and the mark, each on its own line.
func (e *Error) Error() string {
	lines := make([]string, 0, 2)

	if e.Cause != nil {
		lines = append(lines, causeMessage(e.Cause))
	}

	if e.Mark != nil {
		lines = append(lines, e.Mark.String())
	}

	return strings.Join(lines, "\n")
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// causeMessage drops the source snippet goccy/go-yaml adds to its own errors.
// The position is rendered by the mark.
func causeMessage(err error) string {
	if yamlErr, ok := err.(yaml.Error); ok { //nolint:errorlint // only the direct cause is rendered
		return yamlErr.GetMessage()
	}

	return err.Error()
}

func newError(cause error, mark *Mark) *Error {
	return &Error{Cause: cause, Mark: mark}
}

// wrapError funnels any error into *Error without adding a second layer when it already is one.
func wrapError(err error, mark *Mark) *Error {
	if loadErr, ok := err.(*Error); ok { //nolint:errorlint // only a direct *Error is reused
		return loadErr
	}

	return newError(err, mark)
}

// wrapParseError attaches the offending token's position to a parser error.
func wrapParseError(err error, name string) *Error {
	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return newError(err, tokenMark(yamlErr.GetToken(), name))
	}

	return newError(err, nil)
}

func tokenMark(tk *token.Token, name string) *Mark {
	if tk == nil || tk.Position == nil {
		return nil
	}

	return &Mark{Name: name, Line: tk.Position.Line, Column: tk.Position.Column}
}

func nodeMark(node ast.Node, name string) *Mark {
	if node == nil {
		return nil
	}

	return tokenMark(node.GetToken(), name)
}
