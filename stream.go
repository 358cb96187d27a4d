package yamltag

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// tokenize reads the whole stream and cuts its tokens into one run per
// document. Each run is parsed only when its document is reached, so a
// syntax error surfaces at the failing document. A stream without any
// document yields no runs.
func tokenize(r io.Reader) ([]token.Tokens, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newError(fmt.Errorf("failed to read document: %w", err), nil)
	}

	return splitDocuments(lexer.Tokenize(string(data))), nil
}

// splitDocuments starts a new run at every "---" that follows document
// content or another "---", and ends a run at "...". Comments and directives
// alone never make a document.
func splitDocuments(tokens token.Tokens) []token.Tokens {
	var (
		runs          []token.Tokens
		current       token.Tokens
		started       bool
		directiveLine = -1
	)

	flush := func() {
		if started {
			runs = append(runs, current)
		}

		current, started, directiveLine = nil, false, -1
	}

	for _, tk := range tokens {
		switch {
		case tk.Type == token.DocumentHeaderType:
			if started {
				flush()
			}

			current = append(current, tk)
			started = true
		case tk.Type == token.DocumentEndType:
			current = append(current, tk)
			flush()
		case tk.Type == token.DirectiveType:
			current = append(current, tk)
			directiveLine = tk.Position.Line
		case tk.Type == token.CommentType,
			tk.Position != nil && tk.Position.Line == directiveLine:
			current = append(current, tk)
		default:
			current = append(current, tk)
			started = true
		}
	}

	flush()

	return runs
}

// parseDocument parses a single run. The returned document has a nil Body
// when the run holds no content, as an explicit empty document does.
func parseDocument(tokens token.Tokens, name string) (*ast.DocumentNode, error) {
	file, err := parser.Parse(tokens, 0)
	if err != nil {
		return nil, wrapParseError(err, name)
	}

	for _, doc := range file.Docs {
		if doc == nil {
			continue
		}

		if _, ok := doc.Body.(*ast.DirectiveNode); ok {
			continue
		}

		return doc, nil
	}

	return ast.Document(tokens[0], nil), nil
}
