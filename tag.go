package yamltag

import "github.com/goccy/go-yaml/ast"

// defaultOrigin is reported by TagContext.Origin when no origin was given.
const defaultOrigin = "."

// Tag constructs the native value for a node carrying a registered tag.
//
// Returned errors do not need position information: the Loader wraps them
// with the mark of the tagged node.
type Tag interface {
	Construct(ctx *TagContext) (any, error)
}

// TagFunc is a function adapter for the Tag interface.
type TagFunc func(ctx *TagContext) (any, error)

// Construct calls f(ctx).
func (f TagFunc) Construct(ctx *TagContext) (any, error) {
	return f(ctx)
}

// Constructor turns nodes of the document being loaded into native values.
// Nested registered tags are intercepted, so handlers should construct child
// nodes through it rather than decoding them directly.
type Constructor interface {
	// Construct returns the native value of node.
	Construct(node ast.Node) (any, error)

	// ConstructScalar returns the string form of a scalar node. Null yields "".
	// Non-scalar nodes fail with ErrExpectedScalar.
	ConstructScalar(node ast.Node) (string, error)
}

// TagContext is handed to a Tag for a single tagged node.
type TagContext struct {
	loader      *Loader
	constructor Constructor
	tag         string
	node        ast.Node
	mark        Mark
	origin      string
	hasOrigin   bool
}

// Loader returns the loader driving the current document.
// Handlers call back into it to load nested documents.
func (c *TagContext) Loader() *Loader {
	return c.loader
}

// Constructor returns the value constructor of the current document.
func (c *TagContext) Constructor() Constructor {
	return c.constructor
}

// Tag returns the tag being resolved, e.g. "!include".
func (c *TagContext) Tag() string {
	return c.tag
}

// Node returns the content of the tagged node. An empty value is an *ast.NullNode.
func (c *TagContext) Node() ast.Node {
	return c.node
}

// Mark returns the position of the tagged node.
func (c *TagContext) Mark() Mark {
	return c.mark
}

// Origin returns the directory relative paths are resolved against.
// The second result is false when the document was loaded without an origin,
// in which case "." is returned.
func (c *TagContext) Origin() (string, bool) {
	if !c.hasOrigin {
		return defaultOrigin, false
	}

	return c.origin, true
}
