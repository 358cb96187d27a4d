package yamltag

import (
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
)

const yamlTagPrefix = "tag:yaml.org,2002:"

// construction holds the state of one document being turned into native values.
// The origin lives here rather than on the Loader so that nested loads cannot leak it.
type construction struct {
	loader    *Loader
	name      string
	origin    string
	hasOrigin bool
	anchors   map[string]any
}

func newConstruction(loader *Loader, opts loadOptions) *construction {
	return &construction{
		loader:    loader,
		name:      opts.name,
		origin:    opts.origin,
		hasOrigin: opts.hasOrigin,
		anchors:   make(map[string]any),
	}
}

// Construct implements Constructor.
func (c *construction) Construct(node ast.Node) (any, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case *ast.DocumentNode:
		return c.Construct(n.Body)
	case *ast.TagNode:
		return c.constructTagged(n)
	case *ast.MappingNode:
		return c.constructMapping(n.Values)
	case *ast.MappingValueNode:
		return c.constructMapping([]*ast.MappingValueNode{n})
	case *ast.MappingKeyNode:
		return c.Construct(n.Value)
	case *ast.SequenceNode:
		return c.constructSequence(n)
	case *ast.AnchorNode:
		return c.constructAnchor(n)
	case *ast.AliasNode:
		return c.constructAlias(n)
	case *ast.CommentGroupNode:
		return nil, nil
	case ast.ScalarNode:
		return c.constructScalar(n)
	default:
		return nil, newError(fmt.Errorf("unsupported node type %s", node.Type()), c.mark(node))
	}
}

// ConstructScalar implements Constructor.
// Plain scalars keep their source text, so "0x10" stays "0x10".
func (c *construction) ConstructScalar(node ast.Node) (string, error) {
	switch n := node.(type) {
	case nil:
		return "", nil
	case *ast.NullNode:
		return "", nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		return n.Value.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return n.GetToken().Value, nil
	case *ast.MappingNode, *ast.MappingValueNode, *ast.SequenceNode:
		return "", fmt.Errorf("%w, but found %s", ErrExpectedScalar, kindOf(node))
	}

	value, err := c.Construct(node)
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case map[string]any:
		return "", fmt.Errorf("%w, but found mapping", ErrExpectedScalar)
	case []any:
		return "", fmt.Errorf("%w, but found sequence", ErrExpectedScalar)
	default:
		return fmt.Sprint(v), nil
	}
}

func (c *construction) constructTagged(node *ast.TagNode) (any, error) {
	name := node.Start.Value

	tag, ok := c.loader.tag(name)
	if ok {
		return c.apply(tag, node)
	}

	if !isStandardTag(name) {
		return nil, newError(fmt.Errorf("%w %q", ErrUnknownTag, name), c.mark(node))
	}

	switch node.Value.(type) {
	case *ast.MappingNode, *ast.MappingValueNode, *ast.SequenceNode:
		return c.Construct(node.Value)
	}

	return c.constructScalar(node)
}

// apply is the single interception point for registered tags: whatever the
// handler returns as an error gets the tagged node's mark.
func (c *construction) apply(tag Tag, node *ast.TagNode) (any, error) {
	mark := c.mark(node)

	var value ast.Node = node.Value
	if value == nil {
		value = &ast.NullNode{BaseNode: &ast.BaseNode{}, Token: node.Start}
	}

	ctx := &TagContext{
		loader:      c.loader,
		constructor: c,
		tag:         node.Start.Value,
		node:        value,
		origin:      c.origin,
		hasOrigin:   c.hasOrigin,
	}
	if mark != nil {
		ctx.mark = *mark
	}

	c.loader.logger.Debug("resolving tag",
		"tag", ctx.tag,
		"line", ctx.mark.Line,
		"column", ctx.mark.Column,
	)

	result, err := tag.Construct(ctx)
	if err != nil {
		return nil, newError(err, mark)
	}

	return result, nil
}

func (c *construction) constructMapping(values []*ast.MappingValueNode) (any, error) {
	result := make(map[string]any, len(values))

	var merged []map[string]any

	for _, entry := range values {
		if entry.Key != nil && entry.Key.IsMergeKey() {
			sources, err := c.mergeSources(entry.Value)
			if err != nil {
				return nil, err
			}

			merged = append(merged, sources...)

			continue
		}

		key, err := c.constructKey(entry.Key)
		if err != nil {
			return nil, err
		}

		value, err := c.Construct(entry.Value)
		if err != nil {
			return nil, err
		}

		result[key] = value
	}

	for _, source := range merged {
		for key, value := range source {
			if _, exists := result[key]; !exists {
				result[key] = value
			}
		}
	}

	return result, nil
}

// mergeSources returns the mappings referenced by a merge key in precedence order.
func (c *construction) mergeSources(node ast.Node) ([]map[string]any, error) {
	value, err := c.Construct(node)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		sources := make([]map[string]any, 0, len(v))

		for _, item := range v {
			source, ok := item.(map[string]any)
			if !ok {
				return nil, newError(fmt.Errorf("expected a mapping for merging, but found %T", item), c.mark(node))
			}

			sources = append(sources, source)
		}

		return sources, nil
	default:
		return nil, newError(fmt.Errorf("expected a mapping or list of mappings for merging, but found %T", value), c.mark(node))
	}
}

func (c *construction) constructKey(node ast.MapKeyNode) (string, error) {
	key, err := c.Construct(node)
	if err != nil {
		return "", err
	}

	switch k := key.(type) {
	case string:
		return k, nil
	case nil:
		return "null", nil
	case map[string]any, []any:
		return "", newError(fmt.Errorf("found unhashable key of type %T", key), c.mark(node))
	default:
		return fmt.Sprint(k), nil
	}
}

func (c *construction) constructSequence(node *ast.SequenceNode) (any, error) {
	result := make([]any, 0, len(node.Values))

	for _, item := range node.Values {
		value, err := c.Construct(item)
		if err != nil {
			return nil, err
		}

		result = append(result, value)
	}

	return result, nil
}

func (c *construction) constructAnchor(node *ast.AnchorNode) (any, error) {
	value, err := c.Construct(node.Value)
	if err != nil {
		return nil, err
	}

	c.anchors[node.Name.GetToken().Value] = value

	return value, nil
}

func (c *construction) constructAlias(node *ast.AliasNode) (any, error) {
	name := node.Value.GetToken().Value

	value, ok := c.anchors[name]
	if !ok {
		return nil, newError(fmt.Errorf("%w %q", ErrUnknownAlias, name), c.mark(node))
	}

	return value, nil
}

func (c *construction) constructScalar(node ast.Node) (any, error) {
	var value any

	err := yaml.NodeToValue(node, &value)
	if err != nil {
		return nil, newError(err, c.mark(node))
	}

	return normalizeInt(value), nil
}

func (c *construction) mark(node ast.Node) *Mark {
	return nodeMark(node, c.name)
}

func isStandardTag(name string) bool {
	return strings.HasPrefix(name, "!!") || strings.HasPrefix(name, yamlTagPrefix)
}

// normalizeInt converts the parser's int64/uint64 values to int when they fit.
func normalizeInt(value any) any {
	switch v := value.(type) {
	case uint64:
		if v <= math.MaxInt {
			return int(v)
		}
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v)
		}
	}

	return value
}

func kindOf(node ast.Node) string {
	switch node.(type) {
	case *ast.MappingNode, *ast.MappingValueNode:
		return "mapping"
	case *ast.SequenceNode:
		return "sequence"
	default:
		return strings.ToLower(node.Type().String())
	}
}
