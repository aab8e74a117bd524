package object

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// maxAliasExpansion bounds how many nodes may be decoded through aliases in
// one document.
const maxAliasExpansion = 10000

// UnmarshalYAML decodes a YAML mapping into the object keeping the document
// key order. Nested mappings become *Object, sequences become []any and
// scalars decode to their natural Go values. Aliases are expanded, an alias
// that refers to one of its own ancestors is an error.
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	d := &decoder{active: make(map[*yaml.Node]bool)}
	return d.fill(o, node)
}

type decoder struct {
	// active holds the collection nodes being decoded
	active   map[*yaml.Node]bool
	aliases  int
	expanded int
}

func (d *decoder) fill(o *Object, node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: cannot decode %s into an object", node.Line, nodeKindName(node.Kind))
	}

	d.active[node] = true
	defer delete(d.active, node)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("line %d: object key: %w", keyNode.Line, err)
		}

		val, err := d.decode(valNode)
		if err != nil {
			return err
		}

		o.Set(key, val)
	}

	return nil
}

func (d *decoder) decode(node *yaml.Node) (any, error) {
	if d.aliases > 0 {
		d.expanded++
		if d.expanded > maxAliasExpansion {
			return nil, fmt.Errorf("line %d: document expands more than %d nodes through aliases", node.Line, maxAliasExpansion)
		}
	}

	switch node.Kind {
	case yaml.MappingNode:
		child := New(nil)
		if err := d.fill(child, node); err != nil {
			return nil, err
		}
		return child, nil

	case yaml.SequenceNode:
		d.active[node] = true
		defer delete(d.active, node)

		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := d.decode(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil

	case yaml.AliasNode:
		if node.Alias == nil || d.active[node.Alias] {
			return nil, fmt.Errorf("line %d: recursive alias *%s", node.Line, node.Value)
		}

		d.aliases++
		defer func() { d.aliases-- }()
		return d.decode(node.Alias)

	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return v, nil
	}
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
