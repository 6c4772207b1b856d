// Package loader reads stylesheet documents from YAML.
//
// The YAML is never decoded into Go maps: mapping order and duplicate
// keys are significant in a stylesheet document, so the node tree is
// walked directly. Mappings become css.Dict, sequences become css.List
// (with nested sequences as css.Tuple), nulls become valueless
// declarations and scalars are kept verbatim. A scalar value spelled
// "%name" stands for the use of a previously declared extend.
package loader

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"mixt/css"
)

// Load reads every YAML document from r and appends their top level
// entries into a single stylesheet document.
func Load(r io.Reader) (css.Dict, error) {
	dec := yaml.NewDecoder(r)

	var doc css.Dict
	for {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if err == io.EOF {
				return doc, nil
			}
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		d, err := fromNode(&root)
		if err != nil {
			return nil, err
		}
		doc = append(doc, d...)
	}
}

// LoadFile reads a stylesheet document from path.
func LoadFile(path string) (css.Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stylesheet: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}

// LoadString reads a stylesheet document from YAML text.
func LoadString(data string) (css.Dict, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(data), &root); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return fromNode(&root)
}

// fromNode converts a document or mapping node into a stylesheet
// document. Anything else at the top level is rejected.
func fromNode(node *yaml.Node) (css.Dict, error) {
	node = deref(node)
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = deref(node.Content[0])
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: stylesheet document must be a mapping, not %s", node.Line, kindName(node.Kind))
	}
	v, err := value(node)
	if err != nil {
		return nil, err
	}
	return v.(css.Dict), nil
}

// value converts one node into the engine's document model.
func value(node *yaml.Node) (any, error) {
	node = deref(node)
	switch node.Kind {
	case yaml.MappingNode:
		d := make(css.Dict, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := deref(node.Content[i])
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			v, err := value(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			if s, ok := v.(string); ok && len(s) > 1 && s[0] == '%' {
				v = css.Extend(s[1:])
			}
			d = append(d, css.Entry{Key: k.Value, Value: v})
		}
		return d, nil
	case yaml.SequenceNode:
		l := make(css.List, 0, len(node.Content))
		for _, item := range node.Content {
			item = deref(item)
			if item.Kind == yaml.SequenceNode {
				t := make(css.Tuple, 0, len(item.Content))
				for _, part := range item.Content {
					v, err := value(part)
					if err != nil {
						return nil, err
					}
					t = append(t, v)
				}
				l = append(l, t)
				continue
			}
			v, err := value(item)
			if err != nil {
				return nil, err
			}
			l = append(l, v)
		}
		return l, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		return node.Value, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node %s", node.Line, kindName(node.Kind))
	}
}

func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(k yaml.Kind) string {
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
	}
	return fmt.Sprintf("kind(%d)", int(k))
}
