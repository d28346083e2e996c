package table

import (
	"gopkg.in/yaml.v3"

	"rsccard/internal/domain"
)

// YAML is a table decoded from a YAML mapping of columns, in document order.
type YAML struct {
	fields  []string
	columns map[string]*yaml.Node
}

// FromYAML parses data as a YAML mapping from field names to sequences.
func FromYAML(data []byte) (*YAML, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.ErrValidation("table is not valid YAML: %v", err)
	}

	t := &YAML{columns: map[string]*yaml.Node{}}
	if doc.Kind == 0 {
		return t, nil
	}
	root := resolveAlias(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolveAlias(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, domain.ErrValidation("table must be a YAML mapping of columns")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if _, dup := t.columns[name]; !dup {
			t.fields = append(t.fields, name)
		}
		t.columns[name] = resolveAlias(root.Content[i+1])
	}
	return t, nil
}

// Fields implements Table.
func (t *YAML) Fields() []string { return t.fields }

// Column implements Table.
func (t *YAML) Column(field string) ([]any, bool) {
	node, ok := t.columns[field]
	if !ok || node.Kind != yaml.SequenceNode {
		return nil, false
	}
	values := make([]any, len(node.Content))
	for i, elem := range node.Content {
		var v any
		if err := elem.Decode(&v); err != nil {
			v = elem.Value
		}
		values[i] = v
	}
	return values, true
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
