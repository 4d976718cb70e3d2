// Package config loads CLI settings and custom component documents.
//
// A component document declares extra components in YAML:
//
//	version: "1"
//	components:
//	  - name: hero
//	    level: molecule
//	    base: "flex flex-col"
//	    axes:
//	      tone:
//	        calm: "bg-info-50"
//	        loud: "bg-danger text-white"
//	    defaults:
//	      tone: calm
//	    compound:
//	      - when: {tone: loud}
//	        classes: "font-bold"
//
// Axis and value order in the document is the order used for resolution.
package config

import (
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// DocumentVersion is the only document version understood by this build.
const DocumentVersion = "1"

// Document is a component document.
type Document struct {
	Version    string      `yaml:"version" json:"version" validate:"required,eq=1" jsonschema:"required,enum=1"`
	Components []Component `yaml:"components" json:"components" validate:"required,min=1,dive" jsonschema:"required,minItems=1"`
}

// Component declares one custom component.
type Component struct {
	Name     string            `yaml:"name" json:"name" validate:"required,ident" jsonschema:"required,pattern=^[a-z0-9][a-z0-9_-]*$"`
	Level    string            `yaml:"level,omitempty" json:"level,omitempty" validate:"omitempty,oneof=atom molecule" jsonschema:"enum=atom,enum=molecule"`
	Summary  string            `yaml:"summary,omitempty" json:"summary,omitempty"`
	Base     string            `yaml:"base,omitempty" json:"base,omitempty" validate:"class_tokens" jsonschema:"description=Classes always applied"`
	Axes     AxisList          `yaml:"axes,omitempty" json:"axes,omitempty" validate:"dive"`
	Defaults map[string]string `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Compound []CompoundRule    `yaml:"compound,omitempty" json:"compound,omitempty" validate:"dive"`
}

// Axis is one named dimension of a component with its ordered values.
type Axis struct {
	Name   string  `validate:"required,ident"`
	Values []Value `validate:"required,min=1,dive"`
	Line   int     `validate:"-"`
}

// Value is one choice on an axis.
type Value struct {
	Name    string `validate:"required,ident"`
	Classes string `validate:"class_tokens"`
}

// CompoundRule applies Classes when every entry of When matches the selection.
type CompoundRule struct {
	When    map[string]string `yaml:"when" json:"when" validate:"required,min=1" jsonschema:"required,minProperties=1"`
	Classes string            `yaml:"classes" json:"classes" validate:"class_tokens"`
}

// AxisList keeps axes in document order. In YAML it is a mapping of axis name
// to a mapping of value name to classes.
type AxisList []Axis

// UnmarshalYAML walks the mapping node directly so declaration order survives.
func (l *AxisList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return nodeErrorf(node, "axes must be a mapping of axis name to values")
	}

	seen := make(map[string]struct{}, len(node.Content)/2)
	axes := make(AxisList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, body := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nodeErrorf(key, "axis name must be a string")
		}
		if _, dup := seen[key.Value]; dup {
			return nodeErrorf(key, "axis %q declared twice", key.Value)
		}
		seen[key.Value] = struct{}{}

		values, err := decodeValues(key.Value, body)
		if err != nil {
			return err
		}
		axes = append(axes, Axis{Name: key.Value, Values: values, Line: key.Line})
	}

	*l = axes
	return nil
}

// MarshalYAML writes the axes back as an ordered mapping.
func (l AxisList) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, axis := range l {
		values := &yaml.Node{Kind: yaml.MappingNode}
		for _, v := range axis.Values {
			values.Content = append(values.Content,
				strNode(v.Name),
				strNode(v.Classes),
			)
		}
		root.Content = append(root.Content, strNode(axis.Name), values)
	}
	return root, nil
}

func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// JSONSchema describes the YAML shape of AxisList.
func (AxisList) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "Axis name to an ordered mapping of value name to classes",
		AdditionalProperties: &jsonschema.Schema{
			Type:                 "object",
			MinProperties:        ptr(uint64(1)),
			AdditionalProperties: &jsonschema.Schema{Type: "string"},
		},
	}
}

func decodeValues(axis string, node *yaml.Node) ([]Value, error) {
	if node.Kind != yaml.MappingNode {
		return nil, nodeErrorf(node, "axis %q must map value names to classes", axis)
	}

	seen := make(map[string]struct{}, len(node.Content)/2)
	values := make([]Value, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, body := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, nodeErrorf(key, "value names of axis %q must be strings", axis)
		}
		if _, dup := seen[key.Value]; dup {
			return nil, nodeErrorf(key, "value %q declared twice on axis %q", key.Value, axis)
		}
		seen[key.Value] = struct{}{}

		classes, err := decodeClasses(body)
		if err != nil {
			return nil, err
		}
		values = append(values, Value{Name: key.Value, Classes: classes})
	}
	return values, nil
}

// decodeClasses accepts a string, null, or a list of strings.
func decodeClasses(node *yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return "", nil
		}
		return node.Value, nil
	case yaml.SequenceNode:
		var tokens []string
		if err := node.Decode(&tokens); err != nil {
			return "", nodeErrorf(node, "classes must be a string or a list of strings")
		}
		return strings.Join(tokens, " "), nil
	}
	return "", nodeErrorf(node, "classes must be a string or a list of strings")
}

// nodeError carries the position of a structural problem in a document.
type nodeError struct {
	Line    int
	Column  int
	Message string
}

func (e *nodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func nodeErrorf(node *yaml.Node, format string, args ...any) error {
	return &nodeError{Line: node.Line, Column: node.Column, Message: fmt.Sprintf(format, args...)}
}

func ptr[T any](v T) *T { return &v }
