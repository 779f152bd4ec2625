package spec

import (
	"reflect"
	"strings"
)

// SchemaRefPrefix is the reference prefix for named schemas in
// components.schemas.
const SchemaRefPrefix = "#/components/schemas/"

// Schema represents a resolved schema node: a primitive, object, array,
// composition (oneOf/allOf/enum), or a $ref to a named schema in
// components.schemas.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`

	// Type and format
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Object validation. Properties preserves insertion order.
	Properties           *Map[*Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string      `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties *Schema       `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`

	// Array validation
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	// Composition
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`

	// OAS extensions
	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
}

// RefTo creates a schema that references a named schema in
// components.schemas.
func RefTo(name string) *Schema {
	return &Schema{Ref: SchemaRefPrefix + name}
}

// IsRef reports whether the schema is a reference node.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// RefName returns the component schema name a reference points to, or
// "" if the schema is not a reference into components.schemas.
func (s *Schema) RefName() string {
	if s == nil || !strings.HasPrefix(s.Ref, SchemaRefPrefix) {
		return ""
	}
	return s.Ref[len(SchemaRefPrefix):]
}

// Equal reports deep structural equality of two schema nodes,
// including property order. It is used to distinguish a benign
// re-registration of the same shape from a genuine name conflict.
func (s *Schema) Equal(other *Schema) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Ref != other.Ref ||
		s.Title != other.Title ||
		s.Description != other.Description ||
		s.Type != other.Type ||
		s.Format != other.Format ||
		s.Nullable != other.Nullable ||
		s.Deprecated != other.Deprecated ||
		s.ReadOnly != other.ReadOnly ||
		s.WriteOnly != other.WriteOnly {
		return false
	}
	if !reflect.DeepEqual(s.Default, other.Default) ||
		!reflect.DeepEqual(s.Example, other.Example) ||
		!reflect.DeepEqual(s.Enum, other.Enum) ||
		!reflect.DeepEqual(s.Required, other.Required) {
		return false
	}
	if !s.Items.Equal(other.Items) || !s.AdditionalProperties.Equal(other.AdditionalProperties) {
		return false
	}
	if !schemasEqual(s.OneOf, other.OneOf) || !schemasEqual(s.AllOf, other.AllOf) {
		return false
	}
	return propertiesEqual(s.Properties, other.Properties)
}

// schemasEqual compares two schema slices element-wise.
func schemasEqual(a, b []*Schema) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// propertiesEqual compares two property maps including key order.
func propertiesEqual(a, b *Map[*Schema]) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	aKeys, bKeys := a.Keys(), b.Keys()
	for i, key := range aKeys {
		if key != bKeys[i] {
			return false
		}
		av, _ := a.Get(key)
		bv, _ := b.Get(key)
		if !av.Equal(bv) {
			return false
		}
	}
	return true
}
