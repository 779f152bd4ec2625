package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefTo(t *testing.T) {
	s := RefTo("Pet")
	assert.Equal(t, "#/components/schemas/Pet", s.Ref)
	assert.True(t, s.IsRef())
	assert.Equal(t, "Pet", s.RefName())
}

func TestRefName_NonRef(t *testing.T) {
	assert.Equal(t, "", (&Schema{Type: "string"}).RefName())
	assert.Equal(t, "", (&Schema{Ref: "#/definitions/Pet"}).RefName(), "non-component prefix")

	var nilSchema *Schema
	assert.Equal(t, "", nilSchema.RefName())
	assert.False(t, nilSchema.IsRef())
}

func objectSchema(fields ...[2]string) *Schema {
	props := NewMap[*Schema]()
	var required []string
	for _, f := range fields {
		props.Set(f[0], &Schema{Type: f[1]})
		required = append(required, f[0])
	}
	return &Schema{Type: "object", Properties: props, Required: required}
}

func TestSchemaEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Schema
		expected bool
	}{
		{
			name:     "identical primitives",
			a:        &Schema{Type: "integer", Format: "int64"},
			b:        &Schema{Type: "integer", Format: "int64"},
			expected: true,
		},
		{
			name:     "different formats",
			a:        &Schema{Type: "integer", Format: "int64"},
			b:        &Schema{Type: "integer", Format: "int32"},
			expected: false,
		},
		{
			name:     "identical objects",
			a:        objectSchema([2]string{"id", "integer"}, [2]string{"name", "string"}),
			b:        objectSchema([2]string{"id", "integer"}, [2]string{"name", "string"}),
			expected: true,
		},
		{
			name:     "different property sets",
			a:        objectSchema([2]string{"id", "integer"}),
			b:        objectSchema([2]string{"id", "integer"}, [2]string{"name", "string"}),
			expected: false,
		},
		{
			name:     "property order matters",
			a:        objectSchema([2]string{"id", "integer"}, [2]string{"name", "string"}),
			b:        objectSchema([2]string{"name", "string"}, [2]string{"id", "integer"}),
			expected: false,
		},
		{
			name:     "identical arrays",
			a:        &Schema{Type: "array", Items: RefTo("Pet")},
			b:        &Schema{Type: "array", Items: RefTo("Pet")},
			expected: true,
		},
		{
			name:     "different item refs",
			a:        &Schema{Type: "array", Items: RefTo("Pet")},
			b:        &Schema{Type: "array", Items: RefTo("Owner")},
			expected: false,
		},
		{
			name:     "identical enums",
			a:        &Schema{Type: "string", Enum: []any{"a", "b"}},
			b:        &Schema{Type: "string", Enum: []any{"a", "b"}},
			expected: true,
		},
		{
			name:     "enum order matters",
			a:        &Schema{Type: "string", Enum: []any{"a", "b"}},
			b:        &Schema{Type: "string", Enum: []any{"b", "a"}},
			expected: false,
		},
		{
			name:     "oneOf variants compared element-wise",
			a:        &Schema{OneOf: []*Schema{RefTo("Cat"), RefTo("Dog")}},
			b:        &Schema{OneOf: []*Schema{RefTo("Cat"), RefTo("Dog")}},
			expected: true,
		},
		{
			name:     "oneOf length mismatch",
			a:        &Schema{OneOf: []*Schema{RefTo("Cat")}},
			b:        &Schema{OneOf: []*Schema{RefTo("Cat"), RefTo("Dog")}},
			expected: false,
		},
		{
			name:     "nil vs non-nil",
			a:        nil,
			b:        &Schema{Type: "string"},
			expected: false,
		},
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equal(tt.a), "Equal should be symmetric")
		})
	}
}
