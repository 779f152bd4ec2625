package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qyvip/utoipa/descriptor"
	"github.com/qyvip/utoipa/spec"
)

func newTestResolver(t *testing.T) (*resolver, *Diagnostics) {
	t.Helper()
	var diags Diagnostics
	schemas := spec.NewMap[*spec.Schema]()
	return newResolver(schemas, func(d *Diagnostic) { diags = append(diags, d) }), &diags
}

func TestResolvePrimitives(t *testing.T) {
	tests := []struct {
		name   string
		input  *descriptor.Type
		expect *spec.Schema
	}{
		{name: "string", input: descriptor.String(), expect: &spec.Schema{Type: "string"}},
		{name: "int64", input: descriptor.Int64(), expect: &spec.Schema{Type: "integer", Format: "int64"}},
		{name: "bool", input: descriptor.Bool(), expect: &spec.Schema{Type: "boolean"}},
		{name: "date-time", input: descriptor.DateTime(), expect: &spec.Schema{Type: "string", Format: "date-time"}},
		{name: "any", input: descriptor.Any(), expect: &spec.Schema{}},
		{name: "nil", input: nil, expect: &spec.Schema{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, diags := newTestResolver(t)
			got := res.resolve(tc.input)
			assert.Equal(t, tc.expect, got)
			assert.Empty(t, *diags)
			assert.Zero(t, res.schemas.Len(), "primitives must not register components")
		})
	}
}

func TestResolveNamedObject(t *testing.T) {
	res, diags := newTestResolver(t)
	pet := descriptor.Object("Pet",
		descriptor.F("id", descriptor.Int64()),
		descriptor.F("name", descriptor.String()),
		descriptor.Opt("tag", descriptor.String()),
	)

	got := res.resolve(pet)
	require.True(t, got.IsRef())
	assert.Equal(t, "Pet", got.RefName())
	assert.Empty(t, *diags)

	registered, ok := res.schemas.Get("Pet")
	require.True(t, ok)
	assert.Equal(t, "object", registered.Type)
	assert.Equal(t, []string{"id", "name", "tag"}, registered.Properties.Keys())
	assert.Equal(t, []string{"id", "name"}, registered.Required)
}

func TestResolveDeduplicatesIdenticalShapes(t *testing.T) {
	res, diags := newTestResolver(t)
	shape := func() *descriptor.Type {
		return descriptor.Object("Pet", descriptor.F("id", descriptor.Int64()))
	}

	res.resolve(shape())
	res.resolve(shape())

	assert.Equal(t, 1, res.schemas.Len())
	assert.Empty(t, *diags, "identical re-registration is not a conflict")
}

func TestResolveSchemaNameConflict(t *testing.T) {
	res, diags := newTestResolver(t)
	first := descriptor.Object("Pet", descriptor.F("id", descriptor.Int64()))
	second := descriptor.Object("Pet", descriptor.F("name", descriptor.String()))

	res.resolve(first)
	res.resolve(second)

	require.Len(t, *diags, 1)
	d := (*diags)[0]
	assert.Equal(t, KindSchemaNameConflict, d.Kind)
	assert.Equal(t, "Pet", d.Subject)

	// First registration wins.
	registered, _ := res.schemas.Get("Pet")
	assert.Equal(t, []string{"id"}, registered.Properties.Keys())
}

func TestResolveSelfReferentialType(t *testing.T) {
	res, diags := newTestResolver(t)
	node := descriptor.Object("Node", descriptor.F("value", descriptor.String()))
	node.Fields = append(node.Fields, descriptor.Opt("children", descriptor.Array(node)))

	got := res.resolve(node)
	require.True(t, got.IsRef())
	assert.Empty(t, *diags)

	registered, ok := res.schemas.Get("Node")
	require.True(t, ok)
	children, ok := registered.Properties.Get("children")
	require.True(t, ok)
	assert.Equal(t, "array", children.Type)
	assert.Equal(t, "Node", children.Items.RefName())
}

func TestResolveMutuallyRecursiveTypes(t *testing.T) {
	res, diags := newTestResolver(t)
	a := descriptor.Object("A")
	bType := descriptor.Object("B", descriptor.Opt("a", a))
	a.Fields = []descriptor.Field{descriptor.Opt("b", bType)}

	res.resolve(a)
	assert.Empty(t, *diags)
	assert.Equal(t, []string{"A", "B"}, res.schemas.Keys())

	regA, _ := res.schemas.Get("A")
	fieldB, _ := regA.Properties.Get("b")
	assert.Equal(t, "B", fieldB.RefName())
	regB, _ := res.schemas.Get("B")
	fieldA, _ := regB.Properties.Get("a")
	assert.Equal(t, "A", fieldA.RefName())
}

func TestResolveEnum(t *testing.T) {
	res, diags := newTestResolver(t)
	got := res.resolve(descriptor.Enum("Status", "available", "pending", "sold"))

	require.True(t, got.IsRef())
	assert.Equal(t, "Status", got.RefName())
	assert.Empty(t, *diags)

	registered, ok := res.schemas.Get("Status")
	require.True(t, ok)
	assert.Equal(t, "string", registered.Type)
	assert.Equal(t, []any{"available", "pending", "sold"}, registered.Enum)
}

func TestResolveNullableRefWrapsInAllOf(t *testing.T) {
	res, _ := newTestResolver(t)
	ref := descriptor.NamedRef("Pet")
	ref.Nullable = true

	got := res.resolve(ref)
	assert.False(t, got.IsRef())
	assert.True(t, got.Nullable)
	require.Len(t, got.AllOf, 1)
	assert.Equal(t, "Pet", got.AllOf[0].RefName())
}

func TestResolveAnonymousObjectInlines(t *testing.T) {
	res, _ := newTestResolver(t)
	got := res.resolve(descriptor.Object("", descriptor.F("x", descriptor.Float64())))

	assert.False(t, got.IsRef())
	assert.Equal(t, "object", got.Type)
	assert.Equal(t, []string{"x"}, got.Properties.Keys())
	assert.Zero(t, res.schemas.Len())
}

func TestResolveCompositions(t *testing.T) {
	res, diags := newTestResolver(t)
	cat := descriptor.Object("Cat", descriptor.F("meow", descriptor.Bool()))
	dog := descriptor.Object("Dog", descriptor.F("bark", descriptor.Bool()))

	oneOf := res.resolve(descriptor.OneOf(cat, dog))
	require.Len(t, oneOf.OneOf, 2)
	assert.Equal(t, "Cat", oneOf.OneOf[0].RefName())
	assert.Equal(t, "Dog", oneOf.OneOf[1].RefName())
	assert.Empty(t, *diags)
	// Named subtypes of a composition still register as components.
	assert.Equal(t, []string{"Cat", "Dog"}, res.schemas.Keys())

	allOf := res.resolve(descriptor.AllOf(descriptor.NamedRef("Cat"), descriptor.Object("", descriptor.F("age", descriptor.Int32()))))
	require.Len(t, allOf.AllOf, 2)
	assert.Equal(t, "Cat", allOf.AllOf[0].RefName())
	assert.Equal(t, "object", allOf.AllOf[1].Type)
}

func TestResolveMapShape(t *testing.T) {
	res, _ := newTestResolver(t)
	m := &descriptor.Type{Kind: descriptor.KindObject, Additional: descriptor.Int64()}
	got := res.resolve(m)

	assert.Equal(t, "object", got.Type)
	require.NotNil(t, got.AdditionalProperties)
	assert.Equal(t, "integer", got.AdditionalProperties.Type)
}

func TestResolveRegistrationOrderIsFirstEncounter(t *testing.T) {
	res, _ := newTestResolver(t)
	inner := descriptor.Object("Inner", descriptor.F("x", descriptor.String()))
	outer := descriptor.Object("Outer", descriptor.F("inner", inner))

	res.resolve(outer)
	// Outer reserves its slot before its fields expand.
	assert.Equal(t, []string{"Outer", "Inner"}, res.schemas.Keys())
}
