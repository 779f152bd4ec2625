package spec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestMap_SetGetDelete(t *testing.T) {
	m := NewMap[int]()
	m.Set("b", 2).Set("a", 1).Set("c", 3)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys(), "insertion order preserved")

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	// Replacing a key keeps its original position.
	m.Set("a", 10)
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	v, _ = m.Get("a")
	assert.Equal(t, 10, v)

	m.Delete("a")
	assert.Equal(t, []string{"b", "c"}, m.Keys())
	assert.False(t, m.Has("a"))

	// Deleting a missing key is a no-op.
	m.Delete("missing")
	assert.Equal(t, 2, m.Len())
}

func TestMap_NilSafeReads(t *testing.T) {
	var m *Map[string]
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("x"))
	assert.Nil(t, m.Keys())
	_, ok := m.Get("x")
	assert.False(t, ok)
}

func TestMap_All(t *testing.T) {
	m := NewMap[string]()
	m.Set("first", "1").Set("second", "2")

	var keys []string
	for k, v := range m.All() {
		keys = append(keys, k)
		assert.NotEmpty(t, v)
	}
	assert.Equal(t, []string{"first", "second"}, keys)
}

func TestMap_MarshalJSON_OrderPreserved(t *testing.T) {
	m := NewMap[int]()
	m.Set("zebra", 1).Set("apple", 2).Set("mango", 3)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"apple":2,"mango":3}`, string(data))
}

func TestMap_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(NewMap[int]())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestMap_MarshalYAML_OrderPreserved(t *testing.T) {
	m := NewMap[int]()
	m.Set("zebra", 1).Set("apple", 2)

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "zebra: 1\napple: 2\n", string(data))
}

func TestMap_MarshalJSON_NestedValues(t *testing.T) {
	m := NewMap[*Schema]()
	m.Set("name", &Schema{Type: "string"})
	m.Set("age", &Schema{Type: "integer", Format: "int32"})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":{"type":"string"},"age":{"type":"integer","format":"int32"}}`, string(data))

	// Key order is observable, not just set membership.
	assert.Equal(t, `{"name":{"type":"string"},"age":{"type":"integer","format":"int32"}}`, string(data))
}
