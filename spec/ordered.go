package spec

import (
	"bytes"
	"encoding/json"
	"iter"

	"go.yaml.in/yaml/v4"
)

// Map is a string-keyed map that preserves insertion order.
// It backs every collection in the document model whose key order is
// part of the observable output: schema properties, component schemas,
// paths, operations, and response codes.
//
// The zero value is not usable; create instances with NewMap.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// NewMap creates an empty ordered map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{
		values: make(map[string]V),
	}
}

// Set inserts or replaces the value for key. A replaced key keeps its
// original position. Returns the map for chaining.
func (m *Map[V]) Set(key string, value V) *Map[V] {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get returns the value for key and whether it is present.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Delete removes key if present, preserving the order of remaining keys.
func (m *Map[V]) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// All iterates over entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, emitting a mapping node with
// keys in insertion order.
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil {
		return node, nil
	}
	for _, key := range m.keys {
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, strNode(key), valNode)
	}
	return node, nil
}

// strNode creates a string scalar yaml.Node.
func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
