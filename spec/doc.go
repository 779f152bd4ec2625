// Package spec defines the value types of an OpenAPI 3.x document:
// the Info block, Components, Paths, Operations, Parameters, Responses,
// security schemes, and the Schema nodes they reference.
//
// The model preserves insertion order wherever ordering is observable
// in the serialized output: component schemas, schema properties, path
// templates, operations within a path item, and response status codes
// all serialize in the order they were added. Ordered collections use
// the Map type, which implements both json.Marshaler and yaml.Marshaler.
//
// Documents are assembled by the builder package and are plain data
// once returned; nothing in this package mutates a document after
// construction.
package spec
