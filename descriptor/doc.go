// Package descriptor defines the normalized inputs consumed by the
// builder package: type descriptors describing data shapes and handler
// descriptors describing HTTP endpoints.
//
// Descriptors can be constructed three ways:
//
//   - literally, with the Type and Handler structs;
//   - with the convenience constructors (Object, Array, Enum, String,
//     Int64, ...);
//   - via reflection from Go types with a Reflector, which maps struct
//     fields, json tags, pointers, and omitempty options onto object
//     descriptors the same way encoding/json would serialize them.
//
// Type descriptors may reference themselves or each other by name,
// directly or through NamedRef; cyclic shapes are legal and are broken
// by the builder during resolution.
package descriptor
