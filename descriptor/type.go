package descriptor

// Kind discriminates the variants of a type descriptor.
type Kind string

const (
	// KindPrimitive describes a scalar: string, integer, number, boolean.
	KindPrimitive Kind = "primitive"
	// KindObject describes a named or anonymous object with ordered fields.
	KindObject Kind = "object"
	// KindArray describes a homogeneous collection.
	KindArray Kind = "array"
	// KindEnum describes a named string enumeration.
	KindEnum Kind = "enum"
	// KindRef names a shape already known (or about to be known) by name.
	KindRef Kind = "ref"
	// KindOneOf describes a value matching exactly one of several shapes.
	KindOneOf Kind = "oneOf"
	// KindAllOf describes a value matching all of several shapes.
	KindAllOf Kind = "allOf"
	// KindAny describes an unconstrained value.
	KindAny Kind = "any"
)

// Type is a tagged node describing a data shape. Which fields are
// meaningful depends on Kind; the constructors below populate them
// consistently.
type Type struct {
	Kind        Kind
	Name        string // object/enum/ref name; empty for anonymous objects
	Description string

	// KindPrimitive
	Primitive string // "string", "integer", "number", "boolean"
	Format    string // e.g. "int64", "date-time", "uuid"

	// KindObject
	Fields     []Field
	Additional *Type // value shape for map-like objects

	// KindArray
	Items *Type

	// KindEnum
	Variants []string

	// KindOneOf, KindAllOf
	Subtypes []*Type

	Nullable bool
}

// Field is one named member of an object descriptor. Field order is
// preserved through resolution into the serialized document.
type Field struct {
	Name        string
	Type        *Type
	Optional    bool
	Description string
}

// Primitive creates a scalar descriptor.
func Primitive(primitive, format string) *Type {
	return &Type{Kind: KindPrimitive, Primitive: primitive, Format: format}
}

// String creates a string descriptor.
func String() *Type { return Primitive("string", "") }

// Int32 creates a 32-bit integer descriptor.
func Int32() *Type { return Primitive("integer", "int32") }

// Int64 creates a 64-bit integer descriptor.
func Int64() *Type { return Primitive("integer", "int64") }

// Float64 creates a double-precision number descriptor.
func Float64() *Type { return Primitive("number", "double") }

// Bool creates a boolean descriptor.
func Bool() *Type { return Primitive("boolean", "") }

// DateTime creates an RFC 3339 timestamp descriptor.
func DateTime() *Type { return Primitive("string", "date-time") }

// Object creates a named object descriptor with ordered fields.
// An empty name produces an anonymous (inline) object.
func Object(name string, fields ...Field) *Type {
	return &Type{Kind: KindObject, Name: name, Fields: fields}
}

// F creates a required field.
func F(name string, t *Type) Field {
	return Field{Name: name, Type: t}
}

// Opt creates an optional field.
func Opt(name string, t *Type) Field {
	return Field{Name: name, Type: t, Optional: true}
}

// Array creates an array descriptor.
func Array(items *Type) *Type {
	return &Type{Kind: KindArray, Items: items}
}

// Enum creates a named string enumeration descriptor with ordered
// variant labels.
func Enum(name string, variants ...string) *Type {
	return &Type{Kind: KindEnum, Name: name, Variants: variants}
}

// NamedRef creates a reference to a shape known by name. The referenced
// shape must be registered by the time the document is finalized.
func NamedRef(name string) *Type {
	return &Type{Kind: KindRef, Name: name}
}

// OneOf creates a composition matching exactly one of the subtypes.
func OneOf(subtypes ...*Type) *Type {
	return &Type{Kind: KindOneOf, Subtypes: subtypes}
}

// AllOf creates a composition matching all of the subtypes.
func AllOf(subtypes ...*Type) *Type {
	return &Type{Kind: KindAllOf, Subtypes: subtypes}
}

// Any creates an unconstrained descriptor.
func Any() *Type { return &Type{Kind: KindAny} }

// WithDescription returns a shallow copy of the descriptor carrying
// the given documentation text.
func (t *Type) WithDescription(desc string) *Type {
	clone := *t
	clone.Description = desc
	return &clone
}
