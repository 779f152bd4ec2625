package descriptor

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/qyvip/utoipa/internal/naming"
)

// Enumer is implemented by Go types that enumerate their legal string
// values. The Reflector turns such types into enum descriptors instead
// of plain strings.
type Enumer interface {
	EnumValues() []string
}

// NamingStrategy controls how the Reflector derives descriptor names
// from Go type names.
type NamingStrategy int

const (
	// NameTypeOnly uses the bare Go type name unchanged.
	NameTypeOnly NamingStrategy = iota
	// NamePascalCase converts the type name to PascalCase.
	NamePascalCase
	// NameCamelCase converts the type name to camelCase.
	NameCamelCase
	// NameSnakeCase converts the type name to snake_case.
	NameSnakeCase
)

var (
	timeType   = reflect.TypeOf(time.Time{})
	enumerType = reflect.TypeOf((*Enumer)(nil)).Elem()
)

// Reflector derives type descriptors from Go values via reflection.
// The zero value is ready to use. A Reflector is not safe for
// concurrent use; share descriptors, not reflectors.
type Reflector struct {
	// Naming selects how struct type names become descriptor names.
	Naming NamingStrategy

	completed  map[reflect.Type]*Type
	inProgress map[reflect.Type]string
}

// TypeOf derives a descriptor from the dynamic type of v.
func (r *Reflector) TypeOf(v any) (*Type, error) {
	return r.FromType(reflect.TypeOf(v))
}

// FromType derives a descriptor from a reflect.Type. Recursive and
// mutually recursive struct types are legal; re-entering a struct
// already being walked produces a named reference, which the resolver
// later ties back to the registered shape.
func (r *Reflector) FromType(t reflect.Type) (*Type, error) {
	if t == nil {
		return nil, fmt.Errorf("reflect: nil type")
	}
	if r.completed == nil {
		r.completed = make(map[reflect.Type]*Type)
	}
	if r.inProgress == nil {
		r.inProgress = make(map[reflect.Type]string)
	}
	return r.fromType(t)
}

func (r *Reflector) fromType(t reflect.Type) (*Type, error) {
	nullable := false
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
		nullable = true
	}

	out, err := r.fromValueType(t)
	if err != nil {
		return nil, err
	}
	if nullable {
		clone := *out
		clone.Nullable = true
		out = &clone
	}
	return out, nil
}

func (r *Reflector) fromValueType(t reflect.Type) (*Type, error) {
	if done, ok := r.completed[t]; ok {
		return done, nil
	}
	if name, ok := r.inProgress[t]; ok {
		return NamedRef(name), nil
	}

	if t == timeType {
		return DateTime(), nil
	}
	if et, ok := r.enumOf(t); ok {
		r.completed[t] = et
		return et, nil
	}

	switch t.Kind() {
	case reflect.String:
		return String(), nil
	case reflect.Bool:
		return Bool(), nil
	case reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return Int32(), nil
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return Int64(), nil
	case reflect.Float32:
		return Primitive("number", "float"), nil
	case reflect.Float64:
		return Float64(), nil
	case reflect.Slice, reflect.Array:
		items, err := r.fromType(t.Elem())
		if err != nil {
			return nil, err
		}
		return Array(items), nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("reflect: map key of %s must be a string, got %s", t, t.Key())
		}
		val, err := r.fromType(t.Elem())
		if err != nil {
			return nil, err
		}
		obj := &Type{Kind: KindObject, Additional: val}
		return obj, nil
	case reflect.Interface:
		return Any(), nil
	case reflect.Struct:
		return r.fromStruct(t)
	default:
		return nil, fmt.Errorf("reflect: unsupported kind %s for %s", t.Kind(), t)
	}
}

func (r *Reflector) fromStruct(t reflect.Type) (*Type, error) {
	name := r.nameFor(t)
	r.inProgress[t] = name

	fields, err := r.structFields(t)
	if err != nil {
		delete(r.inProgress, t)
		return nil, err
	}

	obj := Object(name, fields...)
	delete(r.inProgress, t)
	r.completed[t] = obj
	return obj, nil
}

func (r *Reflector) structFields(t reflect.Type) ([]Field, error) {
	var out []Field
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		// Anonymous embedded structs without an explicit tag name
		// flatten into the parent, matching encoding/json.
		if sf.Anonymous && name == "" {
			ft := sf.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				embedded, err := r.structFields(ft)
				if err != nil {
					return nil, err
				}
				out = append(out, embedded...)
				continue
			}
		}

		if name == "" {
			name = sf.Name
		}

		ft, err := r.fromType(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), sf.Name, err)
		}

		optional := sf.Type.Kind() == reflect.Pointer || hasOption(opts, "omitempty") || hasOption(opts, "omitzero")
		out = append(out, Field{
			Name:     name,
			Type:     ft,
			Optional: optional,
		})
	}
	return out, nil
}

func (r *Reflector) enumOf(t reflect.Type) (*Type, bool) {
	if t.Kind() != reflect.String {
		return nil, false
	}
	var values []string
	switch {
	case t.Implements(enumerType):
		values = reflect.New(t).Elem().Interface().(Enumer).EnumValues()
	case reflect.PointerTo(t).Implements(enumerType):
		values = reflect.New(t).Interface().(Enumer).EnumValues()
	default:
		return nil, false
	}
	return Enum(r.applyNaming(t.Name()), values...), true
}

func (r *Reflector) nameFor(t reflect.Type) string {
	return r.applyNaming(t.Name())
}

func (r *Reflector) applyNaming(name string) string {
	switch r.Naming {
	case NamePascalCase:
		return naming.ToPascalCase(name)
	case NameCamelCase:
		return naming.ToCamelCase(name)
	case NameSnakeCase:
		return naming.ToSnakeCase(name)
	default:
		return name
	}
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == want {
			return true
		}
	}
	return false
}
