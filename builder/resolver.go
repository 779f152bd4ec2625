package builder

import (
	"github.com/qyvip/utoipa/descriptor"
	"github.com/qyvip/utoipa/spec"
)

// resolver turns type descriptors into schema nodes, hoisting named
// shapes into a shared components registry. Named shapes register
// exactly once; later registrations under the same name either
// deduplicate (identical shape) or lose first-wins with a diagnostic.
type resolver struct {
	schemas    *spec.Map[*spec.Schema]
	inProgress map[string]bool
	report     func(*Diagnostic)
}

func newResolver(schemas *spec.Map[*spec.Schema], report func(*Diagnostic)) *resolver {
	return &resolver{
		schemas:    schemas,
		inProgress: make(map[string]bool),
		report:     report,
	}
}

// resolve returns the schema node to embed at a usage site. Named
// objects and enums come back as $ref nodes; everything else inlines.
func (r *resolver) resolve(t *descriptor.Type) *spec.Schema {
	if t == nil {
		return &spec.Schema{}
	}
	switch t.Kind {
	case descriptor.KindPrimitive:
		return &spec.Schema{
			Type:        t.Primitive,
			Format:      t.Format,
			Description: t.Description,
			Nullable:    t.Nullable,
		}
	case descriptor.KindAny:
		return &spec.Schema{Description: t.Description, Nullable: t.Nullable}
	case descriptor.KindArray:
		return &spec.Schema{
			Type:        "array",
			Items:       r.resolve(t.Items),
			Description: t.Description,
			Nullable:    t.Nullable,
		}
	case descriptor.KindRef:
		return r.refTo(t.Name, t.Nullable)
	case descriptor.KindOneOf:
		return &spec.Schema{
			OneOf:       r.resolveAll(t.Subtypes),
			Description: t.Description,
			Nullable:    t.Nullable,
		}
	case descriptor.KindAllOf:
		return &spec.Schema{
			AllOf:       r.resolveAll(t.Subtypes),
			Description: t.Description,
			Nullable:    t.Nullable,
		}
	case descriptor.KindEnum:
		r.register(t.Name, func() *spec.Schema { return enumSchema(t) })
		return r.refTo(t.Name, t.Nullable)
	case descriptor.KindObject:
		if t.Name == "" {
			return r.objectSchema(t)
		}
		r.register(t.Name, func() *spec.Schema { return r.objectSchema(t) })
		return r.refTo(t.Name, t.Nullable)
	default:
		return &spec.Schema{}
	}
}

// resolveAll resolves a composition's subtypes in declaration order.
func (r *resolver) resolveAll(subtypes []*descriptor.Type) []*spec.Schema {
	out := make([]*spec.Schema, len(subtypes))
	for i, sub := range subtypes {
		out[i] = r.resolve(sub)
	}
	return out
}

// register places the expanded form of a named shape into the
// registry. A placeholder reserves the name's position before
// expansion so that cyclic shapes re-entering through register come
// back as references instead of recursing forever.
func (r *resolver) register(name string, expand func() *spec.Schema) {
	if r.inProgress[name] {
		return
	}
	first, exists := r.schemas.Get(name)

	r.inProgress[name] = true
	if !exists {
		r.schemas.Set(name, &spec.Schema{})
	}
	candidate := expand()
	delete(r.inProgress, name)

	if !exists {
		r.schemas.Set(name, candidate)
		return
	}
	if !first.Equal(candidate) {
		r.report(&Diagnostic{
			Kind:    KindSchemaNameConflict,
			Subject: name,
			Message: "schema " + name + " registered with a different shape; keeping the first",
		})
	}
}

// refTo returns a reference node for a registered name. A nullable
// reference wraps the $ref in allOf so the nullable flag has a legal
// sibling position.
func (r *resolver) refTo(name string, nullable bool) *spec.Schema {
	ref := spec.RefTo(name)
	if !nullable {
		return ref
	}
	return &spec.Schema{AllOf: []*spec.Schema{ref}, Nullable: true}
}

// objectSchema expands an object descriptor into its inline form,
// resolving every field in declaration order.
func (r *resolver) objectSchema(t *descriptor.Type) *spec.Schema {
	s := &spec.Schema{
		Type:        "object",
		Description: t.Description,
		Nullable:    t.Name == "" && t.Nullable,
	}
	if len(t.Fields) > 0 {
		s.Properties = spec.NewMap[*spec.Schema]()
		for _, f := range t.Fields {
			prop := r.resolve(f.Type)
			if f.Description != "" && prop.Ref == "" {
				prop.Description = f.Description
			}
			s.Properties.Set(f.Name, prop)
			if !f.Optional {
				s.Required = append(s.Required, f.Name)
			}
		}
	}
	if t.Additional != nil {
		s.AdditionalProperties = r.resolve(t.Additional)
	}
	return s
}

// enumSchema expands a string enumeration into its inline form.
func enumSchema(t *descriptor.Type) *spec.Schema {
	values := make([]any, len(t.Variants))
	for i, v := range t.Variants {
		values[i] = v
	}
	return &spec.Schema{
		Type:        "string",
		Enum:        values,
		Description: t.Description,
	}
}
