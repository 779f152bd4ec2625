package builder

import "github.com/qyvip/utoipa/spec"

// checkReferences validates every schema reference in the final
// document. The before set holds the names that were already dangling
// when assembly finished, so blame lands correctly: a reference broken
// before modifiers ran is a dangling reference, one broken by a
// modifier is a modifier-induced inconsistency. A reference a modifier
// repaired reports nothing.
func checkReferences(doc *spec.Document, before map[string]bool, report func(*Diagnostic)) {
	for _, name := range danglingRefs(doc).order {
		if before == nil || before[name] {
			report(&Diagnostic{
				Kind:    KindDanglingReference,
				Subject: name,
				Message: "$ref to unregistered schema " + name,
			})
			continue
		}
		report(&Diagnostic{
			Kind:    KindModifierInducedInconsistency,
			Subject: name,
			Message: "modifier left a $ref to unregistered schema " + name,
		})
	}
}

// nameSet records names in first-encounter order.
type nameSet struct {
	seen  map[string]bool
	order []string
}

func newNameSet() *nameSet {
	return &nameSet{seen: make(map[string]bool)}
}

func (s *nameSet) add(name string) {
	if s.seen[name] {
		return
	}
	s.seen[name] = true
	s.order = append(s.order, name)
}

// danglingRefs collects every referenced schema name that is missing
// from components.schemas.
func danglingRefs(doc *spec.Document) *nameSet {
	refs := newNameSet()
	w := refWalker{visit: refs.add}
	w.document(doc)

	out := newNameSet()
	for _, name := range refs.order {
		if doc.Components == nil || !doc.Components.Schemas.Has(name) {
			out.add(name)
		}
	}
	return out
}

// refWalker visits every schema node reachable from a document and
// reports each component schema reference it finds.
type refWalker struct {
	visit func(name string)
}

func (w refWalker) document(doc *spec.Document) {
	if doc.Components != nil {
		for _, s := range doc.Components.Schemas.All() {
			w.schema(s)
		}
		for _, p := range doc.Components.Parameters.All() {
			w.schema(p.Schema)
		}
		for _, r := range doc.Components.Responses.All() {
			w.response(r)
		}
	}
	if doc.Paths == nil {
		return
	}
	for _, item := range doc.Paths.All() {
		for _, p := range item.Parameters {
			w.schema(p.Schema)
		}
		for _, op := range item.Operations.All() {
			w.operation(op)
		}
	}
}

func (w refWalker) operation(op *spec.Operation) {
	for _, p := range op.Parameters {
		w.schema(p.Schema)
	}
	if op.RequestBody != nil {
		w.content(op.RequestBody.Content)
	}
	if op.Responses != nil {
		for _, r := range op.Responses.Codes.All() {
			w.response(r)
		}
		w.response(op.Responses.Default)
	}
}

func (w refWalker) response(r *spec.Response) {
	if r == nil {
		return
	}
	w.content(r.Content)
	if r.Headers != nil {
		for _, h := range r.Headers.All() {
			w.schema(h.Schema)
		}
	}
}

func (w refWalker) content(c *spec.Map[*spec.MediaType]) {
	for _, mt := range c.All() {
		w.schema(mt.Schema)
	}
}

func (w refWalker) schema(s *spec.Schema) {
	if s == nil {
		return
	}
	if name := s.RefName(); name != "" {
		w.visit(name)
	}
	if s.Properties != nil {
		for _, p := range s.Properties.All() {
			w.schema(p)
		}
	}
	w.schema(s.Items)
	w.schema(s.AdditionalProperties)
	for _, sub := range s.OneOf {
		w.schema(sub)
	}
	for _, sub := range s.AllOf {
		w.schema(sub)
	}
}
