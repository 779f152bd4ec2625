package builder

import (
	"strconv"

	"github.com/qyvip/utoipa/descriptor"
	"github.com/qyvip/utoipa/internal/httputil"
	"github.com/qyvip/utoipa/internal/pathutil"
	"github.com/qyvip/utoipa/spec"
)

// DefaultOpenAPIVersion is the version stamped on built documents
// unless overridden with WithOpenAPIVersion.
const DefaultOpenAPIVersion = "3.1.0"

// Builder accumulates descriptors and produces an OpenAPI document.
// Registration methods chain; call Build once everything is
// registered. A Builder is not safe for concurrent use; wrap it in a
// Provider when multiple goroutines need the finished document.
type Builder struct {
	openAPIVersion string
	info           spec.Info
	servers        []*spec.Server
	tags           []*spec.Tag
	externalDocs   *spec.ExternalDocs
	security       []spec.SecurityRequirement

	securitySchemes *spec.Map[*spec.SecurityScheme]
	types           []*descriptor.Type
	handlers        []*descriptor.Handler
	modifiers       []Modifier

	diags Diagnostics
}

// NewBuilder creates a Builder with the given API title and version.
func NewBuilder(title, version string, opts ...Option) *Builder {
	b := &Builder{
		openAPIVersion:  DefaultOpenAPIVersion,
		info:            spec.Info{Title: title, Version: version},
		securitySchemes: spec.NewMap[*spec.SecurityScheme](),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetDescription sets the API description.
func (b *Builder) SetDescription(desc string) *Builder {
	b.info.Description = desc
	return b
}

// SetSummary sets the API summary.
func (b *Builder) SetSummary(summary string) *Builder {
	b.info.Summary = summary
	return b
}

// SetTermsOfService sets the terms of service URL.
func (b *Builder) SetTermsOfService(url string) *Builder {
	b.info.TermsOfService = url
	return b
}

// SetContact sets the API contact block.
func (b *Builder) SetContact(name, url, email string) *Builder {
	b.info.Contact = &spec.Contact{Name: name, URL: url, Email: email}
	return b
}

// SetLicense sets the API license block.
func (b *Builder) SetLicense(name, url string) *Builder {
	b.info.License = &spec.License{Name: name, URL: url}
	return b
}

// SetExternalDocs sets the document-level external documentation link.
func (b *Builder) SetExternalDocs(url, desc string) *Builder {
	b.externalDocs = &spec.ExternalDocs{URL: url, Description: desc}
	return b
}

// AddServer appends a server entry.
func (b *Builder) AddServer(url, desc string) *Builder {
	b.servers = append(b.servers, &spec.Server{URL: url, Description: desc})
	return b
}

// AddTag appends a tag definition.
func (b *Builder) AddTag(name, desc string) *Builder {
	b.tags = append(b.tags, &spec.Tag{Name: name, Description: desc})
	return b
}

// SetSecurity sets the document-level security requirements.
func (b *Builder) SetSecurity(reqs ...spec.SecurityRequirement) *Builder {
	b.security = reqs
	return b
}

// AddSecurityScheme registers a named security scheme.
func (b *Builder) AddSecurityScheme(name string, scheme *spec.SecurityScheme) *Builder {
	b.securitySchemes.Set(name, scheme)
	return b
}

// AddSchema registers a type descriptor ahead of any handler that
// references it. Registration order fixes the schema's position in
// components.schemas.
func (b *Builder) AddSchema(t *descriptor.Type) *Builder {
	b.types = append(b.types, t)
	return b
}

// AddHandler registers a handler descriptor. Handlers assemble into
// paths in registration order.
func (b *Builder) AddHandler(h *descriptor.Handler) *Builder {
	b.handlers = append(b.handlers, h)
	return b
}

// AddModifier registers a callback that mutates the document after
// assembly. Modifiers run in registration order; registering the same
// modifier twice runs it twice.
func (b *Builder) AddModifier(m Modifier) *Builder {
	b.modifiers = append(b.modifiers, m)
	return b
}

// Diagnostics returns the findings from the most recent Build, in the
// order they were recorded.
func (b *Builder) Diagnostics() Diagnostics {
	return b.diags
}

// Build assembles the document. The document is always returned, even
// on error, so callers can inspect what was produced; the error is
// non-nil when any fatal diagnostic (a dangling or modifier-induced
// reference) was recorded. Non-fatal conflicts resolve first-wins and
// appear in Diagnostics.
func (b *Builder) Build() (*spec.Document, error) {
	b.diags = nil
	report := func(d *Diagnostic) { b.diags = append(b.diags, d) }

	components := spec.NewComponents()
	res := newResolver(components.Schemas, report)
	for _, t := range b.types {
		res.resolve(t)
	}

	paths := b.assemblePaths(res, report)

	info := b.info
	doc := &spec.Document{
		OpenAPI:      b.openAPIVersion,
		Info:         &info,
		Servers:      b.servers,
		Tags:         b.tags,
		ExternalDocs: b.externalDocs,
		Security:     b.security,
	}
	if paths.Len() > 0 {
		doc.Paths = paths
	}
	for name, scheme := range b.securitySchemes.All() {
		components.SecuritySchemes.Set(name, scheme)
	}
	if componentsUsed(components) {
		doc.Components = components
	}

	preDangling := danglingRefs(doc).seen
	for _, m := range b.modifiers {
		m.Modify(doc)
	}
	checkReferences(doc, preDangling, report)

	if fatal := b.diags.fatal(); fatal != nil {
		return doc, fatal
	}
	return doc, nil
}

// assemblePaths folds every registered handler into an ordered paths
// map. Path entries appear in first-registration order and methods in
// registration order within each path.
func (b *Builder) assemblePaths(res *resolver, report func(*Diagnostic)) *spec.Map[*spec.PathItem] {
	paths := spec.NewMap[*spec.PathItem]()
	operationIDs := make(map[string]Location)

	for _, h := range b.handlers {
		method, ok := httputil.NormalizeMethod(h.Method)
		if !ok {
			report(&Diagnostic{
				Kind:    KindInvalidMethod,
				Method:  h.Method,
				Path:    h.Path,
				Subject: h.Method,
				Message: "unknown HTTP method " + strconv.Quote(h.Method),
			})
			continue
		}

		item, exists := paths.Get(h.Path)
		if !exists {
			item = spec.NewPathItem()
			paths.Set(h.Path, item)
		}
		if _, taken := item.Operation(method); taken {
			report(&Diagnostic{
				Kind:            KindDuplicateRoute,
				Method:          method,
				Path:            h.Path,
				OperationID:     h.OperationID,
				Message:         "route already registered; keeping the first",
				FirstOccurrence: &Location{Method: method, Path: h.Path},
			})
			continue
		}

		checkPathParams(h, method, report)

		op := b.buildOperation(h, method, res, report)
		if op.OperationID != "" {
			if first, dup := operationIDs[op.OperationID]; dup {
				report(&Diagnostic{
					Kind:            KindDuplicateOperationID,
					Method:          method,
					Path:            h.Path,
					OperationID:     op.OperationID,
					Subject:         op.OperationID,
					Message:         "operationId already used; dropping it here",
					FirstOccurrence: &first,
				})
				op.OperationID = ""
			} else {
				operationIDs[op.OperationID] = Location{Method: method, Path: h.Path}
			}
		}
		item.SetOperation(method, op)
	}
	return paths
}

// buildOperation resolves one handler into an operation, registering
// any named schemas its parameters, body, and responses reference.
func (b *Builder) buildOperation(h *descriptor.Handler, method string, res *resolver, report func(*Diagnostic)) *spec.Operation {
	op := &spec.Operation{
		Tags:        h.Tags,
		Summary:     h.Summary,
		Description: h.Description,
		OperationID: h.OperationID,
		Deprecated:  h.Deprecated,
		Security:    h.Security,
		Responses:   spec.NewResponses(),
	}

	for _, p := range h.Params {
		op.Parameters = append(op.Parameters, &spec.Parameter{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			// Path parameters are always required.
			Required: p.Required || p.In == spec.ParamInPath,
			Schema:   res.resolve(p.Type),
		})
	}

	if body := h.RequestBody; body != nil {
		ct := body.ContentType
		if ct == "" {
			ct = "application/json"
		}
		op.RequestBody = &spec.RequestBody{
			Description: body.Description,
			Required:    body.Required,
			Content: spec.NewMap[*spec.MediaType]().
				Set(ct, &spec.MediaType{Schema: res.resolve(body.Type)}),
		}
	}

	for _, r := range h.Responses {
		resp := &spec.Response{Description: r.Description}
		if r.Type != nil {
			ct := r.ContentType
			if ct == "" {
				ct = "application/json"
			}
			resp.Content = spec.NewMap[*spec.MediaType]().
				Set(ct, &spec.MediaType{Schema: res.resolve(r.Type)})
		}
		if r.Status == 0 {
			op.Responses.Default = resp
			continue
		}
		code := strconv.Itoa(r.Status)
		if !httputil.ValidateStatusCode(code) {
			report(&Diagnostic{
				Kind:    KindInvalidStatusCode,
				Method:  method,
				Path:    h.Path,
				Subject: code,
				Message: "status " + code + " outside the valid HTTP range; response dropped",
			})
			continue
		}
		op.Responses.Codes.Set(code, resp)
	}
	return op
}

// checkPathParams cross-checks template placeholders against declared
// path parameters in both directions. Mismatches diagnose but do not
// suppress the operation.
func checkPathParams(h *descriptor.Handler, method string, report func(*Diagnostic)) {
	declared := make(map[string]bool)
	for _, p := range h.Params {
		if p.In == spec.ParamInPath {
			declared[p.Name] = true
		}
	}
	inTemplate := make(map[string]bool)
	for _, name := range pathutil.Placeholders(h.Path) {
		inTemplate[name] = true
		if !declared[name] {
			report(&Diagnostic{
				Kind:    KindUnboundPathParameter,
				Method:  method,
				Path:    h.Path,
				Subject: name,
				Message: "placeholder {" + name + "} has no declared path parameter",
			})
		}
	}
	for _, p := range h.Params {
		if p.In == spec.ParamInPath && !inTemplate[p.Name] {
			report(&Diagnostic{
				Kind:    KindUnusedDeclaredParameter,
				Method:  method,
				Path:    h.Path,
				Subject: p.Name,
				Message: "declared path parameter " + strconv.Quote(p.Name) + " has no placeholder in the template",
			})
		}
	}
}

// componentsUsed reports whether any registry in components has
// entries.
func componentsUsed(c *spec.Components) bool {
	return c.Schemas.Len() > 0 ||
		c.Responses.Len() > 0 ||
		c.Parameters.Len() > 0 ||
		c.SecuritySchemes.Len() > 0
}
