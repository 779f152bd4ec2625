package builder

import (
	"github.com/qyvip/utoipa/descriptor"
	"github.com/qyvip/utoipa/spec"
)

// OperationOption configures an operation registered through
// AddOperation.
type OperationOption func(*descriptor.Handler)

// ParamOption configures a parameter added by one of the With*Param
// options.
type ParamOption func(*descriptor.Param)

// BodyOption configures a request body added by WithRequestBody.
type BodyOption func(*descriptor.Body)

// ResponseOption configures a response added by WithResponse or
// WithDefaultResponse.
type ResponseOption func(*descriptor.Response)

// AddOperation registers an operation for a method and path template
// without constructing a Handler by hand. It is sugar over AddHandler;
// the two can be mixed freely.
func (b *Builder) AddOperation(method, path string, opts ...OperationOption) *Builder {
	h := &descriptor.Handler{Method: method, Path: path}
	for _, opt := range opts {
		opt(h)
	}
	return b.AddHandler(h)
}

// WithOperationID sets the operationId.
func WithOperationID(id string) OperationOption {
	return func(h *descriptor.Handler) { h.OperationID = id }
}

// WithSummary sets the operation summary.
func WithSummary(summary string) OperationOption {
	return func(h *descriptor.Handler) { h.Summary = summary }
}

// WithDescription sets the operation description.
func WithDescription(desc string) OperationOption {
	return func(h *descriptor.Handler) { h.Description = desc }
}

// WithTags appends operation tags.
func WithTags(tags ...string) OperationOption {
	return func(h *descriptor.Handler) { h.Tags = append(h.Tags, tags...) }
}

// WithDeprecated marks the operation deprecated.
func WithDeprecated() OperationOption {
	return func(h *descriptor.Handler) { h.Deprecated = true }
}

// WithSecurity sets the operation's security requirements.
func WithSecurity(reqs ...spec.SecurityRequirement) OperationOption {
	return func(h *descriptor.Handler) { h.Security = reqs }
}

// WithPathParam declares a path parameter. Path parameters are always
// required regardless of options.
func WithPathParam(name string, t *descriptor.Type, opts ...ParamOption) OperationOption {
	return withParam(name, spec.ParamInPath, t, opts)
}

// WithQueryParam declares a query parameter, optional by default.
func WithQueryParam(name string, t *descriptor.Type, opts ...ParamOption) OperationOption {
	return withParam(name, spec.ParamInQuery, t, opts)
}

// WithHeaderParam declares a header parameter, optional by default.
func WithHeaderParam(name string, t *descriptor.Type, opts ...ParamOption) OperationOption {
	return withParam(name, spec.ParamInHeader, t, opts)
}

// WithCookieParam declares a cookie parameter, optional by default.
func WithCookieParam(name string, t *descriptor.Type, opts ...ParamOption) OperationOption {
	return withParam(name, spec.ParamInCookie, t, opts)
}

func withParam(name, in string, t *descriptor.Type, opts []ParamOption) OperationOption {
	return func(h *descriptor.Handler) {
		p := descriptor.Param{
			Name:     name,
			In:       in,
			Required: in == spec.ParamInPath,
			Type:     t,
		}
		for _, opt := range opts {
			opt(&p)
		}
		h.Params = append(h.Params, p)
	}
}

// ParamDescription sets the parameter description.
func ParamDescription(desc string) ParamOption {
	return func(p *descriptor.Param) { p.Description = desc }
}

// ParamRequired marks a non-path parameter required.
func ParamRequired() ParamOption {
	return func(p *descriptor.Param) { p.Required = true }
}

// WithRequestBody declares the request body, application/json unless
// overridden with BodyContentType.
func WithRequestBody(t *descriptor.Type, opts ...BodyOption) OperationOption {
	return func(h *descriptor.Handler) {
		body := &descriptor.Body{Type: t}
		for _, opt := range opts {
			opt(body)
		}
		h.RequestBody = body
	}
}

// BodyContentType overrides the request body media type.
func BodyContentType(ct string) BodyOption {
	return func(b *descriptor.Body) { b.ContentType = ct }
}

// BodyRequired marks the request body required.
func BodyRequired() BodyOption {
	return func(b *descriptor.Body) { b.Required = true }
}

// BodyDescription sets the request body description.
func BodyDescription(desc string) BodyOption {
	return func(b *descriptor.Body) { b.Description = desc }
}

// WithResponse declares a response for a status code. Responses with
// no ResponseType stay bodyless.
func WithResponse(status int, description string, opts ...ResponseOption) OperationOption {
	return func(h *descriptor.Handler) {
		r := descriptor.Response{Status: status, Description: description}
		for _, opt := range opts {
			opt(&r)
		}
		h.Responses = append(h.Responses, r)
	}
}

// WithDefaultResponse declares the catch-all default response.
func WithDefaultResponse(description string, opts ...ResponseOption) OperationOption {
	return WithResponse(0, description, opts...)
}

// ResponseType sets the response body shape.
func ResponseType(t *descriptor.Type) ResponseOption {
	return func(r *descriptor.Response) { r.Type = t }
}

// ResponseContentType overrides the response media type.
func ResponseContentType(ct string) ResponseOption {
	return func(r *descriptor.Response) { r.ContentType = ct }
}
