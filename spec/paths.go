package spec

// Parameter locations.
const (
	ParamInPath   = "path"
	ParamInQuery  = "query"
	ParamInHeader = "header"
	ParamInCookie = "cookie"
)

// PathItem describes the operations available on a single path
// template. Operations are keyed by lowercase HTTP method and preserve
// insertion order in serialized output.
type PathItem struct {
	Summary     string
	Description string
	Parameters  []*Parameter
	Operations  *Map[*Operation]
}

// NewPathItem creates an empty PathItem.
func NewPathItem() *PathItem {
	return &PathItem{Operations: NewMap[*Operation]()}
}

// Operation returns the operation for a lowercase HTTP method.
func (p *PathItem) Operation(method string) (*Operation, bool) {
	return p.Operations.Get(method)
}

// SetOperation assigns an operation for a lowercase HTTP method,
// overwriting any existing entry.
func (p *PathItem) SetOperation(method string, op *Operation) {
	p.Operations.Set(method, op)
}

// Methods returns the methods with operations, in insertion order.
func (p *PathItem) Methods() []string {
	return p.Operations.Keys()
}

// marshalMap flattens the path item into an ordered map: the metadata
// fields first, then one key per method in insertion order.
func (p *PathItem) marshalMap() *Map[any] {
	m := NewMap[any]()
	if p.Summary != "" {
		m.Set("summary", p.Summary)
	}
	if p.Description != "" {
		m.Set("description", p.Description)
	}
	if len(p.Parameters) > 0 {
		m.Set("parameters", p.Parameters)
	}
	for method, op := range p.Operations.All() {
		m.Set(method, op)
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	return p.marshalMap().MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler.
func (p *PathItem) MarshalYAML() (any, error) {
	return p.marshalMap().MarshalYAML()
}

// Operation describes a single API operation on a path template.
type Operation struct {
	Tags        []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *Responses            `yaml:"responses" json:"responses"`
	Deprecated  bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security    []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
}

// Responses holds an operation's responses keyed by status code,
// preserving insertion order, with an optional default response.
type Responses struct {
	Codes   *Map[*Response]
	Default *Response
}

// NewResponses creates an empty Responses container.
func NewResponses() *Responses {
	return &Responses{Codes: NewMap[*Response]()}
}

// Get returns the response for a status code string, or the default
// response for the key "default".
func (r *Responses) Get(code string) (*Response, bool) {
	if code == "default" {
		return r.Default, r.Default != nil
	}
	return r.Codes.Get(code)
}

// Len returns the number of responses including the default.
func (r *Responses) Len() int {
	n := r.Codes.Len()
	if r.Default != nil {
		n++
	}
	return n
}

// marshalMap flattens responses into an ordered map, status codes in
// insertion order with "default" last.
func (r *Responses) marshalMap() *Map[any] {
	m := NewMap[any]()
	for code, resp := range r.Codes.All() {
		m.Set(code, resp)
	}
	if r.Default != nil {
		m.Set("default", r.Default)
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (r *Responses) MarshalJSON() ([]byte, error) {
	return r.marshalMap().MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler.
func (r *Responses) MarshalYAML() (any, error) {
	return r.marshalMap().MarshalYAML()
}

// Response describes a single response from an API operation.
type Response struct {
	Description string           `yaml:"description" json:"description"`
	Headers     *Map[*Header]    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     *Map[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
}

// MediaType provides the schema and example for a media type.
type MediaType struct {
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
	Content     *Map[*MediaType] `yaml:"content" json:"content"`
	Required    bool             `yaml:"required,omitempty" json:"required,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	In          string  `yaml:"in" json:"in"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example     any     `yaml:"example,omitempty" json:"example,omitempty"`
}

// Header represents a response header.
type Header struct {
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}
