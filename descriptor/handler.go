package descriptor

import "github.com/qyvip/utoipa/spec"

// Handler describes one operation bound to a method and path template.
// Handlers are the inputs to path assembly; they carry no document
// state of their own.
type Handler struct {
	Method      string // HTTP method, case-insensitive
	Path        string // path template, e.g. "/pets/{id}"
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool

	Params      []Param
	RequestBody *Body
	Responses   []Response
	Security    []spec.SecurityRequirement
}

// Param describes one declared operation parameter.
type Param struct {
	Name        string
	In          string // "path", "query", "header", "cookie"
	Required    bool
	Description string
	Type        *Type
}

// Body describes a request body.
type Body struct {
	ContentType string // defaults to "application/json" when empty
	Required    bool
	Description string
	Type        *Type
}

// Response describes one declared response. Status 0 maps to the
// "default" response slot. Type may be nil for bodyless responses.
type Response struct {
	Status      int
	Description string
	ContentType string // defaults to "application/json" when Type is set
	Type        *Type
}
