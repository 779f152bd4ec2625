package spec

// Document represents a complete OpenAPI 3.x document: Info, Paths,
// and Components, plus the optional top-level metadata blocks.
type Document struct {
	OpenAPI      string                `yaml:"openapi" json:"openapi"`
	Info         *Info                 `yaml:"info" json:"info"`
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        *Map[*PathItem]       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components   *Components           `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
}

// Components holds the document's registry of reusable objects.
// Schemas preserves registration order.
type Components struct {
	Schemas         *Map[*Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       *Map[*Response]       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      *Map[*Parameter]      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	SecuritySchemes *Map[*SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
}

// EnsureComponents returns the document's Components, creating the
// registry when the document has none yet. Modifiers use it to add
// schemas or security schemes without nil checks.
func (d *Document) EnsureComponents() *Components {
	if d.Components == nil {
		d.Components = NewComponents()
	}
	return d.Components
}

// NewComponents creates an empty Components registry.
func NewComponents() *Components {
	return &Components{
		Schemas:         NewMap[*Schema](),
		Responses:       NewMap[*Response](),
		Parameters:      NewMap[*Parameter](),
		SecuritySchemes: NewMap[*SecurityScheme](),
	}
}

// Info provides metadata about the API. It is passed through verbatim
// from the caller; nothing in it is computed.
type Info struct {
	Title          string   `yaml:"title" json:"title"`
	Summary        string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string   `yaml:"version" json:"version"`
}

// Contact information for the exposed API.
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

// License information for the exposed API.
type License struct {
	Name       string `yaml:"name" json:"name"`
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	URL        string `yaml:"url,omitempty" json:"url,omitempty"`
}

// ExternalDocs allows referencing external documentation.
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`
}

// Tag adds metadata to a single tag used by operations.
type Tag struct {
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
}

// Server represents a server the API is available on.
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}
