package spec

// SecurityRequirement lists the security schemes required to execute an
// operation, mapping scheme names to scopes.
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme struct {
	Type        string `yaml:"type" json:"type"` // "apiKey", "http", "oauth2", "openIdConnect"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type: apiKey
	Name string `yaml:"name,omitempty" json:"name,omitempty"` // header, query, or cookie parameter name
	In   string `yaml:"in,omitempty" json:"in,omitempty"`     // "query", "header", "cookie"

	// Type: http
	Scheme       string `yaml:"scheme,omitempty" json:"scheme,omitempty"`             // e.g. "basic", "bearer"
	BearerFormat string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"` // e.g. "JWT"

	// Type: oauth2
	Flows *OAuthFlows `yaml:"flows,omitempty" json:"flows,omitempty"`

	// Type: openIdConnect
	OpenIDConnectURL string `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`
}

// OAuthFlows allows configuration of the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Password          *OAuthFlow `yaml:"password,omitempty" json:"password,omitempty"`
	ClientCredentials *OAuthFlow `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
}

// OAuthFlow represents configuration for a single OAuth flow.
type OAuthFlow struct {
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	RefreshURL       string            `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes" json:"scopes"`
}
