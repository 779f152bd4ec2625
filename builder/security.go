package builder

import "github.com/qyvip/utoipa/spec"

// AddAPIKeySecurityScheme registers an apiKey scheme reading the named
// parameter from the given location ("header", "query", or "cookie").
func (b *Builder) AddAPIKeySecurityScheme(name, in, paramName string) *Builder {
	return b.AddSecurityScheme(name, &spec.SecurityScheme{
		Type: "apiKey",
		Name: paramName,
		In:   in,
	})
}

// AddHTTPSecurityScheme registers an http scheme such as "basic" or
// "bearer".
func (b *Builder) AddHTTPSecurityScheme(name, scheme string) *Builder {
	return b.AddSecurityScheme(name, &spec.SecurityScheme{
		Type:   "http",
		Scheme: scheme,
	})
}

// AddBearerSecurityScheme registers an http bearer scheme with a
// token format hint such as "JWT".
func (b *Builder) AddBearerSecurityScheme(name, bearerFormat string) *Builder {
	return b.AddSecurityScheme(name, &spec.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: bearerFormat,
	})
}

// AddOAuth2SecurityScheme registers an oauth2 scheme with its flow
// definitions.
func (b *Builder) AddOAuth2SecurityScheme(name string, flows *spec.OAuthFlows) *Builder {
	return b.AddSecurityScheme(name, &spec.SecurityScheme{
		Type:  "oauth2",
		Flows: flows,
	})
}

// AddOpenIDConnectSecurityScheme registers an openIdConnect scheme
// with its discovery URL.
func (b *Builder) AddOpenIDConnectSecurityScheme(name, url string) *Builder {
	return b.AddSecurityScheme(name, &spec.SecurityScheme{
		Type:             "openIdConnect",
		OpenIDConnectURL: url,
	})
}
