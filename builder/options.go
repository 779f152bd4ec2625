package builder

import "github.com/qyvip/utoipa/spec"

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithOpenAPIVersion overrides the OpenAPI version stamped on the
// built document.
func WithOpenAPIVersion(version string) Option {
	return func(b *Builder) {
		b.openAPIVersion = version
	}
}

// WithInfo replaces the whole Info block built from the constructor's
// title and version.
func WithInfo(info spec.Info) Option {
	return func(b *Builder) {
		b.info = info
	}
}

// WithModifiers registers modifiers at construction time, in order.
func WithModifiers(mods ...Modifier) Option {
	return func(b *Builder) {
		b.modifiers = append(b.modifiers, mods...)
	}
}
