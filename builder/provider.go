package builder

import (
	"sync"

	"github.com/qyvip/utoipa/spec"
)

// Provider lazily builds a document exactly once and hands the same
// result to every caller. It is safe for concurrent use; the wrapped
// Builder must not be mutated after the Provider is created.
type Provider struct {
	once sync.Once
	b    *Builder

	doc *spec.Document
	err error
}

// NewProvider wraps a fully registered Builder.
func NewProvider(b *Builder) *Provider {
	return &Provider{b: b}
}

// Document returns the built document, building it on first call.
// Every caller observes the same document and error.
func (p *Provider) Document() (*spec.Document, error) {
	p.once.Do(func() {
		p.doc, p.err = p.b.Build()
	})
	return p.doc, p.err
}

// Diagnostics returns the findings from the build, building the
// document first if no caller has yet.
func (p *Provider) Diagnostics() Diagnostics {
	p.Document()
	return p.b.Diagnostics()
}
