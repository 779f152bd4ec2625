package builder

import "github.com/qyvip/utoipa/spec"

// Modifier mutates an assembled document before Build returns it.
// Typical uses are injecting security schemes, rewriting server lists
// per environment, or stamping build metadata into Info.
type Modifier interface {
	Modify(doc *spec.Document)
}

// ModifierFunc adapts a plain function to the Modifier interface.
type ModifierFunc func(doc *spec.Document)

// Modify implements Modifier.
func (f ModifierFunc) Modify(doc *spec.Document) { f(doc) }
