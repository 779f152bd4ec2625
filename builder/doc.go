// Package builder assembles OpenAPI documents from type and handler
// descriptors.
//
// A Builder accumulates descriptors, registered security schemes, and
// modifier callbacks, then Build produces a spec.Document in a single
// pass: named types resolve into deduplicated component schemas,
// handlers assemble into path items, modifiers run in registration
// order, and the finished document is checked for dangling references.
//
// Conflicts do not abort the build. Duplicate schema names, duplicate
// routes, and duplicate operation ids resolve first-wins and record a
// Diagnostic; Build returns the document together with the accumulated
// diagnostics so callers can decide how strict to be.
package builder
